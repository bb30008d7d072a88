package prove

import (
	"fmt"

	"github.com/ibrahimcesar/lolli/pkg/logic"
)

// Verification failures form a small typed taxonomy so callers can
// pinpoint exactly which node and rule failed rather than getting a
// boolean back.

type invalidRule struct {
	Rule       logic.Rule
	Conclusion string
}

func (e *invalidRule) Error() string {
	return fmt.Sprintf("invalid rule %s for conclusion %s", e.Rule, e.Conclusion)
}

type wrongPremiseCount struct {
	Expected int
	Got      int
}

func (e *wrongPremiseCount) Error() string {
	return fmt.Sprintf("expected %d premises, got %d", e.Expected, e.Got)
}

type contextMismatch struct {
	Message string
}

func (e *contextMismatch) Error() string {
	return fmt.Sprintf("context mismatch: %s", e.Message)
}

// premiseFailed wraps a failure in the premise at Index, preserving
// the full path down to the offending node.
type premiseFailed struct {
	Index int
	Err   error
}

func (e *premiseFailed) Error() string {
	return fmt.Sprintf("premise %d failed: %s", e.Index, e.Err.Error())
}

func (e *premiseFailed) Unwrap() error {
	return e.Err
}

// Constructors, exported for tests and for callers that want to match
// with errors.As.

func NewInvalidRule(rule logic.Rule, conclusion logic.Sequent) error {
	return &invalidRule{Rule: rule, Conclusion: conclusion.Pretty()}
}

func NewWrongPremiseCount(expected, got int) error {
	return &wrongPremiseCount{Expected: expected, Got: got}
}

func NewContextMismatch(format string, args ...interface{}) error {
	return &contextMismatch{Message: fmt.Sprintf(format, args...)}
}

func NewPremiseFailed(index int, err error) error {
	return &premiseFailed{Index: index, Err: err}
}

// IsInvalidRule reports whether err is an invalid-rule failure.
func IsInvalidRule(err error) bool {
	_, ok := err.(*invalidRule)
	return ok
}

// IsWrongPremiseCount reports whether err is a premise-arity failure.
func IsWrongPremiseCount(err error) bool {
	_, ok := err.(*wrongPremiseCount)
	return ok
}

// IsContextMismatch reports whether err is a context mismatch.
func IsContextMismatch(err error) bool {
	_, ok := err.(*contextMismatch)
	return ok
}

// PremiseIndex returns the failing premise index if err wraps one, and
// the wrapped error.
func PremiseIndex(err error) (int, error, bool) {
	pf, ok := err.(*premiseFailed)
	if !ok {
		return 0, nil, false
	}
	return pf.Index, pf.Err, true
}
