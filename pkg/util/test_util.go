package util

import (
	"testing"
)

// fails the test if the actual error doesn't match the expected error.
// if an error is expected and matches, returns true.
// i.e. the return value is "shouldContinue"
func AssertError(t *testing.T, caseIdx int, expected string, err error) bool {
	if err != nil {
		if expected == "" {
			t.Fatalf(`case %d: expected success; got error "%s"`, caseIdx, err.Error())
			return false
		}
		if err.Error() != expected {
			t.Fatalf(`case %d: expected error "%s"; got "%s"`, caseIdx, expected, err.Error())
			return false
		}
		return true
	}
	if expected != "" {
		t.Fatalf(`case %d: expected error "%s"; got success`, caseIdx, expected)
		return false
	}
	return false
}
