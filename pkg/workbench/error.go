package workbench

import "fmt"

type parseError struct {
	error error
}

func (e *parseError) Error() string {
	return fmt.Sprintf("parse error: %s", e.error.Error())
}

type validationError struct {
	error error
}

func (e *validationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.error.Error())
}

type notProvable struct {
	Sequent string
	Depth   int
}

func (e *notProvable) Error() string {
	return fmt.Sprintf("not provable within depth %d: %s", e.Depth, e.Sequent)
}

type noSuchTheorem struct {
	Name string
}

func (e *noSuchTheorem) Error() string {
	return fmt.Sprintf("no such theorem: %s", e.Name)
}

type theoremAlreadyExists struct {
	Name string
}

func (e *theoremAlreadyExists) Error() string {
	return fmt.Sprintf("theorem already exists: %s", e.Name)
}

type verificationFailed struct {
	Name string
	Err  error
}

func (e *verificationFailed) Error() string {
	return fmt.Sprintf("stored theorem %s failed verification: %s", e.Name, e.Err.Error())
}
