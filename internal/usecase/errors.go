package usecase

import (
	"errors"
	"fmt"
)

// ErrGuardRejected is returned when a lifecycle transition is attempted from a
// state the event does not cover, or when its dependency check fails. The
// contract is left untouched and no notification is sent.
var ErrGuardRejected = errors.New("transition rejected")

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	var te *TechnicalError
	return errors.As(err, &te)
}

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// validationDomainError folds a list of field errors into a single DomainError
// the HTTP layer can surface.
func validationDomainError(errs []ValidationError) *DomainError {
	msg := "validation failed: "
	for _, e := range errs {
		msg += e.Field + " (" + e.Message + "), "
	}
	return &DomainError{Code: "VALIDATION_ERROR", Message: msg}
}
