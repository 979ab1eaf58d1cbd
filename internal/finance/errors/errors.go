package errors

import (
	"errors"
	"fmt"
)

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	ok := errors.As(err, &validationError)
	return ok
}

var ErrInvalidCategory = NewValidationError("Category does not match any default or user category")

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrCategoryExists      = errors.New("category already exists")
	ErrDefaultCategory     = errors.New("default categories cannot be modified")
)

// CategoryInUseError blocks deletion of a category that transactions
// still reference. Count is the number of referencing transactions.
type CategoryInUseError struct {
	Count int
}

func (e *CategoryInUseError) Error() string {
	return fmt.Sprintf("category is used by %d transaction(s) and cannot be deleted", e.Count)
}

func IsCategoryInUseError(err error) (*CategoryInUseError, bool) {
	var inUseErr *CategoryInUseError
	ok := errors.As(err, &inUseErr)
	return inUseErr, ok
}
