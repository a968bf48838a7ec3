package models

import (
	"errors"
)

var (
	ErrCategoryNameEmpty       = errors.New("the category name must not be empty")
	ErrExpenseDescriptionEmpty = errors.New("the expense description must not be empty")
	ErrExpenseAmountMissing    = errors.New("the expense amount must be set")
	ErrExpenseCategoryEmpty    = errors.New("the expense categoryId must not be empty")
	ErrExpenseDateInvalid      = errors.New("the expense date must be an ISO 8601 date or timestamp")
	ErrIDMismatch              = errors.New("the ID in the request body does not match the ID in the path")
)

// IsValidationError reports whether err is one of the validation errors of this package.
func IsValidationError(err error) bool {
	for _, e := range []error{
		ErrCategoryNameEmpty,
		ErrExpenseDescriptionEmpty,
		ErrExpenseAmountMissing,
		ErrExpenseCategoryEmpty,
		ErrExpenseDateInvalid,
		ErrIDMismatch,
	} {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}
