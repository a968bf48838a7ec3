package entity

import "errors"

var (
	ErrNotFound      = errors.New("there is no record for the ID you specified")
	ErrInvalidCursor = errors.New("the cursor is invalid")
)
