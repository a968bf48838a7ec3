package httperrors

// Error is used to return an error with the corresponding HTTP status code to a controller.
type Error struct {
	Err    error
	Status int // Used with http.StatusX for the corresponding HTTP status code
}

// Nil checks if the Error is the zero value.
func (e Error) Nil() bool {
	return e.Err == nil && e.Status == 0
}

// Error returns the error as a string.
func (e Error) Error() string {
	s := e.Err.Error()
	return s
}

func (e Error) Unwrap() error {
	return e.Err
}
