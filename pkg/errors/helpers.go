package errors

// FromError converts any error to an *Errno.
// Non-Errno errors are wrapped as ErrInternal so callers never branch on
// raw error strings.
func FromError(err error) *Errno {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Errno); ok {
		return e
	}
	return ErrInternal.WithCause(err)
}

// IsCode reports whether err is an Errno with the given code.
func IsCode(err error, code int) bool {
	e, ok := err.(*Errno)
	return ok && e.Code == code
}

// GetCode returns the error code, or the ErrInternal code for foreign errors.
func GetCode(err error) int {
	if err == nil {
		return 0
	}
	if e, ok := err.(*Errno); ok {
		return e.Code
	}
	return ErrInternal.Code
}
