package service

import "errors"

// ErrForbidden is returned when the acting user is not allowed to perform
// the requested operation (not the creator, not the target, not an admin).
var ErrForbidden = errors.New("forbidden")
