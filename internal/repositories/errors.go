package repositories

import "errors"

var (
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrDuplicateEmail    = errors.New("email already exists")
	ErrAdminNotFound     = errors.New("admin not found")
	ErrAdminExists       = errors.New("admin already exists")
)
