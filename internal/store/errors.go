package store

import "errors"

var (
	ErrAlreadyExists     = errors.New("account already exists")
	ErrNotFound          = errors.New("account not found")
	ErrInvalidCredential = errors.New("invalid credentials")

	// ErrCorruptImage means the backing file exists and is non-empty but
	// does not parse. Deliberately fatal: falling back to an empty map
	// would make data loss look like a fresh install.
	ErrCorruptImage = errors.New("corrupt store image")
)
