package store

import "fmt"

// CorruptStoreError is returned when the preference file exists but is not a
// JSON object of string or string-list values. The file is left untouched.
type CorruptStoreError struct {
	Path string
	Err  error
}

func (e *CorruptStoreError) Error() string {
	return fmt.Sprintf("preference file %s is corrupt: %v", e.Path, e.Err)
}

func (e *CorruptStoreError) Unwrap() error { return e.Err }

// StoreWriteError is returned when the filesystem refuses access to the
// preference file (permissions, disk full). Writes are never retried.
type StoreWriteError struct {
	Path string
	Err  error
}

func (e *StoreWriteError) Error() string {
	return fmt.Sprintf("cannot access preference file %s: %v", e.Path, e.Err)
}

func (e *StoreWriteError) Unwrap() error { return e.Err }
