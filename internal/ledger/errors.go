package ledger

import (
	"errors"

	"fjacquet/finance-tracker/internal/apperror"
)

// wrapStorage returns err unchanged when it already is a StorageError.
func wrapStorage(op, key string, err error) error {
	var storageErr *apperror.StorageError
	if errors.As(err, &storageErr) {
		return err
	}
	return &apperror.StorageError{Op: op, Key: key, Err: err}
}
