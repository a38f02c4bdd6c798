package services

import (
	"errors"

	"gorm.io/gorm"
)

// orNotFound converts a record-not-found store error into the kind-specific
// domain error. Anything else passes through untouched.
func orNotFound(err error, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return err
}
