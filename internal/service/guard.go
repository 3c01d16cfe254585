package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"vowplan/internal/errors"
)

// ownedRecord is any record carrying an owner reference. Every mutable
// resource kind implements it.
type ownedRecord interface {
	OwnerID() uuid.UUID
}

// requireOwner gates single-record reads and mutations by ownership.
// A missing record and an owner mismatch both surface as
// ErrRecordNotFound, so a non-owner cannot learn whether the record
// exists. Store failures pass through untouched.
func requireOwner(record ownedRecord, findErr error, callerID uuid.UUID) error {
	if findErr != nil {
		if errors.Is(findErr, gorm.ErrRecordNotFound) {
			return errors.ErrRecordNotFound
		}
		return findErr
	}
	if record.OwnerID() != callerID {
		return errors.ErrRecordNotFound
	}
	return nil
}
