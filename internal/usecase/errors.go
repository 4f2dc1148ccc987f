package usecase

import (
	"errors"
	"fmt"

	"game-catalog/internal/data/repository"
	"game-catalog/pkg/utils"

	"github.com/google/uuid"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidSortKey     = repository.ErrInvalidSortKey
	ErrAlreadyExists      = errors.New("already exists")
	ErrInvalidReference   = errors.New("references an unknown record")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account is deactivated")
)

// translateRepoError lifts repository sentinels to the service vocabulary.
func translateRepoError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.Is(err, repository.ErrDuplicate):
		return fmt.Errorf("%w: %v", ErrAlreadyExists, err)
	case errors.Is(err, repository.ErrInvalidReference):
		return fmt.Errorf("%w: %v", ErrInvalidReference, err)
	}
	return err
}

// parseID treats a malformed id like a missing record.
func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: id %q", ErrNotFound, raw)
	}
	return id, nil
}

// parseIDs converts a request id list, reporting a bad entry against field.
func parseIDs(field string, raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, utils.ValidationErrors{{Field: field, Message: "Must be a valid UUID"}}
		}
		ids = append(ids, id)
	}
	return ids, nil
}
