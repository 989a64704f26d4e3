package drafts

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by Get when no draft is stored under the id.
	ErrNotFound = errors.New("draft not found")
	// ErrEmptyID is returned for an empty draft id.
	ErrEmptyID = errors.New("empty draft id")
	// ErrEmptyData is returned by Put for an empty payload.
	ErrEmptyData = errors.New("empty draft data")
	// ErrUnavailable wraps backend failures reported by Ping.
	ErrUnavailable = errors.New("draft store unavailable")
)

// Store keeps serialized drafts by id. Implementations must be safe for
// concurrent use. Delete of an unknown id is not an error.
type Store interface {
	Put(ctx context.Context, id string, data []byte) error
	Get(ctx context.Context, id string) ([]byte, error)
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

func checkID(id string) error {
	if id == "" {
		return ErrEmptyID
	}
	return nil
}

func checkPut(id string, data []byte) error {
	if err := checkID(id); err != nil {
		return err
	}
	if len(data) == 0 {
		return ErrEmptyData
	}
	return nil
}

func unavailable(backend string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrUnavailable, backend, err)
}
