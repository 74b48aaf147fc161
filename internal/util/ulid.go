package util

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// NewULID returns a new lexicographically sortable identifier.
func NewULID() string {
	return ulid.Make().String()
}

// ULIDTime extracts the creation time encoded in id.
func ULIDTime(id string) (time.Time, error) {
	parsed, err := ulid.ParseStrict(id)
	if err != nil {
		return time.Time{}, err
	}
	return ulid.Time(parsed.Time()), nil
}

// IsULID reports whether id is a well-formed ULID.
func IsULID(id string) bool {
	_, err := ulid.ParseStrict(id)
	return err == nil
}
