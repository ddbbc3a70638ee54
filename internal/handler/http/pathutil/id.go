package pathutil

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalidID is returned when the ID in the URL path is invalid.
var ErrInvalidID = errors.New("invalid id")

// ExtractID extracts a report UUID from a URL path.
// It removes the specified prefix and validates the remainder as a UUID.
//
// Example:
//
//	id, err := ExtractID("/reports/6b7160be-...", "/reports/")
func ExtractID(path, prefix string) (string, error) {
	idStr := strings.TrimPrefix(path, prefix)
	if idStr == "" || strings.Contains(idStr, "/") {
		return "", ErrInvalidID
	}
	if _, err := uuid.Parse(idStr); err != nil {
		return "", ErrInvalidID
	}
	return idStr, nil
}
