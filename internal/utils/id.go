package utils

import (
	"strings"

	"github.com/google/uuid"
)

const roomIDLength = 8

// NewRoomID returns a short upper-case identifier derived from a random UUID,
// e.g. "3F9A1C2B". Short ids are easy to type into a device's config.
func NewRoomID() string {
	return strings.ToUpper(uuid.NewString()[:roomIDLength])
}

// NormalizeRoomID trims and upper-cases an id supplied by a device or URL.
func NormalizeRoomID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}
