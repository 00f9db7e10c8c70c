package utils

import (
	"crypto/rand"
	"strconv"
	"time"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewReservationID returns a short opaque identifier: the current Unix
// millisecond timestamp in base 36 followed by 7 random base-36 characters.
// The timestamp prefix keeps identifiers roughly sortable by creation time
// while the random suffix makes collisions overwhelmingly unlikely. The id
// doubles as the access secret for the public status page, so the suffix
// uses crypto/rand.
func NewReservationID() string {
	buf := make([]byte, 7)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the platform is broken; fall back to
		// the timestamp alone rather than returning an error nobody can act on.
		return strconv.FormatInt(time.Now().UnixMilli(), 36)
	}
	suffix := make([]byte, len(buf))
	for i, b := range buf {
		suffix[i] = base36[int(b)%len(base36)]
	}
	return strconv.FormatInt(time.Now().UnixMilli(), 36) + string(suffix)
}
