// Package ids generates entity identifiers that sort lexicographically in
// approximate creation order: a fixed-width hex millisecond timestamp
// followed by a random suffix.
package ids

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

const suffixBytes = 4

// New returns a fresh identifier. It never fails: if the system random
// source is unavailable the suffix falls back to the nanosecond clock.
func New() string {
	return newAt(time.Now())
}

func newAt(now time.Time) string {
	suffix := make([]byte, suffixBytes)
	if _, err := rand.Read(suffix); err != nil {
		return fmt.Sprintf("%012x-%08x", now.UnixMilli(), now.Nanosecond())
	}
	return fmt.Sprintf("%012x-%s", now.UnixMilli(), hex.EncodeToString(suffix))
}
