// Package slot persists the site's five content values, each in its own
// independently keyed storage slot. Writes to one slot never touch
// another, so a failure (typically the size ceiling) is isolated to the
// value being saved.
package slot

import (
	"context"
	"errors"
)

// DefaultMaxValueBytes caps a single slot at 5 MiB. Gallery slots carry
// base64 media inline, so without a ceiling one upload could grow the
// table without bound.
const DefaultMaxValueBytes = 5 << 20

// ErrQuotaExceeded is returned by Put when a value exceeds the store's
// size ceiling. The in-memory copy of the value is expected to survive;
// only durability is lost.
var ErrQuotaExceeded = errors.New("slot value exceeds storage quota")

// Store persists named string slots.
type Store interface {
	// Get returns the slot value and whether the slot exists.
	Get(ctx context.Context, key string) (string, bool, error)
	// Put writes the slot value, replacing any previous value.
	Put(ctx context.Context, key, value string) error
	// Delete removes the slot. Deleting an absent slot is a no-op.
	Delete(ctx context.Context, key string) error
}
