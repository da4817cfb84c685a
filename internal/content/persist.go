package content

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"rilliex/internal/adapters/storage/slot"
	"rilliex/internal/domain/profile"
)

// binding ties one in-memory value to its durable slot: how to serialize
// it, how to adopt a stored payload, and what to fall back to when the
// slot is absent or unreadable. All five slots share this one shape.
type binding struct {
	key    string
	encode func() (string, error)
	decode func(string) error
	seed   func()
}

func (s *Store) bindings() []binding {
	return []binding{
		{
			key:    SlotSchedule,
			encode: func() (string, error) { return encodeJSON(s.schedule) },
			decode: func(raw string) error { return json.Unmarshal([]byte(raw), &s.schedule) },
			seed:   func() { s.schedule = profile.DefaultSchedule() },
		},
		{
			key:    SlotGallery,
			encode: func() (string, error) { return encodeJSON(s.gallery) },
			decode: func(raw string) error { return json.Unmarshal([]byte(raw), &s.gallery) },
			seed:   func() { s.gallery = profile.DefaultGallery() },
		},
		{
			key:    SlotSocial,
			encode: func() (string, error) { return encodeJSON(s.social) },
			decode: func(raw string) error { return json.Unmarshal([]byte(raw), &s.social) },
			seed:   func() { s.social = profile.DefaultSocialLinks() },
		},
		{
			// Raw string slots: the value is the payload, no JSON framing.
			key:    SlotHero,
			encode: func() (string, error) { return s.heroImage, nil },
			decode: func(raw string) error { s.heroImage = raw; return nil },
			seed:   func() { s.heroImage = profile.DefaultHeroImage },
		},
		{
			key:    SlotProfile,
			encode: func() (string, error) { return s.profileImage, nil },
			decode: func(raw string) error { s.profileImage = raw; return nil },
			seed:   func() { s.profileImage = profile.DefaultProfileImage },
		},
	}
}

func encodeJSON(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// Load initialises every value from its slot. An absent slot seeds from
// the built-in defaults (first-ever run); an undecodable slot also falls
// back to the defaults rather than failing startup, treating corruption
// as self-healing. Only a storage read error is fatal.
// PRE: the slot store is reachable
// POST: all five values are populated
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.bindings() {
		raw, ok, err := s.slots.Get(ctx, b.key)
		if err != nil {
			return err
		}
		if !ok {
			b.seed()
			continue
		}
		if err := b.decode(raw); err != nil {
			slog.Warn("slot_decode_failed", "slot", b.key, "error", err.Error())
			b.seed()
		}
	}
	return nil
}

// persistLocked writes one slot. A failed write keeps the in-memory
// state, records a warning, and returns the error so callers can surface
// it; it is never an invariant violation.
// PRE: s.mu is held
func (s *Store) persistLocked(ctx context.Context, key, value string) error {
	if err := s.slots.Put(ctx, key, value); err != nil {
		s.recordWarningLocked(key, err)
		return err
	}
	return nil
}

func (s *Store) persistEncodedLocked(ctx context.Context, key string, encode func() (string, error)) error {
	value, err := encode()
	if err != nil {
		s.recordWarningLocked(key, err)
		return err
	}
	return s.persistLocked(ctx, key, value)
}

func (s *Store) persistScheduleLocked(ctx context.Context) error {
	return s.persistEncodedLocked(ctx, SlotSchedule, func() (string, error) { return encodeJSON(s.schedule) })
}

func (s *Store) persistGalleryLocked(ctx context.Context) error {
	return s.persistEncodedLocked(ctx, SlotGallery, func() (string, error) { return encodeJSON(s.gallery) })
}

func (s *Store) persistSocialLocked(ctx context.Context) error {
	return s.persistEncodedLocked(ctx, SlotSocial, func() (string, error) { return encodeJSON(s.social) })
}

// IsQuotaError reports whether a persistence warning was a storage-quota
// rejection, the one failure the admin UI calls out specially.
func IsQuotaError(err error) bool {
	return errors.Is(err, slot.ErrQuotaExceeded)
}
