// Package content implements the single source of truth for the site's
// editable content: the weekly schedule, the media gallery, the social
// link directory, and the hero and profile images. Every mutation updates
// in-memory state first and then makes a best-effort attempt to persist
// that one value's durable slot. A failed persist never rolls back the
// in-memory change; it is recorded as a warning and reported to the
// operator instead.
package content

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"rilliex/internal/adapters/storage/slot"
	"rilliex/internal/domain/gallery"
	"rilliex/internal/domain/profile"
	"rilliex/internal/domain/schedule"
	"rilliex/internal/domain/social"
)

// Slot keys. One durable slot per persisted value; collections are JSON,
// the two images are raw strings. The _v1 suffix stands in for a schema
// version since the slot payloads carry none.
const (
	SlotSchedule = "rilliex_schedule_v1"
	SlotGallery  = "rilliex_gallery_v1"
	SlotHero     = "rilliex_hero_v1"
	SlotSocial   = "rilliex_social_v1"
	SlotProfile  = "rilliex_profile_v1"
)

// Warning records a failed durable write. The in-memory state already
// holds the mutation; only durability across restarts is at risk.
type Warning struct {
	Slot string
	Err  error
	At   time.Time
}

// Store owns the five persisted content values.
type Store struct {
	slots slot.Store

	mu           sync.RWMutex
	schedule     []schedule.Event
	gallery      []gallery.Photo
	social       []social.Link
	heroImage    string
	profileImage string
	lastWarning  *Warning
	subscribers  []func()
}

// NewStore creates a Store backed by the given slot store. Call Load
// before serving reads.
func NewStore(slots slot.Store) *Store {
	return &Store{slots: slots}
}

// Subscribe registers fn to be called after every mutation. Observers run
// synchronously in mutation order.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// LastWarning returns the most recent persistence warning, if any.
func (s *Store) LastWarning() (Warning, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.lastWarning == nil {
		return Warning{}, false
	}
	return *s.lastWarning, true
}

// --- Reads (snapshots; callers never receive internal slices) ---

// Schedule returns a copy of the schedule collection in insertion order.
func (s *Store) Schedule() []schedule.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]schedule.Event, len(s.schedule))
	copy(out, s.schedule)
	return out
}

// Gallery returns a copy of the gallery collection, newest first.
func (s *Store) Gallery() []gallery.Photo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]gallery.Photo, len(s.gallery))
	copy(out, s.gallery)
	return out
}

// SocialLinks returns a copy of the social link collection.
func (s *Store) SocialLinks() []social.Link {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]social.Link, len(s.social))
	copy(out, s.social)
	return out
}

// HeroImage returns the current hero image reference.
func (s *Store) HeroImage() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.heroImage
}

// ProfileImage returns the current profile image reference.
func (s *Store) ProfileImage() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profileImage
}

// --- Schedule mutations ---

// AddScheduleEvent appends an event to the schedule.
// POST: in-memory state holds the event; returned error is a persistence
// warning only, never a rollback
func (s *Store) AddScheduleEvent(ctx context.Context, event schedule.Event) error {
	s.mu.Lock()
	defer s.notify()
	s.schedule = append(s.schedule, event)
	return s.persistScheduleLocked(ctx)
}

// UpdateScheduleEvent replaces the event with the same ID. An unknown ID
// is a silent no-op: this is a single-operator tool and the stale-edit
// case is not worth a failure mode.
func (s *Store) UpdateScheduleEvent(ctx context.Context, event schedule.Event) error {
	s.mu.Lock()
	defer s.notify()
	for i := range s.schedule {
		if s.schedule[i].ID == event.ID {
			s.schedule[i] = event
			break
		}
	}
	return s.persistScheduleLocked(ctx)
}

// DeleteScheduleEvent removes the event with the given ID. Absent IDs are
// a silent no-op.
func (s *Store) DeleteScheduleEvent(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.notify()
	s.schedule = removeByID(s.schedule, id, func(e schedule.Event) string { return e.ID })
	return s.persistScheduleLocked(ctx)
}

// --- Gallery mutations ---

// AddToGallery prepends a photo so the gallery reads newest first.
func (s *Store) AddToGallery(ctx context.Context, photo gallery.Photo) error {
	s.mu.Lock()
	defer s.notify()
	s.gallery = append([]gallery.Photo{photo}, s.gallery...)
	return s.persistGalleryLocked(ctx)
}

// UpdateGalleryPhoto replaces the photo with the same ID. Absent IDs are
// a silent no-op.
func (s *Store) UpdateGalleryPhoto(ctx context.Context, photo gallery.Photo) error {
	s.mu.Lock()
	defer s.notify()
	for i := range s.gallery {
		if s.gallery[i].ID == photo.ID {
			s.gallery[i] = photo
			break
		}
	}
	return s.persistGalleryLocked(ctx)
}

// RemoveFromGallery removes the photo with the given ID. Absent IDs are a
// silent no-op.
func (s *Store) RemoveFromGallery(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.notify()
	s.gallery = removeByID(s.gallery, id, func(p gallery.Photo) string { return p.ID })
	return s.persistGalleryLocked(ctx)
}

// --- Singleton image mutations ---

// UpdateHeroImage replaces the hero image. No history is kept.
func (s *Store) UpdateHeroImage(ctx context.Context, value string) error {
	s.mu.Lock()
	defer s.notify()
	s.heroImage = value
	return s.persistLocked(ctx, SlotHero, value)
}

// UpdateProfileImage replaces the profile image. No history is kept.
func (s *Store) UpdateProfileImage(ctx context.Context, value string) error {
	s.mu.Lock()
	defer s.notify()
	s.profileImage = value
	return s.persistLocked(ctx, SlotProfile, value)
}

// --- Social link mutations ---

// AddSocialLink appends a link to the directory.
func (s *Store) AddSocialLink(ctx context.Context, link social.Link) error {
	s.mu.Lock()
	defer s.notify()
	s.social = append(s.social, link)
	return s.persistSocialLocked(ctx)
}

// UpdateSocialLink replaces the link with the same ID. Absent IDs are a
// silent no-op.
func (s *Store) UpdateSocialLink(ctx context.Context, link social.Link) error {
	s.mu.Lock()
	defer s.notify()
	for i := range s.social {
		if s.social[i].ID == link.ID {
			s.social[i] = link
			break
		}
	}
	return s.persistSocialLocked(ctx)
}

// DeleteSocialLink removes the link with the given ID. Absent IDs are a
// silent no-op.
func (s *Store) DeleteSocialLink(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.notify()
	s.social = removeByID(s.social, id, func(l social.Link) string { return l.ID })
	return s.persistSocialLocked(ctx)
}

// notify unlocks the store and runs subscribers. Deferred by every
// mutation so observers always see the post-mutation state.
func (s *Store) notify() {
	subs := make([]func(), len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

func removeByID[T any](items []T, id string, idOf func(T) string) []T {
	out := items[:0:0]
	for _, item := range items {
		if idOf(item) != id {
			out = append(out, item)
		}
	}
	return out
}

func (s *Store) recordWarningLocked(key string, err error) {
	s.lastWarning = &Warning{Slot: key, Err: err, At: time.Now()}
	slog.Warn("slot_persist_failed", "slot", key, "error", err.Error())
}

// Seed replaces all in-memory values with the built-in defaults without
// touching storage. Intended for tests.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schedule = profile.DefaultSchedule()
	s.gallery = profile.DefaultGallery()
	s.social = profile.DefaultSocialLinks()
	s.heroImage = profile.DefaultHeroImage
	s.profileImage = profile.DefaultProfileImage
}
