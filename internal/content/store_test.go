package content_test

import (
	"context"
	"encoding/json"
	"testing"

	"rilliex/internal/adapters/storage/slot"
	"rilliex/internal/content"
	"rilliex/internal/domain/gallery"
	"rilliex/internal/domain/profile"
	"rilliex/internal/domain/schedule"
	"rilliex/internal/domain/social"
)

func newLoadedStore(t *testing.T) (*content.Store, *slot.MemoryStore) {
	t.Helper()
	slots := slot.NewMemoryStore()
	store := content.NewStore(slots)
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return store, slots
}

func TestLoad_SeedsDefaultsOnFirstRun(t *testing.T) {
	store, _ := newLoadedStore(t)

	if got, want := len(store.Schedule()), len(profile.DefaultSchedule()); got != want {
		t.Errorf("schedule length = %d, want %d", got, want)
	}
	if got, want := len(store.Gallery()), len(profile.DefaultGallery()); got != want {
		t.Errorf("gallery length = %d, want %d", got, want)
	}
	if got := store.HeroImage(); got != profile.DefaultHeroImage {
		t.Errorf("hero image = %q, want default", got)
	}
	if got := store.ProfileImage(); got != profile.DefaultProfileImage {
		t.Errorf("profile image = %q, want default", got)
	}
}

func TestLoad_AdoptsStoredValues(t *testing.T) {
	ctx := context.Background()
	slots := slot.NewMemoryStore()
	stored := []schedule.Event{{ID: "x1", Day: schedule.Wednesday, Time: "09:00 AM", Title: "Solo Drills", Type: schedule.TypeTraining}}
	raw, _ := json.Marshal(stored)
	if err := slots.Put(ctx, content.SlotSchedule, string(raw)); err != nil {
		t.Fatalf("seeding slot: %v", err)
	}
	if err := slots.Put(ctx, content.SlotHero, "data:image/jpeg;base64,custom"); err != nil {
		t.Fatalf("seeding slot: %v", err)
	}

	store := content.NewStore(slots)
	if err := store.Load(ctx); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	events := store.Schedule()
	if len(events) != 1 || events[0].ID != "x1" {
		t.Errorf("schedule = %+v, want stored single event", events)
	}
	if got := store.HeroImage(); got != "data:image/jpeg;base64,custom" {
		t.Errorf("hero image = %q, want stored value", got)
	}
	// Untouched slots still seed from defaults
	if len(store.SocialLinks()) != len(profile.DefaultSocialLinks()) {
		t.Error("social links not seeded from defaults")
	}
}

func TestLoad_SelfHealsOnCorruptSlot(t *testing.T) {
	ctx := context.Background()
	slots := slot.NewMemoryStore()
	if err := slots.Put(ctx, content.SlotGallery, "{not json"); err != nil {
		t.Fatalf("seeding slot: %v", err)
	}

	store := content.NewStore(slots)
	if err := store.Load(ctx); err != nil {
		t.Fatalf("Load failed on corrupt slot: %v", err)
	}
	if got, want := len(store.Gallery()), len(profile.DefaultGallery()); got != want {
		t.Errorf("gallery length = %d, want default %d after self-heal", got, want)
	}
}

func TestUpdateScheduleEvent_ReplaceByID(t *testing.T) {
	ctx := context.Background()
	store, _ := newLoadedStore(t)

	event := schedule.Event{ID: "e1", Day: schedule.Monday, Time: "10:00 AM", Title: "Filming", Type: schedule.TypeTraining}
	if err := store.AddScheduleEvent(ctx, event); err != nil {
		t.Fatalf("AddScheduleEvent: %v", err)
	}

	updated := event
	updated.Title = "Filming (rescheduled)"
	updated.Day = schedule.Friday
	if err := store.UpdateScheduleEvent(ctx, updated); err != nil {
		t.Fatalf("UpdateScheduleEvent: %v", err)
	}

	var got *schedule.Event
	for _, e := range store.Schedule() {
		if e.ID == "e1" {
			e := e
			got = &e
		}
	}
	if got == nil {
		t.Fatal("event e1 missing after update")
	}
	if *got != updated {
		t.Errorf("event = %+v, want %+v", *got, updated)
	}
}

func TestUpdateScheduleEvent_UnknownIDIsNoop(t *testing.T) {
	ctx := context.Background()
	store, _ := newLoadedStore(t)
	before := store.Schedule()

	ghost := schedule.Event{ID: "no-such-id", Day: schedule.Monday, Time: "10:00 AM", Title: "Ghost", Type: schedule.TypeTraining}
	if err := store.UpdateScheduleEvent(ctx, ghost); err != nil {
		t.Fatalf("UpdateScheduleEvent on unknown id: %v", err)
	}

	after := store.Schedule()
	if len(after) != len(before) {
		t.Errorf("collection size changed: %d -> %d", len(before), len(after))
	}
	for _, e := range after {
		if e.ID == "no-such-id" {
			t.Error("ghost event was inserted")
		}
	}
}

func TestDeleteScheduleEvent(t *testing.T) {
	ctx := context.Background()
	store, _ := newLoadedStore(t)

	if err := store.DeleteScheduleEvent(ctx, "1"); err != nil {
		t.Fatalf("DeleteScheduleEvent: %v", err)
	}
	for _, e := range store.Schedule() {
		if e.ID == "1" {
			t.Error("event 1 still present after delete")
		}
	}

	// Deleting an absent id neither errors nor shrinks the collection
	before := len(store.Schedule())
	if err := store.DeleteScheduleEvent(ctx, "1"); err != nil {
		t.Fatalf("repeat delete: %v", err)
	}
	if got := len(store.Schedule()); got != before {
		t.Errorf("collection size after absent delete = %d, want %d", got, before)
	}
}

func TestAddToGallery_PrependsNewestFirst(t *testing.T) {
	ctx := context.Background()
	slots := slot.NewMemoryStore()
	// Start from an empty gallery slot so order is fully controlled
	if err := slots.Put(ctx, content.SlotGallery, "[]"); err != nil {
		t.Fatalf("seeding slot: %v", err)
	}
	store := content.NewStore(slots)
	if err := store.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}

	for _, id := range []string{"g1", "g2", "g3"} {
		photo := gallery.Photo{ID: id, URL: "data:" + id, Category: gallery.CategoryAction, Type: gallery.TypeImage, Transform: gallery.DefaultTransform()}
		if err := store.AddToGallery(ctx, photo); err != nil {
			t.Fatalf("AddToGallery(%s): %v", id, err)
		}
	}

	got := store.Gallery()
	want := []string{"g3", "g2", "g1"}
	if len(got) != len(want) {
		t.Fatalf("gallery length = %d, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("gallery[%d].ID = %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestUpdateGalleryPhoto_PersistsSlot(t *testing.T) {
	ctx := context.Background()
	store, slots := newLoadedStore(t)

	photos := store.Gallery()
	edited := photos[0]
	edited.Transform = gallery.Centered(2.0)
	edited.CaptionEN = "new caption"
	if err := store.UpdateGalleryPhoto(ctx, edited); err != nil {
		t.Fatalf("UpdateGalleryPhoto: %v", err)
	}

	raw, ok, _ := slots.Get(ctx, content.SlotGallery)
	if !ok {
		t.Fatal("gallery slot not written")
	}
	var persisted []gallery.Photo
	if err := json.Unmarshal([]byte(raw), &persisted); err != nil {
		t.Fatalf("gallery slot is not valid JSON: %v", err)
	}
	if persisted[0].CaptionEN != "new caption" || persisted[0].Transform.Scale != 2.0 {
		t.Errorf("persisted photo = %+v, want edited values", persisted[0])
	}
	if persisted[0].Transform.X != 0 || persisted[0].Transform.Y != 0 {
		t.Errorf("persisted transform offset = (%v, %v), want (0, 0)", persisted[0].Transform.X, persisted[0].Transform.Y)
	}
}

func TestUpdateHeroImage_FailOpenOnQuota(t *testing.T) {
	ctx := context.Background()
	store, slots := newLoadedStore(t)
	slots.FailKeys = map[string]error{content.SlotHero: slot.ErrQuotaExceeded}

	err := store.UpdateHeroImage(ctx, "data:image/jpeg;base64,huge")
	if err == nil {
		t.Fatal("expected quota warning, got nil")
	}
	if !content.IsQuotaError(err) {
		t.Errorf("warning = %v, want quota error", err)
	}

	// In-memory state keeps the new value despite the failed write
	if got := store.HeroImage(); got != "data:image/jpeg;base64,huge" {
		t.Errorf("hero image = %q, want updated value", got)
	}
	if w, ok := store.LastWarning(); !ok || w.Slot != content.SlotHero {
		t.Errorf("LastWarning = (%+v, %v), want hero slot warning", w, ok)
	}
}

func TestMutations_OnlyTouchOwnSlot(t *testing.T) {
	ctx := context.Background()
	store, slots := newLoadedStore(t)
	slots.FailKeys = map[string]error{content.SlotGallery: slot.ErrQuotaExceeded}

	// A schedule mutation must succeed even while the gallery slot is full
	event := schedule.Event{ID: "e9", Day: schedule.Sunday, Time: "08:00 AM", Title: "Recovery", Type: schedule.TypeTraining}
	if err := store.AddScheduleEvent(ctx, event); err != nil {
		t.Fatalf("AddScheduleEvent with unrelated failing slot: %v", err)
	}

	link := social.Link{ID: "s9", Platform: social.PlatformTikTok, Handle: "@rilliex", URL: "https://tiktok.com", Followers: "1K"}
	if err := store.AddSocialLink(ctx, link); err != nil {
		t.Fatalf("AddSocialLink with unrelated failing slot: %v", err)
	}
}

func TestSocialLinkLifecycle(t *testing.T) {
	ctx := context.Background()
	store, _ := newLoadedStore(t)

	link := social.Link{ID: "s9", Platform: social.PlatformDouyin, Handle: "rilliex", URL: "https://douyin.com", Followers: "10K"}
	if err := store.AddSocialLink(ctx, link); err != nil {
		t.Fatalf("AddSocialLink: %v", err)
	}

	link.Followers = "25K"
	if err := store.UpdateSocialLink(ctx, link); err != nil {
		t.Fatalf("UpdateSocialLink: %v", err)
	}
	found := false
	for _, l := range store.SocialLinks() {
		if l.ID == "s9" {
			found = true
			if l.Followers != "25K" {
				t.Errorf("followers = %q, want 25K", l.Followers)
			}
		}
	}
	if !found {
		t.Fatal("link s9 missing after update")
	}

	if err := store.DeleteSocialLink(ctx, "s9"); err != nil {
		t.Fatalf("DeleteSocialLink: %v", err)
	}
	for _, l := range store.SocialLinks() {
		if l.ID == "s9" {
			t.Error("link s9 still present after delete")
		}
	}
}

func TestSubscribe_NotifiedOnEveryMutation(t *testing.T) {
	ctx := context.Background()
	store, _ := newLoadedStore(t)

	calls := 0
	store.Subscribe(func() { calls++ })

	_ = store.UpdateProfileImage(ctx, "new")
	_ = store.DeleteScheduleEvent(ctx, "does-not-exist")
	_ = store.AddSocialLink(ctx, social.Link{ID: "n1", Platform: social.PlatformOther, Handle: "h", URL: "u"})

	if calls != 3 {
		t.Errorf("subscriber calls = %d, want 3", calls)
	}
}

func TestReads_ReturnCopies(t *testing.T) {
	store, _ := newLoadedStore(t)

	snapshot := store.Schedule()
	if len(snapshot) == 0 {
		t.Fatal("expected seeded schedule")
	}
	snapshot[0].Title = "mutated through snapshot"

	fresh := store.Schedule()
	if fresh[0].Title == "mutated through snapshot" {
		t.Error("snapshot mutation leaked into the store")
	}
}
