package web

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"rilliex/internal/adapters/imaging"
	"rilliex/internal/domain/gallery"
	scheduleDomain "rilliex/internal/domain/schedule"
	"rilliex/internal/domain/social"
)

// maxUpload bounds multipart bodies: a 5 MB media file plus form overhead.
const maxUpload = 6 << 20

// handleScheduleEvent handles POST (create) and PUT (update) on
// /api/admin/schedule. Create assigns the ID; update replaces by ID and
// silently succeeds when the ID is unknown.
func handleScheduleEvent(w http.ResponseWriter, r *http.Request) {
	var event scheduleDomain.Event
	if err := strictDecode(r, &event); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	event.ApplyDefaults()
	if err := event.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	switch r.Method {
	case "POST":
		event.ID = generateID()
		warn := deps.Content.AddScheduleEvent(ctx, event)
		writeJSON(w, http.StatusOK, mutationResponse{OK: true, ID: event.ID, Warning: persistWarning(warn)})
	case "PUT":
		if event.ID == "" {
			http.Error(w, "id is required", http.StatusBadRequest)
			return
		}
		warn := deps.Content.UpdateScheduleEvent(ctx, event)
		writeJSON(w, http.StatusOK, mutationResponse{OK: true, ID: event.ID, Warning: persistWarning(warn)})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleScheduleEventByID handles DELETE /api/admin/schedule/{id}.
func handleScheduleEventByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != "DELETE" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/api/admin/schedule/")
	if id == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}
	warn := deps.Content.DeleteScheduleEvent(r.Context(), id)
	writeJSON(w, http.StatusOK, mutationResponse{OK: true, Warning: persistWarning(warn)})
}

// handleGalleryUpload handles POST /api/admin/gallery: a multipart upload
// of one media file. Images are downscaled and recompressed before
// storage; video is encoded verbatim, which makes large videos the main
// quota risk. A decode or read failure aborts before any state changes.
func handleGalleryUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseMultipartForm(maxUpload); err != nil {
		http.Error(w, "request too large or malformed", http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	mediaType := gallery.TypeImage
	var url string
	if strings.HasPrefix(header.Header.Get("Content-Type"), "video/") {
		mediaType = gallery.TypeVideo
		url, err = imaging.EncodeFile(file, header.Header.Get("Content-Type"))
	} else {
		url, err = imaging.Normalize(file)
	}
	if err != nil {
		if errors.Is(err, imaging.ErrImageDecode) || errors.Is(err, imaging.ErrFileRead) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		internalError(w, err)
		return
	}

	category := r.FormValue("category")
	if category == "" {
		category = gallery.DefaultCategory
	}
	photo := gallery.Photo{
		ID:        generateID(),
		URL:       url,
		Alt:       r.FormValue("alt"),
		Category:  category,
		Type:      mediaType,
		Transform: gallery.DefaultTransform(),
	}
	if err := photo.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	warn := deps.Content.AddToGallery(r.Context(), photo)
	writeJSON(w, http.StatusOK, mutationResponse{OK: true, ID: photo.ID, Warning: persistWarning(warn)})
}

// galleryEdit is the media editor's save payload: zoom plus captions.
// Offsets are not accepted; the crop model only recenters and scales.
type galleryEdit struct {
	Scale     float64 `json:"scale"`
	Alt       string  `json:"alt"`
	Category  string  `json:"category"`
	CaptionEN string  `json:"caption_en"`
	CaptionZH string  `json:"caption_zh"`
}

// handleGalleryPhotoByID handles PUT (editor save) and DELETE on
// /api/admin/gallery/{id}. Delete is immediate, no confirmation step.
func handleGalleryPhotoByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/admin/gallery/")
	if id == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}
	ctx := r.Context()

	switch r.Method {
	case "PUT":
		var edit galleryEdit
		if err := strictDecode(r, &edit); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		var photo *gallery.Photo
		for _, p := range deps.Content.Gallery() {
			if p.ID == id {
				p := p
				photo = &p
				break
			}
		}
		if photo == nil {
			// Absent id: the store treats this as a no-op success
			writeJSON(w, http.StatusOK, mutationResponse{OK: true, ID: id})
			return
		}
		photo.Transform = gallery.Centered(gallery.ClampScale(edit.Scale))
		photo.CaptionEN = edit.CaptionEN
		photo.CaptionZH = edit.CaptionZH
		if edit.Alt != "" {
			photo.Alt = edit.Alt
		}
		if edit.Category != "" {
			photo.Category = edit.Category
		}
		if err := photo.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		warn := deps.Content.UpdateGalleryPhoto(ctx, *photo)
		writeJSON(w, http.StatusOK, mutationResponse{OK: true, ID: id, Warning: persistWarning(warn)})
	case "DELETE":
		warn := deps.Content.RemoveFromGallery(ctx, id)
		writeJSON(w, http.StatusOK, mutationResponse{OK: true, Warning: persistWarning(warn)})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleSocialLink handles POST (create) and PUT (update) on
// /api/admin/social.
func handleSocialLink(w http.ResponseWriter, r *http.Request) {
	var link social.Link
	if err := strictDecode(r, &link); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if link.Platform == "" {
		link.Platform = social.ValidPlatforms[0]
	}
	if err := link.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	switch r.Method {
	case "POST":
		link.ID = generateID()
		warn := deps.Content.AddSocialLink(ctx, link)
		writeJSON(w, http.StatusOK, mutationResponse{OK: true, ID: link.ID, Warning: persistWarning(warn)})
	case "PUT":
		if link.ID == "" {
			http.Error(w, "id is required", http.StatusBadRequest)
			return
		}
		warn := deps.Content.UpdateSocialLink(ctx, link)
		writeJSON(w, http.StatusOK, mutationResponse{OK: true, ID: link.ID, Warning: persistWarning(warn)})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleSocialLinkByID handles DELETE /api/admin/social/{id}.
func handleSocialLinkByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != "DELETE" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/api/admin/social/")
	if id == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}
	warn := deps.Content.DeleteSocialLink(r.Context(), id)
	writeJSON(w, http.StatusOK, mutationResponse{OK: true, Warning: persistWarning(warn)})
}

// handleHeroImage handles POST /api/admin/hero: replaces the hero banner.
func handleHeroImage(w http.ResponseWriter, r *http.Request) {
	handleSingletonImage(w, r, deps.Content.UpdateHeroImage)
}

// handleProfileImage handles POST /api/admin/profile-image: replaces the
// profile portrait.
func handleProfileImage(w http.ResponseWriter, r *http.Request) {
	handleSingletonImage(w, r, deps.Content.UpdateProfileImage)
}

// handleSingletonImage normalizes an uploaded image and hands the encoded
// value to the given replace operation. Both singleton images accept
// images only; there is no video hero.
func handleSingletonImage(w http.ResponseWriter, r *http.Request, update func(ctx context.Context, value string) error) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseMultipartForm(maxUpload); err != nil {
		http.Error(w, "request too large or malformed", http.StatusBadRequest)
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	url, err := imaging.Normalize(file)
	if err != nil {
		if errors.Is(err, imaging.ErrImageDecode) || errors.Is(err, imaging.ErrFileRead) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		internalError(w, err)
		return
	}

	warn := update(r.Context(), url)
	writeJSON(w, http.StatusOK, mutationResponse{OK: true, Warning: persistWarning(warn)})
}
