package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"time"

	"rilliex/internal/adapters/assistant"
	"rilliex/internal/adapters/email"
	"rilliex/internal/adapters/http/middleware"
	contactStore "rilliex/internal/adapters/storage/contact"
	"rilliex/internal/content"
	"rilliex/internal/session"
)

// Deps holds the application dependencies the handlers use. Content and
// Gate must be constructed (and Content loaded) before NewMux is called.
type Deps struct {
	Content      *content.Store
	Gate         *session.Gate
	Assistant    assistant.Client
	EmailSender  email.Sender
	ContactStore contactStore.Store
	OwnerEmail   string // recipient for contact-form relays
	StaticDir    string // bundled assets (default hero image), optional
}

// Global deps instance (set by NewMux)
var deps *Deps

// Global session store instance
var sessions *middleware.SessionStore

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// loadCSRFKey reads the CSRF secret from RILLIEX_CSRF_KEY (hex-encoded, 32 bytes).
// In production, the key MUST be set. In development, a random key is generated per startup.
func loadCSRFKey() []byte {
	if keyHex := os.Getenv("RILLIEX_CSRF_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("RILLIEX_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if os.Getenv("RILLIEX_ENV") == "production" {
		log.Fatal("RILLIEX_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (sessions won't survive restart). Set RILLIEX_CSRF_KEY for production.")
	return key
}

// NewMux wires HTTP handlers for the app.
func NewMux(d *Deps) http.Handler {
	deps = d
	sessions = middleware.NewSessionStore()
	middleware.SecureCookies = os.Getenv("RILLIEX_ENV") == "production"

	mux := http.NewServeMux()
	if d.StaticDir != "" {
		fs := http.FileServer(http.Dir(d.StaticDir))
		mux.Handle("/image/", fs)
		mux.Handle("/static/", fs)
	}
	registerRoutes(mux)

	// CSRF key: 32-byte hex-encoded secret from env var
	csrfKey := loadCSRFKey()

	// Rate limiter: configurable requests per second per IP
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	// Apply middleware: SecurityHeaders -> CSRF -> Auth -> RateLimit -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey),
		middleware.Auth(sessions),
		middleware.RateLimit(limiter),
	)
}

func registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/", handleIndex)
	mux.HandleFunc("/api/content", handleContent)
	mux.HandleFunc("/api/login", handleLogin)
	mux.HandleFunc("/api/logout", handleLogout)
	mux.HandleFunc("/api/chat", handleChat)
	mux.HandleFunc("/api/contact", handleContact)

	// Editing flows: the RequireAdmin gate controls which affordances are
	// reachable; the content store itself trusts its callers.
	adminOnly := func(h http.HandlerFunc) http.Handler {
		return middleware.RequireAdmin(h)
	}
	mux.Handle("/api/admin/schedule", adminOnly(handleScheduleEvent))
	mux.Handle("/api/admin/schedule/", adminOnly(handleScheduleEventByID))
	mux.Handle("/api/admin/gallery", adminOnly(handleGalleryUpload))
	mux.Handle("/api/admin/gallery/", adminOnly(handleGalleryPhotoByID))
	mux.Handle("/api/admin/social", adminOnly(handleSocialLink))
	mux.Handle("/api/admin/social/", adminOnly(handleSocialLinkByID))
	mux.Handle("/api/admin/hero", adminOnly(handleHeroImage))
	mux.Handle("/api/admin/profile-image", adminOnly(handleProfileImage))
}
