package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	_ "modernc.org/sqlite"

	"rilliex/internal/adapters/assistant"
	emailPkg "rilliex/internal/adapters/email"
	web "rilliex/internal/adapters/http"
	"rilliex/internal/adapters/storage"
	contactStore "rilliex/internal/adapters/storage/contact"
	slotStore "rilliex/internal/adapters/storage/slot"
	"rilliex/internal/content"
	"rilliex/internal/session"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// WAL mode, foreign keys, and a busy timeout keep the single-writer
	// SQLite file happy under concurrent handlers.
	dbPath := envOrDefault("RILLIEX_DB", "rilliex.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}
	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Build the content store over the slot table and load (or seed)
	// every persisted value before serving traffic.
	store := content.NewStore(slotStore.NewSQLiteStore(db))
	if err := store.Load(context.Background()); err != nil {
		log.Fatalf("failed to load content: %v", err)
	}

	passcode := os.Getenv("RILLIEX_ADMIN_PASSCODE")
	if passcode == "" {
		if os.Getenv("RILLIEX_ENV") == "production" {
			log.Fatal("RILLIEX_ADMIN_PASSCODE is required in production")
		}
		passcode = "admin"
		log.Println("WARNING: using default passcode 'admin' (set RILLIEX_ADMIN_PASSCODE)")
	}
	gate := session.NewGate(passcode)

	// AI coach: Gemini when a key is present, a canned offline reply otherwise.
	var coach assistant.Client
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		coach, err = assistant.NewGeminiClient(context.Background(), apiKey)
		if err != nil {
			log.Fatalf("failed to configure Gemini client: %v", err)
		}
		log.Println("AI coach configured (Gemini)")
	} else {
		coach = assistant.NewNoopClient()
		log.Println("AI coach configured (noop — set GEMINI_API_KEY for real replies)")
	}

	// Contact-form relay: Resend when a key is present.
	var sender emailPkg.Sender
	emailFrom := envOrDefault("RILLIEX_RESEND_FROM", "Rilliex <noreply@rilliex.com>")
	ownerEmail := envOrDefault("RILLIEX_OWNER_EMAIL", "hello@rilliex.com")
	if resendKey := os.Getenv("RESEND_API_KEY"); resendKey != "" {
		sender = emailPkg.NewResendSender(resendKey, emailFrom)
		log.Println("Email sender configured (Resend)")
	} else {
		sender = emailPkg.NewNoopSender()
		if os.Getenv("RILLIEX_ENV") == "production" {
			log.Println("WARNING: RESEND_API_KEY is not set — contact relay is DISABLED in production")
		} else {
			log.Println("Email sender configured (noop — set RESEND_API_KEY for real delivery)")
		}
	}

	mux := web.NewMux(&web.Deps{
		Content:      store,
		Gate:         gate,
		Assistant:    coach,
		EmailSender:  sender,
		ContactStore: contactStore.NewSQLiteStore(db),
		OwnerEmail:   ownerEmail,
		StaticDir:    envOrDefault("RILLIEX_STATIC_DIR", "web"),
	})

	addr := envOrDefault("RILLIEX_ADDR", ":8080")
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Rilliex %s starting on %s (env=%s)", version, addr, envOrDefault("RILLIEX_ENV", "development"))
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
