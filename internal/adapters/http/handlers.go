package web

import (
	"bytes"
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"rilliex/internal/adapters/assistant"
	"rilliex/internal/adapters/email"
	"rilliex/internal/adapters/http/middleware"
	"rilliex/internal/content"
	contactDomain "rilliex/internal/domain/contact"
	"rilliex/internal/domain/gallery"
	"rilliex/internal/domain/profile"
	scheduleDomain "rilliex/internal/domain/schedule"
	"rilliex/internal/domain/social"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// generateID creates a new UUID string.
func generateID() string {
	return uuid.New().String()
}

// internalError logs the real error and returns a generic message to the client.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// strictDecode decodes JSON from the request body, rejecting unknown fields.
func strictDecode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Operator-facing warning messages for failed durable writes. The edit
// itself has been applied in memory; only durability is at risk.
const (
	warnStorageFull  = "Storage full! The change is applied but may not survive a restart. Try deleting some old photos."
	warnPersistOther = "Saving failed. The change is applied but may not survive a restart."
)

// persistWarning maps a content-store persistence warning to the message
// shown to the operator, or "" when the write succeeded.
func persistWarning(err error) string {
	if err == nil {
		return ""
	}
	if content.IsQuotaError(err) {
		return warnStorageFull
	}
	return warnPersistOther
}

// mutationResponse is the JSON shape returned by every admin mutation.
type mutationResponse struct {
	OK      bool   `json:"ok"`
	ID      string `json:"id,omitempty"`
	Warning string `json:"warning,omitempty"`
}

const templatesDir = "internal/adapters/http/templates"

func renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data any) {
	funcMap := template.FuncMap{
		"isAdmin":   func() bool { return middleware.IsAdmin(r.Context()) },
		"csrfToken": func() string { return csrf.Token(r) },
		"renderMarkdown": func(md string) template.HTML {
			var buf bytes.Buffer
			if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
				return template.HTML(template.HTMLEscapeString(md))
			}
			return template.HTML(buf.String())
		},
	}

	layoutPath := filepath.Join(templatesDir, "layout.html")
	pagePath := filepath.Join(templatesDir, templateName)
	tpl, err := template.New("layout.html").Funcs(funcMap).ParseFiles(layoutPath, pagePath)
	if err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tpl.Execute(w, data); err != nil {
		http.Error(w, "Render error: "+err.Error(), http.StatusInternalServerError)
	}
}

// daySection groups the schedule for the weekly grid.
type daySection struct {
	Day    string
	Events []scheduleDomain.Event
}

// handleIndex renders the public portfolio page.
func handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	events := deps.Content.Schedule()
	var week []daySection
	for _, day := range scheduleDomain.ValidDays {
		section := daySection{Day: day}
		for _, e := range events {
			if e.Day == day {
				section.Events = append(section.Events, e)
			}
		}
		week = append(week, section)
	}

	renderTemplate(w, r, "index.html", map[string]any{
		"OwnerName":    profile.OwnerName,
		"Bio":          profile.Bio.EN,
		"HeroImage":    deps.Content.HeroImage(),
		"ProfileImage": deps.Content.ProfileImage(),
		"Achievements": profile.Achievements,
		"Coaching":     profile.Coaching,
		"Week":         week,
		"Gallery":      deps.Content.Gallery(),
		"SocialLinks":  deps.Content.SocialLinks(),
	})
}

// contentSnapshot is the JSON shape of GET /api/content.
type contentSnapshot struct {
	Schedule     []scheduleDomain.Event `json:"schedule"`
	Gallery      []gallery.Photo        `json:"gallery"`
	SocialLinks  []social.Link          `json:"socialLinks"`
	HeroImage    string                 `json:"heroImage"`
	ProfileImage string                 `json:"profileImage"`
	IsAdmin      bool                   `json:"isAdmin"`
}

// handleContent handles GET /api/content: the full content snapshot the
// page re-renders from.
func handleContent(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, contentSnapshot{
		Schedule:     deps.Content.Schedule(),
		Gallery:      deps.Content.Gallery(),
		SocialLinks:  deps.Content.SocialLinks(),
		HeroImage:    deps.Content.HeroImage(),
		ProfileImage: deps.Content.ProfileImage(),
		IsAdmin:      middleware.IsAdmin(r.Context()),
	})
}

// handleLogin handles POST /api/login: the passcode check that unlocks
// admin mode. There is no lockout and no audit trail; the per-IP rate
// limiter is the only brake on guessing.
func handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Passcode string `json:"passcode"`
	}
	if err := strictDecode(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if !deps.Gate.Login(req.Passcode) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Incorrect passcode"})
		return
	}
	token, err := sessions.Create()
	if err != nil {
		internalError(w, err)
		return
	}
	middleware.SetSessionCookie(w, token)
	slog.Info("admin_login")
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// handleLogout handles POST /api/logout.
func handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if token := middleware.SessionToken(r); token != "" {
		sessions.Delete(token)
	}
	middleware.ClearSessionCookie(w)
	deps.Gate.Logout()
	slog.Info("admin_logout")
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// chatSessions holds open assistant conversations keyed by an opaque ID
// handed to the browser. Entries live for the process lifetime; the chat
// widget is a single-visitor feature on a personal site.
var chatSessions sync.Map

// handleChat handles POST /api/chat. Assistant failures never surface as
// HTTP errors: the reply field carries a friendly fallback instead.
func handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		SessionID string `json:"sessionId"`
		Message   string `json:"message"`
		Lang      string `json:"lang"`
	}
	if err := strictDecode(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		http.Error(w, "message is required", http.StatusBadRequest)
		return
	}
	if req.Lang != profile.LangZH {
		req.Lang = profile.LangEN
	}

	ctx := r.Context()
	sessionID := req.SessionID
	sess, ok := loadChatSession(sessionID)
	if !ok {
		created, err := deps.Assistant.StartSession(ctx, req.Lang)
		if err != nil {
			slog.Error("assistant_session_failed", "error", err.Error())
			writeJSON(w, http.StatusOK, map[string]string{
				"sessionId": "",
				"reply":     assistant.FallbackTransportError,
			})
			return
		}
		sessionID = generateID()
		chatSessions.Store(sessionID, created)
		sess = created
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"sessionId": sessionID,
		"reply":     assistant.Relay(ctx, sess, req.Message),
	})
}

func loadChatSession(id string) (assistant.Session, bool) {
	if id == "" {
		return nil, false
	}
	v, ok := chatSessions.Load(id)
	if !ok {
		return nil, false
	}
	sess, ok := v.(assistant.Session)
	return sess, ok
}

// handleContact handles POST /api/contact: stores the enquiry and relays
// it to the owner by email. A failed relay is logged, not surfaced; the
// stored copy is the durable record.
func handleContact(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	// Accepts both the plain form post from the page and JSON from fetch.
	var name, addr, body string
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var req struct {
			Name    string `json:"name"`
			Email   string `json:"email"`
			Message string `json:"message"`
		}
		if err := strictDecode(r, &req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		name, addr, body = req.Name, req.Email, req.Message
	} else {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		name, addr, body = r.FormValue("name"), r.FormValue("email"), r.FormValue("body")
	}

	msg := contactDomain.Message{
		ID:         generateID(),
		Name:       strings.TrimSpace(name),
		Email:      strings.TrimSpace(addr),
		Body:       strings.TrimSpace(body),
		ReceivedAt: timeNow(),
	}
	if err := msg.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	if err := deps.ContactStore.Save(ctx, msg); err != nil {
		internalError(w, err)
		return
	}
	if _, err := deps.EmailSender.Send(ctx, email.ContactNotification(msg, deps.OwnerEmail)); err != nil {
		slog.Error("contact_relay_failed", "error", err.Error(), "message_id", msg.ID)
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
