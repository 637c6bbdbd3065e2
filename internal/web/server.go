// Package web provides the HTTP server for the public catalog, the admin
// back office, and the JSON API.
package web

import (
	"database/sql"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/realstat/realstat/internal/auth"
	"github.com/realstat/realstat/internal/inquiry"
	"github.com/realstat/realstat/internal/logging"
	"github.com/realstat/realstat/internal/property"
	"github.com/realstat/realstat/internal/upload"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Server is the realstat HTTP server.
type Server struct {
	props     *property.Service
	inquiries *inquiry.Repository
	uploads   *upload.Service
	sessions  *auth.SessionStore
	admins    *auth.AdminStore
	templates *template.Template
	mux       *http.ServeMux
	handler   http.Handler
}

// NewServer creates a server backed by the given database. Uploaded images
// are written to uploadsDir and served at /uploads/.
func NewServer(db *sql.DB, uploadsDir string) (*Server, error) {
	funcMap := template.FuncMap{
		"formatDate": tmplFormatDate,
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	s := &Server{
		props:     property.NewService(property.NewRepository(db)),
		inquiries: inquiry.NewRepository(db),
		uploads:   upload.NewService(uploadsDir),
		sessions:  auth.NewSessionStore(db),
		admins:    auth.NewAdminStore(db),
		templates: tmpl,
		mux:       http.NewServeMux(),
	}

	staticContent, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("creating static sub-fs: %w", err)
	}

	s.mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticContent))))
	s.mux.Handle("/uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadsDir))))

	s.mux.HandleFunc("/", s.handleHome)
	s.mux.HandleFunc("/properties/", s.handleDetail)
	s.mux.HandleFunc("/login", s.handleLoginPage)
	s.mux.HandleFunc("/health", s.handleHealth)

	s.mux.HandleFunc("/admin", s.handleAdminDashboard)
	s.mux.HandleFunc("/admin/properties", s.handleAdminProperties)
	s.mux.HandleFunc("/admin/properties/new", s.handleAdminPropertyNew)
	s.mux.HandleFunc("/admin/properties/", s.handleAdminPropertyEdit)
	s.mux.HandleFunc("/admin/inquiries", s.handleAdminInquiries)

	s.mux.HandleFunc("/api/properties", s.handleAPIProperties)
	s.mux.HandleFunc("/api/upload", s.handleAPIUpload)
	s.mux.HandleFunc("/api/inquiries", s.handleAPIInquiries)
	s.mux.HandleFunc("/api/auth/login", s.handleAPILogin)
	s.mux.HandleFunc("/api/auth/logout", s.handleAPILogout)

	s.handler = logging.RequestLogger(auth.RequireAdmin(s.sessions, s.mux))

	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe(addr string) error {
	fmt.Printf("Starting realstat on http://localhost%s\n", addr)
	return http.ListenAndServe(addr, s)
}

// handleHealth responds to liveness probes.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ok")); err != nil {
		return
	}
}

// render executes a full page template.
func (s *Server) render(w http.ResponseWriter, name string, data interface{}) {
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, fmt.Sprintf("Error rendering template: %v", err), http.StatusInternalServerError)
	}
}

func tmplFormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}
