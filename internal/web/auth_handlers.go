package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// handleAPILogin checks admin credentials and starts a session. The session
// cookie is HttpOnly and validated against the sessions table on every
// admin request, so its value carries no meaning on its own.
func (s *Server) handleAPILogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		apiError(w, "username and password are required", http.StatusBadRequest)
		return
	}

	ok, err := s.admins.Authenticate(username, req.Password)
	if err != nil {
		apiError(w, fmt.Sprintf("checking credentials: %v", err), http.StatusInternalServerError)
		return
	}
	if !ok {
		apiError(w, "Invalid username or password", http.StatusUnauthorized)
		return
	}

	if err := s.sessions.Create(w, username); err != nil {
		apiError(w, fmt.Sprintf("creating session: %v", err), http.StatusInternalServerError)
		return
	}

	apiJSON(w, map[string]bool{"success": true}, http.StatusOK)
}

// handleAPILogout ends the current admin session.
func (s *Server) handleAPILogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := s.sessions.Destroy(w, r); err != nil {
		apiError(w, fmt.Sprintf("ending session: %v", err), http.StatusInternalServerError)
		return
	}

	apiJSON(w, map[string]bool{"success": true}, http.StatusOK)
}
