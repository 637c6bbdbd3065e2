package auth

import (
	"net/http"
	"strings"
)

// RequireAdmin is middleware that gates the admin section. Requests under
// /admin with a missing or invalid session are redirected to the login page.
// Every other path passes through untouched; the JSON API carries no gate,
// matching the public contract.
func RequireAdmin(sessions *SessionStore, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !isAdminPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		if _, err := sessions.Validate(r); err != nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func isAdminPath(path string) bool {
	return path == "/admin" || strings.HasPrefix(path, "/admin/")
}
