package web

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/realstat/realstat/internal/property"
)

type homeData struct {
	Properties []*property.Property
	Search     string
	Count      int
}

type detailData struct {
	Property *property.Property
}

// handleHome renders the public listing page. A failing store degrades to the
// empty "no properties found" state; the error is already logged by the
// service.
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	search := strings.TrimSpace(r.URL.Query().Get("search"))
	props := s.props.ListOrEmpty(search)

	s.render(w, "home.html", homeData{
		Properties: props,
		Search:     search,
		Count:      len(props),
	})
}

// handleDetail renders the property detail page with its image gallery and
// contact form.
func (s *Server) handleDetail(w http.ResponseWriter, r *http.Request) {
	idStr := strings.TrimPrefix(r.URL.Path, "/properties/")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	prop, err := s.props.Get(id)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	s.render(w, "detail.html", detailData{Property: prop})
}

// handleLoginPage renders the admin login form. An already authenticated
// admin goes straight to the dashboard.
func (s *Server) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	if _, err := s.sessions.Validate(r); err == nil {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	s.render(w, "login.html", nil)
}
