package web

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/realstat/realstat/internal/inquiry"
	"github.com/realstat/realstat/internal/property"
)

type dayActivity struct {
	Label      string // DD/MM
	Properties int
	Inquiries  int
}

type dashboardData struct {
	PropertyCount   int64
	InquiryCount    int64
	NewInquiries    int
	Activity        []dayActivity
	RecentInquiries []*inquiry.Inquiry
}

// handleAdminDashboard renders totals and the last-7-days activity counts.
func (s *Server) handleAdminDashboard(w http.ResponseWriter, r *http.Request) {
	props, err := s.props.List("")
	if err != nil {
		http.Error(w, fmt.Sprintf("Error loading properties: %v", err), http.StatusInternalServerError)
		return
	}

	inquiries, err := s.inquiries.List()
	if err != nil {
		http.Error(w, fmt.Sprintf("Error loading inquiries: %v", err), http.StatusInternalServerError)
		return
	}

	newCount := 0
	for _, i := range inquiries {
		if i.Status == inquiry.StatusNew {
			newCount++
		}
	}

	recent := inquiries
	if len(recent) > 5 {
		recent = recent[:5]
	}

	s.render(w, "admin_dashboard.html", dashboardData{
		PropertyCount:   int64(len(props)),
		InquiryCount:    int64(len(inquiries)),
		NewInquiries:    newCount,
		Activity:        weekActivity(props, inquiries, time.Now()),
		RecentInquiries: recent,
	})
}

// weekActivity buckets property and inquiry creation into the last seven
// calendar days, oldest first.
func weekActivity(props []*property.Property, inquiries []*inquiry.Inquiry, now time.Time) []dayActivity {
	days := make([]dayActivity, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		entry := dayActivity{Label: day.Format("02/01")}
		for _, p := range props {
			if sameDay(p.CreatedAt, day) {
				entry.Properties++
			}
		}
		for _, q := range inquiries {
			if sameDay(q.CreatedAt, day) {
				entry.Inquiries++
			}
		}
		days = append(days, entry)
	}
	return days
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

type adminPropertiesData struct {
	Properties []*property.Property
}

// handleAdminProperties renders the property management table.
func (s *Server) handleAdminProperties(w http.ResponseWriter, r *http.Request) {
	props, err := s.props.List("")
	if err != nil {
		http.Error(w, fmt.Sprintf("Error loading properties: %v", err), http.StatusInternalServerError)
		return
	}

	s.render(w, "admin_properties.html", adminPropertiesData{Properties: props})
}

type propertyFormData struct {
	Property *property.Property // nil when creating
}

// handleAdminPropertyNew renders an empty property form.
func (s *Server) handleAdminPropertyNew(w http.ResponseWriter, r *http.Request) {
	s.render(w, "admin_property_form.html", propertyFormData{})
}

// handleAdminPropertyEdit renders the form pre-filled for an existing
// property. Routes /admin/properties/{id}/edit.
func (s *Server) handleAdminPropertyEdit(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/admin/properties/")
	idStr := strings.TrimSuffix(path, "/edit")
	if idStr == path {
		http.NotFound(w, r)
		return
	}

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

	s.render(w, "admin_property_form.html", propertyFormData{Property: prop})
}

type adminInquiriesData struct {
	Inquiries []*inquiry.Inquiry
}

// handleAdminInquiries renders the inquiry management table.
func (s *Server) handleAdminInquiries(w http.ResponseWriter, r *http.Request) {
	inquiries, err := s.inquiries.List()
	if err != nil {
		http.Error(w, fmt.Sprintf("Error loading inquiries: %v", err), http.StatusInternalServerError)
		return
	}

	s.render(w, "admin_inquiries.html", adminInquiriesData{Inquiries: inquiries})
}
