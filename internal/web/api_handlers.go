package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"sort"
	"strings"

	"github.com/realstat/realstat/internal/inquiry"
	"github.com/realstat/realstat/internal/property"
)

// apiError writes a JSON error response.
func apiError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	resp := map[string]string{"error": msg}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, `{"error":"encode failed"}`, http.StatusInternalServerError)
	}
}

// apiJSON writes a JSON response with the given status code.
func apiJSON(w http.ResponseWriter, data interface{}, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, `{"error":"encode failed"}`, http.StatusInternalServerError)
	}
}

// handleAPIProperties serves the property collection. The mutation verbs
// take the target id in the request body, per the API contract.
func (s *Server) handleAPIProperties(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.apiListProperties(w, r)
	case http.MethodPost:
		s.apiCreateProperty(w, r)
	case http.MethodPut:
		s.apiUpdateProperty(w, r)
	case http.MethodDelete:
		s.apiDeleteProperty(w, r)
	default:
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// apiListProperties returns properties matching the optional search term.
func (s *Server) apiListProperties(w http.ResponseWriter, r *http.Request) {
	search := strings.TrimSpace(r.URL.Query().Get("search"))

	props, err := s.props.List(search)
	if err != nil {
		apiError(w, fmt.Sprintf("listing properties: %v", err), http.StatusInternalServerError)
		return
	}

	if props == nil {
		props = []*property.Property{}
	}

	apiJSON(w, props, http.StatusOK)
}

// apiCreateProperty stores a new property.
func (s *Server) apiCreateProperty(w http.ResponseWriter, r *http.Request) {
	var in property.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		apiError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	p, err := s.props.Create(in)
	if err != nil {
		apiError(w, fmt.Sprintf("saving property: %v", err), http.StatusInternalServerError)
		return
	}

	apiJSON(w, p, http.StatusCreated)
}

// apiUpdateProperty applies a partial update; omitted fields keep their
// stored values.
func (s *Server) apiUpdateProperty(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID *int64 `json:"id"`
		property.Input
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if req.ID == nil {
		apiError(w, "Property ID is required", http.StatusBadRequest)
		return
	}

	p, err := s.props.Update(*req.ID, req.Input)
	if errors.Is(err, property.ErrNotFound) {
		apiError(w, fmt.Sprintf("property %d not found", *req.ID), http.StatusNotFound)
		return
	}
	if err != nil {
		apiError(w, fmt.Sprintf("updating property: %v", err), http.StatusInternalServerError)
		return
	}

	apiJSON(w, p, http.StatusOK)
}

// apiDeleteProperty removes a property by the id in the body.
func (s *Server) apiDeleteProperty(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID *int64 `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if req.ID == nil {
		apiError(w, "Property ID is required", http.StatusBadRequest)
		return
	}

	err := s.props.Delete(*req.ID)
	if errors.Is(err, property.ErrNotFound) {
		apiError(w, fmt.Sprintf("property %d not found", *req.ID), http.StatusNotFound)
		return
	}
	if err != nil {
		apiError(w, fmt.Sprintf("deleting property: %v", err), http.StatusInternalServerError)
		return
	}

	apiJSON(w, map[string]string{"message": "Property deleted successfully"}, http.StatusOK)
}

// uploadResponse is the contract for /api/upload.
type uploadResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	URLs    []string `json:"urls,omitempty"`
}

// handleAPIUpload accepts one or more files from a multipart request and
// returns their public URLs in submission order. Any failed write fails the
// whole batch.
func (s *Server) handleAPIUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		apiJSON(w, uploadResponse{Success: false, Message: "invalid multipart form"}, http.StatusBadRequest)
		return
	}

	// Gather files from every field, field names in sorted order so the
	// batch order is deterministic; order within a field is as submitted.
	var fields []string
	for name := range r.MultipartForm.File {
		fields = append(fields, name)
	}
	sort.Strings(fields)

	var files []*multipart.FileHeader
	for _, name := range fields {
		files = append(files, r.MultipartForm.File[name]...)
	}

	if len(files) == 0 {
		apiJSON(w, uploadResponse{Success: false, Message: "No files uploaded"}, http.StatusBadRequest)
		return
	}

	urls, err := s.uploads.Save(files)
	if err != nil {
		apiJSON(w, uploadResponse{Success: false, Message: "Upload failed"}, http.StatusInternalServerError)
		return
	}

	apiJSON(w, uploadResponse{Success: true, URLs: urls}, http.StatusOK)
}

// handleAPIInquiries serves the inquiry collection: list, contact-form
// submission, and status changes.
func (s *Server) handleAPIInquiries(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.apiListInquiries(w)
	case http.MethodPost:
		s.apiCreateInquiry(w, r)
	case http.MethodPut:
		s.apiSetInquiryStatus(w, r)
	default:
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) apiListInquiries(w http.ResponseWriter) {
	inquiries, err := s.inquiries.List()
	if err != nil {
		apiError(w, fmt.Sprintf("listing inquiries: %v", err), http.StatusInternalServerError)
		return
	}

	if inquiries == nil {
		inquiries = []*inquiry.Inquiry{}
	}

	apiJSON(w, inquiries, http.StatusOK)
}

func (s *Server) apiCreateInquiry(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name          string `json:"name"`
		Email         string `json:"email"`
		PropertyTitle string `json:"property_title"`
		Message       string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Message) == "" {
		apiError(w, "name, email, and message are required", http.StatusBadRequest)
		return
	}

	i, err := s.inquiries.Create(
		strings.TrimSpace(req.Name),
		strings.TrimSpace(req.Email),
		strings.TrimSpace(req.PropertyTitle),
		strings.TrimSpace(req.Message),
	)
	if err != nil {
		apiError(w, fmt.Sprintf("saving inquiry: %v", err), http.StatusInternalServerError)
		return
	}

	apiJSON(w, i, http.StatusCreated)
}

func (s *Server) apiSetInquiryStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID     *int64 `json:"id"`
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if req.ID == nil {
		apiError(w, "Inquiry ID is required", http.StatusBadRequest)
		return
	}
	if !inquiry.ValidStatus(req.Status) {
		apiError(w, fmt.Sprintf("invalid status: %q", req.Status), http.StatusBadRequest)
		return
	}

	i, err := s.inquiries.SetStatus(*req.ID, inquiry.Status(req.Status))
	if errors.Is(err, inquiry.ErrNotFound) {
		apiError(w, fmt.Sprintf("inquiry %d not found", *req.ID), http.StatusNotFound)
		return
	}
	if err != nil {
		apiError(w, fmt.Sprintf("updating inquiry: %v", err), http.StatusInternalServerError)
		return
	}

	apiJSON(w, i, http.StatusOK)
}
