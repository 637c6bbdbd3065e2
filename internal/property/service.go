package property

import (
	"fmt"
	"log/slog"
	"time"
)

// Service provides property business logic on top of the repository.
type Service struct {
	repo *Repository
}

// NewService creates a property service.
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// List returns properties matching the optional search term, newest first.
func (s *Service) List(search string) ([]*Property, error) {
	return s.repo.List(search)
}

// ListOrEmpty is the degraded listing used by the public site: a store
// failure is logged and surfaces as an empty result so the page renders
// its "no properties found" state instead of an error.
func (s *Service) ListOrEmpty(search string) []*Property {
	props, err := s.repo.List(search)
	if err != nil {
		slog.Error("listing properties", "search", search, "error", err)
		return nil
	}
	return props
}

// Get returns a single property by ID.
func (s *Service) Get(id int64) (*Property, error) {
	return s.repo.GetByID(id)
}

// Create stores a new property. A missing yearBuilt defaults to the current
// calendar year. Required fields are not enforced here; the store rejects
// records it cannot hold.
func (s *Service) Create(in Input) (*Property, error) {
	if in.YearBuilt == nil {
		year := int64(time.Now().Year())
		in.YearBuilt = &year
	}

	p, err := s.repo.Insert(in)
	if err != nil {
		return nil, fmt.Errorf("creating property: %w", err)
	}
	return p, nil
}

// Update applies a partial update to an existing property.
func (s *Service) Update(id int64, in Input) (*Property, error) {
	return s.repo.Update(id, in)
}

// Delete removes a property by ID.
func (s *Service) Delete(id int64) error {
	return s.repo.Delete(id)
}
