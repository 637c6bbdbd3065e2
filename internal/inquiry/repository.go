package inquiry

import (
	"database/sql"
	"errors"
	"fmt"
)

// ErrNotFound reports that no inquiry matched the given ID.
var ErrNotFound = errors.New("inquiry not found")

// Repository provides data access for inquiries.
type Repository struct {
	db *sql.DB
}

// NewRepository creates an inquiry repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const selectColumns = `id, name, email, property_title, message, status, created_at`

// Create stores a new inquiry with status New and returns it.
func (r *Repository) Create(name, email, propertyTitle, message string) (*Inquiry, error) {
	result, err := r.db.Exec(
		"INSERT INTO inquiries (name, email, property_title, message, status) VALUES (?, ?, ?, ?, ?)",
		name, email, propertyTitle, message, string(StatusNew),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting inquiry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting insert id: %w", err)
	}

	return r.GetByID(id)
}

// GetByID returns an inquiry by its ID.
func (r *Repository) GetByID(id int64) (*Inquiry, error) {
	row := r.db.QueryRow(
		fmt.Sprintf("SELECT %s FROM inquiries WHERE id = ?", selectColumns), id,
	)

	i, err := scanInquiry(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("inquiry %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying inquiry %d: %w", id, err)
	}

	return i, nil
}

// List returns all inquiries, newest first. Archived inquiries stay in the
// list; hiding their actions is a rendering concern.
func (r *Repository) List() ([]*Inquiry, error) {
	rows, err := r.db.Query(
		fmt.Sprintf("SELECT %s FROM inquiries ORDER BY created_at DESC, id DESC", selectColumns),
	)
	if err != nil {
		return nil, fmt.Errorf("listing inquiries: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = fmt.Errorf("closing rows: %w", closeErr)
		}
	}()

	var inquiries []*Inquiry
	for rows.Next() {
		i, err := scanInquiry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning inquiry: %w", err)
		}
		inquiries = append(inquiries, i)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating inquiries: %w", err)
	}

	return inquiries, nil
}

// SetStatus moves an inquiry to the given status and returns the updated
// record. Any defined status may follow any other; there is deliberately no
// transition table here, the admin UI only ever requests New→Replied and
// X→Archived.
func (r *Repository) SetStatus(id int64, status Status) (*Inquiry, error) {
	if !ValidStatus(string(status)) {
		return nil, fmt.Errorf("invalid inquiry status: %s", status)
	}

	result, err := r.db.Exec(
		"UPDATE inquiries SET status = ? WHERE id = ?",
		string(status), id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating inquiry status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		return nil, fmt.Errorf("inquiry %d: %w", id, ErrNotFound)
	}

	return r.GetByID(id)
}

// Count returns the total number of inquiries.
func (r *Repository) Count() (int64, error) {
	var n int64
	if err := r.db.QueryRow("SELECT COUNT(*) FROM inquiries").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting inquiries: %w", err)
	}
	return n, nil
}

// scanInquiry scans an inquiry from a database row.
func scanInquiry(row interface{ Scan(...interface{}) error }) (*Inquiry, error) {
	var i Inquiry
	var status string

	err := row.Scan(&i.ID, &i.Name, &i.Email, &i.PropertyTitle, &i.Message, &status, &i.CreatedAt)
	if err != nil {
		return nil, err
	}

	i.Status = Status(status)
	return &i, nil
}
