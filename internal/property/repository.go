package property

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound reports that no property matched the given ID.
var ErrNotFound = errors.New("property not found")

// Repository provides CRUD operations for properties.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a property repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const selectColumns = `id, title, price, location, beds, baths, sqft, year_built, image, images, description, created_at, updated_at`

// Insert adds a new property from the mapped input and returns it with its
// generated ID and store-assigned timestamps.
func (r *Repository) Insert(in Input) (*Property, error) {
	cols, vals, err := in.ToStore()
	if err != nil {
		return nil, fmt.Errorf("mapping property: %w", err)
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("inserting property: no fields provided")
	}

	query := fmt.Sprintf(
		"INSERT INTO properties (%s) VALUES (%s)",
		strings.Join(cols, ", "),
		strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", "),
	)

	result, err := r.db.Exec(query, vals...)
	if err != nil {
		return nil, fmt.Errorf("inserting property: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting insert id: %w", err)
	}

	return r.GetByID(id)
}

// GetByID returns a property by its ID.
func (r *Repository) GetByID(id int64) (*Property, error) {
	query := fmt.Sprintf("SELECT %s FROM properties WHERE id = ?", selectColumns)
	row := r.db.QueryRow(query, id)

	p, err := scanProperty(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("property %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying property %d: %w", id, err)
	}

	return p, nil
}

// List returns properties ordered by creation time descending. A non-empty
// search term keeps only properties whose title, location, or price contains
// the term, case-insensitively. The result set is unbounded.
func (r *Repository) List(search string) ([]*Property, error) {
	query := fmt.Sprintf("SELECT %s FROM properties", selectColumns)
	var args []interface{}

	if search != "" {
		term := "%" + strings.ToLower(search) + "%"
		query += " WHERE LOWER(title) LIKE ? OR LOWER(location) LIKE ? OR LOWER(price) LIKE ?"
		args = append(args, term, term, term)
	}

	// The id tiebreak keeps ordering stable within CURRENT_TIMESTAMP's
	// one-second resolution; insertion order matches id order.
	query += " ORDER BY created_at DESC, id DESC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing properties: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = fmt.Errorf("closing rows: %w", closeErr)
		}
	}()

	var properties []*Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning property: %w", err)
		}
		properties = append(properties, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating properties: %w", err)
	}

	return properties, nil
}

// Update applies the provided fields to a property. Unset fields are left
// unchanged in storage; updated_at is always touched.
func (r *Repository) Update(id int64, in Input) (*Property, error) {
	cols, vals, err := in.ToStore()
	if err != nil {
		return nil, fmt.Errorf("mapping property: %w", err)
	}

	sets := make([]string, 0, len(cols)+1)
	for _, col := range cols {
		sets = append(sets, col+" = ?")
	}
	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")
	vals = append(vals, id)

	query := fmt.Sprintf("UPDATE properties SET %s WHERE id = ?", strings.Join(sets, ", "))

	result, err := r.db.Exec(query, vals...)
	if err != nil {
		return nil, fmt.Errorf("updating property %d: %w", id, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		return nil, fmt.Errorf("property %d: %w", id, ErrNotFound)
	}

	return r.GetByID(id)
}

// Delete removes a property by ID.
func (r *Repository) Delete(id int64) error {
	result, err := r.db.Exec("DELETE FROM properties WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting property %d: %w", id, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("property %d: %w", id, ErrNotFound)
	}

	return nil
}

// Count returns the total number of properties.
func (r *Repository) Count() (int64, error) {
	var n int64
	if err := r.db.QueryRow("SELECT COUNT(*) FROM properties").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting properties: %w", err)
	}
	return n, nil
}
