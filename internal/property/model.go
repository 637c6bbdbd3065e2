// Package property provides the property domain model and data access.
package property

import (
	"encoding/json"
	"fmt"
	"time"
)

// Property represents a real-estate listing as served to clients.
// JSON field names match the storage columns except year_built, which the
// application exposes as yearBuilt.
type Property struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Price       string    `json:"price"`
	Location    string    `json:"location"`
	Beds        int64     `json:"beds"`
	Baths       float64   `json:"baths"`
	Sqft        int64     `json:"sqft"`
	YearBuilt   int64     `json:"yearBuilt"`
	Image       string    `json:"image"`
	Images      []string  `json:"images"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Input carries client-supplied property fields for create and update.
// A nil field was not provided and must not touch the stored value.
type Input struct {
	Title       *string   `json:"title"`
	Price       *string   `json:"price"`
	Location    *string   `json:"location"`
	Beds        *int64    `json:"beds"`
	Baths       *float64  `json:"baths"`
	Sqft        *int64    `json:"sqft"`
	YearBuilt   *int64    `json:"yearBuilt"`
	Image       *string   `json:"image"`
	Images      *[]string `json:"images"`
	Description *string   `json:"description"`
}

// ToStore maps the input to storage columns and values, renaming yearBuilt to
// year_built and dropping unset fields so partial updates leave existing
// stored values untouched. Image lists are stored as a JSON-encoded array.
// No further validation or type coercion happens here.
func (in Input) ToStore() ([]string, []interface{}, error) {
	var cols []string
	var vals []interface{}

	add := func(col string, val interface{}) {
		cols = append(cols, col)
		vals = append(vals, val)
	}

	if in.Title != nil {
		add("title", *in.Title)
	}
	if in.Price != nil {
		add("price", *in.Price)
	}
	if in.Location != nil {
		add("location", *in.Location)
	}
	if in.Beds != nil {
		add("beds", *in.Beds)
	}
	if in.Baths != nil {
		add("baths", *in.Baths)
	}
	if in.Sqft != nil {
		add("sqft", *in.Sqft)
	}
	if in.YearBuilt != nil {
		add("year_built", *in.YearBuilt)
	}
	if in.Image != nil {
		add("image", *in.Image)
	}
	if in.Images != nil {
		encoded, err := encodeImages(*in.Images)
		if err != nil {
			return nil, nil, err
		}
		add("images", encoded)
	}
	if in.Description != nil {
		add("description", *in.Description)
	}

	return cols, vals, nil
}

// scanProperty scans a property from a database row.
func scanProperty(row interface{ Scan(...interface{}) error }) (*Property, error) {
	var p Property
	var imagesJSON string

	err := row.Scan(
		&p.ID, &p.Title, &p.Price, &p.Location,
		&p.Beds, &p.Baths, &p.Sqft, &p.YearBuilt,
		&p.Image, &imagesJSON, &p.Description,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Images, err = decodeImages(imagesJSON)
	if err != nil {
		return nil, fmt.Errorf("decoding images for property %d: %w", p.ID, err)
	}

	return &p, nil
}

// encodeImages stores the gallery as a JSON array, never null.
func encodeImages(urls []string) (string, error) {
	if urls == nil {
		urls = []string{}
	}
	b, err := json.Marshal(urls)
	if err != nil {
		return "", fmt.Errorf("encoding images: %w", err)
	}
	return string(b), nil
}

func decodeImages(s string) ([]string, error) {
	if s == "" {
		return []string{}, nil
	}
	var urls []string
	if err := json.Unmarshal([]byte(s), &urls); err != nil {
		return nil, err
	}
	if urls == nil {
		urls = []string{}
	}
	return urls, nil
}
