package domain

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"time"
)

type Book struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Price     float64   `json:"price"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Numeric accepts a JSON number or a numeric string. Clients submit price
// both ways.
type Numeric string

func (n *Numeric) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = Numeric(s)
		return nil
	}
	*n = Numeric(b)
	return nil
}

// numericPattern admits plain decimal numbers only. ParseFloat alone also
// accepts NaN, Inf, hex, and exponent forms, none of which are a price.
var numericPattern = regexp.MustCompile(`^[+-]?([0-9]*\.)?[0-9]+$`)

func (n Numeric) Float64() (float64, error) {
	if !numericPattern.MatchString(string(n)) {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseFloat(string(n), 64)
}

// BookRequest carries a create or edit payload.
type BookRequest struct {
	Title    string  `json:"title"`
	Author   string  `json:"author"`
	Price    Numeric `json:"price"`
	Category string  `json:"category"`
}

// Validate applies the book rules in a fixed order and stops at the first
// failing rule. On success the parsed price is returned.
func (r *BookRequest) Validate() (float64, error) {
	if r.Title == "" || r.Author == "" || r.Price == "" || r.Category == "" {
		return 0, NewValidationError("Please fill data in all the fields")
	}
	price, err := r.Price.Float64()
	if err != nil {
		return 0, NewValidationError("Invalid Price")
	}
	if price <= 0 {
		return 0, NewValidationError("Price must be greater than 0")
	}
	return price, nil
}

func (r *BookRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Author = strings.TrimSpace(r.Author)
	r.Category = strings.TrimSpace(r.Category)
}
