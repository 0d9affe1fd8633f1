package entity

import (
	"math"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Pagination defaults
const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

var validate = validator.New()

// PaginationParams represents offset pagination over an ordered collection
type PaginationParams struct {
	Page  int `json:"page" validate:"min=1"`
	Limit int `json:"limit" validate:"min=1"`
}

// ParsePagination builds pagination params from untrusted query values.
//
// Each value is parsed on its own. Empty, non-integer or non-positive input is
// replaced by the default (page 1, limit 10) without raising an error.
func ParsePagination(rawPage, rawLimit string) PaginationParams {
	return PaginationParams{
		Page:  parsePositive(rawPage, DefaultPage),
		Limit: parsePositive(rawLimit, DefaultPageSize),
	}
}

func parsePositive(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	if validate.Var(n, "min=1") != nil {
		return fallback
	}
	return n
}

// Validate reports whether both values are usable as-is.
func (p PaginationParams) Validate() error {
	return validate.Struct(p)
}

// Offset calculates the database offset from page and limit.
// A page too far out to represent saturates at math.MaxInt, which still selects nothing.
func (p PaginationParams) Offset() int {
	if p.Page <= 1 || p.Limit <= 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}
