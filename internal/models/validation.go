package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CadastralSeparator separates the segments of a cadastral number
const CadastralSeparator = ":"

// ErrMissingCadastralNumber is returned when the lookup query carries no number
var ErrMissingCadastralNumber = errors.New("cadastralNumber parameter is required")

var validate = validator.New()

// LookupQuery holds the query parameters of a parcel lookup
type LookupQuery struct {
	CadastralNumber string `json:"cadastralNumber" validate:"required"`
}

// NewLookupQuery builds a normalized query from raw query string parameters
func NewLookupQuery(params map[string]string) *LookupQuery {
	return &LookupQuery{
		CadastralNumber: NormalizeCadastralNumber(params["cadastralNumber"]),
	}
}

// Validate validates the lookup query
func (q *LookupQuery) Validate() error {
	if err := validate.Struct(q); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			for _, fe := range validationErrors {
				if fe.Field() == "CadastralNumber" && fe.Tag() == "required" {
					return ErrMissingCadastralNumber
				}
			}
		}
		return fmt.Errorf("invalid lookup query: %w", err)
	}
	return nil
}

// NormalizeCadastralNumber trims whitespace and replaces full-width colons
// that appear when numbers are pasted from office documents.
func NormalizeCadastralNumber(number string) string {
	number = strings.TrimSpace(number)
	number = strings.ReplaceAll(number, "：", CadastralSeparator)
	return number
}

// SplitCadastralNumber splits a cadastral number into its segments
func SplitCadastralNumber(number string) []string {
	return strings.Split(number, CadastralSeparator)
}
