package catalog

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// PricingType says how a service offering is billed.
type PricingType string

const (
	PricingHourly     PricingType = "hourly"
	PricingMonthly    PricingType = "monthly"
	PricingProject    PricingType = "project"
	PricingCommission PricingType = "commission"
)

func (p PricingType) Valid() bool {
	switch p {
	case PricingHourly, PricingMonthly, PricingProject, PricingCommission:
		return true
	}
	return false
}

// ValidPricingTypes lists the accepted pricing types, for error bodies.
func ValidPricingTypes() []string {
	return []string{
		string(PricingHourly),
		string(PricingMonthly),
		string(PricingProject),
		string(PricingCommission),
	}
}

var (
	ErrNotFound      = errors.New("service not found")
	ErrMissingFields = errors.New("name and description are required")
)

// ErrInvalidPricingType carries the rejected value and the accepted set.
type ErrInvalidPricingType struct {
	Value PricingType
}

func (e *ErrInvalidPricingType) Error() string {
	return fmt.Sprintf("invalid pricing_type %q, must be one of: %s",
		e.Value, strings.Join(ValidPricingTypes(), ", "))
}

// Service is one offering shown on the marketing site.
type Service struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	Slug             string      `json:"slug"`
	Description      string      `json:"description"`
	ShortDescription string      `json:"short_description"`
	PricingMin       float64     `json:"pricing_min"`
	PricingMax       float64     `json:"pricing_max"`
	PricingType      PricingType `json:"pricing_type"`
	Features         []string    `json:"features"`
	IsActive         bool        `json:"is_active"`
	SortOrder        int         `json:"sort_order"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// Update is a partial update. Nil fields are left unchanged; fields
// outside this set are ignored by the JSON decoder.
type Update struct {
	Name             *string      `json:"name"`
	Description      *string      `json:"description"`
	ShortDescription *string      `json:"short_description"`
	PricingMin       *float64     `json:"pricing_min"`
	PricingMax       *float64     `json:"pricing_max"`
	PricingType      *PricingType `json:"pricing_type"`
	Features         *[]string    `json:"features"`
	IsActive         *bool        `json:"is_active"`
	SortOrder        *int         `json:"sort_order"`
}
