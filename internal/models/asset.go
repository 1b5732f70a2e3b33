// Package models defines data structures for kabuto
package models

import (
	"fmt"
	"strings"
	"time"
)

// Sectors is the fixed set of sector labels an asset may carry.
// "Other" is the catch-all.
var Sectors = []string{
	"Technology",
	"Healthcare",
	"Finance",
	"Consumer Discretionary",
	"Consumer Staples",
	"Energy",
	"Materials",
	"Industrials",
	"Utilities",
	"Real Estate",
	"Communication Services",
	"Cryptocurrency",
	"ETF",
	"Other",
}

// ValidSector reports whether label is one of the recognized sectors.
func ValidSector(label string) bool {
	for _, s := range Sectors {
		if s == label {
			return true
		}
	}
	return false
}

// Note is a free-form trade-journal entry attached to an asset.
type Note struct {
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Asset represents one tracked position. Prices are in the asset's native
// currency; id and timestamps are assigned by the store, never the client.
type Asset struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Ticker       string    `json:"ticker"`
	Sector       string    `json:"sector"`
	Currency     string    `json:"currency"`
	Quantity     float64   `json:"quantity"`
	AverageCost  float64   `json:"average_cost"`
	CurrentPrice float64   `json:"current_price"`
	Note         *Note     `json:"note,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AssetForm carries the client-supplied fields for creating or updating an
// asset. ID and timestamps are deliberately absent.
type AssetForm struct {
	Name         string  `json:"name"`
	Ticker       string  `json:"ticker"`
	Sector       string  `json:"sector"`
	Currency     string  `json:"currency"`
	Quantity     float64 `json:"quantity"`
	AverageCost  float64 `json:"average_cost"`
	CurrentPrice float64 `json:"current_price"`
	Note         *Note   `json:"note,omitempty"`
}

// Validate rejects form data before it reaches the store or the aggregator.
// knownCurrency reports whether the rate table recognizes a currency code.
func (f *AssetForm) Validate(knownCurrency func(string) bool) error {
	if strings.TrimSpace(f.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(f.Ticker) == "" {
		return fmt.Errorf("ticker is required")
	}
	if !ValidSector(f.Sector) {
		return fmt.Errorf("unknown sector: %q", f.Sector)
	}
	if !knownCurrency(f.Currency) {
		return fmt.Errorf("unsupported currency: %q", f.Currency)
	}
	if f.Quantity <= 0 {
		return fmt.Errorf("quantity must be positive, got %v", f.Quantity)
	}
	if f.AverageCost <= 0 {
		return fmt.Errorf("average cost must be positive, got %v", f.AverageCost)
	}
	if f.CurrentPrice <= 0 {
		return fmt.Errorf("current price must be positive, got %v", f.CurrentPrice)
	}
	return nil
}

// Apply copies the form fields onto an asset, leaving identity and
// timestamps untouched.
func (f *AssetForm) Apply(a *Asset) {
	a.Name = f.Name
	a.Ticker = f.Ticker
	a.Sector = f.Sector
	a.Currency = f.Currency
	a.Quantity = f.Quantity
	a.AverageCost = f.AverageCost
	a.CurrentPrice = f.CurrentPrice
	if f.Note != nil {
		a.Note = f.Note
	}
}
