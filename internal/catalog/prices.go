// Package catalog provides read-only price, hardware, weight and consumable
// lookup tables. Everything here is initialized once and never mutated; the
// pipeline injects these lookups wherever pricing data is needed.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fabforge/fabquote/internal/logger"
)

// Default per-linear-foot prices for stock profiles. Used when no seeded
// supplier price covers the profile.
var pricePerFoot = map[string]float64{
	// Square tube
	"sq_tube_2x2_11ga":     3.50,
	"sq_tube_2x2_14ga":     2.75,
	"sq_tube_2x2_16ga":     2.25,
	"sq_tube_1.5x1.5_11ga": 2.75,
	"sq_tube_1.5x1.5_14ga": 2.25,
	"sq_tube_1.5x1.5_16ga": 1.85,
	"sq_tube_1x1_11ga":     1.75,
	"sq_tube_1x1_14ga":     1.50,
	"sq_tube_1x1_16ga":     1.25,
	"sq_tube_2.5x2.5_11ga": 4.50,
	"sq_tube_3x3_11ga":     5.50,
	"sq_tube_4x4_11ga":     7.50,
	// Rectangular tube
	"rect_tube_2x4_11ga": 5.50,
	"rect_tube_2x3_11ga": 4.50,
	"rect_tube_2x1_11ga": 2.50,
	// Round tube
	"round_tube_1.5_11ga":  4.65,
	"round_tube_1.5_14ga":  3.50,
	"round_tube_1.25_14ga": 3.00,
	"round_tube_2_11ga":    5.50,
	// Square bar / pickets
	"sq_bar_0.75":  1.50,
	"sq_bar_0.625": 1.10,
	"sq_bar_0.5":   0.85,
	"sq_bar_1.0":   2.25,
	// Round bar
	"round_bar_0.5":   0.85,
	"round_bar_0.625": 1.10,
	"round_bar_0.75":  1.50,
	// Flat bar
	"flat_bar_1x0.25":    1.75,
	"flat_bar_1.5x0.25":  2.50,
	"flat_bar_1x0.1875":  1.40,
	"flat_bar_0.75x0.25": 1.35,
	"flat_bar_2x0.25":    3.40,
	// Angle iron
	"angle_1.5x1.5x0.125": 1.60,
	"angle_2x2x0.1875":    2.80,
	"angle_2x2x0.25":      3.50,
	// Channel
	"channel_6x8.2": 8.20,
	"channel_4x5.4": 5.40,
	// Pipe (posts)
	"pipe_4_sch40":   6.00,
	"pipe_6_sch40":   12.00,
	"pipe_8_sch40":   18.00,
	"pipe_3.5_sch40": 5.00,
	"pipe_3_sch40":   4.00,
	// Structural shapes
	"beam_w8x10":  10.50,
	"beam_w10x12": 12.75,
}

// Per-square-foot prices for sheet and mesh goods.
var pricePerSqFt = map[string]float64{
	"expanded_metal_13ga": 1.40,
	"expanded_metal_16ga": 1.10,
	"expanded_metal_10ga": 1.90,
	"sheet_11ga":          2.65,
	"sheet_14ga":          2.03,
	"sheet_16ga":          1.56,
}

// Per-unit prices for misc items.
var pricePerUnit = map[string]float64{
	"concrete_per_cuyd": 175.00,
	"post_cap_4x4":      8.00,
	"post_cap_6x6":      12.00,
}

type seededPrice struct {
	PricePerFoot float64 `json:"price_per_foot"`
	Supplier     string  `json:"supplier"`
}

// PriceBook looks up material prices with a fixed fallback chain: seeded
// supplier quotes first, then the static default tables. A zero result
// means the profile is unknown; callers attach their own last-resort
// constant so no item ever ships without a price.
type PriceBook struct {
	seeded map[string]seededPrice
}

// NewPriceBook creates a price book with no seeded prices.
func NewPriceBook() *PriceBook {
	return &PriceBook{seeded: map[string]seededPrice{}}
}

// NewPriceBookFromFile creates a price book seeded from a JSON file of real
// supplier quotes. A missing file is not an error; malformed JSON is.
func NewPriceBookFromFile(path string) (*PriceBook, error) {
	pb := NewPriceBook()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return pb, nil
		}
		return nil, fmt.Errorf("failed to read seeded prices: %w", err)
	}

	if err := json.Unmarshal(data, &pb.seeded); err != nil {
		return nil, fmt.Errorf("failed to parse seeded prices %s: %w", path, err)
	}

	logger.Infof("Loaded %d seeded material prices from %s", len(pb.seeded), path)
	return pb, nil
}

// PricePerFoot returns the price per linear foot for a stock profile, or 0
// when the profile is unknown everywhere.
func (pb *PriceBook) PricePerFoot(profile string) float64 {
	if s, ok := pb.seeded[profile]; ok {
		return s.PricePerFoot
	}
	return pricePerFoot[profile]
}

// PriceWithSource returns the per-foot price together with a source label,
// the supplier name for seeded prices or "market_average" for defaults.
func (pb *PriceBook) PriceWithSource(profile string) (float64, string) {
	if s, ok := pb.seeded[profile]; ok {
		source := s.Supplier
		if source == "" {
			source = "seeded"
		}
		return s.PricePerFoot, source
	}
	return pricePerFoot[profile], "market_average"
}

// PricePerSquareFoot returns the price per square foot for sheet goods, or
// 0 when unknown.
func (pb *PriceBook) PricePerSquareFoot(sheetType string) float64 {
	return pricePerSqFt[sheetType]
}

// UnitPrice returns the per-unit price for misc items such as concrete and
// post caps, or 0 when unknown.
func (pb *PriceBook) UnitPrice(key string) float64 {
	return pricePerUnit[key]
}

// HasSeededPrices reports whether any supplier quotes are loaded.
func (pb *PriceBook) HasSeededPrices() bool {
	return len(pb.seeded) > 0
}

// PricedProfiles returns every profile key with a default price, per-foot
// and per-square-foot goods combined.
func PricedProfiles() []string {
	keys := make([]string, 0, len(pricePerFoot)+len(pricePerSqFt))
	for k := range pricePerFoot {
		keys = append(keys, k)
	}
	for k := range pricePerSqFt {
		keys = append(keys, k)
	}
	return keys
}

// KnownProfile reports whether the profile exists in any price table.
func (pb *PriceBook) KnownProfile(profile string) bool {
	if _, ok := pb.seeded[profile]; ok {
		return true
	}
	if _, ok := pricePerFoot[profile]; ok {
		return true
	}
	_, ok := pricePerSqFt[profile]
	return ok
}
