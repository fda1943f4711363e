package pricing

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bernardoxlima/arqOS-mvp-sub004/internal/domain/entities"
)

// AreaBand is one row of the price-per-m² table. Bands are contiguous and
// inclusive at both ends; a band matches when MinM2 <= area <= MaxM2.
type AreaBand struct {
	MinM2      float64 `json:"min_m2"`
	MaxM2      float64 `json:"max_m2"`
	PricePerM2 float64 `json:"price_per_m2"`
	HoursPerM2 float64 `json:"hours_per_m2"`
}

// EnvironmentTier holds price and effort hours for a given room count.
type EnvironmentTier struct {
	Price float64 `json:"price"`
	Hours float64 `json:"hours"`
}

// InstallmentTier derives the maximum installment count from the final price.
type InstallmentTier struct {
	UpToPrice       float64 `json:"up_to_price"`
	MaxInstallments int     `json:"max_installments"`
}

// Config carries every pricing table and constant the calculator needs.
//
// It is injected at construction time instead of living as package globals, so
// each office (tenant) can run its own table set. Tables are read-only after
// load; the calculator never mutates them.
type Config struct {
	HourlyRate             float64                                    `json:"hourly_rate"`
	CashDiscountPercents   []float64                                  `json:"cash_discount_percents"`
	InstallmentTiers       []InstallmentTier                          `json:"installment_tiers"`
	DefaultMaxInstallments int                                        `json:"default_max_installments"`
	IncludedEnvironments   int                                        `json:"included_environments"`
	ExtraEnvironmentPrice  float64                                    `json:"extra_environment_price"`
	ExtraEnvironmentHours  float64                                    `json:"extra_environment_hours"`
	DecorBase              map[int]EnvironmentTier                    `json:"decor_base"`
	TypeMultipliers        map[string]float64                         `json:"type_multipliers"`
	SizeMultipliers        map[entities.EnvironmentSize]float64       `json:"size_multipliers"`
	ProductionTiers        map[int]EnvironmentTier                    `json:"production_tiers"`
	AreaBands              map[entities.ProjectKind][]AreaBand        `json:"area_bands"`
	MinManagementFee       float64                                    `json:"min_management_fee"`
}

// Default returns the standard office table set.
func Default() Config {
	return Config{
		HourlyRate:           150,
		CashDiscountPercents: []float64{5, 10, 15},
		InstallmentTiers: []InstallmentTier{
			{UpToPrice: 3000, MaxInstallments: 3},
			{UpToPrice: 8000, MaxInstallments: 6},
		},
		DefaultMaxInstallments: 10,
		IncludedEnvironments:   3,
		ExtraEnvironmentPrice:  900,
		ExtraEnvironmentHours:  8,
		DecorBase: map[int]EnvironmentTier{
			1: {Price: 1800, Hours: 18},
			2: {Price: 3000, Hours: 30},
			3: {Price: 3900, Hours: 40},
		},
		TypeMultipliers: map[string]float64{
			"sala":         1.2,
			"cozinha":      1.5,
			"quarto":       1.0,
			"banheiro":     1.1,
			"home_office":  1.0,
			"area_externa": 1.3,
			"gourmet":      1.4,
		},
		SizeMultipliers: map[entities.EnvironmentSize]float64{
			entities.SizeS: 0.9,
			entities.SizeM: 1.0,
			entities.SizeL: 1.2,
		},
		ProductionTiers: map[int]EnvironmentTier{
			1: {Price: 1200, Hours: 10},
			2: {Price: 2000, Hours: 16},
			3: {Price: 2700, Hours: 22},
			4: {Price: 3400, Hours: 28},
			5: {Price: 4000, Hours: 34},
			6: {Price: 4600, Hours: 40},
		},
		AreaBands: map[entities.ProjectKind][]AreaBand{
			entities.ProjectKindNovo: {
				{MinM2: 20, MaxM2: 29, PricePerM2: 150, HoursPerM2: 0.6},
				{MinM2: 30, MaxM2: 60, PricePerM2: 120, HoursPerM2: 0.5},
				{MinM2: 61, MaxM2: 120, PricePerM2: 100, HoursPerM2: 0.45},
				{MinM2: 121, MaxM2: 250, PricePerM2: 85, HoursPerM2: 0.4},
			},
			entities.ProjectKindReforma: {
				{MinM2: 20, MaxM2: 29, PricePerM2: 180, HoursPerM2: 0.7},
				{MinM2: 30, MaxM2: 60, PricePerM2: 145, HoursPerM2: 0.6},
				{MinM2: 61, MaxM2: 120, PricePerM2: 120, HoursPerM2: 0.5},
				{MinM2: 121, MaxM2: 250, PricePerM2: 100, HoursPerM2: 0.45},
			},
		},
		MinManagementFee: 800,
	}
}

// LoadFromFile loads a table set from a JSON file on top of the defaults, so a
// tenant file only needs to override what differs.
func LoadFromFile(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read pricing config: %w", err)
	}
	if err := json.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("unmarshal pricing config: %w", err)
	}
	return cfg, nil
}
