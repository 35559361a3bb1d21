package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	MinRate = decimal.Zero
	MaxRate = decimal.NewFromInt(20)
)

type RateTable struct {
	PropertyRate    decimal.Decimal `json:"propertyCommissionRate"`
	EquipmentRate   decimal.Decimal `json:"equipmentCommissionRate"`
	MarketRate      decimal.Decimal `json:"marketCommissionRate"`
	GreenEnergyRate decimal.Decimal `json:"greenEnergyCommissionRate"`
	UpdatedBy       *uuid.UUID      `json:"updated_by,omitempty"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (t RateTable) RateFor(c Category) decimal.Decimal {
	switch c {
	case CategoryProperty:
		return t.PropertyRate
	case CategoryEquipment:
		return t.EquipmentRate
	case CategoryMarket:
		return t.MarketRate
	case CategoryGreenEnergy:
		return t.GreenEnergyRate
	}
	return decimal.Zero
}

// RateUpdate carries only the rates an admin wants to change.
type RateUpdate struct {
	PropertyRate    *decimal.Decimal
	EquipmentRate   *decimal.Decimal
	MarketRate      *decimal.Decimal
	GreenEnergyRate *decimal.Decimal
}

// Validate rejects an update that changes nothing, and any rate outside
// [MinRate, MaxRate] or finer than the two decimals the table stores.
func (u RateUpdate) Validate() error {
	provided := 0
	for _, r := range []*decimal.Decimal{u.PropertyRate, u.EquipmentRate, u.MarketRate, u.GreenEnergyRate} {
		if r == nil {
			continue
		}
		provided++
		if r.LessThan(MinRate) || r.GreaterThan(MaxRate) || !r.Equal(r.Round(2)) {
			return ErrInvalidRate
		}
	}
	if provided == 0 {
		return fmt.Errorf("%w: no rate to update", ErrInvalidInput)
	}
	return nil
}

// Apply returns a copy of t with the provided rates replaced.
func (u RateUpdate) Apply(t RateTable) RateTable {
	if u.PropertyRate != nil {
		t.PropertyRate = *u.PropertyRate
	}
	if u.EquipmentRate != nil {
		t.EquipmentRate = *u.EquipmentRate
	}
	if u.MarketRate != nil {
		t.MarketRate = *u.MarketRate
	}
	if u.GreenEnergyRate != nil {
		t.GreenEnergyRate = *u.GreenEnergyRate
	}
	return t
}

type SettingsAudit struct {
	ID        uuid.UUID `json:"id"`
	Previous  RateTable `json:"previous"`
	Current   RateTable `json:"current"`
	UpdatedBy uuid.UUID `json:"updated_by"`
	CreatedAt time.Time `json:"created_at"`
}
