package dto

import "github.com/shopspring/decimal"

// UpdateSettingsRequestDTO changes only the rates present in the body.
type UpdateSettingsRequestDTO struct {
	PropertyRate    *decimal.Decimal `json:"propertyCommissionRate,omitempty" swaggertype:"string" example:"5"`
	EquipmentRate   *decimal.Decimal `json:"equipmentCommissionRate,omitempty" swaggertype:"string" example:"3"`
	MarketRate      *decimal.Decimal `json:"marketCommissionRate,omitempty" swaggertype:"string" example:"2.5"`
	GreenEnergyRate *decimal.Decimal `json:"greenEnergyCommissionRate,omitempty" swaggertype:"string" example:"4"`
}
