package domain

import (
	"fmt"
	"time"
)

type ProductStatus string

const (
	ProductAvailable   ProductStatus = "available"
	ProductUnavailable ProductStatus = "unavailable"
)

type ProductCategory string

const (
	CategoryIPhone  ProductCategory = "iphone"
	CategoryCharger ProductCategory = "charger"
	CategoryCable   ProductCategory = "cable"
	CategoryAirPod  ProductCategory = "airpod"
)

func (c ProductCategory) Valid() bool {
	switch c {
	case CategoryIPhone, CategoryCharger, CategoryCable, CategoryAirPod:
		return true
	}
	return false
}

type Product struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Category    ProductCategory   `json:"category"`
	PriceCents  int64             `json:"priceCents"`
	Stock       int               `json:"stock"`
	Status      ProductStatus     `json:"status"`
	Attributes  VariantAttributes `json:"attributes"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// VariantAttributes is a tagged union keyed on the product category: exactly
// the field matching Product.Category may be set. The order engine treats it
// as opaque payload.
type VariantAttributes struct {
	IPhone  *IPhoneAttributes  `json:"iphone,omitempty"`
	Charger *ChargerAttributes `json:"charger,omitempty"`
	Cable   *CableAttributes   `json:"cable,omitempty"`
	AirPod  *AirPodAttributes  `json:"airpod,omitempty"`
}

type IPhoneAttributes struct {
	Color     string `json:"color"`
	StorageGB int    `json:"storageGb"`
}

type ChargerAttributes struct {
	Wattage      int  `json:"wattage"`
	FastCharging bool `json:"fastCharging"`
}

type CableAttributes struct {
	CableType string `json:"cableType"`
	LengthCM  int    `json:"lengthCm"`
}

type AirPodAttributes struct {
	Generation int    `json:"generation"`
	CaseType   string `json:"caseType,omitempty"`
}

// ValidateFor checks that the populated variant matches the category and no
// other variant is set alongside it.
func (v VariantAttributes) ValidateFor(category ProductCategory) error {
	set := 0
	var match bool
	if v.IPhone != nil {
		set++
		match = match || category == CategoryIPhone
	}
	if v.Charger != nil {
		set++
		match = match || category == CategoryCharger
	}
	if v.Cable != nil {
		set++
		match = match || category == CategoryCable
	}
	if v.AirPod != nil {
		set++
		match = match || category == CategoryAirPod
	}
	if set == 0 {
		return fmt.Errorf("attributes for category %q required", category)
	}
	if set > 1 {
		return fmt.Errorf("exactly one variant payload allowed, got %d", set)
	}
	if !match {
		return fmt.Errorf("attributes do not match category %q", category)
	}
	return nil
}
