package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/poster-shop/checkout-service/internal/entities"
)

// DefaultZone is the fallback used when a request carries no country or
// an unrecognized one.
const DefaultZone = "ROW"

// Catalog maps product ids to their catalog entries. It is built once at
// startup and never mutated afterwards.
type Catalog map[string]entities.Product

// Zones maps region codes to shipping policies. Must contain DefaultZone.
type Zones map[string]entities.ShippingZone

// Get returns the product for id, reporting whether it exists.
func (c Catalog) Get(id string) (entities.Product, bool) {
	p, ok := c[id]
	return p, ok
}

// Resolve returns the zone for country, falling back to DefaultZone for
// unknown or empty codes.
func (z Zones) Resolve(country string) entities.ShippingZone {
	if zone, ok := z[country]; ok {
		return zone
	}
	return z[DefaultZone]
}

// Default returns the built-in catalog and zone table.
func Default() (Catalog, Zones) {
	products := Catalog{
		"poster_a2":   {Name: "Poster A2", Price: 2500, Weight: 0.4},
		"poster_a1":   {Name: "Poster A1", Price: 4000, Weight: 0.1},
		"mug_classic": {Name: "Classic Mug", Price: 1500, Weight: 0.1},
	}
	zones := Zones{
		"US":        {Base: 500, PerKg: 300},
		"EU":        {Base: 700, PerKg: 400},
		DefaultZone: {Base: 1000, PerKg: 600},
	}
	return products, zones
}

type catalogFile struct {
	Products map[string]struct {
		Name   string  `json:"name"`
		Price  int64   `json:"price"`
		Weight float64 `json:"weight"`
	} `json:"products"`
	Zones map[string]struct {
		Base  int64 `json:"base"`
		PerKg int64 `json:"per_kg"`
	} `json:"zones"`
}

// LoadFile reads a catalog override from a JSON file. The file must define
// at least one product and a zone table containing DefaultZone.
func LoadFile(path string) (Catalog, Zones, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	if len(file.Products) == 0 {
		return nil, nil, fmt.Errorf("catalog file %s defines no products", path)
	}
	if _, ok := file.Zones[DefaultZone]; !ok {
		return nil, nil, fmt.Errorf("catalog file %s has no %s zone", path, DefaultZone)
	}

	products := make(Catalog, len(file.Products))
	for id, p := range file.Products {
		if p.Price < 0 || p.Weight < 0 {
			return nil, nil, fmt.Errorf("product %s has negative price or weight", id)
		}
		products[id] = entities.Product{Name: p.Name, Price: p.Price, Weight: p.Weight}
	}

	zones := make(Zones, len(file.Zones))
	for code, z := range file.Zones {
		if z.Base < 0 || z.PerKg < 0 {
			return nil, nil, fmt.Errorf("zone %s has negative base or per-kg cost", code)
		}
		zones[code] = entities.ShippingZone{Base: z.Base, PerKg: z.PerKg}
	}

	return products, zones, nil
}
