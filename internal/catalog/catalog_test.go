package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poster-shop/checkout-service/internal/catalog"
	"github.com/poster-shop/checkout-service/internal/entities"
)

func TestZones_Resolve(t *testing.T) {
	_, zones := catalog.Default()

	us := zones.Resolve("US")
	assert.Equal(t, entities.ShippingZone{Base: 500, PerKg: 300}, us)

	row := zones.Resolve(catalog.DefaultZone)
	assert.Equal(t, row, zones.Resolve("XX"), "unknown code falls back to ROW")
	assert.Equal(t, row, zones.Resolve(""), "empty code falls back to ROW")
}

func TestCatalog_Get(t *testing.T) {
	products, _ := catalog.Default()

	product, ok := products.Get("poster_a2")
	require.True(t, ok)
	assert.Equal(t, entities.Product{Name: "Poster A2", Price: 2500, Weight: 0.4}, product)

	_, ok = products.Get("unknown_id")
	assert.False(t, ok)
}

func TestLoadFile(t *testing.T) {
	writeFile := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "catalog.json")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	t.Run("valid file", func(t *testing.T) {
		path := writeFile(t, `{
			"products": {
				"tote_bag": {"name": "Tote Bag", "price": 1200, "weight": 0.25}
			},
			"zones": {
				"US":  {"base": 400, "per_kg": 250},
				"ROW": {"base": 900, "per_kg": 500}
			}
		}`)

		products, zones, err := catalog.LoadFile(path)
		require.NoError(t, err)

		product, ok := products.Get("tote_bag")
		require.True(t, ok)
		assert.Equal(t, entities.Product{Name: "Tote Bag", Price: 1200, Weight: 0.25}, product)
		assert.Equal(t, entities.ShippingZone{Base: 900, PerKg: 500}, zones.Resolve("XX"))
	})

	t.Run("missing default zone", func(t *testing.T) {
		path := writeFile(t, `{
			"products": {"tote_bag": {"name": "Tote Bag", "price": 1200, "weight": 0.25}},
			"zones": {"US": {"base": 400, "per_kg": 250}}
		}`)

		_, _, err := catalog.LoadFile(path)
		assert.ErrorContains(t, err, "no ROW zone")
	})

	t.Run("no products", func(t *testing.T) {
		path := writeFile(t, `{"products": {}, "zones": {"ROW": {"base": 900, "per_kg": 500}}}`)

		_, _, err := catalog.LoadFile(path)
		assert.ErrorContains(t, err, "no products")
	})

	t.Run("negative price", func(t *testing.T) {
		path := writeFile(t, `{
			"products": {"tote_bag": {"name": "Tote Bag", "price": -1, "weight": 0.25}},
			"zones": {"ROW": {"base": 900, "per_kg": 500}}
		}`)

		_, _, err := catalog.LoadFile(path)
		assert.ErrorContains(t, err, "negative")
	})

	t.Run("file not found", func(t *testing.T) {
		_, _, err := catalog.LoadFile(filepath.Join(t.TempDir(), "missing.json"))
		assert.Error(t, err)
	})
}
