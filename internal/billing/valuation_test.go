package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() Catalog {
	return Catalog{
		"Honda": {"Shine 125": 85000, "Activa 6G": 78000},
		"TVS":   {"Raider 125": 95000},
	}
}

func TestCatalogPrice(t *testing.T) {
	catalog := testCatalog()

	price, ok := catalog.Price("Honda", "Shine 125")
	assert.True(t, ok)
	assert.Equal(t, 85000.0, price)

	_, ok = catalog.Price("Honda", "Unknown")
	assert.False(t, ok)

	_, ok = catalog.Price("Bajaj", "Pulsar")
	assert.False(t, ok)
}

func TestEvaluate_WorkedScenario(t *testing.T) {
	in := QuotationInput{
		CustomerName:        "Raju",
		Vehicle:             ManualVehicle("Classic 350", 50000),
		RTOCost:             5000,
		FittingCost:         2000,
		DiscountPercent:     10,
		InitialPayment:      10000,
		AnnualRatePercent:   12,
		DocumentationCharge: 1000,
	}

	v := Evaluate(in, nil)

	assert.InDelta(t, 5700.0, v.DiscountAmount, 0.01)
	assert.InDelta(t, 51300.0, v.TotalCost, 0.01)
	assert.InDelta(t, 41300.0, v.Balance, 0.01)
	assert.InDelta(t, 1000.0, v.DocumentationCharge, 0.01)
	require.Len(t, v.EMIBreakdown, len(Tenures))
	assert.InDelta(t, 3752.79, v.EMIBreakdown[12], 0.01)
}

func TestEvaluate_CatalogLookup(t *testing.T) {
	in := QuotationInput{
		CustomerName: "Mani",
		Vehicle:      CatalogVehicle("Honda", "Activa 6G"),
		RTOCost:      4000,
		FittingCost:  1500,
	}

	v := Evaluate(in, testCatalog())
	assert.InDelta(t, 83500.0, v.TotalCost, 0.01)
	assert.InDelta(t, 83500.0, v.Balance, 0.01)
	assert.InDelta(t, 0.0, v.DiscountAmount, 0.01)
}

func TestEvaluate_MissingCatalogEntryIsZeroCost(t *testing.T) {
	in := QuotationInput{
		CustomerName: "Mani",
		Vehicle:      CatalogVehicle("Bajaj", "Pulsar NS200"),
		FittingCost:  1200,
	}

	v := Evaluate(in, testCatalog())
	assert.InDelta(t, 0.0, v.VehicleCost, 0.01)
	assert.InDelta(t, 1200.0, v.TotalCost, 0.01)
}

func TestEvaluate_BalanceClampsAtZero(t *testing.T) {
	in := QuotationInput{
		CustomerName:   "Devi",
		Vehicle:        ManualVehicle("Splendor", 40000),
		InitialPayment: 95000,
	}

	v := Evaluate(in, nil)
	assert.InDelta(t, 0.0, v.Balance, 1e-9)
	for _, months := range Tenures {
		assert.InDelta(t, 0.0, v.EMIBreakdown[months], 1e-9)
	}
}

func TestEvaluate_DiscountPlusTotalEqualsRawTotal(t *testing.T) {
	for _, pct := range []float64{0, 0.5, 10, 33.33, 50, 99.99, 100} {
		in := QuotationInput{
			CustomerName:    "Kumar",
			Vehicle:         ManualVehicle("Jupiter", 61250.55),
			RTOCost:         4300.45,
			FittingCost:     999.99,
			DiscountPercent: pct,
		}

		v := Evaluate(in, nil)
		rawTotal := Round2(61250.55 + 4300.45 + 999.99)
		assert.InDelta(t, rawTotal, v.TotalCost+v.DiscountAmount, 0.01, "discount=%v%%", pct)
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	in := QuotationInput{
		CustomerName:        "Selvi",
		Vehicle:             CatalogVehicle("TVS", "Raider 125"),
		RTOCost:             6100,
		FittingCost:         2450.50,
		DiscountPercent:     7.5,
		InitialPayment:      20000,
		AnnualRatePercent:   10.25,
		DocumentationCharge: 850,
	}
	catalog := testCatalog()

	first := Evaluate(in, catalog)
	second := Evaluate(in, catalog)
	assert.Equal(t, first, second)
}
