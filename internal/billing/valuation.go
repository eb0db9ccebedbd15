package billing

// Catalog maps brand -> model -> price. A missing entry is "unset", not an
// error; Evaluate treats it as a zero-cost vehicle and leaves complaining to
// the validation layer.
type Catalog map[string]map[string]float64

// Price looks up the catalog price for a brand/model pair.
func (c Catalog) Price(brand, model string) (float64, bool) {
	models, ok := c[brand]
	if !ok {
		return 0, false
	}
	price, ok := models[model]
	return price, ok
}

// VehicleSourceKind discriminates how the vehicle on a quotation is priced.
type VehicleSourceKind string

const (
	// SourceCatalog prices the vehicle from the catalog by brand and model.
	SourceCatalog VehicleSourceKind = "catalog"
	// SourceManual prices the vehicle from an operator-entered name and cost.
	SourceManual VehicleSourceKind = "manual"
)

// VehicleSource is a tagged union over the two ways a vehicle can be priced.
// Use CatalogVehicle or ManualVehicle to construct one; the constructors keep
// the unused half of the union empty so inconsistent combinations cannot be
// expressed.
type VehicleSource struct {
	Kind  VehicleSourceKind
	Brand string
	Model string
	Name  string
	Cost  float64
}

// CatalogVehicle selects a vehicle from the catalog.
func CatalogVehicle(brand, model string) VehicleSource {
	return VehicleSource{Kind: SourceCatalog, Brand: brand, Model: model}
}

// ManualVehicle prices a vehicle outside the catalog.
func ManualVehicle(name string, cost float64) VehicleSource {
	return VehicleSource{Kind: SourceManual, Name: name, Cost: cost}
}

// DocumentChecklist tracks which customer documents have been collected.
type DocumentChecklist struct {
	AadharCard bool `bson:"aadharcard" json:"aadharcard"`
	RationCard bool `bson:"rationcard" json:"rationcard"`
	Photo      bool `bson:"photo" json:"photo"`
	PanCard    bool `bson:"pancard" json:"pancard"`
	Passbook   bool `bson:"passbook" json:"passbook"`
	ATMCard    bool `bson:"atmcard" json:"atmcard"`
}

// QuotationInput carries the raw, already-validated form values a quotation
// is priced from. Missing numeric fields are zero.
type QuotationInput struct {
	CustomerName        string
	Address             string
	Phone               string
	Vehicle             VehicleSource
	FittingCost         float64
	RTOCost             float64
	DocumentationCharge float64
	InitialPayment      float64
	DiscountPercent     float64
	AnnualRatePercent   float64
	Documentation       DocumentChecklist
}

// Valuation is the priced outcome of a quotation input.
type Valuation struct {
	VehicleCost         float64
	TotalCost           float64
	Balance             float64
	DiscountAmount      float64
	DocumentationCharge float64
	EMIBreakdown        map[int]float64
}

// Evaluate derives the full valuation for a quotation. It is a pure function
// of its inputs: identical input and catalog always produce an identical
// valuation. Every intermediate amount is rounded to two decimals before
// feeding the next step, and negative intermediates clamp to zero.
func Evaluate(in QuotationInput, catalog Catalog) Valuation {
	var vehicleCost float64
	switch in.Vehicle.Kind {
	case SourceManual:
		vehicleCost = in.Vehicle.Cost
	default:
		vehicleCost, _ = catalog.Price(in.Vehicle.Brand, in.Vehicle.Model)
	}
	vehicleCost = Round2(vehicleCost)

	rawTotal := Round2(vehicleCost + in.RTOCost + in.FittingCost)

	discounted := rawTotal
	if in.DiscountPercent > 0 {
		discounted = Round2(rawTotal - rawTotal*in.DiscountPercent/100)
		if discounted < 0 {
			discounted = 0
		}
	}
	discountAmount := Round2(rawTotal - discounted)

	balance := Round2(discounted - in.InitialPayment)
	if balance < 0 {
		balance = 0
	}

	breakdown := make(map[int]float64, len(Tenures))
	for _, months := range Tenures {
		breakdown[months] = ComputeEMI(balance, months, in.AnnualRatePercent, in.DocumentationCharge)
	}

	return Valuation{
		VehicleCost:         vehicleCost,
		TotalCost:           discounted,
		Balance:             balance,
		DiscountAmount:      discountAmount,
		DocumentationCharge: Round2(in.DocumentationCharge),
		EMIBreakdown:        breakdown,
	}
}
