package models

import (
	"strconv"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/royalbikes/showroom-backend/internal/billing"
)

// Quotation is a persisted customer quotation with its computed valuation.
// Derived fields (totalCost, discount, balance, emiBreakdown) are always
// recomputed server-side from the raw inputs; client-supplied values for
// them are ignored.
type Quotation struct {
	ID                   primitive.ObjectID        `bson:"_id,omitempty" json:"id,omitempty"`
	BillNo               string                    `bson:"billNo" json:"billNo"`
	Date                 string                    `bson:"date" json:"date"`
	CustomerName         string                    `bson:"customer_name" json:"customer_name"`
	Address              string                    `bson:"address" json:"address"`
	Phone                string                    `bson:"phone" json:"phone"`
	VehicleBrand         string                    `bson:"vehicleBrand" json:"vehicleBrand"`
	VehicleName          string                    `bson:"vehicleName" json:"vehicleName"`
	VehicleCost          float64                   `bson:"vehicleCost" json:"vehicleCost"`
	FittingCost          float64                   `bson:"fittingCost" json:"fittingCost"`
	RTOCost              float64                   `bson:"rtoCost" json:"rtoCost"`
	DocumentationCharges float64                   `bson:"documentationCharges" json:"documentationCharges"`
	DiscountPercent      float64                   `bson:"discountPercent" json:"discountPercent"`
	Discount             float64                   `bson:"discount" json:"discount"`
	TotalCost            float64                   `bson:"totalCost" json:"totalCost"`
	Initial              float64                   `bson:"initial" json:"initial"`
	Balance              float64                   `bson:"balance" json:"balance"`
	RateOfInterest       float64                   `bson:"rateOfInterest" json:"rateOfInterest"`
	EMIBreakdown         map[string]float64        `bson:"emiBreakdown" json:"emiBreakdown"`
	Documentation        billing.DocumentChecklist `bson:"documentation" json:"documentation"`
}

// QuotationRequest is the record-shaped create/update body. Its layout is
// fixed by the client contract; derived fields are accepted but recomputed.
type QuotationRequest struct {
	CustomerName         string                    `json:"customer_name" binding:"required"`
	Address              string                    `json:"address"`
	Phone                string                    `json:"phone"`
	VehicleBrand         string                    `json:"vehicleBrand"`
	VehicleName          string                    `json:"vehicleName"`
	VehicleCost          float64                   `json:"vehicleCost"`
	FittingCost          float64                   `json:"fittingCost"`
	RTOCost              float64                   `json:"rtoCost"`
	DocumentationCharges float64                   `json:"documentationCharges"`
	DiscountPercent      float64                   `json:"discountPercent"`
	Initial              float64                   `json:"initial"`
	RateOfInterest       float64                   `json:"rateOfInterest"`
	Documentation        billing.DocumentChecklist `json:"documentation"`
}

// Input converts the request into the valuation engine's input shape. A
// brand of "Other" marks a manual entry priced by the submitted cost; any
// other brand resolves its price from the catalog.
func (r QuotationRequest) Input() billing.QuotationInput {
	vehicle := billing.CatalogVehicle(r.VehicleBrand, r.VehicleName)
	if r.VehicleBrand == ManualBrand {
		vehicle = billing.ManualVehicle(r.VehicleName, r.VehicleCost)
	}

	return billing.QuotationInput{
		CustomerName:        r.CustomerName,
		Address:             r.Address,
		Phone:               r.Phone,
		Vehicle:             vehicle,
		FittingCost:         r.FittingCost,
		RTOCost:             r.RTOCost,
		DocumentationCharge: r.DocumentationCharges,
		InitialPayment:      r.Initial,
		DiscountPercent:     r.DiscountPercent,
		AnnualRatePercent:   r.RateOfInterest,
		Documentation:       r.Documentation,
	}
}

// EMIBreakdownKeys converts the engine's tenure-keyed breakdown into the
// string-keyed map both BSON and the wire format require.
func EMIBreakdownKeys(breakdown map[int]float64) map[string]float64 {
	out := make(map[string]float64, len(breakdown))
	for months, installment := range breakdown {
		out[strconv.Itoa(months)] = installment
	}
	return out
}
