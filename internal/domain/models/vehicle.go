package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/royalbikes/showroom-backend/internal/billing"
)

// ManualBrand is the brand recorded for vehicles priced outside the catalog.
const ManualBrand = "Other"

// Vehicle is one catalog entry. Model names are unique within a brand.
type Vehicle struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Brand string             `bson:"brand" json:"brand" binding:"required"`
	Model string             `bson:"model" json:"model" binding:"required"`
	Price float64            `bson:"price" json:"price"`
}

// BuildCatalog folds catalog entries into the brand -> model -> price shape
// the valuation engine consumes. Later duplicates win, matching how the
// store's uniqueness check should have prevented them in the first place.
func BuildCatalog(vehicles []Vehicle) billing.Catalog {
	catalog := make(billing.Catalog)
	for _, v := range vehicles {
		if catalog[v.Brand] == nil {
			catalog[v.Brand] = make(map[string]float64)
		}
		catalog[v.Brand][v.Model] = v.Price
	}
	return catalog
}
