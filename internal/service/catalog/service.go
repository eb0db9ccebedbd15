package catalog

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/royalbikes/showroom-backend/internal/billing"
	"github.com/royalbikes/showroom-backend/internal/domain/models"
	"github.com/royalbikes/showroom-backend/internal/repository/mongodb"
)

// ErrDuplicateModel indicates a brand already carries the submitted model.
var ErrDuplicateModel = errors.New("model already exists for this brand")

// Service manages the vehicle catalog.
type Service struct {
	store  mongodb.VehicleStore
	logger *zap.Logger
}

// NewService wires a new catalog service instance.
func NewService(store mongodb.VehicleStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, logger: logger}
}

// List returns every catalog entry.
func (s *Service) List(ctx context.Context) ([]models.Vehicle, error) {
	return s.store.ListVehicles(ctx)
}

// Add validates and stores a new catalog entry. Model names are unique per
// brand; a duplicate is rejected with ErrDuplicateModel.
func (s *Service) Add(ctx context.Context, vehicle models.Vehicle) (models.Vehicle, error) {
	vehicle.Brand = strings.TrimSpace(vehicle.Brand)
	vehicle.Model = strings.TrimSpace(vehicle.Model)

	if vehicle.Brand == "" {
		return models.Vehicle{}, models.Invalid("brand", "brand is required")
	}
	if vehicle.Model == "" {
		return models.Vehicle{}, models.Invalid("model", "model is required")
	}
	if vehicle.Price < 0 {
		return models.Vehicle{}, models.Invalid("price", "price must not be negative")
	}

	_, err := s.store.FindVehicleByBrandModel(ctx, vehicle.Brand, vehicle.Model)
	switch {
	case err == nil:
		return models.Vehicle{}, ErrDuplicateModel
	case !errors.Is(err, mongodb.ErrNotFound):
		return models.Vehicle{}, err
	}

	created, err := s.store.InsertVehicle(ctx, vehicle)
	if err != nil {
		return models.Vehicle{}, err
	}

	s.logger.Info("catalog entry added",
		zap.String("brand", created.Brand),
		zap.String("model", created.Model),
		zap.Float64("price", created.Price))
	return created, nil
}

// Delete removes a catalog entry.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.DeleteVehicle(ctx, id)
}

// Catalog folds the stored entries into the lookup shape the valuation
// engine consumes.
func (s *Service) Catalog(ctx context.Context) (billing.Catalog, error) {
	vehicles, err := s.store.ListVehicles(ctx)
	if err != nil {
		return nil, err
	}
	return models.BuildCatalog(vehicles), nil
}
