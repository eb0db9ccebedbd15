package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/royalbikes/showroom-backend/internal/domain/models"
	"github.com/royalbikes/showroom-backend/internal/repository/mongodb"
)

type mockVehicleStore struct {
	mock.Mock
}

func (m *mockVehicleStore) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Vehicle), args.Error(1)
}

func (m *mockVehicleStore) FindVehicleByBrandModel(ctx context.Context, brand, model string) (*models.Vehicle, error) {
	args := m.Called(ctx, brand, model)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vehicle), args.Error(1)
}

func (m *mockVehicleStore) InsertVehicle(ctx context.Context, vehicle models.Vehicle) (models.Vehicle, error) {
	args := m.Called(ctx, vehicle)
	return args.Get(0).(models.Vehicle), args.Error(1)
}

func (m *mockVehicleStore) DeleteVehicle(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestAdd_TrimsAndStores(t *testing.T) {
	store := new(mockVehicleStore)
	svc := NewService(store, nil)

	store.On("FindVehicleByBrandModel", mock.Anything, "Honda", "Activa 6G").
		Return(nil, mongodb.ErrNotFound)
	store.On("InsertVehicle", mock.Anything, models.Vehicle{
		Brand: "Honda", Model: "Activa 6G", Price: 85000,
	}).Return(models.Vehicle{Brand: "Honda", Model: "Activa 6G", Price: 85000}, nil)

	created, err := svc.Add(context.Background(), models.Vehicle{
		Brand: "  Honda ", Model: " Activa 6G ", Price: 85000,
	})
	require.NoError(t, err)
	assert.Equal(t, "Honda", created.Brand)
	store.AssertExpectations(t)
}

func TestAdd_RejectsDuplicateModel(t *testing.T) {
	store := new(mockVehicleStore)
	svc := NewService(store, nil)

	store.On("FindVehicleByBrandModel", mock.Anything, "TVS", "Jupiter").
		Return(&models.Vehicle{Brand: "TVS", Model: "Jupiter"}, nil)

	_, err := svc.Add(context.Background(), models.Vehicle{Brand: "TVS", Model: "Jupiter", Price: 78000})
	assert.ErrorIs(t, err, ErrDuplicateModel)
}

func TestAdd_RejectsMissingFields(t *testing.T) {
	svc := NewService(new(mockVehicleStore), nil)

	_, err := svc.Add(context.Background(), models.Vehicle{Model: "Jupiter", Price: 78000})
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "brand", verr.Field)

	_, err = svc.Add(context.Background(), models.Vehicle{Brand: "TVS", Model: "Jupiter", Price: -1})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "price", verr.Field)
}

func TestCatalog_FoldsEntriesByBrand(t *testing.T) {
	store := new(mockVehicleStore)
	svc := NewService(store, nil)

	store.On("ListVehicles", mock.Anything).Return([]models.Vehicle{
		{Brand: "Honda", Model: "Activa 6G", Price: 85000},
		{Brand: "Honda", Model: "Shine", Price: 79000},
		{Brand: "TVS", Model: "Jupiter", Price: 78000},
	}, nil)

	catalog, err := svc.Catalog(context.Background())
	require.NoError(t, err)

	price, ok := catalog.Price("Honda", "Shine")
	require.True(t, ok)
	assert.Equal(t, 79000.0, price)

	_, ok = catalog.Price("Bajaj", "Pulsar")
	assert.False(t, ok)
}
