package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/royalbikes/showroom-backend/internal/auth"
	"github.com/royalbikes/showroom-backend/internal/config"
	"github.com/royalbikes/showroom-backend/internal/domain/models"
	"github.com/royalbikes/showroom-backend/internal/repository/mongodb"
	"github.com/royalbikes/showroom-backend/internal/server/handlers"
	"github.com/royalbikes/showroom-backend/internal/service/catalog"
	"github.com/royalbikes/showroom-backend/internal/service/dashboard"
	"github.com/royalbikes/showroom-backend/internal/service/quotation"
)

// In-memory stores standing in for MongoDB so the whole HTTP surface can be
// exercised without a database.

type memVehicleStore struct {
	vehicles []models.Vehicle
}

func (s *memVehicleStore) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	return append([]models.Vehicle{}, s.vehicles...), nil
}

func (s *memVehicleStore) FindVehicleByBrandModel(ctx context.Context, brand, model string) (*models.Vehicle, error) {
	for i := range s.vehicles {
		if s.vehicles[i].Brand == brand && s.vehicles[i].Model == model {
			return &s.vehicles[i], nil
		}
	}
	return nil, mongodb.ErrNotFound
}

func (s *memVehicleStore) InsertVehicle(ctx context.Context, vehicle models.Vehicle) (models.Vehicle, error) {
	vehicle.ID = primitive.NewObjectID()
	s.vehicles = append(s.vehicles, vehicle)
	return vehicle, nil
}

func (s *memVehicleStore) DeleteVehicle(ctx context.Context, id string) error {
	for i := range s.vehicles {
		if s.vehicles[i].ID.Hex() == id {
			s.vehicles = append(s.vehicles[:i], s.vehicles[i+1:]...)
			return nil
		}
	}
	return mongodb.ErrNotFound
}

type memQuotationStore struct {
	quotations []models.Quotation
}

func (s *memQuotationStore) ListQuotations(ctx context.Context) ([]models.Quotation, error) {
	return append([]models.Quotation{}, s.quotations...), nil
}

func (s *memQuotationStore) FindQuotationByID(ctx context.Context, id string) (*models.Quotation, error) {
	for i := range s.quotations {
		if s.quotations[i].ID.Hex() == id {
			q := s.quotations[i]
			return &q, nil
		}
	}
	return nil, mongodb.ErrNotFound
}

func (s *memQuotationStore) InsertQuotation(ctx context.Context, quotation models.Quotation) (models.Quotation, error) {
	quotation.ID = primitive.NewObjectID()
	s.quotations = append(s.quotations, quotation)
	return quotation, nil
}

func (s *memQuotationStore) ReplaceQuotation(ctx context.Context, id string, quotation models.Quotation) error {
	for i := range s.quotations {
		if s.quotations[i].ID.Hex() == id {
			quotation.ID = s.quotations[i].ID
			s.quotations[i] = quotation
			return nil
		}
	}
	return mongodb.ErrNotFound
}

func (s *memQuotationStore) DeleteQuotation(ctx context.Context, id string) error {
	for i := range s.quotations {
		if s.quotations[i].ID.Hex() == id {
			s.quotations = append(s.quotations[:i], s.quotations[i+1:]...)
			return nil
		}
	}
	return mongodb.ErrNotFound
}

func (s *memQuotationStore) CountQuotations(ctx context.Context) (int64, error) {
	return int64(len(s.quotations)), nil
}

type memBookingStore struct {
	bookings []models.BookedVehicle
}

func (s *memBookingStore) ListBookings(ctx context.Context) ([]models.BookedVehicle, error) {
	return append([]models.BookedVehicle{}, s.bookings...), nil
}

func (s *memBookingStore) InsertBooking(ctx context.Context, booking models.BookedVehicle) (models.BookedVehicle, error) {
	booking.ID = primitive.NewObjectID()
	s.bookings = append(s.bookings, booking)
	return booking, nil
}

func (s *memBookingStore) DeleteBooking(ctx context.Context, id string) error {
	for i := range s.bookings {
		if s.bookings[i].ID.Hex() == id {
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			return nil
		}
	}
	return mongodb.ErrNotFound
}

func (s *memBookingStore) CountBookings(ctx context.Context) (int64, error) {
	return int64(len(s.bookings)), nil
}

type memUserStore struct {
	users []models.User
}

func (s *memUserStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	for i := range s.users {
		if s.users[i].Email == email {
			return &s.users[i], nil
		}
	}
	return nil, mongodb.ErrNotFound
}

func (s *memUserStore) InsertUser(ctx context.Context, user models.User) (models.User, error) {
	user.ID = primitive.NewObjectID()
	s.users = append(s.users, user)
	return user, nil
}

type memPermissionStore struct {
	permissions []models.Permission
}

func (s *memPermissionStore) ListPermissions(ctx context.Context) ([]models.Permission, error) {
	return append([]models.Permission{}, s.permissions...), nil
}

type testEnv struct {
	engine     *gin.Engine
	authSvc    *auth.Service
	users      *memUserStore
	quotations *memQuotationStore
	bookings   *memBookingStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	authSvc := auth.NewService(config.AuthConfig{JWTSecret: "test-secret", TokenTTL: time.Hour})
	vehicles := &memVehicleStore{}
	quotations := &memQuotationStore{}
	bookings := &memBookingStore{}
	users := &memUserStore{}
	permissions := &memPermissionStore{permissions: []models.Permission{
		{UserType: models.UserTypeStaff, ModuleID: "billing", HasAccess: true},
	}}

	catalogSvc := catalog.NewService(vehicles, nil)
	quotationSvc := quotation.NewService(quotations, bookings, catalogSvc, "RB-", nil)
	dashboardSvc := dashboard.NewService(quotations, bookings, nopSummaryStore{}, nil, nil)

	engine := New(Handlers{
		Auth:       handlers.NewAuthHandler(authSvc, users, nil),
		Vehicle:    handlers.NewVehicleHandler(catalogSvc, nil),
		Billing:    handlers.NewBillingHandler(quotationSvc, nil),
		Booked:     handlers.NewBookedHandler(quotationSvc, nil),
		Dashboard:  handlers.NewDashboardHandler(dashboardSvc, nil),
		Permission: handlers.NewPermissionHandler(permissions, nil),
	}, authSvc, nil)

	return &testEnv{
		engine:     engine,
		authSvc:    authSvc,
		users:      users,
		quotations: quotations,
		bookings:   bookings,
	}
}

type nopSummaryStore struct{}

func (nopSummaryStore) SaveDailySummary(ctx context.Context, summary models.DailySummary) error {
	return nil
}

func (env *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.engine.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) token(t *testing.T) string {
	t.Helper()
	token, err := env.authSvc.GenerateToken(primitive.NewObjectID().Hex(), "Test Operator", models.UserTypeStaff)
	require.NoError(t, err)
	return token
}

func TestHealthzIsPublic(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPIRequiresToken(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/billing", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodGet, "/dashboard", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/register", "", models.RegisterRequest{
		Name:     "Asha",
		Email:    "asha@royalbikes.example",
		Password: "s3cret-pass",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodPost, "/login", "", models.LoginRequest{
		Email:    "asha@royalbikes.example",
		Password: "s3cret-pass",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "Asha", resp.User.UserName)
	assert.Equal(t, models.UserTypeStaff, resp.User.UserType)

	rec = env.do(t, http.MethodPost, "/login", "", models.LoginRequest{
		Email:    "asha@royalbikes.example",
		Password: "wrong-pass",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestQuotationLifecycle(t *testing.T) {
	env := newTestEnv(t)
	token := env.token(t)

	rec := env.do(t, http.MethodPost, "/api/vehicles", token, models.Vehicle{
		Brand: "Honda", Model: "Activa 6G", Price: 85000,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/billing", token, models.QuotationRequest{
		CustomerName:         "Ravi Kumar",
		VehicleBrand:         "Honda",
		VehicleName:          "Activa 6G",
		FittingCost:          1500,
		RTOCost:              4200,
		DocumentationCharges: 1000,
		Initial:              10000,
		RateOfInterest:       12,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Quotation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "RB-01", created.BillNo)
	assert.Equal(t, 90700.0, created.TotalCost)
	assert.Equal(t, 80700.0, created.Balance)

	rec = env.do(t, http.MethodGet, "/api/billing", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listed struct {
		Bills []models.Quotation `json:"bills"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed.Bills, 1)

	rec = env.do(t, http.MethodPost, "/api/billing/"+created.ID.Hex()+"/book", token, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var booked models.BookedVehicle
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &booked))
	assert.Equal(t, "RB-01", booked.BillNo)
	assert.Equal(t, models.StatusBooked, booked.Status)

	// The quotation moved; it must not remain in both collections.
	assert.Empty(t, env.quotations.quotations)
	require.Len(t, env.bookings.bookings, 1)

	rec = env.do(t, http.MethodGet, "/dashboard", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var stats models.DashboardStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, int64(0), stats.TotalQuotations)
	assert.Equal(t, int64(1), stats.TotalBookings)
}

func TestCreateQuotationValidationSurfacesField(t *testing.T) {
	env := newTestEnv(t)
	token := env.token(t)

	rec := env.do(t, http.MethodPost, "/api/billing", token, map[string]interface{}{
		"customer_name": "Ravi Kumar",
		"vehicleBrand":  models.ManualBrand,
		"vehicleName":   "Custom Cruiser",
		"vehicleCost":   0,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "vehicleCost", body["field"])
}

func TestDuplicateVehicleModelConflicts(t *testing.T) {
	env := newTestEnv(t)
	token := env.token(t)

	entry := models.Vehicle{Brand: "TVS", Model: "Jupiter", Price: 78000}
	rec := env.do(t, http.MethodPost, "/api/vehicles", token, entry)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/vehicles", token, entry)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestDeleteMissingQuotationIs404(t *testing.T) {
	env := newTestEnv(t)
	token := env.token(t)

	rec := env.do(t, http.MethodDelete, "/api/billing/"+primitive.NewObjectID().Hex(), token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
