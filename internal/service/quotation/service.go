package quotation

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/royalbikes/showroom-backend/internal/billing"
	"github.com/royalbikes/showroom-backend/internal/domain/models"
	"github.com/royalbikes/showroom-backend/internal/repository/mongodb"
)

// Quotation dates render the way the printed bill shows them.
const dateLayout = "02 Jan 2006"

// CatalogSource supplies the current price catalog for valuation.
type CatalogSource interface {
	Catalog(ctx context.Context) (billing.Catalog, error)
}

// Service owns the quotation and booking lifecycle.
type Service struct {
	quotations mongodb.QuotationStore
	bookings   mongodb.BookingStore
	catalog    CatalogSource
	billPrefix string
	logger     *zap.Logger
	now        func() time.Time
}

// NewService wires a new quotation service instance.
func NewService(quotations mongodb.QuotationStore, bookings mongodb.BookingStore, catalog CatalogSource, billPrefix string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if billPrefix == "" {
		billPrefix = billing.DefaultBillPrefix
	}
	return &Service{
		quotations: quotations,
		bookings:   bookings,
		catalog:    catalog,
		billPrefix: billPrefix,
		logger:     logger,
		now:        time.Now,
	}
}

// ListQuotations returns stored quotations, optionally narrowed by a search
// term over customer name, phone and bill number.
func (s *Service) ListQuotations(ctx context.Context, search string) ([]models.Quotation, error) {
	quotations, err := s.quotations.ListQuotations(ctx)
	if err != nil {
		return nil, err
	}
	if search == "" {
		return quotations, nil
	}

	filtered := []models.Quotation{}
	for _, q := range quotations {
		if matchesSearch(search, q.CustomerName, q.Phone, q.BillNo) {
			filtered = append(filtered, q)
		}
	}
	return filtered, nil
}

// CreateQuotation validates the request, prices it and persists a record
// under the next sequential bill number. The bill number is recomputed from
// the persisted set on every create so concurrent deletions and edits from
// other sessions are tolerated.
func (s *Service) CreateQuotation(ctx context.Context, req models.QuotationRequest) (models.Quotation, error) {
	if err := validate(req); err != nil {
		return models.Quotation{}, err
	}

	record, err := s.price(ctx, req)
	if err != nil {
		return models.Quotation{}, err
	}

	existing, err := s.quotations.ListQuotations(ctx)
	if err != nil {
		return models.Quotation{}, err
	}
	billNos := make([]string, 0, len(existing))
	for _, q := range existing {
		billNos = append(billNos, q.BillNo)
	}

	record.BillNo = billing.NextBillNo(s.billPrefix, billNos)
	record.Date = s.now().Format(dateLayout)

	created, err := s.quotations.InsertQuotation(ctx, record)
	if err != nil {
		return models.Quotation{}, err
	}

	s.logger.Info("quotation created",
		zap.String("billNo", created.BillNo),
		zap.String("customer", created.CustomerName),
		zap.Float64("totalCost", created.TotalCost))
	return created, nil
}

// UpdateQuotation replaces a quotation wholesale, repricing it from the
// submitted inputs while keeping the original bill number and date.
func (s *Service) UpdateQuotation(ctx context.Context, id string, req models.QuotationRequest) (models.Quotation, error) {
	if err := validate(req); err != nil {
		return models.Quotation{}, err
	}

	current, err := s.quotations.FindQuotationByID(ctx, id)
	if err != nil {
		return models.Quotation{}, err
	}

	record, err := s.price(ctx, req)
	if err != nil {
		return models.Quotation{}, err
	}
	record.BillNo = current.BillNo
	record.Date = current.Date

	if err := s.quotations.ReplaceQuotation(ctx, id, record); err != nil {
		return models.Quotation{}, err
	}
	record.ID = current.ID

	s.logger.Info("quotation updated", zap.String("billNo", record.BillNo))
	return record, nil
}

// DeleteQuotation removes a quotation.
func (s *Service) DeleteQuotation(ctx context.Context, id string) error {
	return s.quotations.DeleteQuotation(ctx, id)
}

// ListBookings returns booked vehicle records, optionally narrowed by a
// search term over customer name, phone, bill number and vehicle name.
func (s *Service) ListBookings(ctx context.Context, search string) ([]models.BookedVehicle, error) {
	bookings, err := s.bookings.ListBookings(ctx)
	if err != nil {
		return nil, err
	}
	if search == "" {
		return bookings, nil
	}

	filtered := []models.BookedVehicle{}
	for _, b := range bookings {
		if matchesSearch(search, b.CustomerName, b.Phone, b.BillNo, b.VehicleName) {
			filtered = append(filtered, b)
		}
	}
	return filtered, nil
}

// BookQuotation promotes a quotation to a booked vehicle as one server-side
// move: insert the booked record, then delete the source quotation. If the
// delete fails the just-created booked record is removed again so the
// failure never leaves both records behind.
func (s *Service) BookQuotation(ctx context.Context, id string) (models.BookedVehicle, error) {
	quotation, err := s.quotations.FindQuotationByID(ctx, id)
	if err != nil {
		return models.BookedVehicle{}, err
	}

	booking := models.BookedVehicle{
		Quotation:   *quotation,
		BookingDate: s.now().Format(dateLayout),
		Status:      models.StatusBooked,
	}

	created, err := s.bookings.InsertBooking(ctx, booking)
	if err != nil {
		return models.BookedVehicle{}, err
	}

	if err := s.quotations.DeleteQuotation(ctx, id); err != nil {
		if compErr := s.bookings.DeleteBooking(ctx, created.ID.Hex()); compErr != nil {
			// Both halves failed; the records are now duplicated and need
			// operator attention.
			s.logger.Error("booking compensation failed",
				zap.String("billNo", quotation.BillNo),
				zap.NamedError("deleteQuotation", err),
				zap.NamedError("deleteBooking", compErr))
		}
		return models.BookedVehicle{}, err
	}

	s.logger.Info("quotation booked",
		zap.String("billNo", created.BillNo),
		zap.String("bookingDate", created.BookingDate))
	return created, nil
}

// CreateBooking stores a booked vehicle record directly. Kept for contract
// compatibility with clients that still drive the promote flow themselves.
func (s *Service) CreateBooking(ctx context.Context, booking models.BookedVehicle) (models.BookedVehicle, error) {
	if strings.TrimSpace(booking.CustomerName) == "" {
		return models.BookedVehicle{}, models.Invalid("customer_name", "customer name is required")
	}
	if booking.Status == "" {
		booking.Status = models.StatusBooked
	}
	if booking.BookingDate == "" {
		booking.BookingDate = s.now().Format(dateLayout)
	}
	return s.bookings.InsertBooking(ctx, booking)
}

// DeleteBooking removes a booked vehicle record.
func (s *Service) DeleteBooking(ctx context.Context, id string) error {
	return s.bookings.DeleteBooking(ctx, id)
}

// price runs the valuation engine over the request and flattens the result
// into the persisted record shape. Derived fields submitted by the client
// are discarded.
func (s *Service) price(ctx context.Context, req models.QuotationRequest) (models.Quotation, error) {
	catalog, err := s.catalog.Catalog(ctx)
	if err != nil {
		return models.Quotation{}, err
	}

	valuation := billing.Evaluate(req.Input(), catalog)

	return models.Quotation{
		CustomerName:         req.CustomerName,
		Address:              req.Address,
		Phone:                req.Phone,
		VehicleBrand:         req.VehicleBrand,
		VehicleName:          req.VehicleName,
		VehicleCost:          valuation.VehicleCost,
		FittingCost:          billing.Round2(req.FittingCost),
		RTOCost:              billing.Round2(req.RTOCost),
		DocumentationCharges: valuation.DocumentationCharge,
		DiscountPercent:      req.DiscountPercent,
		Discount:             valuation.DiscountAmount,
		TotalCost:            valuation.TotalCost,
		Initial:              billing.Round2(req.Initial),
		Balance:              valuation.Balance,
		RateOfInterest:       req.RateOfInterest,
		EMIBreakdown:         models.EMIBreakdownKeys(valuation.EMIBreakdown),
		Documentation:        req.Documentation,
	}, nil
}

// validate rejects a request before any store call is made. The engine
// itself computes best-effort over validated input.
func validate(req models.QuotationRequest) error {
	if strings.TrimSpace(req.CustomerName) == "" {
		return models.Invalid("customer_name", "customer name is required")
	}

	if req.VehicleBrand == models.ManualBrand {
		if strings.TrimSpace(req.VehicleName) == "" {
			return models.Invalid("vehicleName", "vehicle name is required for manual entry")
		}
		if req.VehicleCost <= 0 {
			return models.Invalid("vehicleCost", "a positive vehicle cost is required for manual entry")
		}
	} else {
		if strings.TrimSpace(req.VehicleBrand) == "" {
			return models.Invalid("vehicleBrand", "vehicle brand is required")
		}
		if strings.TrimSpace(req.VehicleName) == "" {
			return models.Invalid("vehicleName", "vehicle model is required")
		}
	}

	switch {
	case req.FittingCost < 0:
		return models.Invalid("fittingCost", "must not be negative")
	case req.RTOCost < 0:
		return models.Invalid("rtoCost", "must not be negative")
	case req.DocumentationCharges < 0:
		return models.Invalid("documentationCharges", "must not be negative")
	case req.Initial < 0:
		return models.Invalid("initial", "must not be negative")
	case req.RateOfInterest < 0:
		return models.Invalid("rateOfInterest", "must not be negative")
	case req.DiscountPercent < 0 || req.DiscountPercent > 100:
		return models.Invalid("discountPercent", "must be between 0 and 100")
	}

	return nil
}

func matchesSearch(term string, fields ...string) bool {
	term = strings.ToLower(term)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}
