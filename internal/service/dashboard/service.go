package dashboard

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/royalbikes/showroom-backend/internal/domain/models"
	"github.com/royalbikes/showroom-backend/internal/repository/mongodb"
	"github.com/royalbikes/showroom-backend/internal/repository/sheets"
)

// Service aggregates counts and totals across quotations and bookings.
type Service struct {
	quotations mongodb.QuotationStore
	bookings   mongodb.BookingStore
	summaries  mongodb.SummaryStore
	exporter   sheets.Exporter
	logger     *zap.Logger
	now        func() time.Time
}

// NewService wires a new dashboard service. The exporter is optional; pass
// nil when spreadsheet export is not configured.
func NewService(quotations mongodb.QuotationStore, bookings mongodb.BookingStore, summaries mongodb.SummaryStore, exporter sheets.Exporter, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		quotations: quotations,
		bookings:   bookings,
		summaries:  summaries,
		exporter:   exporter,
		logger:     logger,
		now:        time.Now,
	}
}

// Stats returns the live quotation and booking counts shown on the landing
// dashboard.
func (s *Service) Stats(ctx context.Context) (models.DashboardStats, error) {
	quotationCount, err := s.quotations.CountQuotations(ctx)
	if err != nil {
		return models.DashboardStats{}, err
	}
	bookingCount, err := s.bookings.CountBookings(ctx)
	if err != nil {
		return models.DashboardStats{}, err
	}
	return models.DashboardStats{
		TotalQuotations: quotationCount,
		TotalBookings:   bookingCount,
	}, nil
}

// BuildDailySummary snapshots counts and outstanding value, persists the
// snapshot and, when an exporter is configured, appends it to the owner's
// spreadsheet. An export failure does not fail the run; the persisted
// snapshot is the source of truth.
func (s *Service) BuildDailySummary(ctx context.Context) (models.DailySummary, error) {
	quotations, err := s.quotations.ListQuotations(ctx)
	if err != nil {
		return models.DailySummary{}, err
	}
	bookings, err := s.bookings.ListBookings(ctx)
	if err != nil {
		return models.DailySummary{}, err
	}

	var quotedValue, bookedValue float64
	for _, q := range quotations {
		quotedValue += q.TotalCost
	}
	for _, b := range bookings {
		bookedValue += b.TotalCost
	}

	now := s.now()
	summary := models.DailySummary{
		Date:            time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		TotalQuotations: int64(len(quotations)),
		TotalBookings:   int64(len(bookings)),
		QuotedValue:     quotedValue,
		BookedValue:     bookedValue,
		CreatedAt:       now,
	}

	if err := s.summaries.SaveDailySummary(ctx, summary); err != nil {
		return models.DailySummary{}, err
	}

	if s.exporter != nil {
		if err := s.exporter.AppendSummary(ctx, summary); err != nil {
			s.logger.Warn("failed to export daily summary", zap.Error(err))
		}
	}

	s.logger.Info("daily summary built",
		zap.Int64("quotations", summary.TotalQuotations),
		zap.Int64("bookings", summary.TotalBookings),
		zap.Float64("quotedValue", summary.QuotedValue),
		zap.Float64("bookedValue", summary.BookedValue))
	return summary, nil
}
