package sheets

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/royalbikes/showroom-backend/internal/config"
	"github.com/royalbikes/showroom-backend/internal/domain/models"
)

const (
	summaryRange = "Summary!A:F"
	dateLayout   = "2006-01-02"
)

// Exporter appends daily summary rows to an external spreadsheet the
// showroom owner already works in.
type Exporter interface {
	AppendSummary(ctx context.Context, summary models.DailySummary) error
}

// GoogleSheetExporter implements Exporter using the official Google Sheets API.
type GoogleSheetExporter struct {
	service       *sheetsapi.Service
	spreadsheetID string
	logger        *zap.Logger
}

// NewGoogleSheetExporter builds a Google Sheets backed exporter instance.
func NewGoogleSheetExporter(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (*GoogleSheetExporter, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsPath), option.WithScopes(sheetsapi.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &GoogleSheetExporter{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        logger,
	}, nil
}

// AppendSummary appends one summary row: date, counts and totals.
func (e *GoogleSheetExporter) AppendSummary(ctx context.Context, summary models.DailySummary) error {
	values := []interface{}{
		summary.Date.Format(dateLayout),
		summary.TotalQuotations,
		summary.TotalBookings,
		summary.QuotedValue,
		summary.BookedValue,
		summary.CreatedAt.Format("2006-01-02 15:04:05"),
	}

	payload := &sheetsapi.ValueRange{Values: [][]interface{}{values}}

	call := e.service.Spreadsheets.Values.Append(e.spreadsheetID, summaryRange, payload).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx)

	if _, err := call.Do(); err != nil {
		return fmt.Errorf("append summary row: %w", err)
	}

	e.logger.Debug("summary row appended to sheet", zap.String("range", summaryRange))
	return nil
}
