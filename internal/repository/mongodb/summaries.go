package mongodb

import (
	"context"
	"fmt"

	"github.com/royalbikes/showroom-backend/internal/domain/models"
)

// SummaryStore defines the persistence operations for daily summaries.
type SummaryStore interface {
	SaveDailySummary(ctx context.Context, summary models.DailySummary) error
}

// SaveDailySummary appends a daily summary snapshot.
func (r *Repository) SaveDailySummary(ctx context.Context, summary models.DailySummary) error {
	if _, err := r.db.Collection(summariesCollection).InsertOne(ctx, summary); err != nil {
		return fmt.Errorf("insert daily summary: %w", err)
	}
	return nil
}
