package models

import "time"

// DashboardStats mirrors the dashboard payload field names expected by the
// front end, unusual casing included.
type DashboardStats struct {
	TotalQuotations int64 `json:"Totalquotations"`
	TotalBookings   int64 `json:"Totalbooking"`
}

// DailySummary is the end-of-day snapshot persisted by the scheduler.
type DailySummary struct {
	Date            time.Time `bson:"date" json:"date"`
	TotalQuotations int64     `bson:"total_quotations" json:"total_quotations"`
	TotalBookings   int64     `bson:"total_bookings" json:"total_bookings"`
	QuotedValue     float64   `bson:"quoted_value" json:"quoted_value"`
	BookedValue     float64   `bson:"booked_value" json:"booked_value"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}
