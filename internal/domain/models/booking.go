package models

// BookedVehicle is a quotation promoted to a committed sale. Booked records
// are created and deleted, never edited in place.
type BookedVehicle struct {
	Quotation   `bson:",inline"`
	BookingDate string `bson:"bookingDate" json:"bookingDate"`
	Status      string `bson:"status" json:"status"`
}

// StatusBooked is the only status a booked vehicle record carries.
const StatusBooked = "booked"
