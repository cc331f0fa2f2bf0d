package models

import "time"

// CancelWindowDays is the minimum number of whole days that must remain
// before the event start for a booking to be cancellable.
const CancelWindowDays = 5

type Booking struct {
	ID          int        `db:"id" json:"id"`
	EventID     int        `db:"event_id" json:"event_id"`
	UserID      int        `db:"user_id" json:"user_id"`
	Reference   string     `db:"reference" json:"reference"`
	BookedAt    time.Time  `db:"booked_at" json:"booked_at"`
	IsCancelled bool       `db:"is_cancelled" json:"is_cancelled"`
	CancelledAt *time.Time `db:"cancelled_at" json:"cancelled_at,omitempty"`
}

// CanCancel reports whether the booking may still be cancelled. The window
// counts whole days, so four days and twenty-three hours is already too
// late.
func (b Booking) CanCancel(eventStart, now time.Time) bool {
	if b.IsCancelled {
		return false
	}

	return int(eventStart.Sub(now).Hours()/24) >= CancelWindowDays
}

// BookingDetail is a booking joined with the event fields the ticket views
// need.
type BookingDetail struct {
	Booking
	EventTitle    string    `db:"event_title" json:"event_title"`
	EventCity     string    `db:"event_city" json:"event_city"`
	EventImage    string    `db:"event_image" json:"event_image"`
	EventStartsAt time.Time `db:"event_starts_at" json:"event_starts_at"`
}

// Attendee is one booking row on the organizer's attendee list.
type Attendee struct {
	BookingID   int       `db:"booking_id" json:"booking_id"`
	Reference   string    `db:"reference" json:"reference"`
	Name        string    `db:"name" json:"name"`
	Email       string    `db:"email" json:"email"`
	BookedAt    time.Time `db:"booked_at" json:"booked_at"`
	IsCancelled bool      `db:"is_cancelled" json:"is_cancelled"`
}
