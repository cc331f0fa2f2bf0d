package models

import "time"

// Ticket is the secondary purchase record. It is written independently of
// bookings and only its per-event count is consulted, as the guard on event
// deletion.
type Ticket struct {
	ID       int       `db:"id" json:"id"`
	EventID  int       `db:"event_id" json:"event_id"`
	UserID   int       `db:"user_id" json:"user_id"`
	Quantity int       `db:"quantity" json:"quantity"`
	BookedAt time.Time `db:"booked_at" json:"booked_at"`
}
