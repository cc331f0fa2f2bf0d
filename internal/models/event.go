package models

import "time"

type Event struct {
	ID          int       `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	City        string    `db:"city" json:"city"`
	Address     string    `db:"address" json:"address"`
	Pincode     int       `db:"pincode" json:"pincode"`
	Category    string    `db:"category" json:"category"`
	Description string    `db:"description" json:"description"`
	Image       string    `db:"image" json:"image"`
	StartsAt    time.Time `db:"starts_at" json:"starts_at"`
	EndsAt      time.Time `db:"ends_at" json:"ends_at"`
	TicketPrice int       `db:"ticket_price" json:"ticket_price"`
	UserID      int       `db:"user_id" json:"user_id"`
}

// EventWithStats is an owned event together with its sales counters, as
// shown on the organizer's listing page.
type EventWithStats struct {
	Event
	TicketsSold    int `db:"tickets_sold" json:"tickets_sold"`
	BookmarksCount int `db:"bookmarks_count" json:"bookmarks_count"`
	Revenue        int `db:"revenue" json:"revenue"`
}

// EventStat is the per-event slice of an organizer's analytics rollup.
type EventStat struct {
	EventID     int    `db:"event_id" json:"event_id"`
	Title       string `db:"title" json:"title"`
	Category    string `db:"category" json:"category"`
	TicketPrice int    `db:"ticket_price" json:"ticket_price"`
	TicketsSold int    `db:"tickets_sold" json:"tickets_sold"`
}

// Revenue is the booking count times the current ticket price. Cancelled
// bookings stay in the count.
func (s EventStat) Revenue() int {
	return s.TicketsSold * s.TicketPrice
}
