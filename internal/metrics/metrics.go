package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	eventsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "eventsphere",
			Name:      "events_created_total",
			Help:      "Count of events listed by organizers.",
		},
	)

	bookingsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "eventsphere",
			Name:      "bookings_created_total",
			Help:      "Count of tickets booked.",
		},
	)

	bookingsCancelled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "eventsphere",
			Name:      "bookings_cancelled_total",
			Help:      "Count of bookings cancelled by attendees.",
		},
	)

	bookmarksToggled = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "eventsphere",
			Name:      "bookmarks_toggled_total",
			Help:      "Count of bookmark toggles by resulting state.",
		},
		[]string{"state"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(eventsCreated, bookingsCreated, bookingsCancelled, bookmarksToggled)
	})
}

func IncEventCreated() {
	eventsCreated.Inc()
}

func IncBookingCreated() {
	bookingsCreated.Inc()
}

func IncBookingCancelled() {
	bookingsCancelled.Inc()
}

func IncBookmarkToggled(bookmarked bool) {
	if bookmarked {
		bookmarksToggled.WithLabelValues("bookmarked").Inc()
	} else {
		bookmarksToggled.WithLabelValues("unbookmarked").Inc()
	}
}
