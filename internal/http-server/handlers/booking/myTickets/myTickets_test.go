package myTickets

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventsphere/internal/http-server/handlers/booking/myTickets/mocks"
	"eventsphere/internal/http-server/middleware/mwauth"
	"eventsphere/internal/lib/logger/handlers/slogdiscard"
	"eventsphere/internal/models"
)

func detail(id, eventID int, title string, startsAt, bookedAt time.Time, cancelled bool) models.BookingDetail {
	return models.BookingDetail{
		Booking: models.Booking{
			ID:          id,
			EventID:     eventID,
			UserID:      7,
			Reference:   "ref-" + title,
			BookedAt:    bookedAt,
			IsCancelled: cancelled,
		},
		EventTitle:    title,
		EventCity:     "Pune",
		EventStartsAt: startsAt,
	}
}

func TestGroupByEvent(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	concertStart := now.Add(30 * 24 * time.Hour)
	fairStart := now.Add(2 * 24 * time.Hour)

	// newest booking first, the order the storage layer hands over
	records := []models.BookingDetail{
		detail(5, 2, "Concert", concertStart, now.Add(-1*time.Hour), false),
		detail(4, 1, "Art Fair", fairStart, now.Add(-2*time.Hour), true),
		detail(3, 2, "Concert", concertStart, now.Add(-3*time.Hour), true),
		detail(2, 1, "Art Fair", fairStart, now.Add(-4*time.Hour), false),
	}

	groups := groupByEvent(records, now)

	require.Len(t, groups, 2)

	// group order follows each event's most recent booking
	concert := groups[0]
	assert.Equal(t, 2, concert.EventID)
	assert.Equal(t, "Concert", concert.EventName)
	assert.Equal(t, 2, concert.TotalTickets)
	assert.Equal(t, 1, concert.ActiveTickets)
	assert.Equal(t, 1, concert.CancelledTickets)
	require.Len(t, concert.Tickets, 2)
	assert.Equal(t, 5, concert.Tickets[0].ID)
	assert.True(t, concert.Tickets[0].CanCancel, "active ticket a month out is cancellable")
	assert.Equal(t, 3, concert.Tickets[1].ID)
	assert.False(t, concert.Tickets[1].CanCancel, "cancelled ticket stays uncancellable")

	fair := groups[1]
	assert.Equal(t, 1, fair.EventID)
	assert.Equal(t, 2, fair.TotalTickets)
	assert.Equal(t, 1, fair.ActiveTickets)
	assert.Equal(t, 1, fair.CancelledTickets)
	require.Len(t, fair.Tickets, 2)
	assert.False(t, fair.Tickets[0].CanCancel, "cancelled ticket stays uncancellable")
	assert.False(t, fair.Tickets[1].CanCancel, "two days out is past the window")
}

func TestGroupByEventEmpty(t *testing.T) {
	t.Parallel()

	groups := groupByEvent(nil, time.Now())

	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}

func TestMyTicketsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	user := models.User{ID: 7, Name: "Jamie"}
	now := time.Now()

	testCases := []struct {
		name           string
		mockSetup      func(mock *mocks.BookingsLister)
		expectedStatus int
		checkBody      func(t *testing.T, body []byte)
	}{
		{
			name: "Bookings grouped per event",
			mockSetup: func(m *mocks.BookingsLister) {
				m.On("ListUserBookings", 7).Return([]models.BookingDetail{
					detail(5, 2, "Concert", now.Add(30*24*time.Hour), now.Add(-1*time.Hour), false),
					detail(4, 1, "Art Fair", now.Add(20*24*time.Hour), now.Add(-2*time.Hour), false),
					detail(3, 2, "Concert", now.Add(30*24*time.Hour), now.Add(-3*time.Hour), true),
				}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body []byte) {
				var resp TicketsResponse
				require.NoError(t, json.Unmarshal(body, &resp))

				require.Len(t, resp.Groups, 2)
				assert.Equal(t, "Concert", resp.Groups[0].EventName)
				assert.Equal(t, 2, resp.Groups[0].TotalTickets)
				assert.Equal(t, 1, resp.Groups[0].ActiveTickets)
				assert.Equal(t, 1, resp.Groups[0].CancelledTickets)
				assert.Equal(t, "Art Fair", resp.Groups[1].EventName)
				assert.Equal(t, 1, resp.Groups[1].TotalTickets)
			},
		},
		{
			name: "No bookings",
			mockSetup: func(m *mocks.BookingsLister) {
				m.On("ListUserBookings", 7).Return([]models.BookingDetail{}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body []byte) {
				var resp TicketsResponse
				require.NoError(t, json.Unmarshal(body, &resp))

				assert.Empty(t, resp.Groups)
			},
		},
		{
			name: "Storage error",
			mockSetup: func(m *mocks.BookingsLister) {
				m.On("ListUserBookings", 7).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `{"status":"Error","error":"failed to get tickets"}`, string(body))
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockLister := mocks.NewBookingsLister(t)
			tc.mockSetup(mockLister)

			handler := New(logger, mockLister)

			req, err := http.NewRequest("GET", "/my-tickets", nil)
			require.NoError(t, err)

			req = req.WithContext(mwauth.ContextWithUser(req.Context(), user))

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			tc.checkBody(t, rr.Body.Bytes())
		})
	}
}
