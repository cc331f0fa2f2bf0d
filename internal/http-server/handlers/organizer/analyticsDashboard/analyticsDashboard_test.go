package analyticsDashboard

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventsphere/internal/http-server/handlers/organizer/analyticsDashboard/mocks"
	"eventsphere/internal/http-server/middleware/mwauth"
	"eventsphere/internal/lib/logger/handlers/slogdiscard"
	"eventsphere/internal/models"
)

func TestAnalyticsDashboardHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	user := models.User{ID: 7, Name: "Jamie"}

	stats := []models.EventStat{
		{EventID: 1, Title: "Art Fair", Category: "art", TicketPrice: 50, TicketsSold: 1},
		{EventID: 2, Title: "Concert", Category: "music", TicketPrice: 100, TicketsSold: 1},
	}

	testCases := []struct {
		name           string
		mockSetup      func(mock *mocks.StatsProvider)
		expectedStatus int
		checkBody      func(t *testing.T, body []byte)
	}{
		{
			name: "Two events split the revenue",
			mockSetup: func(m *mocks.StatsProvider) {
				m.On("ListOwnerEventStats", 7).Return(stats, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body []byte) {
				var resp DashboardResponse
				require.NoError(t, json.Unmarshal(body, &resp))

				assert.True(t, resp.HasData)
				assert.Equal(t, 150, resp.TotalRevenue)
				assert.Equal(t, 2, resp.TotalTicketsSold)
				assert.Empty(t, resp.Message)

				require.Len(t, resp.TopEvents, 2)
				assert.Equal(t, "Art Fair", resp.TopEvents[0].Title)
				assert.Equal(t, "Concert", resp.TopEvents[1].Title)

				require.Len(t, resp.TopCategories, 2)
				assert.Equal(t, "music", resp.TopCategories[0].Category)
				assert.Equal(t, 100, resp.TopCategories[0].Revenue)

				require.Len(t, resp.RevenueShares, 2)
				assert.InDelta(t, 33.33, resp.RevenueShares[0].Percentage, 0.001)
				assert.InDelta(t, 66.67, resp.RevenueShares[1].Percentage, 0.001)
			},
		},
		{
			name: "No events yet",
			mockSetup: func(m *mocks.StatsProvider) {
				m.On("ListOwnerEventStats", 7).Return([]models.EventStat{}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body []byte) {
				var resp DashboardResponse
				require.NoError(t, json.Unmarshal(body, &resp))

				assert.False(t, resp.HasData)
				assert.Equal(t, "No data to display the results", resp.Message)
				assert.Empty(t, resp.TopEvents)
				assert.Empty(t, resp.RevenueShares)
			},
		},
		{
			name: "Storage error",
			mockSetup: func(m *mocks.StatsProvider) {
				m.On("ListOwnerEventStats", 7).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `{"status":"Error","error":"failed to build analytics"}`, string(body))
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockStats := mocks.NewStatsProvider(t)
			tc.mockSetup(mockStats)

			handler := New(logger, mockStats)

			req, err := http.NewRequest("GET", "/analytics-dashboard", nil)
			require.NoError(t, err)

			req = req.WithContext(mwauth.ContextWithUser(req.Context(), user))

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			tc.checkBody(t, rr.Body.Bytes())
		})
	}
}

// Cancelled bookings stay in the sold counts the storage layer hands over,
// so a fully cancelled event still reports its revenue.
func TestAnalyticsDashboardCountsCancelledSales(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	mockStats := mocks.NewStatsProvider(t)
	mockStats.On("ListOwnerEventStats", 7).Return([]models.EventStat{
		{EventID: 1, Title: "Ghost Town Gig", Category: "music", TicketPrice: 40, TicketsSold: 3},
	}, nil)

	handler := New(logger, mockStats)

	req, err := http.NewRequest("GET", "/analytics-dashboard", nil)
	require.NoError(t, err)

	req = req.WithContext(mwauth.ContextWithUser(req.Context(), models.User{ID: 7}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp DashboardResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	assert.Equal(t, 120, resp.TotalRevenue)
	assert.Equal(t, 3, resp.TotalTicketsSold)
}
