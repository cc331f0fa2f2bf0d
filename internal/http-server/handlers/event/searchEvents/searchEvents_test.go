package searchEvents

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventsphere/internal/http-server/handlers/event/searchEvents/mocks"
	"eventsphere/internal/lib/logger/handlers/slogdiscard"
	"eventsphere/internal/models"
)

func TestSearchEventsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	day := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name             string
		url              string
		mockSetup        func(mock *mocks.EventSearcher)
		expectedStatus   int
		expectedLocation string
		expectedBody     string
	}{
		{
			name: "Default searches title and city",
			url:  "/search?query=expo",
			mockSetup: func(m *mocks.EventSearcher) {
				m.On("SearchEvents", "expo", "", (*time.Time)(nil)).
					Return([]models.Event{{ID: 1, Title: "Tech Expo"}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Name search",
			url:  "/search?query=expo&search-type=name",
			mockSetup: func(m *mocks.EventSearcher) {
				m.On("SearchEvents", "expo", "name", (*time.Time)(nil)).
					Return([]models.Event{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Location search",
			url:  "/search?query=pune&search-type=location",
			mockSetup: func(m *mocks.EventSearcher) {
				m.On("SearchEvents", "pune", "location", (*time.Time)(nil)).
					Return([]models.Event{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Date narrows the search",
			url:  "/search?query=expo&date=2025-06-15",
			mockSetup: func(m *mocks.EventSearcher) {
				m.On("SearchEvents", "expo", "", &day).
					Return([]models.Event{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:             "No query and no date redirects home",
			url:              "/search",
			mockSetup:        func(m *mocks.EventSearcher) {},
			expectedStatus:   http.StatusFound,
			expectedLocation: "/",
		},
		{
			name: "Malformed date keeps the text filter",
			url:  "/search?query=expo&date=15-06-2025",
			mockSetup: func(m *mocks.EventSearcher) {
				m.On("SearchEvents", "expo", "", (*time.Time)(nil)).
					Return([]models.Event{{ID: 1, Title: "Tech Expo"}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Storage error",
			url:  "/search?query=expo",
			mockSetup: func(m *mocks.EventSearcher) {
				m.On("SearchEvents", "expo", "", (*time.Time)(nil)).
					Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to search events"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockSearcher := mocks.NewEventSearcher(t)
			tc.mockSetup(mockSearcher)

			handler := New(logger, mockSearcher)

			req, err := http.NewRequest("GET", tc.url, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedLocation != "" {
				assert.Equal(t, tc.expectedLocation, rr.Header().Get("Location"))
			}

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			}
		})
	}
}

func TestSearchEventsMalformedDateWarning(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	mockSearcher := mocks.NewEventSearcher(t)
	mockSearcher.On("SearchEvents", "expo", "", (*time.Time)(nil)).
		Return([]models.Event{}, nil)

	handler := New(logger, mockSearcher)

	req, err := http.NewRequest("GET", "/search?query=expo&date=not-a-date", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"warning":"Invalid date format."`)
	assert.Contains(t, rr.Body.String(), `"search_query":"expo"`)
}
