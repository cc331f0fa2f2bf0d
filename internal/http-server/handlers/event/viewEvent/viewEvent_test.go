package viewEvent

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventsphere/internal/http-server/handlers/event/viewEvent/mocks"
	"eventsphere/internal/http-server/middleware/mwauth"
	"eventsphere/internal/lib/logger/handlers/slogdiscard"
	"eventsphere/internal/models"
	"eventsphere/internal/storage"
)

func TestViewEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	event := &models.Event{ID: 1, Title: "Tech Expo", UserID: 9}
	organizer := &models.User{ID: 9, Name: "Robin"}

	testCases := []struct {
		name           string
		url            string
		user           *models.User
		mockSetup      func(mock *mocks.EventViewer)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Anonymous visitor",
			url:  "/view-event?id=1",
			mockSetup: func(m *mocks.EventViewer) {
				m.On("GetEvent", 1).Return(event, nil)
				m.On("UserByID", 9).Return(organizer, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"organizer":"Robin"`)
				assert.Contains(t, body, `"bookmarked":false`)
			},
		},
		{
			name: "Logged in with bookmark",
			url:  "/view-event?id=1",
			user: &models.User{ID: 7, Name: "Jamie"},
			mockSetup: func(m *mocks.EventViewer) {
				m.On("GetEvent", 1).Return(event, nil)
				m.On("UserByID", 9).Return(organizer, nil)
				m.On("IsBookmarked", 7, 1).Return(true, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"bookmarked":true`)
			},
		},
		{
			name:           "Missing event ID",
			url:            "/view-event",
			mockSetup:      func(m *mocks.EventViewer) {},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "Invalid event ID format",
			url:            "/view-event?id=abc",
			mockSetup:      func(m *mocks.EventViewer) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid event id format"}`,
		},
		{
			name: "Event not found",
			url:  "/view-event?id=99",
			mockSetup: func(m *mocks.EventViewer) {
				m.On("GetEvent", 99).Return(nil, storage.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event not found"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockViewer := mocks.NewEventViewer(t)
			tc.mockSetup(mockViewer)

			handler := New(logger, mockViewer)

			req, err := http.NewRequest("GET", tc.url, nil)
			require.NoError(t, err)

			if tc.user != nil {
				req = req.WithContext(mwauth.ContextWithUser(req.Context(), *tc.user))
			}

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedStatus == http.StatusNoContent {
				assert.Empty(t, rr.Body.String())
			}

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			}

			if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
