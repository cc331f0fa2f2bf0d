package deleteEvent

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventsphere/internal/http-server/handlers/event/deleteEvent/mocks"
	"eventsphere/internal/http-server/middleware/mwauth"
	"eventsphere/internal/lib/logger/handlers/slogdiscard"
	"eventsphere/internal/models"
	"eventsphere/internal/storage"
)

func flashText(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()

	for _, c := range rr.Result().Cookies() {
		if c.Name != "flash" {
			continue
		}

		data, err := base64.URLEncoding.DecodeString(c.Value)
		require.NoError(t, err)

		var msg struct {
			Kind string `json:"kind"`
			Text string `json:"text"`
		}
		require.NoError(t, json.Unmarshal(data, &msg))

		return msg.Text
	}

	return ""
}

func TestDeleteEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	owner := models.User{ID: 7, Name: "Jamie"}

	ownedEvent := &models.Event{ID: 1, Title: "Tech Expo", UserID: 7}

	testCases := []struct {
		name             string
		eventID          string
		user             models.User
		mockSetup        func(mock *mocks.EventDeleter)
		expectedStatus   int
		expectedLocation string
		expectedFlash    string
		expectedBody     string
	}{
		{
			name:    "Success",
			eventID: "1",
			user:    owner,
			mockSetup: func(m *mocks.EventDeleter) {
				m.On("GetEvent", 1).Return(ownedEvent, nil)
				m.On("CountTickets", 1).Return(0, nil)
				m.On("DeleteEvent", 1).Return(nil)
			},
			expectedStatus:   http.StatusFound,
			expectedLocation: "/events",
			expectedFlash:    "Event deleted successfully.",
		},
		{
			name:    "Tickets already sold",
			eventID: "1",
			user:    owner,
			mockSetup: func(m *mocks.EventDeleter) {
				m.On("GetEvent", 1).Return(ownedEvent, nil)
				m.On("CountTickets", 1).Return(3, nil)
			},
			expectedStatus:   http.StatusFound,
			expectedLocation: "/events",
			expectedFlash:    "Cannot delete event. Tickets have already been sold.",
		},
		{
			name:    "Not the owner",
			eventID: "1",
			user:    models.User{ID: 8, Name: "Robin"},
			mockSetup: func(m *mocks.EventDeleter) {
				m.On("GetEvent", 1).Return(ownedEvent, nil)
			},
			expectedStatus:   http.StatusFound,
			expectedLocation: "/events",
			expectedFlash:    "You are not allowed to delete this event.",
		},
		{
			name:    "Event not found",
			eventID: "99",
			user:    owner,
			mockSetup: func(m *mocks.EventDeleter) {
				m.On("GetEvent", 99).Return(nil, storage.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event not found"}`,
		},
		{
			name:           "Invalid event ID format",
			eventID:        "abc",
			user:           owner,
			mockSetup:      func(m *mocks.EventDeleter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid event id format"}`,
		},
		{
			name:    "Delete fails",
			eventID: "1",
			user:    owner,
			mockSetup: func(m *mocks.EventDeleter) {
				m.On("GetEvent", 1).Return(ownedEvent, nil)
				m.On("CountTickets", 1).Return(0, nil)
				m.On("DeleteEvent", 1).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to delete event"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockDeleter := mocks.NewEventDeleter(t)
			tc.mockSetup(mockDeleter)

			handler := New(logger, mockDeleter)

			router := chi.NewRouter()
			router.Post("/delete-event/{id}", handler)

			req, err := http.NewRequest("POST", "/delete-event/"+tc.eventID, nil)
			require.NoError(t, err)

			req = req.WithContext(mwauth.ContextWithUser(req.Context(), tc.user))

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedLocation != "" {
				assert.Equal(t, tc.expectedLocation, rr.Header().Get("Location"))
			}

			if tc.expectedFlash != "" {
				assert.Equal(t, tc.expectedFlash, flashText(t, rr))
			}

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			}
		})
	}
}
