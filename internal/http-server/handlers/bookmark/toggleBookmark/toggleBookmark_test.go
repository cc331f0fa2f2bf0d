package toggleBookmark

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventsphere/internal/http-server/handlers/bookmark/toggleBookmark/mocks"
	"eventsphere/internal/http-server/middleware/mwauth"
	"eventsphere/internal/lib/logger/handlers/slogdiscard"
	"eventsphere/internal/models"
	"eventsphere/internal/storage"
)

func TestToggleBookmarkHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	user := models.User{ID: 7, Name: "Jamie"}

	testCases := []struct {
		name           string
		eventID        string
		mockSetup      func(mock *mocks.BookmarkToggler)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "Adds bookmark",
			eventID: "1",
			mockSetup: func(m *mocks.BookmarkToggler) {
				m.On("GetEvent", 1).Return(&models.Event{ID: 1}, nil)
				m.On("ToggleBookmark", 7, 1).Return(true, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"bookmarked":true}`,
		},
		{
			name:    "Removes bookmark",
			eventID: "1",
			mockSetup: func(m *mocks.BookmarkToggler) {
				m.On("GetEvent", 1).Return(&models.Event{ID: 1}, nil)
				m.On("ToggleBookmark", 7, 1).Return(false, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"bookmarked":false}`,
		},
		{
			name:    "Event not found",
			eventID: "99",
			mockSetup: func(m *mocks.BookmarkToggler) {
				m.On("GetEvent", 99).Return(nil, storage.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event not found"}`,
		},
		{
			name:           "Invalid event ID format",
			eventID:        "abc",
			mockSetup:      func(m *mocks.BookmarkToggler) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid event id format"}`,
		},
		{
			name:    "Concurrent insert",
			eventID: "1",
			mockSetup: func(m *mocks.BookmarkToggler) {
				m.On("GetEvent", 1).Return(&models.Event{ID: 1}, nil)
				m.On("ToggleBookmark", 7, 1).Return(false, storage.ErrBookmarkExists)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"bookmark already exists"}`,
		},
		{
			name:    "Storage error",
			eventID: "1",
			mockSetup: func(m *mocks.BookmarkToggler) {
				m.On("GetEvent", 1).Return(&models.Event{ID: 1}, nil)
				m.On("ToggleBookmark", 7, 1).Return(false, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to toggle bookmark"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockToggler := mocks.NewBookmarkToggler(t)
			tc.mockSetup(mockToggler)

			handler := New(logger, mockToggler)

			router := chi.NewRouter()
			router.Post("/bookmark/{id}", handler)

			req, err := http.NewRequest("POST", "/bookmark/"+tc.eventID, nil)
			require.NoError(t, err)

			req = req.WithContext(mwauth.ContextWithUser(req.Context(), user))

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}

// Toggling twice in a row lands back where it started.
func TestToggleBookmarkRoundTrip(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	user := models.User{ID: 7}

	mockToggler := mocks.NewBookmarkToggler(t)
	mockToggler.On("GetEvent", 1).Return(&models.Event{ID: 1}, nil).Twice()

	bookmarked := false
	mockToggler.On("ToggleBookmark", 7, 1).
		Return(func(int, int) bool {
			bookmarked = !bookmarked
			return bookmarked
		}, nil).Twice()

	handler := New(logger, mockToggler)

	router := chi.NewRouter()
	router.Post("/bookmark/{id}", handler)

	bodies := make([]string, 0, 2)
	for i := 0; i < 2; i++ {
		req, err := http.NewRequest("POST", "/bookmark/1", nil)
		require.NoError(t, err)

		req = req.WithContext(mwauth.ContextWithUser(req.Context(), user))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		bodies = append(bodies, rr.Body.String())
	}

	assert.JSONEq(t, `{"bookmarked":true}`, bodies[0])
	assert.JSONEq(t, `{"bookmarked":false}`, bodies[1])
}
