package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetThenPop(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Set(rr, KindError, "Cannot cancel ticket. Must be at least 5 days before the event.")

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)

	req := httptest.NewRequest(http.MethodGet, "/my-tickets", nil)
	req.AddCookie(cookies[0])

	rr2 := httptest.NewRecorder()
	msg := Pop(rr2, req)

	require.NotNil(t, msg)
	assert.Equal(t, KindError, msg.Kind)
	assert.Equal(t, "Cannot cancel ticket. Must be at least 5 days before the event.", msg.Text)

	// pop clears the cookie
	cleared := rr2.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Negative(t, cleared[0].MaxAge)
}

func TestPopWithoutCookie(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, Pop(httptest.NewRecorder(), req))
}

func TestPopGarbageCookie(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "flash", Value: "%%%not-base64%%%"})

	assert.Nil(t, Pop(httptest.NewRecorder(), req))
}
