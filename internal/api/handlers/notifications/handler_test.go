package notifications

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonAgenda/internal/notify"
)

func TestListAndMarkRead(t *testing.T) {
	center := notify.NewCenter(10)
	center.Success("Agendamento movido")
	center.Error("Falha ao salvar")
	h := NewHandler(center)

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/v1/notifications", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body NotificationsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Len(t, body.Notifications, 2)
	assert.Equal(t, 2, body.Unread)

	rec = httptest.NewRecorder()
	h.MarkRead(rec, httptest.NewRequest(http.MethodPost, "/api/v1/notifications/read", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 0, center.Unread())

	rec = httptest.NewRecorder()
	h.Clear(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/notifications", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, center.List())
}
