package viewer

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidRGB(width, height int, r, g, b byte) []byte {
	buf := make([]byte, width*height*3)
	for i := 0; i < width*height; i++ {
		buf[i*3+0] = r
		buf[i*3+1] = g
		buf[i*3+2] = b
	}
	return buf
}

func TestHTTPViewer_HandleFrame_ServiceUnavailableBeforeFirstDisplay(t *testing.T) {
	v := NewHTTPViewer(uuid.New())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	v.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHTTPViewer_HandleFrame_ServesPNGAfterDisplay(t *testing.T) {
	v := NewHTTPViewer(uuid.New())
	require.NoError(t, v.Display(2, 2, solidRGB(2, 2, 10, 20, 30)))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	v.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Body.Bytes())
}

func TestHTTPViewer_HandleHealth_ReportsRunID(t *testing.T) {
	runID := uuid.New()
	v := NewHTTPViewer(runID)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	v.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, runID.String(), body["runId"])
}

func TestHTTPViewer_Display_BroadcastsToSubscribers(t *testing.T) {
	v := NewHTTPViewer(uuid.New())

	ch := make(chan []byte, 1)
	v.subscribersMu.Lock()
	v.subscribers[ch] = struct{}{}
	v.subscribersMu.Unlock()

	require.NoError(t, v.Display(1, 1, solidRGB(1, 1, 1, 2, 3)))

	select {
	case frame := <-ch:
		assert.NotEmpty(t, frame)
	case <-time.After(time.Second):
		t.Fatal("subscriber never received a broadcast frame")
	}
}

func TestHTTPViewer_Display_DoesNotBlockOnFullSubscriberChannel(t *testing.T) {
	v := NewHTTPViewer(uuid.New())

	ch := make(chan []byte, 1)
	ch <- []byte("stale frame still sitting in the buffer")
	v.subscribersMu.Lock()
	v.subscribers[ch] = struct{}{}
	v.subscribersMu.Unlock()

	done := make(chan struct{})
	go func() {
		_ = v.Display(1, 1, solidRGB(1, 1, 4, 5, 6))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Display blocked on a full subscriber channel")
	}
}
