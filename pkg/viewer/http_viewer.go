package viewer

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"sync"

	"github.com/google/uuid"
)

// HTTPViewer keeps the latest tonemapped frame in memory and serves it
// over HTTP, grounded on the teacher's web/server/server.go: a PNG
// snapshot at GET /, a Server-Sent-Events stream at GET /stream pushing a
// base64 PNG payload on every Display call (the teacher's TileUpdate SSE
// pattern, collapsed to whole-frame updates since this renderer has no
// tiles), and a bare /healthz matching handleHealth.
type HTTPViewer struct {
	runID uuid.UUID

	mu     sync.RWMutex
	width  int
	height int
	rgb    []byte

	subscribers   map[chan []byte]struct{}
	subscribersMu sync.Mutex
}

// NewHTTPViewer creates a viewer tagged with runID for correlating log
// lines and /healthz responses across a render run.
func NewHTTPViewer(runID uuid.UUID) *HTTPViewer {
	return &HTTPViewer{
		runID:       runID,
		subscribers: make(map[chan []byte]struct{}),
	}
}

// Display implements Viewer: it stores the frame and notifies every
// connected SSE subscriber.
func (v *HTTPViewer) Display(width, height int, rgb []byte) error {
	png, err := encodePNG(width, height, rgb)
	if err != nil {
		return fmt.Errorf("viewer: encode frame: %w", err)
	}

	v.mu.Lock()
	v.width, v.height, v.rgb = width, height, rgb
	v.mu.Unlock()

	v.broadcast(png)
	return nil
}

func (v *HTTPViewer) broadcast(png []byte) {
	v.subscribersMu.Lock()
	defer v.subscribersMu.Unlock()

	for ch := range v.subscribers {
		select {
		case ch <- png:
		default:
			// A slow subscriber drops frames rather than blocking Display.
		}
	}
}

// Handler returns the HTTP handler serving the current frame, the SSE
// stream, and a health check.
func (v *HTTPViewer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", v.handleFrame)
	mux.HandleFunc("/stream", v.handleStream)
	mux.HandleFunc("/healthz", v.handleHealth)
	return mux
}

func (v *HTTPViewer) handleFrame(w http.ResponseWriter, r *http.Request) {
	v.mu.RLock()
	width, height, rgb := v.width, v.height, v.rgb
	v.mu.RUnlock()

	if rgb == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	png, err := encodePNG(width, height, rgb)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

func (v *HTTPViewer) handleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := make(chan []byte, 1)
	v.subscribersMu.Lock()
	v.subscribers[ch] = struct{}{}
	v.subscribersMu.Unlock()

	defer func() {
		v.subscribersMu.Lock()
		delete(v.subscribers, ch)
		v.subscribersMu.Unlock()
		close(ch)
	}()

	for {
		select {
		case png := <-ch:
			fmt.Fprintf(w, "event: frame\ndata: %s\n\n", base64.StdEncoding.EncodeToString(png))
			flusher.Flush()
		case <-r.Context().Done():
			return
		}
	}
}

func (v *HTTPViewer) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
		"runId":  v.runID.String(),
	})
}

// encodePNG matches the teacher's imageToBase64PNG, minus the base64
// step: encode an RGB byte buffer into a PNG image. There is no
// third-party PNG encoder among the example repos' dependencies, so this
// stays on the standard library's image/png, same as the teacher.
func encodePNG(width, height int, rgb []byte) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := (y*width + x) * 3
			img.Set(x, y, color.RGBA{R: rgb[i], G: rgb[i+1], B: rgb[i+2], A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
