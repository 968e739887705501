// Package viewer exposes freshly tonemapped frames to the outside world.
// Viewer is the sole contract the render pipeline depends on, grounded on
// original_source/UserInterface.h's DisplayImage callback; HTTPViewer is
// the shipped implementation, grounded on the teacher's
// web/server/server.go SSE/health-check pattern.
package viewer

// Viewer receives a freshly tonemapped RGB frame, row-major, width*height*3
// bytes, 8 bits per channel.
type Viewer interface {
	Display(width, height int, rgb []byte) error
}
