//go:build !debug

package render

// pathsPerTrace is the number of camera rays a single Trace task fires,
// the Go analogue of original_source/TraceUnit.h's #ifdef _DEBUG switch
// between a fast debug count and the full release count.
const pathsPerTrace = 1024 * 512
