//go:build debug

package render

// pathsPerTrace is reduced under the debug build tag (`go build -tags
// debug`), since a full release-sized trace batch is too slow for a
// debugger to step through comfortably.
const pathsPerTrace = 1024 * 64
