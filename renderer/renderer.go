// Package renderer rasterizes SVG documents into images through
// interchangeable backends. Backends register themselves under a name
// and are selected by that name, so callers never branch on backend
// identity.
package renderer

import (
	"errors"
	"image"
	"sort"
	"sync"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is
	// not registered.
	ErrBackendNotAvailable = errors.New("renderer: backend not available")

	// ErrNotInitialized is returned when Render is called before Init.
	ErrNotInitialized = errors.New("renderer: not initialized")
)

// Backend rasterizes SVG markup into images. A backend is initialized
// once for a fixed viewport, renders any number of documents and must
// be closed to release its resources.
type Backend interface {
	// Name returns the backend identifier (e.g. "chromium", "native").
	Name() string

	// Init prepares the backend for a viewport of the given pixel
	// size. Any heavyweight resource the backend needs is acquired
	// here, once, and reused by every Render call.
	Init(width, height int) error

	// Render rasterizes one SVG document.
	Render(svg []byte) (image.Image, error)

	// Close releases all backend resources. The backend must not be
	// used after Close.
	Close()
}

// Factory creates a new backend instance.
type Factory func() Backend

var (
	registryMu sync.RWMutex
	backends   = make(map[string]Factory)
	// Priority order for default selection.
	priority = []string{BackendChromium, BackendNative}
)

// Register registers a backend factory under the given name. This is
// typically called from init() functions in backend files. A factory
// registered under an existing name replaces the previous one.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends[name] = factory
}

// Available returns the registered backend names, sorted.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns a new backend instance by name. It returns nil if no
// backend is registered under that name.
func Get(name string) Backend {
	registryMu.RLock()
	defer registryMu.RUnlock()

	factory, ok := backends[name]
	if !ok {
		return nil
	}
	return factory()
}

// Default returns the highest priority registered backend, or nil
// when nothing is registered.
func Default() Backend {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range priority {
		if factory, ok := backends[name]; ok {
			if b := factory(); b != nil {
				return b
			}
		}
	}
	for _, factory := range backends {
		if b := factory(); b != nil {
			return b
		}
	}
	return nil
}
