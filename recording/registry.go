package recording

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// BackendFactory creates a fresh backend for one playback.
type BackendFactory func() Backend

// DefaultBackend is the backend ForPath picks when no registered backend
// claims a file extension.
const DefaultBackend = "raster"

type registry struct {
	mu         sync.RWMutex
	factories  map[string]BackendFactory
	extensions map[string]string // lower-case ".ext" -> backend name
}

var backends = newRegistry()

func newRegistry() *registry {
	return &registry{
		factories:  make(map[string]BackendFactory),
		extensions: make(map[string]string),
	}
}

// Register makes a backend available to NewBackend under name, and to
// ForPath for files with one of extensions (".svg", ".png", ...). It is
// meant to be called from a backend package's init:
//
//	func init() {
//		recording.Register("svg", func() recording.Backend {
//			return NewBackend()
//		}, ".svg")
//	}
//
// Register panics if factory is nil, or if name or one of extensions is
// already registered.
func Register(name string, factory BackendFactory, extensions ...string) {
	if factory == nil {
		panic("recording: Register factory is nil")
	}

	backends.mu.Lock()
	defer backends.mu.Unlock()

	if _, dup := backends.factories[name]; dup {
		panic("recording: Register called twice for " + name)
	}
	for _, ext := range extensions {
		if owner, dup := backends.extensions[strings.ToLower(ext)]; dup {
			panic(fmt.Sprintf("recording: extension %s already registered by %s", ext, owner))
		}
	}
	for _, ext := range extensions {
		backends.extensions[strings.ToLower(ext)] = name
	}
	backends.factories[name] = factory
}

// NewBackend creates a backend registered under name. Backend packages
// register themselves when imported:
//
//	import _ "github.com/gogpu/shapes/recording/backends/svg"
func NewBackend(name string) (Backend, error) {
	backends.mu.RLock()
	factory, ok := backends.factories[name]
	backends.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q (forgotten import?)", ErrUnknownBackend, name)
	}
	return factory(), nil
}

// Backends returns the registered backend names in sorted order.
func Backends() []string {
	backends.mu.RLock()
	defer backends.mu.RUnlock()

	names := make([]string, 0, len(backends.factories))
	for name := range backends.factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsRegistered reports whether a backend is registered under name.
func IsRegistered(name string) bool {
	backends.mu.RLock()
	defer backends.mu.RUnlock()
	_, ok := backends.factories[name]
	return ok
}

// ForPath returns the name of the backend registered for the extension of
// path, compared case-insensitively, or DefaultBackend.
func ForPath(path string) string {
	ext := strings.ToLower(filepath.Ext(path))

	backends.mu.RLock()
	defer backends.mu.RUnlock()
	if name, ok := backends.extensions[ext]; ok {
		return name
	}
	return DefaultBackend
}
