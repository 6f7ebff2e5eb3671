package gltf

import (
	"sort"
	"sync"
)

// ExtensionSpec declares an extension this codec knows how to carry. The
// codec round-trips payloads of unregistered extensions as raw fields but
// logs an advisory warning, since it cannot validate them.
type ExtensionSpec struct {
	Name string

	// Dependencies names external resources (decoder instances and the
	// like) the extension needs at codec time, supplied through
	// RegisterDependencies.
	Dependencies []string
}

var (
	registryMu   sync.RWMutex
	registry     = map[string]ExtensionSpec{}
	dependencies = map[string]any{}
)

// RegisterExtensions declares extensions as known. Safe for concurrent use.
func RegisterExtensions(specs ...ExtensionSpec) {
	registryMu.Lock()
	defer registryMu.Unlock()
	for _, spec := range specs {
		registry[spec.Name] = spec
	}
}

// Registered reports whether an extension name has been declared.
func Registered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, found := registry[name]
	return found
}

// KnownExtensions returns the declared extension names, sorted.
func KnownExtensions() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RegisterDependencies supplies named resources to registered extensions.
func RegisterDependencies(deps map[string]any) {
	registryMu.Lock()
	defer registryMu.Unlock()
	for name, dep := range deps {
		dependencies[name] = dep
	}
}

// Dependency looks up a resource supplied via RegisterDependencies.
func Dependency(name string) (any, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	dep, found := dependencies[name]
	return dep, found
}
