package edit

import (
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog/log"
)

// The editor registry is process-wide state: built-in variants register
// themselves at startup, host programs register custom variants before use.
// Registration is additive and idempotent to re-register.
var (
	registryMtx sync.RWMutex
	registry    = map[string]func() Editor{}
)

// Register registers an editor variant factory under the given type name.
// Re-registering a name replaces the previous factory.
func Register(name string, factory func() Editor) {
	if name == "" || factory == nil {
		log.Error().Str("name", name).Msg("ignoring invalid editor registration")
		return
	}

	registryMtx.Lock()
	defer registryMtx.Unlock()

	if _, present := registry[name]; present {
		log.Debug().Str("name", name).Msg("re-registering editor type")
	}
	registry[name] = factory
}

// New instantiates the editor variant registered under the given type name.
// An unregistered name is a configuration error.
func New(name string) (Editor, error) {
	registryMtx.RLock()
	factory, present := registry[name]
	registryMtx.RUnlock()

	if !present {
		return nil, fmt.Errorf("no editor type registered under name '%s' (have: %v)", name, RegisteredNames())
	}
	return factory(), nil
}

// RegisteredNames returns the sorted names of all registered editor variants.
func RegisteredNames() []string {
	registryMtx.RLock()
	defer registryMtx.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
