package agent

import (
	"reflect"
	"sync"
)

// Type represents a specific type of an agent Config.
// Config's with this type can create Agents of the corresponding type.
type Type string

const (
	EGreedyQLearningLinear Type = "EGreedyQLearning-Linear"
	EGreedyESarsaLinear    Type = "EGreedyESarsa-Linear"
)

// Registered types with the package. Once a Type has been registered
// with this map, a TypedConfig with that type can be deserialized.
//
// No Type's are registered wtih this package upon initialization.
// Each separate package is in charge of registering its Type with
// the package separately to avoid circular imports.
var (
	registeredTypes   = make(map[Type]reflect.Type)
	registeredTypesMu sync.RWMutex
)

// Register registers an agent's Type with a concrete Config type so
// that upon deserialization of a TypedConfig, Configs of type agentType
// are deserialized into the concrete type of config.
func Register(agentType Type, config Config) {
	registeredTypesMu.Lock()
	defer registeredTypesMu.Unlock()

	registeredTypes[agentType] = reflect.TypeOf(config)
}

func lookup(agentType Type) (reflect.Type, bool) {
	registeredTypesMu.RLock()
	defer registeredTypesMu.RUnlock()

	ty, ok := registeredTypes[agentType]
	return ty, ok
}
