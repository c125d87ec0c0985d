package agent

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// TypedConfig implements functionality for typing a Config. In this
// way, a Config can explicitly have its type stored so that when
// deserializing the Config, we can deserialize it into its concrete
// type without knowing beforehand or declaring beforehand a variable of
// its concrete type.
type TypedConfig struct {
	Type
	Config
}

// NewTypedConfig types the argument Config and returns it as a
// TypedConfig which explicitly holds its Type.
func NewTypedConfig(c Config) TypedConfig {
	return TypedConfig{Type: c.Type(), Config: c}
}

// UnmarshalJSON implements the json.Unmarshaller interface
func (t *TypedConfig) UnmarshalJSON(data []byte) error {
	config, typeName, err := unmarshalConfig(data, "Type", "Config")
	if err != nil {
		return err
	}

	t.Type = typeName
	t.Config = config

	return nil
}

// unmarshalConfig uses reflection to unmarshal a Config into its
// concrete type. Both the Config and its Type are returned.
func unmarshalConfig(data []byte, typeJSONField,
	valueJSONField string) (Config, Type, error) {
	m := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, "", fmt.Errorf("unmarshalConfig: %w", err)
	}

	var typeName Type
	if err := json.Unmarshal(m[typeJSONField], &typeName); err != nil {
		return nil, "", fmt.Errorf("unmarshalConfig: could not decode "+
			"type: %w", err)
	}

	ty, found := lookup(typeName)
	if !found {
		return nil, "", fmt.Errorf("unmarshalConfig: no such agent type "+
			"%q registered", typeName)
	}

	value := reflect.New(ty)
	if raw, ok := m[valueJSONField]; ok {
		if err := json.Unmarshal(raw, value.Interface()); err != nil {
			return nil, "", fmt.Errorf("unmarshalConfig: could not "+
				"decode %v config: %w", typeName, err)
		}
	}
	concreteValue := value.Elem().Interface().(Config)

	return concreteValue, typeName, nil
}
