package drafts

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Codec converts values to and from the bytes kept in a Store.
type Codec[T any] interface {
	Marshal(v T) ([]byte, error)
	Unmarshal(data []byte) (T, error)
}

// JSONCodec encodes *V with encoding/json, honouring json.Marshaler and
// json.Unmarshaler.
type JSONCodec[V any] struct{}

func (JSONCodec[V]) Marshal(v *V) ([]byte, error) { return json.Marshal(v) }

func (JSONCodec[V]) Unmarshal(data []byte) (*V, error) {
	v := new(V)
	if err := json.Unmarshal(data, v); err != nil {
		return nil, err
	}
	return v, nil
}

// YAMLCodec encodes *V with gopkg.in/yaml.v3.
type YAMLCodec[V any] struct{}

func (YAMLCodec[V]) Marshal(v *V) ([]byte, error) { return yaml.Marshal(v) }

func (YAMLCodec[V]) Unmarshal(data []byte) (*V, error) {
	v := new(V)
	if err := yaml.Unmarshal(data, v); err != nil {
		return nil, err
	}
	return v, nil
}
