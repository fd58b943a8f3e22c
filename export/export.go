// Package export assembles a generated model into a single encodable value.
//
// The generator in compiler/gen emits plain in-memory records. This package
// is the optional bridge to the wire formats downstream tooling consumes,
// with JSON as the primary one and YAML and MessagePack alongside.
package export

import (
	"encoding/json"
	"io"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/syssam/entmap"
	"github.com/syssam/entmap/compiler/gen"
	"github.com/syssam/entmap/schema/field"
)

// Model pairs the entity definitions of a generated model with its derived
// relation graph.
type Model struct {
	Entities  []*entmap.Definition `json:"entities" yaml:"entities" msgpack:"entities"`
	Relations []*entmap.Relation   `json:"relations" yaml:"relations" msgpack:"relations"`
}

// New returns a model from already-generated definitions and relations.
func New(defs []*entmap.Definition, rels []*entmap.Relation) *Model {
	return &Model{Entities: defs, Relations: rels}
}

// FromSchemas generates definitions and relations from the given schemas
// and assembles them into a model.
func FromSchemas(schemas ...*field.Schema) (*Model, error) {
	defs, err := gen.Definitions(schemas...)
	if err != nil {
		return nil, err
	}
	return New(defs, gen.Relations(defs)), nil
}

// JSON encodes the model as indented JSON.
func (m *Model) JSON() ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}

// YAML encodes the model as YAML.
func (m *Model) YAML() ([]byte, error) {
	return yaml.Marshal(m)
}

// MessagePack encodes the model as MessagePack.
func (m *Model) MessagePack() ([]byte, error) {
	return msgpack.Marshal(m)
}

// WriteJSON writes the JSON encoding of the model to w.
func (m *Model) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}
