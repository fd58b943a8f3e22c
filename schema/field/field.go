package field

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/google/uuid"
)

// A Schema is one node of a field schema tree. Leaf nodes carry a base type
// (bool, string, object, ...); modifier nodes wrap another schema in a
// nillable, optional, or array layer. Structural metadata (declared kind and
// name, primary-key and unique flags, references) rides along with the node
// it was set on, so tags survive wrapping: readers consult both the node
// itself and the fully-unwrapped leaf.
//
// Builder methods mutate and return the receiver, except the modifier
// methods Nillable, Optional, and Array, which return a new wrapping node.
type Schema struct {
	name       string
	typ        Type
	mod        Mod
	elem       *Schema
	values     []string
	fields     []*Schema
	validators []any
	meta       *meta
}

// meta is the metadata record attached to a schema node at declaration
// time. It is allocated lazily on the first tag.
type meta struct {
	kind        Kind
	name        string
	description string
	primaryKey  bool
	unique      bool
	ref         *Reference
}

// Reference marks a field as a pointer to another declared entity. Field
// names the identifying field on the target, "id" unless overridden.
type Reference struct {
	Target *Schema
	Field  string
}

// Bool returns a new boolean field with the given name.
func Bool(name string) *Schema {
	return &Schema{name: name, typ: TypeBool}
}

// Int returns a new integer field with the given name.
func Int(name string) *Schema {
	return &Schema{name: name, typ: TypeInt}
}

// Float returns a new float field with the given name.
func Float(name string) *Schema {
	return &Schema{name: name, typ: TypeFloat}
}

// String returns a new string field with the given name.
func String(name string) *Schema {
	return &Schema{name: name, typ: TypeString}
}

// Text returns a new string field with the given name. It is an alias of
// String kept for long free-text columns.
func Text(name string) *Schema {
	return String(name)
}

// Time returns a new timestamp field with the given name.
func Time(name string) *Schema {
	return &Schema{name: name, typ: TypeTime}
}

// UUID returns a new UUID field with the given name. The field carries a
// format validator and is treated as a string by the model generator.
func UUID(name string) *Schema {
	s := &Schema{name: name, typ: TypeUUID}
	return s.Validate(func(v string) error {
		if _, err := uuid.Parse(v); err != nil {
			return fmt.Errorf("field %q: invalid UUID: %w", name, err)
		}
		return nil
	})
}

// Enum returns a new closed string enumeration field with the given name.
// Its literal values are declared with Values.
func Enum(name string) *Schema {
	return &Schema{name: name, typ: TypeEnum}
}

// Any returns a new free-form JSON field with the given name. A plain Any
// field is not classifiable by the model generator; declare it as a named
// JSON value first (see the schema package).
func Any(name string) *Schema {
	return &Schema{name: name, typ: TypeJSON}
}

// Object returns a new object schema with the given fields, in declaration
// order. Object schemas back entity and embeddable value declarations.
func Object(fields ...*Schema) *Schema {
	return &Schema{typ: TypeObject, fields: fields}
}

// Embed returns a copy of s usable as a field with the given name. The copy
// carries its own metadata record, so a schema declared as a value type
// keeps its kind and type name when embedded, while tags set on the
// embedded field stay on that field alone.
func Embed(name string, s *Schema) *Schema {
	c := *s
	c.name = name
	if s.meta != nil {
		m := *s.meta
		c.meta = &m
	}
	return &c
}

// Nillable wraps the schema in a nillable layer: null is an acceptable
// value and the derived property is reported as nullable.
func (s *Schema) Nillable() *Schema {
	return &Schema{mod: ModNillable, elem: s}
}

// Optional wraps the schema in an optional layer: the field may be absent.
// The derived property is reported as nullable, same as Nillable.
func (s *Schema) Optional() *Schema {
	return &Schema{mod: ModOptional, elem: s}
}

// Array wraps the schema in an array layer. The derived property is
// reported with isArray set, and classification descends through the
// element type.
func (s *Schema) Array() *Schema {
	return &Schema{mod: ModArray, elem: s}
}

// Name returns the field name: the first non-empty name on the unwrap
// chain, so wrapped fields keep the name of their declaration.
func (s *Schema) Name() string {
	for n := s; n != nil; n = n.elem {
		if n.name != "" {
			return n.name
		}
	}
	return ""
}

// Type returns the base type of this node. Modifier nodes report
// TypeInvalid; use Elem to descend.
func (s *Schema) Type() Type {
	return s.typ
}

// Mod returns the modifier layer of this node, or ModNone for leaves.
func (s *Schema) Mod() Mod {
	return s.mod
}

// Elem returns the schema wrapped by a modifier node, or nil for leaves.
func (s *Schema) Elem() *Schema {
	return s.elem
}

// Fields returns the declared fields of an object schema, resolved through
// any modifier layers. Declaration order is preserved.
func (s *Schema) Fields() []*Schema {
	return s.leaf().fields
}

// Values declares the literal values of an enum field, in order. The values
// attach to the unwrapped schema, so they may be declared after wrapping.
func (s *Schema) Values(values ...string) *Schema {
	s.leaf().values = values
	return s
}

// Enums returns the declared enum values, or nil for non-enum fields.
func (s *Schema) Enums() []string {
	return s.leaf().values
}

// Declare tags the schema with a kind and display name. It is the low-level
// hook under the constructors in the schema package; tags set here are
// readable through any number of modifier layers.
func (s *Schema) Declare(k Kind, name string) *Schema {
	m := s.ensureMeta()
	m.kind = k
	m.name = name
	return s
}

// Comment sets a free-text description on the declared schema.
func (s *Schema) Comment(text string) *Schema {
	s.ensureMeta().description = text
	return s
}

// PrimaryKey marks the field as its entity's identifying field. Primary
// keys are classified before anything else, so uniqueness and nullability
// set alongside are not reported.
func (s *Schema) PrimaryKey() *Schema {
	s.ensureMeta().primaryKey = true
	return s
}

// Unique marks the field with a uniqueness constraint.
func (s *Schema) Unique() *Schema {
	s.ensureMeta().unique = true
	return s
}

// Ref marks the field as a reference to the given entity schema, pointing
// at its "id" field.
func (s *Schema) Ref(target *Schema) *Schema {
	return s.RefField(target, "id")
}

// RefField marks the field as a reference to the named field of the given
// entity schema.
func (s *Schema) RefField(target *Schema, name string) *Schema {
	s.ensureMeta().ref = &Reference{Target: target, Field: name}
	return s
}

// Kind returns the declared kind of the schema, consulting the node itself
// and the fully-unwrapped leaf. Undeclared schemas report KindNone.
func (s *Schema) Kind() Kind {
	if s.meta != nil && s.meta.kind != KindNone {
		return s.meta.kind
	}
	if l := s.leaf(); l.meta != nil {
		return l.meta.kind
	}
	return KindNone
}

// TypeName returns the declared display name of the schema, or the empty
// string when undeclared.
func (s *Schema) TypeName() string {
	if s.meta != nil && s.meta.name != "" {
		return s.meta.name
	}
	if l := s.leaf(); l.meta != nil {
		return l.meta.name
	}
	return ""
}

// Description returns the declared description, or the empty string.
func (s *Schema) Description() string {
	if s.meta != nil && s.meta.description != "" {
		return s.meta.description
	}
	if l := s.leaf(); l.meta != nil {
		return l.meta.description
	}
	return ""
}

// IsPrimaryKey reports whether the field carries the primary-key tag on the
// node itself or on the fully-unwrapped leaf.
func (s *Schema) IsPrimaryKey() bool {
	if s.meta != nil && s.meta.primaryKey {
		return true
	}
	l := s.leaf()
	return l.meta != nil && l.meta.primaryKey
}

// IsUnique reports whether the field carries the unique tag on the node
// itself or on the fully-unwrapped leaf.
func (s *Schema) IsUnique() bool {
	if s.meta != nil && s.meta.unique {
		return true
	}
	l := s.leaf()
	return l.meta != nil && l.meta.unique
}

// Reference returns the reference tag of the field, consulting the node
// itself and the fully-unwrapped leaf, or nil when the field is not a
// reference.
func (s *Schema) Reference() *Reference {
	if s.meta != nil && s.meta.ref != nil {
		return s.meta.ref
	}
	if l := s.leaf(); l.meta != nil {
		return l.meta.ref
	}
	return nil
}

// Validate appends a validator function to the unwrapped field. Validators
// are carried, not executed: running them against data instances is the
// caller's concern.
func (s *Schema) Validate(fn any) *Schema {
	l := s.leaf()
	l.validators = append(l.validators, fn)
	return s
}

// Validators returns the validator functions declared on the field.
func (s *Schema) Validators() []any {
	return s.leaf().validators
}

// NotEmpty adds a validator rejecting empty strings.
func (s *Schema) NotEmpty() *Schema {
	name := s.Name()
	return s.Validate(func(v string) error {
		if v == "" {
			return fmt.Errorf("field %q: value is empty", name)
		}
		return nil
	})
}

// MinLen adds a validator enforcing a minimum string length.
func (s *Schema) MinLen(i int) *Schema {
	name := s.Name()
	return s.Validate(func(v string) error {
		if len(v) < i {
			return fmt.Errorf("field %q: length is less than minimum %d", name, i)
		}
		return nil
	})
}

// MaxLen adds a validator enforcing a maximum string length.
func (s *Schema) MaxLen(i int) *Schema {
	name := s.Name()
	return s.Validate(func(v string) error {
		if len(v) > i {
			return fmt.Errorf("field %q: length exceeds maximum %d", name, i)
		}
		return nil
	})
}

// Match adds a validator enforcing a regular expression on string values.
func (s *Schema) Match(re *regexp.Regexp) *Schema {
	name := s.Name()
	return s.Validate(func(v string) error {
		if !re.MatchString(v) {
			return fmt.Errorf("field %q: value does not match %q", name, re)
		}
		return nil
	})
}

// Min adds a validator enforcing a minimum numeric value.
func (s *Schema) Min(i float64) *Schema {
	name := s.Name()
	return s.Validate(func(v float64) error {
		if v < i {
			return fmt.Errorf("field %q: value is less than minimum %v", name, i)
		}
		return nil
	})
}

// Max adds a validator enforcing a maximum numeric value.
func (s *Schema) Max(i float64) *Schema {
	name := s.Name()
	return s.Validate(func(v float64) error {
		if v > i {
			return fmt.Errorf("field %q: value exceeds maximum %v", name, i)
		}
		return nil
	})
}

// Positive adds a validator rejecting non-positive numeric values.
func (s *Schema) Positive() *Schema {
	name := s.Name()
	return s.Validate(func(v float64) error {
		if v <= 0 {
			return errors.New("field " + name + ": value must be positive")
		}
		return nil
	})
}

// leaf resolves the schema through every modifier layer, descending through
// array element types, and returns the underlying node.
func (s *Schema) leaf() *Schema {
	n := s
	for n.mod != ModNone {
		n = n.elem
	}
	return n
}

func (s *Schema) ensureMeta() *meta {
	if s.meta == nil {
		s.meta = &meta{}
	}
	return s.meta
}
