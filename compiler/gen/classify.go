package gen

import (
	"github.com/syssam/entmap"
	"github.com/syssam/entmap/schema/field"
)

// unwrapped is the result of resolving a field schema through its modifier
// layers: the underlying node, and whether any nillable/optional or array
// layer was traversed on the way down.
type unwrapped struct {
	leaf     *field.Schema
	nillable bool
	array    bool
}

// unwrap fully resolves a field schema. Modifier layers may nest in any
// order; array layers are descended into their element type.
func unwrap(s *field.Schema) unwrapped {
	u := unwrapped{leaf: s}
	for {
		switch u.leaf.Mod() {
		case field.ModNillable, field.ModOptional:
			u.nillable = true
			u.leaf = u.leaf.Elem()
		case field.ModArray:
			u.array = true
			u.leaf = u.leaf.Elem()
		default:
			return u
		}
	}
}

// classify maps one field schema to exactly one property. The checks run in
// priority order, first match wins: a primary key that also carries a
// reference tag is reported as a primary key.
func classify(entity string, fs *field.Schema) (*entmap.Property, error) {
	name := fs.Name()
	// Primary keys short-circuit everything else and carry no
	// uniqueness or nullability metadata.
	if fs.IsPrimaryKey() {
		return &entmap.Property{Name: name, Type: entmap.PropertyPrimaryKey}, nil
	}
	if ref := fs.Reference(); ref != nil {
		if ref.Target == nil || ref.Target.Kind() != field.KindEntity {
			return nil, entmap.NewFieldError(entity, name, entmap.ErrInvalidReference)
		}
		target := ref.Target.TypeName()
		if target == "" {
			return nil, &entmap.FieldError{
				Entity: entity,
				Field:  name,
				Err:    entmap.ErrMissingName,
				Reason: "referenced entity must have a name",
			}
		}
		return &entmap.Property{
			Name:     name,
			Type:     entmap.PropertyReference,
			Target:   target,
			Unique:   fs.IsUnique(),
			Nillable: unwrap(fs).nillable,
		}, nil
	}
	u := unwrap(fs)
	switch fs.Kind() {
	case field.KindEntity:
		return nil, entmap.NewFieldError(entity, name, entmap.ErrIllegalEmbedding)
	case field.KindValue, field.KindJSON:
		structType := fs.TypeName()
		if structType == "" {
			return nil, &entmap.FieldError{
				Entity: entity,
				Field:  name,
				Err:    entmap.ErrMissingName,
				Reason: "embedded value must have a name",
			}
		}
		return &entmap.Property{
			Name:       name,
			Type:       entmap.PropertyEmbedded,
			StructType: structType,
			Unique:     fs.IsUnique(),
			Nillable:   u.nillable,
			Array:      u.array,
		}, nil
	}
	p := &entmap.Property{
		Name:     name,
		Unique:   fs.IsUnique(),
		Nillable: u.nillable,
		Array:    u.array,
	}
	switch t := u.leaf.Type(); {
	case t == field.TypeBool:
		p.Type = entmap.PropertyBool
	case t.Numeric():
		p.Type = entmap.PropertyNumber
	case t == field.TypeString || t == field.TypeUUID:
		p.Type = entmap.PropertyString
	case t == field.TypeEnum:
		p.Type = entmap.PropertyString
		p.Values = u.leaf.Enums()
	case t == field.TypeTime:
		p.Type = entmap.PropertyDate
	default:
		return nil, &entmap.FieldError{
			Entity: entity,
			Field:  name,
			Err:    entmap.ErrUnsupportedType,
			Reason: t.String(),
		}
	}
	return p, nil
}
