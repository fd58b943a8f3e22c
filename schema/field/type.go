package field

// A Type represents the base kind of a field schema.
type Type int

// List of field base kinds.
const (
	TypeInvalid Type = iota
	TypeBool
	TypeInt
	TypeFloat
	TypeString
	TypeEnum
	TypeTime
	TypeUUID
	TypeJSON
	TypeObject
	endTypes
)

var typeNames = [...]string{
	TypeInvalid: "invalid",
	TypeBool:    "bool",
	TypeInt:     "int",
	TypeFloat:   "float64",
	TypeString:  "string",
	TypeEnum:    "enum",
	TypeTime:    "time.Time",
	TypeUUID:    "uuid",
	TypeJSON:    "json",
	TypeObject:  "object",
}

// String returns the string representation of the type.
func (t Type) String() string {
	if t < 0 || t >= endTypes {
		return typeNames[TypeInvalid]
	}
	return typeNames[t]
}

// Valid reports whether t is a known, non-invalid type.
func (t Type) Valid() bool {
	return t > TypeInvalid && t < endTypes
}

// Numeric reports whether t is a numeric type.
func (t Type) Numeric() bool {
	return t == TypeInt || t == TypeFloat
}

// ConstName returns the constant name of the type, used by tooling that
// prints schema descriptions.
func (t Type) ConstName() string {
	switch t {
	case TypeBool:
		return "TypeBool"
	case TypeInt:
		return "TypeInt"
	case TypeFloat:
		return "TypeFloat"
	case TypeString:
		return "TypeString"
	case TypeEnum:
		return "TypeEnum"
	case TypeTime:
		return "TypeTime"
	case TypeUUID:
		return "TypeUUID"
	case TypeJSON:
		return "TypeJSON"
	case TypeObject:
		return "TypeObject"
	default:
		return typeNames[TypeInvalid]
	}
}

// A Mod is a modifier layer wrapped around a schema: nillable, optional, or
// array. Modifiers compose in any order and to any depth.
type Mod int

// List of modifier layers. ModNone marks an unwrapped schema node.
const (
	ModNone Mod = iota
	ModNillable
	ModOptional
	ModArray
)

var modNames = [...]string{
	ModNone:     "none",
	ModNillable: "nillable",
	ModOptional: "optional",
	ModArray:    "array",
}

// String returns the string representation of the modifier.
func (m Mod) String() string {
	if m < 0 || int(m) >= len(modNames) {
		return modNames[ModNone]
	}
	return modNames[m]
}

// A Kind classifies a declared schema for the model generator: an entity, a
// reusable embeddable value type, or a named free-form JSON value. Plain
// field schemas carry KindNone.
type Kind int

// List of declared schema kinds.
const (
	KindNone Kind = iota
	KindEntity
	KindValue
	KindJSON
)

var kindNames = [...]string{
	KindNone:   "none",
	KindEntity: "entity",
	KindValue:  "value",
	KindJSON:   "json",
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[KindNone]
	}
	return kindNames[k]
}
