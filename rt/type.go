package rt

import "netuno/strintern"

// Kind identifies the concrete shape a Type describes, mirroring
// NT_OBJECT_TYPE's role of tagging every heap object's runtime type.
type Kind int

const (
	KindType Kind = iota
	KindObject
	KindString
	KindInteger
	KindFloat
	KindDelegate
	KindDelegateType
	KindModule
	KindAssembly
	KindCustom
)

// Field describes one member of a type's field symbol table: its type
// and its byte offset within an instance (original_source
// ntr/include/netuno/custom_type.h's NT_FIELD).
type Field struct {
	FieldType *Type
	Offset    uint64
}

// Type is the runtime descriptor for every heap object kind. It is
// itself an Object whose own Type is the singleton returned by
// TypeType(). Grounded on the static NT_TYPE in object.c's ntType() and
// on custom_type.h's NT_CUSTOM_TYPE (free/string/equals + fields).
type Type struct {
	Object

	Kind         Kind
	TypeName     *strintern.String
	BaseType     *Type
	StackSize    int
	InstanceSize int
	Fields       map[string]Field

	// Free releases resources held by o beyond the header itself. Nil
	// for types that need no cleanup beyond GC.
	Free func(o *Object)
	// String renders o as an interned display string.
	String func(o *Object) *strintern.String
	// Equals reports whether a and b (both of this type) compare equal.
	Equals func(a, b *Object) bool
}

// IsAssignableFrom walks from's base-type chain looking for t, mirroring
// ntTypeIsAssignableFrom's cycle-safe walk (original_source
// ntr/source/object.c).
func (t *Type) IsAssignableFrom(from *Type) bool {
	previous := (*Type)(nil)
	for from != nil && from != previous {
		if t == from {
			return true
		}
		previous = from
		from = from.BaseType
	}
	return false
}

var (
	objectType *Type
	typeType   *Type
)

// ObjectType returns the root type every other type ultimately derives
// from (ntObjectType's singleton).
func ObjectType() *Type {
	if objectType == nil {
		objectType = &Type{
			Kind:         KindObject,
			StackSize:    8,
			InstanceSize: 16,
			Fields:       make(map[string]Field),
			Free:         func(*Object) {},
			Equals:       func(a, b *Object) bool { return a == b },
		}
		objectType.Object.Type = objectType
	}
	return objectType
}

// TypeType returns the singleton "Type" metatype: the type of every
// Type value, including itself (ntType's singleton, with the same
// self-referential bootstrap).
func TypeType() *Type {
	if typeType == nil {
		typeType = &Type{
			Kind:         KindType,
			BaseType:     ObjectType(),
			StackSize:    8,
			InstanceSize: 64,
			Fields:       make(map[string]Field),
			Equals:       func(a, b *Object) bool { return a == b },
		}
		typeType.Object.Type = typeType
	}
	return typeType
}

// NewType constructs a fully-formed Type instance whose own Type is the
// TypeType singleton.
func NewType(kind Kind, name *strintern.String, base *Type, stackSize, instanceSize int) *Type {
	t := &Type{
		Kind:         kind,
		TypeName:     name,
		BaseType:     base,
		StackSize:    stackSize,
		InstanceSize: instanceSize,
		Fields:       make(map[string]Field),
	}
	t.Object.Type = TypeType()
	return t
}
