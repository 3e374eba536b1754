package rt

import (
	"unsafe"

	"netuno/strintern"
)

// String is the runtime string object: an Object header wrapping an
// interned strintern.String. Grounded on original_source
// ntr/source/string.c's NT_STRING (chars/length/hash folded into the
// already-interned *strintern.String, since strintern already owns
// dedup/hash/refcount bookkeeping).
//
// Object must remain String's first field: Type.Equals/Free/String
// dispatch receives a *Object and recovers the enclosing *String via
// unsafe.Pointer, mirroring the C original's "(NT_STRING *)object"
// reinterpret cast in stringEquals/stringToString/freeString.
type String struct {
	Object
	Value *strintern.String
}

func asString(o *Object) *String { return (*String)(unsafe.Pointer(o)) }

// AsString recovers the *String enclosing a *Object known to carry
// StringType, the exported counterpart of asString for callers outside
// this package (e.g. the VM's concat opcode).
func AsString(o *Object) *String { return asString(o) }

var (
	stringType  *Type
	integerType *Type
	floatType   *Type
	booleanType *Type
)

// StringType returns the singleton runtime type describing string
// objects (ntStringType's singleton, lazily naming itself "string").
func StringType(strings *strintern.Table) *Type {
	if stringType == nil {
		stringType = NewType(KindString, strings.Constant("string"), ObjectType(), 8, 32)
		stringType.Equals = func(a, b *Object) bool {
			return strintern.Equals(asString(a).Value, asString(b).Value)
		}
	}
	return stringType
}

// NewString copies chars into the process intern table and wraps it as
// a runtime String object (ntCopyString's allocString path).
func NewString(strings *strintern.Table, chars string) *String {
	s := &String{Value: strings.Copy(chars)}
	s.Object.Type = StringType(strings)
	return s
}

// IntegerType returns the singleton runtime type tagging boxed integer
// values (used by the VM when an integer must travel as a heap object,
// e.g. inside a delegate's captured closure or as a table value).
func IntegerType(strings *strintern.Table) *Type {
	if integerType == nil {
		integerType = NewType(KindInteger, strings.Constant("integer"), ObjectType(), 8, 16)
		integerType.Equals = func(a, b *Object) bool { return a == b }
	}
	return integerType
}

// FloatType returns the singleton runtime type tagging boxed float
// values.
func FloatType(strings *strintern.Table) *Type {
	if floatType == nil {
		floatType = NewType(KindFloat, strings.Constant("float"), ObjectType(), 8, 16)
		floatType.Equals = func(a, b *Object) bool { return a == b }
	}
	return floatType
}

// BooleanType returns the singleton runtime type tagging boxed boolean
// values.
func BooleanType(strings *strintern.Table) *Type {
	if booleanType == nil {
		booleanType = NewType(KindInteger, strings.Constant("boolean"), ObjectType(), 8, 16)
		booleanType.Equals = func(a, b *Object) bool { return a == b }
	}
	return booleanType
}
