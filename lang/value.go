package lang

import "iter"

// Kind indicates the kind of value.
type Kind int

const (
	// KindString represents a plain string value.
	KindString Kind = iota

	// KindObject represents an ordered mapping of names to values.
	KindObject
)

// String returns a string representation of the value kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "String"
	case KindObject:
		return "Object"
	default:
		return "Unknown"
	}
}

// Value is a tagged variant: either a plain string or an ordered object.
// Exactly one of Str or Obj is meaningful, selected by Kind.
type Value struct {
	Kind Kind
	Str  string
	Obj  *Object
}

// NewString creates a new string value.
func NewString(s string) *Value {
	return &Value{
		Kind: KindString,
		Str:  s,
	}
}

// NewObject creates a new object value.
func NewObject(obj *Object) *Value {
	return &Value{
		Kind: KindObject,
		Obj:  obj,
	}
}

// AsString returns the string held by the value.
// Returns ("", false) if the value is not the string variant.
func (v *Value) AsString() (string, bool) {
	if v == nil || v.Kind != KindString {
		return "", false
	}

	return v.Str, true
}

// AsObject returns the object held by the value.
// Returns (nil, false) if the value is not the object variant.
func (v *Value) AsObject() (*Object, bool) {
	if v == nil || v.Kind != KindObject {
		return nil, false
	}

	return v.Obj, true
}

// ToNative converts the value to its native Go type: string for the
// string variant, map preserving nothing of the ordering for the object
// variant (use [Object.All] when order matters).
func (v *Value) ToNative() any {
	if v == nil {
		return nil
	}

	switch v.Kind {
	case KindString:
		return v.Str

	case KindObject:
		return v.Obj.ToNative()

	default:
		return nil
	}
}

// Object is an insertion-ordered mapping from name to [Value].
// The zero value is an empty object ready for use.
type Object struct {
	names  []string
	values map[string]*Value
}

// Set binds name to value. A repeated name keeps its original position
// but takes the new value (last write wins).
func (o *Object) Set(name string, value *Value) {
	if o.values == nil {
		o.values = make(map[string]*Value)
	}

	if _, exists := o.values[name]; !exists {
		o.names = append(o.names, name)
	}

	o.values[name] = value
}

// Get returns the value bound to name.
// Returns (nil, false) if name is not present.
func (o *Object) Get(name string) (*Value, bool) {
	if o == nil {
		return nil, false
	}

	v, ok := o.values[name]

	return v, ok
}

// Len returns the number of entries in the object.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}

	return len(o.names)
}

// Names returns the entry names in insertion order.
func (o *Object) Names() []string {
	if o == nil {
		return nil
	}

	names := make([]string, len(o.names))
	copy(names, o.names)

	return names
}

// All returns an iterator over entries in insertion order.
func (o *Object) All() iter.Seq2[string, *Value] {
	return func(yield func(string, *Value) bool) {
		if o == nil {
			return
		}

		for _, name := range o.names {
			if !yield(name, o.values[name]) {
				return
			}
		}
	}
}

// ToNative converts the object to a native Go map. Insertion order is
// not represented; use [Object.All] to iterate in order.
func (o *Object) ToNative() map[string]any {
	result := make(map[string]any, o.Len())

	for name, value := range o.All() {
		result[name] = value.ToNative()
	}

	return result
}
