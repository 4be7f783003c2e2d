package lang

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// MarshalJSON implements json.Marshaler for Document. The document
// marshals as an array of element objects in body order.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('[')

	for i, el := range d.elements {
		if i > 0 {
			buf.WriteByte(',')
		}

		data, err := el.MarshalJSON()
		if err != nil {
			return nil, err
		}

		buf.Write(data)
	}

	buf.WriteByte(']')

	return buf.Bytes(), nil
}

// MarshalJSON implements json.Marshaler for Element, writing attributes
// in insertion order.
func (e *Element) MarshalJSON() ([]byte, error) {
	return e.Value().MarshalJSON()
}

// MarshalJSON implements json.Marshaler for Value. The string variant
// marshals as a JSON string; the object variant marshals as a JSON
// object with keys in insertion order.
func (v *Value) MarshalJSON() ([]byte, error) {
	if v.Kind == KindString {
		return json.Marshal(v.Str)
	}

	var buf bytes.Buffer

	buf.WriteByte('{')

	first := true
	for name, value := range v.Obj.All() {
		if !first {
			buf.WriteByte(',')
		}

		first = false

		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')

		data, err := value.MarshalJSON()
		if err != nil {
			return nil, err
		}

		buf.Write(data)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// Stringify converts a document to its JSON string representation.
func Stringify(d *Document) (string, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// ToNative converts the document to a native Go slice of attribute maps,
// one per element in body order. Attribute insertion order is not
// represented; use [Document.All] and [Element.Attrs] when it matters.
func (d *Document) ToNative() []map[string]any {
	result := make([]map[string]any, 0, d.Len())

	for el := range d.All() {
		result = append(result, el.ToNative())
	}

	return result
}
