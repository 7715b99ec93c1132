package cow

import "github.com/sugawarayuuta/sonnet"

var (
	jsonMarshal   func(v any) ([]byte, error)   = sonnet.Marshal
	jsonUnmarshal func(data []byte, v any) error = sonnet.Unmarshal
)

// SetDefaultJSONMarshal sets the default JSON serialization and deserialization functions.
// If not set, github.com/sugawarayuuta/sonnet is used. Passing nil restores it.
func SetDefaultJSONMarshal(marshal func(v any) ([]byte, error), unmarshal func(data []byte, v any) error) {
	if marshal == nil {
		marshal = sonnet.Marshal
	}
	if unmarshal == nil {
		unmarshal = sonnet.Unmarshal
	}
	jsonMarshal, jsonUnmarshal = marshal, unmarshal
}

// MarshalJSON JSON serialization of the shared value, without copying it
func (c *Cow[T]) MarshalJSON() ([]byte, error) {
	return jsonMarshal(c.Read())
}

// UnmarshalJSON JSON deserialization
//
// The document is decoded into a fresh value first, so a decoding error
// leaves the resource untouched. A shared resource is detached before the
// decoded value is stored; an empty handle gets a new resource with the
// default capabilities.
func (c *Cow[T]) UnmarshalJSON(data []byte) error {
	var v T
	if err := jsonUnmarshal(data, &v); err != nil {
		return err
	}
	if c.cb == nil {
		n, err := Make(v)
		if err != nil {
			return err
		}
		c.MoveAssign(n)
		return nil
	}
	return c.Update(func(p *T) {
		*p = v
	})
}
