package users

import (
	"encoding/json"
	"fmt"
	"io"
)

// decodeCreateUserRequest reads a create body leniently: any JSON scalar is
// accepted for a field and converted to its string form. Falsy values
// (null, false, 0, "") become "", which validation then treats as missing.
func decodeCreateUserRequest(r io.Reader) (CreateUserRequest, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw map[string]interface{}
	if err := dec.Decode(&raw); err != nil {
		return CreateUserRequest{}, fmt.Errorf("invalid create user body: %w", err)
	}

	return CreateUserRequest{
		Username: fieldString(raw["username"]),
		Info:     fieldString(raw["info"]),
		Email:    fieldString(raw["email"]),
		Contact:  fieldString(raw["contact"]),
	}, nil
}

func fieldString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		if !val {
			return ""
		}
		return "true"
	case json.Number:
		if f, err := val.Float64(); err == nil && f == 0 {
			return ""
		}
		return val.String()
	default:
		// objects and arrays are truthy; keep their JSON text
		b, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
