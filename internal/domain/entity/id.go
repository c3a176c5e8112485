package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID is an opaque identifier assigned by the backend on creation.
// Some backends emit numeric ids; both forms decode into the same string.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("entity: invalid id %s: %w", string(b), err)
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string { return string(id) }
