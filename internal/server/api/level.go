package api

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Level is the stored, unenforced user level. Clients send it either as a
// JSON string or as a JSON number; numbers keep their literal text.
type Level string

func (l *Level) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = Level(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("level must be a string or a number: %w", err)
	}
	*l = Level(n.String())
	return nil
}
