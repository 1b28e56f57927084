package perfecttable

import (
	"github.com/pkg/errors"
	"github.com/sugawarayuuta/sonnet"
)

// MarshalJSON encodes the stored statistics as a JSON object.
func (t *Table[V]) MarshalJSON() ([]byte, error) {
	entries := make(map[string]V, t.count)
	for _, e := range t.slots {
		if e.occupied {
			entries[e.key] = e.value
		}
	}
	return sonnet.Marshal(entries)
}

// UnmarshalJSON sets every pair of a JSON object. Keys outside the domain fail with
// ErrInvalidKey and leave the table unchanged.
func (t *Table[V]) UnmarshalJSON(data []byte) error {
	var entries map[string]V
	if err := sonnet.Unmarshal(data, &entries); err != nil {
		return errors.Wrap(err, "decoding statistics snapshot failed")
	}

	for k := range entries {
		if _, err := locate(k); err != nil {
			return err
		}
	}
	for k, v := range entries {
		if err := t.Set(k, v); err != nil {
			return err
		}
	}
	return nil
}
