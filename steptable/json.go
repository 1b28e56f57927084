package steptable

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/sugawarayuuta/sonnet"
)

// MarshalJSON encodes the live entries as a JSON object.
func (t *Table[V]) MarshalJSON() ([]byte, error) {
	entries := make(map[string]V, len(t.slots))
	for _, s := range t.slots {
		if s.state == occupiedSlot {
			entries[s.key] = s.value
		}
	}
	return sonnet.Marshal(entries)
}

// UnmarshalJSON sets every pair of a JSON object, in key order. A zero Table is initialized
// with the default options first.
func (t *Table[V]) UnmarshalJSON(data []byte) error {
	var entries map[string]V
	if err := sonnet.Unmarshal(data, &entries); err != nil {
		return errors.Wrap(err, "decoding table snapshot failed")
	}

	t.ensureInitialized()

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := t.Set(k, entries[k]); err != nil {
			return err
		}
	}
	return nil
}
