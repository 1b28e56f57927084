package perfecttable

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/theflywheel/hashy"
)

// Capacity is the number of slots of every Table.
const Capacity = 13

var _ hashy.Table[int] = &Table[int]{}

type entry[V any] struct {
	occupied bool
	key      string
	value    V
}

// Table stores one value per player statistic. Every statistic hashes to its own slot, so
// there is no probing and no growth. Keys outside the domain are rejected with ErrInvalidKey.
//
// The zero value is an empty table ready to use.
type Table[V any] struct {
	slots [Capacity]entry[V]
	count int
}

// New returns an empty table.
func New[V any]() *Table[V] {
	return &Table[V]{}
}

func locate(key string) (int, error) {
	if key == "" {
		return 0, errors.Wrap(hashy.ErrInvalidKey, "key cannot be empty")
	}

	i := slotHash(key)
	if slotOwners[i] != key {
		return 0, errors.Wrapf(hashy.ErrInvalidKey, "%q is not a player statistic", key)
	}
	return i, nil
}

// Get returns the value stored under key.
func (t *Table[V]) Get(key string) (V, error) {
	var zero V
	i, err := locate(key)
	if err != nil {
		return zero, err
	}
	if !t.slots[i].occupied {
		return zero, errors.Wrapf(hashy.ErrNotFound, "key %q", key)
	}
	return t.slots[i].value, nil
}

// Set stores value under key.
func (t *Table[V]) Set(key string, value V) error {
	i, err := locate(key)
	if err != nil {
		return err
	}
	if !t.slots[i].occupied {
		t.count++
	}
	t.slots[i] = entry[V]{
		occupied: true,
		key:      key,
		value:    value,
	}
	return nil
}

// Delete clears the slot of key.
func (t *Table[V]) Delete(key string) error {
	i, err := locate(key)
	if err != nil {
		return err
	}
	if !t.slots[i].occupied {
		return errors.Wrapf(hashy.ErrNotFound, "key %q", key)
	}
	t.slots[i] = entry[V]{}
	t.count--
	return nil
}

// Contains reports whether key is stored.
func (t *Table[V]) Contains(key string) bool {
	_, err := t.Get(key)
	return err == nil
}

// GetStat returns the value of a statistic.
func (t *Table[V]) GetStat(s Stat) (V, error) {
	return t.Get(s.String())
}

// SetStat stores the value of a statistic.
func (t *Table[V]) SetStat(s Stat, value V) error {
	return t.Set(s.String(), value)
}

// Reset stores zero under every statistic of the domain.
func (t *Table[V]) Reset(zero V) {
	for s := Stat(0); s < numStats; s++ {
		i := slotHash(statNames[s])
		if !t.slots[i].occupied {
			t.count++
		}
		t.slots[i] = entry[V]{
			occupied: true,
			key:      statNames[s],
			value:    zero,
		}
	}
}

// Keys returns the stored keys in slot order.
func (t *Table[V]) Keys() []string {
	keys := make([]string, 0, t.count)
	for _, e := range t.slots {
		if e.occupied {
			keys = append(keys, e.key)
		}
	}
	return keys
}

// Values returns the stored values in slot order.
func (t *Table[V]) Values() []V {
	values := make([]V, 0, t.count)
	for _, e := range t.slots {
		if e.occupied {
			values = append(values, e.value)
		}
	}
	return values
}

// Len returns the number of stored keys.
func (t *Table[V]) Len() int {
	return t.count
}

// Capacity returns the number of slots.
func (t *Table[V]) Capacity() int {
	return Capacity
}

// IsEmpty reports whether no key is stored.
func (t *Table[V]) IsEmpty() bool {
	return t.count == 0
}

// IsFull reports whether every slot is occupied. Four slots are never reachable, so this
// stays false for a table holding the whole domain.
func (t *Table[V]) IsFull() bool {
	return t.count == Capacity
}

// String returns one "(key,value)" line per occupied slot.
func (t *Table[V]) String() string {
	var b strings.Builder
	for _, e := range t.slots {
		if e.occupied {
			fmt.Fprintf(&b, "(%s,%v)\n", e.key, e.value)
		}
	}
	return b.String()
}
