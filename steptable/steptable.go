package steptable

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"

	"github.com/theflywheel/hashy"
)

var _ hashy.Table[int] = &Table[int]{}

type slotState uint8

const (
	emptySlot slotState = iota
	occupiedSlot
	tombstoneSlot
)

type slot[V any] struct {
	state slotState
	// tag is the xxhash of key, compared first to reject most mismatching slots cheaply.
	tag   uint64
	key   string
	value V
}

// Table is an open-addressing hash table growing through a ladder of capacities.
// Collisions are resolved by stepping through the slots with a key-dependent step and
// deleted entries leave tombstones behind.
type Table[V any] struct {
	slots        []slot[V]
	sizes        []int
	sizeIndex    int
	count        int
	rehashOnGrow bool
	logf         func(format string, args ...any)
}

// New returns an empty table at the first capacity of its ladder.
func New[V any](opts ...Option) (*Table[V], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validateSizes(cfg.sizes); err != nil {
		return nil, err
	}

	t := &Table[V]{}
	t.configure(cfg)
	return t, nil
}

func (t *Table[V]) configure(cfg config) {
	if cfg.logf == nil {
		cfg.logf = func(string, ...any) {}
	}
	t.slots = make([]slot[V], cfg.sizes[0])
	t.sizes = cfg.sizes
	t.sizeIndex = 0
	t.rehashOnGrow = cfg.rehashOnGrow
	t.logf = cfg.logf
}

// ensureInitialized makes the zero Table usable with the default options.
func (t *Table[V]) ensureInitialized() {
	if t.slots == nil {
		t.configure(defaultConfig())
	}
}

func validateSizes(sizes []int) error {
	if len(sizes) == 0 {
		return errors.Wrap(hashy.ErrInvalidLadder, "ladder is empty")
	}
	// The primary hash reduces modulo capacity-1, so a single slot cannot be addressed.
	if sizes[0] < 2 {
		return errors.Wrapf(hashy.ErrInvalidLadder, "capacity must be at least 2, got %d", sizes[0])
	}
	for i := 1; i < len(sizes); i++ {
		if sizes[i] <= sizes[i-1] {
			return errors.Wrapf(hashy.ErrInvalidLadder, "capacity %d at position %d does not exceed %d",
				sizes[i], i, sizes[i-1])
		}
	}
	return nil
}

// Get returns the value stored under key.
func (t *Table[V]) Get(key string) (V, error) {
	var zero V
	if key == "" {
		return zero, errors.Wrap(hashy.ErrInvalidKey, "key cannot be empty")
	}
	t.ensureInitialized()

	position, err := probe(t.slots, key, xxhash.Sum64String(key), false)
	if err != nil {
		return zero, err
	}
	return t.slots[position].value, nil
}

// Set stores value under key, replacing the previous value if key is already present.
// When the live count exceeds two thirds of the capacity the table grows. If the ladder is
// exhausted the entry stays stored and ErrLadderExhausted is returned.
func (t *Table[V]) Set(key string, value V) error {
	if key == "" {
		return errors.Wrap(hashy.ErrInvalidKey, "key cannot be empty")
	}
	t.ensureInitialized()

	tag := xxhash.Sum64String(key)
	position, err := probe(t.slots, key, tag, true)
	if err != nil {
		return err
	}

	s := &t.slots[position]
	if s.state != occupiedSlot {
		t.count++
	}
	*s = slot[V]{
		state: occupiedSlot,
		tag:   tag,
		key:   key,
		value: value,
	}

	if 3*t.count > 2*len(t.slots) {
		return t.grow()
	}
	return nil
}

// Delete replaces the first slot holding key, in slot order, with a tombstone.
// The live count is decremented even when key is absent, in which case ErrNotFound is returned.
func (t *Table[V]) Delete(key string) error {
	if key == "" {
		return errors.Wrap(hashy.ErrInvalidKey, "key cannot be empty")
	}
	t.ensureInitialized()

	t.count--
	for i := range t.slots {
		if t.slots[i].state == occupiedSlot && t.slots[i].key == key {
			t.slots[i] = slot[V]{state: tombstoneSlot}
			return nil
		}
	}
	return errors.Wrapf(hashy.ErrNotFound, "key %q", key)
}

// Contains reports whether Get would find key.
func (t *Table[V]) Contains(key string) bool {
	_, err := t.Get(key)
	return err == nil
}

// Keys returns the keys of occupied slots in slot order.
func (t *Table[V]) Keys() []string {
	keys := make([]string, 0, len(t.slots))
	for _, s := range t.slots {
		if s.state == occupiedSlot {
			keys = append(keys, s.key)
		}
	}
	return keys
}

// Values returns the values of occupied slots in slot order.
func (t *Table[V]) Values() []V {
	values := make([]V, 0, len(t.slots))
	for _, s := range t.slots {
		if s.state == occupiedSlot {
			values = append(values, s.value)
		}
	}
	return values
}

// Len returns the live count. Deleting absent keys can drive it below zero.
func (t *Table[V]) Len() int {
	return t.count
}

// Capacity returns the current number of slots.
func (t *Table[V]) Capacity() int {
	t.ensureInitialized()
	return len(t.slots)
}

// IsEmpty reports whether the live count is zero.
func (t *Table[V]) IsEmpty() bool {
	return t.count == 0
}

// IsFull reports whether the live count equals the capacity.
func (t *Table[V]) IsFull() bool {
	t.ensureInitialized()
	return t.count == len(t.slots)
}

// String returns one "(key,value)" line per occupied slot.
func (t *Table[V]) String() string {
	var b strings.Builder
	for _, s := range t.slots {
		if s.state == occupiedSlot {
			fmt.Fprintf(&b, "(%s,%v)\n", s.key, s.value)
		}
	}
	return b.String()
}

// probe walks the step sequence of key over slots.
//
// In lookup mode it stops at the slot holding key or at an empty slot, stepping over
// tombstones. In insert mode it returns the slot holding key if the sequence reaches it,
// otherwise the first tombstone met on the way, otherwise the empty slot ending the sequence.
func probe[V any](slots []slot[V], key string, tag uint64, insert bool) (int, error) {
	capacity := len(slots)
	position := primaryHash(key, capacity)
	step := stepHash(key)

	var tombstoneFound bool
	var tombstonePosition int

	for i := 0; i < capacity; i++ {
		s := &slots[position]
		switch s.state {
		case emptySlot:
			if !insert {
				return 0, errors.Wrapf(hashy.ErrNotFound, "key %q", key)
			}
			if tombstoneFound {
				return tombstonePosition, nil
			}
			return position, nil
		case tombstoneSlot:
			if insert && !tombstoneFound {
				tombstoneFound = true
				tombstonePosition = position
			}
		case occupiedSlot:
			if s.tag == tag && s.key == key {
				return position, nil
			}
		}
		position = (position + step) % capacity
	}

	if tombstoneFound {
		return tombstonePosition, nil
	}
	if insert {
		return 0, errors.Wrapf(hashy.ErrFull, "no slot for key %q within %d probes", key, capacity)
	}
	return 0, errors.Wrapf(hashy.ErrNotFound, "key %q", key)
}

// grow moves the table to the next capacity of the ladder. Tombstones are dropped.
func (t *Table[V]) grow() error {
	if t.sizeIndex+1 >= len(t.sizes) {
		return errors.Wrapf(hashy.ErrLadderExhausted, "cannot grow beyond capacity %d", len(t.slots))
	}

	newCapacity := t.sizes[t.sizeIndex+1]
	slots := make([]slot[V], newCapacity)
	for i, s := range t.slots {
		if s.state != occupiedSlot {
			continue
		}
		if !t.rehashOnGrow {
			slots[i] = s
			continue
		}

		position, err := probe(slots, s.key, s.tag, true)
		if err != nil {
			return errors.Wrapf(err, "rehashing into capacity %d failed", newCapacity)
		}
		slots[position] = s
	}

	t.logf("grow: capacity %d -> %d, live %d", len(t.slots), newCapacity, t.count)

	t.sizeIndex++
	t.slots = slots
	return nil
}
