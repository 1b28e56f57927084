package hashy

import (
	"github.com/pkg/errors"
)

var (
	// ErrNotFound is returned when a key is not stored in the table.
	ErrNotFound = errors.New("key not found")

	// ErrFull is returned when an insert probe visits every slot without finding room.
	ErrFull = errors.New("table is full")

	// ErrLadderExhausted is returned when the table must grow past the last capacity of its ladder.
	ErrLadderExhausted = errors.New("capacity ladder exhausted")

	// ErrInvalidKey is returned for empty keys and for keys outside a closed key domain.
	ErrInvalidKey = errors.New("invalid key")

	// ErrInvalidLadder is returned when a capacity ladder is empty, non-positive or not strictly increasing.
	ErrInvalidLadder = errors.New("invalid capacity ladder")
)

// Table is the key-value contract shared by the tables in this module.
type Table[V any] interface {
	Get(key string) (V, error)
	Set(key string, value V) error
	Delete(key string) error
	Contains(key string) bool
	Keys() []string
	Values() []V
	Len() int
	IsEmpty() bool
	IsFull() bool
	String() string
}
