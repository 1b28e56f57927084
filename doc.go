/*
Package hashy provides small open-addressing key-value tables for string keys.

Two implementations share the Table contract:

  - steptable.Table grows through a fixed ladder of capacities. Collisions are resolved with a
    two-hash step probe and deletions leave tombstones behind.
  - perfecttable.Table has exactly 13 slots and accepts only the keys of a closed domain
    (player statistics). Its hash function maps every domain key to its own slot.

Basic usage:

	import (
		"github.com/theflywheel/hashy/perfecttable"
		"github.com/theflywheel/hashy/steptable"
	)

	t, err := steptable.New[int]()
	if err != nil {
		log.Fatal(err)
	}
	if err := t.Set("home", 3); err != nil {
		log.Fatal(err)
	}
	v, err := t.Get("home")

	stats := perfecttable.New[int]()
	err = stats.SetStat(perfecttable.Goals, 2)

Errors:

Every failure wraps one of the sentinels declared in this package (ErrNotFound, ErrFull,
ErrLadderExhausted, ErrInvalidKey, ErrInvalidLadder). Use errors.Is to classify them.

Implementation Details:

Keys are treated as sequences of Unicode code points. The growable table hashes a key with a
rolling polynomial whose multiplier evolves modulo capacity-1, so the primary hash depends on
the current capacity. The probe step is derived from the key length and first code point
modulo 13, independent of capacity. When the live count exceeds two thirds of the capacity the
table moves to the next ladder capacity. By default live entries keep their slot index when
the table grows, which can leave them outside their new probe sequence; steptable.WithRehashOnGrow
switches to re-inserting every entry through the probe.

Neither table is safe for concurrent use.
*/
package hashy
