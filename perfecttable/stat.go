package perfecttable

import (
	"fmt"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/theflywheel/hashy"
)

// Stat is a player statistic, the closed key domain of Table.
type Stat uint8

// Player statistics.
const (
	Tackles Stat = iota
	Weight
	WeakFootAbility
	GamesPlayed
	Goals
	StarSkill
	Assists
	Interceptions
	Height

	numStats
)

var statNames = [numStats]string{
	Tackles:         "Tackles",
	Weight:          "Weight",
	WeakFootAbility: "Weak Foot Ability",
	GamesPlayed:     "Games Played",
	Goals:           "Goals",
	StarSkill:       "Star Skill",
	Assists:         "Assists",
	Interceptions:   "Interceptions",
	Height:          "Height",
}

// slotOwners maps every slot to the name of the statistic stored there.
// Slots no statistic hashes to hold "".
var slotOwners = buildSlotOwners()

func buildSlotOwners() [Capacity]string {
	var owners [Capacity]string
	for s := Stat(0); s < numStats; s++ {
		name := statNames[s]
		i := slotHash(name)
		if owners[i] != "" {
			panic(fmt.Sprintf("statistics %q and %q share slot %d", owners[i], name, i))
		}
		owners[i] = name
	}
	return owners
}

// Stats returns every statistic of the domain.
func Stats() []Stat {
	stats := make([]Stat, 0, numStats)
	for s := Stat(0); s < numStats; s++ {
		stats = append(stats, s)
	}
	return stats
}

// ParseStat returns the statistic named name.
func ParseStat(name string) (Stat, error) {
	for s := Stat(0); s < numStats; s++ {
		if statNames[s] == name {
			return s, nil
		}
	}
	return 0, errors.Wrapf(hashy.ErrInvalidKey, "%q is not a player statistic", name)
}

// String returns the canonical key of the statistic.
func (s Stat) String() string {
	if s >= numStats {
		return fmt.Sprintf("Stat(%d)", uint8(s))
	}
	return statNames[s]
}

// Slot returns the slot the statistic is stored in.
func (s Stat) Slot() int {
	return slotHash(s.String())
}

// slotHash computes (3^n * c + 3n) mod 13, where n is the number of characters in key and c is
// the code of its first character.
func slotHash(key string) int {
	n := utf8.RuneCountInString(key)
	first, _ := utf8.DecodeRuneInString(key)
	return (powMod(3, n, Capacity)*(int(first)%Capacity) + 3*n%Capacity) % Capacity
}

func powMod(base, exp, mod int) int {
	result := 1 % mod
	base %= mod
	for exp > 0 {
		if exp&1 == 1 {
			result = result * base % mod
		}
		base = base * base % mod
		exp >>= 1
	}
	return result
}
