package steptable

import (
	"math/bits"
	"unicode/utf8"
)

const (
	hashSeed = 31415
	hashBase = 31

	// stepModulus bounds the probe step. It does not follow the capacity.
	stepModulus = 13
)

// primaryHash returns the home slot of key for the given capacity.
// The multiplier evolves modulo capacity-1, so the result must be recomputed whenever the
// capacity changes.
func primaryHash(key string, capacity int) int {
	c := uint64(capacity)
	var value uint64
	a := uint64(hashSeed)
	for _, r := range key {
		value = (uint64(r)%c + mulMod(a, value, c)) % c
		a = mulMod(a, hashBase, c-1)
	}
	return int(value)
}

// mulMod returns a*b mod m without overflowing for any capacity.
func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return bits.Rem64(hi, lo, m)
}

// stepHash returns the distance between consecutive probes of key. It may be zero.
func stepHash(key string) int {
	first, _ := utf8.DecodeRuneInString(key)
	n := int64(utf8.RuneCountInString(key))
	return int((4*n*int64(first) + 3) % stepModulus)
}
