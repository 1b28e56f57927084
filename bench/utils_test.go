package bench_test

import (
	"fmt"
	"math/rand"
	"runtime"
)

// getMemoryUsage returns the current memory stats as a formatted string
func getMemoryUsage() string {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return fmt.Sprintf("Memory: Alloc=%.1fMB Sys=%.1fMB",
		float64(m.Alloc)/1024/1024,
		float64(m.Sys)/1024/1024)
}

// generateKeys creates n distinct alphanumeric keys of the given length.
// Every key starts with 'k': the probe step depends only on the first character and the
// length, and some first characters give a step of zero.
func generateKeys(n, length int) []string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	rnd := rand.New(rand.NewSource(42))
	seen := make(map[string]struct{}, n)
	keys := make([]string, 0, n)
	buf := make([]byte, length)
	buf[0] = 'k'
	for len(keys) < n {
		for i := 1; i < len(buf); i++ {
			buf[i] = charset[rnd.Intn(len(charset))]
		}
		key := string(buf)
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	return keys
}
