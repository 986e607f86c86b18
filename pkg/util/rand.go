package util

import (
	"math/rand/v2"
	"strings"
)

const (
	letterBytes   = "abcdefghijklmnopqrstuvwxyz"
	letterIdxBits = 5                    // 5 bits to represent a letter index
	letterIdxMask = 1<<letterIdxBits - 1 // All 1-bits, as many as letterIdxBits
	letterIdxMax  = 64 / letterIdxBits   // # of letter indices fitting in 64 bits
)

// Words returns n distinct lowercase words of the provided length. The same
// seed always yields the same words.
func Words(seed uint64, n, length int) []string {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	seen := make(map[string]struct{}, n)
	words := make([]string, 0, n)
	for len(words) < n {
		w := randString(r, length)
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		words = append(words, w)
	}
	return words
}

func randString(r *rand.Rand, n int) string {
	sb := strings.Builder{}
	sb.Grow(n)
	// A r.Uint64() generates 64 random bits, enough for letterIdxMax characters!
	for i, cache, remain := n-1, r.Uint64(), letterIdxMax; i >= 0; {
		if remain == 0 {
			cache, remain = r.Uint64(), letterIdxMax
		}
		if idx := int(cache & letterIdxMask); idx < len(letterBytes) {
			sb.WriteByte(letterBytes[idx])
			i--
		}
		cache >>= letterIdxBits
		remain--
	}
	return sb.String()
}
