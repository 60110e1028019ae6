package randutil

import "strconv"

// Hash128 hashes a string into four well-mixed 32-bit words (cyrb128). Not
// cryptographic; used to turn run seed strings into PRNG state.
func Hash128(s string) [4]uint32 {
	h1 := uint32(1779033703)
	h2 := uint32(3144134277)
	h3 := uint32(1013904242)
	h4 := uint32(2773480762)

	for i := 0; i < len(s); i++ {
		k := uint32(s[i])
		h1 = h2 ^ ((h1 ^ k) * 597399067)
		h2 = h3 ^ ((h2 ^ k) * 2869860233)
		h3 = h4 ^ ((h3 ^ k) * 951274213)
		h4 = h1 ^ ((h4 ^ k) * 2716044179)
	}

	h1 = (h3 ^ (h1 >> 18)) * 597399067
	h2 = (h4 ^ (h2 >> 22)) * 2869860233
	h3 = (h1 ^ (h3 >> 17)) * 951274213
	h4 = (h2 ^ (h4 >> 19)) * 2716044179
	h1 ^= h2 ^ h3 ^ h4
	h2 ^= h1
	h3 ^= h1
	h4 ^= h1

	return [4]uint32{h1, h2, h3, h4}
}

// Mix32 advances a 32-bit state by one step (splitmix32: one counter
// increment, one finalization mix) and maps the result into [0, 1).
func Mix32(a uint32) float64 {
	a += 0x9e3779b9
	t := a ^ (a >> 16)
	t *= 0x21f0aaad
	t ^= t >> 15
	t *= 0x735a2d97
	t ^= t >> 15
	return float64(t) / 4294967296
}

// LuckyRoll returns the deterministic roll in [0, 1) for the index-th Lucky
// card scored under the given seed string. The "_lucky" indexing scheme is
// contractual: existing seeds reproduce the same rolls only if it is kept
// byte for byte.
func LuckyRoll(seed string, index int) float64 {
	words := Hash128(seed + "_lucky" + strconv.Itoa(index))
	return Mix32(words[0])
}
