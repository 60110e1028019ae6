package randutil

import rand "math/rand/v2"

// New builds a PCG-backed *rand.Rand from a single int64 seed. The simulator
// gives every deal seed+i, so a run replays identically whatever the worker
// count.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(splitmix64(u), splitmix64(u+0x9e3779b97f4a7c15)))
}

// splitmix64 finalizer. Consecutive seeds differ in few bits; without this
// step their PCG streams would be visibly correlated.
func splitmix64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
