package isaac

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// ExampleSeedName is hashed to derive ExampleSeed.
const ExampleSeedName = "lvrand.RandomProvider.EXAMPLE"

// stateBytes is the serialized size of mem, rsl, a, b, c and count.
const stateBytes = 4 * (2*Size + 4)

// Fingerprint returns a stable identifier of the current derived state:
// xxHash64 over mem, rsl, a, b, c and count, each as little-endian uint32.
// It changes whenever a word is drawn. It is a diagnostic, not a secret.
func (p *PRNG) Fingerprint() int64 {
	buf := make([]byte, 0, stateBytes)
	for _, w := range p.mem {
		buf = binary.LittleEndian.AppendUint32(buf, w)
	}
	for _, w := range p.rsl {
		buf = binary.LittleEndian.AppendUint32(buf, w)
	}
	buf = binary.LittleEndian.AppendUint32(buf, p.a)
	buf = binary.LittleEndian.AppendUint32(buf, p.b)
	buf = binary.LittleEndian.AppendUint32(buf, p.c)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(p.count))

	return int64(xxhash.Sum64(buf))
}

// ExampleSeed returns the canonical example seed: the xxHash64 of
// ExampleSeedName drives a SplitMix64 stream whose outputs are split into
// Size words, high half first.
func ExampleSeed() []int32 {
	state := xxhash.Sum64String(ExampleSeedName)
	seed := make([]int32, Size)
	for i := 0; i < Size; i += 2 {
		var z uint64
		state, z = splitmix64(state)
		seed[i] = int32(uint32(z >> 32))
		seed[i+1] = int32(uint32(z))
	}

	return seed
}

// splitmix64 advances state and returns the next output.
func splitmix64(state uint64) (uint64, uint64) {
	state += 0x9e3779b97f4a7c15
	z := state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb

	return state, z ^ (z >> 31)
}
