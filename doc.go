// Package lvrand is a deterministic generator of pseudo-random values and
// combinatorial structures, built for property tests, fixtures and fuzzing
// harnesses that must replay exactly from a seed.
//
// What is lvrand?
//
//	One ISAAC word stream, wrapped in a Provider, drives lazy sequences of:
//		• Primitives: integers of every width, big integers, booleans, runes, UUIDs
//		• Geometric magnitudes: natural, positive, negative and signed integers
//		• Containers: lists, bags, distinct lists, subsets, strings
//		• Combinatorics: shuffles, permutations, cartesian products, sublists
//		• Derived providers with freshly drawn seeds
//
// Everything is organized under these subpackages:
//
//	isaac/      the ISAAC PRNG, the example seed and state fingerprints
//	seq/        iter.Seq combinators and the failure model for lazy sequences
//	random/     Provider and every generator family
//	readers/    canonical text readers used to build element pools
//	cmd/lvrand  command line sampler with YAML run configurations
//
// Quick example:
//
//	p := random.Example()
//	for v := range seq.Take(3, random.Range(p, 1, 6)) {
//		fmt.Println(v)
//	}
//
// The same seed and the same calls always produce the same values.
//
//	go get github.com/katalvlaran/lvrand/random
package lvrand
