// Package random turns one ISAAC word stream into reproducible lazy
// sequences of structured values: integers of every width, big integers,
// booleans, runes, strings, lists, bags, subsets, permutations and more.
//
// The package offers the following key components:
//
//   - Provider: a seed, three size scales and the live generator state.
//     – New, NewDefault, Example:          construction.
//     – WithScale, WithSecondaryScale,
//     WithTertiaryScale, WithDefaultScales: reconfigured snapshots of the state.
//     – Copy, DeepCopy, Reset (to the last construction or copy point), Equal, String.
//   - Primitive sampling:
//     – Range, RangeUp, RangeDown, Uniform: any integer type, inclusive bounds.
//     – Integers, Longs, Booleans, Orderings, Runes, ASCIIRunes, Bits, UUIDs.
//     – UniformSample, UniformSampleString, UniformSampleParsed.
//     – RangeBig for *big.Int bounds.
//   - Geometric families (mean = Scale):
//     – NaturalIntegersGeometric, PositiveIntegersGeometric, ...
//     – PositiveBigIntegers, ..., RangeUpBig, RangeDownBig (mean bit length).
//   - Containers (length mean = Scale, nested length mean = SecondaryScale):
//     – Lists, Bags, DistinctLists, Subsets and their AtLeast / OfSize forms.
//     – Strings, StringBags, DistinctStrings, StringSubsets, StringLists.
//     – WithElement, WithNull, Optionals.
//     – Shuffle, PermutationsFinite, PrefixPermutations, PermutationsInfinite.
//     – CartesianProduct, DependentPairsInfinite, Sublists, ListsWithSublists.
//   - Derived generators: RandomProviders and friends.
//
// Scales:
//
//	Scale is the mean of the main size or magnitude of whatever is produced;
//	SecondaryScale sizes nested containers; TertiaryScale sizes permutation
//	chunks. Scales may hold any integer. Each operation checks the ones it uses
//	when it is called and returns ErrIllegalState for a degenerate mean.
//	WithScale and friends start from a snapshot of the receiver's state, so
//	two providers derived at the same point replay the same words. Draw a
//	container's elements from the provider that sizes it.
//
// Sequences:
//
//	Every operation returns an iter.Seq. Ranging over it draws from the
//	provider's state, so a sequence is not repeatable: Copy the provider
//	first to replay. Interleaving pulls from several sequences of one
//	provider is allowed; the values then depend on the interleaving.
//
// Errors:
//
//   - ErrInvalidArgument: a bad explicit parameter (negative size, empty
//     candidate list, nil bound, nil forced element, wrong seed length).
//   - ErrIllegalState: the provider's scales cannot drive the operation.
//   - ErrNoSuchElement: an element source ran out mid-sequence. This one is
//     raised through seq.Fail and returned by seq.Collect or seq.Try.
//
// A Provider is not safe for concurrent use.
package random
