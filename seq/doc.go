// Package seq is the small lazy-sequence toolkit lvrand is built on.
//
// Every sequence is an iter.Seq: pull-based, possibly infinite, and not
// necessarily restartable. Sequences produced by a random.Provider draw from
// the provider's live state each time they are ranged over, so two passes
// over the same sequence yield different values.
//
// Failure model:
//
//	An iter.Seq cannot return an error half way through. A sequence that
//	cannot continue (a collaborator sequence ran dry, a fixed-size request hit
//	an empty source) calls Fail, which panics with a private payload. Try and
//	Collect turn that payload back into an ordinary error; any other panic is
//	re-raised untouched.
//
// Functions:
//
//   - Map, Filter, Take, Zip, Cycle, Repeat, Range, Values, Concat
//   - Head, MustHead, Collect, Try, Fail
package seq
