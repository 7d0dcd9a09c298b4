// Package isaac implements the ISAAC pseudo-random word generator used as the
// single source of randomness for lvrand.
//
// What:
//
//   - PRNG: Bob Jenkins' ISAAC (Indirection, Shift, Accumulate, Add, Count)
//     over a 256-word mixing array, seeded from exactly 256 signed 32-bit words.
//   - Fingerprint: a stable 64-bit identifier of the current derived state.
//   - ExampleSeed: the canonical seed used by documentation and golden tests.
//
// Why:
//
//   - Output must be reproducible bit for bit from a seed, on every platform
//     and Go release. math/rand sources do not promise that across versions.
//   - The state is a plain value, so Copy, Clone and Reset are value copies.
//
// Determinism:
//
//   - Initialization follows randinit(flag=true) of the reference rand.c,
//     followed by one block regeneration.
//   - Words are handed out from the top of the result block downwards
//     (rsl[255], rsl[254], ...); a new block is generated every 256 words.
//
// Not goals: cryptographic strength, concurrent use of one PRNG.
//
// Errors:
//
//   - ErrSeedLength: the seed does not hold exactly Size words.
package isaac
