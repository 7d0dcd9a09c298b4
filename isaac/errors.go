package isaac

import "errors"

// ErrSeedLength is returned by New when the seed does not hold exactly Size words.
var ErrSeedLength = errors.New("isaac: seed must hold exactly 256 words")
