package api

import "errors"

// ErrorInvalidArgument operation cannot succeed because rank or address
// is out of range, the address is misaligned, or the address does not
// denote a live allocation.
var ErrorInvalidArgument = errors.New("invalidArgument")

// ErrorOutofSpace allocation cannot currently be satisfied, no free
// block of sufficient rank remains in the arena.
var ErrorOutofSpace = errors.New("outofSpace")

// Maxrank largest size class, a rank-r block spans 2^(r-1) pages.
const Maxrank = int64(16)

// Maxpages maximum number of pages a single arena can track.
const Maxpages = int64(65536)

// Defaultpagesize default size of a single page, in bytes.
const Defaultpagesize = int64(4096)
