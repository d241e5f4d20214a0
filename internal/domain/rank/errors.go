package rank

import "errors"

// Sentinel kinds for ranking errors.
var (
	ErrUnknownStrategy = errors.New("unknown sort strategy")
	ErrScoringFailed   = errors.New("scoring failed")
)
