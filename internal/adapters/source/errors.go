package source

import "errors"

// Sentinel kinds for source errors.
var (
	ErrReadDataset   = errors.New("read dataset failed")
	ErrDecodeDataset = errors.New("decode dataset failed")
)
