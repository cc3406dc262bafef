package codec

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported sample format and bit depth combination")
)
