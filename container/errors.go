package container

import "errors"

var (
	ErrNoChannels      = errors.New("stream needs at least one channel")
	ErrNoSampleRate    = errors.New("stream needs a positive sample rate")
	ErrChannelMismatch = errors.New("generator channel count does not match stream")
)
