package pcm

import "errors"

var (
	ErrBadChannelCount = errors.New("channel count must be 1 or 2")
)
