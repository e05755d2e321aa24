package discimg

import "errors"

// Sentinel errors a caller can test with errors.Is. These describe why a
// Go-level image operation failed; they are distinct from the host-visible
// ResultCode values the fdc package surfaces to the emulated register file.
var (
	ErrUnrecognizedFormat = errors.New("discimg: unrecognized disc image format")
	ErrTrackTooLarge      = errors.New("discimg: track number out of range")
	ErrNotWritable        = errors.New("discimg: disc is not writable")
	ErrTruncatedImage     = errors.New("discimg: image file truncated")
	ErrBadHeader          = errors.New("discimg: malformed FSD header")
)
