package imgsz

import "errors"

var (
	// ErrUnrecognizedFormat means that no registered signature matched the
	// leading bytes of the input.
	ErrUnrecognizedFormat = errors.New("imgsz: unrecognized format")
	// ErrTruncatedInput means that the input ended while probing for a
	// signature or while a decoder still expected header bytes.
	ErrTruncatedInput = errors.New("imgsz: truncated input")
	// ErrMalformedSegment means that the JPEG marker segments were
	// inconsistent or ended before a baseline frame header was found.
	ErrMalformedSegment = errors.New("imgsz: malformed jpeg segment")
)

// A FormatError reports that the input is not a valid image of the sniffed
// format. It unwraps to ErrMalformedSegment.
type FormatError string

func (e FormatError) Error() string { return "imgsz: invalid format: " + string(e) }

func (e FormatError) Unwrap() error { return ErrMalformedSegment }
