package imgsz

import (
	"errors"
	"fmt"
)

const (
	markerPrefix = 0xff
	sof0Marker   = 0xc0 // Start Of Frame (Baseline Sequential).
)

// jpgdecoder walks the marker segments of a JPEG stream looking for the
// baseline frame header.
type jpgdecoder struct {
	r reader
	// segments counts the segments skipped so far, for error messages.
	segments int
}

// decode scans segments until SOF0 and returns the frame's dimensions. r must
// be positioned right after the SOI marker.
//
// Only SOF0 is recognised. Progressive and extended frames (SOF1 to SOF15)
// are skipped like any other segment, so such files end in
// ErrMalformedSegment.
func (d *jpgdecoder) decode(r reader) (Size, error) {
	d.r = r
	for {
		marker, n, err := d.readSegmentHeader()
		if err != nil {
			return Size{}, err
		}
		if marker == sof0Marker {
			return d.readSOF0()
		}
		if err := discard(d.r, int64(n)); err != nil {
			return Size{}, d.scanError(err)
		}
		d.segments++
	}
}

// readSegmentHeader reads a marker and its length, returning the marker code
// and the number of payload bytes that follow.
func (d *jpgdecoder) readSegmentHeader() (marker byte, n int, err error) {
	b, err := d.r.ReadByte()
	if err != nil {
		return 0, 0, d.scanError(err)
	}
	if b != markerPrefix {
		return 0, 0, FormatError(fmt.Sprintf("missing 0xff marker prefix after segment %d, got %#02x", d.segments, b))
	}
	marker, err = d.r.ReadByte()
	if err != nil {
		return 0, 0, d.scanError(err)
	}
	length, err := be16(d.r)
	if err != nil {
		return 0, 0, d.scanError(err)
	}
	// The length includes its own two bytes.
	if length < 2 {
		return 0, 0, FormatError(fmt.Sprintf("segment %#02x has length %d", marker, length))
	}
	return marker, int(length) - 2, nil
}

// readSOF0 reads the frame header fields that follow a SOF0 length.
func (d *jpgdecoder) readSOF0() (Size, error) {
	// Sample precision.
	if err := discard(d.r, 1); err != nil {
		return Size{}, err
	}
	h, err := be16(d.r)
	if err != nil {
		return Size{}, err
	}
	w, err := be16(d.r)
	if err != nil {
		return Size{}, err
	}
	return Size{Width: int(w), Height: int(h)}, nil
}

// scanError reports running out of input between segments as a malformed
// stream rather than a short header.
func (d *jpgdecoder) scanError(err error) error {
	if errors.Is(eofToTruncated(err), ErrTruncatedInput) {
		return fmt.Errorf("%w: no baseline frame header after %d segments", ErrMalformedSegment, d.segments)
	}
	return err
}
