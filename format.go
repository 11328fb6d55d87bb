package imgsz

import (
	"bufio"
	"io"
	"sort"

	"github.com/sirupsen/logrus"
)

// Size is the pixel width and height of an image.
//
// The fields use the platform int. PNG dimensions are unsigned 32-bit values,
// so on 32-bit platforms a PNG width or height of 2^31 or more wraps to a
// negative number.
type Size struct {
	Width  int
	Height int
}

// Format is one of the container formats imgsz can size.
type Format int

const (
	FormatUnknown Format = iota
	FormatBMP
	FormatGIF
	FormatPNG
	FormatJPEG
)

func (f Format) String() string {
	switch f {
	case FormatBMP:
		return "bmp"
	case FormatGIF:
		return "gif"
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	}
	return "unknown"
}

// decode reads the dimensions of f from r, which must be positioned
// right after the format's signature.
func (f Format) decode(r reader) (Size, error) {
	switch f {
	case FormatBMP:
		return decodebmp(r)
	case FormatGIF:
		return decodegif(r)
	case FormatPNG:
		return decodepng(r)
	case FormatJPEG:
		var d jpgdecoder
		return d.decode(r)
	}
	return Size{}, ErrUnrecognizedFormat
}

// A format holds a signature and the Format it identifies.
type format struct {
	magic string
	f     Format
}

// formats is sorted by descending signature length, then by signature bytes,
// so the probe order does not depend on registration order. It is read-only
// once init is done.
var formats []format

// registerFormat adds a signature to the registry. It must only be called
// from init.
func registerFormat(magic string, f Format) {
	formats = append(formats, format{magic, f})
	sort.Slice(formats, func(i, j int) bool {
		if len(formats[i].magic) != len(formats[j].magic) {
			return len(formats[i].magic) > len(formats[j].magic)
		}
		return formats[i].magic < formats[j].magic
	})
}

// Formats returns the registered formats in probe order.
// A format with several signatures is listed once per signature.
func Formats() []Format {
	fs := make([]Format, len(formats))
	for i, f := range formats {
		fs[i] = f.f
	}
	return fs
}

func maxSignatureLen() int {
	n := 0
	for _, f := range formats {
		if len(f.magic) > n {
			n = len(f.magic)
		}
	}
	return n
}

// A reader is an io.Reader that can also read single bytes.
type reader interface {
	io.Reader
	io.ByteReader
}

// asReader converts an io.Reader to a reader.
func asReader(r io.Reader) reader {
	if rr, ok := r.(reader); ok {
		return rr
	}
	return bufio.NewReader(r)
}

// sniff consumes the stream one byte at a time until a registered signature
// matches, leaving r positioned right after it. It stops with
// ErrUnrecognizedFormat as soon as no signature can match any more, so the
// stream only counts as truncated while a match is still possible.
func sniff(r reader) (Format, error) {
	n := maxSignatureLen()
	probe := make([]byte, 0, n)
	for i := 0; i < n; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return FormatUnknown, eofToTruncated(err)
		}
		probe = append(probe, b)
		for _, f := range formats {
			if len(probe) >= len(f.magic) && string(probe[:len(f.magic)]) == f.magic {
				return f.f, nil
			}
		}
		if !couldMatch(probe) {
			return FormatUnknown, ErrUnrecognizedFormat
		}
	}
	return FormatUnknown, ErrUnrecognizedFormat
}

// couldMatch reports whether probe is a proper prefix of some signature.
func couldMatch(probe []byte) bool {
	for _, f := range formats {
		if len(f.magic) > len(probe) && f.magic[:len(probe)] == string(probe) {
			return true
		}
	}
	return false
}

// DecodeSize detects the format of the image in r and reads its dimensions
// without decoding any pixel data. The returned string is the format name.
//
// When r is not an io.ByteReader it is wrapped in a bufio.Reader, so bytes
// past the header may be consumed from r.
func DecodeSize(r io.Reader) (Size, string, error) {
	rr := asReader(r)
	f, err := sniff(rr)
	if err != nil {
		return Size{}, "", err
	}
	sz, err := f.decode(rr)
	if err != nil {
		return Size{}, f.String(), err
	}
	logger().WithFields(logrus.Fields{
		"format": f.String(),
		"width":  sz.Width,
		"height": sz.Height,
	}).Debug("imgsz: sized image")
	return sz, f.String(), nil
}
