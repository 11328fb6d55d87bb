package imgsz

import "io"

// decodebmp reads the width and height of a BMP image from r, which must be
// positioned right after the "BM" signature.
//
// The BMP specification is at http://www.digicamsoft.com/bmp/bmp.html.
func decodebmp(r io.Reader) (Size, error) {
	const (
		// File size, two reserved words, pixel data offset and the DIB
		// header size, none of which matter for sizing.
		skipLen = 16
		dimLen  = 8
	)
	var b [skipLen + dimLen]byte
	if err := readFull(r, b[:]); err != nil {
		return Size{}, err
	}
	// Negative heights mark top-down bitmaps and are returned as is.
	width := int(int32(readUint32(b[skipLen : skipLen+4])))
	height := int(int32(readUint32(b[skipLen+4 : skipLen+8])))
	return Size{Width: width, Height: height}, nil
}
