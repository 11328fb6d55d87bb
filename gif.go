package imgsz

import "io"

// decodegif reads the logical screen width and height of a GIF image. r must
// be positioned right after the GIF87a or GIF89a signature.
func decodegif(r io.Reader) (Size, error) {
	w, err := le16(r)
	if err != nil {
		return Size{}, err
	}
	h, err := le16(r)
	if err != nil {
		return Size{}, err
	}
	return Size{Width: int(w), Height: int(h)}, nil
}
