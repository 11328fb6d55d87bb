package imgsz

import "io"

// decodepng reads the width and height from the IHDR chunk that must follow
// the PNG signature. The chunk's length and type are not checked.
func decodepng(r io.Reader) (Size, error) {
	if err := discard(r, 8); err != nil {
		return Size{}, err
	}
	w, err := be32(r)
	if err != nil {
		return Size{}, err
	}
	h, err := be32(r)
	if err != nil {
		return Size{}, err
	}
	return Size{Width: int(w), Height: int(h)}, nil
}
