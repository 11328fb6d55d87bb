package imgsz

const (
	pngHeader    = "\x89PNG\r\n\x1a\n"
	gif87aHeader = "GIF87a"
	gif89aHeader = "GIF89a"
	bmpHeader    = "BM"
	jpegHeader   = "\xff\xd8"
)

func init() {
	registerFormat(jpegHeader, FormatJPEG)
	registerFormat(pngHeader, FormatPNG)
	registerFormat(gif87aHeader, FormatGIF)
	registerFormat(gif89aHeader, FormatGIF)
	registerFormat(bmpHeader, FormatBMP)
}
