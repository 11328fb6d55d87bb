package imgsz

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// DecodeFileSize opens the named file and returns its dimensions and format
// name as DecodeSize does.
func DecodeFileSize(path string) (Size, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return Size{}, "", fmt.Errorf("imgsz: open %s: %w", path, err)
	}
	defer f.Close()
	return DecodeSize(f)
}

// ImageSize returns the dimensions of the named image file, or a zero Size if
// the file cannot be opened or sized. Failures are logged as warnings instead
// of being returned; use DecodeFileSize to get the error.
func ImageSize(path string) Size {
	sz, name, err := DecodeFileSize(path)
	if err != nil {
		fields := logrus.Fields{"path": path}
		if name != "" {
			fields["format"] = name
		}
		logger().WithFields(fields).WithError(err).Warn("imgsz: cannot read image size")
		return Size{}
	}
	return sz
}
