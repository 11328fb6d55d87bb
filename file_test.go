package imgsz

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func captureLog(t *testing.T) *test.Hook {
	t.Helper()
	l, hook := test.NewNullLogger()
	l.SetLevel(logrus.DebugLevel)
	SetLogger(l)
	t.Cleanup(func() { SetLogger(nil) })
	return hook
}

func TestDecodeFileSize(t *testing.T) {
	sz, n, err := DecodeFileSize(writeTemp(t, "a.gif", gifMinimal))
	if err != nil {
		t.Fatal(err)
	}
	if sz != (Size{100, 50}) || n != "gif" {
		t.Fatal(sz, n)
	}

	_, _, err = DecodeFileSize(filepath.Join(t.TempDir(), "missing.png"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("got %v, want not exist", err)
	}

	_, _, err = DecodeFileSize(writeTemp(t, "short.png", pngMinimal[:10]))
	if !errors.Is(err, ErrTruncatedInput) {
		t.Fatalf("got %v, want %v", err, ErrTruncatedInput)
	}
}

func TestImageSize(t *testing.T) {
	hook := captureLog(t)

	if sz := ImageSize(writeTemp(t, "a.jpg", jpgMinimal)); sz != (Size{512, 256}) {
		t.Fatal(sz)
	}
	for _, e := range hook.AllEntries() {
		if e.Level <= logrus.WarnLevel {
			t.Fatalf("unexpected %s entry: %s", e.Level, e.Message)
		}
	}
	if e := hook.LastEntry(); e == nil || e.Data["format"] != "jpeg" {
		t.Fatalf("missing debug entry, got %v", e)
	}
}

func TestImageSizeFailures(t *testing.T) {
	tests := []struct {
		name   string
		path   func(t *testing.T) string
		want   error
		format string
	}{
		{"missing", func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.bmp") }, fs.ErrNotExist, ""},
		{"unrecognized", func(t *testing.T) string { return writeTemp(t, "x.bin", make([]byte, 32)) }, ErrUnrecognizedFormat, ""},
		{"truncated", func(t *testing.T) string { return writeTemp(t, "x.bmp", bmpMinimal[:10]) }, ErrTruncatedInput, "bmp"},
		{"malformed", func(t *testing.T) string { return writeTemp(t, "x.jpg", []byte{0xff, 0xd8}) }, ErrMalformedSegment, "jpeg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hook := captureLog(t)
			path := tt.path(t)
			if sz := ImageSize(path); sz != (Size{}) {
				t.Fatalf("got %v, want zero size", sz)
			}
			if len(hook.Entries) != 1 {
				t.Fatalf("got %d log entries, want 1", len(hook.Entries))
			}
			e := hook.LastEntry()
			if e.Level != logrus.WarnLevel || e.Data["path"] != path {
				t.Fatalf("unexpected entry %v %v", e.Level, e.Data)
			}
			err, _ := e.Data[logrus.ErrorKey].(error)
			if !errors.Is(err, tt.want) {
				t.Fatalf("logged %v, want %v", err, tt.want)
			}
			if got, _ := e.Data["format"].(string); got != tt.format {
				t.Errorf("format = %q, want %q", got, tt.format)
			}
		})
	}
}
