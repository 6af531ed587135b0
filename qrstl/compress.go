package qrstl

import (
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Compression selects an optional stream codec around the mesh file.
type Compression uint8

const (
	CompNone Compression = 0
	CompGzip Compression = 1
	CompZstd Compression = 2
)

func (c Compression) String() string {
	switch c {
	case CompNone:
		return "none"
	case CompGzip:
		return "gzip"
	case CompZstd:
		return "zstd"
	}
	return fmt.Sprintf("Compression(%d)", uint8(c))
}

// Ext is the file name suffix for the codec, e.g. ".gz".
func (c Compression) Ext() string {
	switch c {
	case CompGzip:
		return ".gz"
	case CompZstd:
		return ".zst"
	}
	return ""
}

func ParseCompression(s string) (Compression, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return CompNone, nil
	case "gzip", "gz":
		return CompGzip, nil
	case "zstd", "zst":
		return CompZstd, nil
	}
	return CompNone, fmt.Errorf("unsupported compression: %q", s)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// Compress wraps w with codec c. Close the result to flush it; w itself is
// not closed.
func Compress(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case CompNone:
		return nopWriteCloser{w}, nil
	case CompGzip:
		return gzip.NewWriterLevel(w, gzip.BestCompression)
	case CompZstd:
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	}
	return nil, fmt.Errorf("unsupported compression: %d", c)
}

// Decompress reads everything from r through codec c.
func Decompress(r io.Reader, c Compression) ([]byte, error) {
	switch c {
	case CompNone:
		return io.ReadAll(r)
	case CompGzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		return io.ReadAll(zr)
	case CompZstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		return io.ReadAll(dec)
	}
	return nil, fmt.Errorf("unsupported compression: %d", c)
}
