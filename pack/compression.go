package pack

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// ErrUnknownCompression is returned for a compression id or name that this
// package does not know.
var ErrUnknownCompression = errors.New("unknown compression")

// Compression selects how the payload of a stream is compressed. The
// header is never compressed.
type Compression uint8

const (
	None Compression = iota
	Gzip
	Zstd
	Snappy
	LZ4
	Brotli
)

var compressionNames = [...]string{ //nolint:gochecknoglobals
	None:   "none",
	Gzip:   "gzip",
	Zstd:   "zstd",
	Snappy: "snappy",
	LZ4:    "lz4",
	Brotli: "brotli",
}

// Compressions lists every supported compression, in id order.
func Compressions() []Compression {
	return []Compression{None, Gzip, Zstd, Snappy, LZ4, Brotli}
}

func (c Compression) String() string {
	if c.known() {
		return compressionNames[c]
	}

	return fmt.Sprintf("compression(%d)", uint8(c))
}

func (c Compression) known() bool {
	return int(c) < len(compressionNames)
}

// ParseCompression maps a name such as "zstd" to its Compression.
// Names are case-insensitive.
func ParseCompression(name string) (Compression, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	for id, known := range compressionNames {
		if known == name {
			return Compression(id), nil //nolint:gosec
		}
	}

	return None, fmt.Errorf("%w: %q", ErrUnknownCompression, name)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// newCompressor wraps w so that writes are compressed with c. The caller
// must Close the result to flush it; closing does not close w.
func newCompressor(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case None:
		return nopWriteCloser{w}, nil
	case Gzip:
		return gzip.NewWriter(w), nil
	case Zstd:
		return zstd.NewWriter(w)
	case Snappy:
		return snappy.NewBufferedWriter(w), nil
	case LZ4:
		return lz4.NewWriter(w), nil
	case Brotli:
		return brotli.NewWriter(w), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCompression, c)
	}
}

type zstdReadCloser struct {
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()

	return nil
}

// newDecompressor wraps r so that reads are decompressed with c. Closing
// the result releases decompressor resources but does not close r.
func newDecompressor(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case None:
		return io.NopCloser(r), nil
	case Gzip:
		return gzip.NewReader(r)
	case Zstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}

		return zstdReadCloser{dec}, nil
	case Snappy:
		return io.NopCloser(snappy.NewReader(r)), nil
	case LZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	case Brotli:
		return io.NopCloser(brotli.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCompression, c)
	}
}
