// Package pack moves slices of vectors between host memory, files and
// device buffers.
//
// A stream is a fixed 16-byte header followed by the components of every
// vector in X, Y, Z, W order, little-endian, optionally compressed:
//
//	offset  size  field
//	0       4     magic "VEC4"
//	4       1     format version (1)
//	5       1     element kind (reflect.Kind of T)
//	6       1     element size in bytes
//	7       1     compression id
//	8       8     vector count
//
// Bytes and FromBytes are the zero-header, native-endian form used when
// handing buffers to device APIs directly.
package pack

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"reflect"
	"unsafe"

	"github.com/amp-labs/amp-vector/vector"
	"github.com/amp-labs/amp-vector/xform"
)

// Version is the stream format version written by Encode.
const Version = 1

// MaxVectors bounds the vector count Decode accepts. Decode reads the
// payload in chunks of decodeChunk vectors, so memory grows with the data
// actually present and never with the count a header claims. A full
// stream of MaxVectors float64 vectors holds 512 MiB of components.
const MaxVectors = 1 << 24

// decodeChunk is the number of vectors Decode reads per call.
const decodeChunk = 4096

var (
	// ErrBadMagic is returned when a stream does not start with "VEC4".
	ErrBadMagic = errors.New("not a vector stream")

	// ErrUnsupportedVersion is returned for a format version other than Version.
	ErrUnsupportedVersion = errors.New("unsupported stream version")

	// ErrElementMismatch is returned when the element kind or size in the
	// header differs from the type being decoded.
	ErrElementMismatch = errors.New("element type mismatch")

	// ErrTooLarge is returned when a header claims more than MaxVectors vectors.
	ErrTooLarge = errors.New("too many vectors")

	// ErrShortBuffer is returned by FromBytes when the buffer does not hold a
	// whole number of vectors.
	ErrShortBuffer = errors.New("buffer length is not a whole number of vectors")
)

var magic = [4]byte{'V', 'E', 'C', '4'} //nolint:gochecknoglobals

type header struct {
	Magic       [4]byte
	Version     uint8
	Kind        uint8
	ElementSize uint8
	Compression Compression
	Count       uint64
}

// Options configures Encode.
type Options struct {
	Compression Compression
}

// Option is a functional option for Encode.
type Option func(*Options)

// WithCompression compresses the payload with c.
func WithCompression(c Compression) Option {
	return func(o *Options) {
		o.Compression = c
	}
}

func elementInfo[T xform.Fixed]() (uint8, uint8) {
	var zeroVal T

	return uint8(reflect.TypeFor[T]().Kind()), uint8(unsafe.Sizeof(zeroVal)) //nolint:gosec
}

// Encode writes vectors to w as a single stream.
func Encode[T xform.Fixed](w io.Writer, vectors []vector.Vector4[T], opts ...Option) error {
	options := Options{Compression: None}

	for _, opt := range opts {
		opt(&options)
	}

	kind, size := elementInfo[T]()

	hdr := header{
		Magic:       magic,
		Version:     Version,
		Kind:        kind,
		ElementSize: size,
		Compression: options.Compression,
		Count:       uint64(len(vectors)),
	}

	if !options.Compression.known() {
		return fmt.Errorf("%w: %s", ErrUnknownCompression, options.Compression)
	}

	if err := binary.Write(w, binary.LittleEndian, &hdr); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	compressor, err := newCompressor(w, options.Compression)
	if err != nil {
		return err
	}

	if err := binary.Write(compressor, binary.LittleEndian, vector.Flatten(vectors)); err != nil {
		_ = compressor.Close()

		return fmt.Errorf("writing %d vectors: %w", len(vectors), err)
	}

	if err := compressor.Close(); err != nil {
		return fmt.Errorf("flushing %s stream: %w", options.Compression, err)
	}

	return nil
}

// Decode reads a stream written by Encode. The stream's element kind and
// size must match T exactly; no conversion is attempted.
func Decode[T xform.Fixed](r io.Reader) ([]vector.Vector4[T], error) {
	var hdr header

	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	if hdr.Magic != magic {
		return nil, fmt.Errorf("%w: magic %q", ErrBadMagic, hdr.Magic[:])
	}

	if hdr.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, hdr.Version)
	}

	kind, size := elementInfo[T]()
	if hdr.Kind != kind || hdr.ElementSize != size {
		return nil, fmt.Errorf("%w: stream holds %s (%d bytes), want %s",
			ErrElementMismatch, reflect.Kind(hdr.Kind), hdr.ElementSize, reflect.TypeFor[T]())
	}

	if hdr.Count > MaxVectors {
		return nil, fmt.Errorf("%w: %d exceeds %d", ErrTooLarge, hdr.Count, MaxVectors)
	}

	decompressor, err := newDecompressor(r, hdr.Compression)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = decompressor.Close()
	}()

	flat, err := readComponents[T](decompressor, int(hdr.Count)) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("reading %d vectors: %w", hdr.Count, err)
	}

	return vector.Unflatten(flat)
}

// readComponents reads count vectors' worth of components from r, at most
// decodeChunk vectors at a time. The result grows only as data arrives.
func readComponents[T xform.Fixed](r io.Reader, count int) ([]T, error) {
	chunk := make([]T, min(count, decodeChunk)*vector.Size)

	var flat []T

	for remaining := count; remaining > 0; {
		n := min(remaining, decodeChunk)
		buf := chunk[:n*vector.Size]

		if err := binary.Read(r, binary.LittleEndian, buf); err != nil {
			return nil, err
		}

		flat = append(flat, buf...)
		remaining -= n
	}

	return flat, nil
}

// Bytes views vectors as raw bytes in native byte order, without copying.
// The result aliases vectors and is only valid while vectors is.
func Bytes[T xform.Fixed](vectors []vector.Vector4[T]) []byte {
	flat := vector.Flatten(vectors)
	if len(flat) == 0 {
		return nil
	}

	return unsafe.Slice((*byte)(unsafe.Pointer(&flat[0])), len(flat)*int(unsafe.Sizeof(flat[0])))
}

// FromBytes copies native-order bytes, such as a buffer read back from a
// device, into a new slice of vectors.
func FromBytes[T xform.Fixed](buf []byte) ([]vector.Vector4[T], error) {
	_, size := elementInfo[T]()
	stride := int(size) * vector.Size

	if len(buf)%stride != 0 {
		return nil, fmt.Errorf("%w: %d bytes, stride %d", ErrShortBuffer, len(buf), stride)
	}

	flat := make([]T, len(buf)/int(size))

	if err := binary.Read(bytes.NewReader(buf), binary.NativeEndian, flat); err != nil {
		return nil, err
	}

	return vector.Unflatten(flat)
}
