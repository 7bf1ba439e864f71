// Package codec centralizes the compression applied to frame snapshots.
//
// Snapshot files are self-describing: the codec name is stored in the
// snapshot header, so a reader can reopen a file regardless of the codec
// it was written with. Changing a codec's stable name is a breaking change
// for persisted bytes.
package codec

import (
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Codec wraps a streaming compression scheme.
// Implementations must be safe for concurrent use.
type Codec interface {
	// NewWriter returns a writer compressing into w.
	// The returned writer must be closed to flush the stream.
	NewWriter(w io.Writer) (io.WriteCloser, error)

	// NewReader returns a reader decompressing from r.
	NewReader(r io.Reader) (io.ReadCloser, error)

	// Name is the stable identifier stored in snapshot headers.
	Name() string
}

// Default is the codec used when none is configured.
var Default Codec = Zstd{}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "zstd":
		return Zstd{}, true
	case "lz4":
		return LZ4{}, true
	default:
		return nil, false
	}
}

// Zstd compresses snapshots with zstandard at the default level.
type Zstd struct{}

// NewWriter implements Codec.
func (Zstd) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return zstd.NewWriter(w)
}

// NewReader implements Codec.
func (Zstd) NewReader(r io.Reader) (io.ReadCloser, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	return dec.IOReadCloser(), nil
}

// Name implements Codec.
func (Zstd) Name() string { return "zstd" }

// LZ4 compresses snapshots with lz4 frames. Faster than zstd at a lower
// compression ratio; useful for short-lived intermediate snapshots.
type LZ4 struct{}

// NewWriter implements Codec.
func (LZ4) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return lz4.NewWriter(w), nil
}

// NewReader implements Codec.
func (LZ4) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(lz4.NewReader(r)), nil
}

// Name implements Codec.
func (LZ4) Name() string { return "lz4" }
