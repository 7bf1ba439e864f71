package nanoflow

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/hupe1980/nanoflow/codec"
	"github.com/hupe1980/nanoflow/lorentz"
)

var snapshotMagic = [4]byte{'N', 'F', 'S', '1'}

const snapshotFormatVersion = uint16(1)

// Snapshot payload type tags. Stable on disk; do not renumber or rename.
const (
	kindFloat32  = "f32"
	kindFloat64  = "f64"
	kindInt32    = "i32"
	kindUint8    = "u8"
	kindBool     = "b"
	kindFloat32s = "f32v"
	kindInt32s   = "i32v"
	kindFourVec  = "p4"
)

type snapshotPayload struct {
	NumEvents int              `json:"num_events"`
	Columns   []snapshotColumn `json:"columns"`
}

type snapshotColumn struct {
	Name   string          `json:"name"`
	Kind   string          `json:"kind"`
	Values json.RawMessage `json:"values"`
}

// Snapshot writes the named columns to w as a self-describing compressed
// file. A nil or empty columns slice writes every column in registration
// order. WithSnapshotMask restricts the written events to a selection
// mask; WithSnapshotCodec picks the compression codec.
//
// Format:
//  1. magic, format version
//  2. codec name (length-prefixed)
//  3. codec-compressed JSON payload (event count + typed column arrays)
func (f *Frame) Snapshot(w io.Writer, columns []string, optFns ...SnapshotOption) error {
	start := time.Now()

	opts := snapshotOptions{codec: codec.Default}
	for _, fn := range optFns {
		fn(&opts)
	}

	err := f.writeSnapshot(w, columns, opts)
	f.metrics.RecordSnapshot(len(columns), f.numEvents, time.Since(start), err)
	if err != nil {
		return err
	}

	f.logger.LogSnapshot(len(columns), f.numEvents, opts.codec.Name())
	return nil
}

func (f *Frame) writeSnapshot(w io.Writer, columns []string, opts snapshotOptions) error {
	if len(columns) == 0 {
		columns = f.ColumnNames()
	}

	var sel []uint32
	numEvents := f.numEvents
	if opts.mask != "" {
		bm, err := f.Mask(opts.mask)
		if err != nil {
			return err
		}
		sel = bm.ToArray()
		numEvents = len(sel)
	}

	payload := snapshotPayload{
		NumEvents: numEvents,
		Columns:   make([]snapshotColumn, 0, len(columns)),
	}

	for _, name := range columns {
		col, err := f.Column(name)
		if err != nil {
			return err
		}
		kind := col.kind()
		if kind == "" {
			return fmt.Errorf("snapshot: column %q: element type %s has no snapshot representation", name, col.ElemType())
		}

		values, err := json.Marshal(col.values(sel))
		if err != nil {
			return fmt.Errorf("snapshot: column %q: %w", name, err)
		}

		payload.Columns = append(payload.Columns, snapshotColumn{
			Name:   name,
			Kind:   kind,
			Values: values,
		})
	}

	if err := writeSnapshotHeader(w, opts.codec.Name()); err != nil {
		return err
	}

	cw, err := opts.codec.NewWriter(w)
	if err != nil {
		return fmt.Errorf("snapshot: codec writer: %w", err)
	}
	if err := json.NewEncoder(cw).Encode(payload); err != nil {
		cw.Close()
		return fmt.Errorf("snapshot: encode payload: %w", err)
	}
	return cw.Close()
}

// ReadSnapshot loads a frame from a snapshot written by Frame.Snapshot.
func ReadSnapshot(r io.Reader, optFns ...Option) (*Frame, error) {
	codecName, err := readSnapshotHeader(r)
	if err != nil {
		return nil, err
	}

	c, ok := codec.ByName(codecName)
	if !ok {
		return nil, fmt.Errorf("snapshot: unknown codec %q", codecName)
	}

	cr, err := c.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("snapshot: codec reader: %w", err)
	}
	defer cr.Close()

	var payload snapshotPayload
	if err := json.NewDecoder(cr).Decode(&payload); err != nil {
		return nil, fmt.Errorf("snapshot: decode payload: %w", err)
	}

	f := New(payload.NumEvents, optFns...)
	for _, col := range payload.Columns {
		if err := addSnapshotColumn(f, col); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func addSnapshotColumn(f *Frame, col snapshotColumn) error {
	switch col.Kind {
	case kindFloat32:
		return unmarshalColumn[float32](f, col)
	case kindFloat64:
		return unmarshalColumn[float64](f, col)
	case kindInt32:
		return unmarshalColumn[int32](f, col)
	case kindUint8:
		return unmarshalColumn[uint8](f, col)
	case kindBool:
		return unmarshalColumn[bool](f, col)
	case kindFloat32s:
		return unmarshalColumn[[]float32](f, col)
	case kindInt32s:
		return unmarshalColumn[[]int32](f, col)
	case kindFourVec:
		return unmarshalColumn[lorentz.PtEtaPhiM](f, col)
	default:
		return fmt.Errorf("snapshot: column %q: unknown kind %q", col.Name, col.Kind)
	}
}

func unmarshalColumn[T any](f *Frame, col snapshotColumn) error {
	var data []T
	if err := json.Unmarshal(col.Values, &data); err != nil {
		return fmt.Errorf("snapshot: column %q: %w", col.Name, err)
	}
	return AddColumn(f, col.Name, data)
}

func writeSnapshotHeader(w io.Writer, codecName string) error {
	if _, err := w.Write(snapshotMagic[:]); err != nil {
		return fmt.Errorf("snapshot: write magic: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, snapshotFormatVersion); err != nil {
		return fmt.Errorf("snapshot: write version: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint16(len(codecName))); err != nil {
		return fmt.Errorf("snapshot: write codec name length: %w", err)
	}
	if _, err := io.WriteString(w, codecName); err != nil {
		return fmt.Errorf("snapshot: write codec name: %w", err)
	}
	return nil
}

func readSnapshotHeader(r io.Reader) (string, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return "", fmt.Errorf("snapshot: read magic: %w", err)
	}
	if magic != snapshotMagic {
		return "", fmt.Errorf("snapshot: bad magic %q", magic[:])
	}

	var version uint16
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return "", fmt.Errorf("snapshot: read version: %w", err)
	}
	if version != snapshotFormatVersion {
		return "", fmt.Errorf("snapshot: unsupported format version %d", version)
	}

	var nameLen uint16
	if err := binary.Read(r, binary.LittleEndian, &nameLen); err != nil {
		return "", fmt.Errorf("snapshot: read codec name length: %w", err)
	}
	name := make([]byte, nameLen)
	if _, err := io.ReadFull(r, name); err != nil {
		return "", fmt.Errorf("snapshot: read codec name: %w", err)
	}
	return string(name), nil
}
