package nanoflow

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/nanoflow/codec"
	"github.com/hupe1980/nanoflow/lorentz"
)

func snapshotFixture(t *testing.T) *Frame {
	t.Helper()

	f := New(3)
	require.NoError(t, AddColumn(f, "pt", []float32{10, 20, 30}))
	require.NoError(t, AddColumn(f, "charge", []int32{1, -1, 1}))
	require.NoError(t, AddColumn(f, "genmatch", []uint8{5, 0, 3}))
	require.NoError(t, AddColumn(f, "passed", []bool{true, false, true}))
	require.NoError(t, AddColumn(f, "pair", [][]int32{{0, 1}, {1, 0}, {-1, -1}}))
	require.NoError(t, AddColumn(f, "iso", [][]float32{{0.1}, {0.2, 0.3}, {}}))
	require.NoError(t, AddColumn(f, "p4", []lorentz.PtEtaPhiM{
		{Pt: 40, Eta: 1.0, Phi: 0.5, M: 0.1},
		{Pt: -10},
		{Pt: 30, Eta: -0.5, Phi: 2.0, M: 0.1},
	}))
	return f
}

func TestSnapshotRoundTrip(t *testing.T) {
	codecs := []codec.Codec{codec.Zstd{}, codec.LZ4{}}

	for _, c := range codecs {
		t.Run(c.Name(), func(t *testing.T) {
			f := snapshotFixture(t)

			var buf bytes.Buffer
			require.NoError(t, f.Snapshot(&buf, nil, WithSnapshotCodec(c)))

			got, err := ReadSnapshot(&buf)
			require.NoError(t, err)

			assert.Equal(t, f.NumEvents(), got.NumEvents())
			assert.Equal(t, f.ColumnNames(), got.ColumnNames())

			pt, err := ColumnValues[float32](got, "pt")
			require.NoError(t, err)
			assert.Equal(t, []float32{10, 20, 30}, pt)

			charge, err := ColumnValues[int32](got, "charge")
			require.NoError(t, err)
			assert.Equal(t, []int32{1, -1, 1}, charge)

			genmatch, err := ColumnValues[uint8](got, "genmatch")
			require.NoError(t, err)
			assert.Equal(t, []uint8{5, 0, 3}, genmatch)

			passed, err := ColumnValues[bool](got, "passed")
			require.NoError(t, err)
			assert.Equal(t, []bool{true, false, true}, passed)

			pair, err := ColumnValues[[]int32](got, "pair")
			require.NoError(t, err)
			assert.Equal(t, [][]int32{{0, 1}, {1, 0}, {-1, -1}}, pair)

			p4, err := ColumnValues[lorentz.PtEtaPhiM](got, "p4")
			require.NoError(t, err)
			assert.Equal(t, lorentz.PtEtaPhiM{Pt: -10}, p4[1])
			assert.InDelta(t, 40.0, p4[0].Pt, 1e-12)
		})
	}
}

func TestSnapshotColumnSubset(t *testing.T) {
	f := snapshotFixture(t)

	var buf bytes.Buffer
	require.NoError(t, f.Snapshot(&buf, []string{"pt", "charge"}))

	got, err := ReadSnapshot(&buf)
	require.NoError(t, err)
	assert.Equal(t, []string{"pt", "charge"}, got.ColumnNames())
}

func TestSnapshotWithMask(t *testing.T) {
	f := snapshotFixture(t)

	_, err := Filter1(f, "hard", func(pt float32) bool { return pt > 15 }, "pt")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.Snapshot(&buf, []string{"pt", "p4"}, WithSnapshotMask("hard")))

	got, err := ReadSnapshot(&buf)
	require.NoError(t, err)
	assert.Equal(t, 2, got.NumEvents())

	pt, err := ColumnValues[float32](got, "pt")
	require.NoError(t, err)
	assert.Equal(t, []float32{20, 30}, pt)
}

func TestSnapshotUnknownColumn(t *testing.T) {
	f := snapshotFixture(t)

	var buf bytes.Buffer
	err := f.Snapshot(&buf, []string{"nope"})
	assert.ErrorIs(t, err, ErrColumnNotFound)
}

func TestSnapshotUnknownMask(t *testing.T) {
	f := snapshotFixture(t)

	var buf bytes.Buffer
	err := f.Snapshot(&buf, nil, WithSnapshotMask("nope"))
	assert.ErrorIs(t, err, ErrMaskNotFound)
}

func TestReadSnapshotBadMagic(t *testing.T) {
	_, err := ReadSnapshot(bytes.NewReader([]byte("XXXX rest of the file")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad magic")
}

func TestReadSnapshotTruncated(t *testing.T) {
	f := snapshotFixture(t)

	var buf bytes.Buffer
	require.NoError(t, f.Snapshot(&buf, nil))

	_, err := ReadSnapshot(bytes.NewReader(buf.Bytes()[:8]))
	assert.Error(t, err)
}
