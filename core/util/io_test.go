package util

import (
	"errors"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sliceWriter struct{ buf []byte }

func (w *sliceWriter) WriteByte(b byte) error {
	w.buf = append(w.buf, b)
	return nil
}

func (w *sliceWriter) WriteBytes(buf []byte) error {
	w.buf = append(w.buf, buf...)
	return nil
}

type sliceReader struct {
	buf []byte
	pos int
}

func (r *sliceReader) ReadByte() (byte, error) {
	if r.pos >= len(r.buf) {
		return 0, io.EOF
	}
	r.pos++
	return r.buf[r.pos-1], nil
}

func (r *sliceReader) ReadBytes(buf []byte) error {
	if r.pos+len(buf) > len(r.buf) {
		return io.ErrUnexpectedEOF
	}
	r.pos += copy(buf, r.buf[r.pos:])
	return nil
}

func TestDataRoundTrip(t *testing.T) {
	w := &sliceWriter{}
	out := NewDataOutput(w)
	require.NoError(t, out.WriteInt(0x3fd76c17))
	require.NoError(t, out.WriteInt(-7))
	require.NoError(t, out.WriteVInt(0))
	require.NoError(t, out.WriteVInt(127))
	require.NoError(t, out.WriteVInt(128))
	require.NoError(t, out.WriteVInt(math.MaxInt32))
	require.NoError(t, out.WriteVInt(-1))
	require.NoError(t, out.WriteLong(math.MinInt64))
	require.NoError(t, out.WriteVLong(math.MaxInt64))
	require.NoError(t, out.WriteString("RAMOnly"))
	require.NoError(t, out.WriteString("héllo"))

	in := NewDataInput(&sliceReader{buf: w.buf})
	n, err := in.ReadInt()
	require.NoError(t, err)
	assert.Equal(t, int32(0x3fd76c17), n)
	n, _ = in.ReadInt()
	assert.Equal(t, int32(-7), n)
	for _, want := range []int32{0, 127, 128, math.MaxInt32, -1} {
		v, err := in.ReadVInt()
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
	l, err := in.ReadLong()
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt64), l)
	vl, err := in.ReadVLong()
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), vl)
	s, err := in.ReadString()
	require.NoError(t, err)
	assert.Equal(t, "RAMOnly", s)
	s, _ = in.ReadString()
	assert.Equal(t, "héllo", s)

	_, err = in.ReadInt()
	assert.Error(t, err)
}

func TestVIntSizes(t *testing.T) {
	w := &sliceWriter{}
	out := NewDataOutput(w)
	require.NoError(t, out.WriteVInt(16383))
	assert.Len(t, w.buf, 2)
	require.NoError(t, out.WriteVInt(16384))
	assert.Len(t, w.buf, 5)
}

func TestReadStringTruncated(t *testing.T) {
	w := &sliceWriter{}
	require.NoError(t, NewDataOutput(w).WriteString("truncated"))
	in := NewDataInput(&sliceReader{buf: w.buf[:4]})
	_, err := in.ReadString()
	assert.Error(t, err)
}

type closer struct {
	err    error
	closed bool
}

func (c *closer) Close() error {
	c.closed = true
	return c.err
}

type deleter []string

func (d *deleter) DeleteFile(name string) error {
	*d = append(*d, name)
	return errors.New("gone")
}

func TestCloseHelpers(t *testing.T) {
	errA, errB := errors.New("a"), errors.New("b")
	a, b, ok := &closer{err: errA}, &closer{err: errB}, &closer{}

	err := Close(a, nil, ok, b)
	assert.True(t, errors.Is(err, errA))
	assert.True(t, errors.Is(err, errB))
	assert.True(t, ok.closed)
	assert.NoError(t, Close(&closer{}, nil))

	prior := errors.New("prior")
	assert.Equal(t, prior, CloseWhileHandlingError(prior, &closer{err: errA}))
	assert.Equal(t, errA, CloseWhileHandlingError(nil, &closer{}, &closer{err: errA}, &closer{err: errB}))
	assert.NoError(t, CloseWhileHandlingError(nil, nil, &closer{}))

	c := &closer{err: errA}
	CloseWhileSuppressingError(nil, c)
	assert.True(t, c.closed)

	var d deleter
	DeleteFilesIgnoringErrors(&d, "x", "y")
	assert.Equal(t, deleter{"x", "y"}, d)
}
