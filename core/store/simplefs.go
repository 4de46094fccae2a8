package store

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/ironsweet/golucene/core/util"
)

/*
A straightforward implementation of Directory using plain files under
a single path. Reads go through os.File.ReadAt, so concurrent inputs
over the same file do not share a position.
*/
type SimpleFSDirectory struct {
	path string
}

/* Creates the directory at path if it doesn't exist yet. */
func NewSimpleFSDirectory(path string) (d *SimpleFSDirectory, err error) {
	if path, err = filepath.Abs(path); err != nil {
		return nil, err
	}
	if err = os.MkdirAll(path, 0755); err != nil {
		return nil, err
	}
	return &SimpleFSDirectory{path: path}, nil
}

func (d *SimpleFSDirectory) Path() string {
	return d.path
}

func (d *SimpleFSDirectory) ListAll() (paths []string, err error) {
	entries, err := os.ReadDir(d.path)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			paths = append(paths, entry.Name())
		}
	}
	sort.Strings(paths)
	return paths, nil
}

func (d *SimpleFSDirectory) FileExists(name string) bool {
	_, err := os.Stat(filepath.Join(d.path, name))
	return err == nil
}

func (d *SimpleFSDirectory) DeleteFile(name string) error {
	return os.Remove(filepath.Join(d.path, name))
}

func (d *SimpleFSDirectory) FileLength(name string) (n int64, err error) {
	fi, err := os.Stat(filepath.Join(d.path, name))
	if err != nil {
		return 0, err
	}
	return fi.Size(), nil
}

func (d *SimpleFSDirectory) CreateOutput(name string, ctx IOContext) (out IndexOutput, err error) {
	f, err := os.OpenFile(filepath.Join(d.path, name), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	return newFSIndexOutput(f), nil
}

func (d *SimpleFSDirectory) OpenInput(name string, ctx IOContext) (in IndexInput, err error) {
	f, err := os.Open(filepath.Join(d.path, name))
	if err != nil {
		return nil, err
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	return newSimpleFSIndexInput(f, fi.Size()), nil
}

func (d *SimpleFSDirectory) Close() error {
	return nil
}

func (d *SimpleFSDirectory) String() string {
	return fmt.Sprintf("SimpleFSDirectory@%v", d.path)
}

type fsIndexOutput struct {
	*util.DataOutputImpl
	file   *os.File
	writer *bufio.Writer
	pos    int64
}

func newFSIndexOutput(f *os.File) *fsIndexOutput {
	ans := &fsIndexOutput{file: f, writer: bufio.NewWriter(f)}
	ans.DataOutputImpl = util.NewDataOutput(ans)
	return ans
}

func (out *fsIndexOutput) WriteByte(b byte) error {
	if err := out.writer.WriteByte(b); err != nil {
		return err
	}
	out.pos++
	return nil
}

func (out *fsIndexOutput) WriteBytes(buf []byte) error {
	n, err := out.writer.Write(buf)
	out.pos += int64(n)
	return err
}

func (out *fsIndexOutput) FilePointer() int64 {
	return out.pos
}

func (out *fsIndexOutput) Close() error {
	return errors.Join(out.writer.Flush(), out.file.Close())
}

func (out *fsIndexOutput) String() string {
	return fmt.Sprintf("FSIndexOutput(path=%v)", out.file.Name())
}

type simpleFSIndexInput struct {
	*util.DataInputImpl
	file   *os.File
	length int64
	pos    int64
}

func newSimpleFSIndexInput(f *os.File, length int64) *simpleFSIndexInput {
	ans := &simpleFSIndexInput{file: f, length: length}
	ans.DataInputImpl = util.NewDataInput(ans)
	return ans
}

func (in *simpleFSIndexInput) ReadByte() (b byte, err error) {
	var buf [1]byte
	if err = in.ReadBytes(buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

func (in *simpleFSIndexInput) ReadBytes(buf []byte) error {
	if in.pos+int64(len(buf)) > in.length {
		return fmt.Errorf("read past EOF: %v: %w", in, io.ErrUnexpectedEOF)
	}
	n, err := in.file.ReadAt(buf, in.pos)
	in.pos += int64(n)
	if err != nil && !(err == io.EOF && n == len(buf)) {
		return err
	}
	return nil
}

func (in *simpleFSIndexInput) FilePointer() int64 {
	return in.pos
}

func (in *simpleFSIndexInput) Seek(pos int64) error {
	if pos < 0 || pos > in.length {
		return fmt.Errorf("seek to %v out of bounds: %v", pos, in)
	}
	in.pos = pos
	return nil
}

func (in *simpleFSIndexInput) Length() int64 {
	return in.length
}

func (in *simpleFSIndexInput) Close() error {
	return in.file.Close()
}

func (in *simpleFSIndexInput) String() string {
	return fmt.Sprintf("SimpleFSIndexInput(path=%v)", in.file.Name())
}
