package store

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/ironsweet/golucene/core/util"
)

/*
A memory-resident Directory implementation.

This class is optimized for small memory-resident indexes, e.g. the
side-channel blobs of in-memory codecs and tests. Everything lives in
process memory and is lost on Close().
*/
type RAMDirectory struct {
	fileMapLock sync.RWMutex
	fileMap     map[string]*RAMFile
	sizeInBytes int64
	isOpen      bool
}

func NewRAMDirectory() *RAMDirectory {
	return &RAMDirectory{
		fileMap: make(map[string]*RAMFile),
		isOpen:  true,
	}
}

func (rd *RAMDirectory) ensureOpen() {
	assert2(rd.isOpen, "this Directory is closed")
}

func (rd *RAMDirectory) ListAll() (names []string, err error) {
	rd.fileMapLock.RLock()
	defer rd.fileMapLock.RUnlock()
	rd.ensureOpen()
	names = make([]string, 0, len(rd.fileMap))
	for name := range rd.fileMap {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Returns true iff the named file exists in this directory
func (rd *RAMDirectory) FileExists(name string) bool {
	rd.fileMapLock.RLock()
	defer rd.fileMapLock.RUnlock()
	rd.ensureOpen()
	_, ok := rd.fileMap[name]
	return ok
}

// Returns the length in bytes of a file in the directory.
func (rd *RAMDirectory) FileLength(name string) (length int64, err error) {
	rd.fileMapLock.RLock()
	defer rd.fileMapLock.RUnlock()
	rd.ensureOpen()
	file, ok := rd.fileMap[name]
	if !ok {
		return 0, fileNotFound(name, rd)
	}
	return file.Length(), nil
}

// Removes an existing file in the directory
func (rd *RAMDirectory) DeleteFile(name string) error {
	rd.fileMapLock.Lock()
	defer rd.fileMapLock.Unlock()
	rd.ensureOpen()
	file, ok := rd.fileMap[name]
	if !ok {
		return fileNotFound(name, rd)
	}
	delete(rd.fileMap, name)
	rd.sizeInBytes -= file.detach()
	return nil
}

// Creates a new, empty file in the directory with the given name.
// Returns a stream writing this file. An existing file of the same
// name is replaced.
func (rd *RAMDirectory) CreateOutput(name string, context IOContext) (out IndexOutput, err error) {
	rd.fileMapLock.Lock()
	defer rd.fileMapLock.Unlock()
	rd.ensureOpen()
	if existing, ok := rd.fileMap[name]; ok {
		rd.sizeInBytes -= existing.detach()
	}
	file := newRAMFile(rd)
	rd.fileMap[name] = file
	return newRAMOutputStream(name, file), nil
}

// Returns a stream reading an existing file.
func (rd *RAMDirectory) OpenInput(name string, context IOContext) (in IndexInput, err error) {
	rd.fileMapLock.RLock()
	defer rd.fileMapLock.RUnlock()
	rd.ensureOpen()
	file, ok := rd.fileMap[name]
	if !ok {
		return nil, fileNotFound(name, rd)
	}
	return newRAMInputStream(name, file), nil
}

/* Returns the total size in bytes of all files in this directory. */
func (rd *RAMDirectory) RamBytesUsed() int64 {
	rd.fileMapLock.RLock()
	defer rd.fileMapLock.RUnlock()
	return rd.sizeInBytes
}

// Closes the store to future operations, releasing associated memroy.
func (rd *RAMDirectory) Close() error {
	rd.fileMapLock.Lock()
	defer rd.fileMapLock.Unlock()
	rd.isOpen = false
	rd.fileMap = make(map[string]*RAMFile)
	rd.sizeInBytes = 0
	return nil
}

func (rd *RAMDirectory) String() string {
	return fmt.Sprintf("RAMDirectory@%p", rd)
}

func (rd *RAMDirectory) grow(n int64) {
	rd.fileMapLock.Lock()
	defer rd.fileMapLock.Unlock()
	rd.sizeInBytes += n
}

// Represents a file in RAM as a growable []byte buffer.
type RAMFile struct {
	sync.Mutex
	buffer    []byte
	directory *RAMDirectory
}

func newRAMFile(directory *RAMDirectory) *RAMFile {
	return &RAMFile{directory: directory}
}

func (rf *RAMFile) Length() int64 {
	rf.Lock()
	defer rf.Unlock()
	return int64(len(rf.buffer))
}

// Unlinks the file from its directory, returning its length.
func (rf *RAMFile) detach() int64 {
	rf.Lock()
	defer rf.Unlock()
	rf.directory = nil
	return int64(len(rf.buffer))
}

func (rf *RAMFile) append(b []byte) {
	rf.Lock()
	rf.buffer = append(rf.buffer, b...)
	dir := rf.directory
	rf.Unlock()
	if dir != nil {
		dir.grow(int64(len(b)))
	}
}

func (rf *RAMFile) readAt(buf []byte, pos int64) int {
	rf.Lock()
	defer rf.Unlock()
	if pos >= int64(len(rf.buffer)) {
		return 0
	}
	return copy(buf, rf.buffer[pos:])
}

// A memory-resident IndexOutput implementation.
type RAMOutputStream struct {
	*util.DataOutputImpl
	name   string
	file   *RAMFile
	pos    int64
	closed bool
}

func newRAMOutputStream(name string, f *RAMFile) *RAMOutputStream {
	ans := &RAMOutputStream{name: name, file: f}
	ans.DataOutputImpl = util.NewDataOutput(ans)
	return ans
}

func (out *RAMOutputStream) WriteByte(b byte) error {
	return out.WriteBytes([]byte{b})
}

func (out *RAMOutputStream) WriteBytes(buf []byte) error {
	if out.closed {
		return fmt.Errorf("write to closed output: %v", out)
	}
	out.file.append(buf)
	out.pos += int64(len(buf))
	return nil
}

func (out *RAMOutputStream) FilePointer() int64 {
	return out.pos
}

func (out *RAMOutputStream) Close() error {
	out.closed = true
	return nil
}

func (out *RAMOutputStream) String() string {
	return fmt.Sprintf("RAMOutputStream(name=%v)", out.name)
}

// A memory-resident IndexInput implementation.
type RAMInputStream struct {
	*util.DataInputImpl
	name   string
	file   *RAMFile
	length int64
	pos    int64
}

func newRAMInputStream(name string, f *RAMFile) *RAMInputStream {
	ans := &RAMInputStream{name: name, file: f, length: f.Length()}
	ans.DataInputImpl = util.NewDataInput(ans)
	return ans
}

func (in *RAMInputStream) ReadByte() (b byte, err error) {
	var buf [1]byte
	if err = in.ReadBytes(buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

func (in *RAMInputStream) ReadBytes(buf []byte) error {
	if in.pos+int64(len(buf)) > in.length {
		return fmt.Errorf("read past EOF: %v: %w", in, io.ErrUnexpectedEOF)
	}
	in.pos += int64(in.file.readAt(buf, in.pos))
	return nil
}

func (in *RAMInputStream) FilePointer() int64 {
	return in.pos
}

func (in *RAMInputStream) Seek(pos int64) error {
	if pos < 0 || pos > in.length {
		return fmt.Errorf("seek to %v out of bounds: %v", pos, in)
	}
	in.pos = pos
	return nil
}

func (in *RAMInputStream) Length() int64 {
	return in.length
}

func (in *RAMInputStream) Close() error {
	return nil
}

func (in *RAMInputStream) String() string {
	return fmt.Sprintf("RAMInputStream(name=%v)", in.name)
}
