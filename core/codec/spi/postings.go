package spi

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/op/go-logging"

	. "github.com/ironsweet/golucene/core/index/model"
)

var log = logging.MustGetLogger("spi")

func init() {
	logging.SetLevel(logging.WARNING, "spi")
}

// codecs/PostingsFormat.java

/*
Encodes/decodes terms, postings, and proximity data.

Note, when extending this class, the name Name() may be written into
the index in certain configurations. In order for the segment to be
read, the name must resolve to your implementation via
LoadPostingsFormat(). Since Go doesn't have Java's SPI locate
mechanism, formats register themselves by name, usually from init().
*/
type PostingsFormat interface {
	// Returns this posting format's name
	Name() string
	// Writes a new segment
	FieldsConsumer(state *SegmentWriteState) (FieldsConsumer, error)
	// Reads a segment. NOTE: by the time this call returns, it must
	// hold open any files it will need to use.
	FieldsProducer(state SegmentReadState) (FieldsProducer, error)
}

type PostingsFormatImpl struct {
	name string
}

func NewPostingsFormatImpl(name string) *PostingsFormatImpl {
	return &PostingsFormatImpl{name}
}

// Returns this posting format's name
func (pf *PostingsFormatImpl) Name() string {
	return pf.name
}

func (pf *PostingsFormatImpl) String() string {
	return fmt.Sprintf("PostingsFormat(name=%v)", pf.name)
}

var (
	formatsLock        sync.RWMutex
	allPostingsFormats = map[string]PostingsFormat{}
)

// workaround Lucene Java's SPI mechanism
func RegisterPostingsFormat(formats ...PostingsFormat) {
	formatsLock.Lock()
	defer formatsLock.Unlock()
	for _, format := range formats {
		log.Debugf("Found postings format: %v", format.Name())
		allPostingsFormats[format.Name()] = format
	}
}

/* looks up a format by name */
func LoadPostingsFormat(name string) (PostingsFormat, error) {
	formatsLock.RLock()
	defer formatsLock.RUnlock()
	if v, ok := allPostingsFormats[name]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("postings format '%v' not found (available: %v)",
		name, availablePostingsFormats())
}

/* Returns a sorted list of all available format names. */
func AvailablePostingsFormats() []string {
	formatsLock.RLock()
	defer formatsLock.RUnlock()
	return availablePostingsFormats()
}

func availablePostingsFormats() []string {
	ans := make([]string, 0, len(allPostingsFormats))
	for name := range allPostingsFormats {
		ans = append(ans, name)
	}
	sort.Strings(ans)
	return ans
}

// codecs/FieldsConsumer.java

/*
Abstract API that consumes terms, doc, freq, prox, offset and
payloads postings. Concrete implementations of this actually do
"something" with the postings (write it into the index in a specific
format).

The lifecycle is:

1. FieldsConsumer is created by PostingsFormat.FieldsConsumer().
2. For each field, AddField() is called, returning a TermsConsumer
for the field.
3. After all fields are added, the consumer is closed.
*/
type FieldsConsumer interface {
	io.Closer
	// Add a new field
	AddField(field *FieldInfo) (TermsConsumer, error)
}

/* Abstract API that produces terms, doc, freq, prox, offset and payloads postings. */
type FieldsProducer interface {
	Fields
	io.Closer
}
