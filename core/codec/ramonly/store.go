package ramonly

import (
	"fmt"

	"github.com/ryszard/goskiplist/skiplist"

	. "github.com/ironsweet/golucene/core/index/model"
	"github.com/ironsweet/golucene/core/util"
)

/*
SegmentStore holds the postings of one segment: field name to field
entry, ordered by field name. It is built by a single writer and is
read-only once registered.
*/
type SegmentStore struct {
	fields *skiplist.SkipList // string -> *fieldEntry
}

func newSegmentStore() *SegmentStore {
	return &SegmentStore{fields: skiplist.NewStringMap()}
}

func (s *SegmentStore) field(name string) *fieldEntry {
	if v, ok := s.fields.Get(name); ok {
		return v.(*fieldEntry)
	}
	return nil
}

/* Field names in ascending order. */
func (s *SegmentStore) FieldNames() []string {
	ans := make([]string, 0, s.fields.Len())
	for it := s.fields.Iterator(); it.Next(); {
		ans = append(ans, it.Key().(string))
	}
	return ans
}

func (s *SegmentStore) Size() int {
	return s.fields.Len()
}

/* Estimated heap held by the postings of this segment. */
func (s *SegmentStore) RamBytesUsed() (size int64) {
	for it := s.fields.Iterator(); it.Next(); {
		size += util.SizeOf(it.Key().(string)) + it.Value().(*fieldEntry).ramBytesUsed()
	}
	return size
}

func (s *SegmentStore) String() string {
	return fmt.Sprintf("SegmentStore(fields=%v)", s.FieldNames())
}

type fieldEntry struct {
	info *FieldInfo
	less func(a, b []byte) bool
	// term text -> *termEntry, ordered by less
	terms *skiplist.SkipList

	sumTotalTermFreq int64
	sumDocFreq       int64
	docCount         int

	hasFreqs     bool
	hasPositions bool
	hasOffsets   bool
	hasPayloads  bool
}

func newFieldEntry(info *FieldInfo, less func(a, b []byte) bool) *fieldEntry {
	return &fieldEntry{
		info: info,
		less: less,
		terms: skiplist.NewCustomMap(func(l, r interface{}) bool {
			return less([]byte(l.(string)), []byte(r.(string)))
		}),
		hasFreqs:     info.HasFreqs(),
		hasPositions: info.HasPositions(),
		hasOffsets:   info.HasOffsets(),
		hasPayloads:  info.HasPayloads(),
	}
}

func (f *fieldEntry) name() string {
	return f.info.Name
}

func (f *fieldEntry) ramBytesUsed() (size int64) {
	for it := f.terms.Iterator(); it.Next(); {
		size += util.SizeOf(it.Key().(string)) + it.Value().(*termEntry).ramBytesUsed()
	}
	return size
}

type termEntry struct {
	term          []byte
	docs          []*docEntry
	totalTermFreq int64
}

func (t *termEntry) key() string {
	return string(t.term)
}

func (t *termEntry) ramBytesUsed() int64 {
	size := util.SizeOf(t.term) + util.NUM_BYTES_SLICE_HEADER +
		util.AlignObjectSize(util.NUM_BYTES_POINTER*int64(cap(t.docs)))
	for _, doc := range t.docs {
		size += doc.ramBytesUsed()
	}
	return size
}

type docEntry struct {
	docId int
	freq  int
	// one slot per occurrence; nil unless the field indexes positions
	positions []int
	// allocated with the first non-empty payload, nil slots elsewhere
	payloads [][]byte
}

func (d *docEntry) ramBytesUsed() int64 {
	size := int64(2*util.NUM_BYTES_INT) + util.SizeOf(d.positions)
	if d.payloads != nil {
		size += util.SizeOf(d.payloads)
	}
	return util.AlignObjectSize(size)
}
