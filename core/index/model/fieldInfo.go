package model

import (
	"fmt"
)

type FieldInfo struct {
	// Field's name
	Name string
	// Internal field number
	Number int32

	indexed       bool
	indexOptions  IndexOptions
	storePayloads bool

	*AttributesMixin
}

func NewFieldInfo(name string, indexed bool, number int32, storePayloads bool,
	indexOptions IndexOptions, attributes map[string]string) *FieldInfo {
	fi := &FieldInfo{Name: name, indexed: indexed, Number: number}
	fi.AttributesMixin = &AttributesMixin{attributes}
	if indexed {
		fi.storePayloads = storePayloads
		fi.indexOptions = indexOptions
	} // for non-indexed fields, leave defaults
	assertTrue(fi.checkConsistency())
	return fi
}

func (info *FieldInfo) checkConsistency() bool {
	if !info.indexed {
		return !info.storePayloads && info.indexOptions == 0
	}
	assert2(info.indexOptions >= INDEX_OPT_DOCS_ONLY &&
		info.indexOptions <= INDEX_OPT_DOCS_AND_FREQS_AND_POSITIONS_AND_OFFSETS,
		"indexed field '%v' must have valid IndexOptions (got %v)", info.Name, info.indexOptions)
	// cannot store payloads unless positions are indexed:
	assert2(info.indexOptions >= INDEX_OPT_DOCS_AND_FREQS_AND_POSITIONS || !info.storePayloads,
		"indexed field '%v' cannot have payloads without positions", info.Name)
	return true
}

/* Returns IndexOptions for the field, or 0 if the field is not indexed */
func (info *FieldInfo) IndexOptions() IndexOptions { return info.indexOptions }

/* Returns true if this field is indexed. */
func (info *FieldInfo) IsIndexed() bool { return info.indexed }

/* Returns true if any payloads exist for this field. */
func (info *FieldInfo) HasPayloads() bool { return info.storePayloads }

/* Returns true if term frequencies are indexed for this field. */
func (info *FieldInfo) HasFreqs() bool {
	return info.indexOptions >= INDEX_OPT_DOCS_AND_FREQS
}

/* Returns true if positions are indexed for this field. */
func (info *FieldInfo) HasPositions() bool {
	return info.indexOptions >= INDEX_OPT_DOCS_AND_FREQS_AND_POSITIONS
}

/* Returns true if character offsets are indexed for this field. */
func (info *FieldInfo) HasOffsets() bool {
	return info.indexOptions >= INDEX_OPT_DOCS_AND_FREQS_AND_POSITIONS_AND_OFFSETS
}

func (fi *FieldInfo) String() string {
	return fmt.Sprintf("%v-%v, isIndexed=%v, indexOptions=%v, hasPayloads=%v, attributes=%v",
		fi.Number, fi.Name, fi.indexed, fi.indexOptions, fi.storePayloads, fi.attributes)
}

type IndexOptions int

const (
	INDEX_OPT_DOCS_ONLY                                = IndexOptions(1)
	INDEX_OPT_DOCS_AND_FREQS                           = IndexOptions(2)
	INDEX_OPT_DOCS_AND_FREQS_AND_POSITIONS             = IndexOptions(3)
	INDEX_OPT_DOCS_AND_FREQS_AND_POSITIONS_AND_OFFSETS = IndexOptions(4)
)

func (opts IndexOptions) String() string {
	switch opts {
	case 0:
		return "NOT_INDEXED"
	case INDEX_OPT_DOCS_ONLY:
		return "DOCS_ONLY"
	case INDEX_OPT_DOCS_AND_FREQS:
		return "DOCS_AND_FREQS"
	case INDEX_OPT_DOCS_AND_FREQS_AND_POSITIONS:
		return "DOCS_AND_FREQS_AND_POSITIONS"
	case INDEX_OPT_DOCS_AND_FREQS_AND_POSITIONS_AND_OFFSETS:
		return "DOCS_AND_FREQS_AND_POSITIONS_AND_OFFSETS"
	}
	return fmt.Sprintf("IndexOptions(%d)", int(opts))
}

func assertTrue(ok bool) {
	assert2(ok, "assert fail")
}

func assert2(ok bool, msg string, args ...interface{}) {
	if !ok {
		panic(fmt.Sprintf(msg, args...))
	}
}
