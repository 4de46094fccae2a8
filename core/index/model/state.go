package model

import (
	"strings"

	"github.com/ironsweet/golucene/core/store"
)

/* Holder class for common parameters used during write. */
type SegmentWriteState struct {
	Directory     store.Directory
	SegmentInfo   *SegmentInfo
	FieldInfos    FieldInfos
	SegmentSuffix string
	Context       store.IOContext
}

func NewSegmentWriteState(dir store.Directory, segmentInfo *SegmentInfo,
	fieldInfos FieldInfos, ctx store.IOContext) *SegmentWriteState {
	return NewSegmentWriteState2(dir, segmentInfo, fieldInfos, ctx, "")
}

func NewSegmentWriteState2(dir store.Directory, segmentInfo *SegmentInfo,
	fieldInfos FieldInfos, ctx store.IOContext, segmentSuffix string) *SegmentWriteState {
	assertTrue(assertSegmentSuffix(segmentSuffix))
	return &SegmentWriteState{
		Directory:     dir,
		SegmentInfo:   segmentInfo,
		FieldInfos:    fieldInfos,
		SegmentSuffix: segmentSuffix,
		Context:       ctx,
	}
}

/* Create a shallow copy of SegmentWriteState with a new segment suffix. */
func NewSegmentWriteStateFrom(state *SegmentWriteState, segmentSuffix string) *SegmentWriteState {
	assertTrue(assertSegmentSuffix(segmentSuffix))
	ans := *state
	ans.SegmentSuffix = segmentSuffix
	return &ans
}

func assertSegmentSuffix(segmentSuffix string) bool {
	if len(segmentSuffix) == 0 {
		return true
	}
	numParts := len(strings.SplitN(segmentSuffix, "_", 3))
	assert2(numParts <= 2, "invalid segmentSuffix: %v", segmentSuffix)
	return true
}

/* Holder class for common parameters used during read. */
type SegmentReadState struct {
	Dir           store.Directory
	SegmentInfo   *SegmentInfo
	FieldInfos    FieldInfos
	Context       store.IOContext
	SegmentSuffix string
}

func NewSegmentReadState(dir store.Directory, info *SegmentInfo,
	fieldInfos FieldInfos, context store.IOContext) SegmentReadState {
	return SegmentReadState{dir, info, fieldInfos, context, ""}
}

/* Create a SegmentReadState for the same segment under another suffix. */
func NewSegmentReadStateFrom(other SegmentReadState, newSegmentSuffix string) SegmentReadState {
	other.SegmentSuffix = newSegmentSuffix
	return other
}
