package model

import (
	"fmt"
	"regexp"

	"github.com/ironsweet/golucene/core/store"
)

/*
Information about a segment such as it's name, directory, and files
related to the segment.
*/
type SegmentInfo struct {
	Dir      store.Directory
	Name     string
	docCount int

	*AttributesMixin
}

var SEGMENT_NAME_PATTERN = regexp.MustCompile("^_[a-z0-9]+$")

func NewSegmentInfo(dir store.Directory, name string, docCount int,
	attributes map[string]string) *SegmentInfo {
	assert2(SEGMENT_NAME_PATTERN.MatchString(name),
		"invalid segment name '%v', must match: %v", name, SEGMENT_NAME_PATTERN)
	assert2(docCount >= 0, "docCount must be >= 0 (got %v)", docCount)
	return &SegmentInfo{
		Dir:             dir,
		Name:            name,
		docCount:        docCount,
		AttributesMixin: &AttributesMixin{attributes},
	}
}

/* Number of documents in this segment, deleted or not. */
func (si *SegmentInfo) DocCount() int {
	return si.docCount
}

func (si *SegmentInfo) String() string {
	return fmt.Sprintf("%v(%v docs)", si.Name, si.docCount)
}
