package model

import (
	"fmt"
	"sort"
)

// Collection of FieldInfo(s) (accessible by number of by name)
type FieldInfos struct {
	HasFreq     bool
	HasProx     bool
	HasPayloads bool
	HasOffsets  bool

	byNumber map[int32]*FieldInfo
	byName   map[string]*FieldInfo
	Values   []*FieldInfo // sorted by ID
}

func NewFieldInfos(infos ...*FieldInfo) FieldInfos {
	self := FieldInfos{byNumber: make(map[int32]*FieldInfo), byName: make(map[string]*FieldInfo)}

	for _, info := range infos {
		assert2(info.Number >= 0, "illegal field number: %v for field %v", info.Number, info.Name)
		if prev, ok := self.byNumber[info.Number]; ok {
			panic(fmt.Sprintf("duplicate field numbers: %v and %v have: %v", prev.Name, info.Name, info.Number))
		}
		self.byNumber[info.Number] = info
		if prev, ok := self.byName[info.Name]; ok {
			panic(fmt.Sprintf("duplicate field names: %v and %v have: %v", prev.Number, info.Number, info.Name))
		}
		self.byName[info.Name] = info

		self.HasProx = self.HasProx || info.indexed && info.HasPositions()
		self.HasFreq = self.HasFreq || info.indexed && info.HasFreqs()
		self.HasOffsets = self.HasOffsets || info.indexed && info.HasOffsets()
		self.HasPayloads = self.HasPayloads || info.storePayloads
	}

	self.Values = make([]*FieldInfo, 0, len(infos))
	for _, info := range self.byNumber {
		self.Values = append(self.Values, info)
	}
	sort.Slice(self.Values, func(i, j int) bool {
		return self.Values[i].Number < self.Values[j].Number
	})
	return self
}

/* Returns the number of fields */
func (infos FieldInfos) Size() int {
	assertTrue(len(infos.byNumber) == len(infos.byName))
	return len(infos.byNumber)
}

/* Return the FieldInfo object referenced by the field name */
func (infos FieldInfos) FieldInfoByName(fieldName string) *FieldInfo {
	return infos.byName[fieldName]
}

/* Return the FieldInfo object referenced by the fieldNumber. */
func (infos FieldInfos) FieldInfoByNumber(fieldNumber int) *FieldInfo {
	assert2(fieldNumber >= 0, "Illegal field number: %v", fieldNumber)
	return infos.byNumber[int32(fieldNumber)]
}

func (fis FieldInfos) String() string {
	return fmt.Sprintf("hasFreq=%v hasProx=%v hasPayloads=%v hasOffsets=%v %v",
		fis.HasFreq, fis.HasProx, fis.HasPayloads, fis.HasOffsets, fis.Values)
}
