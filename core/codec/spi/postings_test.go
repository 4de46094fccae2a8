package spi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/ironsweet/golucene/core/index/model"
)

type fakeFormat struct {
	*PostingsFormatImpl
}

func (f *fakeFormat) FieldsConsumer(state *SegmentWriteState) (FieldsConsumer, error) {
	return nil, nil
}

func (f *fakeFormat) FieldsProducer(state SegmentReadState) (FieldsProducer, error) {
	return nil, nil
}

func TestPostingsFormatRegistry(t *testing.T) {
	format := &fakeFormat{NewPostingsFormatImpl("Fake")}
	RegisterPostingsFormat(format)

	got, err := LoadPostingsFormat("Fake")
	require.NoError(t, err)
	assert.Same(t, format, got)
	assert.Contains(t, AvailablePostingsFormats(), "Fake")
	assert.Equal(t, "PostingsFormat(name=Fake)", format.String())

	_, err = LoadPostingsFormat("Missing")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Fake")
}
