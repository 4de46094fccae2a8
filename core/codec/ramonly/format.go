/*
Package ramonly is a postings format that keeps every segment in
memory. Writing a segment builds a SegmentStore, registers it under a
fresh ID and stamps that ID into a small blob next to the segment;
opening the segment reads the blob back and resolves the ID through
the same Registry. Stores are lost when the process exits.
*/
package ramonly

import (
	"fmt"

	"github.com/op/go-logging"

	. "github.com/ironsweet/golucene/core/codec"
	"github.com/ironsweet/golucene/core/codec/spi"
	. "github.com/ironsweet/golucene/core/index/model"
	"github.com/ironsweet/golucene/core/util"
)

const MODULE = "ramonly"

var log = logging.MustGetLogger(MODULE)

const (
	VERSION_START   = 0
	VERSION_RUN_ID  = 1 // blob carries the registry's run ID
	VERSION_CURRENT = VERSION_RUN_ID
)

// Picks the term order of a field. Terms must be fed to the writer in
// this order.
type TermOrder func(field *FieldInfo) func(a, b []byte) bool

// Every field sorts its terms as unicode code points.
func DefaultTermOrder(field *FieldInfo) func(a, b []byte) bool {
	return util.UTF8SortedAsUnicodeLess
}

type RAMOnlyPostingsFormat struct {
	*spi.PostingsFormatImpl
	config    *Config
	registry  *Registry
	metrics   *Metrics
	termOrder TermOrder
}

/*
Creates a format stamping cfg.Name into its blobs and resolving them
through registry. A nil registry means DefaultRegistry(). Metrics are
dropped when cfg disables them.
*/
func NewPostingsFormat(cfg *Config, registry *Registry, metrics *Metrics) *RAMOnlyPostingsFormat {
	assertTrue(cfg != nil)
	if registry == nil {
		registry = DefaultRegistry()
	}
	if !cfg.Metrics.Enabled {
		metrics = nil
	}
	return &RAMOnlyPostingsFormat{
		PostingsFormatImpl: spi.NewPostingsFormatImpl(cfg.Name),
		config:             cfg,
		registry:           registry,
		metrics:            metrics,
		termOrder:          DefaultTermOrder,
	}
}

// Returns a copy of the format using order for new fields.
func (f *RAMOnlyPostingsFormat) WithTermOrder(order TermOrder) *RAMOnlyPostingsFormat {
	assertTrue(order != nil)
	ans := *f
	ans.termOrder = order
	return &ans
}

func (f *RAMOnlyPostingsFormat) Registry() *Registry {
	return f.registry
}

/* Name of the blob holding the ID of a segment. */
func (f *RAMOnlyPostingsFormat) FileName(segment, suffix string) string {
	return util.SegmentFileName(segment, suffix, f.config.Extension)
}

func (f *RAMOnlyPostingsFormat) FieldsConsumer(state *SegmentWriteState) (spi.FieldsConsumer, error) {
	return newFieldsConsumer(f, state), nil
}

func (f *RAMOnlyPostingsFormat) FieldsProducer(state SegmentReadState) (spi.FieldsProducer, error) {
	name := f.FileName(state.SegmentInfo.Name, state.SegmentSuffix)
	id, err := f.readSegmentId(state, name)
	if err != nil {
		log.Warningf("Cannot open segment %v: %v", name, err)
		return nil, err
	}
	store, err := f.registry.Lookup(id)
	if err != nil {
		log.Warningf("Cannot open segment %v: %v", name, err)
		return nil, err
	}
	log.Infof("Opened segment %v as store %v", name, id)
	return newFieldsProducer(store, state.SegmentInfo.Name), nil
}

/*
Segment blob layout:

	Header --> CodecHeader (CODEC_MAGIC, name, version)
	ID     --> int64, the registry ID of the segment store
	RunID  --> string, the registry's run ID (VERSION_RUN_ID and later)
*/
func (f *RAMOnlyPostingsFormat) writeSegmentId(state *SegmentWriteState, id int64) error {
	name := f.FileName(state.SegmentInfo.Name, state.SegmentSuffix)
	out, err := state.Directory.CreateOutput(name, state.Context)
	if err != nil {
		return err
	}
	if err = WriteHeader(out, f.config.Name, VERSION_CURRENT); err == nil {
		if err = out.WriteLong(id); err == nil {
			err = out.WriteString(f.registry.RunID())
		}
	}
	if err = util.CloseWhileHandlingError(err, out); err != nil {
		util.DeleteFilesIgnoringErrors(state.Directory, name)
	}
	return err
}

func (f *RAMOnlyPostingsFormat) readSegmentId(state SegmentReadState, name string) (id int64, err error) {
	in, err := state.Dir.OpenInput(name, state.Context)
	if err != nil {
		return 0, err
	}
	defer func() {
		err = util.CloseWhileHandlingError(err, in)
	}()

	version, err := CheckHeader(in, f.config.Name, VERSION_START, VERSION_CURRENT)
	if err != nil {
		return 0, err
	}
	if id, err = in.ReadLong(); err != nil {
		return 0, err
	}
	if version >= VERSION_RUN_ID {
		var runId string
		if runId, err = in.ReadString(); err != nil {
			return 0, err
		}
		if runId != f.registry.RunID() {
			return 0, NewCorruptIndexError(in,
				"segment was written by a different process (run %v, expected %v)", runId, f.registry.RunID())
		}
	}
	return id, nil
}

func (f *RAMOnlyPostingsFormat) String() string {
	return fmt.Sprintf("RAMOnlyPostingsFormat(name=%v, registry=%v)", f.Name(), f.registry)
}

func init() {
	if err := DefaultConfig().ApplyLogLevel(); err != nil {
		panic(err)
	}
	spi.RegisterPostingsFormat(NewPostingsFormat(DefaultConfig(), DefaultRegistry(), DefaultMetrics()))
}

func assertTrue(ok bool) {
	if !ok {
		panic("assert fail")
	}
}
