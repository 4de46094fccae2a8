package ramonly

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/ironsweet/golucene/core/codec"
)

/*
Registry maps the IDs stamped into segment blobs to the segment
stores they stand for. Entries are added once, when a writer closes,
and never removed. The run ID identifies this registry instance so
that a blob written by another process is not resolved against an
unrelated store that happens to share its numeric ID.
*/
type Registry struct {
	sync.Mutex
	nextId  int64
	stores  map[int64]*SegmentStore
	runId   string
	metrics *Metrics
}

func NewRegistry(metrics *Metrics) *Registry {
	return &Registry{
		stores:  make(map[int64]*SegmentStore),
		runId:   uuid.NewString(),
		metrics: metrics,
	}
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
	defaultMetrics      *Metrics
	defaultMetricsOnce  sync.Once
)

/* Returns the process-wide registry, created on first use. */
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry(DefaultMetrics())
	})
	return defaultRegistry
}

/* Returns the metrics of the process-wide registry and format. */
func DefaultMetrics() *Metrics {
	defaultMetricsOnce.Do(func() {
		defaultMetrics = NewMetrics(DefaultConfig().Metrics.Namespace)
	})
	return defaultMetrics
}

// Register stores a finished segment under a fresh ID and returns it.
func (r *Registry) Register(store *SegmentStore) int64 {
	assertTrue(store != nil)
	r.Lock()
	id := r.nextId
	r.nextId++
	r.stores[id] = store
	live := len(r.stores)
	r.Unlock()

	r.metrics.segmentRegistered(live)
	log.Infof("Registered segment store %v (%v fields) in run %v", id, store.Size(), r.runId)
	return id
}

// Lookup resolves an ID previously returned by Register. An unknown ID
// is reported as a *codec.CorruptIndexError.
func (r *Registry) Lookup(id int64) (*SegmentStore, error) {
	r.Lock()
	store, ok := r.stores[id]
	r.Unlock()

	r.metrics.segmentLookup(ok)
	if !ok {
		return nil, codec.NewCorruptIndexError(r,
			"segment store %v is not registered (never completed, or written by another run)", id)
	}
	return store, nil
}

func (r *Registry) Size() int {
	r.Lock()
	defer r.Unlock()
	return len(r.stores)
}

/* Estimated heap held by all registered stores. */
func (r *Registry) RamBytesUsed() (size int64) {
	r.Lock()
	defer r.Unlock()
	for _, store := range r.stores {
		size += store.RamBytesUsed()
	}
	return size
}

func (r *Registry) RunID() string {
	return r.runId
}

func (r *Registry) String() string {
	return fmt.Sprintf("Registry(run=%v)", r.runId)
}
