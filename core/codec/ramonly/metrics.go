package ramonly

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	LOOKUP_HIT  = "hit"
	LOOKUP_MISS = "miss"

	REJECT_OFFSETS   = "offsets"
	REJECT_DUPLICATE = "duplicate"
)

// Metrics counts segment registrations and lookups. A nil *Metrics
// records nothing.
type Metrics struct {
	SegmentsRegistered prometheus.Counter
	SegmentLookups     *prometheus.CounterVec
	SegmentsLive       prometheus.Gauge
	FieldsRejected     *prometheus.CounterVec
}

func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		SegmentsRegistered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MODULE,
			Name:      "segments_registered_total",
			Help:      "Total number of segment stores registered.",
		}),
		SegmentLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MODULE,
			Name:      "segment_lookups_total",
			Help:      "Segment lookups by result (hit, miss).",
		}, []string{"result"}),
		SegmentsLive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: MODULE,
			Name:      "segments_live",
			Help:      "Number of segment stores held by the registry.",
		}),
		FieldsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MODULE,
			Name:      "fields_rejected_total",
			Help:      "Fields refused at AddField by reason (offsets, duplicate).",
		}, []string{"reason"}),
	}
}

func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.SegmentsRegistered, m.SegmentLookups, m.SegmentsLive, m.FieldsRejected,
	}
}

// Register adds every collector to reg. Collectors registered before
// are accepted silently.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range m.Collectors() {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if !errors.As(err, &are) {
				return err
			}
		}
	}
	return nil
}

func (m *Metrics) segmentRegistered(live int) {
	if m == nil {
		return
	}
	m.SegmentsRegistered.Inc()
	m.SegmentsLive.Set(float64(live))
}

func (m *Metrics) segmentLookup(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.SegmentLookups.WithLabelValues(LOOKUP_HIT).Inc()
	} else {
		m.SegmentLookups.WithLabelValues(LOOKUP_MISS).Inc()
	}
}

func (m *Metrics) fieldRejected(reason string) {
	if m == nil {
		return
	}
	m.FieldsRejected.WithLabelValues(reason).Inc()
}
