package codec

import (
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/arloliu/go-secs-item/secs2"
)

// Metrics counts decoded items per format and decode failures per reason.
//
// A Metrics can be shared by decoders running on different goroutines.
type Metrics struct {
	items  map[secs2.Format]*xsync.Counter
	errors *xsync.MapOf[string, *xsync.Counter]
}

// MetricsSnapshot is a point-in-time copy of Metrics.
type MetricsSnapshot struct {
	// Items holds the number of decoded items per format, including list items.
	Items map[secs2.Format]int64
	// Errors holds the number of failed decodes per reason, e.g. "truncated".
	Errors map[string]int64
}

// NewMetrics creates a Metrics with all counters at zero.
func NewMetrics() *Metrics {
	m := &Metrics{
		items:  make(map[secs2.Format]*xsync.Counter, len(secs2.Formats())),
		errors: xsync.NewMapOf[string, *xsync.Counter](),
	}
	for _, f := range secs2.Formats() {
		m.items[f] = xsync.NewCounter()
	}

	return m
}

func (m *Metrics) incItem(f secs2.Format) {
	if c, ok := m.items[f]; ok {
		c.Inc()
	}
}

func (m *Metrics) incError(err error) {
	c, _ := m.errors.LoadOrCompute(errorKind(err), xsync.NewCounter)
	c.Inc()
}

// Snapshot returns the current counter values.
func (m *Metrics) Snapshot() MetricsSnapshot {
	snap := MetricsSnapshot{
		Items:  make(map[secs2.Format]int64, len(m.items)),
		Errors: make(map[string]int64),
	}
	for f, c := range m.items {
		snap.Items[f] = c.Value()
	}
	m.errors.Range(func(kind string, c *xsync.Counter) bool {
		snap.Errors[kind] = c.Value()
		return true
	})

	return snap
}

// Reset sets all counters back to zero.
func (m *Metrics) Reset() {
	for _, c := range m.items {
		c.Reset()
	}
	m.errors.Range(func(_ string, c *xsync.Counter) bool {
		c.Reset()
		return true
	})
}
