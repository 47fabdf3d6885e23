package typeguard

import (
	"sync/atomic"
	"time"

	"fortio.org/safecast"
)

// Metrics tracks validation counters using lock-free atomics.
// All methods are safe for concurrent use.
type Metrics struct {
	validationsTotal atomic.Uint64
	validationsValid atomic.Uint64

	// Timing, stored as nanoseconds.
	validationTimeTotal atomic.Uint64
	validationTimeMin   atomic.Uint64
	validationTimeMax   atomic.Uint64

	checksTotal  atomic.Uint64
	assertsTotal atomic.Uint64
}

// NewMetrics creates a new Metrics instance.
func NewMetrics() *Metrics {
	m := &Metrics{}
	// Min starts at max uint64 so the first recording becomes the minimum.
	m.validationTimeMin.Store(^uint64(0))
	return m
}

// RecordValidation records one completed validation.
func (m *Metrics) RecordValidation(duration time.Duration, valid bool) {
	m.validationsTotal.Add(1)
	if valid {
		m.validationsValid.Add(1)
	}

	ns, err := safecast.Conv[uint64](duration.Nanoseconds())
	if err != nil {
		return
	}
	m.validationTimeTotal.Add(ns)

	for {
		old := m.validationTimeMin.Load()
		if ns >= old {
			break
		}
		if m.validationTimeMin.CompareAndSwap(old, ns) {
			break
		}
	}
	for {
		old := m.validationTimeMax.Load()
		if ns <= old {
			break
		}
		if m.validationTimeMax.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordCheck records a boolean check call.
func (m *Metrics) RecordCheck() {
	m.checksTotal.Add(1)
}

// RecordAssert records an assert call.
func (m *Metrics) RecordAssert() {
	m.assertsTotal.Add(1)
}

// ValidationsTotal returns the total number of validations performed.
func (m *Metrics) ValidationsTotal() uint64 {
	return m.validationsTotal.Load()
}

// ValidationsValid returns the number of validations that passed.
func (m *Metrics) ValidationsValid() uint64 {
	return m.validationsValid.Load()
}

// ValidationRate returns the fraction of passing validations (0.0 to 1.0).
func (m *Metrics) ValidationRate() float64 {
	total := m.validationsTotal.Load()
	if total == 0 {
		return 0
	}
	return float64(m.validationsValid.Load()) / float64(total)
}

// AverageValidationTime returns the mean validation duration.
func (m *Metrics) AverageValidationTime() time.Duration {
	total := m.validationsTotal.Load()
	if total == 0 {
		return 0
	}
	avg, err := safecast.Conv[int64](m.validationTimeTotal.Load() / total)
	if err != nil {
		return 0
	}
	return time.Duration(avg)
}

// MinValidationTime returns the shortest recorded validation duration.
func (m *Metrics) MinValidationTime() time.Duration {
	minNs := m.validationTimeMin.Load()
	if minNs == ^uint64(0) {
		return 0
	}
	ns, err := safecast.Conv[int64](minNs)
	if err != nil {
		return 0
	}
	return time.Duration(ns)
}

// MaxValidationTime returns the longest recorded validation duration.
func (m *Metrics) MaxValidationTime() time.Duration {
	ns, err := safecast.Conv[int64](m.validationTimeMax.Load())
	if err != nil {
		return 0
	}
	return time.Duration(ns)
}

// ChecksTotal returns the number of boolean check calls recorded.
func (m *Metrics) ChecksTotal() uint64 {
	return m.checksTotal.Load()
}

// AssertsTotal returns the number of assert calls recorded.
func (m *Metrics) AssertsTotal() uint64 {
	return m.assertsTotal.Load()
}

// Snapshot is a point-in-time copy of all counters.
type Snapshot struct {
	Timestamp time.Time `json:"timestamp"`

	ValidationsTotal uint64  `json:"validations_total"`
	ValidationsValid uint64  `json:"validations_valid"`
	ValidationRate   float64 `json:"validation_rate"`

	AvgValidationTimeNs uint64 `json:"avg_validation_time_ns"`
	MinValidationTimeNs uint64 `json:"min_validation_time_ns"`
	MaxValidationTimeNs uint64 `json:"max_validation_time_ns"`

	ChecksTotal  uint64 `json:"checks_total"`
	AssertsTotal uint64 `json:"asserts_total"`
}

// Snapshot returns a point-in-time copy of all counters.
func (m *Metrics) Snapshot() Snapshot {
	total := m.validationsTotal.Load()

	var avgNs uint64
	var rate float64
	if total > 0 {
		avgNs = m.validationTimeTotal.Load() / total
		rate = float64(m.validationsValid.Load()) / float64(total)
	}

	minNs := m.validationTimeMin.Load()
	if minNs == ^uint64(0) {
		minNs = 0
	}

	return Snapshot{
		Timestamp:           time.Now(),
		ValidationsTotal:    total,
		ValidationsValid:    m.validationsValid.Load(),
		ValidationRate:      rate,
		AvgValidationTimeNs: avgNs,
		MinValidationTimeNs: minNs,
		MaxValidationTimeNs: m.validationTimeMax.Load(),
		ChecksTotal:         m.checksTotal.Load(),
		AssertsTotal:        m.assertsTotal.Load(),
	}
}

// Reset clears all counters.
func (m *Metrics) Reset() {
	m.validationsTotal.Store(0)
	m.validationsValid.Store(0)
	m.validationTimeTotal.Store(0)
	m.validationTimeMin.Store(^uint64(0))
	m.validationTimeMax.Store(0)
	m.checksTotal.Store(0)
	m.assertsTotal.Store(0)
}
