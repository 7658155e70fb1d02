package status

import (
	"sync"
	"sync/atomic"
)

var registry = struct {
	sync.Mutex
	sections map[string]*Section
}{sections: make(map[string]*Section)}

// Section represents a grouping of Counters and Ratios.
type Section struct {
	Name string

	Counters map[string]*Counter
	Ratios   map[string]*Ratio

	m sync.Mutex
}

// NewSection builds a new Section with the provided name. Sections are
// registered globally, requesting the same name twice returns the same Section.
func NewSection(name string) *Section {
	registry.Lock()
	defer registry.Unlock()

	section, exists := registry.sections[name]
	if !exists {
		section = &Section{
			Name:     name,
			Counters: make(map[string]*Counter),
			Ratios:   make(map[string]*Ratio),
		}
		registry.sections[name] = section
	}
	return section
}

// Counter creates a new counter with the provided name.
func (s *Section) Counter(name string) *Counter {
	s.m.Lock()
	defer s.m.Unlock()

	counter, exists := s.Counters[name]
	if !exists {
		counter = &Counter{}
		s.Counters[name] = counter
	}
	return counter
}

// Ratio creates a new ratio with the provided name.
func (s *Section) Ratio(name string) *Ratio {
	s.m.Lock()
	defer s.m.Unlock()

	ratio, exists := s.Ratios[name]
	if !exists {
		ratio = &Ratio{}
		s.Ratios[name] = ratio
	}
	return ratio
}

// --

// Counter is a basic counter metric
type Counter struct {
	Value int64
}

// Add increments the counter by delta
func (c *Counter) Add(delta int64) {
	atomic.AddInt64(&c.Value, delta)
}

// GetValue ...
func (c *Counter) GetValue() int64 {
	return atomic.LoadInt64(&c.Value)
}

// --

// Ratio is a basic ratio metric. The metric will report the percentage
// that Hit is called (vs Miss).
type Ratio struct {
	Numerator   int64
	Denominator int64
}

// Hit increments the ratio and total count.
func (r *Ratio) Hit() {
	atomic.AddInt64(&r.Numerator, 1)
	atomic.AddInt64(&r.Denominator, 1)
}

// Miss increments the total count without changing the numerator.
func (r *Ratio) Miss() {
	atomic.AddInt64(&r.Denominator, 1)
}

// Value returns the current ratio as a percentage.
func (r *Ratio) Value() float64 {
	numerator, denominator := atomic.LoadInt64(&r.Numerator), atomic.LoadInt64(&r.Denominator)
	if denominator == 0 {
		return 0
	}
	return 100.0 * float64(numerator) / float64(denominator)
}
