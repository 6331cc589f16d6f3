package datasource

import (
	"slices"
	"sync"
)

// Series accumulates one column's samples in timestamp order.
type Series struct {
	lock               sync.RWMutex
	name               string
	timestamps         []int64
	values             []float64
	valueMin, valueMax float64
	sum                float64
	initialized        bool
}

func NewSeries(name string) *Series {
	return &Series{name: name}
}

func (s *Series) Name() string {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.name
}

func (s *Series) Initialized() bool {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.initialized
}

func (s *Series) Len() int {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return len(s.timestamps)
}

// At returns the i-th sample in timestamp order.
func (s *Series) At(i int) (timestamp int64, value float64) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.timestamps[i], s.values[i]
}

func (s *Series) Domain() (min int64, max int64) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	if len(s.timestamps) == 0 {
		return 0, 0
	}
	return s.timestamps[0], s.timestamps[len(s.timestamps)-1]
}

func (s *Series) ValueRange() (min float64, max float64) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.valueMin, s.valueMax
}

func (s *Series) Sum() float64 {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.sum
}

// Insert adds a value at a given timestamp to the series. In the event that
// the series already contains a value at that time, nothing is added and the
// method returns false. Otherwise, the method returns true.
func (s *Series) Insert(timestamp int64, value float64) (inserted bool) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if !s.initialized {
		s.valueMin = value
		s.valueMax = value
		s.initialized = true
	}
	index, found := slices.BinarySearch(s.timestamps, timestamp)
	if found {
		return false
	}
	s.timestamps = slices.Insert(s.timestamps, index, timestamp)
	s.values = slices.Insert(s.values, index, value)
	s.valueMax = max(s.valueMax, value)
	s.valueMin = min(s.valueMin, value)
	s.sum += value
	return true
}
