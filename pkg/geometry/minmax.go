package geometry

import "math"

// MinMax tracks the running extremes of a scalar stream
type MinMax struct {
	Min, Max float64
}

// NewMinMax returns an empty interval so that the first value sets both bounds
func NewMinMax() MinMax {
	return MinMax{Min: math.Inf(1), Max: math.Inf(-1)}
}

// Add widens the interval to include v
func (m *MinMax) Add(v float64) {
	if v < m.Min {
		m.Min = v
	}
	if v > m.Max {
		m.Max = v
	}
}

// Delta returns Max - Min
func (m MinMax) Delta() float64 {
	return m.Max - m.Min
}

// Empty reports whether no value has been added
func (m MinMax) Empty() bool {
	return m.Min > m.Max
}
