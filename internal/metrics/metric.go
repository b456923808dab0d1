package metrics

// Metric observes a sampled response one point at a time, in time order.
type Metric interface {
	Name() string
	Observe(t, y float64)
	Value() float64
	Reset()
}
