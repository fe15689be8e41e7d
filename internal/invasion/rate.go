package invasion

// SpawnRate holds the current spawn interval in milliseconds and notifies
// subscribers whenever it is replaced.
type SpawnRate struct {
	ms     int
	nextID int
	subs   map[int]func(int)
	order  []int
}

// NewSpawnRate creates a rate holder with an initial interval.
func NewSpawnRate(initial int) *SpawnRate {
	return &SpawnRate{
		ms:   initial,
		subs: make(map[int]func(int)),
	}
}

// Read returns the current interval.
func (r *SpawnRate) Read() int {
	return r.ms
}

// Set replaces the interval and notifies every subscriber, even when the
// value is unchanged.
func (r *SpawnRate) Set(ms int) {
	r.ms = ms
	for _, id := range r.order {
		if fn, ok := r.subs[id]; ok {
			fn(ms)
		}
	}
}

// Subscribe calls fn with the current interval right away and again on
// every Set. The returned func removes the subscription.
func (r *SpawnRate) Subscribe(fn func(int)) (unsubscribe func()) {
	r.nextID++
	id := r.nextID
	r.subs[id] = fn
	r.order = append(r.order, id)
	fn(r.ms)

	return func() {
		if _, ok := r.subs[id]; !ok {
			return
		}
		delete(r.subs, id)
		for i, v := range r.order {
			if v == id {
				r.order = append(r.order[:i], r.order[i+1:]...)
				break
			}
		}
	}
}
