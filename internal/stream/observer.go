// Package stream provides the small set of push-based sequence primitives
// the game loop is composed from. Everything here assumes a single event
// loop: values, ticks and terminal signals are delivered one at a time and
// never concurrently, so none of the types carry locks.
package stream

// Observer receives the values of a sequence followed by at most one
// terminal signal. Nil handlers are skipped.
type Observer[T any] struct {
	Next     func(T)
	Error    func(error)
	Complete func()
}

// OnNext delivers a value.
func (o Observer[T]) OnNext(v T) {
	if o.Next != nil {
		o.Next(v)
	}
}

// OnError delivers a failure.
func (o Observer[T]) OnError(err error) {
	if o.Error != nil {
		o.Error(err)
	}
}

// OnComplete delivers normal completion.
func (o Observer[T]) OnComplete() {
	if o.Complete != nil {
		o.Complete()
	}
}
