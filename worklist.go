package subset

// worklist is a FIFO queue of pending items. Callers guard against pushing
// the same item twice with their own seen-set.
type worklist[T any] struct {
	items []T
}

func newWorklist[T any](seeds ...T) *worklist[T] {
	w := &worklist[T]{items: make([]T, 0, max(len(seeds), 4))}
	w.items = append(w.items, seeds...)
	return w
}

func (w *worklist[T]) push(item T) {
	w.items = append(w.items, item)
}

func (w *worklist[T]) pop() (T, bool) {
	var empty T
	if len(w.items) == 0 {
		return empty, false
	}
	item := w.items[0]
	w.items[0] = empty
	w.items = w.items[1:]
	return item, true
}

func (w *worklist[T]) Len() int {
	return len(w.items)
}
