package loopscroll

// LogicalItem is one element of the user supplied list together with its
// position in that list.
type LogicalItem[T any] struct {
	Index int
	Data  T
}

// Store holds the ordered, fixed list of logical items. It is built once per
// population and never mutated afterwards; repopulating replaces the store.
type Store[T any] struct {
	items []LogicalItem[T]
}

// NewStore copies items into a new store.
func NewStore[T any](items []T) *Store[T] {
	s := &Store[T]{items: make([]LogicalItem[T], len(items))}
	for i, data := range items {
		s.items[i] = LogicalItem[T]{Index: i, Data: data}
	}
	return s
}

// Len returns the number of logical items.
func (s *Store[T]) Len() int {
	return len(s.items)
}

// Get returns the item at i. Callers wrap i into [0, Len()) first.
func (s *Store[T]) Get(i int) LogicalItem[T] {
	return s.items[i]
}

// At returns the item for an unwrapped index.
func (s *Store[T]) At(index int) LogicalItem[T] {
	return s.items[Wrap(index, len(s.items))]
}
