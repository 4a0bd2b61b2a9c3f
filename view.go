package loopscroll

// ItemView receives the notifications for one slot. totalIndex is the
// slot's unwrapped position in the infinite sequence and itemIndex the
// wrapped index of the logical item bound to it.
//
// Implementations are called synchronously from the engine and must not call
// back into its mutating operations.
type ItemView[T any] interface {
	// OnInitItem is called once when a slot is first bound to a window
	// position.
	OnInitItem(totalIndex, itemIndex int, data T)
	// OnUpdateItem is called whenever the item bound to the slot changes,
	// including right after OnInitItem.
	OnUpdateItem(totalIndex, itemIndex int, data T)
	// OnFixedItem is called when the view settles exactly on the item.
	OnFixedItem(totalIndex, itemIndex int, data T)
}

// Template creates the view for each slot of the pool.
type Template[T any] interface {
	NewItem(slot int) ItemView[T]
}

// TemplateFunc adapts a function to a [Template].
type TemplateFunc[T any] func(slot int) ItemView[T]

// NewItem calls f(slot).
func (f TemplateFunc[T]) NewItem(slot int) ItemView[T] {
	return f(slot)
}

// Sizer is implemented by templates that know the size of the items they
// create. The engine uses it when the configured item extent is zero.
type Sizer interface {
	ItemSize() (width, height float64)
}

// ViewFuncs is an [ItemView] built from optional functions.
type ViewFuncs[T any] struct {
	Init   func(totalIndex, itemIndex int, data T)
	Update func(totalIndex, itemIndex int, data T)
	Fixed  func(totalIndex, itemIndex int, data T)
}

// OnInitItem implements ItemView.
func (v ViewFuncs[T]) OnInitItem(totalIndex, itemIndex int, data T) {
	if v.Init != nil {
		v.Init(totalIndex, itemIndex, data)
	}
}

// OnUpdateItem implements ItemView.
func (v ViewFuncs[T]) OnUpdateItem(totalIndex, itemIndex int, data T) {
	if v.Update != nil {
		v.Update(totalIndex, itemIndex, data)
	}
}

// OnFixedItem implements ItemView.
func (v ViewFuncs[T]) OnFixedItem(totalIndex, itemIndex int, data T) {
	if v.Fixed != nil {
		v.Fixed(totalIndex, itemIndex, data)
	}
}
