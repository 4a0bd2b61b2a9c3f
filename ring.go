package loopscroll

// Slot is one reusable visual instance of the pool. It is bound to exactly
// one logical item at a time.
type Slot[T any] struct {
	// TotalIndex is the slot's unwrapped position in the infinite sequence.
	TotalIndex int
	// Item is the logical item at Wrap(TotalIndex, N).
	Item LogicalItem[T]
	// Position is the slot's coordinate along the axis in offset space. The
	// slot is drawn at Offset + Position relative to the viewport origin.
	Position float64
	// View receives the slot's notifications. It may be nil.
	View ItemView[T]
}

// ring is the fixed pool of slots. Slots are kept in window order starting at
// head, so the slot with the lowest total index is slots[head] and the
// highest is the one right before it.
type ring[T any] struct {
	slots []Slot[T]
	head  int
}

func newRing[T any](size int, template Template[T]) *ring[T] {
	r := &ring[T]{slots: make([]Slot[T], size)}
	for i := range r.slots {
		r.slots[i].View = template.NewItem(i)
	}
	return r
}

func (r *ring[T]) len() int {
	return len(r.slots)
}

// at returns the k-th slot in window order.
func (r *ring[T]) at(k int) *Slot[T] {
	return &r.slots[Wrap(r.head+k, len(r.slots))]
}

func (r *ring[T]) first() *Slot[T] {
	return r.at(0)
}

func (r *ring[T]) last() *Slot[T] {
	return r.at(len(r.slots) - 1)
}

// find returns the slot bound to totalIndex, or nil when it is outside the
// window.
func (r *ring[T]) find(totalIndex int) *Slot[T] {
	offset := totalIndex - r.first().TotalIndex
	if offset < 0 || offset >= len(r.slots) {
		return nil
	}
	return r.at(offset)
}

// initialize binds slot k to startIndex+k and fires the init and update
// notifications for every slot.
func (r *ring[T]) initialize(store *Store[T], startIndex int, extent float64) {
	r.head = 0
	for k := range r.slots {
		slot := &r.slots[k]
		r.bind(slot, store, startIndex+k, extent)
		if slot.View != nil {
			slot.View.OnInitItem(slot.TotalIndex, slot.Item.Index, slot.Item.Data)
			slot.View.OnUpdateItem(slot.TotalIndex, slot.Item.Index, slot.Item.Data)
		}
	}
}

// bind moves slot to totalIndex. The position is recomputed from the index so
// it never accumulates rounding drift.
func (r *ring[T]) bind(slot *Slot[T], store *Store[T], totalIndex int, extent float64) {
	slot.TotalIndex = totalIndex
	slot.Item = store.At(totalIndex)
	slot.Position = extent * float64(totalIndex)
}

// rebind moves slot to totalIndex and fires the update notification.
func (r *ring[T]) rebind(slot *Slot[T], store *Store[T], totalIndex int, extent float64) {
	r.bind(slot, store, totalIndex, extent)
	if slot.View != nil {
		slot.View.OnUpdateItem(slot.TotalIndex, slot.Item.Index, slot.Item.Data)
	}
}

// snapshot returns a copy of the slots in window order.
func (r *ring[T]) snapshot() []Slot[T] {
	slots := make([]Slot[T], len(r.slots))
	for k := range slots {
		slots[k] = *r.at(k)
	}
	return slots
}
