package mem

import (
	"github.com/ezrec/seqio/loaf"
	"github.com/ezrec/seqio/ref"
)

// WriteRefInLong writes *item at the cursor. The track copies the value and
// does not keep item.
func (tr *Track[T]) WriteRefInLong(item *T) error {
	return tr.Write(*item)
}

// WriteRefIn writes the referenced item at the cursor.
func (tr *Track[T]) WriteRefIn(item ref.Ref[T]) error {
	return tr.Write(item.Get())
}

// ReadRefInLong reads the item at the cursor into *dst.
func (tr *Track[T]) ReadRefInLong(dst *T) (err error) {
	item, err := tr.Read()
	if err != nil {
		return
	}

	*dst = item
	return
}

// ReadRefIn reads the item at the cursor into dst.
func (tr *Track[T]) ReadRefIn(dst ref.Ref[T]) (err error) {
	item, err := tr.Read()
	if err != nil {
		return
	}

	dst.Set(item)
	return
}

// WriteRefOut hands out the existing item at the cursor for overwriting.
func (tr *Track[T]) WriteRefOut() (slot ref.Slot[T], err error) {
	p, err := tr.WriteRefOutLong()
	if err != nil {
		return
	}

	slot = ref.NewSlot(p, &tr.epoch)
	return
}

// WriteRefOutLong is WriteRefOut as a plain pointer.
func (tr *Track[T]) WriteRefOutLong() (item *T, err error) {
	err = tr.canRewrite()
	if err != nil {
		return
	}

	tr.epoch.Advance()
	item = &tr.Data[tr.Cursor]
	return
}

// ReadRefOut hands out the item at the cursor for reading.
func (tr *Track[T]) ReadRefOut() (slot ref.Slot[T], err error) {
	p, err := tr.ReadRefOutLong()
	if err != nil {
		return
	}

	slot = ref.NewSlot(p, &tr.epoch)
	return
}

// ReadRefOutLong is ReadRefOut as a plain pointer.
func (tr *Track[T]) ReadRefOutLong() (item *T, err error) {
	err = tr.canRead()
	if err != nil {
		return
	}

	tr.epoch.Advance()
	item = &tr.Data[tr.Cursor]
	return
}

// WriteIn moves *src to the cursor, leaving *src zeroed.
func (tr *Track[T]) WriteIn(src *T) (err error) {
	err = tr.Write(*src)
	if err != nil {
		return
	}

	var zero T
	*src = zero
	return
}

// ReadIn stores the item at the cursor into *dst.
func (tr *Track[T]) ReadIn(dst *T) error {
	return tr.ReadRefInLong(dst)
}

// WriteOut reserves the position at the cursor, zeroing it or appending a
// zero item. The caller must fill the slot before the next call.
func (tr *Track[T]) WriteOut() (slot ref.Slot[T], err error) {
	err = tr.canWrite()
	if err != nil {
		return
	}

	tr.epoch.Advance()
	tr.extend(tr.Cursor + 1)
	var zero T
	tr.Data[tr.Cursor] = zero
	slot = ref.NewSlot(&tr.Data[tr.Cursor], &tr.epoch)
	return
}

// ReadOut hands out the item at the cursor; Slot.Take leaves the position
// zeroed.
func (tr *Track[T]) ReadOut() (ref.Slot[T], error) {
	return tr.ReadRefOut()
}

// WriteRefInLongMany1 writes a prefix of items starting at the cursor,
// overwriting and then appending, as far as Capacity allows.
func (tr *Track[T]) WriteRefInLongMany1(items loaf.Loaf[T]) (n int, err error) {
	err = tr.canWrite()
	if err != nil {
		return
	}

	tr.epoch.Advance()
	n = min(items.Len(), tr.Capacity-tr.Cursor)
	tr.extend(tr.Cursor + n)
	copy(tr.Data[tr.Cursor:tr.Cursor+n], items.Items())
	return
}

// WriteRefInMany1 writes a prefix of the referenced items.
func (tr *Track[T]) WriteRefInMany1(items ref.Ref[loaf.Loaf[T]]) (int, error) {
	return tr.WriteRefInLongMany1(items.Get())
}

// ReadRefInLongMany1 reads items from the cursor into a prefix of dst.
func (tr *Track[T]) ReadRefInLongMany1(dst loaf.Loaf[T]) (n int, err error) {
	err = tr.canRead()
	if err != nil {
		return
	}

	tr.epoch.Advance()
	n = copy(dst.Items(), tr.Data[tr.Cursor:])
	return
}

// ReadRefInMany1 reads items from the cursor into the referenced loaf.
func (tr *Track[T]) ReadRefInMany1(dst ref.Ref[loaf.Loaf[T]]) (int, error) {
	return tr.ReadRefInLongMany1(dst.Get())
}

// WriteInMany1 moves a prefix of src to the cursor, zeroing what was moved.
func (tr *Track[T]) WriteInMany1(src loaf.Loaf[T]) (n int, err error) {
	n, err = tr.WriteRefInLongMany1(src)
	if err != nil {
		return
	}

	src.Clear(n)
	return
}

// ReadInMany1 stores items from the cursor into a prefix of dst.
func (tr *Track[T]) ReadInMany1(dst loaf.Loaf[T]) (int, error) {
	return tr.ReadRefInLongMany1(dst)
}

// WriteRefOutMany1 hands out the existing items from the cursor onward.
func (tr *Track[T]) WriteRefOutMany1() (items ref.Span[T], err error) {
	lf, err := tr.WriteRefOutLongMany1()
	if err != nil {
		return
	}

	items = ref.NewSpan(lf.Items(), &tr.epoch)
	return
}

// WriteRefOutLongMany1 is WriteRefOutMany1 as a loaf view.
func (tr *Track[T]) WriteRefOutLongMany1() (items loaf.Loaf[T], err error) {
	err = tr.canRewrite()
	if err != nil {
		return
	}

	tr.epoch.Advance()
	return loaf.Of(tr.Data[tr.Cursor:])
}

// ReadRefOutMany1 hands out the items from the cursor onward for reading.
func (tr *Track[T]) ReadRefOutMany1() (items ref.Span[T], err error) {
	lf, err := tr.ReadRefOutLongMany1()
	if err != nil {
		return
	}

	items = ref.NewSpan(lf.Items(), &tr.epoch)
	return
}

// ReadRefOutLongMany1 is ReadRefOutMany1 as a loaf view.
func (tr *Track[T]) ReadRefOutLongMany1() (items loaf.Loaf[T], err error) {
	err = tr.canRead()
	if err != nil {
		return
	}

	tr.epoch.Advance()
	return loaf.Of(tr.Data[tr.Cursor:])
}

// WriteOutMany1 reserves every position from the cursor up to Capacity,
// zeroing existing items and appending zero items. The caller must fill
// all of them before the next call.
func (tr *Track[T]) WriteOutMany1() (slots ref.Span[T], err error) {
	err = tr.canWrite()
	if err != nil {
		return
	}

	tr.epoch.Advance()
	tr.extend(tr.Capacity)
	reserved := tr.Data[tr.Cursor:tr.Capacity]
	clear(reserved)
	slots = ref.NewSpan(reserved, &tr.epoch)
	return
}

// ReadOutMany1 hands out the items from the cursor onward; Span.Take
// leaves positions zeroed.
func (tr *Track[T]) ReadOutMany1() (ref.Span[T], error) {
	return tr.ReadRefOutMany1()
}
