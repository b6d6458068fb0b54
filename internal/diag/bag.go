package diag

import (
	"sort"

	"fortio.org/safecast"
)

type Bag struct {
	items     []Diagnostic
	max       uint16
	unlimited bool
	dropped   int
}

func NewBag(max int) *Bag {
	capacity, err := safecast.Conv[uint16](max)
	if err != nil || max <= 0 {
		capacity = 256
	}
	return &Bag{
		items: make([]Diagnostic, 0, capacity),
		max:   capacity,
	}
}

// NewUnlimitedBag returns a Bag that never drops diagnostics.
func NewUnlimitedBag() *Bag {
	return &Bag{unlimited: true}
}

// Add добавляет диагностику, учитывая лимит.
// Возвращает false, если диагностика не добавлена (достигнут лимит).
func (b *Bag) Add(d Diagnostic) bool {
	if !b.unlimited && len(b.items) >= int(b.max) {
		b.dropped++
		return false
	}
	b.items = append(b.items, d)
	return true
}

// Force добавляет диагностику в обход лимита (служебные записи вроде таймингов).
func (b *Bag) Force(d Diagnostic) {
	b.items = append(b.items, d)
}

// Dropped reports how many diagnostics were rejected by the limit.
func (b *Bag) Dropped() int {
	return b.dropped
}

// HasErrors возвращает true, если есть хотя бы одна диагностика с Severity >= Error
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

// HasWarnings возвращает true, если есть хотя бы одна диагностика с Severity >= Warning
func (b *Bag) HasWarnings() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevWarning {
			return true
		}
	}
	return false
}

// длина
func (b *Bag) Len() int {
	return len(b.items)
}

// Items возвращает read-only slice диагностик.
// ВАЖНО: не модифицируйте возвращаемый срез! (он указывает на внутренний массив Bag)
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Sort сортирует диагностики по: row, col, severity (desc), code (asc)
// для стабильного и детерминированного порядка вывода.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Primary.Row != dj.Primary.Row {
			return di.Primary.Row < dj.Primary.Row
		}
		if di.Primary.Col != dj.Primary.Col {
			return di.Primary.Col < dj.Primary.Col
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Code < dj.Code
	})
}
