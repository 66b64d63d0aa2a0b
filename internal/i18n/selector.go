package i18n

import "fmt"

// Selector carries the session's current locale and resolves labels
// against it. It has no locking: the TUI mutates it only from its Update
// loop, which is also where every View call happens.
type Selector struct {
	table   *Table
	current Locale
}

// NewSelector returns a selector positioned on DefaultLocale.
func NewSelector(table *Table) *Selector {
	return &Selector{table: table, current: DefaultLocale}
}

// Current returns the selected locale.
func (s *Selector) Current() Locale {
	return s.current
}

// Set switches the current locale. It is the only way the selection
// changes.
func (s *Selector) Set(loc Locale) error {
	if !Supported(loc) {
		return fmt.Errorf("unsupported locale %q", loc)
	}
	s.current = loc
	return nil
}

// Next returns the locale delta steps away from the current one through
// Locales, wrapping around. It does not change the selection.
func (s *Selector) Next(delta int) Locale {
	idx := 0
	for i, loc := range Locales {
		if loc == s.current {
			idx = i
			break
		}
	}
	n := len(Locales)
	return Locales[((idx+delta)%n+n)%n]
}

// T resolves key in the current locale.
func (s *Selector) T(key Key) string {
	return s.table.Label(s.current, key)
}
