package content

// Accordion tracks which FAQ entry is expanded. At most one is open.
type Accordion struct {
	open int
	set  bool
}

// Toggle opens index i, or closes it if it is already the open entry.
func (a *Accordion) Toggle(i int) {
	if a.set && a.open == i {
		a.set = false
		return
	}
	a.open = i
	a.set = true
}

// Open returns the expanded index, if any.
func (a *Accordion) Open() (int, bool) {
	return a.open, a.set
}

func (a *Accordion) IsOpen(i int) bool {
	return a.set && a.open == i
}
