package testing

// ScrollArea is an in-memory dom.ScrollContainer.
type ScrollArea struct {
	style string
	sets  int
}

// NewScrollArea returns a scroll area with the given initial inline style.
func NewScrollArea(style string) *ScrollArea {
	return &ScrollArea{style: style}
}

// OverflowStyle implements dom.ScrollContainer.
func (s *ScrollArea) OverflowStyle() string { return s.style }

// SetOverflowStyle implements dom.ScrollContainer.
func (s *ScrollArea) SetOverflowStyle(style string) {
	s.style = style
	s.sets++
}

// SetCount returns how many times the style has been written. Tests use it
// to assert that redundant acquisitions do not rewrite the style.
func (s *ScrollArea) SetCount() int { return s.sets }
