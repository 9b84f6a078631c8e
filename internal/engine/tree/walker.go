package tree

// Direction is a travel direction through the tree.
type Direction int8

const (
	// Forward travels towards the end of the document.
	Forward Direction = iota
	// Backward travels towards the start of the document.
	Backward
)

// String returns the direction name.
func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// StepType is the kind of item yielded by the walker.
type StepType uint8

const (
	// StepElementStart is yielded when the walker crosses an element's
	// opening boundary.
	StepElementStart StepType = iota
	// StepElementEnd is yielded when the walker crosses an element's
	// closing boundary.
	StepElementEnd
	// StepText is yielded for character data.
	StepText
)

// String returns the step type name.
func (t StepType) String() string {
	switch t {
	case StepElementStart:
		return "elementStart"
	case StepElementEnd:
		return "elementEnd"
	default:
		return "text"
	}
}

// Step is one walker result.
type Step struct {
	Type     StepType
	Item     *Node
	Previous Position
	Next     Position
	// Length is the number of runes crossed for text steps, 1 otherwise.
	Length int
}

// WalkerOptions configures a Walker.
type WalkerOptions struct {
	Direction Direction
	// Boundaries limits the walk. Nil walks until the root boundary.
	Boundaries *Range
	// Start is the initial position. When zero it defaults to the
	// boundary matching the direction.
	Start Position
	// SingleCharacters yields text one rune at a time.
	SingleCharacters bool
	// Shallow steps over elements instead of entering them.
	Shallow bool
	// IgnoreElementEnd suppresses steps that leave an element.
	IgnoreElementEnd bool
}

// Walker iterates over the tree one step at a time.
type Walker struct {
	opts WalkerOptions
	pos  Position
}

// NewWalker creates a walker.
func NewWalker(opts WalkerOptions) *Walker {
	pos := opts.Start
	if pos.IsZero() && opts.Boundaries != nil {
		if opts.Direction == Backward {
			pos = opts.Boundaries.End
		} else {
			pos = opts.Boundaries.Start
		}
	}
	return &Walker{opts: opts, pos: pos}
}

// Position returns the walker's current position.
func (w *Walker) Position() Position {
	return w.pos
}

// Next advances the walker and returns the step taken. It returns false
// when the walk is finished.
func (w *Walker) Next() (Step, bool) {
	for {
		var step Step
		var ok bool
		if w.opts.Direction == Backward {
			step, ok = w.previous()
		} else {
			step, ok = w.next()
		}
		if !ok {
			return Step{}, false
		}
		w.pos = step.Next
		if w.opts.IgnoreElementEnd && step.Type == StepElementEnd {
			continue
		}
		return step, true
	}
}

// Skip advances while fn returns true, leaving the walker before the first
// rejected step.
func (w *Walker) Skip(fn func(Step) bool) {
	for {
		saved := w.pos
		step, ok := w.Next()
		if !ok {
			return
		}
		if !fn(step) {
			w.pos = saved
			return
		}
	}
}

func (w *Walker) next() (Step, bool) {
	pos := w.pos
	if pos.IsZero() {
		return Step{}, false
	}
	bounds := w.opts.Boundaries
	if bounds != nil && !pos.IsBefore(bounds.End) {
		return Step{}, false
	}

	if text := pos.TextNode(); text != nil {
		return w.textForward(text, pos.Offset, pos), true
	}

	parent := pos.Parent
	if pos.Offset < parent.Len() {
		child := parent.Child(pos.Offset)
		if child.IsText() {
			return w.textForward(child, 0, pos), true
		}
		next := Position{Parent: child}
		if w.opts.Shallow {
			next = PositionAfter(child)
		}
		return Step{Type: StepElementStart, Item: child, Previous: pos, Next: next, Length: 1}, true
	}

	if parent.parent == nil {
		return Step{}, false
	}
	return Step{Type: StepElementEnd, Item: parent, Previous: pos, Next: PositionAfter(parent), Length: 1}, true
}

func (w *Walker) textForward(text *Node, from int, pos Position) Step {
	end := text.Len()
	if b := w.opts.Boundaries; b != nil && b.End.Parent == text {
		end = b.End.Offset
	}
	n := end - from
	if w.opts.SingleCharacters && n > 1 {
		n = 1
	}
	return Step{Type: StepText, Item: text, Previous: pos, Next: NewPosition(text, from+n), Length: n}
}

func (w *Walker) previous() (Step, bool) {
	pos := w.pos
	if pos.IsZero() {
		return Step{}, false
	}
	bounds := w.opts.Boundaries
	if bounds != nil && !pos.IsAfter(bounds.Start) {
		return Step{}, false
	}

	if text := pos.TextNode(); text != nil {
		return w.textBackward(text, pos.Offset, pos), true
	}

	parent := pos.Parent
	if pos.Offset > 0 {
		child := parent.Child(pos.Offset - 1)
		if child.IsText() {
			return w.textBackward(child, child.Len(), pos), true
		}
		next := Position{Parent: child, Offset: child.Len()}
		if w.opts.Shallow {
			next = PositionBefore(child)
		}
		return Step{Type: StepElementEnd, Item: child, Previous: pos, Next: next, Length: 1}, true
	}

	if parent.parent == nil {
		return Step{}, false
	}
	return Step{Type: StepElementStart, Item: parent, Previous: pos, Next: PositionBefore(parent), Length: 1}, true
}

func (w *Walker) textBackward(text *Node, from int, pos Position) Step {
	start := 0
	if b := w.opts.Boundaries; b != nil && b.Start.Parent == text {
		start = b.Start.Offset
	}
	n := from - start
	if w.opts.SingleCharacters && n > 1 {
		n = 1
	}
	return Step{Type: StepText, Item: text, Previous: pos, Next: NewPosition(text, from-n), Length: n}
}
