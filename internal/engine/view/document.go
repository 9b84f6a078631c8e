package view

import (
	"github.com/dshills/blockedit/internal/engine/tree"
	"github.com/dshills/blockedit/internal/event"
	"github.com/dshills/blockedit/internal/input/key"
	"github.com/dshills/blockedit/internal/input/pointer"
)

// RootName is the element name of view roots.
const RootName = "div"

// Document is the view document.
type Document struct {
	roots     map[string]*tree.Node
	selection *Selection
	focused   bool
	observers map[ObserverKind]*Observer

	keyDown         *event.Emitter[*KeyEventData]
	mouseDown       *event.Emitter[*PointerEventData]
	mouseMove       *event.Emitter[*PointerEventData]
	mouseUp         *event.Emitter[*PointerEventData]
	selectionChange *event.Emitter[*SelectionChangeData]
	focusChange     *event.Emitter[bool]
}

// NewDocument creates a view document with every observer enabled.
func NewDocument() *Document {
	d := &Document{
		roots:           make(map[string]*tree.Node),
		selection:       NewSelection(nil, false),
		observers:       make(map[ObserverKind]*Observer),
		keyDown:         event.NewEmitter[*KeyEventData]("view:keydown"),
		mouseDown:       event.NewEmitter[*PointerEventData]("view:mousedown"),
		mouseMove:       event.NewEmitter[*PointerEventData]("view:mousemove"),
		mouseUp:         event.NewEmitter[*PointerEventData]("view:mouseup"),
		selectionChange: event.NewEmitter[*SelectionChangeData]("view:selectionchange"),
		focusChange:     event.NewEmitter[bool]("view:focus"),
	}
	for kind := range observerNames {
		d.observers[kind] = &Observer{kind: kind, enabled: true}
	}
	return d
}

// CreateRoot creates an editable root, or returns the existing one.
func (d *Document) CreateRoot(name string) *tree.Node {
	if root, ok := d.roots[name]; ok {
		return root
	}
	root := tree.NewElement(RootName)
	root.SetFlag(tree.FlagEditable | tree.FlagRootEditable)
	root.SetAttr("contenteditable", "true")
	root.SetProp("rootName", name)
	d.roots[name] = root
	return root
}

// Root returns a root by name.
func (d *Document) Root(name string) *tree.Node {
	return d.roots[name]
}

// Selection returns the document selection.
func (d *Document) Selection() *Selection {
	return d.selection
}

// Observer returns the observer for kind.
func (d *Document) Observer(kind ObserverKind) *Observer {
	return d.observers[kind]
}

// KeyDown returns the key press emitter.
func (d *Document) KeyDown() *event.Emitter[*KeyEventData] { return d.keyDown }

// MouseDown returns the pointer press emitter.
func (d *Document) MouseDown() *event.Emitter[*PointerEventData] { return d.mouseDown }

// MouseMove returns the pointer move emitter.
func (d *Document) MouseMove() *event.Emitter[*PointerEventData] { return d.mouseMove }

// MouseUp returns the pointer release emitter.
func (d *Document) MouseUp() *event.Emitter[*PointerEventData] { return d.mouseUp }

// SelectionChange returns the selection change emitter.
func (d *Document) SelectionChange() *event.Emitter[*SelectionChangeData] {
	return d.selectionChange
}

// FocusChange returns the emitter notified when focus is gained or lost.
func (d *Document) FocusChange() *event.Emitter[bool] { return d.focusChange }

// IsFocused returns true if the document has focus.
func (d *Document) IsFocused() bool {
	return d.focused
}

// Focus gives the document focus.
func (d *Document) Focus() {
	if d.focused {
		return
	}
	d.focused = true
	if d.observers[ObserverFocus].enabled {
		d.focusChange.Fire(true)
	}
}

// Blur removes focus from the document.
func (d *Document) Blur() {
	if !d.focused {
		return
	}
	d.focused = false
	if d.observers[ObserverFocus].enabled {
		d.focusChange.Fire(false)
	}
}

// FireKeyDown delivers a key press.
func (d *Document) FireKeyDown(target *tree.Node, ev key.Event) *KeyEventData {
	data := &KeyEventData{DomEventData: DomEventData{Document: d, Target: target}, Event: ev}
	if d.observers[ObserverKey].enabled {
		d.keyDown.Fire(data)
	}
	return data
}

// FireMouseDown delivers a pointer press.
func (d *Document) FireMouseDown(target *tree.Node, ev pointer.Event) *PointerEventData {
	return d.firePointer(d.mouseDown, ObserverMouse, target, ev)
}

// FireMouseMove delivers pointer movement.
func (d *Document) FireMouseMove(target *tree.Node, ev pointer.Event) *PointerEventData {
	return d.firePointer(d.mouseMove, ObserverMouseMove, target, ev)
}

// FireMouseUp delivers a pointer release.
func (d *Document) FireMouseUp(target *tree.Node, ev pointer.Event) *PointerEventData {
	return d.firePointer(d.mouseUp, ObserverMouse, target, ev)
}

func (d *Document) firePointer(e *event.Emitter[*PointerEventData], kind ObserverKind, target *tree.Node, ev pointer.Event) *PointerEventData {
	data := &PointerEventData{DomEventData: DomEventData{Document: d, Target: target}, Event: ev}
	if d.observers[kind].enabled {
		e.Fire(data)
	}
	return data
}

// FireSelectionChange reports a selection made by the user. The current
// selection is left untouched; listeners decide what to apply.
func (d *Document) FireSelectionChange(sel *Selection) *SelectionChangeData {
	data := &SelectionChangeData{
		Document:     d,
		OldSelection: d.selection.Clone(),
		NewSelection: sel,
	}
	if d.observers[ObserverSelection].enabled {
		d.selectionChange.Fire(data)
	}
	return data
}
