package ui

import (
	"reflect"
	"slices"

	"github.com/OpticalFlyer/grog/geom"
)

// Placement binds a widget to the region it occupies in a layout, in the
// layout's coordinates.
type Placement struct {
	Widget Widget
	Region geom.Rect2[int]
}

// Predicate selects placements.
type Predicate func(p Placement) bool

// OnPosition matches placements whose region contains pos.
func OnPosition(pos geom.Vector2[int]) Predicate {
	return func(p Placement) bool {
		return p.Region.Wrap(pos)
	}
}

// OnVisiblePosition matches placements of visible widgets whose region
// contains pos. It is what mouse events are routed with, so a hidden widget
// takes no input where it is not drawn.
func OnVisiblePosition(pos geom.Vector2[int]) Predicate {
	return func(p Placement) bool {
		return p.Widget.Visible() && p.Region.Wrap(pos)
	}
}

// IsWidget matches the placements of w.
func IsWidget(w Widget) Predicate {
	return func(p Placement) bool {
		return sameWidget(p.Widget, w)
	}
}

// sameWidget reports whether a and b are the same widget. Widgets whose
// dynamic type is not comparable never match, not even themselves.
func sameWidget(a, b Widget) bool {
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) {
		return false
	}
	if ta != nil && !ta.Comparable() {
		return false
	}
	return a == b
}

// Layout is a widget that places other widgets.
type Layout interface {
	Widget

	// Find returns the frontmost placement matching pred.
	Find(pred Predicate) (Placement, bool)

	// FindWidget returns the widget of the frontmost placement matching
	// pred.
	FindWidget(pred Predicate) (Widget, bool)
}

// FixedLayout places widgets at explicit regions. Placements are kept in
// z-order, front first: drawing goes back to front and hit-testing front
// to back. Dragging a widget with the left button moves it, unless it is
// locked, and brings it to the front.
type FixedLayout struct {
	Base
	responder MouseResponder
	children  []Placement
}

var _ Layout = (*FixedLayout)(nil)

// NewFixedLayout creates an empty layout. Mouse events are first offered
// to the widget under the cursor; only if it ignores a press does a drag
// of that widget begin.
func NewFixedLayout(ctx ApplicationContext) *FixedLayout {
	l := &FixedLayout{Base: NewBase(ctx)}
	provide := func() Layout { return l }
	l.responder = NewMouseResponderChain(
		WithContext[Layout](provide, LayoutResponder{}),
		WithContext[Layout](provide, NewDragAndDropResponder(l.onDrag, l.onDrop)),
	)
	return l
}

func (l *FixedLayout) Draw(region geom.Rect2[int]) {
	for i := len(l.children) - 1; i >= 0; i-- {
		child := l.children[i]
		if !child.Widget.Visible() {
			continue
		}
		child.Widget.Draw(region.Subrectangle(child.Region))
	}
}

func (l *FixedLayout) RespondButton(ev MouseButtonEvent) bool {
	return l.responder.RespondButton(ev)
}

func (l *FixedLayout) RespondMotion(ev MouseMotionEvent) bool {
	return l.responder.RespondMotion(ev)
}

func (l *FixedLayout) Find(pred Predicate) (Placement, bool) {
	for _, child := range l.children {
		if pred(child) {
			return child, true
		}
	}
	return Placement{}, false
}

func (l *FixedLayout) FindWidget(pred Predicate) (Widget, bool) {
	child, ok := l.Find(pred)
	if !ok {
		return nil, false
	}
	return child.Widget, true
}

// FindDo calls action with the frontmost placement matching pred, if any.
func (l *FixedLayout) FindDo(pred Predicate, action func(p Placement)) {
	if child, ok := l.Find(pred); ok {
		action(child)
	}
}

// Placements returns a copy of the placements, front first.
func (l *FixedLayout) Placements() []Placement {
	return slices.Clone(l.children)
}

// AddWidget places w at region, on top of the widgets already placed.
func (l *FixedLayout) AddWidget(w Widget, region geom.Rect2[int]) *FixedLayout {
	l.children = slices.Insert(l.children, 0, Placement{Widget: w, Region: region})
	l.PostRedisplay()
	return l
}

// RemoveWidget removes every placement of w from the layout. It does
// nothing if w is not placed.
func (l *FixedLayout) RemoveWidget(w Widget) {
	n := len(l.children)
	l.children = slices.DeleteFunc(l.children, IsWidget(w))
	if len(l.children) != n {
		l.PostRedisplay()
	}
}

// MoveWidget moves every region of w so that it starts at to. It does
// nothing if w is not placed.
func (l *FixedLayout) MoveWidget(w Widget, to geom.Vector2[int]) {
	moved := false
	for i := range l.children {
		if sameWidget(l.children[i].Widget, w) {
			l.children[i].Region.SetPosition(to)
			moved = true
		}
	}
	if moved {
		l.PostRedisplay()
	}
}

// BringToFront moves the placements of w on top of every other widget,
// keeping their relative order. It does nothing if w is not placed.
func (l *FixedLayout) BringToFront(w Widget) {
	match := IsWidget(w)
	var front, rest []Placement
	for _, child := range l.children {
		if match(child) {
			front = append(front, child)
		} else {
			rest = append(rest, child)
		}
	}
	if len(front) == 0 {
		return
	}
	l.children = append(front, rest...)
	l.PostRedisplay()
}

func (l *FixedLayout) onDrag(w Widget, _, mov geom.Vector2[int]) {
	l.FindDo(IsWidget(w), func(child Placement) {
		if child.Widget.Locked() {
			return
		}
		l.MoveWidget(child.Widget, child.Region.Position().Add(mov))
		l.BringToFront(child.Widget)
	})
}

// onDrop has nothing to do: widgets follow the cursor while dragged.
func (l *FixedLayout) onDrop(Widget, geom.Vector2[int], geom.Vector2[int]) {}
