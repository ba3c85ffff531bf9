package ui

import (
	"reflect"
	"testing"

	"github.com/OpticalFlyer/grog/geom"
)

func names(ps []Placement) []string {
	var out []string
	for _, p := range ps {
		out = append(out, p.Widget.(*testWidget).name)
	}
	return out
}

func TestFixedLayoutFindOnPosition(t *testing.T) {
	ctx := newFakeContext()
	l := NewFixedLayout(ctx)
	a := newTestWidget(ctx, "a", nil)
	b := newTestWidget(ctx, "b", nil)
	l.AddWidget(a, geom.Rect(0, 0, 50, 50)).
		AddWidget(b, geom.Rect(25, 25, 50, 50))

	tests := []struct {
		name string
		pos  geom.Vector2[int]
		want Widget
	}{
		{name: "Only in a", pos: geom.Vec(10, 10), want: a},
		{name: "Overlap", pos: geom.Vec(30, 30), want: b},
		{name: "Only in b", pos: geom.Vec(70, 70), want: b},
		{name: "Edge of b", pos: geom.Vec(75, 75), want: b},
		{name: "Outside", pos: geom.Vec(200, 5), want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := l.FindWidget(OnPosition(tt.pos))
			if ok != (tt.want != nil) || (ok && got != tt.want) {
				t.Errorf("FindWidget(OnPosition(%v)) = %v, %v; want %v", tt.pos, got, ok, tt.want)
			}
		})
	}

	p, ok := l.Find(OnPosition(geom.Vec(30, 30)))
	if !ok || p.Region != geom.Rect(25, 25, 50, 50) {
		t.Errorf("got placement %v, %v; want b at (25, 25, 50, 50)", p, ok)
	}

	l.BringToFront(a)
	if got, _ := l.FindWidget(OnPosition(geom.Vec(30, 30))); got != a {
		t.Errorf("after BringToFront(a): got %v at overlap; want a", got)
	}
}

func TestFixedLayoutDrawsBackToFront(t *testing.T) {
	ctx := newFakeContext()
	l := NewFixedLayout(ctx)
	var order []string
	a := newTestWidget(ctx, "a", &order)
	b := newTestWidget(ctx, "b", &order)
	c := newTestWidget(ctx, "c", &order)
	l.AddWidget(a, geom.Rect(10, 10, 5, 5)).
		AddWidget(b, geom.Rect(20, 20, 5, 5)).
		AddWidget(c, geom.Rect(30, 30, 5, 5))
	c.SetVisible(false)

	l.Draw(geom.Rect(100, 200, 640, 480))

	if want := []string{"a", "b"}; !reflect.DeepEqual(order, want) {
		t.Errorf("got draw order %v; want %v", order, want)
	}
	if want := geom.Rect(110, 210, 5, 5); len(a.regions) != 1 || a.regions[0] != want {
		t.Errorf("got a drawn at %v; want [%v]", a.regions, want)
	}
}

func TestFixedLayoutMutationsPostRedisplay(t *testing.T) {
	ctx := newFakeContext()
	l := NewFixedLayout(ctx)
	a := newTestWidget(ctx, "a", nil)
	b := newTestWidget(ctx, "b", nil)
	stranger := newTestWidget(ctx, "stranger", nil)

	tests := []struct {
		name      string
		mutate    func()
		wantPosts int
		wantOrder []string
	}{
		{name: "Add a", mutate: func() { l.AddWidget(a, geom.Rect(0, 0, 10, 10)) }, wantPosts: 1, wantOrder: []string{"a"}},
		{name: "Add b", mutate: func() { l.AddWidget(b, geom.Rect(5, 5, 10, 10)) }, wantPosts: 1, wantOrder: []string{"b", "a"}},
		{name: "Bring a to front", mutate: func() { l.BringToFront(a) }, wantPosts: 1, wantOrder: []string{"a", "b"}},
		{name: "Bring front to front", mutate: func() { l.BringToFront(a) }, wantPosts: 1, wantOrder: []string{"a", "b"}},
		{name: "Bring missing to front", mutate: func() { l.BringToFront(stranger) }, wantPosts: 0, wantOrder: []string{"a", "b"}},
		{name: "Move a", mutate: func() { l.MoveWidget(a, geom.Vec(40, 40)) }, wantPosts: 1, wantOrder: []string{"a", "b"}},
		{name: "Move missing", mutate: func() { l.MoveWidget(stranger, geom.Vec(1, 1)) }, wantPosts: 0, wantOrder: []string{"a", "b"}},
		{name: "Remove b", mutate: func() { l.RemoveWidget(b) }, wantPosts: 1, wantOrder: []string{"a"}},
		{name: "Remove missing", mutate: func() { l.RemoveWidget(stranger) }, wantPosts: 0, wantOrder: []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := ctx.posts
			tt.mutate()
			if got := ctx.posts - before; got != tt.wantPosts {
				t.Errorf("got %d redisplay requests; want %d", got, tt.wantPosts)
			}
			if got := names(l.Placements()); !reflect.DeepEqual(got, tt.wantOrder) {
				t.Errorf("got placements %v; want %v", got, tt.wantOrder)
			}
		})
	}

	p, _ := l.Find(IsWidget(a))
	if p.Region != geom.Rect(40, 40, 10, 10) {
		t.Errorf("got region of a %v; want (40, 40, 10, 10)", p.Region)
	}
}

func TestFixedLayoutBringToFrontFromMiddle(t *testing.T) {
	ctx := newFakeContext()
	l := NewFixedLayout(ctx)
	a := newTestWidget(ctx, "a", nil)
	b := newTestWidget(ctx, "b", nil)
	c := newTestWidget(ctx, "c", nil)
	d := newTestWidget(ctx, "d", nil)
	for _, w := range []Widget{a, b, c, d} {
		l.AddWidget(w, geom.Rect(0, 0, 10, 10))
	}

	l.BringToFront(b)
	if got, want := names(l.Placements()), []string{"b", "d", "c", "a"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v; want %v", got, want)
	}
}

func TestFixedLayoutDragMovesWidget(t *testing.T) {
	ctx := newFakeContext()
	l := NewFixedLayout(ctx)
	a := newTestWidget(ctx, "a", nil)
	b := newTestWidget(ctx, "b", nil)
	l.AddWidget(a, geom.Rect(0, 0, 50, 50)).
		AddWidget(b, geom.Rect(100, 100, 50, 50))

	if !l.RespondButton(press(10, 20)) {
		t.Fatalf("press on a was not consumed")
	}
	l.RespondMotion(motion(15, 20, 5, 0))
	l.RespondMotion(motion(15, 30, 0, 10))
	l.RespondMotion(motion(12, 28, -3, -2))
	if !l.RespondButton(release(12, 28)) {
		t.Errorf("release after drag was not consumed")
	}

	p, _ := l.Find(IsWidget(a))
	if want := geom.Rect(2, 8, 50, 50); p.Region != want {
		t.Errorf("got region of a %v; want %v", p.Region, want)
	}
	if got, want := names(l.Placements()), []string{"a", "b"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got placements %v; want %v", got, want)
	}

	// a saw the press first, in its own coordinates.
	if len(a.buttons) == 0 || a.buttons[0].Pos != geom.Vec(10, 20) {
		t.Errorf("got a buttons %v; want first at (10, 20)", a.buttons)
	}

	if l.RespondMotion(motion(300, 300, 1, 1)) {
		t.Errorf("motion outside any widget with no drag was consumed")
	}
	if l.RespondButton(release(300, 300)) {
		t.Errorf("release with no drag was consumed")
	}
}

func TestFixedLayoutLockedWidgetStays(t *testing.T) {
	ctx := newFakeContext()
	l := NewFixedLayout(ctx)
	a := newTestWidget(ctx, "a", nil)
	b := newTestWidget(ctx, "b", nil)
	l.AddWidget(a, geom.Rect(0, 0, 50, 50)).
		AddWidget(b, geom.Rect(10, 10, 50, 50))
	a.SetLocked(true)

	l.RespondButton(press(5, 5))
	l.RespondMotion(motion(25, 25, 20, 20))
	l.RespondButton(release(25, 25))

	p, _ := l.Find(IsWidget(a))
	if want := geom.Rect(0, 0, 50, 50); p.Region != want {
		t.Errorf("locked widget moved to %v; want %v", p.Region, want)
	}
	if got, want := names(l.Placements()), []string{"b", "a"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got placements %v; want %v", got, want)
	}
}

func TestFixedLayoutChildConsumingPressIsNotDragged(t *testing.T) {
	ctx := newFakeContext()
	l := NewFixedLayout(ctx)
	a := newTestWidget(ctx, "a", nil)
	a.consume = true
	l.AddWidget(a, geom.Rect(0, 0, 50, 50))

	l.RespondButton(press(10, 10))
	l.RespondMotion(motion(30, 30, 20, 20))
	l.RespondButton(release(30, 30))

	p, _ := l.Find(IsWidget(a))
	if p.Region.Position() != geom.Vec(0, 0) {
		t.Errorf("widget consuming its press was dragged to %v", p.Region.Position())
	}
	if len(a.buttons) != 2 || len(a.motions) != 1 {
		t.Errorf("got %d buttons and %d motions; want 2 and 1", len(a.buttons), len(a.motions))
	}
}

func TestFixedLayoutNested(t *testing.T) {
	ctx := newFakeContext()
	outer := NewFixedLayout(ctx)
	inner := NewFixedLayout(ctx)
	leaf := newTestWidget(ctx, "leaf", nil)
	leaf.consume = true
	inner.AddWidget(leaf, geom.Rect(10, 10, 20, 20))
	outer.AddWidget(inner, geom.Rect(100, 100, 200, 200))

	if !outer.RespondButton(press(115, 125)) {
		t.Fatalf("press on nested leaf was not consumed")
	}
	if got := leaf.buttons[0].Pos; got != geom.Vec(5, 15) {
		t.Errorf("got leaf press at %v; want (5, 15)", got)
	}

	outer.Draw(geom.Rect(0, 0, 640, 480))
	if want := geom.Rect(110, 110, 20, 20); len(leaf.regions) != 1 || leaf.regions[0] != want {
		t.Errorf("got leaf drawn at %v; want [%v]", leaf.regions, want)
	}
}

func TestFixedLayoutHiddenWidgetTakesNoInput(t *testing.T) {
	tests := []struct {
		name        string
		consume     bool
		wantButtons int
		wantBack    geom.Rect2[int]
	}{
		{name: "Visible widget behind responds", consume: true, wantButtons: 2, wantBack: geom.Rect(0, 0, 100, 100)},
		{name: "Visible widget behind is dragged", consume: false, wantButtons: 2, wantBack: geom.Rect(20, 20, 100, 100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newFakeContext()
			l := NewFixedLayout(ctx)
			back := newTestWidget(ctx, "back", nil)
			back.consume = tt.consume
			hidden := newTestWidget(ctx, "hidden", nil)
			hidden.consume = true
			hidden.SetVisible(false)
			l.AddWidget(back, geom.Rect(0, 0, 100, 100)).
				AddWidget(hidden, geom.Rect(0, 0, 100, 100))

			l.RespondButton(press(10, 10))
			l.RespondMotion(motion(30, 30, 20, 20))
			l.RespondButton(release(30, 30))

			if len(back.buttons) != tt.wantButtons {
				t.Errorf("got %d button events on the visible widget; want %d", len(back.buttons), tt.wantButtons)
			}
			if len(hidden.buttons) != 0 || len(hidden.motions) != 0 {
				t.Errorf("hidden widget got %d buttons and %d motions; want none", len(hidden.buttons), len(hidden.motions))
			}
			regions := map[string]geom.Rect2[int]{}
			for _, p := range l.Placements() {
				regions[p.Widget.(*testWidget).name] = p.Region
			}
			if regions["back"] != tt.wantBack {
				t.Errorf("got back region %v; want %v", regions["back"], tt.wantBack)
			}
			if want := geom.Rect(0, 0, 100, 100); regions["hidden"] != want {
				t.Errorf("hidden widget was dragged to %v", regions["hidden"])
			}
		})
	}
}

func TestWindowHiddenChildTakesNoInput(t *testing.T) {
	ctx := newFakeContext()
	win := NewWindow(ctx)
	child := newTestWidget(ctx, "child", nil)
	child.consume = true
	win.SetChild(child)

	if !win.RespondButton(press(1, 1)) {
		t.Fatalf("visible child did not get the press")
	}
	child.SetVisible(false)
	if win.RespondButton(press(1, 1)) || win.RespondMotion(motion(2, 2, 1, 1)) {
		t.Errorf("hidden child consumed an event")
	}
	if len(child.buttons) != 1 || len(child.motions) != 0 {
		t.Errorf("got %d buttons and %d motions; want 1 and 0", len(child.buttons), len(child.motions))
	}
}

func TestFixedLayoutWidgetPlacedTwice(t *testing.T) {
	ctx := newFakeContext()
	l := NewFixedLayout(ctx)
	a := newTestWidget(ctx, "a", nil)
	b := newTestWidget(ctx, "b", nil)
	c := newTestWidget(ctx, "c", nil)
	l.AddWidget(a, geom.Rect(0, 0, 10, 10)).
		AddWidget(b, geom.Rect(20, 0, 10, 10)).
		AddWidget(a, geom.Rect(40, 0, 10, 10)).
		AddWidget(c, geom.Rect(60, 0, 10, 10))

	l.BringToFront(a)
	if got, want := names(l.Placements()), []string{"a", "a", "c", "b"}; !reflect.DeepEqual(got, want) {
		t.Errorf("after BringToFront got %v; want %v", got, want)
	}
	if got := l.Placements(); got[0].Region.X != 40 || got[1].Region.X != 0 {
		t.Errorf("BringToFront reordered the placements of a: %v", got[:2])
	}

	l.MoveWidget(a, geom.Vec(5, 5))
	for _, p := range l.Placements() {
		if p.Widget == Widget(a) && p.Region.Position() != geom.Vec(5, 5) {
			t.Errorf("placement of a at %v was not moved", p.Region)
		}
	}

	posts := ctx.posts
	l.RemoveWidget(a)
	if got, want := names(l.Placements()), []string{"c", "b"}; !reflect.DeepEqual(got, want) {
		t.Errorf("after RemoveWidget got %v; want %v", got, want)
	}
	if ctx.posts != posts+1 {
		t.Errorf("RemoveWidget posted %d redisplays; want 1", ctx.posts-posts)
	}
}

// funcWidget is a widget value whose type is not comparable.
type funcWidget struct {
	draw func(geom.Rect2[int])
}

func (w funcWidget) Draw(region geom.Rect2[int])       { w.draw(region) }
func (funcWidget) RespondButton(MouseButtonEvent) bool { return false }
func (funcWidget) RespondMotion(MouseMotionEvent) bool { return false }
func (funcWidget) Enabled() bool                       { return true }
func (funcWidget) Locked() bool                        { return false }
func (funcWidget) Visible() bool                       { return true }

func TestFixedLayoutUncomparableWidget(t *testing.T) {
	ctx := newFakeContext()
	l := NewFixedLayout(ctx)
	drawn := 0
	f := funcWidget{draw: func(geom.Rect2[int]) { drawn++ }}
	a := newTestWidget(ctx, "a", nil)
	l.AddWidget(f, geom.Rect(0, 0, 10, 10)).
		AddWidget(a, geom.Rect(20, 20, 10, 10))

	l.BringToFront(f)
	l.MoveWidget(f, geom.Vec(50, 50))
	l.RemoveWidget(f)
	l.BringToFront(a)
	l.RespondButton(press(5, 5))
	l.RespondMotion(motion(8, 8, 3, 3))
	l.RespondButton(release(8, 8))
	l.Draw(geom.Rect(0, 0, 100, 100))

	got := l.Placements()
	if len(got) != 2 {
		t.Fatalf("got %d placements; want 2", len(got))
	}
	if got[0].Widget != Widget(a) {
		t.Errorf("got %T in front; want a", got[0].Widget)
	}
	if got[1].Region != geom.Rect(0, 0, 10, 10) {
		t.Errorf("uncomparable widget moved to %v", got[1].Region)
	}
	if drawn != 1 {
		t.Errorf("uncomparable widget drawn %d times; want 1", drawn)
	}
}
