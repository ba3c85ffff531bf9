package geom

// Number is the set of numeric types vectors and rectangles can be built on.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Vector2 is a 2D vector. It is used for positions, motion deltas and sizes.
type Vector2[T Number] struct {
	X, Y T
}

// Vec returns the vector (x, y).
func Vec[T Number](x, y T) Vector2[T] {
	return Vector2[T]{X: x, Y: y}
}

// Add returns v+w.
func (v Vector2[T]) Add(w Vector2[T]) Vector2[T] {
	return Vector2[T]{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns v-w.
func (v Vector2[T]) Sub(w Vector2[T]) Vector2[T] {
	return Vector2[T]{X: v.X - w.X, Y: v.Y - w.Y}
}

// Rect2 is an axis aligned rectangle given by its top-left position and
// its size.
type Rect2[T Number] struct {
	X, Y T
	W, H T
}

// Rect returns the rectangle at (x, y) with width w and height h.
func Rect[T Number](x, y, w, h T) Rect2[T] {
	return Rect2[T]{X: x, Y: y, W: w, H: h}
}

// RectAt returns the rectangle at pos with the given size.
func RectAt[T Number](pos, size Vector2[T]) Rect2[T] {
	return Rect2[T]{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
}

// Position returns the top-left corner of r.
func (r Rect2[T]) Position() Vector2[T] {
	return Vector2[T]{X: r.X, Y: r.Y}
}

// SetPosition moves r so that its top-left corner is p.
func (r *Rect2[T]) SetPosition(p Vector2[T]) {
	r.X = p.X
	r.Y = p.Y
}

// Size returns the width and height of r.
func (r Rect2[T]) Size() Vector2[T] {
	return Vector2[T]{X: r.W, Y: r.H}
}

// Wrap reports whether p lies inside r. Points on the edges are inside.
func (r Rect2[T]) Wrap(p Vector2[T]) bool {
	return r.X <= p.X && p.X <= r.X+r.W &&
		r.Y <= p.Y && p.Y <= r.Y+r.H
}

// Subrectangle translates child, expressed relative to r, into the
// coordinate space r itself is expressed in.
func (r Rect2[T]) Subrectangle(child Rect2[T]) Rect2[T] {
	return Rect2[T]{X: r.X + child.X, Y: r.Y + child.Y, W: child.W, H: child.H}
}
