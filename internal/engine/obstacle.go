package engine

import (
	"github.com/vovakirdan/space-garbage/internal/core"
)

// ObstacleID identifies an obstacle for the lifetime of a registry.
type ObstacleID uint64

// Obstacle is a collidable rectangle owned by exactly one task, which is the
// only writer of Row and Column.
type Obstacle struct {
	ID     ObstacleID
	Row    float64
	Column float64
	Height int
	Width  int
}

// Rect returns the cells the obstacle occupies, using the same rounding as
// rendering.
func (o *Obstacle) Rect() core.Rect {
	return core.NewRect(core.CellOf(o.Row), core.CellOf(o.Column), o.Height, o.Width)
}

// Collides reports whether the obstacle shares a cell with r.
func (o *Obstacle) Collides(r core.Rect) bool {
	return o.Rect().Intersects(r)
}

// Registry is the set of in-flight obstacles. It preserves registration
// order so queries are deterministic.
type Registry struct {
	nextID ObstacleID
	items  []*Obstacle
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a new obstacle and returns it.
func (r *Registry) Register(row, col float64, height, width int) *Obstacle {
	r.nextID++
	o := &Obstacle{
		ID:     r.nextID,
		Row:    row,
		Column: col,
		Height: height,
		Width:  width,
	}
	r.items = append(r.items, o)
	return o
}

// Unregister removes o. Removing an absent obstacle is a no-op.
func (r *Registry) Unregister(o *Obstacle) {
	if o == nil {
		return
	}
	for i, item := range r.items {
		if item.ID == o.ID {
			copy(r.items[i:], r.items[i+1:])
			r.items[len(r.items)-1] = nil
			r.items = r.items[:len(r.items)-1]
			return
		}
	}
}

// Contains reports whether o is currently registered.
func (r *Registry) Contains(o *Obstacle) bool {
	for _, item := range r.items {
		if item.ID == o.ID {
			return true
		}
	}
	return false
}

// HasCollision reports whether rect overlaps any registered obstacle.
func (r *Registry) HasCollision(rect core.Rect) bool {
	for _, o := range r.items {
		if o.Collides(rect) {
			return true
		}
	}
	return false
}

// HasCollisionAt reports whether the cell (row, col) is inside any obstacle.
func (r *Registry) HasCollisionAt(row, col int) bool {
	return r.HasCollision(core.NewRect(row, col, 1, 1))
}

// Collisions returns every obstacle overlapping rect in registration order.
// No single best match is chosen.
func (r *Registry) Collisions(rect core.Rect) []*Obstacle {
	var hits []*Obstacle
	for _, o := range r.items {
		if o.Collides(rect) {
			hits = append(hits, o)
		}
	}
	return hits
}

// Len returns the number of registered obstacles.
func (r *Registry) Len() int {
	return len(r.items)
}

// All returns a copy of the registered obstacles.
func (r *Registry) All() []*Obstacle {
	out := make([]*Obstacle, len(r.items))
	copy(out, r.items)
	return out
}
