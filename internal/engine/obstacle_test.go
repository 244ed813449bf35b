package engine

import (
	"testing"

	"github.com/vovakirdan/space-garbage/internal/core"
)

func TestRegistryRegisterAssignsIdentity(t *testing.T) {
	r := NewRegistry()

	a := r.Register(1, 1, 2, 2)
	b := r.Register(1, 1, 2, 2)
	if a.ID == b.ID {
		t.Error("equal obstacles must still have distinct ids")
	}
	if r.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", r.Len())
	}
}

func TestRegistryUnregisterIdempotent(t *testing.T) {
	r := NewRegistry()
	a := r.Register(1, 1, 2, 2)
	b := r.Register(5, 5, 2, 2)

	r.Unregister(a)
	r.Unregister(a) // Should be a no-op
	r.Unregister(nil)

	if r.Len() != 1 {
		t.Fatalf("Len() = %d, expected 1", r.Len())
	}
	if r.Contains(a) || !r.Contains(b) {
		t.Error("wrong obstacle removed")
	}
}

func TestRegistryCollisionSymmetry(t *testing.T) {
	r := NewRegistry()
	obstacles := []*Obstacle{
		r.Register(8, 9, 5, 3),
		r.Register(10, 10, 1, 1),
		r.Register(12.5, 11, 2, 4),
		r.Register(0, 0, 3, 3),
		r.Register(2, 3, 1, 1),
		r.Register(20, 40, 4, 8),
	}

	for _, o1 := range obstacles {
		for _, o2 := range obstacles {
			if o1.Collides(o2.Rect()) != o2.Collides(o1.Rect()) {
				t.Errorf("collision between %d and %d is not symmetric", o1.ID, o2.ID)
			}
		}
	}
}

func TestRegistryHasCollision(t *testing.T) {
	r := NewRegistry()
	r.Register(8, 9, 5, 3) // rows 8-12, columns 9-11

	tests := []struct {
		name     string
		rect     core.Rect
		expected bool
	}{
		{"craft inside", core.NewRect(10, 10, 3, 3), true},
		{"touching last row", core.NewRect(12, 11, 1, 1), true},
		{"below", core.NewRect(13, 9, 2, 2), false},
		{"left", core.NewRect(8, 6, 5, 3), false},
		{"covering", core.NewRect(0, 0, 30, 30), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.HasCollision(tc.rect); got != tc.expected {
				t.Errorf("HasCollision(%+v) = %v, expected %v", tc.rect, got, tc.expected)
			}
		})
	}

	if !r.HasCollisionAt(12, 11) || r.HasCollisionAt(12, 12) {
		t.Error("HasCollisionAt disagrees with the obstacle rectangle")
	}
}

func TestRegistryFollowsObstacleMovement(t *testing.T) {
	r := NewRegistry()
	o := r.Register(1, 5, 2, 2)

	if r.HasCollisionAt(6, 5) {
		t.Fatal("unexpected collision before move")
	}

	o.Row = 5.5 // rounds to 6
	if !r.HasCollisionAt(6, 5) {
		t.Error("registry should see the owner's latest position")
	}
}

func TestRegistryCollisionsReturnsAllMatches(t *testing.T) {
	r := NewRegistry()
	a := r.Register(0, 0, 4, 4)
	r.Register(10, 10, 2, 2)
	c := r.Register(2, 2, 4, 4)

	hits := r.Collisions(core.NewRect(3, 3, 1, 1))
	if len(hits) != 2 || hits[0] != a || hits[1] != c {
		t.Errorf("Collisions() = %v, expected both overlapping obstacles in order", hits)
	}

	if hits := r.Collisions(core.NewRect(20, 20, 1, 1)); len(hits) != 0 {
		t.Errorf("Collisions() on empty area = %v", hits)
	}
}

func TestRegistryAllIsCopy(t *testing.T) {
	r := NewRegistry()
	r.Register(0, 0, 1, 1)

	all := r.All()
	all[0] = nil
	if r.All()[0] == nil {
		t.Error("All() must not expose internal storage")
	}
}
