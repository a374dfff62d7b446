package ecs

import "sort"

// UpdateMotion integrates forces and velocities over dt seconds
func UpdateMotion(w *World, dt float64) {
	for id, vel := range w.Velocity {
		if f, ok := w.Force[id]; ok {
			vel.X += f.X * dt
			vel.Y += f.Y * dt
			w.Velocity[id] = vel
		}
		pos := w.Position[id]
		pos.X += vel.X * dt
		pos.Y += vel.Y * dt
		w.Position[id] = pos
	}
}

// UpdateLifetimes ages every entity by dt seconds and destroys the expired
// ones. It returns how many were destroyed.
func UpdateLifetimes(w *World, dt float64) int {
	var expired []EntityID
	for id, life := range w.Lifetime {
		life.Age += dt
		w.Lifetime[id] = life
		if life.Expired() {
			expired = append(expired, id)
		}
	}
	for _, id := range expired {
		w.DestroyEntity(id)
	}
	return len(expired)
}

// SortedIDs returns live entity IDs oldest first, the stable draw order
func SortedIDs(w *World) []EntityID {
	ids := make([]EntityID, 0, len(w.Position))
	for id := range w.Position {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
