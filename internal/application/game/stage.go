package game

import (
	"log"

	"github.com/younwookim/showcase/internal/application/scene"
)

// Stage records which scenes are attached for presentation
type Stage struct {
	attached []scene.Scene
}

// Attach adds s to the stage
func (st *Stage) Attach(s scene.Scene) {
	st.attached = append(st.attached, s)
	log.Printf("[Stage] attached %T", s)
}

// Detach removes s from the stage; unknown scenes are ignored
func (st *Stage) Detach(s scene.Scene) {
	for i, other := range st.attached {
		if other == s {
			st.attached = append(st.attached[:i], st.attached[i+1:]...)
			log.Printf("[Stage] detached %T", s)
			return
		}
	}
}

// Len returns the number of attached scenes
func (st *Stage) Len() int {
	return len(st.attached)
}
