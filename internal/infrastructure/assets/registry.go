// Package assets keeps decoded images by name and turns them into GPU
// textures on first use.
package assets

import (
	"image"
	"sort"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// Registry maps asset names to images.
// Put may be called from loader goroutines; Texture must be called from the
// frame loop.
type Registry struct {
	mu       sync.RWMutex
	images   map[string]image.Image
	textures map[string]*ebiten.Image
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		images:   make(map[string]image.Image),
		textures: make(map[string]*ebiten.Image),
	}
}

// Put registers img under name, replacing any previous image
func (r *Registry) Put(name string, img image.Image) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.images[name] = img
	delete(r.textures, name)
}

// Get returns the image registered under name
func (r *Registry) Get(name string) (image.Image, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	img, ok := r.images[name]
	return img, ok
}

// Has reports whether name is registered
func (r *Registry) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// Len returns the number of registered images
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.images)
}

// Names returns the registered names in sorted order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.images))
	for name := range r.images {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Texture returns the texture for name, or nil when the name is missing.
// Scenes treat nil as "draw nothing".
func (r *Registry) Texture(name string) *ebiten.Image {
	r.mu.Lock()
	defer r.mu.Unlock()
	if tex, ok := r.textures[name]; ok {
		return tex
	}
	img, ok := r.images[name]
	if !ok {
		return nil
	}
	tex := ebiten.NewImageFromImage(img)
	r.textures[name] = tex
	return tex
}
