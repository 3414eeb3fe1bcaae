package recording

import "image"

// ResourcePool stores resources referenced by recording commands.
// Images are stored by reference; callers must not mutate an image after
// recording it.
//
// ResourcePool is not safe for concurrent use. If concurrent access is needed,
// external synchronization must be provided.
type ResourcePool struct {
	images []image.Image
}

// NewResourcePool creates an empty resource pool.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		images: make([]image.Image, 0, 8),
	}
}

// AddImage adds an image to the pool and returns its reference.
// Adding the same *image.RGBA twice in a row reuses the first reference.
func (p *ResourcePool) AddImage(img image.Image) ImageRef {
	if n := len(p.images); n > 0 && samePointer(p.images[n-1], img) {
		// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
		return ImageRef(uint32(n - 1))
	}
	p.images = append(p.images, img)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return ImageRef(uint32(len(p.images) - 1))
}

// GetImage returns the image for the given reference.
// Returns nil if the reference is invalid.
func (p *ResourcePool) GetImage(ref ImageRef) image.Image {
	if int(ref) >= len(p.images) {
		return nil
	}
	return p.images[ref]
}

// ImageCount returns the number of images in the pool.
func (p *ResourcePool) ImageCount() int {
	return len(p.images)
}

// Clear removes all resources from the pool.
func (p *ResourcePool) Clear() {
	p.images = p.images[:0]
}

func samePointer(a, b image.Image) bool {
	ra, ok1 := a.(*image.RGBA)
	rb, ok2 := b.(*image.RGBA)
	return ok1 && ok2 && ra == rb
}
