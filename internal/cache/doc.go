// Package cache provides the sharded LRU cache canvas uses for glyph
// outlines.
//
//	c := cache.New[key, sfnt.Segments](128, hashKey)
//	segs, err := c.GetOrLoad(k, func() (sfnt.Segments, error) {
//	    return loadOutline(k)
//	})
//
// A Cache is safe for concurrent use and must not be copied after
// creation.
package cache
