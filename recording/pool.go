package recording

import (
	draft "github.com/gogpu/gg-draft"
	"github.com/gogpu/gg-draft/text"
)

// ResourcePool stores the resources referenced by recording commands.
// Paths are cloned on insertion so later changes to the drawing do not
// alter the recording. Font sources are shared and deduplicated.
//
// ResourcePool is not safe for concurrent use.
type ResourcePool struct {
	paths []*draft.Path
	fonts []*text.FontSource
}

// NewResourcePool creates an empty resource pool.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		paths: make([]*draft.Path, 0, 64),
		fonts: make([]*text.FontSource, 0, 2),
	}
}

// AddPath adds a copy of path to the pool and returns its reference.
func (p *ResourcePool) AddPath(path *draft.Path) PathRef {
	if path == nil {
		path = draft.NewPath()
	}
	p.paths = append(p.paths, path.Clone())
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return PathRef(uint32(len(p.paths) - 1))
}

// Path returns the path for ref, or nil.
func (p *ResourcePool) Path(ref PathRef) *draft.Path {
	if int(ref) >= len(p.paths) {
		return nil
	}
	return p.paths[ref]
}

// PathCount returns the number of paths in the pool.
func (p *ResourcePool) PathCount() int {
	return len(p.paths)
}

// AddFont returns the reference of source, adding it if needed. A nil
// source stands for text.Default().
func (p *ResourcePool) AddFont(source *text.FontSource) FontRef {
	if source == nil {
		source = text.Default()
	}
	for i, f := range p.fonts {
		if f == source {
			// #nosec G115 -- pool size is bounded by available memory
			return FontRef(uint32(i))
		}
	}
	p.fonts = append(p.fonts, source)
	// #nosec G115 -- pool size is bounded by available memory
	return FontRef(uint32(len(p.fonts) - 1))
}

// Font returns the font source for ref, or nil.
func (p *ResourcePool) Font(ref FontRef) *text.FontSource {
	if int(ref) >= len(p.fonts) {
		return nil
	}
	return p.fonts[ref]
}

// FontCount returns the number of font sources in the pool.
func (p *ResourcePool) FontCount() int {
	return len(p.fonts)
}
