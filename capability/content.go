package capability

// Content is a trivial typed-storage capability: it gives a bundle a named
// slot of data with no scheduling behavior of its own, the way the
// original's plain member-variable capabilities do. Spec §9 "supplemental
// modules"; grounded on original_source/modules/ModuleHub_M.h's pattern of
// letting a bundle carry plain payload alongside behavioral modules.
type Content[T any] struct {
	Value T
}

// Get returns the stored value.
func (c *Content[T]) Get() T { return c.Value }

// Set replaces the stored value.
func (c *Content[T]) Set(v T) { c.Value = v }

// Init implements Module.
func (c *Content[T]) Init(*Context) {}

// IsExeReady implements Module.
func (c *Content[T]) IsExeReady() bool { return true }

// IsDelReady implements Module.
func (c *Content[T]) IsDelReady() bool { return true }

// PreExe implements Module.
func (c *Content[T]) PreExe() {}

// PostExe implements Module.
func (c *Content[T]) PostExe() {}

// PreDel implements Module.
func (c *Content[T]) PreDel() {}
