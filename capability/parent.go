package capability

// Parent models a single parent/child relationship between two tasks'
// bundles: a parent cannot be deleted while it still has a live child, and
// a child clears its parent's reference to it on the way out. Spec §4.4
// "Parent". The same type plays both roles — "parent" and "child" are just
// which end of SetChild/ParentOf a given instance is.
type Parent struct {
	parent *Parent
	child  *Parent
}

// SetChild assigns c as this Parent's child, and (if c is non-nil) records
// this Parent as c's parent. Passing nil detaches any existing child
// without notifying it.
func (p *Parent) SetChild(c *Parent) {
	p.child = c
	if c != nil {
		c.parent = p
	}
}

// Child returns the current child, or nil.
func (p *Parent) Child() *Parent { return p.child }

// ParentOf returns the Parent this instance is a child of, or nil.
func (p *Parent) ParentOf() *Parent { return p.parent }

// Init implements Module.
func (p *Parent) Init(*Context) {}

// IsExeReady implements Module; Parent never gates execution.
func (p *Parent) IsExeReady() bool { return true }

// IsDelReady implements Module: blocked while a child is still attached.
func (p *Parent) IsDelReady() bool { return p.child == nil }

// PreExe implements Module.
func (p *Parent) PreExe() {}

// PostExe implements Module.
func (p *Parent) PostExe() {}

// PreDel implements Module: detaches from whatever this is a child of, so
// the parent's IsDelReady isn't left permanently blocked by a deleted task.
func (p *Parent) PreDel() {
	if p.parent != nil {
		p.parent.child = nil
		p.parent = nil
	}
}
