package page

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/kyaoi/termbridge/internal/zoom"
)

// Frame represents a single document frame in a page's frame tree.
type Frame struct {
	ID       zoom.FrameID
	Name     string
	Parent   *Frame
	Children []*Frame
}

func newFrame(name string) *Frame {
	return &Frame{
		ID:   zoom.FrameID(uuid.NewString()),
		Name: name,
	}
}

// ChildByName returns the child frame with the given name if it exists.
func (f *Frame) ChildByName(name string) *Frame {
	for _, child := range f.Children {
		if child.Name == name {
			return child
		}
	}
	return nil
}

// AddChild appends a child frame and keeps children sorted by name.
func (f *Frame) AddChild(child *Frame) {
	child.Parent = f
	f.Children = append(f.Children, child)
	f.sortChildren()
}

// Walk visits the frame and its descendants depth first.
func (f *Frame) Walk(fn func(frame *Frame, depth int)) {
	f.walk(fn, 0)
}

func (f *Frame) walk(fn func(*Frame, int), depth int) {
	fn(f, depth)
	for _, child := range f.Children {
		child.walk(fn, depth+1)
	}
}

func (f *Frame) sortChildren() {
	sort.Slice(f.Children, func(i, j int) bool {
		return strings.ToLower(f.Children[i].Name) < strings.ToLower(f.Children[j].Name)
	})
}
