package theme

import "strings"

// ClassList is an ordered set of CSS classes, the model of an element's class attribute.
type ClassList struct {
	classes []string
}

// NewClassList creates a class list from a space-separated class attribute.
// Duplicates are dropped, order of first appearance is kept.
func NewClassList(attr string) *ClassList {
	c := &ClassList{}
	for _, cls := range strings.Fields(attr) {
		c.Add(cls)
	}
	return c
}

// Contains reports whether class is present.
func (c *ClassList) Contains(class string) bool {
	for _, cls := range c.classes {
		if cls == class {
			return true
		}
	}
	return false
}

// Add appends class if not present.
func (c *ClassList) Add(class string) {
	if class == "" || c.Contains(class) {
		return
	}
	c.classes = append(c.classes, class)
}

// Remove drops class if present.
func (c *ClassList) Remove(class string) {
	for i, cls := range c.classes {
		if cls == class {
			c.classes = append(c.classes[:i], c.classes[i+1:]...)
			return
		}
	}
}

// String returns the class attribute value.
func (c *ClassList) String() string {
	return strings.Join(c.classes, " ")
}
