package components

import (
	"github.com/alexisbeaulieu97/tuimorphic/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Container is a box around a vertical stack of children. Card builds on it.
type Container struct {
	BaseComponent
	children []ui.Renderable
	layout   *Stack
	padding  Spacing
}

// NewContainer creates a new container with default settings.
func NewContainer(children ...ui.Renderable) *Container {
	return &Container{
		BaseComponent: NewBaseComponent(),
		children:      children,
		layout:        VStack(children...),
	}
}

// View renders the container and its children.
func (c *Container) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the container with layout context.
func (c *Container) ViewWithContext(ctx RenderContext) string {
	ctx = ctx.normalized()
	style := c.ComputeStyle(ctx.Theme)

	if !c.padding.IsZero() {
		style = style.Padding(c.padding.Top, c.padding.Right, c.padding.Bottom, c.padding.Left)
	}

	// Children see the width left inside the frame.
	inner := ctx
	if width := ctx.availableWidth(0, 0); width > 0 {
		frame := style.GetHorizontalFrameSize()
		inner = ctx.WithParentWidth(max(width-frame, 0)).WithConstraints(Unconstrained())
	}

	var content string
	if len(c.children) > 0 {
		content = c.layout.ViewWithContext(inner)
	}
	return style.Render(content)
}

// WithPadding sets the padding using a Spacing value object.
func (c *Container) WithPadding(padding Spacing) *Container {
	c.padding = padding
	return c
}

// WithStyle sets the container style.
func (c *Container) WithStyle(style lipgloss.Style) *Container {
	c.SetStyle(style)
	return c
}

// WithAppliers applies theme-based style modifiers.
func (c *Container) WithAppliers(appliers ...StyleFunc) *Container {
	c.AddAppliers(appliers...)
	return c
}

// WithGap sets the gap between children.
func (c *Container) WithGap(gap int) *Container {
	c.layout.WithGap(gap)
	return c
}

// Add appends children to the container.
func (c *Container) Add(children ...ui.Renderable) *Container {
	c.children = append(c.children, children...)
	c.layout.Add(children...)
	return c
}

// Children returns the child renderables.
func (c *Container) Children() []ui.Renderable {
	return c.children
}
