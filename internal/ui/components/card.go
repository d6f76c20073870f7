package components

import (
	"github.com/alexisbeaulieu97/tuimorphic/internal/ui"
)

// Card is a rounded, bordered group of content with an optional title and
// footer.
type Card struct {
	*Container
	title  string
	footer ui.Renderable
}

// NewCard creates a new card with default card styling.
func NewCard(children ...ui.Renderable) *Card {
	container := NewContainer(children...).WithAppliers(CardBaseStyle()...)
	return &Card{Container: container}
}

// View renders the card.
func (c *Card) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the title, body and footer inside the card frame.
func (c *Card) ViewWithContext(ctx RenderContext) string {
	body := NewContainer()
	body.BaseComponent = c.Container.BaseComponent
	body.padding = c.padding
	body.WithGap(c.layout.Gap())

	if c.title != "" {
		body.Add(NewHeading(c.title).WithLevel(2))
	}
	body.Add(c.Children()...)
	if c.footer != nil {
		body.Add(HorizontalDivider().WithTone(ToneNeutral), c.footer)
	}
	return body.ViewWithContext(ctx)
}

// WithTitle sets the heading rendered at the top of the card.
func (c *Card) WithTitle(title string) *Card {
	c.title = title
	return c
}

// WithFooter sets content rendered below a divider at the bottom.
func (c *Card) WithFooter(footer ui.Renderable) *Card {
	c.footer = footer
	return c
}

// WithGap sets the gap between the card's children.
func (c *Card) WithGap(gap int) *Card {
	c.Container.WithGap(gap)
	return c
}

// Title returns the card title.
func (c *Card) Title() string {
	return c.title
}

// Footer returns the card footer, if any.
func (c *Card) Footer() ui.Renderable {
	return c.footer
}
