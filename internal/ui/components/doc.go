// Package components provides the terminal-aesthetic widget set rendered with
// lipgloss.
//
// # Overview
//
// Every widget is a builder that holds display flags only (variant, checked,
// focused, disabled, value, label) and renders to a string. Rendering is a
// pure function of those flags and the RenderContext; nothing here handles
// input. The Spinner is the single exception: it owns a frame index driven by
// bubbletea tick messages between Start and Stop.
//
// # Semantic tones
//
// Styling is resolved through a Tone (Neutral, Primary, Secondary, Info,
// Success, Warning, Error). A Theme maps every Tone to a colour, icon and
// title, and every component variant maps to exactly one Tone:
//
//	badge := components.NewBadge("ready").WithVariant(components.BadgeVariantSuccess)
//	alert := components.NewAlert("disk almost full").WithVariant(components.AlertVariantWarning)
//
// # Glyphs
//
// Affordances (checkbox marks, radio dots, toggle tracks, progress cells,
// spinner frames) come from a GlyphSet. UnicodeGlyphs is the default;
// ASCIIGlyphs targets terminals without reliable Unicode:
//
//	theme := components.DefaultTheme().WithGlyphs(components.ASCIIGlyphs())
//	out := components.NewProgress(45).ViewWithContext(components.DefaultContext().WithTheme(theme))
//
// # Composition
//
// Components compose through ui.Renderable:
//
//	view := components.VStack(
//		components.NewHeading("Settings"),
//		components.NewCheckbox("Enable sync").WithChecked(true),
//		components.NewToggle("Dark mode").WithChecked(true),
//		components.NewInput().WithLabel("Name").WithPlaceholder("your name").WithFocused(true),
//	).WithGap(1)
//
// # Style modifiers
//
// WithAppliers accepts theme-aware StyleFunc values such as Foreground(tone),
// Border(variant), Padding(size) and Typography(variant). Button, Badge and
// Alert also resolve a registered strategy from the theme's VariantRegistry.
package components
