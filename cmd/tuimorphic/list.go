package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tuimorphic/internal/scene"
	"github.com/alexisbeaulieu97/tuimorphic/internal/ui/components"
)

type listOptions struct {
	jsonOutput bool
}

func newListCmd() *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List widget kinds, variants, themes and glyph sets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.jsonOutput {
				return renderCatalogJSON(cmd, buildCatalog())
			}
			return renderCatalogTable(cmd, buildCatalog())
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

type catalogKind struct {
	Kind     string   `json:"kind"`
	Variants []string `json:"variants,omitempty"`
	Children bool     `json:"children"`
}

type catalog struct {
	Version string        `json:"version"`
	Kinds   []catalogKind `json:"kinds"`
	Tones   []string      `json:"tones"`
	Themes  []string      `json:"themes"`
	Glyphs  []string      `json:"glyphs"`
}

func buildCatalog() catalog {
	kinds := scene.Kinds()
	c := catalog{
		Version: "1.0",
		Kinds:   make([]catalogKind, len(kinds)),
		Themes:  components.ThemeNames(),
		Glyphs:  []string{components.UnicodeGlyphs().Name, components.ASCIIGlyphs().Name},
	}
	for i, kind := range kinds {
		c.Kinds[i] = catalogKind{Kind: kind, Variants: scene.Variants(kind), Children: scene.AcceptsChildren(kind)}
	}
	for _, tone := range components.Tones() {
		c.Tones = append(c.Tones, tone.String())
	}
	return c
}

func renderCatalogTable(cmd *cobra.Command, c catalog) error {
	out := cmd.OutOrStdout()
	heading := color.New(color.Bold)
	muted := color.New(color.Faint)

	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "KIND\tVARIANTS\tCHILDREN")
	for _, k := range c.Kinds {
		variants := muted.Sprint("-")
		if len(k.Variants) > 0 {
			variants = strings.Join(k.Variants, ", ")
		}
		children := "no"
		if k.Children {
			children = "yes"
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\n", k.Kind, variants, children)
	}
	if err := writer.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s %s\n", heading.Sprint("Tones:"), strings.Join(c.Tones, ", "))
	fmt.Fprintf(out, "%s %s\n", heading.Sprint("Themes:"), strings.Join(c.Themes, ", "))
	fmt.Fprintf(out, "%s %s\n", heading.Sprint("Glyphs:"), strings.Join(c.Glyphs, ", "))
	return nil
}

func renderCatalogJSON(cmd *cobra.Command, c catalog) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(c)
}
