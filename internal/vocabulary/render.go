package vocabulary

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var categoryColors = map[string]color.Attribute{
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"blue":    color.FgBlue,
	"magenta": color.FgMagenta,
	"cyan":    color.FgCyan,
	"white":   color.FgWhite,
}

// Renderer writes categories and entries as terminal list items.
type Renderer struct {
	writer  io.Writer
	noColor bool
}

type RendererOption func(*Renderer)

// WithoutColor disables ANSI colors regardless of the terminal.
func WithoutColor() RendererOption {
	return func(r *Renderer) {
		r.noColor = true
	}
}

func NewRenderer(writer io.Writer, options ...RendererOption) *Renderer {
	renderer := &Renderer{
		writer: writer,
	}
	for _, option := range options {
		option(renderer)
	}
	return renderer
}

// RenderCatalog writes one line per category with its entry count.
func (r *Renderer) RenderCatalog(catalog *Catalog) error {
	for _, category := range catalog.Categories {
		name := r.categoryColor(category, color.Bold)
		if _, err := fmt.Fprintf(r.writer, "%-10s %s (%d words)\n",
			category.ID, name.Sprint(category.Name), len(category.Entries)); err != nil {
			return fmt.Errorf("fmt.Fprintf > %w", err)
		}
	}
	return nil
}

// RenderCategory writes the category header followed by every entry numbered from 1.
func (r *Renderer) RenderCategory(category Category) error {
	header := r.categoryColor(category, color.Bold, color.Underline)
	if _, err := fmt.Fprintln(r.writer, header.Sprint(category.Name)); err != nil {
		return fmt.Errorf("fmt.Fprintln > %w", err)
	}
	for i, entry := range category.Entries {
		if err := r.RenderEntry(category, i+1, entry); err != nil {
			return err
		}
	}
	return nil
}

// RenderEntry writes a single list item: the Miwok text in the category color,
// the native text, and the image handle when the entry has one.
func (r *Renderer) RenderEntry(category Category, number int, entry Entry) error {
	miwok := r.categoryColor(category, color.Bold)
	line := fmt.Sprintf("%3d. %s  %s", number, miwok.Sprint(entry.Miwok), entry.Native)
	if entry.HasImage() {
		line += r.newColor(color.Faint).Sprintf("  [image: %s]", entry.Image)
	}
	if _, err := fmt.Fprintln(r.writer, line); err != nil {
		return fmt.Errorf("fmt.Fprintln > %w", err)
	}
	return nil
}

func (r *Renderer) categoryColor(category Category, attributes ...color.Attribute) *color.Color {
	if attribute, ok := categoryColors[category.Color]; ok {
		attributes = append(attributes, attribute)
	}
	return r.newColor(attributes...)
}

func (r *Renderer) newColor(attributes ...color.Attribute) *color.Color {
	c := color.New(attributes...)
	if r.noColor {
		c.DisableColor()
	}
	return c
}
