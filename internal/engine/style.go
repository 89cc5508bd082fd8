package engine

import "math"

// Style holds the cosmetic attributes shown with a document.
// The engine carries them but never interprets them.
type Style struct {
	Family   string
	Size     float64
	Bold     bool
	Italic   bool
	WordWrap bool
}

// DefaultStyle returns the style of a new document.
func DefaultStyle() Style {
	return Style{
		Family:   "Microsoft YaHei",
		Size:     DefaultZoom().Default,
		WordWrap: true,
	}
}

// Zoom bounds font size changes made by ZoomIn and ZoomOut.
type Zoom struct {
	Min     float64
	Max     float64
	Step    float64
	Default float64
}

// DefaultZoom returns the default zoom limits.
func DefaultZoom() Zoom {
	return Zoom{Min: 8, Max: 72, Step: 2, Default: 14}
}

// Valid reports whether the limits are usable.
func (z Zoom) Valid() bool {
	return z.Min > 0 && z.Min <= z.Default && z.Default <= z.Max && z.Step > 0
}

// Style returns the current style attributes.
func (d *Document) Style() Style {
	return d.style
}

// SetStyle replaces the style attributes.
func (d *Document) SetStyle(s Style) {
	d.style = s
}

// SetFont sets the font attributes, keeping word wrap as it is.
func (d *Document) SetFont(family string, size float64, bold, italic bool) {
	d.style.Family = family
	d.style.Size = size
	d.style.Bold = bold
	d.style.Italic = italic
}

// ToggleWordWrap flips word wrapping and returns the new value.
func (d *Document) ToggleWordWrap() bool {
	d.style.WordWrap = !d.style.WordWrap
	return d.style.WordWrap
}

// ZoomIn grows the font by one step, up to the maximum.
func (d *Document) ZoomIn() float64 {
	d.style.Size = math.Min(d.style.Size+d.zoom.Step, d.zoom.Max)
	return d.style.Size
}

// ZoomOut shrinks the font by one step, down to the minimum.
func (d *Document) ZoomOut() float64 {
	d.style.Size = math.Max(d.style.Size-d.zoom.Step, d.zoom.Min)
	return d.style.Size
}

// ResetZoom restores the default font size.
func (d *Document) ResetZoom() float64 {
	d.style.Size = d.zoom.Default
	return d.style.Size
}

// ZoomPercent returns the font size relative to the default, as a rounded
// percentage.
func (d *Document) ZoomPercent() int {
	return int(math.Round(d.style.Size / d.zoom.Default * 100))
}
