// Copyright (c) 2026, The Chroma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package figure is a thin wrapper over gonum.org/v1/plot for the
// multi-panel figures this project produces: shared Latin Modern
// typography, optional inverted (dark background) styling, fractional
// panel layout, and PNG/SVG output.
package figure

import (
	"fmt"
	"image/color"
	"os"
	"sync"

	lmbold "github.com/go-fonts/latin-modern/lmroman10bold"
	lmitalic "github.com/go-fonts/latin-modern/lmroman10italic"
	lmregular "github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/lucasb-eyer/go-colorful"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"
)

// Typeface is the typeface name the Latin Modern faces are registered
// under.
const Typeface font.Typeface = "LatinModern"

var fontsOnce sync.Once

// registerFonts parses the embedded Latin Modern faces into the global
// font cache and makes them the plotting default.
func registerFonts() {
	fontsOnce.Do(func() {
		faces := []struct {
			data   []byte
			style  xfont.Style
			weight xfont.Weight
		}{
			{lmregular.TTF, xfont.StyleNormal, xfont.WeightNormal},
			{lmitalic.TTF, xfont.StyleItalic, xfont.WeightNormal},
			{lmbold.TTF, xfont.StyleNormal, xfont.WeightBold},
		}
		var coll font.Collection
		for _, f := range faces {
			fnt, err := opentype.Parse(f.data)
			if err != nil {
				panic(fmt.Errorf("figure: parsing Latin Modern: %w", err))
			}
			coll = append(coll, font.Face{
				Font: font.Font{Typeface: Typeface, Style: f.style, Weight: f.weight},
				Face: fnt,
			})
		}
		font.DefaultCache.Add(coll)
		plot.DefaultFont = font.Font{Typeface: Typeface}
	})
}

// Rect is a panel position in fractions of the figure area,
// origin bottom-left.
type Rect struct {
	Left, Bottom, Width, Height float64
}

// Figure is a named collection of panels sharing size and styling.
type Figure struct {
	Name string

	// Width and Height are in inches.
	Width, Height float64

	// Inverted selects white-on-black styling for all panels.
	Inverted bool

	panels []*Panel
}

// Panel wraps one plot placed at a fractional position within the
// figure.  The embedded Plot is fully accessible for titles, labels,
// limits, and anything the helpers do not cover.
type Panel struct {
	*plot.Plot
	Name string
	rect Rect
}

// New returns an empty figure of the given size in inches.
func New(name string, width, height float64, inverted bool) *Figure {
	registerFonts()
	return &Figure{Name: name, Width: width, Height: height, Inverted: inverted}
}

// GreyLevel returns the grey with the given lightness, flipped when
// the figure is inverted so that 0 is always "ink" and 1 is always
// "paper".
func (f *Figure) GreyLevel(v float64) color.Color {
	if f.Inverted {
		v = 1 - v
	}
	return colorful.Color{R: v, G: v, B: v}
}

// AddPanel adds a panel with the given title at the given fractional
// position; use Rect{0, 0, 1, 1} for a single full-figure panel.
func (f *Figure) AddPanel(name, title string, rect Rect) *Panel {
	p := &Panel{Plot: plot.New(), Name: name, rect: rect}
	p.Title.Text = title
	f.style(p.Plot)
	f.panels = append(f.panels, p)
	return p
}

// Panel returns the named panel, or nil.
func (f *Figure) Panel(name string) *Panel {
	for _, p := range f.panels {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// style applies the shared figure styling to a fresh plot.
func (f *Figure) style(p *plot.Plot) {
	ink := f.GreyLevel(0)
	paper := f.GreyLevel(1)
	p.BackgroundColor = paper
	p.Title.TextStyle.Color = ink
	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		ax.LineStyle.Color = ink
		ax.Label.TextStyle.Color = ink
		ax.Tick.LineStyle.Color = ink
		ax.Tick.Label.Color = ink
	}
}

// Line adds a line through the given points.
func (p *Panel) Line(xy [][2]float64, c color.Color, width vg.Length) error {
	l, err := plotter.NewLine(toXYs(xy))
	if err != nil {
		return fmt.Errorf("figure: line: %w", err)
	}
	l.LineStyle.Color = c
	l.LineStyle.Width = width
	p.Add(l)
	return nil
}

// Scatter adds circular markers at the given points.
func (p *Panel) Scatter(xy [][2]float64, c color.Color, radius vg.Length) error {
	s, err := plotter.NewScatter(toXYs(xy))
	if err != nil {
		return fmt.Errorf("figure: scatter: %w", err)
	}
	s.GlyphStyle.Color = c
	s.GlyphStyle.Radius = radius
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(s)
	return nil
}

// Fill adds a filled polygon with no outline.
func (p *Panel) Fill(xy [][2]float64, c color.Color) error {
	poly, err := plotter.NewPolygon(toXYs(xy))
	if err != nil {
		return fmt.Errorf("figure: fill: %w", err)
	}
	poly.Color = c
	poly.LineStyle.Color = c
	poly.LineStyle.Width = 0.5
	p.Add(poly)
	return nil
}

// Annotate places text at a data coordinate.
func (p *Panel) Annotate(x, y float64, text string, c color.Color) error {
	l, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: x, Y: y}},
		Labels: []string{text},
	})
	if err != nil {
		return fmt.Errorf("figure: annotate: %w", err)
	}
	for i := range l.TextStyle {
		l.TextStyle[i].Color = c
	}
	p.Add(l)
	return nil
}

func toXYs(xy [][2]float64) plotter.XYs {
	out := make(plotter.XYs, len(xy))
	for i, p := range xy {
		out[i] = plotter.XY{X: p[0], Y: p[1]}
	}
	return out
}

// draw renders every panel into its sub-rectangle of the canvas.
func (f *Figure) draw(dc draw.Canvas) {
	w := dc.Max.X - dc.Min.X
	h := dc.Max.Y - dc.Min.Y
	for _, p := range f.panels {
		sub := draw.Canvas{
			Canvas: dc,
			Rectangle: vg.Rectangle{
				Min: vg.Point{
					X: dc.Min.X + vg.Length(p.rect.Left)*w,
					Y: dc.Min.Y + vg.Length(p.rect.Bottom)*h,
				},
				Max: vg.Point{
					X: dc.Min.X + vg.Length(p.rect.Left+p.rect.Width)*w,
					Y: dc.Min.Y + vg.Length(p.rect.Bottom+p.rect.Height)*h,
				},
			},
		}
		p.Plot.Draw(sub)
	}
}

// SavePNG renders the figure to a PNG file at the given resolution.
func (f *Figure) SavePNG(path string, dpi int) error {
	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(f.Width)*vg.Inch, vg.Length(f.Height)*vg.Inch),
		vgimg.UseDPI(dpi),
		vgimg.UseBackgroundColor(f.GreyLevel(1)),
	)
	f.draw(draw.New(c))
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("figure: saving %s: %w", f.Name, err)
	}
	defer out.Close()
	png := vgimg.PngCanvas{Canvas: c}
	if _, err := png.WriteTo(out); err != nil {
		return fmt.Errorf("figure: saving %s: %w", f.Name, err)
	}
	return nil
}

// SaveSVG renders the figure to an SVG file.
func (f *Figure) SaveSVG(path string) error {
	c := vgsvg.New(vg.Length(f.Width)*vg.Inch, vg.Length(f.Height)*vg.Inch)
	f.draw(draw.New(c))
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("figure: saving %s: %w", f.Name, err)
	}
	defer out.Close()
	if _, err := c.WriteTo(out); err != nil {
		return fmt.Errorf("figure: saving %s: %w", f.Name, err)
	}
	return nil
}
