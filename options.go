package docsgen

import "github.com/gourav-1711/docs-genrator/compose"

// A4 portrait dimensions in millimeters.
const (
	a4Width  = 210.0
	a4Height = 297.0

	letterMargin = 15.0
	billMargin   = 8.0
)

// Option is a functional option for the render entry points.
type Option func(*renderConfig)

type renderConfig struct {
	pageWidth  float64
	pageHeight float64
	margin     float64
}

// WithPageSize overrides the page dimensions, in millimeters.
func WithPageSize(width, height float64) Option {
	return func(c *renderConfig) {
		c.pageWidth = width
		c.pageHeight = height
	}
}

// WithMargin overrides the page margin, in millimeters.
func WithMargin(margin float64) Option {
	return func(c *renderConfig) {
		c.margin = margin
	}
}

func newConfig(margin float64, opts ...Option) renderConfig {
	cfg := renderConfig{
		pageWidth:  a4Width,
		pageHeight: a4Height,
		margin:     margin,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func (c renderConfig) geometry() compose.Geometry {
	return compose.Geometry{
		PageWidth:  c.pageWidth,
		PageHeight: c.pageHeight,
		Margin:     c.margin,
	}
}
