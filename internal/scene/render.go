package scene

import (
	"image"
	"math"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
)

// Padding around the shapes, in pixels
const renderPadding = 40

// Draw the scene, flipped so that +y points up, with every shape that overlaps
// something filled red and the rest filled green.
func (s *Scene) Image(scale float64) (image.Image, error) {
	if scale <= 0 {
		return nil, errors.Errorf("scale must be positive, got %g", scale)
	}
	pairs, err := s.Overlaps()
	if err != nil {
		return nil, err
	}
	overlapping := make(map[string]struct{})
	for _, pair := range pairs {
		overlapping[pair.A] = struct{}{}
		overlapping[pair.B] = struct{}{}
	}

	minX, minY, maxX, maxY := s.bounds()
	if len(s.Shapes) == 0 {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}
	width := int(scale*(maxX-minX)) + renderPadding*2
	height := int(scale*(maxY-minY)) + renderPadding*2

	// The transform is applied by hand rather than through the context so that
	// labels don't come out upside down.
	toScreen := func(x, y float64) (float64, float64) {
		return renderPadding + scale*(x-minX), float64(height) - renderPadding - scale*(y-minY)
	}

	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetLineWidth(2)

	for _, shape := range s.Shapes {
		vertices := shape.Vertices()
		for i, v := range vertices {
			x, y := toScreen(v.X, v.Y)
			if i == 0 {
				c.MoveTo(x, y)
			} else {
				c.LineTo(x, y)
			}
		}
		c.ClosePath()
		if _, ok := overlapping[shape.Name]; ok {
			c.SetRGBA(0.8, 0, 0, 0.6)
		} else {
			c.SetRGBA(0, 0.5, 0, 0.6)
		}
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.Stroke()
	}

	// Labels go on top of everything
	c.SetRGB(1, 1, 1)
	for _, shape := range s.Shapes {
		cx, cy := centroid(shape)
		x, y := toScreen(cx, cy)
		c.DrawStringAnchored(shape.Name, x, y, 0.5, 0.5)
	}
	return c.Image(), nil
}

// Render the scene to a PNG file.
func (s *Scene) Render(path string, scale float64) error {
	img, err := s.Image(scale)
	if err != nil {
		return err
	}
	if err := gg.SavePNG(path, img); err != nil {
		return errors.Wrapf(err, "saving %s", path)
	}
	return nil
}

func (s *Scene) bounds() (minX, minY, maxX, maxY float64) {
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, shape := range s.Shapes {
		for _, p := range shape.Vertices() {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	return
}

// Vertex average, which is inside any convex shape and good enough for placing
// a label.
func centroid(shape Shape) (x, y float64) {
	vertices := shape.Vertices()
	for _, v := range vertices {
		x += v.X
		y += v.Y
	}
	n := float64(len(vertices))
	return x / n, y / n
}
