package overlay

import (
	"image"
	"image/color"

	"github.com/1broseidon/aura/internal/platform"
	"github.com/1broseidon/aura/internal/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// surface adapts an ebiten screen image to render.Surface.
type surface struct {
	dst    *ebiten.Image
	bounds platform.Rect
	white  *ebiten.Image

	vertices []ebiten.Vertex
	indices  []uint16
}

var _ render.Surface = (*surface)(nil)

func newSurface() *surface {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return &surface{
		white: img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

func (s *surface) reset(dst *ebiten.Image, bounds platform.Rect) {
	s.dst = dst
	s.bounds = bounds
}

func (s *surface) Bounds() platform.Rect {
	return s.bounds
}

func (s *surface) FillRect(r platform.Rect, c color.NRGBA) {
	if r.Empty() {
		return
	}
	vector.DrawFilledRect(s.dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), c, false)
}

func (s *surface) StrokeRect(r platform.Rect, width float64, c color.NRGBA) {
	if r.Empty() || width <= 0 {
		return
	}

	x0, y0 := float32(r.X), float32(r.Y)
	x1, y1 := x0+float32(r.Width), y0+float32(r.Height)

	var path vector.Path
	path.MoveTo(x0, y0)
	path.LineTo(x1, y0)
	path.LineTo(x1, y1)
	path.LineTo(x0, y1)
	path.Close()

	s.vertices, s.indices = path.AppendVerticesAndIndicesForStroke(s.vertices[:0], s.indices[:0], &vector.StrokeOptions{
		Width:    float32(width),
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	})

	// Vertex colors are straight alpha.
	cr, cg, cb, ca := float32(c.R)/0xff, float32(c.G)/0xff, float32(c.B)/0xff, float32(c.A)/0xff
	for i := range s.vertices {
		s.vertices[i].SrcX = 1
		s.vertices[i].SrcY = 1
		s.vertices[i].ColorR = cr
		s.vertices[i].ColorG = cg
		s.vertices[i].ColorB = cb
		s.vertices[i].ColorA = ca
	}

	s.dst.DrawTriangles(s.vertices, s.indices, s.white, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
