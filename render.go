package showcase

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// whitePixel is a 1x1 white image stretched to draw every rectangle.
// Created on first draw so that building scenes never touches the GPU.
var whitePixel *ebiten.Image

const labelInset = 8

// drawStats holds per-frame draw metrics, logged in debug mode.
type drawStats struct {
	rects  int
	labels int
	took   time.Duration
}

// Draw renders the tree onto screen in painter order.
func (s *Scene) Draw(screen *ebiten.Image) {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(ColorWhite.RGBA())
	}
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.RGBA())
	}

	var stats drawStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	updateWorldTransform(s.root, identityTransform, 1.0, false)
	drawNode(screen, s.root, &stats)

	if s.debug {
		stats.took = time.Since(t0)
		s.log.V(2).Info("frame drawn", "frame", s.frame, "rects", stats.rects, "labels", stats.labels, "took", stats.took)
	}
	s.flushScreenshots(screen)
}

func drawNode(screen *ebiten.Image, n *Node, stats *drawStats) {
	if !n.Visible {
		return
	}
	if n.Type == NodeTypeRect && n.worldAlpha > 0 && n.Width > 0 && n.Height > 0 {
		var op ebiten.DrawImageOptions
		op.GeoM.Scale(n.Width, n.Height)
		op.GeoM.Concat(geoM(n.worldTransform))
		c := n.Color
		c.A *= n.worldAlpha
		op.ColorScale.ScaleWithColor(c.RGBA())
		screen.DrawImage(whitePixel, &op)
		stats.rects++

		if n.Label != "" {
			x, y := n.LocalToWorld(labelInset, labelInset)
			ebitenutil.DebugPrintAt(screen, n.Label, int(x), int(y))
			stats.labels++
		}
	}
	for _, child := range n.children {
		drawNode(screen, child, stats)
	}
}

// geoM converts an affine [a, b, c, d, tx, ty] matrix to an ebiten.GeoM.
func geoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}
