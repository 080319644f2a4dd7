package output

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"math"

	"github.com/icza/mjpeg"

	"github.com/notargets/gofea/geometry2D"
	"github.com/notargets/gofea/mesh"
)

// AnimationWriter appends one rasterized field frame per time step to
// an MJPEG AVI. Frames are strictly ordered by call sequence, Close
// finalizes the AVI index and is required for a playable file.
type AnimationWriter struct {
	avi           mjpeg.AviWriter
	width, height int
	quality       *jpeg.Options
}

func NewAnimationWriter(path string, width, height, fps int) (aw *AnimationWriter, err error) {
	avi, err := mjpeg.New(path, int32(width), int32(height), int32(fps))
	if err != nil {
		return nil, fmt.Errorf("creating animation file: %w", err)
	}
	aw = &AnimationWriter{
		avi:     avi,
		width:   width,
		height:  height,
		quality: &jpeg.Options{Quality: 90},
	}
	return
}

// AddField rasterizes the nodal field over the mesh and appends the
// frame. fmin and fmax fix the color scale across the run so frames
// are comparable, pass the initial field extrema.
func (aw *AnimationWriter) AddField(m *mesh.Mesh, values []float64, fmin, fmax float64) (err error) {
	img := aw.Rasterize(m, values, fmin, fmax)
	var buf bytes.Buffer
	if err = jpeg.Encode(&buf, img, aw.quality); err != nil {
		return fmt.Errorf("encoding frame: %w", err)
	}
	if err = aw.avi.AddFrame(buf.Bytes()); err != nil {
		return fmt.Errorf("appending frame: %w", err)
	}
	return
}

// Rasterize paints each triangle over its pixel bounding box with
// barycentric interpolation of the vertex values through the blue to
// red colormap. Pixels outside every triangle stay black.
func (aw *AnimationWriter) Rasterize(m *mesh.Mesh, values []float64, fmin, fmax float64) (img *image.RGBA) {
	var (
		bb = m.BoundingBox()
		sx = float64(aw.width-1) / (bb.XMax[0] - bb.XMin[0])
		sy = float64(aw.height-1) / (bb.XMax[1] - bb.XMin[1])
	)
	img = image.NewRGBA(image.Rect(0, 0, aw.width, aw.height))
	toPix := func(x, y float64) (px, py float64) {
		// Image y runs downward
		px = (x - bb.XMin[0]) * sx
		py = float64(aw.height-1) - (y-bb.XMin[1])*sy
		return
	}
	for k := 0; k < m.K; k++ {
		var (
			verts      = m.EToV[k]
			x1, y1     = toPix(m.VX[verts[0]], m.VY[verts[0]])
			x2, y2     = toPix(m.VX[verts[1]], m.VY[verts[1]])
			x3, y3     = toPix(m.VX[verts[2]], m.VY[verts[2]])
			f1, f2, f3 = values[verts[0]], values[verts[1]], values[verts[2]]
			pxMin      = int(math.Floor(math.Min(x1, math.Min(x2, x3))))
			pxMax      = int(math.Ceil(math.Max(x1, math.Max(x2, x3))))
			pyMin      = int(math.Floor(math.Min(y1, math.Min(y2, y3))))
			pyMax      = int(math.Ceil(math.Max(y1, math.Max(y2, y3))))
		)
		for py := pyMin; py <= pyMax; py++ {
			if py < 0 || py >= aw.height {
				continue
			}
			for px := pxMin; px <= pxMax; px++ {
				if px < 0 || px >= aw.width {
					continue
				}
				cx, cy := float64(px)+0.5, float64(py)+0.5
				if !geometry2D.PointInTri(x1, y1, x2, y2, x3, y3, cx, cy) {
					continue
				}
				l1, l2, l3 := geometry2D.Barycentric(x1, y1, x2, y2, x3, y3, cx, cy)
				img.SetRGBA(px, py, fieldColor(l1*f1+l2*f2+l3*f3, fmin, fmax))
			}
		}
	}
	return
}

// fieldColor maps a value to the blue (low) to red (high) ramp through
// white at the midpoint.
func fieldColor(f, fmin, fmax float64) color.RGBA {
	var (
		t = (f - fmin) / (fmax - fmin)
	)
	if fmax <= fmin {
		t = 0
	}
	t = math.Max(0, math.Min(1, t))
	if t < 0.5 {
		s := uint8(510 * t)
		return color.RGBA{R: s, G: s, B: 255, A: 255}
	}
	s := uint8(510 * (1 - t))
	return color.RGBA{R: 255, G: s, B: s, A: 255}
}

// Close finalizes the AVI index.
func (aw *AnimationWriter) Close() error {
	return aw.avi.Close()
}
