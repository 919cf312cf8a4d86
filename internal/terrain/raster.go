package terrain

import (
	"context"

	"rtscam/internal/rig"
	"rtscam/internal/workers"
)

const flatShade = 0.35

// Raster shades an n x n RGBA image of the area, north-up: row 0 is the
// northern edge and column 0 the western edge. Rows are spread over the
// pool. A nil heightfield rasters flat ground.
func Raster(ctx context.Context, pool *workers.Pool, h *Heightfield, area rig.BoundaryRectangle, n int) ([]byte, error) {
	if n <= 0 {
		return nil, nil
	}
	pix := make([]byte, n*n*4)
	lo, hi := area.Min(), area.Max()
	size := float32(n)

	err := pool.ParallelFor(ctx, 0, n, func(j int) {
		wx := hi.X() - (float32(j)+0.5)/size*(hi.X()-lo.X())
		for i := 0; i < n; i++ {
			wy := lo.Y() + (float32(i)+0.5)/size*(hi.Y()-lo.Y())
			var shade float32 = flatShade
			if h != nil {
				shade = h.Shade(wx, wy)
			}
			o := (j*n + i) * 4
			pix[o] = byte(30 + 50*shade)
			pix[o+1] = byte(60 + 110*shade)
			pix[o+2] = byte(35 + 40*shade)
			pix[o+3] = 255
		}
	})
	if err != nil {
		return nil, err
	}
	return pix, nil
}
