package proj

import "math"

// FitExtent sets scale and translate so the projected image fills the extent,
// preserving aspect ratio and centering the result. With rings == nil the
// whole globe outline is fitted; otherwise the given lon/lat rings are. The
// rectangular clip is left untouched.
func (p *Projection) FitExtent(ext Extent, rings [][][2]float64) error {
	if ext.Width() <= 0 || ext.Height() <= 0 {
		return ErrCannotFit
	}

	saveK, saveTx, saveTy := p.k, p.tx, p.ty
	saveClip := p.clip
	p.k, p.tx, p.ty = 1, 0, 0
	p.clip = nil

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	add := func(x, y float64) {
		if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
			return
		}
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}

	if rings == nil {
		for _, ring := range p.outlineRings() {
			for _, s := range ring {
				x, y := p.device(s)
				add(x, y)
			}
		}
	} else {
		for _, ring := range rings {
			for _, path := range p.ProjectRing(ring) {
				for _, pt := range path.Pts {
					add(pt[0], pt[1])
				}
			}
		}
	}

	p.clip = saveClip

	dx, dy := maxX-minX, maxY-minY
	if !(dx > 0) || !(dy > 0) {
		p.k, p.tx, p.ty = saveK, saveTx, saveTy
		return ErrCannotFit
	}
	k := math.Min(ext.Width()/dx, ext.Height()/dy)
	if !(k > 0) || math.IsInf(k, 0) {
		p.k, p.tx, p.ty = saveK, saveTx, saveTy
		return ErrCannotFit
	}

	p.k = k
	p.tx = ext.X0 + (ext.Width()-k*(minX+maxX))/2
	p.ty = ext.Y0 + (ext.Height()-k*(minY+maxY))/2
	return nil
}

// ZoomAbout multiplies the scale by f, keeping the device point (cx, cy)
// fixed.
func (p *Projection) ZoomAbout(f, cx, cy float64) {
	if !(f > 0) {
		return
	}
	p.k *= f
	p.tx = cx - f*(cx-p.tx)
	p.ty = cy - f*(cy-p.ty)
}
