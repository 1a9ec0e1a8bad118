package proj

// Graticule returns meridian and parallel lines in lon/lat degrees, ready for
// ProjectLine. Meridians stop at +-80 latitude so they stay distinct near the
// poles; parallels run the full longitude range.
func Graticule(step float64) [][][2]float64 {
	if step <= 0 {
		step = 10
	}
	var lines [][][2]float64
	for lon := -180.0; lon < 180; lon += step {
		lines = append(lines, Meridian(lon, -80, 80))
	}
	for lat := -80.0; lat <= 80; lat += step {
		lines = append(lines, Parallel(lat))
	}
	return lines
}

// Meridian samples the meridian at lon between the given latitudes.
func Meridian(lon, latMin, latMax float64) [][2]float64 {
	var pts [][2]float64
	for lat := latMin; lat <= latMax; lat += 2.5 {
		pts = append(pts, [2]float64{lon, lat})
	}
	return pts
}

// Parallel samples the full parallel at lat. Parallels are not great circles,
// so the sampling must stay fine enough that the great-circle densification
// between samples cannot bow the line.
func Parallel(lat float64) [][2]float64 {
	var pts [][2]float64
	for lon := -180.0; lon <= 180; lon += 2.5 {
		pts = append(pts, [2]float64{lon, lat})
	}
	return pts
}
