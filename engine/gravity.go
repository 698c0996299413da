package engine

import "github.com/Fdeoliveira24/truck-packer-3d-sub002/model"

// footprint is an XZ rectangle, the ground projection of a candidate box.
type footprint struct {
	x0, x1 float64
	z0, z1 float64
}

func (f footprint) intersects(b model.Box) bool {
	return f.x0 < b.Max.X-epsilon && f.x1 > b.Min.X+epsilon &&
		f.z0 < b.Max.Z-epsilon && f.z1 > b.Min.Z+epsilon
}

// restingHeight computes where a candidate with the given footprint comes to
// rest: the highest top surface among placed items whose footprint overlaps
// the candidate's, but never below floor (the truck bed, or the top of a
// wheel well when packing an above-well zone). The result is always >= 0
// and the item always touches a supporting surface with zero gap.
func restingHeight(fp footprint, floor float64, placed []model.PlacedItem) float64 {
	y := floor
	if y < 0 {
		y = 0
	}
	for _, p := range placed {
		b := p.Bounds()
		if fp.intersects(b) && b.Max.Y > y {
			y = b.Max.Y
		}
	}
	return y
}
