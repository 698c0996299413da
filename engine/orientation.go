package engine

import "github.com/Fdeoliveira24/truck-packer-3d-sub002/model"

// orientationsFor enumerates the candidate dimension relabelings for an
// item. Every item yields its original labeling and the 90 degree yaw of
// it. Flippable items additionally yield the four relabelings that stand a
// different original axis upright. No orientation is ever a true pitch or
// roll; see the Orientation contract in the model package.
func orientationsFor(item model.CargoItem) []model.Orientation {
	l, w, h := item.Length, item.Width, item.Height

	orients := []model.Orientation{
		{Length: l, Width: w, Height: h, Rotated: false},
		{Length: w, Width: l, Height: h, Rotated: true},
	}
	if item.CanFlip {
		orients = append(orients,
			model.Orientation{Length: h, Width: w, Height: l, Rotated: false},
			model.Orientation{Length: w, Width: h, Height: l, Rotated: true},
			model.Orientation{Length: l, Width: h, Height: w, Rotated: false},
			model.Orientation{Length: h, Width: l, Height: w, Rotated: true},
		)
	}
	return orients
}

// minFootprintWidth returns the smallest width any remaining item can
// present across the truck. The pass cursor advances by this amount when
// nothing fits at its current position, so a single awkward gap cannot
// strand placeable items further along the row.
func minFootprintWidth(items []model.CargoItem) float64 {
	best := 0.0
	for _, it := range items {
		for _, o := range orientationsFor(it) {
			if best == 0 || o.Width < best {
				best = o.Width
			}
		}
	}
	return best
}
