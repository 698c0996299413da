package engine

import "github.com/Fdeoliveira24/truck-packer-3d-sub002/model"

// ComputeStats summarizes a set of placements against a truck. An item
// counts as packed when its bounding box, built from the oriented
// dimensions actually used, passes the identical containment rule the
// engine placed it with; counting with the pre-rotation dimensions, or
// with a different tolerance, miscounts flipped items. Volume percent is
// relative to the total packable zone volume and capped to [0,100] so an
// epsilon overshoot cannot report more than a full truck.
func ComputeStats(placements []model.PlacedItem, totalCases int, truck model.TruckSpec) model.PackStats {
	zones := ZonesFor(truck)

	stats := model.PackStats{TotalCases: totalCases}
	for _, p := range placements {
		if !isContained(p.Bounds(), zones) {
			continue
		}
		stats.PackedCases++
		stats.VolumeUsed += p.Length * p.Width * p.Height
		stats.TotalWeight += p.Item.Weight
	}

	if zv := zoneVolume(zones); zv > 0 {
		pct := stats.VolumeUsed / zv * 100
		if pct > 100 {
			pct = 100
		}
		if pct < 0 {
			pct = 0
		}
		stats.VolumePercent = pct
	}
	return stats
}
