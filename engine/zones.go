package engine

import (
	"sort"

	"github.com/Fdeoliveira24/truck-packer-3d-sub002/model"
)

// epsilon is the single geometric tolerance shared by every containment and
// collision decision in this package, including the stats reporter. Using a
// different tolerance for reporting than for placement produces false
// "unpacked" counts for items the engine itself placed.
const epsilon = 0.001

// ZonesFor derives the legally packable sub-volumes of a truck interior.
//
//	Rect        -> one zone spanning the full interior
//	FrontBonus  -> main body plus a narrower, shorter zone at the loading end
//	WheelWells  -> full-width front and rear, a full-height center corridor,
//	               and two side zones usable only above the well height
func ZonesFor(truck model.TruckSpec) []model.Zone {
	l, w, h := truck.Length, truck.Width, truck.Height
	if l <= 0 || w <= 0 || h <= 0 {
		return nil
	}

	full := model.Zone{Max: model.Vec3{X: l, Y: h, Z: w}}

	switch truck.Shape {
	case model.ShapeFrontBonus:
		fb := truck.FrontBonus
		bl := clamp(fb.Length, 0, l)
		bw := clamp(fb.Width, 0, w)
		bh := clamp(fb.Height, 0, h)
		if bl <= 0 || bw <= 0 || bh <= 0 {
			return []model.Zone{full}
		}
		main := model.Zone{
			Min: model.Vec3{X: bl},
			Max: model.Vec3{X: l, Y: h, Z: w},
		}
		// Bonus zone sits centered across the width at the loading end.
		bonus := model.Zone{
			Min: model.Vec3{X: 0, Y: 0, Z: (w - bw) / 2},
			Max: model.Vec3{X: bl, Y: bh, Z: (w + bw) / 2},
		}
		return []model.Zone{bonus, main}

	case model.ShapeWheelWells:
		ww := truck.WheelWells
		start := clamp(ww.Start, 0, l)
		end := clamp(ww.Start+ww.Length, start, l)
		wh := clamp(ww.Height, 0, h)
		wz := clamp(ww.Width, 0, w/2)
		if end <= start || wh <= 0 || wz <= 0 {
			return []model.Zone{full}
		}
		front := model.Zone{
			Max: model.Vec3{X: start, Y: h, Z: w},
		}
		corridor := model.Zone{
			Min: model.Vec3{X: start, Y: 0, Z: wz},
			Max: model.Vec3{X: end, Y: h, Z: w - wz},
		}
		leftAbove := model.Zone{
			Min: model.Vec3{X: start, Y: wh, Z: 0},
			Max: model.Vec3{X: end, Y: h, Z: wz},
		}
		rightAbove := model.Zone{
			Min: model.Vec3{X: start, Y: wh, Z: w - wz},
			Max: model.Vec3{X: end, Y: h, Z: w},
		}
		rear := model.Zone{
			Min: model.Vec3{X: end},
			Max: model.Vec3{X: l, Y: h, Z: w},
		}
		return []model.Zone{front, corridor, leftAbove, rightAbove, rear}

	default:
		return []model.Zone{full}
	}
}

// isContained reports whether the box fits entirely inside at least one
// zone, within the shared epsilon. Zones are evaluated in derivation order,
// which makes boundary decisions deterministic.
func isContained(b model.Box, zones []model.Zone) bool {
	for _, z := range zones {
		if z.ContainsBox(b, epsilon) {
			return true
		}
	}
	return false
}

// containedStrict is isContained with zero tolerance. Used only to detect
// placements that were accepted inside the epsilon band, for diagnostics.
func containedStrict(b model.Box, zones []model.Zone) bool {
	for _, z := range zones {
		if z.ContainsBox(b, 0) {
			return true
		}
	}
	return false
}

// span is one usable width interval at a given length position. floor is the
// lowest legal resting height inside it (the top of a wheel well for the
// above-well zones, otherwise the truck floor).
type span struct {
	zMin, zMax float64
	floor      float64
	ceiling    float64
}

// usableSpans returns the width intervals usable at length position x given
// the current stack height minY, sorted across the width. A zone with no
// headroom above minY (or above its own floor) yields nothing. Callers must
// recompute spans with the actual stack height on every pass; reusing the
// truck floor across stacking passes prevents packing above the first layer.
func usableSpans(zones []model.Zone, x, minY float64) []span {
	var spans []span
	for _, z := range zones {
		if x < z.Min.X-epsilon || x >= z.Max.X-epsilon {
			continue
		}
		base := z.Min.Y
		if minY > base {
			base = minY
		}
		if z.Max.Y-base <= epsilon {
			continue
		}
		spans = append(spans, span{
			zMin:    z.Min.Z,
			zMax:    z.Max.Z,
			floor:   z.Min.Y,
			ceiling: z.Max.Y,
		})
	}
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].zMin != spans[j].zMin {
			return spans[i].zMin < spans[j].zMin
		}
		return spans[i].floor < spans[j].floor
	})
	return spans
}

// zoneVolume returns the total packable volume of the zone set.
func zoneVolume(zones []model.Zone) float64 {
	var total float64
	for _, z := range zones {
		total += z.Volume()
	}
	return total
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
