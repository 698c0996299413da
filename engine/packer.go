package engine

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/Fdeoliveira24/truck-packer-3d-sub002/model"
)

var (
	// ErrInvalidTruck is returned for non-positive or NaN truck dimensions.
	ErrInvalidTruck = errors.New("truck dimensions must be positive")
	// ErrInvalidItem is returned for non-positive or NaN item dimensions.
	ErrInvalidItem = errors.New("item dimensions must be positive")
)

// Packer runs the 3D wall-building packing algorithm. It holds no state
// between invocations; Pack is a pure function of its inputs, so one Packer
// may serve concurrent calls for different trucks.
type Packer struct {
	Settings model.PackSettings
	Logger   *zap.Logger
}

func New(settings model.PackSettings) *Packer {
	return &Packer{Settings: settings, Logger: zap.NewNop()}
}

func (p *Packer) logger() *zap.Logger {
	if p.Logger == nil {
		return zap.NewNop()
	}
	return p.Logger
}

// packState is the working set of one invocation. Cloned for lookahead
// simulation so trial walls never leak into the real result.
type packState struct {
	truck     model.TruckSpec
	zones     []model.Zone
	placed    []model.PlacedItem
	remaining []model.CargoItem
}

func (st *packState) clone() *packState {
	cp := *st
	cp.placed = append([]model.PlacedItem(nil), st.placed...)
	cp.remaining = append([]model.CargoItem(nil), st.remaining...)
	return &cp
}

// Pack places as many items as possible inside the truck. Items that fit
// nowhere are reported in the result, not as an error; only malformed input
// fails. The context is checked between wall iterations, and cancellation
// returns the partial result together with ctx.Err().
func (p *Packer) Pack(ctx context.Context, items []model.CargoItem, truck model.TruckSpec) (model.PackResult, error) {
	for _, it := range items {
		if badDim(it.Length) || badDim(it.Width) || badDim(it.Height) || math.IsNaN(it.Weight) {
			return model.PackResult{}, fmt.Errorf("item %q: %w", it.ID, ErrInvalidItem)
		}
	}

	snapshot := expandVisible(items)

	if badDim(truck.Length) || badDim(truck.Width) || badDim(truck.Height) {
		res := model.PackResult{UnplacedItems: snapshot}
		res.Stats = ComputeStats(nil, len(snapshot), truck)
		return res, ErrInvalidTruck
	}

	// First-fit-decreasing: largest volume first, ties kept in input order.
	sort.SliceStable(snapshot, func(i, j int) bool {
		return snapshot[i].Volume() > snapshot[j].Volume()
	})

	st := &packState{
		truck:     truck,
		zones:     ZonesFor(truck),
		remaining: snapshot,
	}

	var runErr error
	cursor := 0.0
	for len(st.remaining) > 0 && cursor < truck.Length-epsilon {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}

		depth, projected := p.chooseWallDepth(st, cursor)
		if depth <= 0 || projected == 0 {
			// Nothing fits at this cursor. A later zone may still accept
			// items (e.g. the main body after an over-short bonus zone), so
			// jump to the next zone boundary before giving up.
			next, ok := nextZoneStart(st.zones, cursor)
			if !ok {
				break
			}
			cursor = next
			continue
		}

		placedCount, consumed := p.fillWall(st, cursor, depth)
		if placedCount == 0 || consumed <= epsilon {
			break
		}
		p.logger().Debug("wall filled",
			zap.Float64("cursor", cursor),
			zap.Float64("depth", depth),
			zap.Float64("consumed", consumed),
			zap.Int("placed", placedCount))
		cursor += consumed
	}

	result := model.PackResult{
		Placements:    st.placed,
		UnplacedItems: st.remaining,
	}
	result.Stats = ComputeStats(st.placed, len(snapshot), truck)
	return result, runErr
}

// chooseWallDepth ranks candidate wall depths by how often they occur among
// the remaining items' orientations and trial-packs the top candidates.
// Each trial simulates the candidate wall plus LookaheadWalls estimated
// follow-up walls and is judged on total items placed across the window;
// picking on the immediate wall alone produces badly uneven layouts.
func (p *Packer) chooseWallDepth(st *packState, cursor float64) (float64, int) {
	depths := rankedDepths(st.remaining, st.truck.Length-cursor)
	if len(depths) == 0 {
		return 0, 0
	}

	k := p.Settings.DepthCandidates
	if k < 2 {
		k = 2
	}
	if k > len(depths) {
		k = len(depths)
	}
	look := p.Settings.LookaheadWalls
	if look < 0 {
		look = 0
	}

	bestDepth := 0.0
	bestTotal := 0
	for _, d := range depths[:k] {
		sim := st.clone()
		placed, consumed := p.fillWall(sim, cursor, d)
		total := placed
		c := cursor + consumed
		for i := 0; i < look && placed > 0 && len(sim.remaining) > 0 && c < st.truck.Length-epsilon; i++ {
			nd := rankedDepths(sim.remaining, st.truck.Length-c)
			if len(nd) == 0 {
				break
			}
			np, nc := p.fillWall(sim, c, nd[0])
			if np == 0 || nc <= epsilon {
				break
			}
			total += np
			c += nc
		}
		if total > bestTotal {
			bestTotal = total
			bestDepth = d
		}
	}
	return bestDepth, bestTotal
}

// rankedDepths returns the distinct depth values available among the
// remaining items' orientations, most frequent first. Equal frequencies
// order by value so the ranking is deterministic.
func rankedDepths(items []model.CargoItem, maxDepth float64) []float64 {
	counts := make(map[float64]int)
	for _, it := range items {
		for _, o := range orientationsFor(it) {
			if o.Length <= maxDepth+epsilon {
				counts[o.Length]++
			}
		}
	}
	depths := make([]float64, 0, len(counts))
	for d := range counts {
		depths = append(depths, d)
	}
	sort.Slice(depths, func(i, j int) bool {
		if counts[depths[i]] != counts[depths[j]] {
			return counts[depths[i]] > counts[depths[j]]
		}
		return depths[i] < depths[j]
	})
	return depths
}

// fillWall fills the depth slab starting at x0 with repeated width passes.
// Each pass scans the usable width spans with a cursor, placing the best
// scoring candidate at each position; when nothing fits at the cursor it
// advances past the smallest remaining footprint width and keeps scanning
// instead of aborting the pass. Spans are recomputed for every pass with
// the stack height actually reached so far in this wall, which is what
// allows floor-to-ceiling stacking and opens the above-well side zones.
// Returns the number of items placed and the depth actually consumed.
func (p *Packer) fillWall(st *packState, x0, depth float64) (int, float64) {
	wallPlaced := 0
	consumed := 0.0
	stackTop := 0.0

	for {
		passPlaced := 0
		spans := usableSpans(st.zones, x0, stackTop)
		for _, sp := range spans {
			z := sp.zMin
			for z < sp.zMax-epsilon {
				gap := sp.zMax - z
				cand, ok := p.bestCandidate(st, x0, z, gap, depth, sp)
				if !ok {
					step := minFootprintWidth(st.remaining)
					if step <= 0 {
						break
					}
					z += step
					continue
				}

				pl := model.PlacedItem{
					Item:    st.remaining[cand.itemIdx],
					Rotated: cand.orient.Rotated,
					Length:  cand.orient.Length,
					Width:   cand.orient.Width,
					Height:  cand.orient.Height,
					Position: model.Vec3{
						X: x0 + cand.orient.Length/2,
						Y: cand.restY + cand.orient.Height/2,
						Z: z + cand.orient.Width/2,
					},
				}
				st.placed = append(st.placed, pl)
				st.remaining = removeAt(st.remaining, cand.itemIdx)

				b := pl.Bounds()
				if b.Max.Y > stackTop {
					stackTop = b.Max.Y
				}
				if used := b.Max.X - x0; used > consumed {
					consumed = used
				}
				wallPlaced++
				passPlaced++
				z += cand.orient.Width
			}
		}
		if passPlaced == 0 {
			break
		}
	}
	return wallPlaced, consumed
}

// candidate is one valid (item, orientation, position) combination.
type candidate struct {
	itemIdx int
	orient  model.Orientation
	restY   float64
	score   float64
}

// bestCandidate evaluates every remaining item and orientation at width
// position z and returns the highest scoring one that fits the gap and the
// wall depth, rests without a gap, stays inside a zone, and collides with
// nothing. Strictly-greater comparison keeps ties on the earlier item, so
// the FFD order decides and the result is deterministic.
func (p *Packer) bestCandidate(st *packState, x0, z, gap, depth float64, sp span) (candidate, bool) {
	var best candidate
	found := false

	for idx, it := range st.remaining {
		for _, o := range orientationsFor(it) {
			if o.Width > gap+epsilon || o.Length > depth+epsilon {
				continue
			}
			fp := footprint{x0: x0, x1: x0 + o.Length, z0: z, z1: z + o.Width}
			restY := restingHeight(fp, sp.floor, st.placed)
			if restY+o.Height > sp.ceiling+epsilon {
				continue
			}
			box := model.Box{
				Min: model.Vec3{X: x0, Y: restY, Z: z},
				Max: model.Vec3{X: x0 + o.Length, Y: restY + o.Height, Z: z + o.Width},
			}
			if !isContained(box, st.zones) {
				continue
			}
			if collides(box, st.placed) {
				continue
			}
			score := p.score(o, restY, gap, depth, st.truck)
			if !found || score > best.score {
				found = true
				best = candidate{itemIdx: idx, orient: o, restY: restY, score: score}
			}
		}
	}

	if found {
		o := best.orient
		box := model.Box{
			Min: model.Vec3{X: x0, Y: best.restY, Z: z},
			Max: model.Vec3{X: x0 + o.Length, Y: best.restY + o.Height, Z: z + o.Width},
		}
		if !containedStrict(box, st.zones) {
			// Accepted inside the epsilon band. Deterministic by zone order,
			// diagnostics only.
			p.logger().Debug("containment resolved within tolerance",
				zap.String("item", st.remaining[best.itemIdx].ID),
				zap.Float64("x", x0), zap.Float64("z", z))
		}
	}
	return best, found
}

// score rates a valid candidate. Terms are normalized before weighting:
// tightness against the width gap, use of the wall depth, cross-sectional
// footprint area, a small volume tie-break, minus a modest bias toward the
// floor. See model.ScoreWeights for tuning.
func (p *Packer) score(o model.Orientation, restY, gap, depth float64, truck model.TruckSpec) float64 {
	w := p.Settings.Weights
	s := w.WidthFit*(o.Width/gap) +
		w.DepthUse*(o.Length/depth) +
		w.Area*(o.Width*o.Length)/(gap*depth) +
		w.Volume*(o.Length*o.Width*o.Height)/(truck.Length*truck.Width*truck.Height)
	s -= w.FloorBias * (restY / truck.Height)
	return s
}

// collides reports whether the box overlaps any placed item beyond epsilon.
func collides(b model.Box, placed []model.PlacedItem) bool {
	for _, p := range placed {
		if b.Overlaps(p.Bounds(), epsilon) {
			return true
		}
	}
	return false
}

// nextZoneStart returns the smallest zone start beyond the cursor.
func nextZoneStart(zones []model.Zone, cursor float64) (float64, bool) {
	best := 0.0
	found := false
	for _, z := range zones {
		if z.Min.X > cursor+epsilon && (!found || z.Min.X < best) {
			best = z.Min.X
			found = true
		}
	}
	return best, found
}

// expandVisible snapshots the visible items, expanded per quantity into
// individual placement candidates. A quantity below one counts as one so
// hand-built items without the constructor are not silently dropped.
func expandVisible(items []model.CargoItem) []model.CargoItem {
	var expanded []model.CargoItem
	for _, it := range items {
		if !it.Visible {
			continue
		}
		qty := it.Quantity
		if qty < 1 {
			qty = 1
		}
		for i := 0; i < qty; i++ {
			cp := it
			cp.Quantity = 1
			expanded = append(expanded, cp)
		}
	}
	return expanded
}

func removeAt(items []model.CargoItem, i int) []model.CargoItem {
	return append(items[:i:i], items[i+1:]...)
}

func badDim(v float64) bool {
	return math.IsNaN(v) || v <= 0
}
