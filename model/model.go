package model

import "github.com/google/uuid"

// Axis convention used throughout the engine:
// X runs along the trailer length (loading end at 0), Y is height (up),
// Z runs across the trailer width.

// Vec3 represents a 3D coordinate in linear units.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Box is an axis-aligned bounding box.
type Box struct {
	Min Vec3 `json:"min"`
	Max Vec3 `json:"max"`
}

// Size returns the edge lengths of the box.
func (b Box) Size() Vec3 {
	return Vec3{X: b.Max.X - b.Min.X, Y: b.Max.Y - b.Min.Y, Z: b.Max.Z - b.Min.Z}
}

// Center returns the center point of the box.
func (b Box) Center() Vec3 {
	return Vec3{
		X: (b.Min.X + b.Max.X) / 2,
		Y: (b.Min.Y + b.Max.Y) / 2,
		Z: (b.Min.Z + b.Max.Z) / 2,
	}
}

// Volume returns the box volume, or 0 for an inverted box.
func (b Box) Volume() float64 {
	s := b.Size()
	if s.X <= 0 || s.Y <= 0 || s.Z <= 0 {
		return 0
	}
	return s.X * s.Y * s.Z
}

// Overlaps reports whether two boxes overlap by more than eps on every axis.
// Boxes that merely touch, or overlap within tolerance, do not count.
func (b Box) Overlaps(o Box, eps float64) bool {
	return b.Min.X < o.Max.X-eps && b.Max.X > o.Min.X+eps &&
		b.Min.Y < o.Max.Y-eps && b.Max.Y > o.Min.Y+eps &&
		b.Min.Z < o.Max.Z-eps && b.Max.Z > o.Min.Z+eps
}

// ContainsBox reports whether inner lies fully inside b, allowing eps of
// overshoot on every face.
func (b Box) ContainsBox(inner Box, eps float64) bool {
	return inner.Min.X >= b.Min.X-eps && inner.Max.X <= b.Max.X+eps &&
		inner.Min.Y >= b.Min.Y-eps && inner.Max.Y <= b.Max.Y+eps &&
		inner.Min.Z >= b.Min.Z-eps && inner.Max.Z <= b.Max.Z+eps
}

// Zone is one legally packable axis-aligned sub-volume of a truck interior.
// A truck maps to between one and five zones depending on its shape.
type Zone = Box

// CargoItem represents a rectangular case to be loaded. Inputs are a
// snapshot for one pack invocation and are never mutated by the engine.
type CargoItem struct {
	ID       string  `json:"id"`
	Label    string  `json:"label"`
	Length   float64 `json:"length"` // along the trailer (X)
	Width    float64 `json:"width"`  // across the trailer (Z)
	Height   float64 `json:"height"` // vertical (Y)
	Weight   float64 `json:"weight"`
	Quantity int     `json:"quantity"`
	CanFlip  bool    `json:"can_flip"` // height may be swapped with another axis
	Visible  bool    `json:"visible"`  // hidden items are skipped by the engine
}

// NewCargoItem creates a visible, non-flippable item with a generated id.
func NewCargoItem(label string, length, width, height, weight float64) CargoItem {
	return CargoItem{
		ID:       uuid.New().String()[:8],
		Label:    label,
		Length:   length,
		Width:    width,
		Height:   height,
		Weight:   weight,
		Quantity: 1,
		Visible:  true,
	}
}

// Volume returns the item volume. It is derived from the dimensions rather
// than stored, so it can never disagree with them.
func (c CargoItem) Volume() float64 {
	return c.Length * c.Width * c.Height
}

// TruckShape selects the interior shape variant of a trailer.
type TruckShape int

const (
	ShapeRect       TruckShape = iota // plain rectangular interior
	ShapeFrontBonus                   // extra narrower zone over the cab end
	ShapeWheelWells                   // wheel-well boxes intrude into the floor
)

func (s TruckShape) String() string {
	switch s {
	case ShapeFrontBonus:
		return "FrontBonus"
	case ShapeWheelWells:
		return "WheelWells"
	default:
		return "Rect"
	}
}

// FrontBonusParams describes the bonus zone at the loading end of a
// FrontBonus trailer. The bonus zone is centered across the width.
type FrontBonusParams struct {
	Length float64 `json:"length"` // extent along X from the loading end
	Width  float64 `json:"width"`  // usable width, <= truck width
	Height float64 `json:"height"` // usable height, <= truck height
}

// WheelWellParams describes the two wheel-well boxes intruding along the
// side walls. Each well spans [Start, Start+Length] along X and Width in
// from its wall; the space above a well is usable from Height up.
type WheelWellParams struct {
	Height float64 `json:"height"`
	Width  float64 `json:"width"`
	Start  float64 `json:"start"`
	Length float64 `json:"length"`
}

// TruckSpec describes a trailer interior. Immutable input to the engine.
type TruckSpec struct {
	Length     float64          `json:"length"`
	Width      float64          `json:"width"`
	Height     float64          `json:"height"`
	Shape      TruckShape       `json:"shape"`
	FrontBonus FrontBonusParams `json:"front_bonus,omitempty"`
	WheelWells WheelWellParams  `json:"wheel_wells,omitempty"`
}

// Orientation is a candidate relabeling of an item's dimensions to
// length/width/height plus a yaw flag (90 degree rotation about the
// vertical axis). This is the only rotation model the engine supports:
// axis relabeling and yaw, never pitch or roll. Consumers may rely on the
// oriented height always being a vertical extent.
type Orientation struct {
	Length  float64 `json:"length"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Rotated bool    `json:"rotated"` // 90 degree yaw
}

// PlacedItem is one item positioned inside the truck. Produced only by the
// engine and never mutated afterward. The stored dimensions are the
// oriented ones actually used, not the item's original labeling.
type PlacedItem struct {
	Item     CargoItem `json:"item"`
	Position Vec3      `json:"position"` // center of the placed box
	Rotated  bool      `json:"rotated"`  // 90 degree yaw
	Length   float64   `json:"length"`
	Width    float64   `json:"width"`
	Height   float64   `json:"height"`
}

// Bounds returns the axis-aligned bounding box implied by the center
// position and the oriented dimensions.
func (p PlacedItem) Bounds() Box {
	return Box{
		Min: Vec3{
			X: p.Position.X - p.Length/2,
			Y: p.Position.Y - p.Height/2,
			Z: p.Position.Z - p.Width/2,
		},
		Max: Vec3{
			X: p.Position.X + p.Length/2,
			Y: p.Position.Y + p.Height/2,
			Z: p.Position.Z + p.Width/2,
		},
	}
}

// PackStats summarizes a pack run for reporting.
type PackStats struct {
	TotalCases    int     `json:"total_cases"`
	PackedCases   int     `json:"packed_cases"`
	VolumeUsed    float64 `json:"volume_used"`
	VolumePercent float64 `json:"volume_percent"`
	TotalWeight   float64 `json:"total_weight"`
}

// PackResult holds the full outcome of one pack invocation.
type PackResult struct {
	Placements    []PlacedItem `json:"placements"`
	UnplacedItems []CargoItem  `json:"unplaced_items"`
	Stats         PackStats    `json:"stats"`
}

// UnplacedIDs returns the ids of the items that could not be placed.
func (r PackResult) UnplacedIDs() []string {
	ids := make([]string, 0, len(r.UnplacedItems))
	for _, it := range r.UnplacedItems {
		ids = append(ids, it.ID)
	}
	return ids
}
