package engine

import (
	"context"
	"fmt"

	"github.com/Fdeoliveira24/truck-packer-3d-sub002/model"
)

// ComparisonScenario defines a named set of settings to compare.
type ComparisonScenario struct {
	Name     string
	Settings model.PackSettings
}

// ComparisonResult holds the pack result and computed statistics for a
// single scenario.
type ComparisonResult struct {
	Scenario      ComparisonScenario
	Result        model.PackResult
	PlacedCount   int
	UnplacedCount int
	VolumePercent float64
}

// CompareScenarios packs the same load under each scenario's settings and
// returns the results in scenario order. This enables side-by-side tuning
// of the scoring weights and lookahead parameters against representative
// fixtures.
func CompareScenarios(ctx context.Context, scenarios []ComparisonScenario, items []model.CargoItem, truck model.TruckSpec) ([]ComparisonResult, error) {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		packer := New(scenario.Settings)
		result, err := packer.Pack(ctx, items, truck)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
		}

		results = append(results, ComparisonResult{
			Scenario:      scenario,
			Result:        result,
			PlacedCount:   len(result.Placements),
			UnplacedCount: len(result.UnplacedItems),
			VolumePercent: result.Stats.VolumePercent,
		})
	}
	return results, nil
}

// BuildDefaultScenarios generates what-if variants of the given settings,
// varying the parameters that most change the layout: the floor bias and
// the lookahead window.
func BuildDefaultScenarios(base model.PackSettings) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{Name: "Current settings", Settings: base},
	}

	flat := base
	flat.Weights.FloorBias = base.Weights.FloorBias * 4
	scenarios = append(scenarios, ComparisonScenario{Name: "Strong floor preference", Settings: flat})

	stacked := base
	stacked.Weights.FloorBias = 0
	scenarios = append(scenarios, ComparisonScenario{Name: "No floor preference", Settings: stacked})

	greedy := base
	greedy.LookaheadWalls = 0
	scenarios = append(scenarios, ComparisonScenario{Name: "Greedy wall depth", Settings: greedy})

	deep := base
	deep.LookaheadWalls = 2
	deep.DepthCandidates = base.DepthCandidates + 2
	scenarios = append(scenarios, ComparisonScenario{Name: "Deeper lookahead", Settings: deep})

	return scenarios
}
