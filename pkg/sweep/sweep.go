// Package sweep walks a scenario over an (offload ratio, relay ratio) grid
// and records the cost breakdown at every grid point.
package sweep

import (
	"time"

	"github.com/google/uuid"

	"github.com/3498972895/idle-node-offloading/pkg/costmodel"
	"github.com/3498972895/idle-node-offloading/pkg/models"
	"github.com/3498972895/idle-node-offloading/pkg/scenario"
)

// Sample is one evaluated grid point.
type Sample struct {
	OffloadRatio float64                 `json:"offload_ratio"`
	RelayRatio   float64                 `json:"relay_ratio"`
	Breakdown    costmodel.CostBreakdown `json:"breakdown"`
}

// Summary reports the grid minima of the two objectives and where they
// occur. BestTime and BestEnergy may name different grid points.
type Summary struct {
	SampleCount int `json:"sample_count"`

	MinTotalTime      float64 `json:"min_total_time"`
	BestTimeOffload   float64 `json:"best_time_offload_ratio"`
	BestTimeRelay     float64 `json:"best_time_relay_ratio"`
	MinTotalEnergy    float64 `json:"min_total_energy"`
	BestEnergyOffload float64 `json:"best_energy_offload_ratio"`
	BestEnergyRelay   float64 `json:"best_energy_relay_ratio"`
	FullLocalTime     float64 `json:"full_local_time"`
	FullLocalEnergy   float64 `json:"full_local_energy"`
}

// Result is one completed sweep run.
type Result struct {
	RunID     string        `json:"run_id"`
	Name      string        `json:"name"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
	Samples   []Sample      `json:"samples"`
	Summary   Summary       `json:"summary"`
}

// Run evaluates the config's scenario at every point of its (x, omega) grid.
// The config is expected to be validated; Run itself never fails, it only
// evaluates.
func Run(cfg *scenario.Config) *Result {
	start := time.Now()

	offloads := cfg.Sweep.OffloadRatio.Values()
	relays := cfg.Sweep.RelayRatio.Values()

	result := &Result{
		RunID:     uuid.NewString(),
		Name:      cfg.Name,
		StartedAt: start,
		Samples:   make([]Sample, 0, len(offloads)*len(relays)),
	}

	for _, x := range offloads {
		for _, omega := range relays {
			b := costmodel.Evaluate(cfg.Scenario.WithRatios(x, omega))
			result.Samples = append(result.Samples, Sample{
				OffloadRatio: x,
				RelayRatio:   omega,
				Breakdown:    b,
			})
		}
	}

	result.Summary = summarize(cfg.Scenario, result.Samples)
	result.Duration = time.Since(start)
	return result
}

func summarize(base models.Scenario, samples []Sample) Summary {
	s := Summary{SampleCount: len(samples)}
	if len(samples) == 0 {
		return s
	}

	ref := costmodel.Evaluate(base.WithRatios(0, 0))
	s.FullLocalTime = ref.FullLocalTime
	s.FullLocalEnergy = ref.FullLocalEnergy

	s.MinTotalTime = samples[0].Breakdown.TotalTime
	s.BestTimeOffload = samples[0].OffloadRatio
	s.BestTimeRelay = samples[0].RelayRatio
	s.MinTotalEnergy = samples[0].Breakdown.TotalEnergy
	s.BestEnergyOffload = samples[0].OffloadRatio
	s.BestEnergyRelay = samples[0].RelayRatio

	for _, sample := range samples[1:] {
		if sample.Breakdown.TotalTime < s.MinTotalTime {
			s.MinTotalTime = sample.Breakdown.TotalTime
			s.BestTimeOffload = sample.OffloadRatio
			s.BestTimeRelay = sample.RelayRatio
		}
		if sample.Breakdown.TotalEnergy < s.MinTotalEnergy {
			s.MinTotalEnergy = sample.Breakdown.TotalEnergy
			s.BestEnergyOffload = sample.OffloadRatio
			s.BestEnergyRelay = sample.RelayRatio
		}
	}

	return s
}
