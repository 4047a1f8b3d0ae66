package database

import (
	"encoding/json"
	"fmt"

	"github.com/3498972895/idle-node-offloading/pkg/scenario"
	"github.com/3498972895/idle-node-offloading/pkg/sweep"
)

// CollectRun flattens a sweep result into its database records. The run is
// created in "running" status; the caller marks it completed or failed once
// the samples are stored.
func CollectRun(cfg *scenario.Config, result *sweep.Result) (*SweepRun, []CostSample, error) {
	scenarioJSON, err := json.Marshal(cfg.Scenario)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to serialize scenario: %w", err)
	}

	run := &SweepRun{
		ID:          result.RunID,
		Name:        cfg.Name,
		Description: cfg.Description,
		Scenario:    string(scenarioJSON),
		StartTime:   result.StartedAt,
		Status:      "running",

		SampleCount:       result.Summary.SampleCount,
		MinTotalTime:      result.Summary.MinTotalTime,
		BestTimeOffload:   result.Summary.BestTimeOffload,
		BestTimeRelay:     result.Summary.BestTimeRelay,
		MinTotalEnergy:    result.Summary.MinTotalEnergy,
		BestEnergyOffload: result.Summary.BestEnergyOffload,
		BestEnergyRelay:   result.Summary.BestEnergyRelay,
	}

	samples := make([]CostSample, 0, len(result.Samples))
	for _, sample := range result.Samples {
		b := sample.Breakdown
		samples = append(samples, CostSample{
			RunID:        result.RunID,
			OffloadRatio: sample.OffloadRatio,
			RelayRatio:   sample.RelayRatio,

			LocalTime:   b.LocalTime,
			LocalEnergy: b.LocalEnergy,
			MECTime:     b.MECTime,
			MECEnergy:   b.MECEnergy,
			IDTime:      b.IDTime,
			IDEnergy:    b.IDEnergy,

			UplinkRate:   b.UplinkRate,
			UplinkTime:   b.UplinkTime,
			UplinkEnergy: b.UplinkEnergy,
			RelayRate:    b.RelayRate,
			RelayTime:    b.RelayTime,
			RelayEnergy:  b.RelayEnergy,

			OffloadDelay: b.OffloadDelay,
			TotalTime:    b.TotalTime,
			TotalEnergy:  b.TotalEnergy,
		})
	}

	return run, samples, nil
}

// SaveRun persists a collected run and its samples, settling the run status.
func (r *Repository) SaveRun(run *SweepRun, samples []CostSample) error {
	if err := r.CreateSweepRun(run); err != nil {
		return fmt.Errorf("failed to create sweep run: %w", err)
	}

	if err := r.BatchSaveSamples(samples); err != nil {
		r.EndSweepRun(run.ID, "failed")
		return fmt.Errorf("failed to save samples: %w", err)
	}

	return r.EndSweepRun(run.ID, "completed")
}
