package sweep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/3498972895/idle-node-offloading/pkg/costmodel"
	"github.com/3498972895/idle-node-offloading/pkg/models"
	"github.com/3498972895/idle-node-offloading/pkg/scenario"
)

func testConfig() *scenario.Config {
	return &scenario.Config{
		Name: "test-sweep",
		Scenario: models.Scenario{
			Task: models.Task{
				CyclesPerBit:   1000,
				DataSizeBits:   1e6,
				ExecEnergyCost: 1e-9,
				TranEnergyCost: 1.0,
			},
			Local: models.LocalDevice{ComputingPower: 1e9},
			MEC:   models.MECServer{ComputingPower: 5e9},
			ID:    models.IdleDevice{ComputingPower: 2e9},
			Uplink: models.UplinkChannel{
				TransmitPower: 0.1,
				Gain:          1e-6,
				NoisePower:    1e-9,
				Bandwidth:     1e6,
			},
			Relay: models.RelayChannel{
				TransmitPower: 0.2,
				Gain:          1e-6,
				NoisePower:    1e-9,
				Bandwidth:     1e6,
			},
		},
		Sweep: scenario.SweepSpec{
			OffloadRatio: scenario.AxisSpec{Min: 0, Max: 1, Steps: 5},
			RelayRatio:   scenario.AxisSpec{Min: 0, Max: 1, Steps: 3},
		},
	}
}

func TestRun_CoversGrid(t *testing.T) {
	cfg := testConfig()
	result := Run(cfg)

	require.NotNil(t, result)
	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, "test-sweep", result.Name)
	require.Len(t, result.Samples, 5*3)
	assert.Equal(t, 15, result.Summary.SampleCount)

	// First and last grid points sit on the axis endpoints.
	first, last := result.Samples[0], result.Samples[len(result.Samples)-1]
	assert.Equal(t, 0.0, first.OffloadRatio)
	assert.Equal(t, 0.0, first.RelayRatio)
	assert.Equal(t, 1.0, last.OffloadRatio)
	assert.Equal(t, 1.0, last.RelayRatio)
}

func TestRun_SamplesMatchDirectEvaluation(t *testing.T) {
	cfg := testConfig()
	result := Run(cfg)

	for _, sample := range result.Samples {
		want := costmodel.Evaluate(cfg.Scenario.WithRatios(sample.OffloadRatio, sample.RelayRatio))
		assert.Equal(t, want, sample.Breakdown,
			"sample at x=%g omega=%g diverges from direct evaluation",
			sample.OffloadRatio, sample.RelayRatio)
	}
}

func TestRun_SummaryHoldsGridMinima(t *testing.T) {
	cfg := testConfig()
	result := Run(cfg)
	s := result.Summary

	for _, sample := range result.Samples {
		assert.LessOrEqual(t, s.MinTotalTime, sample.Breakdown.TotalTime)
		assert.LessOrEqual(t, s.MinTotalEnergy, sample.Breakdown.TotalEnergy)
	}

	// The reported argmins really achieve the minima.
	atBestTime := costmodel.Evaluate(cfg.Scenario.WithRatios(s.BestTimeOffload, s.BestTimeRelay))
	assert.Equal(t, s.MinTotalTime, atBestTime.TotalTime)

	atBestEnergy := costmodel.Evaluate(cfg.Scenario.WithRatios(s.BestEnergyOffload, s.BestEnergyRelay))
	assert.Equal(t, s.MinTotalEnergy, atBestEnergy.TotalEnergy)

	// Full-local reference matches the model.
	ref := costmodel.Evaluate(cfg.Scenario.WithRatios(0, 0))
	assert.Equal(t, ref.FullLocalTime, s.FullLocalTime)
	assert.Equal(t, ref.FullLocalEnergy, s.FullLocalEnergy)
}

func TestRun_DistinctRunIDs(t *testing.T) {
	cfg := testConfig()
	assert.NotEqual(t, Run(cfg).RunID, Run(cfg).RunID)
}

func TestRun_SinglePointGrid(t *testing.T) {
	cfg := testConfig()
	cfg.Sweep.OffloadRatio = scenario.AxisSpec{Min: 0.3, Max: 0.3, Steps: 1}
	cfg.Sweep.RelayRatio = scenario.AxisSpec{Min: 0.4, Max: 0.4, Steps: 1}

	result := Run(cfg)
	require.Len(t, result.Samples, 1)

	want := costmodel.Evaluate(cfg.Scenario.WithRatios(0.3, 0.4))
	assert.Equal(t, want.TotalTime, result.Summary.MinTotalTime)
	assert.Equal(t, 0.3, result.Summary.BestTimeOffload)
	assert.Equal(t, 0.4, result.Summary.BestTimeRelay)
}
