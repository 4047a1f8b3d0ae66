package costmodel

import (
	"math"
	"testing"

	"github.com/3498972895/idle-node-offloading/pkg/models"
)

func testScenario() models.Scenario {
	return models.Scenario{
		Task: models.Task{
			CyclesPerBit:   1000,
			DataSizeBits:   1e6,
			OffloadRatio:   0.3,
			RelayRatio:     0.4,
			ExecEnergyCost: 1e-9,
			TranEnergyCost: 1.0,
		},
		Local:  models.LocalDevice{ComputingPower: 1e9},
		MEC:    models.MECServer{ComputingPower: 5e9},
		ID:     models.IdleDevice{ComputingPower: 2e9},
		Uplink: models.UplinkChannel{
			TransmitPower: 0.1,
			Gain:          1e-6,
			NoisePower:    1e-9,
			Interference:  0,
			Bandwidth:     1e6,
		},
		Relay: models.RelayChannel{
			TransmitPower: 0.2,
			Gain:          1e-6,
			NoisePower:    1e-9,
			Bandwidth:     1e6,
		},
	}
}

func TestEvaluate_ComposesFlatFormulas(t *testing.T) {
	s := testScenario()
	b := Evaluate(s)

	c, d := s.Task.CyclesPerBit, s.Task.DataSizeBits
	x, omega := s.Task.OffloadRatio, s.Task.RelayRatio

	if want := LocalExecutionTime(c, d, s.Local.ComputingPower, x); b.LocalTime != want {
		t.Errorf("LocalTime=%g, want %g", b.LocalTime, want)
	}
	if want := MECExecutionTime(x, d, omega, c, s.MEC.ComputingPower); b.MECTime != want {
		t.Errorf("MECTime=%g, want %g", b.MECTime, want)
	}
	if want := IDExecutionTime(c, omega, x, d, s.ID.ComputingPower); b.IDTime != want {
		t.Errorf("IDTime=%g, want %g", b.IDTime, want)
	}

	wantSINR := SINREUToBS(0.1, 1e-6, 1e-9, 0)
	if b.UplinkSINR != wantSINR {
		t.Errorf("UplinkSINR=%g, want %g", b.UplinkSINR, wantSINR)
	}

	wantRate := TransmissionRate(1e6, wantSINR)
	if b.UplinkRate != wantRate {
		t.Errorf("UplinkRate=%g, want %g", b.UplinkRate, wantRate)
	}

	wantDelay := OffloadingDelay(b.UplinkTime, b.MECTime, b.IDTime, b.RelayTime)
	if b.OffloadDelay != wantDelay {
		t.Errorf("OffloadDelay=%g, want %g", b.OffloadDelay, wantDelay)
	}

	if want := TotalTaskTime(b.LocalTime, b.OffloadDelay); b.TotalTime != want {
		t.Errorf("TotalTime=%g, want %g", b.TotalTime, want)
	}

	wantEnergy := b.LocalEnergy + b.MECEnergy + b.IDEnergy + b.UplinkEnergy + b.RelayEnergy
	if !almostEqual(b.TotalEnergy, wantEnergy) {
		t.Errorf("TotalEnergy=%g, want %g", b.TotalEnergy, wantEnergy)
	}
}

func TestEvaluate_NothingOffloaded(t *testing.T) {
	s := testScenario().WithRatios(0, 0)
	b := Evaluate(s)

	if b.LocalTime != b.FullLocalTime {
		t.Errorf("At x=0 local time %g must equal full local time %g", b.LocalTime, b.FullLocalTime)
	}
	if b.MECTime != 0 || b.IDTime != 0 {
		t.Errorf("At x=0 remote times must be zero, got MEC=%g ID=%g", b.MECTime, b.IDTime)
	}
	if b.UplinkTime != 0 || b.RelayTime != 0 {
		t.Errorf("At x=0 transfer times must be zero, got uplink=%g relay=%g", b.UplinkTime, b.RelayTime)
	}
	if b.TotalTime != b.FullLocalTime {
		t.Errorf("At x=0 total time %g must equal full local time %g", b.TotalTime, b.FullLocalTime)
	}
	if !almostEqual(b.TotalEnergy, b.FullLocalEnergy) {
		t.Errorf("At x=0 total energy %g must equal full local energy %g", b.TotalEnergy, b.FullLocalEnergy)
	}
}

func TestEvaluate_AllOutputsFinite(t *testing.T) {
	for _, x := range []float64{0, 0.25, 0.5, 0.75, 1} {
		for _, omega := range []float64{0, 0.5, 1} {
			b := Evaluate(testScenario().WithRatios(x, omega))

			for name, v := range map[string]float64{
				"LocalTime":    b.LocalTime,
				"MECTime":      b.MECTime,
				"IDTime":       b.IDTime,
				"UplinkTime":   b.UplinkTime,
				"RelayTime":    b.RelayTime,
				"OffloadDelay": b.OffloadDelay,
				"TotalTime":    b.TotalTime,
				"TotalEnergy":  b.TotalEnergy,
			} {
				if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
					t.Errorf("x=%g omega=%g: %s = %g, want finite non-negative", x, omega, name, v)
				}
			}
		}
	}
}
