package costmodel

import (
	"github.com/3498972895/idle-node-offloading/pkg/models"
)

// CostBreakdown holds every intermediate and final quantity of one model
// evaluation, so callers can inspect any branch of the cost composition
// without re-deriving it.
type CostBreakdown struct {
	// Execution costs per tier
	LocalTime   float64 `json:"local_time"`
	LocalEnergy float64 `json:"local_energy"`
	MECTime     float64 `json:"mec_time"`
	MECEnergy   float64 `json:"mec_energy"`
	IDTime      float64 `json:"id_time"`
	IDEnergy    float64 `json:"id_energy"`

	// Full-local reference point (x=0)
	FullLocalTime   float64 `json:"full_local_time"`
	FullLocalEnergy float64 `json:"full_local_energy"`

	// Communication costs
	UplinkSINR   float64 `json:"uplink_sinr"`
	UplinkRate   float64 `json:"uplink_rate"`
	UplinkTime   float64 `json:"uplink_time"`
	UplinkEnergy float64 `json:"uplink_energy"`
	RelaySINR    float64 `json:"relay_sinr"`
	RelayRate    float64 `json:"relay_rate"`
	RelayTime    float64 `json:"relay_time"`
	RelayEnergy  float64 `json:"relay_energy"`

	// Composed results
	OffloadDelay float64 `json:"offload_delay"`
	TotalTime    float64 `json:"total_time"`
	TotalEnergy  float64 `json:"total_energy"`
}

// Evaluate computes the full cost breakdown for one scenario. It is the one
// place that wires the flat formulas together: the uplink transfer feeds the
// offload delay, the delay and the local time feed the completion time, and
// the energy side sums every tier and hop.
//
// Evaluate inherits the formula core's error model: it does not validate,
// and out-of-domain parameters propagate as Inf/NaN through the breakdown.
func Evaluate(s models.Scenario) CostBreakdown {
	var (
		c        = s.Task.CyclesPerBit
		d        = s.Task.DataSizeBits
		x        = s.Task.OffloadRatio
		omega    = s.Task.RelayRatio
		thetaExe = s.Task.ExecEnergyCost
		thetaTrn = s.Task.TranEnergyCost
	)

	b := CostBreakdown{
		LocalTime:   LocalExecutionTime(c, d, s.Local.ComputingPower, x),
		LocalEnergy: LocalExecutionEnergy(c, d, thetaExe, x),
		MECTime:     MECExecutionTime(x, d, omega, c, s.MEC.ComputingPower),
		MECEnergy:   MECExecutionEnergy(x, d, omega, c, thetaExe),
		IDTime:      IDExecutionTime(c, omega, x, d, s.ID.ComputingPower),
		IDEnergy:    IDExecutionEnergy(c, omega, x, d, thetaExe),

		FullLocalTime:   FullLocalExecutionTime(c, d, s.Local.ComputingPower),
		FullLocalEnergy: FullLocalExecutionEnergy(c, d, thetaExe),
	}

	b.UplinkSINR = SINREUToBS(s.Uplink.TransmitPower, s.Uplink.Gain,
		s.Uplink.NoisePower, s.Uplink.Interference)
	b.UplinkRate = TransmissionRate(s.Uplink.Bandwidth, b.UplinkSINR)
	b.UplinkTime = EUToBSTransmissionTime(x, d, b.UplinkRate)
	b.UplinkEnergy = EUTransmissionEnergy(s.Uplink.TransmitPower, b.UplinkTime, thetaTrn)

	b.RelaySINR = SINRBSToID(s.Relay.TransmitPower, s.Relay.Gain, s.Relay.NoisePower)
	b.RelayRate = TransmissionRate(s.Relay.Bandwidth, b.RelaySINR)
	b.RelayTime = BSToIDTransmissionTime(omega, x, d, b.RelayRate)
	b.RelayEnergy = BSTransmissionEnergy(s.Relay.TransmitPower, b.RelayTime, thetaTrn)

	b.OffloadDelay = OffloadingDelay(b.UplinkTime, b.MECTime, b.IDTime, b.RelayTime)
	b.TotalTime = TotalTaskTime(b.LocalTime, b.OffloadDelay)
	b.TotalEnergy = b.LocalEnergy + b.MECEnergy + b.IDEnergy + b.UplinkEnergy + b.RelayEnergy

	return b
}
