// Package models holds the scenario parameters of the idle-node-assisted
// offloading model: the task, the three compute tiers (local device, MEC
// server, idle device) and the two wireless hops (EU->BS uplink, BS->ID
// relay). The structs carry the physical quantities as plain float64s;
// Validate enforces the parameter domains so that the pure formula core in
// pkg/costmodel never has to.
package models

// Task describes one offloadable task and how it is split across tiers.
type Task struct {
	CyclesPerBit float64 `json:"cycles_per_bit"` // CPU cycles required per bit
	DataSizeBits float64 `json:"data_size_bits"` // task size in bits

	OffloadRatio float64 `json:"offload_ratio"` // x, fraction sent off-device
	RelayRatio   float64 `json:"relay_ratio"`   // omega, fraction of the offloaded slice relayed to the ID

	ExecEnergyCost float64 `json:"exec_energy_cost"` // energy cost per CPU cycle
	TranEnergyCost float64 `json:"tran_energy_cost"` // energy cost per transmission unit
}

// Validate checks the task parameters against their physical domains.
func (t Task) Validate() error {
	var errors ValidationErrors

	errors.AddIf(t.CyclesPerBit <= 0, "CyclesPerBit", t.CyclesPerBit,
		"CyclesPerBit must be > 0")
	errors.AddIf(t.DataSizeBits < 0, "DataSizeBits", t.DataSizeBits,
		"DataSizeBits must be non-negative")
	errors.AddIf(t.OffloadRatio < 0 || t.OffloadRatio > 1, "OffloadRatio", t.OffloadRatio,
		"OffloadRatio must be in range [0,1]")
	errors.AddIf(t.RelayRatio < 0 || t.RelayRatio > 1, "RelayRatio", t.RelayRatio,
		"RelayRatio must be in range [0,1]")
	errors.AddIf(t.ExecEnergyCost < 0, "ExecEnergyCost", t.ExecEnergyCost,
		"ExecEnergyCost must be non-negative")
	errors.AddIf(t.TranEnergyCost < 0, "TranEnergyCost", t.TranEnergyCost,
		"TranEnergyCost must be non-negative")

	if errors.HasErrors() {
		return errors
	}
	return nil
}

// LocalDevice is the end user device originating the task.
type LocalDevice struct {
	ComputingPower float64 `json:"computing_power"` // F, in cycles per second
}

// Validate checks the local device parameters.
func (ld LocalDevice) Validate() error {
	var errors ValidationErrors

	errors.AddIf(ld.ComputingPower <= 0, "ComputingPower", ld.ComputingPower,
		"ComputingPower must be > 0")

	if errors.HasErrors() {
		return errors
	}
	return nil
}

// MECServer is the edge server reached through the base station.
type MECServer struct {
	ComputingPower float64 `json:"computing_power"` // f, cycles per second allocated to the task
}

// Validate checks the MEC server parameters.
func (ms MECServer) Validate() error {
	var errors ValidationErrors

	errors.AddIf(ms.ComputingPower <= 0, "ComputingPower", ms.ComputingPower,
		"ComputingPower must be > 0")

	if errors.HasErrors() {
		return errors
	}
	return nil
}

// IdleDevice is the secondary node the base station relays work to.
type IdleDevice struct {
	ComputingPower float64 `json:"computing_power"` // f_id, cycles per second allocated to the task
}

// Validate checks the idle device parameters.
func (id IdleDevice) Validate() error {
	var errors ValidationErrors

	errors.AddIf(id.ComputingPower <= 0, "ComputingPower", id.ComputingPower,
		"ComputingPower must be > 0")

	if errors.HasErrors() {
		return errors
	}
	return nil
}

// UplinkChannel is the shared EU->BS wireless channel.
type UplinkChannel struct {
	TransmitPower float64 `json:"transmit_power"` // W
	Gain          float64 `json:"gain"`           // channel gain
	NoisePower    float64 `json:"noise_power"`    // sigma^2, W
	Interference  float64 `json:"interference"`   // aggregate co-channel interference, W
	Bandwidth     float64 `json:"bandwidth"`      // Hz
}

// Validate checks the uplink channel parameters.
func (uc UplinkChannel) Validate() error {
	var errors ValidationErrors

	errors.AddIf(uc.TransmitPower < 0, "TransmitPower", uc.TransmitPower,
		"TransmitPower must be non-negative")
	errors.AddIf(uc.Gain < 0, "Gain", uc.Gain,
		"Gain must be non-negative")
	errors.AddIf(uc.NoisePower <= 0, "NoisePower", uc.NoisePower,
		"NoisePower must be > 0")
	errors.AddIf(uc.Interference < 0, "Interference", uc.Interference,
		"Interference must be non-negative")
	errors.AddIf(uc.Bandwidth <= 0, "Bandwidth", uc.Bandwidth,
		"Bandwidth must be > 0")

	if errors.HasErrors() {
		return errors
	}
	return nil
}

// RelayChannel is the dedicated BS->ID link. No interference term: the relay
// link is assumed to be a single dedicated channel.
type RelayChannel struct {
	TransmitPower float64 `json:"transmit_power"` // W
	Gain          float64 `json:"gain"`           // channel gain
	NoisePower    float64 `json:"noise_power"`    // sigma^2, W
	Bandwidth     float64 `json:"bandwidth"`      // Hz
}

// Validate checks the relay channel parameters.
func (rc RelayChannel) Validate() error {
	var errors ValidationErrors

	errors.AddIf(rc.TransmitPower < 0, "TransmitPower", rc.TransmitPower,
		"TransmitPower must be non-negative")
	errors.AddIf(rc.Gain < 0, "Gain", rc.Gain,
		"Gain must be non-negative")
	errors.AddIf(rc.NoisePower <= 0, "NoisePower", rc.NoisePower,
		"NoisePower must be > 0")
	errors.AddIf(rc.Bandwidth <= 0, "Bandwidth", rc.Bandwidth,
		"Bandwidth must be > 0")

	if errors.HasErrors() {
		return errors
	}
	return nil
}

// Scenario gathers every parameter needed to evaluate the cost model once.
type Scenario struct {
	Task   Task          `json:"task"`
	Local  LocalDevice   `json:"local_device"`
	MEC    MECServer     `json:"mec_server"`
	ID     IdleDevice    `json:"idle_device"`
	Uplink UplinkChannel `json:"uplink_channel"`
	Relay  RelayChannel  `json:"relay_channel"`
}

// Validate checks every component of the scenario and aggregates the errors.
func (s Scenario) Validate() error {
	var errors ValidationErrors

	for _, part := range []struct {
		name string
		err  error
	}{
		{"Task", s.Task.Validate()},
		{"Local", s.Local.Validate()},
		{"MEC", s.MEC.Validate()},
		{"ID", s.ID.Validate()},
		{"Uplink", s.Uplink.Validate()},
		{"Relay", s.Relay.Validate()},
	} {
		if part.err == nil {
			continue
		}
		if nested, ok := part.err.(ValidationErrors); ok {
			for _, ve := range nested {
				errors.Add(part.name+"."+ve.Field, ve.Value, ve.Message)
			}
			continue
		}
		errors.Add(part.name, nil, part.err.Error())
	}

	if errors.HasErrors() {
		return errors
	}
	return nil
}

// WithRatios returns a copy of the scenario with the offload and relay
// ratios replaced. Used by the sweep runner to walk the (x, omega) grid
// without mutating the base scenario.
func (s Scenario) WithRatios(offload, relay float64) Scenario {
	s.Task.OffloadRatio = offload
	s.Task.RelayRatio = relay
	return s
}
