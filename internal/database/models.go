package database

import (
	"time"
)

// SweepRun represents one persisted parameter sweep
type SweepRun struct {
	ID          string     `json:"id" gorm:"primaryKey"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Scenario    string     `json:"scenario"` // JSON scenario parameters
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	Status      string     `json:"status"` // running, completed, failed

	SampleCount int `json:"sample_count"`

	// Grid minima, denormalized for cheap listing
	MinTotalTime      float64 `json:"min_total_time"`
	BestTimeOffload   float64 `json:"best_time_offload_ratio"`
	BestTimeRelay     float64 `json:"best_time_relay_ratio"`
	MinTotalEnergy    float64 `json:"min_total_energy"`
	BestEnergyOffload float64 `json:"best_energy_offload_ratio"`
	BestEnergyRelay   float64 `json:"best_energy_relay_ratio"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CostSample represents one evaluated grid point of a sweep
type CostSample struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	RunID string `json:"run_id" gorm:"index"`

	OffloadRatio float64 `json:"offload_ratio" gorm:"index"`
	RelayRatio   float64 `json:"relay_ratio"`

	// Execution costs
	LocalTime   float64 `json:"local_time"`
	LocalEnergy float64 `json:"local_energy"`
	MECTime     float64 `json:"mec_time"`
	MECEnergy   float64 `json:"mec_energy"`
	IDTime      float64 `json:"id_time"`
	IDEnergy    float64 `json:"id_energy"`

	// Communication costs
	UplinkRate   float64 `json:"uplink_rate"`
	UplinkTime   float64 `json:"uplink_time"`
	UplinkEnergy float64 `json:"uplink_energy"`
	RelayRate    float64 `json:"relay_rate"`
	RelayTime    float64 `json:"relay_time"`
	RelayEnergy  float64 `json:"relay_energy"`

	// Composed results
	OffloadDelay float64 `json:"offload_delay"`
	TotalTime    float64 `json:"total_time"`
	TotalEnergy  float64 `json:"total_energy"`

	CreatedAt time.Time `json:"created_at"`
}
