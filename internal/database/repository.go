package database

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Repository provides data access methods
type Repository struct {
	db *DB
}

// NewRepository creates a new repository
func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// CreateSweepRun creates a new sweep run record
func (r *Repository) CreateSweepRun(run *SweepRun) error {
	return r.db.Create(run).Error
}

// GetSweepRun retrieves a sweep run by ID
func (r *Repository) GetSweepRun(id string) (*SweepRun, error) {
	var run SweepRun
	err := r.db.First(&run, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// ListSweepRuns lists all sweep runs, newest first
func (r *Repository) ListSweepRuns() ([]SweepRun, error) {
	var runs []SweepRun
	err := r.db.Order("created_at DESC").Find(&runs).Error
	return runs, err
}

// EndSweepRun marks a sweep run as completed or failed
func (r *Repository) EndSweepRun(id string, status string) error {
	now := time.Now()
	return r.db.Model(&SweepRun{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"end_time": now,
			"status":   status,
		}).Error
}

// BatchSaveSamples saves the grid samples of a run in batches
func (r *Repository) BatchSaveSamples(samples []CostSample) error {
	if len(samples) == 0 {
		return nil
	}

	return r.db.CreateInBatches(samples, 100).Error
}

// GetSamples retrieves samples for a run, ordered along the grid
func (r *Repository) GetSamples(runID string, limit int) ([]CostSample, error) {
	var samples []CostSample
	query := r.db.Where("run_id = ?", runID).
		Order("offload_ratio ASC, relay_ratio ASC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	err := query.Find(&samples).Error
	return samples, err
}

// GetSamplesInOffloadRange retrieves samples whose offload ratio falls in
// [xMin, xMax]
func (r *Repository) GetSamplesInOffloadRange(runID string, xMin, xMax float64) ([]CostSample, error) {
	var samples []CostSample
	err := r.db.Where("run_id = ? AND offload_ratio BETWEEN ? AND ?", runID, xMin, xMax).
		Order("offload_ratio ASC, relay_ratio ASC").
		Find(&samples).Error
	return samples, err
}

// GetBestSample returns the sample with the smallest total task time
func (r *Repository) GetBestSample(runID string) (*CostSample, error) {
	var sample CostSample
	err := r.db.Where("run_id = ?", runID).
		Order("total_time ASC").
		First(&sample).Error

	if err != nil {
		return nil, fmt.Errorf("failed to get best sample: %w", err)
	}

	return &sample, nil
}

// GetRunSummary gets aggregated stats for a sweep run
func (r *Repository) GetRunSummary(runID string) (map[string]interface{}, error) {
	summary := make(map[string]interface{})

	run, err := r.GetSweepRun(runID)
	if err != nil {
		return nil, err
	}
	summary["run"] = run

	var stats struct {
		SampleCount    int64
		MinTotalTime   float64
		MaxTotalTime   float64
		AvgTotalTime   float64
		MinTotalEnergy float64
		MaxTotalEnergy float64
		AvgTotalEnergy float64
	}

	r.db.Model(&CostSample{}).
		Where("run_id = ?", runID).
		Select("COUNT(*) as sample_count, " +
			"MIN(total_time) as min_total_time, MAX(total_time) as max_total_time, " +
			"AVG(total_time) as avg_total_time, " +
			"MIN(total_energy) as min_total_energy, MAX(total_energy) as max_total_energy, " +
			"AVG(total_energy) as avg_total_energy").
		Scan(&stats)

	summary["statistics"] = stats

	return summary, nil
}

// DeleteSweepRun deletes a sweep run and all its samples
func (r *Repository) DeleteSweepRun(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("run_id = ?", id).Delete(&CostSample{}).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", id).Delete(&SweepRun{}).Error
	})
}

// UpdateSweepRunMetadata updates run name and description
func (r *Repository) UpdateSweepRunMetadata(runID, name, description string) error {
	return r.db.Model(&SweepRun{}).
		Where("id = ?", runID).
		Updates(map[string]interface{}{
			"name":        name,
			"description": description,
		}).Error
}
