package history

import (
	"errors"

	"github.com/hazartaspinar/upscanner/internal/exception"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSqliteDatabase opens (and migrates) the history database at dbFile
func NewSqliteDatabase(dbFile string) (*gorm.DB, error) {
	if dbFile == "" {
		return nil, errors.New("history database file path cannot be empty")
	}

	db, err := gorm.Open(sqlite.Open(dbFile), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})

	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&Run{}, &SubnetResult{}); err != nil {
		return nil, err
	}

	return db, nil
}

// SqliteRepo is our repo implementation for sqlite
type SqliteRepo struct {
	db *gorm.DB
}

// NewSqliteRepo returns a new history sqlite repo
func NewSqliteRepo(db *gorm.DB) *SqliteRepo {
	return &SqliteRepo{db: db}
}

// CreateRun inserts a new run
func (r *SqliteRepo) CreateRun(run *Run) (*Run, error) {
	if run.ID == "" {
		return nil, errors.New("run id cannot be empty")
	}

	if result := r.db.Create(run); result.Error != nil {
		return nil, result.Error
	}

	return run, nil
}

// UpdateRun saves the run's own columns, results are left untouched
func (r *SqliteRepo) UpdateRun(run *Run) (*Run, error) {
	if run.ID == "" {
		return nil, errors.New("run id cannot be empty")
	}

	result := r.db.Model(run).
		Select("Input", "Output", "Subnets", "Total", "Failed", "StartedAt", "FinishedAt").
		Updates(run)

	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, exception.ErrRecordNotFound
	}

	return run, nil
}

// AddSubnetResult inserts the outcome of one subnet
func (r *SqliteRepo) AddSubnetResult(res *SubnetResult) (*SubnetResult, error) {
	if res.RunID == "" {
		return nil, errors.New("subnet result run id cannot be empty")
	}

	if result := r.db.Create(res); result.Error != nil {
		return nil, result.Error
	}

	return res, nil
}

// GetRun returns a run and its subnet results in scan order
func (r *SqliteRepo) GetRun(id string) (*Run, error) {
	run := Run{}

	result := r.db.
		Preload("Results", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		First(&run, "id = ?", id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, exception.ErrRecordNotFound
		}

		return nil, result.Error
	}

	return &run, nil
}

// GetAllRuns returns up to limit runs, most recent first. A limit <= 0
// returns every run.
func (r *SqliteRepo) GetAllRuns(limit int) ([]*Run, error) {
	runs := []*Run{}

	query := r.db.Order("started_at desc")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if result := query.Find(&runs); result.Error != nil {
		return nil, result.Error
	}

	return runs, nil
}

// DeleteRun removes a run and its subnet results
func (r *SqliteRepo) DeleteRun(id string) error {
	if id == "" {
		return errors.New("run id cannot be empty")
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("run_id = ?", id).Delete(&SubnetResult{}).Error; err != nil {
			return err
		}

		return tx.Delete(&Run{ID: id}).Error
	})
}
