package history

import (
	"errors"
	"time"
)

// HistoryService represents our history.Service implementation
type HistoryService struct {
	repo Repo
}

// NewService returns a new instance HistoryService
func NewService(repo Repo) *HistoryService {
	return &HistoryService{repo: repo}
}

// StartRun creates a new run
func (s *HistoryService) StartRun(id, input, output string, subnets int, started time.Time) (*Run, error) {
	if id == "" {
		return nil, errors.New("run id cannot be empty")
	}

	return s.repo.CreateRun(&Run{
		ID:        id,
		Input:     input,
		Output:    output,
		Subnets:   subnets,
		StartedAt: started,
	})
}

// RecordSubnet attaches a subnet result to a run
func (s *HistoryService) RecordSubnet(runID string, result *SubnetResult) error {
	if runID == "" {
		return errors.New("run id cannot be empty")
	}

	result.RunID = runID

	_, err := s.repo.AddSubnetResult(result)

	return err
}

// FinishRun stamps the run's finish time and persists its totals
func (s *HistoryService) FinishRun(run *Run, finished time.Time) error {
	run.FinishedAt = &finished

	_, err := s.repo.UpdateRun(run)

	return err
}

// GetRun returns a single run
func (s *HistoryService) GetRun(id string) (*Run, error) {
	return s.repo.GetRun(id)
}

// GetRecentRuns returns up to limit runs, most recent first
func (s *HistoryService) GetRecentRuns(limit int) ([]*Run, error) {
	return s.repo.GetAllRuns(limit)
}

// DeleteRun removes a run
func (s *HistoryService) DeleteRun(id string) error {
	return s.repo.DeleteRun(id)
}

// Open returns a HistoryService backed by the sqlite database at dbFile
func Open(dbFile string) (*HistoryService, error) {
	db, err := NewSqliteDatabase(dbFile)

	if err != nil {
		return nil, err
	}

	return NewService(NewSqliteRepo(db)), nil
}
