package history

import (
	"time"

	"gorm.io/datatypes"
)

//go:generate mockgen -destination=../mock/history/mock_history.go -package=mock_history . Repo,Service

// Run a single invocation of the scanner
type Run struct {
	ID         string `gorm:"primaryKey"`
	Input      string
	Output     string
	Subnets    int
	Total      int
	Failed     int
	StartedAt  time.Time
	FinishedAt *time.Time
	Results    []SubnetResult `gorm:"foreignKey:RunID;constraint:OnDelete:CASCADE"`
}

// SubnetResult the outcome of scanning one subnet within a Run
type SubnetResult struct {
	ID       uint   `gorm:"primaryKey"`
	RunID    string `gorm:"index"`
	Position int
	Subnet   string
	State    string
	Found    int
	Error    string
	Hosts    datatypes.JSON
}

// Repo interface representing access to stored runs
type Repo interface {
	CreateRun(run *Run) (*Run, error)
	UpdateRun(run *Run) (*Run, error)
	AddSubnetResult(result *SubnetResult) (*SubnetResult, error)
	GetRun(id string) (*Run, error)
	GetAllRuns(limit int) ([]*Run, error)
	DeleteRun(id string) error
}

// Service interface for recording and reading scan history
type Service interface {
	StartRun(id, input, output string, subnets int, started time.Time) (*Run, error)
	RecordSubnet(runID string, result *SubnetResult) error
	FinishRun(run *Run, finished time.Time) error
	GetRun(id string) (*Run, error)
	GetRecentRuns(limit int) ([]*Run, error)
	DeleteRun(id string) error
}
