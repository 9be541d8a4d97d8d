package history_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/hazartaspinar/upscanner/internal/history"
	mock_history "github.com/hazartaspinar/upscanner/internal/mock/history"
	"github.com/stretchr/testify/assert"
)

func TestHistoryService(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	mockRepo := mock_history.NewMockRepo(ctrl)

	service := history.NewService(mockRepo)

	started := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

	t.Run("starts run", func(st *testing.T) {
		mockRepo.EXPECT().CreateRun(gomock.Any()).DoAndReturn(
			func(run *history.Run) (*history.Run, error) {
				return run, nil
			},
		)

		run, err := service.StartRun("run-1", "subnets.txt", "live.txt", 3, started)

		assert.NoError(st, err)
		assert.Equal(st, "run-1", run.ID)
		assert.Equal(st, "subnets.txt", run.Input)
		assert.Equal(st, "live.txt", run.Output)
		assert.Equal(st, 3, run.Subnets)
		assert.Equal(st, started, run.StartedAt)
		assert.Nil(st, run.FinishedAt)
	})

	t.Run("refuses to start run without id", func(st *testing.T) {
		run, err := service.StartRun("", "subnets.txt", "live.txt", 3, started)

		assert.Error(st, err)
		assert.Nil(st, run)
	})

	t.Run("records subnet against run", func(st *testing.T) {
		result, err := history.NewSubnetResult(1, "10.0.0.0/30", "completed", []string{"10.0.0.2"}, nil)

		assert.NoError(st, err)

		mockRepo.EXPECT().AddSubnetResult(result).Return(result, nil)

		err = service.RecordSubnet("run-1", result)

		assert.NoError(st, err)
		assert.Equal(st, "run-1", result.RunID)
		assert.Equal(st, 1, result.Found)
	})

	t.Run("refuses to record subnet without run id", func(st *testing.T) {
		result, err := history.NewSubnetResult(1, "10.0.0.0/30", "completed", nil, nil)

		assert.NoError(st, err)

		err = service.RecordSubnet("", result)

		assert.Error(st, err)
	})

	t.Run("finishes run", func(st *testing.T) {
		run := &history.Run{ID: "run-1", StartedAt: started, Total: 4}
		finished := started.Add(time.Minute)

		mockRepo.EXPECT().UpdateRun(run).Return(run, nil)

		err := service.FinishRun(run, finished)

		assert.NoError(st, err)
		assert.Equal(st, finished, *run.FinishedAt)
	})

	t.Run("gets recent runs", func(st *testing.T) {
		expected := []*history.Run{{ID: "b"}, {ID: "a"}}

		mockRepo.EXPECT().GetAllRuns(10).Return(expected, nil)

		runs, err := service.GetRecentRuns(10)

		assert.NoError(st, err)
		assert.Equal(st, expected, runs)
	})

	t.Run("gets and deletes run", func(st *testing.T) {
		expected := &history.Run{ID: "run-1"}

		mockRepo.EXPECT().GetRun("run-1").Return(expected, nil)
		mockRepo.EXPECT().DeleteRun("run-1").Return(nil)

		run, err := service.GetRun("run-1")

		assert.NoError(st, err)
		assert.Equal(st, expected, run)

		assert.NoError(st, service.DeleteRun("run-1"))
	})
}
