package repos

import (
	"time"

	"github.com/fabforge/fabquote/internal/db/models"
	"github.com/fabforge/fabquote/internal/types"
)

func (s *DBRepositoryTestSuite) createTestActual(jobType string, estimated, actual float64) *models.HistoricalActual {
	record := &models.HistoricalActual{
		JobType:        jobType,
		EstimatedHours: estimated,
		ActualHours:    actual,
		CreatedAt:      time.Now(),
	}
	s.Require().NoError(s.actualRepo.Create(s.ctx, record))
	return record
}

func (s *DBRepositoryTestSuite) TestCreateActualComputesVariance() {
	record := s.createTestActual("cantilever_gate", 20, 25)
	s.InDelta(0.25, record.VariancePct, 0.0001)

	under := s.createTestActual("cantilever_gate", 20, 15)
	s.InDelta(-0.25, under.VariancePct, 0.0001)
}

func (s *DBRepositoryTestSuite) TestCreateActualRejectsNonPositiveHours() {
	err := s.actualRepo.Create(s.ctx, &models.HistoricalActual{JobType: "bollard"})
	s.Require().Error(err)
	s.Contains(err.Error(), "actual_hours must be positive")
}

func (s *DBRepositoryTestSuite) TestActualTotalHoursFiltersByJobType() {
	s.createTestActual("cantilever_gate", 20, 22)
	s.createTestActual("cantilever_gate", 18, 19)
	s.createTestActual("straight_railing", 12, 14)

	hours, err := s.actualRepo.ActualTotalHours(s.ctx, types.JobTypeCantileverGate)
	s.Require().NoError(err)
	s.Len(hours, 2)
	s.Contains(hours, 22.0)
	s.Contains(hours, 19.0)
}

func (s *DBRepositoryTestSuite) TestActualTotalHoursEmptyForUnknownType() {
	hours, err := s.actualRepo.ActualTotalHours(s.ctx, types.JobTypeSpiralStair)
	s.Require().NoError(err)
	s.Empty(hours)
}

func (s *DBRepositoryTestSuite) TestListByJobType() {
	s.createTestActual("furniture_table", 14, 16)

	actuals, err := s.actualRepo.ListByJobType(s.ctx, types.JobTypeFurnitureTable, &models.ListOptions{Limit: models.DefaultLimit})
	s.Require().NoError(err)
	s.Require().Len(actuals, 1)
	s.Equal(16.0, actuals[0].ActualHours)
}
