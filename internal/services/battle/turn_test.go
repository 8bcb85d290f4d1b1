package battle_test

import (
	"github.com/KirkDiggler/creature-battle/internal/domain/battlefield"
	"github.com/KirkDiggler/creature-battle/internal/domain/conditions"
	"github.com/KirkDiggler/creature-battle/internal/domain/terrain"
	"github.com/KirkDiggler/creature-battle/internal/errors"
)

func (s *ServiceTestSuite) TestStartTurn() {
	report, err := s.service.StartTurn(s.ctx, "A")
	s.Require().NoError(err)

	s.Equal(1, report.Turn)
	s.True(report.CanAct)
	s.True(report.CanMove)
	s.Equal([]string{"before:turn"}, s.recorder.seen)
}

func (s *ServiceTestSuite) TestEndTurn_HazardAndConditions() {
	s.Require().NoError(s.arena.Battlefield().SetTerrain(battlefield.NewPosition(2, 3), terrain.Lava))
	_, err := s.a.ApplyCondition(conditions.Spec{Type: conditions.Burned, DurationType: conditions.DurationTurns, Duration: 1})
	s.Require().NoError(err)

	report, err := s.service.EndTurn(s.ctx, "A")
	s.Require().NoError(err)

	s.Equal(10, report.HazardDamage)
	s.Equal(6, report.DamageTaken)
	s.Equal(s.a.MaxHP()-16, s.a.HP())
	s.Equal([]conditions.ConditionType{conditions.Burned}, report.Expired)
	s.False(s.a.HasCondition(conditions.Burned))
	s.Equal([]string{"after:condition_removed", "after:turn"}, s.recorder.seen)
}

func (s *ServiceTestSuite) TestEndTurn_ConditionDamageIsFlat() {
	for _, condType := range []conditions.ConditionType{conditions.Burned, conditions.Poisoned} {
		_, err := s.a.ApplyCondition(conditions.Spec{Type: condType, DurationType: conditions.DurationTurns, Duration: 3})
		s.Require().NoError(err)
	}
	s.a.TakeDamage(50)

	report, err := s.service.EndTurn(s.ctx, "A")
	s.Require().NoError(err)

	// burned 6 + poisoned 8, whatever the creature's HP pool
	s.Equal(14, report.DamageTaken)
	s.Equal(s.a.MaxHP()-64, s.a.HP())
	s.Empty(report.Expired)
}

func (s *ServiceTestSuite) TestEndTurn_FireWalksOnLava() {
	s.Require().NoError(s.arena.Battlefield().SetTerrain(battlefield.NewPosition(2, 4), terrain.Lava))

	report, err := s.service.EndTurn(s.ctx, "X")
	s.Require().NoError(err)
	s.Equal(0, report.HazardDamage)
	s.Equal(s.x.MaxHP(), s.x.HP())
}

func (s *ServiceTestSuite) TestEndTurn_HazardDefeats() {
	s.Require().NoError(s.arena.Battlefield().SetTerrain(battlefield.NewPosition(2, 3), terrain.Lava))
	s.a.TakeDamage(s.a.MaxHP() - 5)

	report, err := s.service.EndTurn(s.ctx, "A")
	s.Require().NoError(err)

	s.Equal([]string{"A"}, report.Defeated)
	s.Equal([]string{"after:defeat"}, s.recorder.seen)

	_, err = s.service.StartTurn(s.ctx, "A")
	s.True(errors.IsRejected(err))
}

func (s *ServiceTestSuite) TestWinner() {
	s.a.Defeat()
	s.b.Defeat()

	side, ok := s.service.Battle().Winner()
	s.True(ok)
	s.Equal(s.x.Side(), side)
}
