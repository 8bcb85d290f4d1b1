package battle_test

import (
	"github.com/KirkDiggler/creature-battle/internal/domain/battlefield"
	"github.com/KirkDiggler/creature-battle/internal/domain/conditions"
	"github.com/KirkDiggler/creature-battle/internal/domain/shared"
	"github.com/KirkDiggler/creature-battle/internal/domain/terrain"
	"github.com/KirkDiggler/creature-battle/internal/errors"
	"github.com/KirkDiggler/creature-battle/internal/services/battle"
)

func (s *ServiceTestSuite) TestMove() {
	to := battlefield.NewPosition(3, 3)
	s.Require().NoError(s.arena.Battlefield().SetTerrain(to, terrain.Forest))

	result, err := s.service.Move(s.ctx, "A", to)
	s.Require().NoError(err)

	s.Equal(1, result.Steps)
	s.InDelta(1.5, result.Cost, 0.0001)
	pos, _ := s.a.Position()
	s.Equal(to, pos)
	_, taken := s.arena.Battlefield().OccupantAt(battlefield.NewPosition(2, 3))
	s.False(taken)
	s.Equal([]string{"before:move", "after:move"}, s.recorder.seen)
}

func (s *ServiceTestSuite) TestMove_Rejections() {
	s.Require().NoError(s.arena.Battlefield().SetTerrain(battlefield.NewPosition(2, 2), terrain.Boulder))

	tests := []struct {
		name  string
		to    battlefield.Position
		check func(error) bool
	}{
		{name: "off grid", to: battlefield.NewPosition(-1, 3), check: errors.IsInvalidArgument},
		{name: "not adjacent", to: battlefield.NewPosition(2, 1), check: errors.IsRejected},
		{name: "other side", to: battlefield.NewPosition(2, 4), check: errors.IsRejected},
		{name: "occupied", to: battlefield.NewPosition(1, 3), check: errors.IsRejected},
		{name: "boulder", to: battlefield.NewPosition(2, 2), check: errors.IsRejected},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.service.Move(s.ctx, "A", tt.to)
			s.Require().Error(err)
			s.True(tt.check(err), "got %v", err)
		})
	}
	pos, _ := s.a.Position()
	s.Equal(battlefield.NewPosition(2, 3), pos)
}

func (s *ServiceTestSuite) TestMove_Chasm() {
	s.Require().NoError(s.arena.Battlefield().SetTerrain(battlefield.NewPosition(3, 3), terrain.Chasm))

	_, err := s.service.Move(s.ctx, "A", battlefield.NewPosition(3, 3))
	s.True(errors.IsRejected(err))
	s.False(s.a.IsDefeated())
}

func (s *ServiceTestSuite) TestMove_Rooted() {
	_, err := s.a.ApplyCondition(conditions.Spec{Type: conditions.Rooted})
	s.Require().NoError(err)

	_, err = s.service.Move(s.ctx, "A", battlefield.NewPosition(3, 3))
	s.True(errors.IsRejected(err))
}

func (s *ServiceTestSuite) TestPush() {
	result, err := s.service.Push(s.ctx, &battle.PushInput{SourceID: "X", TargetID: "A", DCol: -1, Distance: 2})
	s.Require().NoError(err)

	s.True(result.Forced)
	s.Equal(2, result.Steps)
	s.Equal(battlefield.NewPosition(2, 1), result.To)
	pos, _ := s.a.Position()
	s.Equal(battlefield.NewPosition(2, 1), pos)
	s.Equal([]string{"before:forced_move", "after:forced_move"}, s.recorder.seen)
}

func (s *ServiceTestSuite) TestPush_IntoChasm() {
	s.Require().NoError(s.arena.Battlefield().SetTerrain(battlefield.NewPosition(2, 2), terrain.Chasm))

	result, err := s.service.Push(s.ctx, &battle.PushInput{SourceID: "X", TargetID: "A", DCol: -1, Distance: 3})
	s.Require().NoError(err)

	s.Equal(1, result.Steps)
	s.Equal([]string{"A"}, result.Defeated)
	s.True(s.a.IsDefeated())
	_, placed := s.a.Position()
	s.False(placed)
	s.Contains(s.recorder.seen, "after:defeat")
}

func (s *ServiceTestSuite) TestPush_Blocked() {
	tests := []struct {
		name  string
		setup func()
		input *battle.PushInput
	}{
		{
			name:  "occupied",
			input: &battle.PushInput{SourceID: "X", TargetID: "A", DRow: -1, Distance: 1},
		},
		{
			name: "boulder",
			setup: func() {
				s.Require().NoError(s.arena.Battlefield().SetTerrain(battlefield.NewPosition(2, 2), terrain.Boulder))
			},
			input: &battle.PushInput{SourceID: "X", TargetID: "A", DCol: -1, Distance: 1},
		},
		{
			name:  "edge",
			input: &battle.PushInput{SourceID: "A", TargetID: "Y", DRow: -1, Distance: 2},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			if tt.setup != nil {
				tt.setup()
			}

			result, err := s.service.Push(s.ctx, tt.input)
			s.Require().NoError(err)
			s.Equal(0, result.Steps)
			s.Equal(result.From, result.To)
			s.Empty(s.recorder.seen)
		})
	}
}

func (s *ServiceTestSuite) TestPush_InvalidInput() {
	_, err := s.service.Push(s.ctx, &battle.PushInput{SourceID: "X", TargetID: "A", DRow: 1, DCol: 1, Distance: 1})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.service.Push(s.ctx, &battle.PushInput{SourceID: "X", TargetID: "A", DCol: 1})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.service.Push(s.ctx, &battle.PushInput{SourceID: "X", TargetID: "nobody", DCol: 1, Distance: 1})
	s.True(errors.IsNotFound(err))
}

func (s *ServiceTestSuite) TestPush_CrossesSides() {
	result, err := s.service.Push(s.ctx, &battle.PushInput{SourceID: "A", TargetID: "X", DCol: -1, Distance: 1})
	s.Require().NoError(err)
	// A blocks the way
	s.Equal(0, result.Steps)

	s.Require().NoError(s.arena.MoveCreature(s.a, battlefield.NewPosition(3, 3)))
	result, err = s.service.Push(s.ctx, &battle.PushInput{SourceID: "A", TargetID: "X", DCol: -1, Distance: 1})
	s.Require().NoError(err)
	s.Equal(battlefield.NewPosition(2, 3), result.To)
	s.Equal(shared.SidePlayer, battlefield.SideOfColumn(result.To.Col))
}
