package battlelogs_test

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/creature-battle/internal/domain/action"
	domainbattle "github.com/KirkDiggler/creature-battle/internal/domain/battle"
	"github.com/KirkDiggler/creature-battle/internal/domain/battlefield"
	"github.com/KirkDiggler/creature-battle/internal/domain/conditions"
	"github.com/KirkDiggler/creature-battle/internal/domain/creature"
	"github.com/KirkDiggler/creature-battle/internal/domain/events"
	"github.com/KirkDiggler/creature-battle/internal/domain/shared"
	"github.com/KirkDiggler/creature-battle/internal/modifiers"
	"github.com/KirkDiggler/creature-battle/internal/repositories/battlelogs"
	"github.com/KirkDiggler/creature-battle/internal/repositories/battlelogs/mocks"
	"github.com/KirkDiggler/creature-battle/internal/uuid"
)

type RecorderTestSuite struct {
	suite.Suite
	ctx          context.Context
	ctrl         *gomock.Controller
	repo         *mocks.MockRepository
	timeProvider *mocks.MockTimeProvider
	recorder     *battlelogs.Recorder
	arena        *domainbattle.Context
	a, x         *creature.Creature
	now          time.Time
}

func TestRecorderSuite(t *testing.T) {
	suite.Run(t, new(RecorderTestSuite))
}

func (s *RecorderTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.repo = mocks.NewMockRepository(s.ctrl)
	s.timeProvider = mocks.NewMockTimeProvider(s.ctrl)
	s.now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s.recorder = battlelogs.NewRecorder(&battlelogs.RecorderConfig{
		Repository:    s.repo,
		UUIDGenerator: uuid.NewSequentialGenerator("log"),
		TimeProvider:  s.timeProvider,
	})

	s.arena = domainbattle.NewContext("duel", battlefield.NewDefault())
	s.a = s.spawn("A", shared.SidePlayer, battlefield.NewPosition(2, 3))
	s.x = s.spawn("X", shared.SideEnemy, battlefield.NewPosition(2, 4))
}

func (s *RecorderTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RecorderTestSuite) spawn(id string, side shared.Side, pos battlefield.Position) *creature.Creature {
	stats := modifiers.BaseStats{}
	for _, stat := range shared.Stats {
		stats[stat] = 50
	}
	c, err := creature.New(&creature.Config{
		ID:      id,
		Name:    id,
		Species: &creature.Species{Key: "test", Name: "Test", BaseStats: stats},
		Level:   10,
		Side:    side,
	})
	s.Require().NoError(err)
	s.Require().NoError(s.arena.AddCreature(c, pos))
	return c
}

func (s *RecorderTestSuite) TestRecordsDamage() {
	s.timeProvider.EXPECT().Now().Return(s.now)
	s.repo.EXPECT().Append(s.ctx, &battlelogs.Entry{
		ID:         "log-1",
		BattleID:   "duel",
		Turn:       1,
		Kind:       "damage",
		Timing:     "after",
		SourceID:   "A",
		TargetIDs:  []string{"X"},
		ActionKey:  "bite",
		Amount:     12,
		Critical:   true,
		RecordedAt: s.now,
	}).Return(nil)

	err := s.recorder.HandleEvent(s.ctx, &events.DamageEvent{
		Base:     events.Base{Ctx: s.arena, When: events.After, Origin: s.a},
		Defender: s.x,
		Used:     &action.Action{Key: "bite"},
		Amount:   12,
		Critical: true,
	})
	s.NoError(err)
}

func (s *RecorderTestSuite) TestRecordsDetail() {
	s.timeProvider.EXPECT().Now().Return(s.now).Times(2)

	var recorded []*battlelogs.Entry
	s.repo.EXPECT().Append(s.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e *battlelogs.Entry) error {
		recorded = append(recorded, e)
		return nil
	}).Times(2)

	s.NoError(s.recorder.HandleEvent(s.ctx, &events.ConditionEvent{
		Base:      events.Base{Ctx: s.arena, When: events.After, Origin: s.a},
		Recipient: s.x,
		Condition: conditions.Burned,
	}))
	s.NoError(s.recorder.HandleEvent(s.ctx, &events.MoveEvent{
		Base: events.Base{Ctx: s.arena, When: events.Before, Origin: s.a},
		From: battlefield.NewPosition(2, 3),
		To:   battlefield.NewPosition(3, 3),
	}))

	s.Require().Len(recorded, 2)
	s.Equal("condition_applied", recorded[0].Kind)
	s.Equal("burned", recorded[0].Detail)
	s.Equal([]string{"X"}, recorded[0].TargetIDs)
	s.Equal("log-2", recorded[1].ID)
	s.Equal("move", recorded[1].Kind)
	s.Equal("(2,3) -> (3,3)", recorded[1].Detail)
	s.Empty(recorded[1].TargetIDs)
}

func (s *RecorderTestSuite) TestRepositoryErrorStopsBus() {
	bus := events.NewBus()
	bus.Subscribe(s.recorder)

	s.timeProvider.EXPECT().Now().Return(s.now)
	s.repo.EXPECT().Append(s.ctx, gomock.Any()).Return(stderrors.New("redis down"))

	err := bus.Emit(s.ctx, &events.TurnEvent{Base: events.Base{Ctx: s.arena, When: events.Before, Origin: s.a}})
	s.Error(err)
}

func (s *RecorderTestSuite) TestPriority() {
	s.Equal(battlelogs.RecorderPriority, s.recorder.Priority())
}
