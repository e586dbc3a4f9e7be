package simulation_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-abilities/internal/engine"
	enginemock "github.com/KirkDiggler/rpg-abilities/internal/engine/mock"
	"github.com/KirkDiggler/rpg-abilities/internal/entities/ability"
	"github.com/KirkDiggler/rpg-abilities/internal/errors"
	"github.com/KirkDiggler/rpg-abilities/internal/simulation"
	"github.com/KirkDiggler/rpg-abilities/internal/states"
	"github.com/KirkDiggler/rpg-abilities/internal/testutils"
)

// fixedRoller always rolls the same face
type fixedRoller struct {
	face int
	err  error
	// sizes records every die size rolled
	sizes []int
}

func (r *fixedRoller) Roll(size int) (int, error) {
	r.sizes = append(r.sizes, size)
	return r.face, r.err
}

func (r *fixedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		face, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = face
	}
	return out, nil
}

type RunnerTestSuite struct {
	suite.Suite
	ctx    context.Context
	roller *fixedRoller
	runner *simulation.Runner
}

func TestRunnerSuite(t *testing.T) {
	suite.Run(t, new(RunnerTestSuite))
}

func (s *RunnerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.roller = &fixedRoller{face: 1}

	eng, err := engine.New(&engine.Config{})
	s.Require().NoError(err)

	runner, err := simulation.NewRunner(&simulation.Config{Engine: eng, Roller: s.roller})
	s.Require().NoError(err)
	s.runner = runner
}

func (s *RunnerTestSuite) TestNewRunnerRequiresEngine() {
	_, err := simulation.NewRunner(&simulation.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = simulation.NewRunner(nil)
	s.Require().Error(err)
}

func (s *RunnerTestSuite) TestBasicMeleeRunsToCompletion() {
	out, err := s.runner.Run(s.ctx, &simulation.RunInput{
		Ability:   testutils.TestBasicMelee(),
		MaxEnergy: 100,
		Script: simulation.Script{
			Frame:   50 * time.Millisecond,
			Physics: testutils.TestSnapshot(),
		},
	})
	s.Require().NoError(err)

	s.True(out.Admitted)
	s.Equal(states.EndCompleted, out.End)
	s.False(out.Truncated)
	s.Equal(int32(90), out.Energy)
	s.Len(out.Frames, 9)
	s.Equal(450*time.Millisecond, out.Elapsed)

	s.Equal(states.StageBuildup, out.Frames[0].Section)
	s.Equal(states.StageAction, out.Frames[1].Section)
	s.Equal(states.StageRecover, out.Frames[2].Section)

	attacks := 0
	for _, frame := range out.Frames {
		attacks += len(frame.Effects.Attacks)
	}
	s.Equal(1, attacks)
	s.Len(out.Frames[1].Effects.Attacks, 1)
}

func (s *RunnerTestSuite) TestRejectedAtGate() {
	out, err := s.runner.Run(s.ctx, &simulation.RunInput{
		Ability:   testutils.TestBasicMelee(),
		MaxEnergy: 100,
		Energy:    5,
	})
	s.Require().NoError(err)

	s.False(out.Admitted)
	s.Equal(engine.RejectRequirements, out.Reason)
	s.Empty(out.Frames)
	s.Equal(int32(5), out.Energy)
}

func (s *RunnerTestSuite) TestChargedShotFiresOnRelease() {
	out, err := s.runner.Run(s.ctx, &simulation.RunInput{
		Ability:   testutils.TestChargedRanged(),
		MaxEnergy: 1000,
		Script: simulation.Script{
			Frame:   100 * time.Millisecond,
			HoldFor: 600 * time.Millisecond,
			Physics: testutils.TestSnapshot(),
		},
	})
	s.Require().NoError(err)
	s.Equal(states.EndCompleted, out.End)

	var fired []states.ProjectileSpawn
	for _, frame := range out.Frames {
		fired = append(fired, frame.Effects.Projectiles...)
	}
	s.Require().Len(fired, 1)
	s.Less(out.Energy, int32(1000))
}

func (s *RunnerTestSuite) TestShockwaveAbortsWhenAirborne() {
	snapshot := testutils.TestSnapshot()
	out, err := s.runner.Run(s.ctx, &simulation.RunInput{
		Ability:   testutils.TestGroundShockwave(),
		MaxEnergy: 1000,
		Script: simulation.Script{
			Frame:         100 * time.Millisecond,
			AirborneAfter: 200 * time.Millisecond,
			Physics:       snapshot,
		},
	})
	s.Require().NoError(err)
	s.True(out.Admitted)
	s.Equal(states.EndAborted, out.End)
	s.Equal(int32(700), out.Energy)
}

func (s *RunnerTestSuite) TestComboFollowUpReachesSecondStage() {
	var followUps []time.Duration
	for at := 150 * time.Millisecond; at <= 600*time.Millisecond; at += 50 * time.Millisecond {
		followUps = append(followUps, at)
	}

	out, err := s.runner.Run(s.ctx, &simulation.RunInput{
		Ability:   testutils.TestComboMelee(),
		MaxEnergy: 1000,
		Energy:    500,
		Script: simulation.Script{
			Frame:     50 * time.Millisecond,
			FollowUps: followUps,
			Physics:   testutils.TestSnapshot(),
		},
	})
	s.Require().NoError(err)
	s.Equal(states.EndCompleted, out.End)

	var types []string
	attacks := 0
	for _, frame := range out.Frames {
		types = append(types, frame.Type)
		attacks += len(frame.Effects.Attacks)
	}
	s.Contains(strings.Join(types, " "), "combo_melee/buildup/2")
	s.Equal(2, attacks)
	s.Equal(int32(500+25+55), out.Energy)
}

func (s *RunnerTestSuite) TestJitterUsesRoller() {
	out, err := s.runner.Run(s.ctx, &simulation.RunInput{
		Ability:   ability.Boost{Duration: ability.Millis(100)},
		MaxEnergy: 100,
		Script: simulation.Script{
			Frame:  50 * time.Millisecond,
			Jitter: 10 * time.Millisecond,
		},
	})
	s.Require().NoError(err)
	s.Require().NotEmpty(out.Frames)
	s.Equal(40*time.Millisecond, out.Frames[0].Dt)
	s.Equal(21, s.roller.sizes[0])
}

func (s *RunnerTestSuite) TestJitterRollFailure() {
	s.roller.err = fmt.Errorf("dice jammed")

	_, err := s.runner.Run(s.ctx, &simulation.RunInput{
		Ability:   ability.Boost{Duration: ability.Millis(100)},
		MaxEnergy: 100,
		Script: simulation.Script{
			Frame:  50 * time.Millisecond,
			Jitter: 10 * time.Millisecond,
		},
	})
	s.Require().Error(err)
	s.Contains(err.Error(), "failed to roll frame jitter")
}

func (s *RunnerTestSuite) TestBlockHeldIsTruncated() {
	out, err := s.runner.Run(s.ctx, &simulation.RunInput{
		Ability:   ability.BasicBlock{},
		MaxEnergy: 100,
		Script: simulation.Script{
			HoldFor:   time.Hour,
			MaxFrames: 5,
		},
	})
	s.Require().NoError(err)
	s.True(out.Truncated)
	s.Len(out.Frames, 5)
	s.Equal(states.EndNone, out.End)
}

func (s *RunnerTestSuite) TestInputValidation() {
	_, err := s.runner.Run(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.runner.Run(s.ctx, &simulation.RunInput{MaxEnergy: 100})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.runner.Run(s.ctx, &simulation.RunInput{
		Ability:   ability.BasicBlock{},
		MaxEnergy: 100,
		Script:    simulation.Script{Frame: 10 * time.Millisecond, Jitter: 10 * time.Millisecond},
	})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.runner.Run(s.ctx, &simulation.RunInput{
		Ability:   ability.BasicBlock{},
		MaxEnergy: 10,
		Energy:    50,
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RunnerTestSuite) TestCanceledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.runner.Run(ctx, &simulation.RunInput{
		Ability:   ability.BasicBlock{},
		MaxEnergy: 100,
		Script:    simulation.Script{HoldFor: time.Hour},
	})
	s.Require().Error(err)
	s.Equal(errors.CodeCanceled, errors.GetCode(err))
}

func (s *RunnerTestSuite) TestEngineErrorsPropagate() {
	ctrl := gomock.NewController(s.T())
	eng := enginemock.NewMockEngine(ctrl)

	runner, err := simulation.NewRunner(&simulation.Config{Engine: eng, Roller: s.roller})
	s.Require().NoError(err)

	state := engine.Compile(testutils.TestBasicMelee())
	gomock.InOrder(
		eng.EXPECT().
			StartAbility(s.ctx, gomock.Any()).
			Return(&engine.StartAbilityOutput{Admitted: true, State: state}, nil),
		eng.EXPECT().
			AdvanceAbility(s.ctx, gomock.Any()).
			Return(nil, errors.Internal("state machine fault")),
	)

	_, err = runner.Run(s.ctx, &simulation.RunInput{
		Ability:   testutils.TestBasicMelee(),
		MaxEnergy: 100,
	})
	s.Require().Error(err)
	s.Equal(errors.CodeInternal, errors.GetCode(err))

	eng.EXPECT().
		StartAbility(s.ctx, gomock.Any()).
		Return(nil, errors.InvalidArgument("ability is required"))

	_, err = runner.Run(s.ctx, &simulation.RunInput{
		Ability:   testutils.TestBasicMelee(),
		MaxEnergy: 100,
	})
	s.True(errors.IsInvalidArgument(err))
}
