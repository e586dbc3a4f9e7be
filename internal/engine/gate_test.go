package engine_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-abilities/internal/energy"
	energymock "github.com/KirkDiggler/rpg-abilities/internal/energy/mock"
	"github.com/KirkDiggler/rpg-abilities/internal/engine"
	"github.com/KirkDiggler/rpg-abilities/internal/entities/ability"
	"github.com/KirkDiggler/rpg-abilities/internal/entities/physics"
)

type GateTestSuite struct {
	suite.Suite

	ctrl     *gomock.Controller
	mockPool *energymock.MockPool
	running  physics.Snapshot
}

func TestGateSuite(t *testing.T) {
	suite.Run(t, new(GateTestSuite))
}

func (s *GateTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockPool = energymock.NewMockPool(s.ctrl)
	s.running = physics.Snapshot{
		OnGround: true,
		Body:     physics.Body{Kind: physics.BodyHumanoid},
		Velocity: physics.Vec3{X: 1, Y: 0.5},
	}
}

func (s *GateTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func costed() map[string]ability.Ability {
	return map[string]ability.Ability{
		"basic melee":      ability.BasicMelee{EnergyCost: 10},
		"basic ranged":     ability.BasicRanged{EnergyCost: 20},
		"charged ranged":   ability.ChargedRanged{EnergyCost: 30},
		"dash melee":       ability.DashMelee{EnergyCost: 40},
		"leap melee":       ability.LeapMelee{EnergyCost: 50},
		"spin melee":       ability.SpinMelee{EnergyCost: 60},
		"ground shockwave": ability.GroundShockwave{EnergyCost: 70},
	}
}

func cost(a ability.Ability) int32 {
	switch a := a.(type) {
	case ability.BasicMelee:
		return int32(a.EnergyCost)
	case ability.BasicRanged:
		return int32(a.EnergyCost)
	case ability.ChargedRanged:
		return int32(a.EnergyCost)
	case ability.DashMelee:
		return int32(a.EnergyCost)
	case ability.LeapMelee:
		return int32(a.EnergyCost)
	case ability.SpinMelee:
		return int32(a.EnergyCost)
	case ability.GroundShockwave:
		return int32(a.EnergyCost)
	}
	return 0
}

func (s *GateTestSuite) TestCostedAbilitiesDebitExactlyTheirCost() {
	for name, a := range costed() {
		for _, start := range []int32{0, 9, 10, 45, 69, 70, 100} {
			s.Run(name, func() {
				ledger, err := energy.NewLedgerAt(start, 100)
				s.Require().NoError(err)

				admitted := engine.RequirementsPaid(a, s.running, ledger)

				want := start >= cost(a)
				s.Equal(want, admitted)
				if admitted {
					s.Equal(start-cost(a), ledger.Current())
				} else {
					s.Equal(start, ledger.Current())
				}
			})
		}
	}
}

func (s *GateTestSuite) TestCostAbovePoolLimitIsRefused() {
	ledger, err := energy.NewLedgerAt(0, 2_000_000_000)
	s.Require().NoError(err)

	s.False(engine.RequirementsPaid(ability.BasicMelee{EnergyCost: 3_000_000_000}, s.running, ledger))
	s.Equal(int32(0), ledger.Current())

	// no pool call expected
	s.False(engine.RequirementsPaid(ability.GroundShockwave{EnergyCost: math.MaxInt32 + 1}, s.running, s.mockPool))
}

func (s *GateTestSuite) TestCostedAbilitiesUseAbilitySource() {
	s.mockPool.EXPECT().
		TryChangeBy(int32(-10), energy.SourceAbility).
		Return(nil)

	s.True(engine.RequirementsPaid(ability.BasicMelee{EnergyCost: 10}, s.running, s.mockPool))
}

func (s *GateTestSuite) TestFreeAbilitiesNeverTouchThePool() {
	for _, a := range []ability.Ability{ability.BasicBlock{}, ability.Boost{}, ability.ComboMelee{}} {
		// the mock fails the test on any call
		s.True(engine.RequirementsPaid(a, physics.Snapshot{}, s.mockPool))
	}
}

func (s *GateTestSuite) TestRollPhysicalConditions() {
	testCases := []struct {
		name     string
		snapshot func(physics.Snapshot) physics.Snapshot
	}{
		{
			name: "in the air",
			snapshot: func(p physics.Snapshot) physics.Snapshot {
				p.OnGround = false
				return p
			},
		},
		{
			name: "not humanoid",
			snapshot: func(p physics.Snapshot) physics.Snapshot {
				p.Body = physics.Body{Kind: physics.BodyQuadrupedSmall}
				return p
			},
		},
		{
			name: "too slow",
			snapshot: func(p physics.Snapshot) physics.Snapshot {
				p.Velocity = physics.Vec3{X: 0.5, Y: 0.5, Z: 10}
				return p
			},
		},
		{
			name: "standing still",
			snapshot: func(p physics.Snapshot) physics.Snapshot {
				p.Velocity = physics.Vec3{}
				return p
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			ledger, err := energy.NewLedger(1000)
			s.Require().NoError(err)

			s.False(engine.RequirementsPaid(ability.Roll{}, tc.snapshot(s.running), ledger))
			s.Equal(int32(1000), ledger.Current())
		})
	}
}

func (s *GateTestSuite) TestRollDebits220() {
	ledger, err := energy.NewLedger(500)
	s.Require().NoError(err)

	s.True(engine.RequirementsPaid(ability.Roll{}, s.running, ledger))
	s.Equal(int32(280), ledger.Current())

	s.True(engine.RequirementsPaid(ability.Roll{}, s.running, ledger))
	s.Equal(int32(60), ledger.Current())

	s.False(engine.RequirementsPaid(ability.Roll{}, s.running, ledger))
	s.Equal(int32(60), ledger.Current())
}

func (s *GateTestSuite) TestRollChecksPhysicsBeforeEnergy() {
	airborne := s.running
	airborne.OnGround = false

	// no pool call expected
	s.False(engine.RequirementsPaid(ability.Roll{}, airborne, s.mockPool))
}
