package v1alpha1_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-abilities/internal/engine"
	"github.com/KirkDiggler/rpg-abilities/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-abilities/internal/entities/physics"
	"github.com/KirkDiggler/rpg-abilities/internal/errors"
	"github.com/KirkDiggler/rpg-abilities/internal/handlers/abilities/v1alpha1"
	"github.com/KirkDiggler/rpg-abilities/internal/orchestrators/combat"
	combatmock "github.com/KirkDiggler/rpg-abilities/internal/orchestrators/combat/mock"
	"github.com/KirkDiggler/rpg-abilities/internal/states"
	"github.com/KirkDiggler/rpg-abilities/internal/testutils"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockCombat *combatmock.MockService
	handler    *v1alpha1.Handler
	ctx        context.Context
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCombat = combatmock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{CombatService: s.mockCombat})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) payload(fields map[string]interface{}) *structpb.Struct {
	out, err := structpb.NewStruct(fields)
	s.Require().NoError(err)
	return out
}

func (s *HandlerTestSuite) testCombatant() *combat.Combatant {
	l, err := equipment.NewBuilder().ActiveItem(testutils.CreateTestSword()).Build()
	s.Require().NoError(err)
	return &combat.Combatant{
		EntityID:  testutils.TestEntityID,
		Body:      physics.Body{Kind: physics.BodyHumanoid},
		Loadout:   l,
		Energy:    90,
		MaxEnergy: 100,
		Active: &combat.ActiveAbility{
			ExecutionID: "exec_1",
			Type:        engine.AbilityType{Kind: "basic_melee"},
			Section:     states.StageBuildup,
		},
	}
}

func (s *HandlerTestSuite) TestNewHandlerRequiresService() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.Require().Error(err)
	s.Contains(err.Error(), "combat service is required")

	_, err = v1alpha1.NewHandler(nil)
	s.Require().Error(err)
}

func (s *HandlerTestSuite) TestRegisterCombatant() {
	s.mockCombat.EXPECT().
		RegisterCombatant(s.ctx, &combat.RegisterCombatantInput{
			EntityID:     testutils.TestEntityID,
			Body:         physics.Body{Kind: physics.BodyHumanoid},
			MaxEnergy:    100,
			ActiveItemID: testutils.TestSwordID,
		}).
		Return(&combat.RegisterCombatantOutput{Combatant: s.testCombatant()}, nil)

	resp, err := s.handler.RegisterCombatant(s.ctx, s.payload(map[string]interface{}{
		"entity_id":      testutils.TestEntityID,
		"body":           map[string]interface{}{"kind": "humanoid"},
		"max_energy":     100,
		"active_item_id": testutils.TestSwordID,
	}))
	s.Require().NoError(err)

	c := resp.AsMap()["combatant"].(map[string]interface{})
	s.Equal(testutils.TestEntityID, c["entity_id"])
	s.Equal(float64(90), c["energy"])
	s.Equal(false, resp.AsMap()["restored"])

	active := c["active"].(map[string]interface{})
	s.Equal("exec_1", active["execution_id"])
	s.Equal("buildup", active["section"])

	loadout := c["loadout"].(map[string]interface{})
	activeItem := loadout["active_item"].(map[string]interface{})
	abilities := activeItem["abilities"].([]interface{})
	s.Equal("basic_melee", abilities[0].(map[string]interface{})["kind"])
}

func (s *HandlerTestSuite) TestRegisterCombatantMapsErrors() {
	s.mockCombat.EXPECT().
		RegisterCombatant(gomock.Any(), gomock.Any()).
		Return(nil, errors.AlreadyExistsf("combatant %s is already registered", testutils.TestEntityID))

	_, err := s.handler.RegisterCombatant(s.ctx, s.payload(map[string]interface{}{
		"entity_id": testutils.TestEntityID,
		"body":      map[string]interface{}{"kind": "humanoid"},
	}))
	s.Require().Error(err)
	s.Equal(codes.AlreadyExists, status.Code(err))
}

func (s *HandlerTestSuite) TestMalformedPayload() {
	_, err := s.handler.RegisterCombatant(s.ctx, s.payload(map[string]interface{}{
		"entity_id": 42,
	}))
	s.Require().Error(err)
	s.Equal(codes.InvalidArgument, status.Code(err))

	_, err = s.handler.GetCombatant(s.ctx, nil)
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestEquip() {
	s.mockCombat.EXPECT().
		Equip(s.ctx, &combat.EquipInput{
			EntityID: testutils.TestEntityID,
			Slot:     equipment.SlotChest,
			ItemID:   "chest",
		}).
		Return(&combat.EquipOutput{Combatant: s.testCombatant()}, nil)

	resp, err := s.handler.Equip(s.ctx, s.payload(map[string]interface{}{
		"entity_id": testutils.TestEntityID,
		"slot":      "chest",
		"item_id":   "chest",
	}))
	s.Require().NoError(err)
	s.NotContains(resp.AsMap(), "previous")

	_, err = s.handler.Equip(s.ctx, s.payload(map[string]interface{}{
		"entity_id": testutils.TestEntityID,
		"slot":      "pocket",
	}))
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestActivateAbilityRejected() {
	s.mockCombat.EXPECT().
		ActivateAbility(s.ctx, &combat.ActivateAbilityInput{
			EntityID: testutils.TestEntityID,
			Slot:     equipment.AbilitySlotDodge,
			Physics: physics.Snapshot{
				OnGround: true,
				Body:     physics.Body{Kind: physics.BodyHumanoid},
			},
		}).
		Return(&combat.ActivateAbilityOutput{Reason: engine.RejectRequirements, Energy: 100}, nil)

	resp, err := s.handler.ActivateAbility(s.ctx, s.payload(map[string]interface{}{
		"entity_id": testutils.TestEntityID,
		"slot":      "dodge",
		"physics": map[string]interface{}{
			"on_ground": true,
			"body":      map[string]interface{}{"kind": "humanoid"},
		},
	}))
	s.Require().NoError(err)

	out := resp.AsMap()
	s.Equal(false, out["started"])
	s.Equal("requirements_not_met", out["reason"])
	s.NotContains(out, "type")
}

func (s *HandlerTestSuite) TestTick() {
	s.mockCombat.EXPECT().
		Tick(s.ctx, &combat.TickInput{
			EntityID: testutils.TestEntityID,
			Dt:       16 * time.Millisecond,
			Held:     true,
		}).
		Return(&combat.TickOutput{
			Running:     true,
			ExecutionID: "exec_1",
			Type:        engine.AbilityType{Kind: "combo_melee", Section: states.StageRecover, Stage: 2},
			Section:     states.StageRecover,
			Effects: states.Effects{
				Attacks: []states.Attack{{HealthChange: -90, Range: 4}},
			},
			Energy: 115,
		}, nil)

	resp, err := s.handler.Tick(s.ctx, s.payload(map[string]interface{}{
		"entity_id": testutils.TestEntityID,
		"dt_ms":     16,
		"held":      true,
	}))
	s.Require().NoError(err)

	out := resp.AsMap()
	s.Equal(true, out["running"])
	s.Equal("combo_melee/recover/2", out["type"])
	s.Equal("recover", out["section"])
	attacks := out["effects"].(map[string]interface{})["attacks"].([]interface{})
	s.Equal(float64(-90), attacks[0].(map[string]interface{})["health_change"])
}

func (s *HandlerTestSuite) TestRemoveCombatantNotFound() {
	s.mockCombat.EXPECT().
		RemoveCombatant(s.ctx, &combat.RemoveCombatantInput{EntityID: "nobody"}).
		Return(nil, errors.NotFoundf("combatant %s not found", "nobody"))

	_, err := s.handler.RemoveCombatant(s.ctx, s.payload(map[string]interface{}{"entity_id": "nobody"}))
	s.Equal(codes.NotFound, status.Code(err))
}

func (s *HandlerTestSuite) TestServiceOverGRPC() {
	listener := bufconn.Listen(1 << 20)
	server := grpc.NewServer()
	v1alpha1.RegisterAbilityServiceServer(server, s.handler)
	go func() {
		_ = server.Serve(listener)
	}()
	defer server.Stop()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	defer func() { _ = conn.Close() }()

	s.mockCombat.EXPECT().
		GetCombatant(gomock.Any(), &combat.GetCombatantInput{EntityID: testutils.TestEntityID}).
		Return(&combat.GetCombatantOutput{Combatant: s.testCombatant()}, nil)
	s.mockCombat.EXPECT().
		GetCombatant(gomock.Any(), &combat.GetCombatantInput{EntityID: "nobody"}).
		Return(nil, errors.NotFoundf("combatant %s not found", "nobody"))

	client := v1alpha1.NewAbilityServiceClient(conn)

	resp, err := client.Call(s.ctx, v1alpha1.MethodGetCombatant, s.payload(map[string]interface{}{
		"entity_id": testutils.TestEntityID,
	}))
	s.Require().NoError(err)
	c := resp.AsMap()["combatant"].(map[string]interface{})
	s.Equal(float64(100), c["max_energy"])

	_, err = client.Call(s.ctx, v1alpha1.MethodGetCombatant, s.payload(map[string]interface{}{
		"entity_id": "nobody",
	}))
	s.Require().Error(err)
	s.True(errors.IsNotFound(errors.FromGRPCError(err)))
}
