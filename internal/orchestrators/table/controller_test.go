package table_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	dicemock "github.com/KirkDiggler/dice-companion/internal/dice/mock"
	"github.com/KirkDiggler/dice-companion/internal/entities/dnd5e"
	"github.com/KirkDiggler/dice-companion/internal/errors"
	"github.com/KirkDiggler/dice-companion/internal/orchestrators/roll"
	rollmock "github.com/KirkDiggler/dice-companion/internal/orchestrators/roll/mock"
	"github.com/KirkDiggler/dice-companion/internal/orchestrators/table"
	"github.com/KirkDiggler/dice-companion/internal/pkg/clock"
	"github.com/KirkDiggler/dice-companion/internal/pkg/idgen"
	"github.com/KirkDiggler/dice-companion/internal/repositories/profile"
	profilemock "github.com/KirkDiggler/dice-companion/internal/repositories/profile/mock"
	selectionmock "github.com/KirkDiggler/dice-companion/internal/selection/mock"
	"github.com/KirkDiggler/dice-companion/internal/testutils"
)

type ControllerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockRepo      *profilemock.MockRepository
	mockSelection *selectionmock.MockProvider
	ctx           context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerTestSuite))
}

func (s *ControllerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = profilemock.NewMockRepository(s.ctrl)
	s.mockSelection = selectionmock.NewMockProvider(s.ctrl)
	s.ctx = context.Background()
}

func (s *ControllerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// newController wires a real roll engine over scripted dice
func (s *ControllerTestSuite) newController(rolls ...int) *table.Controller {
	engine, err := roll.NewOrchestrator(&roll.Config{
		Roller:      dicemock.NewScriptedRoller(rolls...),
		IDGenerator: idgen.NewSequential("roll"),
		Clock:       &clock.Fixed{At: time.Date(2024, 5, 4, 19, 30, 0, 0, time.UTC)},
	})
	s.Require().NoError(err)

	c, err := table.New(&table.Config{
		RollService: engine,
		ProfileRepo: s.mockRepo,
		Selection:   s.mockSelection,
	})
	s.Require().NoError(err)
	return c
}

func (s *ControllerTestSuite) activate(c *table.Controller, p *dnd5e.Profile) {
	s.mockRepo.EXPECT().
		Get(s.ctx, profile.GetInput{Name: p.Name}).
		Return(&profile.GetOutput{Profile: p}, nil)

	got, err := c.ActivateProfile(s.ctx, p.Name)
	s.Require().NoError(err)
	s.Require().Equal(p, got)
}

func (s *ControllerTestSuite) TestNew_MissingDependencies() {
	_, err := table.New(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = table.New(&table.Config{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *ControllerTestSuite) TestBasicRollCycle() {
	c := s.newController(14)
	s.Equal(table.StateIdle, c.State())

	result, err := c.RollBasic(s.ctx, 20)
	s.Require().NoError(err)
	s.Equal(table.StateRolling, c.State())
	s.Equal(14, result.Total)

	revealed, err := c.Reveal()
	s.Require().NoError(err)
	s.Same(result, revealed)
	s.Equal(table.StateResultShown, c.State())

	_, err = c.Reveal()
	s.True(errors.IsFailedPrecondition(err))

	c.Dismiss()
	s.Equal(table.StateIdle, c.State())
	s.Nil(c.Active())
}

func (s *ControllerTestSuite) TestOnMotionRollsD20() {
	c := s.newController(20)

	result, err := c.OnMotion(s.ctx)
	s.Require().NoError(err)
	s.Equal(dnd5e.RollKindBasic, result.Request.Kind)
	s.Equal(20, result.Request.DieSize)
	s.False(result.IsCriticalHit)
}

func (s *ControllerTestSuite) TestNewRollDiscardsActive() {
	c := s.newController(3, 17)

	first, err := c.RollBasic(s.ctx, 20)
	s.Require().NoError(err)
	second, err := c.RollBasic(s.ctx, 20)
	s.Require().NoError(err)

	s.NotSame(first, second)
	s.Same(second, c.Active())
	s.Equal(17, c.Active().Total)
}

func (s *ControllerTestSuite) TestProfileActionsNeedActiveCharacter() {
	c := s.newController()

	_, err := c.SavingThrow(s.ctx, "STR")
	s.True(errors.IsFailedPrecondition(err))
	_, err = c.Check(s.ctx, "Stealth")
	s.True(errors.IsFailedPrecondition(err))
	_, err = c.Attack(s.ctx, "")
	s.True(errors.IsFailedPrecondition(err))
	s.Equal(table.StateIdle, c.State())
}

func (s *ControllerTestSuite) TestActivateProfile_Missing() {
	c := s.newController()
	s.mockRepo.EXPECT().
		Get(s.ctx, profile.GetInput{Name: "Ghost"}).
		Return(nil, errors.NotFound("profile Ghost not found"))

	_, err := c.ActivateProfile(s.ctx, "Ghost")
	s.True(errors.IsNotFound(err))
	s.Nil(c.ActiveProfile())
}

func (s *ControllerTestSuite) TestActivateProfile_StoreFailure() {
	c := s.newController()
	s.activate(c, testutils.CreateTestProfile())
	s.mockRepo.EXPECT().
		Get(s.ctx, profile.GetInput{Name: "Broken"}).
		Return(nil, errors.Internal("failed to unmarshal profile"))

	_, err := c.ActivateProfile(s.ctx, "Broken")
	s.True(errors.IsProfileLoad(err))
	s.Nil(c.ActiveProfile())
}

func (s *ControllerTestSuite) TestSavingThrow_AsksForAbility() {
	c := s.newController(11)
	s.activate(c, testutils.CreateTestProfile())
	s.mockSelection.EXPECT().
		Choose(s.ctx, table.TitleSelectAbility, []string{"STR", "DEX", "CON", "INT", "WIS", "CHA"}).
		Return("STR", true, nil)

	result, err := c.SavingThrow(s.ctx, "")
	s.Require().NoError(err)
	s.Equal("STR Saving Throw", result.Request.Description)
	s.Equal(17, result.Total)
}

func (s *ControllerTestSuite) TestCheck_CancelledSelectionReturnsToIdle() {
	c := s.newController()
	s.activate(c, testutils.CreateTestProfile())
	s.mockSelection.EXPECT().
		Choose(s.ctx, table.TitleSelectCheck, gomock.Len(24)).
		Return("", false, nil)

	result, err := c.Check(s.ctx, "")
	s.NoError(err)
	s.Nil(result)
	s.Equal(table.StateIdle, c.State())
}

func (s *ControllerTestSuite) TestCheck_UnknownSkill() {
	c := s.newController()
	s.activate(c, testutils.CreateTestProfile())

	_, err := c.Check(s.ctx, "Basket Weaving")
	s.True(errors.IsUnknownSkill(err))
	s.Equal(table.StateIdle, c.State())
}

func (s *ControllerTestSuite) TestRollCustom_AsksForPreset() {
	c := s.newController(2, 5)
	s.mockSelection.EXPECT().
		Choose(s.ctx, table.TitleSelectDice, gomock.Len(17)).
		Return("2d6", true, nil)

	result, err := c.RollCustom(s.ctx, "")
	s.Require().NoError(err)
	s.Equal("2d6 Roll", result.Request.Description)
	s.Equal(7, result.Total)
}

func (s *ControllerTestSuite) TestRollCustom_InvalidNotation() {
	c := s.newController()

	_, err := c.RollCustom(s.ctx, "2d0")
	s.True(errors.IsInvalidDiceNotation(err))
	s.Equal(table.StateIdle, c.State())
}

func (s *ControllerTestSuite) TestAttack_NoWeaponsRollsDefaultDirectly() {
	c := s.newController(12)
	p := testutils.CreateTestProfile()
	s.activate(c, p)

	result, err := c.Attack(s.ctx, "")
	s.Require().NoError(err)
	s.Equal("Attack with Longsword", result.Request.Description)
	s.Len(p.Weapons, 2)
}

func (s *ControllerTestSuite) TestAttack_NoWeaponsNamedDefault() {
	c := s.newController(12)
	p := testutils.CreateTestProfile()
	s.activate(c, p)

	result, err := c.Attack(s.ctx, "dagger")
	s.Require().NoError(err)
	s.Equal("Attack with Dagger", result.Request.Description)
	// DEX 14 (+2), proficient at level 5 (+3)
	s.Equal(17, result.Total)
}

func (s *ControllerTestSuite) TestAttack_HitRollsDamage() {
	c := s.newController(15, 6)
	s.activate(c, testutils.CreateTestProfileWithWeapons())
	s.mockSelection.EXPECT().
		Choose(s.ctx, table.TitleSelectWeapon, []string{"Warhammer", "Light Crossbow"}).
		Return("Warhammer", true, nil)

	attack, err := c.Attack(s.ctx, "")
	s.Require().NoError(err)
	s.Equal(21, attack.Total)

	_, err = c.Reveal()
	s.Require().NoError(err)
	s.Equal(table.StateAwaitingHitDecision, c.State())

	s.mockSelection.EXPECT().
		Choose(s.ctx, table.TitleConfirmHit, []string{table.OptionHit, table.OptionMiss}).
		Return(table.OptionHit, true, nil)

	damage, err := c.ConfirmHit(s.ctx)
	s.Require().NoError(err)
	s.Equal(table.StateDamageRolling, c.State())
	s.Equal("Damage: 1d8", damage.Request.Description)
	s.Equal(9, damage.Total)

	revealed, err := c.Reveal()
	s.Require().NoError(err)
	s.Same(damage, revealed)
	s.Equal(table.StateResultShown, c.State())
}

func (s *ControllerTestSuite) TestAttack_CriticalHitDoublesDice() {
	c := s.newController(20, 4, 5)
	s.activate(c, testutils.CreateTestProfileWithWeapons())

	_, err := c.Attack(s.ctx, "light crossbow")
	s.Require().NoError(err)
	_, err = c.Reveal()
	s.Require().NoError(err)

	damage, err := c.DeclareHit(s.ctx, true)
	s.Require().NoError(err)
	s.Equal("Critical Damage: 2d8", damage.Request.Description)
	s.Equal(11, damage.Total)
}

func (s *ControllerTestSuite) TestAttack_MissReturnsToIdle() {
	c := s.newController(3)
	s.activate(c, testutils.CreateTestProfileWithWeapons())

	_, err := c.Attack(s.ctx, "Warhammer")
	s.Require().NoError(err)
	_, err = c.Reveal()
	s.Require().NoError(err)

	damage, err := c.DeclareHit(s.ctx, false)
	s.NoError(err)
	s.Nil(damage)
	s.Equal(table.StateIdle, c.State())
}

func (s *ControllerTestSuite) TestAttack_UnknownWeapon() {
	c := s.newController()
	s.activate(c, testutils.CreateTestProfileWithWeapons())

	_, err := c.Attack(s.ctx, "Vorpal Sword")
	s.True(errors.IsInvalidArgument(err))
}

func (s *ControllerTestSuite) TestDeclareHit_OnlyForAttacks() {
	c := s.newController(10)

	_, err := c.DeclareHit(s.ctx, true)
	s.True(errors.IsFailedPrecondition(err))

	_, err = c.RollBasic(s.ctx, 20)
	s.Require().NoError(err)
	_, err = c.Reveal()
	s.Require().NoError(err)

	_, err = c.DeclareHit(s.ctx, true)
	s.True(errors.IsFailedPrecondition(err))

	_, err = c.ConfirmHit(s.ctx)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *ControllerTestSuite) TestEngineFailureReturnsToIdle() {
	mockRolls := rollmock.NewMockService(s.ctrl)
	c, err := table.New(&table.Config{
		RollService: mockRolls,
		ProfileRepo: s.mockRepo,
		Selection:   s.mockSelection,
	})
	s.Require().NoError(err)

	mockRolls.EXPECT().
		RollBasic(s.ctx, &roll.RollBasicInput{DieSize: 20}).
		Return(nil, errors.Unavailable("no dice"))

	_, err = c.RollBasic(s.ctx, 20)
	s.True(errors.IsUnavailable(err))
	s.Equal(table.StateIdle, c.State())
}

func (s *ControllerTestSuite) TestAttack_MotionDuringWeaponPickerWins() {
	c := s.newController(9)
	s.activate(c, testutils.CreateTestProfileWithWeapons())

	var motion *dnd5e.RollResult
	s.mockSelection.EXPECT().
		Choose(s.ctx, table.TitleSelectWeapon, []string{"Warhammer", "Light Crossbow"}).
		DoAndReturn(func(ctx context.Context, _ string, _ []string) (string, bool, error) {
			var err error
			motion, err = c.OnMotion(ctx)
			s.Require().NoError(err)
			return "Warhammer", true, nil
		})

	attack, err := c.Attack(s.ctx, "")
	s.True(errors.IsFailedPrecondition(err))
	s.Nil(attack)

	s.Require().NotNil(motion)
	s.Same(motion, c.Active())
	s.Equal(table.StateRolling, c.State())
	s.Equal(9, c.Active().Total)
}

func (s *ControllerTestSuite) TestAttack_CancelAfterMotionKeepsMotionRoll() {
	c := s.newController(9)
	s.activate(c, testutils.CreateTestProfileWithWeapons())

	s.mockSelection.EXPECT().
		Choose(s.ctx, table.TitleSelectWeapon, gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ []string) (string, bool, error) {
			_, err := c.OnMotion(ctx)
			s.Require().NoError(err)
			return "", false, nil
		})

	attack, err := c.Attack(s.ctx, "")
	s.NoError(err)
	s.Nil(attack)

	s.Require().NotNil(c.Active())
	s.Equal(table.StateRolling, c.State())
	s.Equal(dnd5e.RollKindBasic, c.Active().Request.Kind)
}

func (s *ControllerTestSuite) TestConfirmHit_MissAfterMotionKeepsMotionRoll() {
	c := s.newController(15, 7)
	s.activate(c, testutils.CreateTestProfileWithWeapons())

	_, err := c.Attack(s.ctx, "Warhammer")
	s.Require().NoError(err)
	_, err = c.Reveal()
	s.Require().NoError(err)

	s.mockSelection.EXPECT().
		Choose(s.ctx, table.TitleConfirmHit, []string{table.OptionHit, table.OptionMiss}).
		DoAndReturn(func(ctx context.Context, _ string, _ []string) (string, bool, error) {
			_, err := c.OnMotion(ctx)
			s.Require().NoError(err)
			return table.OptionMiss, true, nil
		})

	damage, err := c.ConfirmHit(s.ctx)
	s.True(errors.IsFailedPrecondition(err))
	s.Nil(damage)

	s.Equal(table.StateRolling, c.State())
	s.Equal(7, c.Active().Total)
}

func (s *ControllerTestSuite) TestConfirmHit_HitAfterDismissRollsNothing() {
	c := s.newController(15)
	s.activate(c, testutils.CreateTestProfileWithWeapons())

	_, err := c.Attack(s.ctx, "Warhammer")
	s.Require().NoError(err)
	_, err = c.Reveal()
	s.Require().NoError(err)

	s.mockSelection.EXPECT().
		Choose(s.ctx, table.TitleConfirmHit, gomock.Any()).
		DoAndReturn(func(context.Context, string, []string) (string, bool, error) {
			c.Dismiss()
			return table.OptionHit, true, nil
		})

	damage, err := c.ConfirmHit(s.ctx)
	s.True(errors.IsFailedPrecondition(err))
	s.Nil(damage)
	s.Equal(table.StateIdle, c.State())
	s.Nil(c.Active())
}
