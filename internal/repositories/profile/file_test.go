package profile_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dice-companion/internal/entities/dnd5e"
	"github.com/KirkDiggler/dice-companion/internal/errors"
	"github.com/KirkDiggler/dice-companion/internal/pkg/clock"
	"github.com/KirkDiggler/dice-companion/internal/repositories/profile"
	"github.com/KirkDiggler/dice-companion/internal/testutils"
)

type FileRepositoryTestSuite struct {
	suite.Suite
	dataDir string
	clock   *clock.Fixed
	repo    profile.Repository
	ctx     context.Context
}

func TestFileRepositorySuite(t *testing.T) {
	suite.Run(t, new(FileRepositoryTestSuite))
}

func (s *FileRepositoryTestSuite) SetupTest() {
	s.dataDir = s.T().TempDir()
	s.clock = &clock.Fixed{At: time.Date(2024, 5, 4, 19, 30, 0, 0, time.Local)}
	s.ctx = context.Background()

	repo, err := profile.NewFile(&profile.FileConfig{DataDir: s.dataDir, Clock: s.clock})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *FileRepositoryTestSuite) TestNewFile_InvalidConfig() {
	_, err := profile.NewFile(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = profile.NewFile(&profile.FileConfig{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *FileRepositoryTestSuite) TestSaveAndGet() {
	p := testutils.CreateTestProfileWithWeapons()

	out, err := s.repo.Save(s.ctx, profile.SaveInput{Profile: p})
	s.Require().NoError(err)
	s.False(out.BackupCreated)
	s.FileExists(filepath.Join(s.dataDir, "characters", "Thorin Oakenshield.json"))

	got, err := s.repo.Get(s.ctx, profile.GetInput{Name: p.Name})
	s.Require().NoError(err)
	s.Equal(p, got.Profile)
}

func (s *FileRepositoryTestSuite) TestSave_KeepsBackup() {
	p := testutils.CreateTestProfile()
	_, err := s.repo.Save(s.ctx, profile.SaveInput{Profile: p})
	s.Require().NoError(err)

	p.Level = 6
	out, err := s.repo.Save(s.ctx, profile.SaveInput{Profile: p})
	s.Require().NoError(err)
	s.True(out.BackupCreated)

	backup := filepath.Join(s.dataDir, "backups", "20240504_193000_Thorin Oakenshield.json")
	s.FileExists(backup)
	data, err := os.ReadFile(backup)
	s.Require().NoError(err)
	s.Contains(string(data), `"level": 5`)

	got, err := s.repo.Get(s.ctx, profile.GetInput{Name: p.Name})
	s.Require().NoError(err)
	s.Equal(6, got.Profile.Level)
}

func (s *FileRepositoryTestSuite) TestSave_NormalizesScores() {
	p := &dnd5e.Profile{
		Name:      "Grog",
		Level:     4,
		Abilities: map[dnd5e.Ability]int{dnd5e.AbilityStrength: 31, dnd5e.AbilityIntelligence: -2},
	}

	out, err := s.repo.Save(s.ctx, profile.SaveInput{Profile: p})
	s.Require().NoError(err)
	s.Equal(30, out.Profile.Score(dnd5e.AbilityStrength))
	s.Equal(1, out.Profile.Score(dnd5e.AbilityIntelligence))
	s.Equal(10, out.Profile.Abilities[dnd5e.AbilityCharisma])
}

func (s *FileRepositoryTestSuite) TestSave_Invalid() {
	_, err := s.repo.Save(s.ctx, profile.SaveInput{Profile: &dnd5e.Profile{Name: "Nobody", Level: 0}})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Save(s.ctx, profile.SaveInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *FileRepositoryTestSuite) TestGet_NotFound() {
	_, err := s.repo.Get(s.ctx, profile.GetInput{Name: "Ghost"})
	s.True(errors.IsNotFound(err))
}

func (s *FileRepositoryTestSuite) TestGet_Corrupt() {
	path := filepath.Join(s.dataDir, "characters", "Broken.json")
	s.Require().NoError(os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := s.repo.Get(s.ctx, profile.GetInput{Name: "Broken"})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
}

func (s *FileRepositoryTestSuite) TestList_SortedAndSkipsCorrupt() {
	for _, name := range []string{"Vex", "Aria", "Mira"} {
		_, err := s.repo.Save(s.ctx, profile.SaveInput{Profile: dnd5e.NewProfile(name)})
		s.Require().NoError(err)
	}
	s.Require().NoError(os.WriteFile(filepath.Join(s.dataDir, "characters", "junk.json"), []byte("]"), 0o644))
	s.Require().NoError(os.WriteFile(filepath.Join(s.dataDir, "characters", "notes.txt"), []byte("hi"), 0o644))

	out, err := s.repo.List(s.ctx, profile.ListInput{})
	s.Require().NoError(err)
	s.Equal([]string{"Aria", "Mira", "Vex"}, out.Names)
}

func (s *FileRepositoryTestSuite) TestDelete() {
	_, err := s.repo.Save(s.ctx, profile.SaveInput{Profile: dnd5e.NewProfile("Aria")})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, profile.DeleteInput{Name: "Aria"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, profile.GetInput{Name: "Aria"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, profile.DeleteInput{Name: "Aria"})
	s.True(errors.IsNotFound(err))
}

func (s *FileRepositoryTestSuite) TestReadsHandWrittenFile() {
	raw := `{
    "name": "Pike",
    "level": 3,
    "abilities": {"STR": 14, "DEX": 8, "CON": 12, "INT": 10, "WIS": 16, "CHA": 12},
    "saving_throw_proficiencies": ["WIS", "CHA"],
    "skill_proficiencies": ["Medicine", "Religion"],
    "weapons": [{"name": "Mace", "ability": "STR", "proficient": true, "damage_dice": "1d6", "damage_bonus": 2}]
}`
	s.Require().NoError(os.WriteFile(filepath.Join(s.dataDir, "characters", "Pike.json"), []byte(raw), 0o644))

	got, err := s.repo.Get(s.ctx, profile.GetInput{Name: "Pike"})
	s.Require().NoError(err)
	s.Equal(16, got.Profile.Score(dnd5e.AbilityWisdom))
	s.True(got.Profile.HasSkillProficiency(dnd5e.SkillMedicine))
	s.Equal("1d6", got.Profile.Weapons[0].DamageDice)
}
