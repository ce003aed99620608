package dnd5e

import "strings"

// Ability is one of the six fixed ability codes as stored in profiles
type Ability string

// Ability codes
const (
	AbilityStrength     Ability = "STR"
	AbilityDexterity    Ability = "DEX"
	AbilityConstitution Ability = "CON"
	AbilityIntelligence Ability = "INT"
	AbilityWisdom       Ability = "WIS"
	AbilityCharisma     Ability = "CHA"
)

// Ability score bounds
const (
	MinAbilityScore     = 1
	MaxAbilityScore     = 30
	DefaultAbilityScore = 10
)

// Abilities lists the ability codes in sheet order
var Abilities = []Ability{
	AbilityStrength,
	AbilityDexterity,
	AbilityConstitution,
	AbilityIntelligence,
	AbilityWisdom,
	AbilityCharisma,
}

// String returns the ability code
func (a Ability) String() string {
	return string(a)
}

// ParseAbility resolves a code such as "str" or "DEX"
func ParseAbility(s string) (Ability, bool) {
	code := Ability(strings.ToUpper(strings.TrimSpace(s)))
	for _, a := range Abilities {
		if a == code {
			return a, true
		}
	}
	return "", false
}

// Skill is one of the 18 fixed 5e skills, named as they appear on the sheet
type Skill string

// Skill names
const (
	SkillAcrobatics     Skill = "Acrobatics"
	SkillAnimalHandling Skill = "Animal Handling"
	SkillArcana         Skill = "Arcana"
	SkillAthletics      Skill = "Athletics"
	SkillDeception      Skill = "Deception"
	SkillHistory        Skill = "History"
	SkillInsight        Skill = "Insight"
	SkillIntimidation   Skill = "Intimidation"
	SkillInvestigation  Skill = "Investigation"
	SkillMedicine       Skill = "Medicine"
	SkillNature         Skill = "Nature"
	SkillPerception     Skill = "Perception"
	SkillPerformance    Skill = "Performance"
	SkillPersuasion     Skill = "Persuasion"
	SkillReligion       Skill = "Religion"
	SkillSleightOfHand  Skill = "Sleight of Hand"
	SkillStealth        Skill = "Stealth"
	SkillSurvival       Skill = "Survival"
)

// Skills lists every skill in sheet order
var Skills = []Skill{
	SkillAcrobatics, SkillAnimalHandling, SkillArcana, SkillAthletics,
	SkillDeception, SkillHistory, SkillInsight, SkillIntimidation,
	SkillInvestigation, SkillMedicine, SkillNature, SkillPerception,
	SkillPerformance, SkillPersuasion, SkillReligion, SkillSleightOfHand,
	SkillStealth, SkillSurvival,
}

// String returns the skill name
func (s Skill) String() string {
	return string(s)
}

// ParseSkill resolves a skill name case-insensitively to its canonical form
func ParseSkill(name string) (Skill, bool) {
	name = strings.TrimSpace(name)
	for _, s := range Skills {
		if strings.EqualFold(string(s), name) {
			return s, true
		}
	}
	return "", false
}
