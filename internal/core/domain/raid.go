package domain

import (
	"fmt"
	"strings"
)

const (
	DifficultySingle    = "싱글"
	DifficultyNormal    = "노말"
	DifficultyHard      = "하드"
	DifficultyNightmare = "나이트메어"
)

// difficultyRule lists the raids sharing one set of allowed difficulties.
// Difficulties keep the order they are reported in.
type difficultyRule struct {
	raids        []string
	difficulties []string
}

var difficultyRules = []difficultyRule{
	{
		raids:        []string{"발탄", "비아키스", "아브렐슈드", "일리아칸", "카멘"},
		difficulties: []string{DifficultySingle, DifficultyNormal, DifficultyHard},
	},
	{
		raids:        []string{"쿠크세이튼"},
		difficulties: []string{DifficultySingle, DifficultyNormal},
	},
	{
		raids:        []string{"(서막)에키드나", "(1막)에기르", "(2막)아브렐슈드", "(3막)모르둠"},
		difficulties: []string{DifficultySingle, DifficultyNormal, DifficultyHard},
	},
	{
		raids:        []string{"(4막)아르모체", "(종막)카제로스"},
		difficulties: []string{DifficultyNormal, DifficultyHard},
	},
	{
		raids:        []string{"세르카"},
		difficulties: []string{DifficultyNormal, DifficultyHard, DifficultyNightmare},
	},
}

var allowedDifficulties = indexDifficultyRules(difficultyRules)

func indexDifficultyRules(rules []difficultyRule) map[string][]string {
	idx := make(map[string][]string)
	for _, r := range rules {
		for _, raid := range r.raids {
			idx[raid] = r.difficulties
		}
	}
	return idx
}

// AllowedDifficulties returns the difficulties accepted for raid. ok is false
// for raids without a rule, which accept any difficulty.
func AllowedDifficulties(raid string) (difficulties []string, ok bool) {
	d, ok := allowedDifficulties[raid]
	if !ok {
		return nil, false
	}
	out := make([]string, len(d))
	copy(out, d)
	return out, true
}

// ValidateDifficulty rejects a difficulty that the raid's rule does not list.
func ValidateDifficulty(raid, difficulty string) error {
	allowed, ok := allowedDifficulties[raid]
	if !ok {
		return nil
	}
	for _, d := range allowed {
		if d == difficulty {
			return nil
		}
	}
	return &RuleViolationError{
		Kind: ErrInvalidDifficulty,
		Message: fmt.Sprintf("레이드 '%s'의 난이도 '%s'는 유효하지 않습니다. 허용되는 난이도: %s",
			raid, difficulty, strings.Join(allowed, ", ")),
	}
}
