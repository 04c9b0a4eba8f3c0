package engine

import (
	"strconv"
	"strings"
)

// ParseStatCategory parses user input to a StatCategory.
// Supported: skill, gold, focus, charisma (char), vitality (vit, hp),
// morale (moral). Unrecognized input is rejected, not defaulted.
func ParseStatCategory(input string) (StatCategory, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "skill", "mastery":
		return StatSkill, nil
	case "gold", "treasury", "money":
		return StatGold, nil
	case "focus", "discipline":
		return StatFocus, nil
	case "char", "charisma":
		return StatCharisma, nil
	case "vit", "vitality", "hp", "endurance":
		return StatVitality, nil
	case "moral", "morale", "recreation":
		return StatMorale, nil
	default:
		return "", ValidationError{Field: "stat", Reason: "unrecognized category " + strconv.Quote(input)}
	}
}

func ParseQuestType(input string) (QuestType, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	t := QuestType(s)
	if !t.IsValid() {
		return "", ValidationError{Field: "type", Reason: "must be daily, weekly or monthly"}
	}
	return t, nil
}

// storedStatCategory reads a category persisted as a string. Unlike
// ParseStatCategory it never fails; corrupt values simply match no stat.
func storedStatCategory(s string) StatCategory {
	return StatCategory(strings.TrimSpace(strings.ToUpper(s)))
}

// SplitLines breaks a bulk text block into trimmed, non-empty lines.
func SplitLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// parseRewardLine splits a "Name | Cost" line. The cost defaults to
// DefaultRewardCost when the delimiter or a parsable number is missing.
func parseRewardLine(line string) (name string, cost int, defaulted bool) {
	name = line
	cost = DefaultRewardCost
	defaulted = true

	before, after, found := strings.Cut(line, "|")
	if !found {
		return strings.TrimSpace(name), cost, defaulted
	}
	name = strings.TrimSpace(before)
	if n, err := strconv.Atoi(strings.TrimSpace(after)); err == nil && n > 0 {
		cost = n
		defaulted = false
	}
	return name, cost, defaulted
}
