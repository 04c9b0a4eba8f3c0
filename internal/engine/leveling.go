package engine

import "lifequest/internal/storage"

// XPPerLevel scales the per-level XP requirement: MaxXP = Level * XPPerLevel.
const XPPerLevel = 100

// MaxXPForLevel returns the XP threshold a stat at the given level must
// accumulate to reach the next one.
func MaxXPForLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return level * XPPerLevel
}

// LevelUp is emitted once per level gained while applying quest XP.
type LevelUp struct {
	StatID   string
	StatName string
	Level    int
}

// ApplyStatXP adds xp to the stat and cascades level-ups until the
// CurrentXP < MaxXP invariant holds again. The threshold grows with every
// level, so a single large reward can cross several levels; the loop form is
// required because MaxXP changes each iteration.
func ApplyStatXP(stat *storage.Stat, xp int) []LevelUp {
	if xp <= 0 {
		return nil
	}
	stat.CurrentXP += xp

	var ups []LevelUp
	for stat.CurrentXP >= stat.MaxXP {
		stat.CurrentXP -= stat.MaxXP
		stat.Level++
		stat.MaxXP = MaxXPForLevel(stat.Level)
		ups = append(ups, LevelUp{StatID: stat.ID, StatName: stat.Name, Level: stat.Level})
	}
	return ups
}
