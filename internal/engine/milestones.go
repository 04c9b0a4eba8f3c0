package engine

import (
	"fmt"

	"lifequest/internal/storage"
)

// Milestone is a badge derived from the current state. Earned status is
// computed on demand and never persisted.
type Milestone struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Earned      bool
}

// Milestones returns every badge with its earned status.
func Milestones(st *storage.State) []Milestone {
	completed := 0
	for _, q := range st.Quests {
		if q.Completed {
			completed++
		}
	}
	maxStatLevel := 0
	for _, s := range st.Stats {
		if s.Level > maxStatLevel {
			maxStatLevel = s.Level
		}
	}
	projectsDone := 0
	for _, p := range st.Projects {
		if len(p.Items) > 0 && Progress(p) == 100 {
			projectsDone++
		}
	}

	out := []Milestone{
		questMilestone("first_quest", "First Quest", "🌱", 1, completed),
		questMilestone("adventurer", "Adventurer", "🗺️", 10, completed),
		questMilestone("veteran", "Veteran", "🏅", 50, completed),
		questMilestone("legend", "Legend", "🏆", 100, completed),

		{ID: "leveled", Name: "Leveled Up", Description: "Raise any stat to level 2", Icon: "⬆️", Earned: maxStatLevel >= 2},
		{ID: "specialist", Name: "Specialist", Description: "Raise any stat to level 5", Icon: "⭐", Earned: maxStatLevel >= 5},
		{ID: "master", Name: "Master", Description: "Raise any stat to level 10", Icon: "💫", Earned: maxStatLevel >= 10},

		{ID: "saver", Name: "Saver", Description: "Hold 1000 coins at once", Icon: "💰", Earned: st.Profile.TotalCoins >= 1000},
		{ID: "grinder", Name: "Grinder", Description: "Earn 2500 total XP", Icon: "⚡", Earned: st.Profile.TotalXP >= 2500},

		{ID: "finisher", Name: "Finisher", Description: "Complete every item of a project", Icon: "📦", Earned: projectsDone >= 1},
	}
	return out
}

func questMilestone(id, name, icon string, threshold, completed int) Milestone {
	noun := "quests"
	if threshold == 1 {
		noun = "quest"
	}
	return Milestone{
		ID:          id,
		Name:        name,
		Description: fmt.Sprintf("Complete %d %s", threshold, noun),
		Icon:        icon,
		Earned:      completed >= threshold,
	}
}
