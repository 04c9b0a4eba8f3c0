package engine

import (
	"time"

	"lifequest/internal/storage"
)

// StartingCoins gives a new profile something to spend in the store.
const StartingCoins = 600

// NewState builds the seeded first-run state: one stat per category at level
// 1, two starter projects, two starter quests and a small reward store.
func NewState(now time.Time) *storage.State {
	st := &storage.State{
		Profile: storage.Profile{
			Name:       "Adventurer",
			TotalCoins: StartingCoins,
		},
		Stats: []storage.Stat{
			seedStat("stat_skill", "Skill Mastery", StatSkill),
			seedStat("stat_gold", "Gold & Treasury", StatGold),
			seedStat("stat_focus", "Focus & Discipline", StatFocus),
			seedStat("stat_charisma", "Charisma & Community", StatCharisma),
			seedStat("stat_vitality", "Vitality & Endurance", StatVitality),
			seedStat("stat_morale", "Morale & Recreation", StatMorale),
		},
		Projects: []storage.Project{
			{
				ID:          "proj_1",
				Name:        "Home Studio Setup",
				Description: "Assemble a proper workspace, piece by piece.",
				Items: []storage.ProjectItem{
					{ID: "item_1_1", Name: "Desk and chair"},
					{ID: "item_1_2", Name: "Microphone"},
					{ID: "item_1_3", Name: "Lighting"},
					{ID: "item_1_4", Name: "Acoustic panels"},
					{ID: "item_1_5", Name: "Cable management"},
				},
			},
			{
				ID:          "proj_2",
				Name:        "Marathon Training",
				Description: "From couch to the starting line.",
				Items: []storage.ProjectItem{
					{ID: "item_2_1", Name: "Build base mileage"},
					{ID: "item_2_2", Name: "Run a 10k race"},
					{ID: "item_2_3", Name: "Complete the long-run plan"},
				},
			},
		},
	}

	starters := []storage.Quest{
		{
			Name:       "Morning practice session",
			Objective:  "Thirty focused minutes before anything else.",
			Type:       string(QuestDaily),
			Tier:       int(Tier1),
			XPReward:   15,
			CoinReward: 5,
			Stat:       string(StatSkill),
		},
		{
			Name:       "Weekly savings deposit",
			Objective:  "Move 20 into savings, untouched.",
			Type:       string(QuestWeekly),
			Tier:       int(Tier1),
			XPReward:   50,
			CoinReward: 20,
			Stat:       string(StatGold),
		},
	}
	for _, q := range starters {
		st.LastID++
		q.ID = st.LastID
		q.CreatedAt = now.UTC()
		st.Quests = append(st.Quests, q)
	}

	for _, r := range []storage.Reward{
		{Name: "Favorite takeout night", Cost: 80},
		{Name: "Guilt-free movie night", Cost: 40},
		{Name: "New game or book", Cost: 150},
		{Name: "Full day off", Cost: 300},
	} {
		st.LastID++
		r.ID = st.LastID
		st.Rewards = append(st.Rewards, r)
	}

	return st
}

func seedStat(id, name string, c StatCategory) storage.Stat {
	return storage.Stat{
		ID:       id,
		Name:     name,
		Category: string(c),
		Level:    1,
		MaxXP:    MaxXPForLevel(1),
	}
}
