package storage

import "time"

// Profile is the global player record.
type Profile struct {
	Name       string `json:"name"`
	TotalCoins int    `json:"totalCoins"`
	TotalXP    int    `json:"totalXP"`
}

// Stat is a leveling attribute. MaxXP is always Level * 100; the engine
// keeps CurrentXP strictly below MaxXP after every update.
type Stat struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Level     int    `json:"level"`
	CurrentXP int    `json:"currentXP"`
	MaxXP     int    `json:"maxXP"`
}

// Quest is a trackable real-world task with XP/coin rewards.
type Quest struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Objective   string    `json:"objective,omitempty"`
	Type        string    `json:"type"`
	Tier        int       `json:"tier"`
	XPReward    int       `json:"xpReward"`
	CoinReward  int       `json:"coinReward"`
	Stat        string    `json:"stat"`
	Completed   bool      `json:"completed"`
	AISuggested bool      `json:"aiSuggested,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Reward is a purchasable, repeatable store item.
type Reward struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Cost int    `json:"cost"`
}

type ProjectItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

// Project is a multi-item checklist for a longer-term goal.
type Project struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Items       []ProjectItem `json:"items"`
}

// State is the full application state: every collection plus the profile
// and the monotonic ID counter shared by quests and rewards.
type State struct {
	Profile  Profile
	Stats    []Stat
	Quests   []Quest
	Rewards  []Reward
	Projects []Project
	LastID   int64
}
