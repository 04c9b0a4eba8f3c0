package engine

import (
	"sort"
	"strings"
	"time"

	"lifequest/internal/storage"
)

// QuestSpec is the validated input for creating a quest.
type QuestSpec struct {
	Name        string
	Objective   string
	Type        QuestType
	Tier        QuestTier
	XPReward    int
	CoinReward  int
	Stat        StatCategory
	AISuggested bool
}

func (spec QuestSpec) validate() error {
	if strings.TrimSpace(spec.Name) == "" {
		return ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if !spec.Type.IsValid() {
		return ValidationError{Field: "type", Reason: "must be daily, weekly or monthly"}
	}
	if !spec.Tier.IsValid() {
		return ValidationError{Field: "tier", Reason: "must be 1, 2 or 3"}
	}
	if spec.XPReward < 0 {
		return ValidationError{Field: "xp", Reason: "must not be negative"}
	}
	if spec.CoinReward < 0 {
		return ValidationError{Field: "coins", Reason: "must not be negative"}
	}
	if !spec.Stat.IsValid() {
		return ValidationError{Field: "stat", Reason: "unrecognized category"}
	}
	return nil
}

// CreateQuest validates the spec, assigns the next counter ID and appends
// the quest. Invalid input is rejected before the state mutates.
func CreateQuest(st *storage.State, spec QuestSpec, now time.Time) (*storage.Quest, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}
	st.LastID++
	q := storage.Quest{
		ID:          st.LastID,
		Name:        strings.TrimSpace(spec.Name),
		Objective:   strings.TrimSpace(spec.Objective),
		Type:        string(spec.Type),
		Tier:        int(spec.Tier),
		XPReward:    spec.XPReward,
		CoinReward:  spec.CoinReward,
		Stat:        string(spec.Stat),
		AISuggested: spec.AISuggested,
		CreatedAt:   now.UTC(),
	}
	st.Quests = append(st.Quests, q)
	return &st.Quests[len(st.Quests)-1], nil
}

// CreateQuestBatch creates one quest per non-empty line of text, all sharing
// the spec's type/tier/stat/rewards. Blank input creates nothing and leaves
// the state untouched. IDs follow input line order.
func CreateQuestBatch(st *storage.State, text string, shared QuestSpec, now time.Time) ([]storage.Quest, error) {
	lines := SplitLines(text)
	if len(lines) == 0 {
		return nil, nil
	}

	// Validate once against the first line so a bad shared spec rejects the
	// whole batch before any quest is appended.
	probe := shared
	probe.Name = lines[0]
	if err := probe.validate(); err != nil {
		return nil, err
	}

	out := make([]storage.Quest, 0, len(lines))
	for _, line := range lines {
		spec := shared
		spec.Name = line
		q, err := CreateQuest(st, spec, now)
		if err != nil {
			return nil, err
		}
		out = append(out, *q)
	}
	return out, nil
}

// CompleteResult reports the effects of a completion so the presentation
// layer can render them. Applied is false for unknown or already-completed
// quests: completion is idempotent and those are no-ops.
type CompleteResult struct {
	QuestID      int64
	QuestName    string
	Applied      bool
	XPAwarded    int
	CoinsAwarded int
	LevelUps     []LevelUp
	// StatMissing flags the data-corruption case where no stat matches the
	// quest's category. The wallet is still credited.
	StatMissing bool
}

// CompleteQuest marks the quest completed and applies its rewards exactly
// once: profile coins and XP unconditionally, stat XP via the level-up
// cascade. The whole update is one logical transaction on the in-memory
// state; on a no-op nothing mutates.
func CompleteQuest(st *storage.State, id int64) *CompleteResult {
	q := questByID(st, id)
	if q == nil || q.Completed {
		return &CompleteResult{QuestID: id}
	}

	q.Completed = true
	st.Profile.TotalCoins += q.CoinReward
	st.Profile.TotalXP += q.XPReward

	res := &CompleteResult{
		QuestID:      q.ID,
		QuestName:    q.Name,
		Applied:      true,
		XPAwarded:    q.XPReward,
		CoinsAwarded: q.CoinReward,
	}

	stat := statByCategory(st, storedStatCategory(q.Stat))
	if stat == nil {
		res.StatMissing = true
		return res
	}
	res.LevelUps = ApplyStatXP(stat, q.XPReward)
	return res
}

// DeleteQuest removes the quest regardless of completion state. Unknown IDs
// are a no-op; the bool reports whether anything was removed.
func DeleteQuest(st *storage.State, id int64) bool {
	for i := range st.Quests {
		if st.Quests[i].ID == id {
			st.Quests = append(st.Quests[:i], st.Quests[i+1:]...)
			return true
		}
	}
	return false
}

// QuestSort orders a quest listing.
type QuestSort string

const (
	SortNewest QuestSort = "newest"
	SortOldest QuestSort = "oldest"
	SortXP     QuestSort = "xp"
	SortCoins  QuestSort = "coins"
)

func ParseQuestSort(input string) (QuestSort, error) {
	s := QuestSort(strings.TrimSpace(strings.ToLower(input)))
	switch s {
	case SortNewest, SortOldest, SortXP, SortCoins:
		return s, nil
	default:
		return "", ValidationError{Field: "sort", Reason: "must be newest, oldest, xp or coins"}
	}
}

// QuestFilter narrows and orders a quest listing. Zero values match all.
type QuestFilter struct {
	Type QuestType
	Stat StatCategory
	Sort QuestSort
}

// FilterQuests returns a filtered, sorted copy; the input slice is untouched.
func FilterQuests(quests []storage.Quest, f QuestFilter) []storage.Quest {
	out := make([]storage.Quest, 0, len(quests))
	for _, q := range quests {
		if f.Type != "" && QuestType(q.Type) != f.Type {
			continue
		}
		if f.Stat != "" && storedStatCategory(q.Stat) != f.Stat {
			continue
		}
		out = append(out, q)
	}

	switch f.Sort {
	case SortOldest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	case SortXP:
		sort.SliceStable(out, func(i, j int) bool { return out[i].XPReward > out[j].XPReward })
	case SortCoins:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CoinReward > out[j].CoinReward })
	default: // newest
		sort.SliceStable(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	}
	return out
}

func questByID(st *storage.State, id int64) *storage.Quest {
	for i := range st.Quests {
		if st.Quests[i].ID == id {
			return &st.Quests[i]
		}
	}
	return nil
}

func statByCategory(st *storage.State, c StatCategory) *storage.Stat {
	for i := range st.Stats {
		if storedStatCategory(st.Stats[i].Category) == c {
			return &st.Stats[i]
		}
	}
	return nil
}
