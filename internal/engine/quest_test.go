package engine

import (
	"errors"
	"testing"
	"time"

	"lifequest/internal/storage"
)

var testTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func validSpec() QuestSpec {
	return QuestSpec{
		Name:       "Practice scales",
		Type:       QuestDaily,
		Tier:       Tier1,
		XPReward:   10,
		CoinReward: 5,
		Stat:       StatSkill,
	}
}

func TestCreateQuestAssignsOrderedIDs(t *testing.T) {
	st := NewState(testTime)
	before := len(st.Quests)

	q1, err := CreateQuest(st, validSpec(), testTime)
	if err != nil {
		t.Fatalf("CreateQuest: %v", err)
	}
	q2, err := CreateQuest(st, validSpec(), testTime)
	if err != nil {
		t.Fatalf("CreateQuest: %v", err)
	}
	if q2.ID <= q1.ID {
		t.Fatalf("ids not increasing: %d then %d", q1.ID, q2.ID)
	}
	if q1.Completed || q2.Completed {
		t.Fatalf("new quests must start uncompleted")
	}
	if len(st.Quests) != before+2 {
		t.Fatalf("quest count = %d, want %d", len(st.Quests), before+2)
	}
}

func TestCreateQuestRejectsBadInput(t *testing.T) {
	st := NewState(testTime)
	before := len(st.Quests)

	cases := []struct {
		name   string
		mutate func(*QuestSpec)
	}{
		{"empty name", func(s *QuestSpec) { s.Name = "  " }},
		{"negative xp", func(s *QuestSpec) { s.XPReward = -1 }},
		{"negative coins", func(s *QuestSpec) { s.CoinReward = -1 }},
		{"bad type", func(s *QuestSpec) { s.Type = "yearly" }},
		{"bad tier", func(s *QuestSpec) { s.Tier = 4 }},
		{"bad stat", func(s *QuestSpec) { s.Stat = "LUCK" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			spec := validSpec()
			tc.mutate(&spec)
			_, err := CreateQuest(st, spec, testTime)
			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("err = %v, want ValidationError", err)
			}
		})
	}
	if len(st.Quests) != before {
		t.Fatalf("rejected creates mutated state: %d quests, want %d", len(st.Quests), before)
	}
}

func TestCreateQuestBatch(t *testing.T) {
	st := NewState(testTime)
	before := len(st.Quests)

	shared := validSpec()
	quests, err := CreateQuestBatch(st, "A\nB\n\nC", shared, testTime)
	if err != nil {
		t.Fatalf("CreateQuestBatch: %v", err)
	}
	if len(quests) != 3 {
		t.Fatalf("created %d quests, want 3 (blank line skipped)", len(quests))
	}
	wantNames := []string{"A", "B", "C"}
	for i, q := range quests {
		if q.Name != wantNames[i] {
			t.Fatalf("quest %d name = %q, want %q", i, q.Name, wantNames[i])
		}
		if q.XPReward != 10 || q.CoinReward != 5 {
			t.Fatalf("quest %q rewards = %d/%d, want 10/5", q.Name, q.XPReward, q.CoinReward)
		}
	}
	if !(quests[0].ID < quests[1].ID && quests[1].ID < quests[2].ID) {
		t.Fatalf("batch ids not in input order: %d, %d, %d", quests[0].ID, quests[1].ID, quests[2].ID)
	}
	if len(st.Quests) != before+3 {
		t.Fatalf("quest count = %d, want %d", len(st.Quests), before+3)
	}
}

func TestCreateQuestBatchEmptyInputIsNoOp(t *testing.T) {
	st := NewState(testTime)
	before := len(st.Quests)

	quests, err := CreateQuestBatch(st, "\n  \n\t\n", validSpec(), testTime)
	if err != nil {
		t.Fatalf("CreateQuestBatch: %v", err)
	}
	if quests != nil {
		t.Fatalf("quests = %v, want nil", quests)
	}
	if len(st.Quests) != before {
		t.Fatalf("empty batch mutated state")
	}
}

func TestCompleteQuestAppliesRewardsOnce(t *testing.T) {
	st := NewState(testTime)
	spec := validSpec()
	spec.XPReward = 40
	spec.CoinReward = 7
	q, err := CreateQuest(st, spec, testTime)
	if err != nil {
		t.Fatalf("CreateQuest: %v", err)
	}

	coinsBefore := st.Profile.TotalCoins
	xpBefore := st.Profile.TotalXP

	res := CompleteQuest(st, q.ID)
	if !res.Applied {
		t.Fatalf("first completion not applied")
	}
	if res.XPAwarded != 40 || res.CoinsAwarded != 7 {
		t.Fatalf("awarded %d XP / %d coins, want 40/7", res.XPAwarded, res.CoinsAwarded)
	}
	if st.Profile.TotalCoins != coinsBefore+7 || st.Profile.TotalXP != xpBefore+40 {
		t.Fatalf("profile = %d coins / %d XP, want %d/%d",
			st.Profile.TotalCoins, st.Profile.TotalXP, coinsBefore+7, xpBefore+40)
	}

	// Completing again changes nothing.
	res2 := CompleteQuest(st, q.ID)
	if res2.Applied {
		t.Fatalf("second completion applied")
	}
	if st.Profile.TotalCoins != coinsBefore+7 || st.Profile.TotalXP != xpBefore+40 {
		t.Fatalf("second completion mutated profile")
	}

	skill := statByCategory(st, StatSkill)
	if skill.CurrentXP != 40 {
		t.Fatalf("skill XP = %d, want 40", skill.CurrentXP)
	}
}

func TestCompleteQuestUnknownIsNoOp(t *testing.T) {
	st := NewState(testTime)
	coins := st.Profile.TotalCoins

	res := CompleteQuest(st, 9999)
	if res.Applied {
		t.Fatalf("unknown quest applied")
	}
	if st.Profile.TotalCoins != coins {
		t.Fatalf("unknown quest mutated wallet")
	}
}

func TestCompleteQuestMissingStatStillCreditsWallet(t *testing.T) {
	st := NewState(testTime)
	q, err := CreateQuest(st, validSpec(), testTime)
	if err != nil {
		t.Fatalf("CreateQuest: %v", err)
	}
	// Corrupt the stored category after creation.
	questByID(st, q.ID).Stat = "LUCK"

	coins := st.Profile.TotalCoins
	xp := st.Profile.TotalXP

	res := CompleteQuest(st, q.ID)
	if !res.Applied {
		t.Fatalf("completion not applied")
	}
	if !res.StatMissing {
		t.Fatalf("StatMissing not flagged")
	}
	if len(res.LevelUps) != 0 {
		t.Fatalf("level ups on missing stat")
	}
	if st.Profile.TotalCoins != coins+5 || st.Profile.TotalXP != xp+10 {
		t.Fatalf("wallet/profile not credited on missing stat")
	}
	for _, s := range st.Stats {
		if s.CurrentXP != 0 {
			t.Fatalf("stat %s gained XP", s.ID)
		}
	}
}

func TestCompleteQuestEmitsLevelUps(t *testing.T) {
	st := NewState(testTime)
	skill := statByCategory(st, StatSkill)
	skill.CurrentXP = 90

	spec := validSpec()
	spec.XPReward = 250
	q, err := CreateQuest(st, spec, testTime)
	if err != nil {
		t.Fatalf("CreateQuest: %v", err)
	}

	res := CompleteQuest(st, q.ID)
	if len(res.LevelUps) != 2 {
		t.Fatalf("level ups = %d, want 2", len(res.LevelUps))
	}
	if skill.Level != 3 || skill.CurrentXP != 40 {
		t.Fatalf("skill = L%d %d XP, want L3 40", skill.Level, skill.CurrentXP)
	}
}

func TestDeleteQuest(t *testing.T) {
	st := NewState(testTime)
	q, err := CreateQuest(st, validSpec(), testTime)
	if err != nil {
		t.Fatalf("CreateQuest: %v", err)
	}
	// Completed quests can be deleted too.
	CompleteQuest(st, q.ID)

	if !DeleteQuest(st, q.ID) {
		t.Fatalf("delete existing quest returned false")
	}
	if DeleteQuest(st, q.ID) {
		t.Fatalf("second delete returned true")
	}
}

func TestFilterQuests(t *testing.T) {
	st := &storage.State{}
	mk := func(name string, typ QuestType, stat StatCategory, xp, coins int) {
		spec := QuestSpec{Name: name, Type: typ, Tier: Tier1, XPReward: xp, CoinReward: coins, Stat: stat}
		if _, err := CreateQuest(st, spec, testTime); err != nil {
			t.Fatalf("CreateQuest %q: %v", name, err)
		}
	}
	mk("a", QuestDaily, StatSkill, 10, 1)
	mk("b", QuestWeekly, StatGold, 30, 9)
	mk("c", QuestDaily, StatGold, 20, 3)

	daily := FilterQuests(st.Quests, QuestFilter{Type: QuestDaily})
	if len(daily) != 2 {
		t.Fatalf("daily = %d, want 2", len(daily))
	}
	gold := FilterQuests(st.Quests, QuestFilter{Stat: StatGold, Sort: SortXP})
	if len(gold) != 2 || gold[0].Name != "b" {
		t.Fatalf("gold by xp = %v", gold)
	}
	newest := FilterQuests(st.Quests, QuestFilter{Sort: SortNewest})
	if newest[0].Name != "c" {
		t.Fatalf("newest first = %q, want c", newest[0].Name)
	}
	oldest := FilterQuests(st.Quests, QuestFilter{Sort: SortOldest})
	if oldest[0].Name != "a" {
		t.Fatalf("oldest first = %q, want a", oldest[0].Name)
	}
	if len(st.Quests) != 3 {
		t.Fatalf("filter mutated input")
	}
}
