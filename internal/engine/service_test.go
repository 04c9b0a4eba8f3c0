package engine

import (
	"context"
	"path/filepath"
	"testing"

	"lifequest/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	return NewService(storage.NewStateRepo(storage.NewKV(db)))
}

func TestServiceSeedsOnFirstRun(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	st, err := svc.State(ctx)
	if err != nil {
		t.Fatalf("State: %v", err)
	}
	if len(st.Stats) != len(AllStatCategories) {
		t.Fatalf("stats = %d, want %d (one per category)", len(st.Stats), len(AllStatCategories))
	}
	for _, c := range AllStatCategories {
		if statByCategory(st, c) == nil {
			t.Fatalf("missing seeded stat for %s", c)
		}
	}
	if st.Profile.TotalCoins != StartingCoins {
		t.Fatalf("starting coins = %d, want %d", st.Profile.TotalCoins, StartingCoins)
	}
	if len(st.Projects) == 0 || len(st.Rewards) == 0 || len(st.Quests) == 0 {
		t.Fatalf("seed incomplete: %d projects, %d rewards, %d quests",
			len(st.Projects), len(st.Rewards), len(st.Quests))
	}
}

func TestServiceCompleteQuestPersists(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	q, err := svc.CreateQuest(ctx, validSpec())
	if err != nil {
		t.Fatalf("CreateQuest: %v", err)
	}

	res, err := svc.CompleteQuest(ctx, q.ID)
	if err != nil {
		t.Fatalf("CompleteQuest: %v", err)
	}
	if !res.Applied {
		t.Fatalf("completion not applied")
	}

	// Completing again through the service is a persisted no-op.
	res2, err := svc.CompleteQuest(ctx, q.ID)
	if err != nil {
		t.Fatalf("second CompleteQuest: %v", err)
	}
	if res2.Applied {
		t.Fatalf("second completion applied")
	}

	st, err := svc.State(ctx)
	if err != nil {
		t.Fatalf("State: %v", err)
	}
	if st.Profile.TotalCoins != StartingCoins+q.CoinReward {
		t.Fatalf("coins = %d, want %d", st.Profile.TotalCoins, StartingCoins+q.CoinReward)
	}
	if st.Profile.TotalXP != q.XPReward {
		t.Fatalf("xp = %d, want %d", st.Profile.TotalXP, q.XPReward)
	}
}

func TestServiceStateSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	svc := NewService(storage.NewStateRepo(storage.NewKV(db)))

	q, err := svc.CreateQuest(ctx, validSpec())
	if err != nil {
		t.Fatalf("CreateQuest: %v", err)
	}
	if _, err := svc.CompleteQuest(ctx, q.ID); err != nil {
		t.Fatalf("CompleteQuest: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("close db: %v", err)
	}

	db2, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("reopen db: %v", err)
	}
	defer db2.Close()
	svc2 := NewService(storage.NewStateRepo(storage.NewKV(db2)))

	st, err := svc2.State(ctx)
	if err != nil {
		t.Fatalf("State after reopen: %v", err)
	}
	found := false
	for _, got := range st.Quests {
		if got.ID == q.ID {
			found = true
			if !got.Completed {
				t.Fatalf("completion lost across reopen")
			}
		}
	}
	if !found {
		t.Fatalf("quest lost across reopen")
	}
	if st.Profile.TotalXP != q.XPReward {
		t.Fatalf("profile XP lost across reopen: %d", st.Profile.TotalXP)
	}
}

func TestServiceRewardBatchReportsAndPersists(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	rewards, report, err := svc.CreateRewardBatch(ctx, "Pizza\nCine | 60")
	if err != nil {
		t.Fatalf("CreateRewardBatch: %v", err)
	}
	if len(rewards) != 2 {
		t.Fatalf("rewards = %d, want 2", len(rewards))
	}
	if len(report.Defaulted) != 1 {
		t.Fatalf("defaulted = %d, want 1", len(report.Defaulted))
	}

	st, err := svc.State(ctx)
	if err != nil {
		t.Fatalf("State: %v", err)
	}
	found := 0
	for _, r := range st.Rewards {
		if r.Name == "Pizza" || r.Name == "Cine" {
			found++
		}
	}
	if found != 2 {
		t.Fatalf("batch rewards not persisted: found %d", found)
	}
}
