package engine

import (
	"context"
	"sync"
	"time"

	"lifequest/internal/storage"
)

// Service runs engine operations against the persisted state. Every
// operation is a load-mutate-save critical section behind one mutex, so
// callers (the CLI, TUI goroutines) never interleave two mutations.
type Service struct {
	mu   sync.Mutex
	repo *storage.StateRepo
	now  func() time.Time
}

func NewService(repo *storage.StateRepo) *Service {
	return &Service{repo: repo, now: time.Now}
}

// State returns the current state, seeding the store on first run.
func (s *Service) State(ctx context.Context) (*storage.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

func (s *Service) CreateQuest(ctx context.Context, spec QuestSpec) (*storage.Quest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	q, err := CreateQuest(st, spec, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, st); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *Service) CreateQuestBatch(ctx context.Context, text string, shared QuestSpec) ([]storage.Quest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	quests, err := CreateQuestBatch(st, text, shared, s.now())
	if err != nil {
		return nil, err
	}
	if len(quests) == 0 {
		return nil, nil
	}
	if err := s.repo.Save(ctx, st); err != nil {
		return nil, err
	}
	return quests, nil
}

func (s *Service) CompleteQuest(ctx context.Context, id int64) (*CompleteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	res := CompleteQuest(st, id)
	if !res.Applied {
		return res, nil
	}
	if err := s.repo.Save(ctx, st); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *Service) DeleteQuest(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load(ctx)
	if err != nil {
		return false, err
	}
	if !DeleteQuest(st, id) {
		return false, nil
	}
	if err := s.repo.Save(ctx, st); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) CreateReward(ctx context.Context, name string, cost int) (*storage.Reward, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	r, err := CreateReward(st, name, cost)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, st); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Service) CreateRewardBatch(ctx context.Context, text string) ([]storage.Reward, *BatchReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load(ctx)
	if err != nil {
		return nil, nil, err
	}
	rewards, report := CreateRewardBatch(st, text)
	if len(rewards) == 0 {
		return nil, report, nil
	}
	if err := s.repo.Save(ctx, st); err != nil {
		return nil, nil, err
	}
	return rewards, report, nil
}

func (s *Service) RedeemReward(ctx context.Context, id int64) (*RedeemResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	res, err := Redeem(st, id)
	if err != nil {
		return nil, err
	}
	if !res.Applied {
		return res, nil
	}
	if err := s.repo.Save(ctx, st); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *Service) DeleteReward(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load(ctx)
	if err != nil {
		return false, err
	}
	if !DeleteReward(st, id) {
		return false, nil
	}
	if err := s.repo.Save(ctx, st); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) ToggleProjectItem(ctx context.Context, projectID, itemID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load(ctx)
	if err != nil {
		return false, err
	}
	if !ToggleItem(st, projectID, itemID) {
		return false, nil
	}
	if err := s.repo.Save(ctx, st); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) load(ctx context.Context) (*storage.State, error) {
	st, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if st != nil {
		return st, nil
	}

	st = NewState(s.now())
	if err := s.repo.Save(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}
