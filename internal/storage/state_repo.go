package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

// Fixed keys for the persisted collections. Each is an independent JSON blob
// so a partial write never corrupts the other collections.
const (
	KeyProfile  = "lq_profile"
	KeyStats    = "lq_stats"
	KeyQuests   = "lq_quests"
	KeyRewards  = "lq_rewards"
	KeyProjects = "lq_projects"
	KeySeq      = "lq_seq"
)

// StateRepo round-trips the application state through the KV store.
type StateRepo struct {
	kv *KV
}

func NewStateRepo(kv *KV) *StateRepo {
	return &StateRepo{kv: kv}
}

// Load reads every collection. It returns nil (and no error) when the store
// has never been written, so the caller can seed a fresh state.
func (r *StateRepo) Load(ctx context.Context) (*State, error) {
	raw, ok, err := r.kv.Get(ctx, KeyProfile)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var st State
	if err := json.Unmarshal([]byte(raw), &st.Profile); err != nil {
		return nil, fmt.Errorf("decode %s: %w", KeyProfile, err)
	}
	if err := r.loadJSON(ctx, KeyStats, &st.Stats); err != nil {
		return nil, err
	}
	if err := r.loadJSON(ctx, KeyQuests, &st.Quests); err != nil {
		return nil, err
	}
	if err := r.loadJSON(ctx, KeyRewards, &st.Rewards); err != nil {
		return nil, err
	}
	if err := r.loadJSON(ctx, KeyProjects, &st.Projects); err != nil {
		return nil, err
	}

	seq, ok, err := r.kv.Get(ctx, KeySeq)
	if err != nil {
		return nil, err
	}
	if ok {
		n, err := strconv.ParseInt(seq, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", KeySeq, err)
		}
		st.LastID = n
	}
	return &st, nil
}

// Save writes every collection under its own key, grouped in one transaction.
func (r *StateRepo) Save(ctx context.Context, st *State) error {
	pairs := map[string]string{
		KeySeq: strconv.FormatInt(st.LastID, 10),
	}
	for key, v := range map[string]any{
		KeyProfile:  st.Profile,
		KeyStats:    st.Stats,
		KeyQuests:   st.Quests,
		KeyRewards:  st.Rewards,
		KeyProjects: st.Projects,
	} {
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode %s: %w", key, err)
		}
		pairs[key] = string(data)
	}
	return r.kv.SetAll(ctx, pairs)
}

func (r *StateRepo) loadJSON(ctx context.Context, key string, dst any) error {
	raw, ok, err := r.kv.Get(ctx, key)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}
