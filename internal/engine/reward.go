package engine

import (
	"strings"

	"lifequest/internal/storage"
)

// DefaultRewardCost is applied when a bulk-import line omits the cost or the
// cost does not parse as a positive integer.
const DefaultRewardCost = 50

// CreateReward validates and appends a store reward.
func CreateReward(st *storage.State, name string, cost int) (*storage.Reward, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if cost <= 0 {
		return nil, ValidationError{Field: "cost", Reason: "must be a positive integer"}
	}
	st.LastID++
	r := storage.Reward{ID: st.LastID, Name: name, Cost: cost}
	st.Rewards = append(st.Rewards, r)
	return &st.Rewards[len(st.Rewards)-1], nil
}

// BatchLine records one tolerated irregularity during a bulk import.
type BatchLine struct {
	Line   int // 1-based position among the non-empty input lines
	Text   string
	Reason string
}

// BatchReport makes the tolerant parser's decisions observable: which lines
// were skipped outright and which fell back to the default cost.
type BatchReport struct {
	Skipped   []BatchLine
	Defaulted []BatchLine
}

// CreateRewardBatch imports rewards from "Name | Cost" lines. Lines without
// a delimiter or with an unparsable cost get DefaultRewardCost; lines whose
// trimmed name is empty are skipped. Nothing fails: every irregularity lands
// in the report instead.
func CreateRewardBatch(st *storage.State, text string) ([]storage.Reward, *BatchReport) {
	report := &BatchReport{}
	var out []storage.Reward

	for i, line := range SplitLines(text) {
		name, cost, defaulted := parseRewardLine(line)
		if name == "" {
			report.Skipped = append(report.Skipped, BatchLine{Line: i + 1, Text: line, Reason: "empty name"})
			continue
		}
		if defaulted {
			report.Defaulted = append(report.Defaulted, BatchLine{Line: i + 1, Text: line, Reason: "missing or unparsable cost"})
		}
		st.LastID++
		r := storage.Reward{ID: st.LastID, Name: name, Cost: cost}
		st.Rewards = append(st.Rewards, r)
		out = append(out, r)
	}
	return out, report
}

// RedeemResult reports a purchase. Applied is false when the reward ID is
// unknown (a harmless no-op).
type RedeemResult struct {
	RewardID   int64
	RewardName string
	Applied    bool
	Cost       int
	Balance    int
}

// Redeem spends coins on a reward. It fails with InsufficientFundsError and
// leaves the wallet untouched when coins run short. The reward itself is
// never consumed; purchases are repeatable.
func Redeem(st *storage.State, id int64) (*RedeemResult, error) {
	var reward *storage.Reward
	for i := range st.Rewards {
		if st.Rewards[i].ID == id {
			reward = &st.Rewards[i]
			break
		}
	}
	if reward == nil {
		return &RedeemResult{RewardID: id, Balance: st.Profile.TotalCoins}, nil
	}

	if st.Profile.TotalCoins < reward.Cost {
		return nil, InsufficientFundsError{Cost: reward.Cost, Balance: st.Profile.TotalCoins}
	}
	st.Profile.TotalCoins -= reward.Cost

	return &RedeemResult{
		RewardID:   reward.ID,
		RewardName: reward.Name,
		Applied:    true,
		Cost:       reward.Cost,
		Balance:    st.Profile.TotalCoins,
	}, nil
}

// DeleteReward removes the reward; unknown IDs are a no-op.
func DeleteReward(st *storage.State, id int64) bool {
	for i := range st.Rewards {
		if st.Rewards[i].ID == id {
			st.Rewards = append(st.Rewards[:i], st.Rewards[i+1:]...)
			return true
		}
	}
	return false
}
