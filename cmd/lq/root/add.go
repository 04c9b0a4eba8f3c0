package root

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"lifequest/internal/engine"
	"lifequest/internal/ui"
)

func newAddCmd() *cobra.Command {
	var (
		questType string
		tier      int
		stat      string
		xp        int
		coins     int
		objective string
		batch     bool
		batchFile string
	)

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a quest (single or batch)",
		Long: `Add a quest to the log.

In batch mode (--batch) quest names are read one per line from stdin or
--file; blank lines are skipped and every quest shares the flags' type,
tier, stat and rewards.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if batch {
				if len(args) != 0 {
					return errors.New("batch mode reads names from stdin or --file, not arguments")
				}
				return nil
			}
			if len(args) != 1 {
				return errors.New("name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			shared, err := questSpecFromFlags(questType, tier, stat, xp, coins, objective)
			if err != nil {
				return err
			}

			if batch {
				text, err := readBatchInput(cmd.InOrStdin(), batchFile)
				if err != nil {
					return err
				}
				quests, err := svc.CreateQuestBatch(ctx, text, shared)
				if err != nil {
					return err
				}
				if len(quests) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No quest names found; nothing created."))
					return nil
				}
				for _, q := range quests {
					fmt.Fprintf(cmd.OutOrStdout(), "%s #%d %s\n", ui.Good.Render(ui.IconQuest+" Added"), q.ID, q.Name)
				}
				return nil
			}

			shared.Name = args[0]
			q, err := svc.CreateQuest(ctx, shared)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d %s %s\n",
				ui.Good.Render(ui.IconQuest+" Added"), q.ID, q.Name,
				ui.Muted.Render(fmt.Sprintf("(+%d XP, +%d coins, %s)", q.XPReward, q.CoinReward, q.Stat)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&questType, "type", "t", "daily", "Quest type (daily|weekly|monthly)")
	cmd.Flags().IntVar(&tier, "tier", 1, "Difficulty tier (1-3)")
	cmd.Flags().StringVarP(&stat, "stat", "s", "skill", "Stat category (skill|gold|focus|charisma|vitality|morale)")
	cmd.Flags().IntVarP(&xp, "xp", "x", 10, "XP reward")
	cmd.Flags().IntVarP(&coins, "coins", "c", 5, "Coin reward")
	cmd.Flags().StringVarP(&objective, "objective", "o", "", "Optional objective text")
	cmd.Flags().BoolVar(&batch, "batch", false, "Read quest names, one per line, from stdin or --file")
	cmd.Flags().StringVar(&batchFile, "file", "", "File with one quest name per line (batch mode)")

	return cmd
}

func questSpecFromFlags(questType string, tier int, stat string, xp, coins int, objective string) (engine.QuestSpec, error) {
	t, err := engine.ParseQuestType(questType)
	if err != nil {
		return engine.QuestSpec{}, err
	}
	c, err := engine.ParseStatCategory(stat)
	if err != nil {
		return engine.QuestSpec{}, err
	}
	return engine.QuestSpec{
		Objective:  objective,
		Type:       t,
		Tier:       engine.QuestTier(tier),
		XPReward:   xp,
		CoinReward: coins,
		Stat:       c,
	}, nil
}

func readBatchInput(stdin io.Reader, file string) (string, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read batch file: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.ToValidUTF8(string(data), ""), nil
}
