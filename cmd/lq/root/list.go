package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"lifequest/internal/engine"
	"lifequest/internal/ui"
)

func newListCmd() *cobra.Command {
	var (
		questType string
		stat      string
		sortBy    string
		all       bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List quests",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			var filter engine.QuestFilter
			if questType != "" {
				t, err := engine.ParseQuestType(questType)
				if err != nil {
					return err
				}
				filter.Type = t
			}
			if stat != "" {
				c, err := engine.ParseStatCategory(stat)
				if err != nil {
					return err
				}
				filter.Stat = c
			}
			filter.Sort, err = engine.ParseQuestSort(sortBy)
			if err != nil {
				return err
			}

			st, err := svc.State(ctx)
			if err != nil {
				return err
			}

			quests := engine.FilterQuests(st.Quests, filter)
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconQuest, "Quest Log"))
			shown := 0
			for _, q := range quests {
				if q.Completed && !all {
					continue
				}
				shown++
				mark := "  "
				if q.Completed {
					mark = ui.IconDone + " "
				}
				origin := ""
				if q.AISuggested {
					origin = " " + ui.IconRobot
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s#%d %s%s %s\n", mark, q.ID, q.Name, origin,
					ui.Muted.Render(fmt.Sprintf("[%s t%d %s | %d XP, %d coins]", q.Type, q.Tier, q.Stat, q.XPReward, q.CoinReward)))
			}
			if shown == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(no quests — try `lq add` or `lq suggest`)"))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&questType, "type", "t", "", "Filter by type (daily|weekly|monthly)")
	cmd.Flags().StringVarP(&stat, "stat", "s", "", "Filter by stat category")
	cmd.Flags().StringVar(&sortBy, "sort", "newest", "Sort order (newest|oldest|xp|coins)")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include completed quests")

	return cmd
}
