package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"lifequest/internal/ui"
)

func newDoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <id>",
		Short: "Complete a quest",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return errors.New("id must be an integer")
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

			id, _ := strconv.ParseInt(args[0], 10, 64)
			res, err := svc.CompleteQuest(ctx, id)
			if err != nil {
				return err
			}
			if !res.Applied {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n", ui.Muted.Render(fmt.Sprintf("Quest #%d is already done or unknown; nothing changed.", id)))
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d %s %s\n",
				ui.Good.Render(ui.IconDone+" Completed"), res.QuestID, res.QuestName,
				ui.Muted.Render(fmt.Sprintf("(+%d XP, +%d coins)", res.XPAwarded, res.CoinsAwarded)))
			for _, up := range res.LevelUps {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s is now level %d!\n", ui.BadgeLevelUp, up.StatName, up.Level)
			}
			if res.StatMissing {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" No stat matches this quest's category; coins and XP were still credited."))
			}
			return nil
		},
	}

	return cmd
}
