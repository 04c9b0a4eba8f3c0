package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"lifequest/internal/engine"
	"lifequest/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show profile, stat sheet and milestones",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st, err := svc.State(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconSparkle, st.Profile.Name))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Wallet", ui.Coins(st.Profile.TotalCoins)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Total XP", fmt.Sprintf("%d %s", st.Profile.TotalXP, ui.IconBolt)))
			fmt.Fprintln(cmd.OutOrStdout(), "")

			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render("📊 Character Sheet"))
			for _, s := range st.Stats {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s L%d %s %s\n",
					s.Name, s.Level, ui.Bar(s.CurrentXP, s.MaxXP, 14),
					ui.Muted.Render(fmt.Sprintf("%d/%d XP", s.CurrentXP, s.MaxXP)))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "")

			earned := 0
			milestones := engine.Milestones(st)
			for _, m := range milestones {
				if m.Earned {
					earned++
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(fmt.Sprintf("%s Milestones (%d/%d)", ui.IconTrophy, earned, len(milestones))))
			for _, m := range milestones {
				if !m.Earned {
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %s %s\n", m.Icon, m.Name, ui.Muted.Render(m.Description))
			}
			if earned == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(none yet — complete a quest!)"))
			}
			return nil
		},
	}

	return cmd
}
