package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"lifequest/internal/engine"
	"lifequest/internal/ui"
)

func newStoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Browse and manage the reward store",
	}

	cmd.AddCommand(
		newStoreListCmd(),
		newStoreAddCmd(),
		newStoreBuyCmd(),
		newStoreRmCmd(),
	)
	return cmd
}

func newStoreListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List rewards",
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

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconStore, "Reward Store"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Wallet", ui.Coins(st.Profile.TotalCoins)))
			for _, r := range st.Rewards {
				affordable := ui.Good.Render("✔")
				if r.Cost > st.Profile.TotalCoins {
					affordable = ui.Bad.Render("✘")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s #%d %s %s\n", affordable, r.ID, r.Name, ui.Muted.Render(fmt.Sprintf("(%d coins)", r.Cost)))
			}
			if len(st.Rewards) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(store is empty — try `lq store add`)"))
			}
			return nil
		},
	}
}

func newStoreAddCmd() *cobra.Command {
	var (
		cost      int
		batch     bool
		batchFile string
	)

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a reward (single or batch)",
		Long: `Add a reward to the store.

In batch mode (--batch) rewards are read from stdin or --file, one per
line, in the lenient "Name | Cost" format: the cost falls back to 50 when
missing or unparsable, and lines without a name are skipped.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if batch {
				if len(args) != 0 {
					return errors.New("batch mode reads rewards from stdin or --file, not arguments")
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

			if batch {
				text, err := readBatchInput(cmd.InOrStdin(), batchFile)
				if err != nil {
					return err
				}
				rewards, report, err := svc.CreateRewardBatch(ctx, text)
				if err != nil {
					return err
				}
				for _, r := range rewards {
					fmt.Fprintf(cmd.OutOrStdout(), "%s #%d %s %s\n", ui.Good.Render(ui.IconStore+" Added"), r.ID, r.Name, ui.Muted.Render(fmt.Sprintf("(%d coins)", r.Cost)))
				}
				for _, l := range report.Defaulted {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(fmt.Sprintf("line %d: %s — cost defaulted to %d", l.Line, l.Reason, engine.DefaultRewardCost)))
				}
				for _, l := range report.Skipped {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(fmt.Sprintf("line %d skipped: %s", l.Line, l.Reason)))
				}
				if len(rewards) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No rewards found; nothing created."))
				}
				return nil
			}

			r, err := svc.CreateReward(ctx, args[0], cost)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d %s %s\n", ui.Good.Render(ui.IconStore+" Added"), r.ID, r.Name, ui.Muted.Render(fmt.Sprintf("(%d coins)", r.Cost)))
			return nil
		},
	}

	cmd.Flags().IntVarP(&cost, "cost", "c", engine.DefaultRewardCost, "Cost in coins")
	cmd.Flags().BoolVar(&batch, "batch", false, "Read \"Name | Cost\" lines from stdin or --file")
	cmd.Flags().StringVar(&batchFile, "file", "", "File with one reward per line (batch mode)")

	return cmd
}

func newStoreBuyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "buy <id>",
		Short: "Redeem a reward",
		Args:  requireIntID,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, _ := strconv.ParseInt(args[0], 10, 64)
			res, err := svc.RedeemReward(ctx, id)
			var funds engine.InsufficientFundsError
			if errors.As(err, &funds) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Bad.Render("Not enough coins:"), funds.Error())
				return nil
			}
			if err != nil {
				return err
			}
			if !res.Applied {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(fmt.Sprintf("Reward #%d not found; nothing changed.", id)))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconSparkle+" Enjoy your reward!"), res.RewardName,
				ui.Muted.Render(fmt.Sprintf("(-%d coins, %d left)", res.Cost, res.Balance)))
			return nil
		},
	}
}

func newStoreRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a reward",
		Args:  requireIntID,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, _ := strconv.ParseInt(args[0], 10, 64)
			removed, err := svc.DeleteReward(ctx, id)
			if err != nil {
				return err
			}
			if !removed {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(fmt.Sprintf("Reward #%d not found; nothing changed.", id)))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d\n", ui.Warn.Render("Deleted"), id)
			return nil
		},
	}
}

func requireIntID(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New("id is required")
	}
	if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
		return errors.New("id must be an integer")
	}
	return nil
}
