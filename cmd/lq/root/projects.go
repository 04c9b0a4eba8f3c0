package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"lifequest/internal/engine"
	"lifequest/internal/ui"
)

func newProjectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Show epic project checklists",
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

			for _, p := range st.Projects {
				pct := engine.Progress(p)
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %d%%\n",
					ui.Heading(ui.IconBox, p.Name), ui.Muted.Render(p.ID), ui.Bar(pct, 100, 20), pct)
				if p.Description != "" {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("  "+p.Description))
				}
				for _, item := range p.Items {
					mark := "[ ]"
					if item.Completed {
						mark = "[x]"
					}
					fmt.Fprintf(cmd.OutOrStdout(), "  %s %s %s\n", mark, item.Name, ui.Muted.Render(item.ID))
				}
				fmt.Fprintln(cmd.OutOrStdout(), "")
			}
			return nil
		},
	}

	cmd.AddCommand(newProjectsToggleCmd())
	return cmd
}

func newProjectsToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <projectID> <itemID>",
		Short: "Toggle a checklist item",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("projectID and itemID are required")
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

			toggled, err := svc.ToggleProjectItem(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			if !toggled {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Project or item not found; nothing changed."))
				return nil
			}

			st, err := svc.State(ctx)
			if err != nil {
				return err
			}
			for _, p := range st.Projects {
				if p.ID != args[0] {
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s now at %d%%\n", ui.Good.Render(ui.IconDone+" Toggled."), p.Name, engine.Progress(p))
			}
			return nil
		},
	}
}
