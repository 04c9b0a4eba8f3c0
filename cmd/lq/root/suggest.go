package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"lifequest/internal/ai"
	"lifequest/internal/engine"
	"lifequest/internal/ui"
)

func newSuggestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Ask the AI game master to suggest a quest",
		Long: `Ask the AI game master to suggest a quest grounded in your stat sheet.

Requires GEMINI_API_KEY in the environment (or a .env file). The suggestion
is added to the quest log through the normal validation path.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cfg, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if cfg.GeminiAPIKey == "" {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" GEMINI_API_KEY is not set; AI suggestions are disabled."))
				return nil
			}

			st, err := svc.State(ctx)
			if err != nil {
				return err
			}

			client := ai.NewClient(ai.Config{APIKey: cfg.GeminiAPIKey, Model: cfg.GeminiModel})
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Consulting the game master…"))

			s, err := client.SuggestQuest(ctx, st.Stats)
			if errors.Is(err, ai.ErrUnavailable) {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" The game master is resting. Try again in a moment."))
				return nil
			}
			if err != nil {
				return err
			}

			spec, err := suggestionToSpec(s)
			if err != nil {
				// Model output that fails engine validation is not the
				// user's problem to debug.
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" The suggestion didn't pass validation. Try again in a moment."))
				return nil
			}

			q, err := svc.CreateQuest(ctx, spec)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d %s %s\n",
				ui.Good.Render(ui.IconRobot+" Suggested"), q.ID, q.Name,
				ui.Muted.Render(fmt.Sprintf("(+%d XP, +%d coins, %s)", q.XPReward, q.CoinReward, q.Stat)))
			if q.Objective != "" {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("  "+q.Objective))
			}
			return nil
		},
	}

	return cmd
}

func suggestionToSpec(s *ai.Suggestion) (engine.QuestSpec, error) {
	t, err := engine.ParseQuestType(s.Type)
	if err != nil {
		return engine.QuestSpec{}, err
	}
	c, err := engine.ParseStatCategory(s.Stat)
	if err != nil {
		return engine.QuestSpec{}, err
	}
	return engine.QuestSpec{
		Name:        s.Name,
		Objective:   s.Objective,
		Type:        t,
		Tier:        engine.QuestTier(s.Tier),
		XPReward:    s.XPReward,
		CoinReward:  s.CoinReward,
		Stat:        c,
		AISuggested: true,
	}, nil
}
