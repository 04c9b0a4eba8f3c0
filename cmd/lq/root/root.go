package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lifequest/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "lq",
	Short:         "LifeQuest — track real-life habits as RPG quests",
	Long:          "LifeQuest is a local-first habit tracker: complete quests, level up stats, spend coins on self-defined rewards.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newAddCmd(),
		newDoCmd(),
		newRmCmd(),
		newListCmd(),
		newStoreCmd(),
		newProjectsCmd(),
		newStatusCmd(),
		newSuggestCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
