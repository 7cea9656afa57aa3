package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/zoro11031/python-roadmap/roadmap-setup/internal/cli"
	"github.com/zoro11031/python-roadmap/roadmap-setup/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "roadmap-setup",
	Short: "Python Learning Roadmap repository setup",
	Long: `Creates the directory structure of the Python Learning Roadmap repository
in the current directory:

- Beginner, Intermediate and Advanced levels
- Specialization tracks
- Interview preparation
- Cheatsheets
- Tools and setup guides

A README.md is written for every section and a .gitignore at the root.
Existing README.md and .gitignore files are replaced.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true, // main reports errors through logrus
	RunE:          runSetup,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.Info())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	ctx := cli.NewSetupContext(cmd.OutOrStdout(), log.StandardLogger())
	return ctx.Run()
}

func configureLogrus() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{
		DisableTimestamp: true,
	})
	log.SetLevel(log.InfoLevel)
}

func main() {
	configureLogrus()

	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("Setup failed")
		os.Exit(1)
	}
}
