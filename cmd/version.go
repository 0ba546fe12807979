package cmd

import (
	"github.com/spf13/cobra"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
	buildDirty   = "false"
)

// SetVersion records build metadata injected via ldflags.
func SetVersion(version, commit, date, dirty string) {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	buildDirty = dirty
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the mtgdex version",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("mtgdex %s (commit %s, built %s", buildVersion, buildCommit, buildDate)
		if buildDirty == "true" {
			cmd.Print(", dirty")
		}
		cmd.Println(")")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
