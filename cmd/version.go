// File: cmd/version.go
package cmd

import (
	"fmt"

	"srcmd/pkg/version"

	"github.com/spf13/cobra"
)

// appName and appVersion identify the application in log fields and the
// version output.
const (
	appName    = "srcmd"
	appVersion = "1.0.0"
)

// versionCmd displays the current version of srcmd. The --short flag
// prints a concise version string only.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the version of srcmd",
	Long:  `Display the current version information of the srcmd CLI tool.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		short, err := cmd.Flags().GetBool("short")
		if err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}

		v := version.Get()

		if short {
			fmt.Println(v.Version)
		} else {
			fmt.Println(v.String())
		}

		return nil
	},
}

func init() {
	versionCmd.Flags().BoolP("short", "s", false, "Print the version number only")

	RootCmd.AddCommand(versionCmd)
}
