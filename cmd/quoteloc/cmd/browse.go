package cmd

import (
	"github.com/spf13/cobra"

	"quoteloc/internal/browse"
)

// newBrowseCmd launches the interactive occurrence browser.
func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse [file]",
		Short: "Browse single quote occurrences in an interactive list",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, _, err := scanFromArgs(cmd, args)
			if err != nil {
				return err
			}
			return browse.Run(res)
		},
	}
}
