package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hkwire/hkctl/internal/pkg/render"
	"github.com/hkwire/hkctl/internal/pkg/schema"
)

var _actionSetsCmdOpts struct {
	name string
}

var actionSetsCmd = &cobra.Command{
	Use:   "action-sets",
	Short: "Lists action sets in a home",

	RunE: func(cmd *cobra.Command, args []string) error {
		return doActionSets(cmd)
	},
}

func init() {
	actionSetsCmd.Flags().StringVarP(&_actionSetsCmdOpts.name, "name", "n", "", "filter by name or UUID")

	rootCmd.AddCommand(actionSetsCmd)
}

func doActionSets(cmd *cobra.Command) error {
	ctx, cancel := callContext()
	defer cancel()

	resp, err := newClient().EnumerateActionSets(ctx, &schema.EnumerateActionSetsRequest{
		Home:       homeFilter(),
		NameFilter: _actionSetsCmdOpts.name,
	})
	if err != nil {
		return err
	}

	render.ActionSets(cmd.OutOrStdout(), resp)
	return nil
}
