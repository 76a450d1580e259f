package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hkwire/hkctl/internal/pkg/render"
	"github.com/hkwire/hkctl/internal/pkg/schema"
)

var _homesCmdOpts struct {
	name string
}

var homesCmd = &cobra.Command{
	Use:   "homes",
	Short: "Lists homes",

	RunE: func(cmd *cobra.Command, args []string) error {
		return doHomes(cmd)
	},
}

func init() {
	homesCmd.Flags().StringVarP(&_homesCmdOpts.name, "name", "n", "", "filter by name or UUID")

	rootCmd.AddCommand(homesCmd)
}

func doHomes(cmd *cobra.Command) error {
	ctx, cancel := callContext()
	defer cancel()

	resp, err := newClient().EnumerateHomes(ctx, &schema.EnumerateHomesRequest{
		NameFilter: _homesCmdOpts.name,
	})
	if err != nil {
		return err
	}

	render.Homes(cmd.OutOrStdout(), resp)
	return nil
}
