package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hkwire/hkctl/internal/pkg/render"
	"github.com/hkwire/hkctl/internal/pkg/schema"
)

var _serviceGroupsCmdOpts struct {
	name string
}

var serviceGroupsCmd = &cobra.Command{
	Use:   "service-groups",
	Short: "Lists service groups in a home",

	RunE: func(cmd *cobra.Command, args []string) error {
		return doServiceGroups(cmd)
	},
}

func init() {
	serviceGroupsCmd.Flags().StringVarP(&_serviceGroupsCmdOpts.name, "name", "n", "", "filter by name or UUID")

	rootCmd.AddCommand(serviceGroupsCmd)
}

func doServiceGroups(cmd *cobra.Command) error {
	ctx, cancel := callContext()
	defer cancel()

	resp, err := newClient().EnumerateServiceGroups(ctx, &schema.EnumerateServiceGroupsRequest{
		Home:       homeFilter(),
		NameFilter: _serviceGroupsCmdOpts.name,
	})
	if err != nil {
		return err
	}

	render.ServiceGroups(cmd.OutOrStdout(), resp)
	return nil
}
