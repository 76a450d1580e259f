package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hkwire/hkctl/internal/pkg/render"
	"github.com/hkwire/hkctl/internal/pkg/schema"
)

var _servicesCmdOpts struct {
	name  string
	types []string
}

var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "Lists services across a home's accessories",

	RunE: func(cmd *cobra.Command, args []string) error {
		return doServices(cmd)
	},
}

func init() {
	servicesCmd.Flags().StringVarP(&_servicesCmdOpts.name, "name", "n", "", "filter by name or UUID")
	servicesCmd.Flags().StringArrayVarP(&_servicesCmdOpts.types, "type", "t", nil, "only services of this type, eg. LightBulb (repeatable)")

	rootCmd.AddCommand(servicesCmd)
}

func doServices(cmd *cobra.Command) error {
	ctx, cancel := callContext()
	defer cancel()

	types := make([]schema.ServiceType, 0, len(_servicesCmdOpts.types))
	for _, s := range _servicesCmdOpts.types {
		types = append(types, schema.ServiceTypeFromName(s))
	}

	resp, err := newClient().EnumerateServices(ctx, &schema.EnumerateServicesRequest{
		Home:       homeFilter(),
		Types:      types,
		NameFilter: _servicesCmdOpts.name,
	})
	if err != nil {
		return err
	}

	render.Services(cmd.OutOrStdout(), resp)
	return nil
}
