package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hkwire/hkctl/internal/pkg/render"
	"github.com/hkwire/hkctl/internal/pkg/schema"
)

var _accessoriesCmdOpts struct {
	name string
	room string
	zone string
}

var accessoriesCmd = &cobra.Command{
	Use:   "accessories",
	Short: "Lists accessories in a home",

	RunE: func(cmd *cobra.Command, args []string) error {
		return doAccessories(cmd)
	},
}

func init() {
	accessoriesCmd.Flags().StringVarP(&_accessoriesCmdOpts.name, "name", "n", "", "filter by name or UUID")
	accessoriesCmd.Flags().StringVar(&_accessoriesCmdOpts.room, "room", "", "only accessories in this room")
	accessoriesCmd.Flags().StringVar(&_accessoriesCmdOpts.zone, "zone", "", "only accessories in this zone")

	rootCmd.AddCommand(accessoriesCmd)
}

func doAccessories(cmd *cobra.Command) error {
	ctx, cancel := callContext()
	defer cancel()

	resp, err := newClient().EnumerateAccessories(ctx, &schema.EnumerateAccessoriesRequest{
		Home:       homeFilter(),
		ZoneFilter: _accessoriesCmdOpts.zone,
		RoomFilter: _accessoriesCmdOpts.room,
		NameFilter: _accessoriesCmdOpts.name,
	})
	if err != nil {
		return err
	}

	render.Accessories(cmd.OutOrStdout(), resp)
	return nil
}
