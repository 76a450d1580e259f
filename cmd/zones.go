package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hkwire/hkctl/internal/pkg/render"
	"github.com/hkwire/hkctl/internal/pkg/schema"
)

var _zonesCmdOpts struct {
	name string
	room string
}

var zonesCmd = &cobra.Command{
	Use:   "zones",
	Short: "Lists zones in a home",

	RunE: func(cmd *cobra.Command, args []string) error {
		return doZones(cmd)
	},
}

func init() {
	zonesCmd.Flags().StringVarP(&_zonesCmdOpts.name, "name", "n", "", "filter by name or UUID")
	zonesCmd.Flags().StringVar(&_zonesCmdOpts.room, "room", "", "only zones containing this room")

	rootCmd.AddCommand(zonesCmd)
}

func doZones(cmd *cobra.Command) error {
	ctx, cancel := callContext()
	defer cancel()

	resp, err := newClient().EnumerateZones(ctx, &schema.EnumerateZonesRequest{
		Home:       homeFilter(),
		RoomFilter: _zonesCmdOpts.room,
		NameFilter: _zonesCmdOpts.name,
	})
	if err != nil {
		return err
	}

	render.Zones(cmd.OutOrStdout(), resp)
	return nil
}
