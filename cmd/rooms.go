package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hkwire/hkctl/internal/pkg/render"
	"github.com/hkwire/hkctl/internal/pkg/schema"
)

var _roomsCmdOpts struct {
	name string
}

var roomsCmd = &cobra.Command{
	Use:   "rooms",
	Short: "Lists rooms in a home",

	RunE: func(cmd *cobra.Command, args []string) error {
		return doRooms(cmd)
	},
}

func init() {
	roomsCmd.Flags().StringVarP(&_roomsCmdOpts.name, "name", "n", "", "filter by name or UUID")

	rootCmd.AddCommand(roomsCmd)
}

func doRooms(cmd *cobra.Command) error {
	ctx, cancel := callContext()
	defer cancel()

	resp, err := newClient().EnumerateRooms(ctx, &schema.EnumerateRoomsRequest{
		Home:       homeFilter(),
		NameFilter: _roomsCmdOpts.name,
	})
	if err != nil {
		return err
	}

	render.Rooms(cmd.OutOrStdout(), resp)
	return nil
}
