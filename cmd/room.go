package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hkwire/hkctl/internal/pkg/render"
	"github.com/hkwire/hkctl/internal/pkg/schema"
)

var _roomCmdOpts struct {
	operation   string
	name        string
	accessories []string
}

var roomCmd = &cobra.Command{
	Use:   "room",
	Short: "Adds or removes a room, or moves accessories in or out of one",

	RunE: func(cmd *cobra.Command, args []string) error {
		return doRoom(cmd)
	},
}

func init() {
	roomCmd.Flags().StringVarP(&_roomCmdOpts.operation, "operation", "o", "", "add, rm or remove")
	roomCmd.Flags().StringVarP(&_roomCmdOpts.name, "name", "n", "", "room name, or its UUID when removing")
	roomCmd.Flags().StringSliceVarP(&_roomCmdOpts.accessories, "accessories", "a", nil, "accessory UUIDs to place in or detach from the room")

	rootCmd.AddCommand(roomCmd)
}

func parseRoomOperation(s string) (schema.RoomOperation, error) {
	switch s {
	case "add":
		return schema.RoomOperationAdd, nil
	case "rm", "remove":
		return schema.RoomOperationRemove, nil
	}
	return schema.RoomOperationInvalid, usageErrorf("unrecognized operation %q", s)
}

func doRoom(cmd *cobra.Command) error {
	op, err := parseRoomOperation(_roomCmdOpts.operation)
	if err != nil {
		return err
	}
	if _roomCmdOpts.name == "" {
		return usageErrorf("--name is required")
	}

	ctx, cancel := callContext()
	defer cancel()

	resp, err := newClient().AddRemoveRoom(ctx, &schema.AddRemoveRoomRequest{
		Home:        homeFilter(),
		Name:        _roomCmdOpts.name,
		Accessories: _roomCmdOpts.accessories,
		Operation:   op,
	})
	if err != nil {
		return err
	}

	render.Room(cmd.OutOrStdout(), resp)
	return nil
}
