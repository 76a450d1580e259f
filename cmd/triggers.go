package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/hkwire/hkctl/internal/pkg/render"
	"github.com/hkwire/hkctl/internal/pkg/schema"
)

// timestampLayout is what --before and --after accept, interpreted as
// UTC.
const timestampLayout = "2006-01-02 15:04:05"

var _triggersCmdOpts struct {
	name    string
	enabled string
	before  string
	after   string
}

var triggersCmd = &cobra.Command{
	Use:   "triggers",
	Short: "Lists triggers in a home",

	RunE: func(cmd *cobra.Command, args []string) error {
		return doTriggers(cmd)
	},
}

func init() {
	triggersCmd.Flags().StringVarP(&_triggersCmdOpts.name, "name", "n", "", "filter by name or UUID")
	triggersCmd.Flags().StringVar(&_triggersCmdOpts.enabled, "enabled", "either", "only enabled (true) or disabled (false) triggers")
	triggersCmd.Flags().StringVar(&_triggersCmdOpts.before, "before", "", "only triggers last fired before this time, eg. '2026-01-02 15:04:05'")
	triggersCmd.Flags().StringVar(&_triggersCmdOpts.after, "after", "", "only triggers last fired after this time, eg. '2026-01-02 15:04:05'")

	rootCmd.AddCommand(triggersCmd)
}

func parseTimestamp(s string) (uint64, error) {
	if s == "" {
		return 0, nil
	}
	t, err := time.Parse(timestampLayout, s)
	if err != nil {
		return 0, usageErrorf("unable to parse %q as a timestamp", s)
	}
	return uint64(t.UTC().Unix()), nil
}

func parseEnabledFilter(s string) (schema.EnabledFilter, error) {
	switch s {
	case "either":
		return schema.EnabledFilterNone, nil
	case "true":
		return schema.EnabledFilterEnabledOnly, nil
	case "false":
		return schema.EnabledFilterDisabledOnly, nil
	}
	return schema.EnabledFilterNone, usageErrorf("--enabled must be either, true or false, not %q", s)
}

func doTriggers(cmd *cobra.Command) error {
	before, err := parseTimestamp(_triggersCmdOpts.before)
	if err != nil {
		return err
	}
	after, err := parseTimestamp(_triggersCmdOpts.after)
	if err != nil {
		return err
	}
	enabled, err := parseEnabledFilter(_triggersCmdOpts.enabled)
	if err != nil {
		return err
	}

	ctx, cancel := callContext()
	defer cancel()

	resp, err := newClient().EnumerateTriggers(ctx, &schema.EnumerateTriggersRequest{
		Home:          homeFilter(),
		NameFilter:    _triggersCmdOpts.name,
		EnabledFilter: enabled,
		Before:        before,
		After:         after,
	})
	if err != nil {
		return err
	}

	render.Triggers(cmd.OutOrStdout(), resp)
	return nil
}
