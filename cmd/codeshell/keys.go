package main

import (
	"fmt"
	"text/tabwriter"

	"codeshell/internal/app"
	"codeshell/internal/errors"
	"codeshell/internal/keymap"
	"codeshell/internal/tui"

	"github.com/spf13/cobra"
)

// NewKeysCmd lists the effective key bindings.
func NewKeysCmd() *cobra.Command {
	var defaultsOnly bool

	cmd := &cobra.Command{
		Use:   "keys",
		Short: "List key bindings",
		Long:  `List the built-in key bindings followed by the ones added in the configuration file. Bindings that cannot be loaded are reported and skipped. Chords a terminal cannot send are listed with the way to reach their action in the terminal UI.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := keymap.NewTable()
			if err := table.LoadDefaults(); err != nil {
				return err
			}
			if !defaultsOnly {
				bindings := make([]keymap.Binding, len(cfg.KeyBindings))
				for i, b := range cfg.KeyBindings {
					bindings[i] = keymap.Binding{Keys: b.Keys, Action: b.Action}
				}
				for _, err := range table.LoadUser(bindings) {
					fmt.Fprintf(cmd.ErrOrStderr(), "skipped (%s): %v\n", skipReason(err), err)
				}
			}

			menu := app.NewMenuBar(func() *keymap.Table { return table }, nil)
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CHORD\tACTION\tIN A TERMINAL")
			for _, e := range table.Entries() {
				alt := tui.Alternative(e.Chord, e.Action, menu)
				if alt == "" {
					alt = "-"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", keymap.FormatChord(e.Chord), e.Action, alt)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&defaultsOnly, "defaults", false, "only show the built-in bindings")
	return cmd
}

func skipReason(err error) string {
	switch {
	case errors.Is(err, errors.ErrInvalidChord):
		return "invalid chord"
	case errors.Is(err, errors.ErrUnknownAction):
		return "unknown action"
	case errors.IsConflict(err):
		return "conflict"
	default:
		return "error"
	}
}
