package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/atomicstack/devmenu/internal/logging/events"
	"github.com/atomicstack/devmenu/internal/menu"
	"github.com/atomicstack/devmenu/internal/property"
)

var (
	errNoMatch   = errors.New("no matching setting")
	errAmbiguous = errors.New("query matches more than one setting")
)

func addGet(topLevel *cobra.Command, onStart StartHook) {
	cmd := &cobra.Command{
		Use:   "get <setting>...",
		Short: "Print stored settings. Settings are matched by id or fuzzy name.",
		Example: `
devmenu get display:contrast
devmenu get baud
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := openSession(cmd, nil, onStart)
			if err != nil {
				return err
			}
			defer s.Close()
			out := cmd.OutOrStdout()
			for _, query := range args {
				for _, it := range properties(s.Tree.Search(query)) {
					fmt.Fprintf(out, "%s\t%s\n", it.ID(), property.Text(it.Property()))
				}
			}
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}

func addSet(topLevel *cobra.Command, onStart StartHook) {
	cmd := &cobra.Command{
		Use:   "set <setting> <value>",
		Short: "Write one setting to storage. Out-of-range values are clamped.",
		Example: `
devmenu set display:contrast 40
devmenu set modbus:baud 19200
devmenu set sensor:calib 1.25
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := openSession(cmd, nil, onStart)
			if err != nil {
				return err
			}
			defer s.Close()
			it, err := resolveOne(s.Tree, args[0])
			if err != nil {
				return err
			}
			if it.ReadOnly() {
				return fmt.Errorf("%s: setting is read-only", it.ID())
			}
			p := it.Property()
			if err := property.SetText(p, args[1]); err != nil {
				return fmt.Errorf("%s: %w", it.ID(), err)
			}
			if property.SlotOf(p) == property.NoPersist {
				return fmt.Errorf("%s: setting is not stored", it.ID())
			}
			if err := property.Store(p, s.Store); err != nil {
				return err
			}
			events.Property.Set(it.ID(), args[1], property.Text(p))
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", it.ID(), property.Text(p))
			return err
		},
	}
	topLevel.AddCommand(cmd)
}

// resolveOne picks the single property a query names: an exact id, or the
// only fuzzy match.
func resolveOne(tree *menu.Tree, query string) (*menu.Item, error) {
	matches := properties(tree.Search(query))
	switch {
	case len(matches) == 0:
		return nil, fmt.Errorf("%w: %q", errNoMatch, query)
	case len(matches) == 1 || matches[0].ID() == query:
		return matches[0], nil
	default:
		ids := make([]string, 0, len(matches))
		for _, it := range matches {
			ids = append(ids, it.ID())
		}
		return nil, fmt.Errorf("%w: %q (%s)", errAmbiguous, query, strings.Join(ids, ", "))
	}
}

func properties(items []*menu.Item) []*menu.Item {
	out := items[:0:0]
	for _, it := range items {
		if it.Kind() == menu.KindProperty {
			out = append(out, it)
		}
	}
	return out
}
