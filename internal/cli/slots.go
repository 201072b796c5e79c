package cli

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/atomicstack/devmenu/internal/format/table"
	"github.com/atomicstack/devmenu/internal/menu"
	"github.com/atomicstack/devmenu/internal/property"
)

func addSlots(topLevel *cobra.Command, onStart StartHook) {
	cmd := &cobra.Command{
		Use:   "slots",
		Short: "Dump the storage map: address, width and raw bytes of every stored setting.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := openSession(cmd, args, onStart)
			if err != nil {
				return err
			}
			defer s.Close()
			tbl, err := slotTable(s.Tree, s.Store)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), tbl)
			return err
		},
	}
	topLevel.AddCommand(cmd)
}

func slotTable(tree *menu.Tree, store property.Backend) (*table.Table, error) {
	var items []*menu.Item
	for _, it := range tree.Items() {
		if p := it.Property(); p != nil && property.SlotOf(p) != property.NoPersist {
			items = append(items, it)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return property.SlotOf(items[i].Property()) < property.SlotOf(items[j].Property())
	})

	tbl := table.New(table.AlignRight, table.AlignRight)
	tbl.AddRow(bold("ADDR"), bold("SIZE"), bold("ID"), bold("BYTES"), bold("VALUE"))
	for _, it := range items {
		p := it.Property()
		width := property.Width(p)
		raw := faint("unset")
		data, err := store.Read(property.SlotOf(p), width)
		switch {
		case errors.Is(err, property.ErrUnset):
		case err != nil:
			return nil, fmt.Errorf("%s: %w", it.ID(), err)
		default:
			raw = fmt.Sprintf("% X", data)
		}
		tbl.AddRow(fmt.Sprintf("0x%02X", int(property.SlotOf(p))), fmt.Sprint(width), it.ID(), raw, property.Text(p))
	}
	return tbl, nil
}
