package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/atomicstack/devmenu/internal/menu"
	"github.com/atomicstack/devmenu/internal/property"
)

var (
	bold  = color.New(color.Bold).SprintFunc()
	faint = color.New(color.Faint).SprintFunc()
)

func addTree(topLevel *cobra.Command, onStart StartHook) {
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the menu with the stored value of every setting.",
		Example: `
devmenu tree
devmenu tree --storage sqlite
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := openSession(cmd, args, onStart)
			if err != nil {
				return err
			}
			defer s.Close()
			_, err = fmt.Fprintln(cmd.OutOrStdout(), treeTable(s.Tree))
			return err
		},
	}
	topLevel.AddCommand(cmd)
}

func treeTable(tree *menu.Tree) *uitable.Table {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("ITEM"), bold("ID"), bold("TYPE"), bold("VALUE"), bold("SLOT"))
	for _, it := range tree.Items() {
		name := strings.Repeat("  ", tree.Depth(it)) + it.Name()
		kind, value, slot := it.Kind().String(), "", ""
		if p := it.Property(); p != nil {
			kind = p.Kind().String()
			value = property.Text(p)
			slot = faint("-")
			if s := property.SlotOf(p); s != property.NoPersist {
				slot = fmt.Sprintf("0x%02X", int(s))
			}
		}
		tbl.AddRow(name, it.ID(), kind, value, slot)
	}
	return tbl
}
