package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcus/gridmenu/internal/demo"
	"github.com/marcus/gridmenu/pkg/menu"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the showcase menu",
	Long: `Run the showcase menu. Its items rewrite themselves, toggle their
neighbours, append and delete items. Selecting the first item ends the demo.

With --simple a plain four-item list is shown instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		simple, _ := cmd.Flags().GetBool("simple")

		var c *menu.Config
		if simple {
			c = demo.NewSimple(menu.Unset, menu.Unset)
		} else {
			c, _ = demo.New(menu.Unset, menu.Unset)
		}
		defer c.Release()

		index, err := runMenu(cmd, c)
		fmt.Fprintln(cmd.OutOrStdout(), demo.Report(index))
		if err != nil && !menu.IsCancelled(err) {
			return err
		}
		return nil
	},
}

func init() {
	demoCmd.Flags().Bool("simple", false, "show the plain pick list")
	rootCmd.AddCommand(demoCmd)
}
