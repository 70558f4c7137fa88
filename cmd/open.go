package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcus/gridmenu/internal/demo"
	"github.com/marcus/gridmenu/internal/menufile"
	"github.com/marcus/gridmenu/pkg/menu"
)

var openCmd = &cobra.Command{
	Use:   "open <file.toml>",
	Short: "Run a menu described in a TOML file",
	Long: `Run a menu described in a TOML file and print the item picked.

Items may name an action: increment, change, append or delete. Geometry
flags override the file. Exits 1 when the menu is cancelled.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadMenuFile(cmd, args[0])
		if err != nil {
			return err
		}
		defer c.Release()

		index, err := runMenu(cmd, c)
		if err != nil {
			return err
		}

		printIndex, _ := cmd.Flags().GetBool("index")
		if printIndex {
			fmt.Fprintln(cmd.OutOrStdout(), index)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), c.Item(index))
		}
		return nil
	},
}

// loadMenuFile builds a config from path with the demo actions bound and
// the geometry flags applied.
func loadMenuFile(cmd *cobra.Command, path string) (*menu.Config, error) {
	mf, err := menufile.Load(path)
	if err != nil {
		return nil, err
	}

	c := menu.NewConfig(menu.Unset, menu.Unset)
	if err := mf.Apply(c, demo.Actions()); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	c.UserData = &demo.UserData{Length: c.Len()}
	applyGeometry(cmd.Flags(), c)
	return c, nil
}

func init() {
	openCmd.Flags().Bool("index", false, "print the position of the picked item instead of its text")
	addGeometryFlags(openCmd.Flags())
	rootCmd.AddCommand(openCmd)
}
