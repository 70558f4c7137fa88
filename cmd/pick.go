package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/marcus/gridmenu/internal/menufile"
	"github.com/marcus/gridmenu/pkg/menu"
)

var errNoItems = errors.New("no items: pass them as arguments or pipe them on stdin")

var pickCmd = &cobra.Command{
	Use:   "pick [item...]",
	Short: "Pick one of the given items",
	Long: `Show the items in a menu and print the one picked.

Items come from the arguments, or one per line on stdin when there are none.
Prints the chosen item, or its position in the input with --index.
Exits 1 when the menu is cancelled.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		interactive := term.IsTerminal(int(os.Stdin.Fd()))
		items, err := readItems(args, os.Stdin, interactive)
		if err != nil {
			return err
		}

		c, indexes, err := buildPick(cmd, items)
		if err != nil {
			return err
		}

		if path, _ := cmd.Flags().GetString("save"); path != "" {
			if err := menufile.Save(path, menufile.FromConfig(c)); err != nil {
				return fmt.Errorf("save menu: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "SAVED %s\n", path)
			return nil
		}

		index, err := runMenu(cmd, c)
		if err != nil {
			return err
		}

		printIndex, _ := cmd.Flags().GetBool("index")
		printPick(cmd.OutOrStdout(), items, indexes[index], printIndex)
		return nil
	},
}

// readItems returns args, or the non-blank lines of in when there are no
// args and in is not a terminal.
func readItems(args []string, in io.Reader, interactive bool) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if interactive {
		return nil, errNoItems
	}

	var items []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		items = append(items, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read items: %w", err)
	}
	if len(items) == 0 {
		return nil, errNoItems
	}
	return items, nil
}

// buildPick turns items and the pick flags into a menu. The returned
// slice maps each menu row back to its position in items.
func buildPick(cmd *cobra.Command, items []string) (*menu.Config, []int, error) {
	flags := cmd.Flags()
	filter, _ := flags.GetString("filter")
	disabled, _ := flags.GetIntSlice("disabled")

	for _, d := range disabled {
		if d < 0 || d >= len(items) {
			return nil, nil, fmt.Errorf("--disabled %d: no such item (have %d)", d, len(items))
		}
	}

	shown := items
	indexes := make([]int, len(items))
	for i := range indexes {
		indexes[i] = i
	}
	if filter != "" {
		matches := fuzzy.Find(filter, items)
		if len(matches) == 0 {
			return nil, nil, fmt.Errorf("no items match %q", filter)
		}
		shown = make([]string, len(matches))
		indexes = make([]int, len(matches))
		for i, m := range matches {
			shown[i] = m.Str
			indexes[i] = m.Index
		}
	}

	var states []menu.State
	if len(disabled) > 0 {
		states = make([]menu.State, len(shown))
		for i, orig := range indexes {
			if slices.Contains(disabled, orig) {
				states[i] = menu.Disabled
			}
		}
	}

	c := menu.NewConfig(menu.Unset, menu.Unset, shown...)
	c.SetStates(states)
	title, _ := flags.GetString("title")
	footer, _ := flags.GetString("footer")
	c.SetTitle(title)
	c.SetFooter(footer)
	applyGeometry(cmd.Flags(), c)
	return c, indexes, nil
}

func printPick(w io.Writer, items []string, index int, printIndex bool) {
	if printIndex {
		fmt.Fprintln(w, index)
		return
	}
	fmt.Fprintln(w, items[index])
}

func init() {
	pickCmd.Flags().String("title", "", "title shown above the items")
	pickCmd.Flags().String("footer", "", "footer ticker scrolled below the items")
	pickCmd.Flags().IntSlice("disabled", nil, "positions of items to show but not allow picking")
	pickCmd.Flags().StringP("filter", "f", "", "only show items fuzzy-matching this pattern, best first")
	pickCmd.Flags().Bool("index", false, "print the position of the picked item instead of its text")
	pickCmd.Flags().String("save", "", "write the menu to a TOML file instead of showing it")
	addGeometryFlags(pickCmd.Flags())
	rootCmd.AddCommand(pickCmd)
}
