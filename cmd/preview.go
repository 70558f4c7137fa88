package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/marcus/gridmenu/pkg/cellgrid"
	"github.com/marcus/gridmenu/pkg/menu"
)

var previewCmd = &cobra.Command{
	Use:   "preview <file.toml>",
	Short: "Print the first frame of a menu file as plain text",
	Long: `Lay out a menu file for the terminal size (or --rows/--cols), draw its
first frame and print it without colour. Layout errors are reported as they
would be when running the menu.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadMenuFile(cmd, args[0])
		if err != nil {
			return err
		}

		rows, cols := terminalSize()
		if cmd.Flags().Changed("rows") {
			rows, _ = cmd.Flags().GetInt("rows")
		}
		if cmd.Flags().Changed("cols") {
			cols, _ = cmd.Flags().GetInt("cols")
		}

		out, layout, err := renderPreview(c, rows, cols)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		if verbose, _ := cmd.Flags().GetBool("layout"); verbose {
			fmt.Fprintf(cmd.OutOrStdout(), "LAYOUT y=%d x=%d height=%d width=%d header=%d footer=%d visible=%d\n",
				layout.Y, layout.X, layout.Height, layout.Width,
				layout.HeaderRows, layout.FooterRows, layout.VisibleRows)
		}
		return nil
	},
}

// terminalSize returns the size of stdout, or 24x80 when it is not a
// terminal.
func terminalSize() (rows, cols int) {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, h, err := term.GetSize(fd); err == nil && w > 0 && h > 0 {
			return h, w
		}
	}
	return 24, 80
}

// renderPreview draws one frame of c into a rows x cols grid and returns
// it as text with trailing blanks trimmed.
func renderPreview(c *menu.Config, rows, cols int) (string, menu.Layout, error) {
	grid := cellgrid.New(rows, cols)
	c.ScreenHeight, c.ScreenWidth = rows, cols
	c.Drawer = grid

	s, err := menu.Start(c)
	if err != nil {
		return "", menu.Layout{}, err
	}
	s.Frame()

	lines := strings.Split(grid.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n"), s.Layout(), nil
}

func init() {
	previewCmd.Flags().Int("rows", 0, "screen rows (default: terminal height)")
	previewCmd.Flags().Int("cols", 0, "screen columns (default: terminal width)")
	previewCmd.Flags().Bool("layout", false, "also print the resolved geometry")
	addGeometryFlags(previewCmd.Flags())
	rootCmd.AddCommand(previewCmd)
}
