package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marcus/gridmenu/pkg/menu"
)

var (
	version string
	baseDir string
)

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

var rootCmd = &cobra.Command{
	Use:   "gridmenu",
	Short: "Scrolling text menus for the terminal",
	Long: `gridmenu - Show a scrolling, keyboard-driven menu in the terminal and report the choice.

Pick from arguments or piped lines, run menus described in TOML files, or try the demo.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command. A cancelled menu exits 1 without a
// message; other errors are printed first.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, menu.ErrCancelled) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initBaseDir)

	rootCmd.PersistentFlags().String("backend", "", "terminal backend: tcell or tea (default from config, else tcell)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error (default from config, else info)")
	rootCmd.PersistentFlags().Bool("blocking", false, "wait for keys instead of polling; pauses scrolling between keystrokes (tcell only)")
}

func initBaseDir() {
	var err error
	baseDir, err = os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot determine working directory: %v\n", err)
		os.Exit(1)
	}
}

// getBaseDir returns the directory holding .gridmenu
func getBaseDir() string {
	return baseDir
}
