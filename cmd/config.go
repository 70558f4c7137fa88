package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcus/gridmenu/internal/config"
	"github.com/marcus/gridmenu/pkg/menu"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change menu preferences",
	Long:  `Preferences live in .gridmenu/config.json under the working directory.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective preferences as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(getBaseDir())
		if err != nil {
			return err
		}

		palette := make(map[string]config.Colors)
		for slot, colors := range cfg.ResolvedPalette() {
			palette[slot.String()] = colors
		}
		bg := cfg.BackgroundOrDefault()
		effective := config.Config{
			Backend:          cfg.BackendOrDefault(),
			Blocking:         cfg.Blocking,
			ScrollIntervalMS: int(cfg.ScrollInterval().Milliseconds()),
			LogLevel:         cfg.LogLevel,
			Palette:          palette,
			Background:       &bg,
		}
		if effective.LogLevel == "" {
			effective.LogLevel = "info"
		}

		data, err := json.MarshalIndent(effective, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var configBackendCmd = &cobra.Command{
	Use:   "backend <tcell|tea>",
	Short: "Set the default terminal backend",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.SetBackend(getBaseDir(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "BACKEND %s\n", args[0])
		return nil
	},
}

var configColorCmd = &cobra.Command{
	Use:   "color <slot> [fg] [bg]",
	Short: "Set or clear the colours of a slot",
	Long: fmt.Sprintf(`Set the foreground and background of a slot. Colours are ANSI palette
indexes (0-255), names or #rrggbb; an empty string keeps the terminal default.

Slots: %v and %s. With --clear the default colours are restored.`, menu.Slots(), config.Background),
	Args: cobra.RangeArgs(1, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		baseDir := getBaseDir()
		slot := args[0]

		if reset, _ := cmd.Flags().GetBool("clear"); reset {
			if err := config.ClearColor(baseDir, slot); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "CLEARED %s\n", slot)
			return nil
		}

		var colors config.Colors
		if len(args) > 1 {
			colors.Fg = args[1]
		}
		if len(args) > 2 {
			colors.Bg = args[2]
		}
		if err := config.SetColor(baseDir, slot, colors); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "COLOR %s fg=%q bg=%q\n", slot, colors.Fg, colors.Bg)
		return nil
	},
}

var configScrollCmd = &cobra.Command{
	Use:   "scroll <milliseconds>",
	Short: "Set the pace of the label bounce and footer ticker",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var ms int
		if _, err := fmt.Sscanf(args[0], "%d", &ms); err != nil || ms < 0 {
			return fmt.Errorf("invalid interval %q", args[0])
		}

		baseDir := getBaseDir()
		cfg, err := config.Load(baseDir)
		if err != nil {
			return err
		}
		cfg.ScrollIntervalMS = ms
		if err := config.Save(baseDir, cfg); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "SCROLL %s\n", cfg.ScrollInterval())
		return nil
	},
}

func init() {
	configColorCmd.Flags().Bool("clear", false, "restore the default colours of the slot")
	configCmd.AddCommand(configShowCmd, configBackendCmd, configColorCmd, configScrollCmd)
	rootCmd.AddCommand(configCmd)
}
