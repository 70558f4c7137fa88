package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/marcus/gridmenu/internal/config"
	"github.com/marcus/gridmenu/internal/logging"
	"github.com/marcus/gridmenu/pkg/menu"
	"github.com/marcus/gridmenu/pkg/screen"
	"github.com/marcus/gridmenu/pkg/tui"
)

// settings is what a menu run takes from the config file and the
// persistent flags. Flags win.
type settings struct {
	backend        string
	blocking       bool
	level          slog.Level
	scrollInterval time.Duration
	palette        map[menu.ColorSlot]config.Colors
	background     config.Colors
}

func loadSettings(cmd *cobra.Command, baseDir string) (*settings, error) {
	cfg, err := config.Load(baseDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	st := &settings{
		backend:        cfg.BackendOrDefault(),
		blocking:       cfg.Blocking,
		scrollInterval: cfg.ScrollInterval(),
		palette:        cfg.ResolvedPalette(),
		background:     cfg.BackgroundOrDefault(),
	}

	flags := cmd.Flags()
	if flags.Changed("backend") {
		st.backend, _ = flags.GetString("backend")
	}
	if flags.Changed("blocking") {
		st.blocking, _ = flags.GetBool("blocking")
	}
	levelName := cfg.LogLevel
	if flags.Changed("log-level") {
		levelName, _ = flags.GetString("log-level")
	}

	if st.level, err = logging.ParseLevel(levelName); err != nil {
		return nil, err
	}
	if st.backend != config.BackendTcell && st.backend != config.BackendTea {
		return nil, fmt.Errorf("unknown backend %q (want %s or %s)", st.backend, config.BackendTcell, config.BackendTea)
	}
	return st, nil
}

// runMenu shows c on the configured backend and returns the selected
// index, or a negative status with its error.
func runMenu(cmd *cobra.Command, c *menu.Config) (int, error) {
	baseDir := getBaseDir()

	st, err := loadSettings(cmd, baseDir)
	if err != nil {
		return int(menu.StatusCancelled), err
	}

	logger, closer, err := logging.Open(baseDir, st.level)
	if err != nil {
		return int(menu.StatusCancelled), fmt.Errorf("open log: %w", err)
	}
	defer closer.Close()

	c.Logger = logger
	c.ScrollInterval = st.scrollInterval
	logger.Info("menu opened", "command", cmd.Name(), "backend", st.backend, "items", c.Len())

	var index int
	switch st.backend {
	case config.BackendTea:
		index, err = runTea(c, st)
	default:
		index, err = runTcell(c, st, logger)
	}

	if err != nil {
		logger.Info("menu closed", "status", int(menu.StatusOf(err)), "err", err)
	} else {
		logger.Info("menu closed", "index", index)
	}
	return index, err
}

func runTcell(c *menu.Config, st *settings, logger *slog.Logger) (int, error) {
	palette := make(screen.Palette, len(st.palette))
	for slot, colors := range st.palette {
		palette[slot] = screen.Style(colors.Fg, colors.Bg)
	}

	scr, err := screen.Open(
		screen.WithPalette(palette),
		screen.WithBackground(screen.Style(st.background.Fg, st.background.Bg)),
		screen.WithBlocking(st.blocking),
		screen.WithLogger(logger),
	)
	if err != nil {
		return int(menu.StatusCancelled), err
	}
	defer scr.Close()

	scr.Bind(c)
	return menu.Run(c)
}

func runTea(c *menu.Config, st *settings) (int, error) {
	styles := tui.DefaultStyles()
	styles.Background = tui.NewStyle(st.background.Fg, st.background.Bg)
	for slot, colors := range st.palette {
		styles.Slots[slot] = tui.NewStyle(colors.Fg, colors.Bg)
	}

	m := tui.New(c, tui.WithStyles(styles))
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	// Items may have been piped in; read keys from the terminal instead.
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		opts = append(opts, tea.WithInputTTY())
	}
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return int(menu.StatusCancelled), fmt.Errorf("run program: %w", err)
	}
	return m.Result()
}
