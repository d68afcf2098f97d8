package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"slotgrid/config"
	"slotgrid/grid"
	"slotgrid/keymap"
	"slotgrid/logging"
	"slotgrid/tcellui"
	"slotgrid/tui"
)

var (
	cfgFile   string
	backend   string
	altScreen bool
	logFile   string
	logLevel  string
)

var logCtx = logging.PackageCtx("cmd")

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "slotgrid",
	Short: "Pick and paint slots on a 3x3 grid",
	Long: `slotgrid shows three columns of three slots in the terminal.
Move between slots with the arrow keys and paint the selected slot
white or black. The command panel on the right lists every key.`,
	PersistentPreRunE: bindFlags,
	SilenceUsage:      true,
	RunE:              run,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.slotgrid.toml)")

	rootCmd.Flags().StringVarP(&backend, "backend", "B", config.BackendBubbletea,
		"Terminal backend: bubbletea or tcell")
	rootCmd.Flags().BoolVar(&altScreen, "alt-screen", true,
		"Draw on the alternate screen (bubbletea backend)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"Write logs to this file; logging is off when empty")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"Log level: debug, info, warn or error")
}

func initConfig() {
	if err := config.Init(viper.GetViper(), cfgFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading config: %v\n", err)
		os.Exit(1)
	}
}

// set values to the PFlag variables from config, if they are set. Priority is still given to explicitly provided CLI flags.
func bindFlags(cmd *cobra.Command, _ []string) error {
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// Config keys drop the hyphens of the flag names.
		configName := strings.ReplaceAll(f.Name, "-", "")
		if configName == "config" {
			return
		}

		if f.Changed {
			viper.Set(configName, f.Value.String())
			return
		}
		if viper.IsSet(configName) {
			if err := cmd.Flags().Set(f.Name, viper.GetString(configName)); err != nil && bindErr == nil {
				bindErr = fmt.Errorf("flag %s: %w", f.Name, err)
			}
		}
	})
	return bindErr
}

func run(_ *cobra.Command, _ []string) (err error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}

	closeLog, err := logging.Setup(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closeInto(&err, closeLog, "log file")

	slog.InfoContext(logCtx, "starting",
		"backend", cfg.Backend, "altscreen", cfg.AltScreen, "config", viper.ConfigFileUsed())

	keys, err := keymap.New(cfg.Keys)
	if err != nil {
		return err
	}
	g := grid.New()

	switch cfg.Backend {
	case config.BackendTcell:
		err = runTcell(g, keys, cfg.Colors)
	default:
		m := tui.New(g, keys, tui.NewStyles(cfg.Colors))
		err = tui.Run(m, cfg.AltScreen)
	}
	if err != nil {
		slog.ErrorContext(logCtx, "terminal failure", "error", err)
		return fmt.Errorf("running %s backend: %w", cfg.Backend, err)
	}

	slog.InfoContext(logCtx, "quit")
	return nil
}

// closeInto runs closeFn and joins its failure into *err.
func closeInto(err *error, closeFn func() error, what string) {
	if cerr := closeFn(); cerr != nil {
		*err = errors.Join(*err, fmt.Errorf("closing %s: %w", what, cerr))
	}
}

func runTcell(g *grid.Grid, keys keymap.Map, colors config.Colors) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	app, err := tcellui.Start(screen, g, keys, colors)
	if err != nil {
		return err
	}
	defer app.Close()

	return app.Loop()
}
