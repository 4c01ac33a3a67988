package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/BrandonKowalski/gxgui/pkg/gxgui/host"
	"github.com/BrandonKowalski/gxgui/pkg/gxgui/i18n"
)

var (
	cfgFile     string
	logLevel    string
	logPath     string
	locale      string
	mappingPath string
	themePath   string
	evdevPath   string
	savesDir    string
	fullscreen  bool
)

// rootCmd runs the demo menus.
var rootCmd = &cobra.Command{
	Use:   "gxdemo",
	Short: "Browse options and save slots with gxgui",
	Long: `gxdemo opens an options menu and a save browser driven by a game
controller, the keyboard or the mouse. Saves are listed from a directory.`,
	PersistentPreRun: bindFlags,
	SilenceUsage:     true,
	RunE:             run,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.gxdemo.toml)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")
	rootCmd.Flags().StringVar(&logPath, "log-path", "", "log file, in addition to stdout")
	rootCmd.Flags().StringVar(&locale, "locale", "", "language for labels (default from GXGUI_LOCALE or LANG)")
	rootCmd.Flags().StringVar(&mappingPath, "mapping", "", "input mapping TOML file")
	rootCmd.Flags().StringVar(&themePath, "theme", "", "theme TOML file")
	rootCmd.Flags().StringVar(&evdevPath, "evdev", "", "raw key device, e.g. /dev/input/event1")
	rootCmd.Flags().StringVarP(&savesDir, "saves", "s", ".", "directory holding .srm and .gcs saves")
	rootCmd.Flags().BoolVar(&fullscreen, "fullscreen", false, "open a fullscreen window")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("toml")
		viper.SetConfigName(".gxdemo")
	}
	viper.SetEnvPrefix("gxdemo")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Printf("Error reading config file: %s\n", err)
			os.Exit(1)
		}
	}
}

// bindFlags copies config values into flags the user did not set. Flags
// given on the command line win.
func bindFlags(cmd *cobra.Command, _ []string) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			return
		}
		for _, name := range []string{f.Name, strings.ReplaceAll(f.Name, "-", "")} {
			if !viper.IsSet(name) {
				continue
			}
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", viper.Get(name))); err != nil {
				log.Printf("Error setting flag %s: %s\n", f.Name, err)
			}
			return
		}
	})
}

func run(cmd *cobra.Command, _ []string) error {
	opts := host.Options{
		Title:       "gxdemo",
		LogPath:     logPath,
		LogLevel:    logLevel,
		MappingPath: mappingPath,
		ThemePath:   themePath,
		EvdevPath:   evdevPath,
	}
	opts.WindowOptions.FullscreenDesktop = fullscreen

	catalog, err := i18n.NewCatalog()
	if err != nil {
		return err
	}
	lang := locale
	if lang == "" {
		lang = i18n.DetectLocale()
	}

	if err := host.Init(opts); err != nil {
		return fmt.Errorf("init: %w", err)
	}
	defer host.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	app := newDemo(catalog, lang, savesDir)
	host.GetLogger().Info("Starting demo", "locale", lang, "saves", savesDir)

	err = app.router(menuRunners{
		options: host.OptionMenu,
		saves:   host.SaveMenu,
	}).Run(ctx, MenuOptions, nil)
	if errors.Is(err, host.ErrQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
