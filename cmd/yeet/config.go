package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/NaxiosMIV/Yeet/internal/game"
	"github.com/NaxiosMIV/Yeet/internal/netcfg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	server     string
	name       string
	room       string
	fullscreen bool
	verbose    bool
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.server) == "" {
		return errors.New("--server must not be empty")
	}
	if len(c.room) > 0 && len(c.room) != 4 {
		return fmt.Errorf("invalid room code (must be 4 characters): %q", c.room)
	}
	return nil
}

func newCmd(cfg *Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("YEET")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "yeet",
		Short:         "Desktop client for the Yeet word-placement game.",
		Args:          cobra.ExactArgs(0),
		Version:       releaseVersion,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return run(cfg)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&cfg.server, "server", "s", "http://localhost:8000", "game server origin (env: YEET_SERVER)")
	fs.StringVarP(&cfg.name, "name", "n", "", "player name, prefilled from your account when empty (env: YEET_NAME)")
	fs.StringVarP(&cfg.room, "room", "r", "", "room code to join directly (env: YEET_ROOM)")
	fs.BoolVar(&cfg.fullscreen, "fullscreen", false, "start in fullscreen (env: YEET_FULLSCREEN)")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "display additional output (env: YEET_VERBOSE)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("yeet v{{.Version}}\n")

	return cmd
}

func run(cfg *Config) error {
	netcfg.SetServer(cfg.server)
	game.SetVerbose(cfg.verbose)

	ebiten.SetWindowSize(1100, 760)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Yeet")
	ebiten.SetFullscreen(cfg.fullscreen)

	return ebiten.RunGame(game.New(game.Options{
		Name: strings.TrimSpace(cfg.name),
		Room: strings.ToUpper(strings.TrimSpace(cfg.room)),
	}))
}
