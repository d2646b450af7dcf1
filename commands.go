package main

import (
	"fmt"
	"io"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"ebiten-circles/app"
	"ebiten-circles/config"
	"ebiten-circles/data"
	"ebiten-circles/logging"
	"ebiten-circles/render"
)

type rootFlags struct {
	configPath string
	scenePath  string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	rootCmd := &cobra.Command{
		Use:          "circles",
		Short:        "Draw a circle at every entity position, moving them a fixed step per tick",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(flags)
		},
	}
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "KEY=VALUE file applied before the environment")
	rootCmd.PersistentFlags().StringVar(&flags.scenePath, "scene", "", "scene JSON file (default: built-in scene)")

	rootCmd.AddCommand(newSimulateCmd(flags))
	return rootCmd
}

func newSimulateCmd(flags *rootFlags) *cobra.Command {
	var (
		ticks  int
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:     "simulate",
		Short:   "Run frames without a window and print the final world state",
		Example: "circles simulate --ticks 20 --json",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if ticks < 0 {
				return eris.Errorf("ticks must not be negative, got %d", ticks)
			}
			cfg, logger, scene, err := setup(flags)
			if err != nil {
				return err
			}
			a, err := app.New(cfg, scene, logger)
			if err != nil {
				return err
			}
			if err := a.Run(ticks, render.NewLogBackend(logger)); err != nil {
				logger.Error().Err(err).Msg("simulation stopped")
				return err
			}
			return printSnapshot(cmd.OutOrStdout(), a.Snapshot(), asJSON)
		},
	}
	cmd.Flags().IntVar(&ticks, "ticks", 20, "number of frames to run")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the snapshot as JSON")
	return cmd
}

func runWindow(flags *rootFlags) error {
	cfg, logger, scene, err := setup(flags)
	if err != nil {
		return err
	}
	a, err := app.New(cfg, scene, logger)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle(cfg.WindowTitle)
	ebiten.SetTPS(cfg.TPS)
	if err := ebiten.RunGame(NewGame(a, cfg)); err != nil {
		logger.Error().Err(err).Msg("game loop stopped")
		return err
	}
	return nil
}

func setup(flags *rootFlags) (config.Config, zerolog.Logger, *data.Scene, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return cfg, zerolog.Nop(), nil, err
	}
	if flags.scenePath != "" {
		cfg.Scene = flags.scenePath
	}

	logger, err := logging.New(cfg, os.Stderr)
	if err != nil {
		return cfg, zerolog.Nop(), nil, err
	}

	var scene *data.Scene
	if cfg.Scene == "" {
		scene, err = data.DefaultScene()
	} else {
		scene, err = data.LoadScene(cfg.Scene)
	}
	if err != nil {
		logger.Error().Err(err).Msg("failed to load scene")
		return cfg, logger, nil, err
	}
	return cfg, logger, scene, nil
}

func printSnapshot(out io.Writer, snap data.WorldSnapshot, asJSON bool) error {
	if asJSON {
		raw, err := snap.MarshalIndent()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(raw))
		return err
	}
	fmt.Fprintf(out, "tick %d\n", snap.Tick)
	for _, e := range snap.Entities {
		line := fmt.Sprintf("entity %d", e.Entity)
		if e.Position != nil {
			line += fmt.Sprintf(" position=(%g, %g)", e.Position.X, e.Position.Y)
		}
		if e.Velocity != nil {
			line += fmt.Sprintf(" velocity=(%g, %g)", e.Velocity.X, e.Velocity.Y)
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}
