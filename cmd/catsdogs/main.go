package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-go-golems/catsdogs/pkg/config"
	"github.com/go-go-golems/catsdogs/pkg/content"
	"github.com/go-go-golems/catsdogs/pkg/coordinator"
	"github.com/go-go-golems/catsdogs/pkg/display"
	"github.com/go-go-golems/catsdogs/pkg/journal"
	"github.com/go-go-golems/catsdogs/pkg/logging"
	"github.com/go-go-golems/catsdogs/pkg/tui"
	"github.com/go-go-golems/catsdogs/pkg/tui/models"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "catsdogs",
		Short:         "Toggle between cat facts and dog pictures and keep score",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, configPath)
			if err != nil {
				return err
			}
			return runScreen(cmd.Context(), cfg)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	config.AddFlags(root.PersistentFlags())

	root.AddCommand(newFetchCmd(&configPath))
	return root
}

func loadConfig(cmd *cobra.Command, path string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if err := cfg.ApplyFlags(cmd.Flags()); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

func runScreen(ctx context.Context, cfg config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	closer, err := logging.Setup(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	ps := gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 256}, logging.NewWatermillLogger(log.Logger))
	defer func() { _ = ps.Close() }()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fwd := &tui.JournalForwarder{Sub: ps}
	if err := fwd.Subscribe(ctx); err != nil {
		return err
	}

	coord := coordinator.New(ctx, coordinator.Options{
		Loader:       content.NewHTTPLoader(cfg.Endpoints(), cfg.HTTPTimeout),
		Materializer: display.NewHTTPMaterializer(cfg.HTTPTimeout, cfg.ImageMaxBytes),
		Policy:       cfg.StalePolicy(),
		Recorder:     journal.NewPublisher(ps),
	})
	defer coord.Close()

	p := tea.NewProgram(models.NewScreenModel(coord), tea.WithAltScreen(), tea.WithContext(ctx))

	log.Info().Str("cats", cfg.CatFactURL).Str("dogs", cfg.DogImageURL).Str("stale", cfg.StaleResults).Msg("starting screen")

	eg, egCtx := errgroup.WithContext(ctx)
	fwd.Send = p.Send
	eg.Go(func() error {
		return fwd.Run(egCtx)
	})
	eg.Go(func() error {
		defer cancel()
		_, err := p.Run()
		if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return errors.Wrap(err, "run screen")
		}
		return nil
	})
	return eg.Wait()
}
