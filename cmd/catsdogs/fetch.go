package main

import (
	"context"
	"fmt"

	"github.com/go-go-golems/catsdogs/pkg/content"
	"github.com/go-go-golems/catsdogs/pkg/display"
	"github.com/go-go-golems/catsdogs/pkg/logging"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newFetchCmd(configPath *string) *cobra.Command {
	var (
		render bool
		width  int
		height int
	)

	cmd := &cobra.Command{
		Use:       "fetch cats|dogs",
		Short:     "Load one item and print it",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"cats", "dogs"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, *configPath)
			if err != nil {
				return err
			}
			if err := logging.Console(cfg.LogLevel); err != nil {
				return err
			}

			cat, err := content.ParseCategory(args[0])
			if err != nil {
				return err
			}
			if !cat.Loadable() {
				return errors.Errorf("cannot fetch category %s", cat)
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			loader := content.NewHTTPLoader(cfg.Endpoints(), cfg.HTTPTimeout)
			res := loader.Fetch(ctx, cat)

			out := cmd.OutOrStdout()
			switch res.Kind {
			case content.ResultText:
				_, _ = fmt.Fprintln(out, res.Value)
			case content.ResultImage:
				_, _ = fmt.Fprintln(out, res.Value)
				if !render {
					return nil
				}
				img, err := display.NewHTTPMaterializer(cfg.HTTPTimeout, cfg.ImageMaxBytes).Materialize(ctx, res.Value)
				if err != nil {
					_, _ = fmt.Fprintln(out, display.ImageFailureText)
					return errors.Wrap(err, "materialize image")
				}
				_, _ = fmt.Fprintln(out, display.RenderHalfBlocks(img, width, height))
			default:
				_, _ = fmt.Fprintln(out, cat.FailureText())
				return errors.Wrap(res.Err, "fetch")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&render, "render", false, "Render fetched images in the terminal")
	cmd.Flags().IntVar(&width, "width", 60, "Render width in cells")
	cmd.Flags().IntVar(&height, "height", 20, "Render height in cells")
	return cmd
}
