package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/adrianliechti/oai/config"
	"github.com/adrianliechti/oai/pkg/client"
	"github.com/adrianliechti/oai/pkg/otel"
	"github.com/adrianliechti/oai/pkg/pretty"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	godotenv.Load()

	ctx := context.Background()

	shutdown, err := otel.Setup(ctx, "oai")

	if err != nil {
		fmt.Fprintln(os.Stderr, "telemetry:", err)
		os.Exit(1)
	}

	err = newRootCmd().ExecuteContext(ctx)

	shutdown(ctx)

	if err != nil {
		os.Exit(1)
	}
}

type app struct {
	configPath string

	debug   bool
	padding int

	client *client.Client
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "oai",
		Short: "oai is a command line client for the OpenAI v1 API",

		SilenceUsage: true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.debug && !otel.EnableTelemetry {
				slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})))
			}

			cfg, err := config.Parse(a.configPath)

			if err != nil {
				return err
			}

			a.client = cfg.Client()

			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", os.Getenv("OAI_CONFIG"), "configuration file")
	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "log every exchange to stderr")
	rootCmd.PersistentFlags().IntVar(&a.padding, "padding", pretty.DefaultPadding, "indentation of printed results")

	rootCmd.AddCommand(
		a.modelsCmd(),
		a.createCmd("completions", "Create a completion", a.completions),
		a.createCmd("chat", "Create a chat completion", a.chat),
		a.createCmd("edits", "Create an edit", a.edits),
		a.imagesCmd(),
		a.createCmd("embeddings", "Create embeddings", a.embeddings),
		a.audioCmd(),
		a.filesCmd(),
		a.fineTunesCmd(),
		a.createCmd("moderations", "Classify content against the usage policies", a.moderations),
	)

	return rootCmd
}

func (a *app) print(w io.Writer, value client.Value) {
	pretty.Fprint(w, value, pretty.WithPadding(a.padding))
}
