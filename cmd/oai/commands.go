package main

import (
	"context"
	"fmt"
	"mime"
	"os"

	"github.com/adrianliechti/oai/pkg/client"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type createFunc func(ctx context.Context, body any, opts ...client.RequestOption) (client.Value, error)

func (a *app) completions(ctx context.Context, body any, opts ...client.RequestOption) (client.Value, error) {
	return a.client.Completions.New(ctx, body, opts...)
}

func (a *app) chat(ctx context.Context, body any, opts ...client.RequestOption) (client.Value, error) {
	return a.client.ChatCompletions.New(ctx, body, opts...)
}

func (a *app) edits(ctx context.Context, body any, opts ...client.RequestOption) (client.Value, error) {
	return a.client.Edits.New(ctx, body, opts...)
}

func (a *app) embeddings(ctx context.Context, body any, opts ...client.RequestOption) (client.Value, error) {
	return a.client.Embeddings.New(ctx, body, opts...)
}

func (a *app) moderations(ctx context.Context, body any, opts ...client.RequestOption) (client.Value, error) {
	return a.client.Moderations.New(ctx, body, opts...)
}

// createCmd builds a command that sends a json body to a create endpoint.
func (a *app) createCmd(use, short string, create createFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := readBody(cmd)

			if err != nil {
				return err
			}

			result, err := create(cmd.Context(), body)

			if err != nil {
				return err
			}

			a.print(cmd.OutOrStdout(), result)
			return nil
		},
	}

	addBodyFlags(cmd)

	return cmd
}

// idCmd builds a command calling fn with its single argument.
func (a *app) idCmd(use, short string, fn func(ctx context.Context, id string, opts ...client.RequestOption) (client.Value, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := fn(cmd.Context(), args[0])

			if err != nil {
				return err
			}

			a.print(cmd.OutOrStdout(), result)
			return nil
		},
	}
}

func (a *app) listCmd(short string, fn func(ctx context.Context, opts ...client.RequestOption) (client.Value, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: short,
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := fn(cmd.Context())

			if err != nil {
				return err
			}

			a.print(cmd.OutOrStdout(), result)
			return nil
		},
	}
}

func (a *app) modelsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "models",
		Short: "List, retrieve and delete models",
	}

	cmd.AddCommand(
		a.listCmd("List the available models", func(ctx context.Context, opts ...client.RequestOption) (client.Value, error) {
			return a.client.Models.List(ctx, opts...)
		}),
		a.idCmd("get MODEL", "Retrieve a model", func(ctx context.Context, id string, opts ...client.RequestOption) (client.Value, error) {
			return a.client.Models.Get(ctx, id, opts...)
		}),
		a.idCmd("delete MODEL", "Delete a fine-tuned model", func(ctx context.Context, id string, opts ...client.RequestOption) (client.Value, error) {
			return a.client.Models.Delete(ctx, id, opts...)
		}),
	)

	return cmd
}

func (a *app) imagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "images",
		Short: "Generate, edit and vary images",
	}

	generateCmd := a.createCmd("generate", "Create an image from a prompt", func(ctx context.Context, body any, opts ...client.RequestOption) (client.Value, error) {
		return a.client.Images.Generate(ctx, body, opts...)
	})

	editCmd := &cobra.Command{
		Use:   "edit IMAGE",
		Short: "Edit an image given a prompt",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			prompt, _ := cmd.Flags().GetString("prompt")

			options, err := imageOptions(cmd)

			if err != nil {
				return err
			}

			result, err := a.client.Images.Edit(cmd.Context(), args[0], prompt, options)

			if err != nil {
				return err
			}

			a.print(cmd.OutOrStdout(), result)
			return nil
		},
	}

	editCmd.Flags().StringP("prompt", "p", "", "description of the desired image")
	editCmd.Flags().String("mask", "", "mask image marking the areas to edit")
	editCmd.MarkFlagRequired("prompt")
	addImageFlags(editCmd)

	variationCmd := &cobra.Command{
		Use:   "variation IMAGE",
		Short: "Create variations of an image",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			options, err := imageOptions(cmd)

			if err != nil {
				return err
			}

			result, err := a.client.Images.Variation(cmd.Context(), args[0], options)

			if err != nil {
				return err
			}

			a.print(cmd.OutOrStdout(), result)
			return nil
		},
	}

	addImageFlags(variationCmd)

	cmd.AddCommand(generateCmd, editCmd, variationCmd)

	return cmd
}

func addImageFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("n", "n", 1, "number of images")
	cmd.Flags().String("size", "", "image size, e.g. 1024x1024")
	cmd.Flags().String("user", "", "end-user identifier")
}

// imageOptions collects only the flags that were given on the command line.
func imageOptions(cmd *cobra.Command) (client.ImageOptions, error) {
	options := client.NewImageOptions()
	flags := cmd.Flags()

	if flags.Lookup("mask") != nil && flags.Changed("mask") {
		mask, _ := flags.GetString("mask")
		options = options.WithMask(mask)
	}

	if flags.Changed("n") {
		n, err := flags.GetInt("n")

		if err != nil {
			return options, err
		}

		options = options.WithN(n)
	}

	if flags.Changed("size") {
		size, _ := flags.GetString("size")
		options = options.WithSize(size)
	}

	if flags.Changed("user") {
		user, _ := flags.GetString("user")
		options = options.WithUser(user)
	}

	return options, nil
}

func (a *app) audioCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audio",
		Short: "Transcribe and translate audio",
	}

	transcribeCmd := &cobra.Command{
		Use:   "transcribe FILE",
		Short: "Transcribe audio into the input language",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			model, _ := cmd.Flags().GetString("model")

			result, err := a.client.Audio.Transcribe(cmd.Context(), args[0], model, audioOptions(cmd))

			if err != nil {
				return err
			}

			a.print(cmd.OutOrStdout(), result)
			return nil
		},
	}

	addAudioFlags(transcribeCmd)
	transcribeCmd.Flags().String("language", "", "language of the input audio in ISO-639-1")

	translateCmd := &cobra.Command{
		Use:   "translate FILE",
		Short: "Translate audio into English",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			model, _ := cmd.Flags().GetString("model")

			result, err := a.client.Audio.Translate(cmd.Context(), args[0], model, audioOptions(cmd))

			if err != nil {
				return err
			}

			a.print(cmd.OutOrStdout(), result)
			return nil
		},
	}

	addAudioFlags(translateCmd)

	cmd.AddCommand(transcribeCmd, translateCmd)

	return cmd
}

func addAudioFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("model", "m", "whisper-1", "model id")
	cmd.Flags().StringP("prompt", "p", "", "text to guide the model's style")
	cmd.Flags().Float64P("temperature", "t", 0, "sampling temperature")
}

func audioOptions(cmd *cobra.Command) client.AudioOptions {
	options := client.NewAudioOptions()
	flags := cmd.Flags()

	if flags.Changed("prompt") {
		prompt, _ := flags.GetString("prompt")
		options = options.WithPrompt(prompt)
	}

	if flags.Changed("temperature") {
		temperature, _ := flags.GetFloat64("temperature")
		options = options.WithTemperature(temperature)
	}

	if flags.Lookup("language") != nil && flags.Changed("language") {
		language, _ := flags.GetString("language")
		options = options.WithLanguage(language)
	}

	return options
}

func (a *app) filesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "files",
		Short: "Manage uploaded files",
	}

	uploadCmd := &cobra.Command{
		Use:   "upload FILE",
		Short: "Upload a file",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			purpose, _ := cmd.Flags().GetString("purpose")

			result, err := a.client.Files.Upload(cmd.Context(), args[0], purpose)

			if err != nil {
				return err
			}

			a.print(cmd.OutOrStdout(), result)
			return nil
		},
	}

	uploadCmd.Flags().String("purpose", "fine-tune", "intended purpose of the file")

	downloadCmd := &cobra.Command{
		Use:   "download FILE_ID",
		Short: "Save the raw content of a file",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")

			resp, err := a.client.Files.Download(cmd.Context(), args[0])

			if err != nil {
				return err
			}

			if resp.StatusCode >= 400 {
				return fmt.Errorf("download %s: %s", args[0], resp.Status)
			}

			if output == "" {
				output = uuid.New().String()

				if ext, _ := mime.ExtensionsByType(resp.Header.Get("Content-Type")); len(ext) > 0 {
					output += ext[0]
				}
			}

			if err := os.WriteFile(output, resp.Body, 0600); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}

	downloadCmd.Flags().StringP("output", "o", "", "target file, defaults to a random name")

	cmd.AddCommand(
		a.listCmd("List uploaded files", func(ctx context.Context, opts ...client.RequestOption) (client.Value, error) {
			return a.client.Files.List(ctx, opts...)
		}),
		uploadCmd,
		a.idCmd("get FILE_ID", "Retrieve file metadata", func(ctx context.Context, id string, opts ...client.RequestOption) (client.Value, error) {
			return a.client.Files.Get(ctx, id, opts...)
		}),
		a.idCmd("delete FILE_ID", "Delete a file", func(ctx context.Context, id string, opts ...client.RequestOption) (client.Value, error) {
			return a.client.Files.Delete(ctx, id, opts...)
		}),
		a.idCmd("content FILE_ID", "Print the content of a file holding a json document", func(ctx context.Context, id string, opts ...client.RequestOption) (client.Value, error) {
			return a.client.Files.Content(ctx, id, opts...)
		}),
		downloadCmd,
	)

	return cmd
}

func (a *app) fineTunesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fine-tunes",
		Short: "Manage fine-tuning jobs",
	}

	cmd.AddCommand(
		a.createCmd("create", "Create a fine-tuning job", func(ctx context.Context, body any, opts ...client.RequestOption) (client.Value, error) {
			return a.client.FineTunes.New(ctx, body, opts...)
		}),
		a.listCmd("List fine-tuning jobs", func(ctx context.Context, opts ...client.RequestOption) (client.Value, error) {
			return a.client.FineTunes.List(ctx, opts...)
		}),
		a.idCmd("get FINE_TUNE_ID", "Retrieve a fine-tuning job", func(ctx context.Context, id string, opts ...client.RequestOption) (client.Value, error) {
			return a.client.FineTunes.Get(ctx, id, opts...)
		}),
		a.idCmd("cancel FINE_TUNE_ID", "Cancel a fine-tuning job", func(ctx context.Context, id string, opts ...client.RequestOption) (client.Value, error) {
			return a.client.FineTunes.Cancel(ctx, id, opts...)
		}),
		a.idCmd("events FINE_TUNE_ID", "List the events of a fine-tuning job", func(ctx context.Context, id string, opts ...client.RequestOption) (client.Value, error) {
			return a.client.FineTunes.Events(ctx, id, opts...)
		}),
		a.idCmd("delete MODEL", "Delete a fine-tuned model", func(ctx context.Context, id string, opts ...client.RequestOption) (client.Value, error) {
			return a.client.FineTunes.Delete(ctx, id, opts...)
		}),
	)

	return cmd
}
