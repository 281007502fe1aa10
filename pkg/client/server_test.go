package client_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/adrianliechti/oai/pkg/client"
	"github.com/adrianliechti/oai/pkg/exchange"
	"github.com/adrianliechti/oai/pkg/openaitest"

	"github.com/stretchr/testify/require"
)

func newServerClient(t *testing.T, token string) (*client.Client, *openaitest.Server) {
	t.Helper()

	server := openaitest.New("sk-server")
	t.Cleanup(server.Close)

	c := client.New(token,
		client.WithHost(openaitest.Host),
		client.WithOrganization("org-test"),
		client.WithExchangeOptions(server.Options()...),
	)

	return c, server
}

func TestServerModelsList(t *testing.T) {
	c, server := newServerClient(t, "sk-server")

	result, err := c.Models.List(context.Background())
	require.NoError(t, err)

	require.Equal(t, "list", result.Get("object").String())
	require.Equal(t, []string{"gpt-4o-mini", "whisper-1"}, []string{
		result.Get("data.0.id").String(),
		result.Get("data.1.id").String(),
	})

	req, ok := server.LastRequest()
	require.True(t, ok)

	require.Equal(t, http.MethodGet, req.Method)
	require.Equal(t, "/v1/models", req.Target)
	require.Equal(t, openaitest.Host, req.Host)
	require.Equal(t, "Bearer sk-server", req.Header.Get("Authorization"))
	require.Equal(t, "org-test", req.Header.Get("Organization"))
	require.True(t, req.Close)
	require.Empty(t, req.Body)
}

func TestServerChatCompletion(t *testing.T) {
	c, _ := newServerClient(t, "sk-server")

	input := map[string]any{
		"model": "gpt-4o-mini",
		"messages": []map[string]any{
			{"role": "user", "content": "hello"},
		},
	}

	result, err := c.ChatCompletions.New(context.Background(), input)
	require.NoError(t, err)

	require.Equal(t, "chat.completion", result.Get("object").String())
	require.JSONEq(t, `{"model":"gpt-4o-mini","messages":[{"role":"user","content":"hello"}]}`, result.Get("request").Raw)
}

func TestServerImageEdit(t *testing.T) {
	c, _ := newServerClient(t, "sk-server")

	image := writeFile(t, "image.png", "image-bytes")
	mask := writeFile(t, "mask.png", "mask")

	result, err := c.Images.Edit(context.Background(), image, "add a hat", client.NewImageOptions().WithMask(mask).WithSize("256x256"))
	require.NoError(t, err)

	require.Equal(t, "add a hat", result.Get("fields.prompt").String())
	require.Equal(t, "256x256", result.Get("fields.size").String())
	require.False(t, result.Get("fields.n").Exists())
	require.False(t, result.Get("fields.user").Exists())

	require.Equal(t, "image.png", result.Get("files.image.filename").String())
	require.Equal(t, int64(len("image-bytes")), result.Get("files.image.bytes").Int())
	require.Equal(t, "mask.png", result.Get("files.mask.filename").String())
}

func TestServerTranscribe(t *testing.T) {
	c, _ := newServerClient(t, "sk-server")

	audio := writeFile(t, "speech.mp3", "audio")

	result, err := c.Audio.Transcribe(context.Background(), audio, "whisper-1", client.NewAudioOptions().WithLanguage("en"))
	require.NoError(t, err)

	require.Equal(t, "whisper-1", result.Get("fields.model").String())
	require.Equal(t, "en", result.Get("fields.language").String())
	require.Equal(t, "application/octet-stream", result.Get("files.file.content_type").String())
}

func TestServerFileContent(t *testing.T) {
	c, _ := newServerClient(t, "sk-server")
	ctx := context.Background()

	_, err := c.Files.Content(ctx, "file-abc")
	require.ErrorIs(t, err, exchange.ErrInvalidJSON)

	resp, err := c.Files.Download(ctx, "file-abc")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, openaitest.FileContent, string(resp.Body))
}

func TestServerFineTuneDelete(t *testing.T) {
	c, server := newServerClient(t, "sk-server")

	result, err := c.FineTunes.Delete(context.Background(), "curie:ft-acme-2023")
	require.NoError(t, err)
	require.True(t, result.Get("deleted").Bool())

	req, ok := server.LastRequest()
	require.True(t, ok)
	require.Equal(t, http.MethodDelete, req.Method)
	require.Equal(t, "/v1/models/curie:ft-acme-2023", req.Target)
}

func TestServerWrongKey(t *testing.T) {
	c, _ := newServerClient(t, "sk-wrong")

	result, err := c.Models.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, "incorrect api key provided", result.Get("error.message").String())

	c.SetAPIKey("sk-server")

	result, err = c.Models.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, "list", result.Get("object").String())
}
