package client

import (
	"context"
	"net/http"
	"slices"
)

type FileService struct {
	Options []RequestOption
}

func NewFileService(opts ...RequestOption) FileService {
	return FileService{
		Options: opts,
	}
}

func (r *FileService) List(ctx context.Context, opts ...RequestOption) (Value, error) {
	return r.get(ctx, "/v1/files", opts)
}

// Upload sends the file at path for the given purpose, e.g. "fine-tune".
func (r *FileService) Upload(ctx context.Context, path, purpose string, opts ...RequestOption) (Value, error) {
	c := newRequestConfig(slices.Concat(r.Options, opts)...)

	f := newForm()
	f.file("file", path, "application/octet-stream")
	f.field("purpose", purpose)

	req, err := c.newFormRequest(ctx, "/v1/files", f)

	if err != nil {
		return Value{}, err
	}

	return c.do(req)
}

func (r *FileService) Get(ctx context.Context, id string, opts ...RequestOption) (Value, error) {
	return r.get(ctx, "/v1/files/"+id, opts)
}

func (r *FileService) Delete(ctx context.Context, id string, opts ...RequestOption) (Value, error) {
	c := newRequestConfig(slices.Concat(r.Options, opts)...)

	req, err := c.newRequest(ctx, http.MethodDelete, "/v1/files/"+id, nil, "")

	if err != nil {
		return Value{}, err
	}

	return c.do(req)
}

// Content retrieves the content of a file and parses it as JSON. Files that
// hold JSON lines fail to parse; use Download for those.
func (r *FileService) Content(ctx context.Context, id string, opts ...RequestOption) (Value, error) {
	return r.get(ctx, "/v1/files/"+id+"/content", opts)
}

// Download retrieves the raw content of a file.
func (r *FileService) Download(ctx context.Context, id string, opts ...RequestOption) (*Response, error) {
	c := newRequestConfig(slices.Concat(r.Options, opts)...)

	req, err := c.newRequest(ctx, http.MethodGet, "/v1/files/"+id+"/content", nil, "")

	if err != nil {
		return nil, err
	}

	return c.send(req)
}

func (r *FileService) get(ctx context.Context, path string, opts []RequestOption) (Value, error) {
	c := newRequestConfig(slices.Concat(r.Options, opts)...)

	req, err := c.newRequest(ctx, http.MethodGet, path, nil, "")

	if err != nil {
		return Value{}, err
	}

	return c.do(req)
}
