package client

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
)

// Boundary separates the parts of every multipart body.
const Boundary = "boundary"

type form struct {
	buf bytes.Buffer
	w   *multipart.Writer

	err error
}

func newForm() *form {
	f := &form{}

	f.w = multipart.NewWriter(&f.buf)
	f.err = f.w.SetBoundary(Boundary)

	return f
}

func (f *form) field(name, value string) {
	if f.err != nil {
		return
	}

	f.err = f.w.WriteField(name, value)
}

// file adds the content of path as a binary part named name. Only the base
// name of the path is sent as the filename.
func (f *form) file(name, path, contentType string) {
	if f.err != nil {
		return
	}

	file, err := os.Open(path)

	if err != nil {
		f.err = err
		return
	}

	defer file.Close()

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, escapeQuotes(name), escapeQuotes(filepath.Base(path))))
	h.Set("Content-Type", contentType)

	part, err := f.w.CreatePart(h)

	if err != nil {
		f.err = err
		return
	}

	_, f.err = io.Copy(part, file)
}

func (f *form) close() ([]byte, string, error) {
	if f.err != nil {
		return nil, "", f.err
	}

	if err := f.w.Close(); err != nil {
		return nil, "", err
	}

	return f.buf.Bytes(), f.w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
