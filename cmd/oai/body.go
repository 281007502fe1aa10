package main

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

var errInvalidBody = errors.New("request body is not valid json")

func addBodyFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("data", "d", "", "request body as json")
	cmd.Flags().StringP("file", "f", "", "read the request body from a file, - for stdin")
	cmd.Flags().StringArrayP("set", "s", nil, "set path=value in the request body, values that parse as json are inserted raw")
}

// readBody assembles the json request body from --data or --file and applies
// every --set edit on top of it.
func readBody(cmd *cobra.Command) (json.RawMessage, error) {
	data, _ := cmd.Flags().GetString("data")
	file, _ := cmd.Flags().GetString("file")
	sets, _ := cmd.Flags().GetStringArray("set")

	var body []byte

	switch {
	case data != "":
		body = []byte(data)

	case file == "-":
		b, err := io.ReadAll(cmd.InOrStdin())

		if err != nil {
			return nil, err
		}

		body = b

	case file != "":
		b, err := os.ReadFile(file)

		if err != nil {
			return nil, err
		}

		body = b

	default:
		body = []byte("{}")
	}

	if !gjson.ValidBytes(body) {
		return nil, errInvalidBody
	}

	for _, s := range sets {
		path, value, ok := strings.Cut(s, "=")

		if !ok || path == "" {
			return nil, errors.New("invalid --set value, expected path=value: " + s)
		}

		var err error

		if gjson.Valid(value) {
			body, err = sjson.SetRawBytes(body, path, []byte(value))
		} else {
			body, err = sjson.SetBytes(body, path, value)
		}

		if err != nil {
			return nil, err
		}
	}

	return body, nil
}
