package pretty_test

import (
	"bytes"
	"testing"

	"github.com/adrianliechti/oai/pkg/pretty"

	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestFormat(t *testing.T) {
	input := `{"object":"list","data":[{"id":"gpt-4o","created":1715367049,"ready":true,"parent":null}],"empty":{},"none":[],"text":"say \"hi\"\n"}`

	expected := `{
    "object": "list",
    "data": [
        {
            "id": "gpt-4o",
            "created": 1715367049,
            "ready": true,
            "parent": null
        }
    ],
    "empty": {},
    "none": [],
    "text": "say \"hi\"\n"
}`

	require.Equal(t, expected, pretty.Format(gjson.Parse(input)))
}

func TestFormatPadding(t *testing.T) {
	input := `[1,[2.5,"x"]]`

	expected := "[\n  1,\n  [\n    2.5,\n    \"x\"\n  ]\n]"

	require.Equal(t, expected, pretty.Format(gjson.Parse(input), pretty.WithPadding(2)))
}

func TestFormatScalars(t *testing.T) {
	require.Equal(t, `"text"`, pretty.Format(gjson.Parse(`"text"`)))
	require.Equal(t, `-1.5e3`, pretty.Format(gjson.Parse(` -1.5e3 `)))
	require.Equal(t, `false`, pretty.Format(gjson.Parse(`false`)))
	require.Equal(t, `null`, pretty.Format(gjson.Parse(`null`)))
	require.Equal(t, `null`, pretty.Format(gjson.Result{}))
}

func TestFormatIdempotent(t *testing.T) {
	inputs := []string{
		`{"id":"cmpl-1","choices":[{"text":"été","index":0,"logprobs":null}],"usage":{"total_tokens":12}}`,
		`[[],[{}],[[1,2],[3]]]`,
		`{"b":1,"a":2,"nested":{"z":[true,false],"y":"\t"}}`,
		`"plain"`,
	}

	for _, input := range inputs {
		first := pretty.Format(gjson.Parse(input))

		require.True(t, gjson.Valid(first), first)

		second := pretty.Format(gjson.Parse(first))
		require.Equal(t, first, second)
	}
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer

	err := pretty.Fprint(&buf, gjson.Parse(`{"deleted":true}`))
	require.NoError(t, err)

	require.Equal(t, "{\n    \"deleted\": true\n}\n", buf.String())
}
