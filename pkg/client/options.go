package client

import (
	"strconv"
)

// ImageOptions holds the optional parameters of image edits and variations.
// Nil fields are not sent. The With methods return a modified copy and leave
// the receiver untouched.
type ImageOptions struct {
	// Mask is the path of a mask image, edits only.
	Mask *string

	N    *int
	Size *string
	User *string
}

func NewImageOptions() ImageOptions {
	return ImageOptions{}
}

func (o ImageOptions) WithMask(path string) ImageOptions {
	o.Mask = &path
	return o
}

func (o ImageOptions) WithN(n int) ImageOptions {
	o.N = &n
	return o
}

// WithSize sets the requested image size, e.g. "1024x1024". The value is
// not validated.
func (o ImageOptions) WithSize(size string) ImageOptions {
	o.Size = &size
	return o
}

func (o ImageOptions) WithUser(user string) ImageOptions {
	o.User = &user
	return o
}

func (o ImageOptions) writeTo(f *form) {
	if o.N != nil {
		f.field("n", strconv.Itoa(*o.N))
	}

	if o.Size != nil {
		f.field("size", *o.Size)
	}

	if o.User != nil {
		f.field("user", *o.User)
	}
}

// AudioOptions holds the optional parameters of transcriptions and
// translations.
type AudioOptions struct {
	Prompt      *string
	Temperature *float64

	// Language is the ISO-639-1 code of the input audio, transcriptions only.
	Language *string
}

func NewAudioOptions() AudioOptions {
	return AudioOptions{}
}

func (o AudioOptions) WithPrompt(prompt string) AudioOptions {
	o.Prompt = &prompt
	return o
}

func (o AudioOptions) WithTemperature(temperature float64) AudioOptions {
	o.Temperature = &temperature
	return o
}

func (o AudioOptions) WithLanguage(language string) AudioOptions {
	o.Language = &language
	return o
}

func (o AudioOptions) writeTo(f *form, language bool) {
	if o.Prompt != nil {
		f.field("prompt", *o.Prompt)
	}

	if o.Temperature != nil {
		f.field("temperature", strconv.FormatFloat(*o.Temperature, 'f', -1, 64))
	}

	if language && o.Language != nil {
		f.field("language", *o.Language)
	}
}
