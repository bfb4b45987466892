package decoders

import (
	"fmt"

	"sokodat/decoders/sokoban"
	"sokodat/decoders/types"
)

// FormatSokoban names the 306-byte Sokoban level record format.
const FormatSokoban = "DAT"

type Registry struct {
	decoders map[string]Decoder
}

func NewRegistry() *Registry {
	r := &Registry{
		decoders: make(map[string]Decoder),
	}

	r.Register(FormatSokoban, &sokobanDecoder{})

	return r
}

func (r *Registry) Register(format string, decoder Decoder) {
	r.decoders[format] = decoder
}

// GetDecoder returns a decoder for the given format, or an error if not found
func (r *Registry) GetDecoder(format string) (Decoder, error) {
	decoder, exists := r.decoders[format]
	if !exists {
		return nil, fmt.Errorf("unknown file format: %s", format)
	}
	return decoder, nil
}

func (r *Registry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(r.decoders))
	for format := range r.decoders {
		formats = append(formats, format)
	}
	return formats
}

type sokobanDecoder struct{}

func (d *sokobanDecoder) Decode(record []byte, number int, config types.Config) (types.DecoderResult, error) {
	return sokoban.Decode(record, number, config)
}
