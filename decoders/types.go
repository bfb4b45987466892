package decoders

import "sokodat/decoders/types"

// Decoder turns one fixed-size record into a rendered map.
type Decoder interface {
	Decode(record []byte, number int, config types.Config) (types.DecoderResult, error)
}

type Config = types.Config
type DecoderResult = types.DecoderResult
