package converter

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"sokodat/decoders"
	"sokodat/fileutils"
	"sokodat/format"
)

type Converter struct {
	registry *decoders.Registry
	maps     int
}

func NewConverter() *Converter {
	return &Converter{
		registry: decoders.NewRegistry(),
	}
}

type ConvertOptions struct {
	InputFile     string
	Output        io.Writer // stdout when nil
	VerboseOutput bool
}

// Convert renders every complete level of the input file to opts.Output in
// file order. An incomplete final record ends the conversion without error.
func (c *Converter) Convert(opts ConvertOptions) error {
	c.maps = 0

	if err := fileutils.ValidateInputFile(opts.InputFile); err != nil {
		return fmt.Errorf("invalid input file %s: %w", opts.InputFile, err)
	}

	file, err := fileutils.OpenInput(opts.InputFile)
	if err != nil {
		return fmt.Errorf("cannot read input file %s: %w", opts.InputFile, err)
	}
	defer file.Close()

	if info, err := file.Stat(); err == nil {
		records, trailing := format.RecordCount(info.Size())
		log.WithFields(log.Fields{
			"file":     opts.InputFile,
			"records":  records,
			"trailing": trailing,
		}).Debug("reading level file")
	}

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	return c.convert(file, out, opts)
}

func (c *Converter) convert(r io.Reader, out io.Writer, opts ConvertOptions) error {
	decoder, err := c.registry.GetDecoder(decoders.FormatSokoban)
	if err != nil {
		return fmt.Errorf("unknown format %s: %w", decoders.FormatSokoban, err)
	}

	config := decoders.Config{
		VerboseOutput: opts.VerboseOutput,
	}

	scanner := fileutils.NewRecordScanner(r, format.RecordSize)
	for scanner.Scan() {
		result, err := decoder.Decode(scanner.Record(), scanner.Index(), config)
		if err != nil {
			return fmt.Errorf("decode error for map %d: %w", scanner.Index(), err)
		}
		if _, err := io.WriteString(out, result.Text); err != nil {
			return fmt.Errorf("cannot write output: %w", err)
		}
		c.maps++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("cannot read input file %s: %w", opts.InputFile, err)
	}

	if trailing := scanner.Trailing(); trailing > 0 {
		log.WithField("trailing", trailing).Debug("ignoring incomplete record at end of file")
	}

	return nil
}

// Maps returns the number of maps written by the last Convert.
func (c *Converter) Maps() int {
	return c.maps
}
