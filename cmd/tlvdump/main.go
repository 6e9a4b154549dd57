// tlvdump parses a TLV buffer from a file or a hex string and prints the
// records it finds, optionally unwrapping a frame and validating a
// trailing checksum first.
//
//	tlvdump -hex 010200aabb
//	tlvdump -config tlvdump.toml capture.bin
package main

import (
	"encoding/hex"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/rawbytedev/bytecursor"
	"github.com/rawbytedev/bytecursor/pkg/tlv"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to tlvdump config.toml")
		hexInput   = flag.String("hex", "", "input buffer as hex text instead of a file")
	)
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Str("app", "tlvdump").Logger()

	cfg := DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = loadConfig(*configPath)
		if err != nil {
			logger.Fatal().Err(err).Msg("bad config")
		}
	}
	if cfg.Verbose {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}

	data, err := readInput(*hexInput, flag.Args())
	if err != nil {
		logger.Fatal().Err(err).Msg("read input")
	}

	if sum := cfg.checksumFunc(); sum != nil {
		data, err = tlv.ValidateChecksum(data, sum)
		if err != nil {
			logger.Fatal().Err(err).Msg("checksum")
		}
		logger.Debug().Str("algorithm", cfg.Checksum).Msg("checksum ok")
	}

	switch cfg.Framing {
	case FramingMarker:
		data, err = tlv.RemoveFrame(data, cfg.Marker, cfg.Marker)
	case FramingLength:
		data, err = tlv.RemoveLengthPrefixedFrame(data)
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("unframe")
	}

	n, consumed := 0, 0
	for rec := range tlv.Records(data) {
		logger.Info().
			Uint8("type", rec.Type).
			Uint16("length", rec.Length).
			Str("value", bytecursor.ToDebugString(rec.Value)).
			Msg("record")
		n++
		consumed += tlv.HeaderLen + int(rec.Length)
	}
	if consumed != len(data) {
		logger.Warn().
			Int("trailing", len(data)-consumed).
			Msg("buffer has trailing bytes that do not form a record")
	}
	logger.Info().Int("records", n).Int("bytes", len(data)).Msg("done")
}

func readInput(hexInput string, args []string) ([]byte, error) {
	if hexInput != "" {
		return hex.DecodeString(hexInput)
	}
	if len(args) == 1 {
		return os.ReadFile(args[0])
	}
	flag.Usage()
	os.Exit(2)
	return nil, nil
}
