package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/rawbytedev/bytecursor/pkg/tlv"
)

// Framing selects how tlvdump unwraps input before record parsing.
type Framing string

const (
	FramingNone   Framing = "none"
	FramingMarker Framing = "marker"
	FramingLength Framing = "length"
)

// Config is the tlvdump runtime configuration.
type Config struct {
	Framing  Framing
	Marker   byte
	Checksum string // "none", "sum8" or "xor8"
	Verbose  bool
}

func DefaultConfig() Config {
	return Config{
		Framing:  FramingNone,
		Marker:   tlv.DefaultFrameMarker,
		Checksum: "none",
	}
}

// tlvdump config.toml key mapping.
type fileConfig struct {
	Framing  string `toml:"framing"`
	Marker   int    `toml:"marker"`
	Checksum string `toml:"checksum"`
	Verbose  bool   `toml:"verbose"`
}

// loadConfig overlays config.toml values onto the defaults.
func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load tlvdump config: %w", err)
	}

	if meta.IsDefined("framing") {
		switch Framing(raw.Framing) {
		case FramingNone, FramingMarker, FramingLength:
			cfg.Framing = Framing(raw.Framing)
		default:
			return Config{}, fmt.Errorf("unknown framing %q", raw.Framing)
		}
	}
	if meta.IsDefined("marker") {
		if raw.Marker < 0 || raw.Marker > 0xFF {
			return Config{}, fmt.Errorf("marker %d out of byte range", raw.Marker)
		}
		cfg.Marker = byte(raw.Marker)
	}
	if meta.IsDefined("checksum") {
		switch raw.Checksum {
		case "none", "sum8", "xor8":
			cfg.Checksum = raw.Checksum
		default:
			return Config{}, fmt.Errorf("unknown checksum %q", raw.Checksum)
		}
	}
	if meta.IsDefined("verbose") {
		cfg.Verbose = raw.Verbose
	}
	return cfg, nil
}

func (c Config) checksumFunc() tlv.ChecksumFunc {
	switch c.Checksum {
	case "sum8":
		return tlv.Sum8
	case "xor8":
		return tlv.Xor8
	default:
		return nil
	}
}
