// Command vlq encodes decimal integers to hex varints and decodes them back.
//
//	vlq -mode encode -signed -- -2232334 300
//	vlq -mode decode ac02 9bc09002
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/soltixdb/varint/internal/config"
	"github.com/soltixdb/varint/internal/logging"
	"github.com/soltixdb/varint/internal/varint"
)

func main() {
	mode := flag.String("mode", "encode", "encode or decode")
	signed := flag.Bool("signed", false, "Use zig-zag signed encoding")
	configPath := flag.String("config", "", "Path to configuration file (logging section)")
	quiet := flag.Bool("quiet", false, "Suppress diagnostics; the exit status still reports failure")
	flag.Parse()

	logger, err := newLogger(*configPath, *quiet)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vlq: %v\n", err)
		os.Exit(1)
	}

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: vlq -mode encode|decode [-signed] values...")
		os.Exit(2)
	}

	if err := run(os.Stdout, *mode, *signed, flag.Args()); err != nil {
		logger.Error("vlq failed", "mode", *mode, "signed", *signed, "error", err)
		os.Exit(1)
	}
}

// newLogger builds the diagnostics logger. An explicit -config must load;
// otherwise a discovered config.yaml is used when present. Stdout carries
// results, so log output configured for stdout moves to stderr.
func newLogger(configPath string, quiet bool) (*logging.Logger, error) {
	if quiet {
		return logging.NewNop(), nil
	}

	var cfg *config.Config
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = config.LoadOrDefault("")
	}

	if cfg.Logging.OutputPath == "" || cfg.Logging.OutputPath == "stdout" {
		cfg.Logging.OutputPath = "stderr"
	}
	return logging.NewFromConfig(cfg.Logging)
}

func run(w io.Writer, mode string, signed bool, args []string) error {
	switch mode {
	case "encode":
		for _, arg := range args {
			line, err := encodeArg(arg, signed)
			if err != nil {
				return err
			}
			fmt.Fprintln(w, line)
		}
	case "decode":
		for _, arg := range args {
			line, err := decodeArg(arg, signed)
			if err != nil {
				return err
			}
			fmt.Fprintln(w, line)
		}
	default:
		return fmt.Errorf("unknown mode %q", mode)
	}
	return nil
}

func encodeArg(arg string, signed bool) (string, error) {
	var e varint.Encoded
	if signed {
		v, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return "", err
		}
		e = varint.EncodeInt64(v)
	} else {
		v, err := strconv.ParseUint(arg, 10, 64)
		if err != nil {
			return "", err
		}
		e = varint.EncodeUint64(v)
	}
	return fmt.Sprintf("%s\t%s\t%d", arg, e, e.Len()), nil
}

func decodeArg(arg string, signed bool) (string, error) {
	raw, err := hex.DecodeString(arg)
	if err != nil {
		return "", fmt.Errorf("%s: %w", arg, err)
	}

	var value string
	var n int
	if signed {
		var v int64
		v, n, err = varint.DecodeInt64(raw)
		value = strconv.FormatInt(v, 10)
	} else {
		var v uint64
		v, n, err = varint.DecodeUint64(raw)
		value = strconv.FormatUint(v, 10)
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", arg, err)
	}
	return fmt.Sprintf("%s\t%s\t%d", arg, value, n), nil
}
