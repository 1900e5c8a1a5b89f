// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package fixconv shows how numbers are represented by the fixed-point types.
package fixconv

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"strconv"
	"strings"

	fp "github.com/avdva/fixedpoint"
	"github.com/avdva/fixedpoint/internal/config"
	mu "github.com/avdva/fixedpoint/internal/mathutil"
)

// Mode names.
const (
	ModeValue   = "value"
	ModeChecked = "checked"
	ModeExact   = "exact"
	ModeRaw     = "raw"
)

const allTypes = "all"

// Config holds configuration for the conversion.
type Config struct {
	Type  string `env:"FIXCONV_TYPE" envDefault:"all"`
	Mode  string `env:"FIXCONV_MODE" envDefault:"value"`
	Debug bool   `env:"FIXCONV_DEBUG"`
	Args  []string
}

// ParseConfig reads defaults from the environment and overrides them with flags.
// Positional arguments are the numbers to convert.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Type, "type", cfg.Type, "type name, or 'all': "+strings.Join(typeNames(), ", "))
	fs.StringVar(&cfg.Mode, "mode", cfg.Mode, "how to read arguments: value (lossy), checked, exact (decimal), raw (epsilons)")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "log debug messages to stderr")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.Args = fs.Args()
	return cfg, nil
}

// Run converts every argument into every selected type and writes a line per pair to out.
// Failed conversions are reported in the output, and Run returns all of them joined.
func Run(cfg Config, out io.Writer, logger *slog.Logger) error {
	if out == nil {
		return errors.New("output is required")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if len(cfg.Args) == 0 {
		return errors.New("nothing to convert")
	}
	selected, err := selectKinds(cfg.Type)
	if err != nil {
		return err
	}
	switch cfg.Mode {
	case ModeValue, ModeChecked, ModeExact, ModeRaw:
	default:
		return fmt.Errorf("unknown mode %q", cfg.Mode)
	}

	var errs []error
	for _, arg := range cfg.Args {
		for _, k := range selected {
			logger.Debug("converting", "input", arg, "type", k.name(), "mode", cfg.Mode)
			line, err := k.convert(arg, cfg.Mode)
			if err != nil {
				logger.Warn("conversion failed", "input", arg, "type", k.name(), "error", err)
				err = fmt.Errorf("%s %s: %w", k.name(), arg, err)
				errs = append(errs, err)
				line = "error: " + err.Error()
			}
			if _, err := fmt.Fprintf(out, "%-12s %s\n", k.name(), line); err != nil {
				return err
			}
		}
	}
	return errors.Join(errs...)
}

type kind interface {
	name() string
	convert(arg, mode string) (string, error)
}

var kinds = []kind{
	typeKind[int16, float32, fp.Q8x8]{"Sfixed8P8"},
	typeKind[int32, float64, fp.Q16x16]{"Sfixed16P16"},
	typeKind[uint16, float32, fp.Q8x8]{"Ufixed8P8"},
	typeKind[uint32, float64, fp.Q16x16]{"Ufixed16P16"},
}

func typeNames() []string {
	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		names = append(names, k.name())
	}
	return names
}

func selectKinds(name string) ([]kind, error) {
	if name == allTypes {
		return kinds, nil
	}
	for _, k := range kinds {
		if strings.EqualFold(k.name(), name) {
			return []kind{k}, nil
		}
	}
	return nil, fmt.Errorf("unknown type %q", name)
}

type typeKind[S fp.Storage, F fp.Float, L fp.Layout] struct {
	typeName string
}

func (k typeKind[S, F, L]) name() string {
	return k.typeName
}

func (k typeKind[S, F, L]) convert(arg, mode string) (string, error) {
	v, err := k.parse(arg, mode)
	if err != nil {
		return "", err
	}
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("epsilons=%v float=%v decimal=%s json=%s", v.Epsilons, v.Float(), v, data), nil
}

func (k typeKind[S, F, L]) parse(arg, mode string) (fp.Value[S, F, L], error) {
	switch mode {
	case ModeExact:
		return fp.FromString[S, F, L](arg)
	case ModeRaw:
		b, ok := new(big.Int).SetString(arg, 10)
		if !ok {
			return fp.Value[S, F, L]{}, fmt.Errorf("bad integer %q", arg)
		}
		e, ok := mu.FromBigInt[S](b)
		if !ok {
			return fp.Value[S, F, L]{}, fp.ErrOutOfRange
		}
		return fp.FromEpsilons[S, F, L](e), nil
	}
	f, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return fp.Value[S, F, L]{}, err
	}
	if mode == ModeChecked {
		return fp.FromValueChecked[S, F, L](F(f))
	}
	return fp.FromValue[S, F, L](F(f)), nil
}
