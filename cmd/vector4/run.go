package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/amp-labs/amp-vector/cli"
	"github.com/amp-labs/amp-vector/hashing"
	"github.com/amp-labs/amp-vector/logger"
	"github.com/amp-labs/amp-vector/pack"
	"github.com/amp-labs/amp-vector/vector"
	"github.com/amp-labs/amp-vector/xform"
	"gopkg.in/yaml.v3"
)

var (
	errUsage       = errors.New("usage")
	errFileExists  = errors.New("output file exists")
	errNotPackable = errors.New("element type cannot be packed")
)

var elementTypes = []string{ //nolint:gochecknoglobals
	"int", "int8", "int16", "int32", "int64",
	"uint", "uint8", "uint16", "uint32", "uint64",
	"float32", "float64",
}

var hashFuncs = map[string]hashing.HashFunc{ //nolint:gochecknoglobals
	"sha256": hashing.Sha256,
	"xxh3":   hashing.XXH3,
	"xxh64":  hashing.XXH64,
}

type environment struct {
	stdout   io.Writer
	prompter *cli.Prompter
}

type config struct {
	elementType string
	format      string
	hash        string
	in          string
	out         string
	compression pack.Compression
	force       bool
	interactive bool
	quiet       bool
	components  []string
}

func parseFlags(args []string) (*config, error) {
	var (
		cfg         config
		compression string
	)

	flags := flag.NewFlagSet("vector4", flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	flags.StringVar(&cfg.elementType, "type", "float32", "element type: "+strings.Join(elementTypes, ", "))
	flags.StringVar(&cfg.format, "format", "text", "output format: text, yaml or json")
	flags.StringVar(&cfg.hash, "hash", "", "print a digest: sha256, xxh3 or xxh64")
	flags.StringVar(&cfg.in, "in", "", "read vectors from a packed file instead of building one")
	flags.StringVar(&cfg.out, "out", "", "pack the vector into this file")
	flags.StringVar(&compression, "compression", "none", "compression for -out")
	flags.BoolVar(&cfg.force, "force", false, "overwrite -out without asking")
	flags.BoolVar(&cfg.interactive, "interactive", false, "prompt for the element type and components")
	flags.BoolVar(&cfg.quiet, "quiet", false, "suppress progress logs")

	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", errUsage, err)
	}

	cfg.components = flags.Args()

	var err error

	if cfg.compression, err = pack.ParseCompression(compression); err != nil {
		return nil, fmt.Errorf("%w: %w", errUsage, err)
	}

	if _, err := xform.OneOf("text", "yaml", "json")(cfg.format); err != nil {
		return nil, fmt.Errorf("%w: -format: %w", errUsage, err)
	}

	if _, err := xform.OneOf(elementTypes...)(cfg.elementType); err != nil {
		return nil, fmt.Errorf("%w: -type: %w", errUsage, err)
	}

	if cfg.hash != "" {
		if _, ok := hashFuncs[cfg.hash]; !ok {
			return nil, fmt.Errorf("%w: unknown -hash %q", errUsage, cfg.hash)
		}
	}

	if cfg.in == "" && !cfg.interactive && len(cfg.components) != vector.Size {
		return nil, fmt.Errorf("%w: expected %d components, got %d", errUsage, vector.Size, len(cfg.components))
	}

	return &cfg, nil
}

func run(ctx context.Context, args []string, env *environment) error {
	cfg, err := parseFlags(args)
	if err != nil {
		return err
	}

	if cfg.interactive && cfg.in == "" {
		if cfg.elementType, err = env.prompter.Select("Element type", elementTypes...); err != nil {
			return err
		}
	}

	ctx = logger.WithSubsystem(ctx, "vector4")
	ctx = logger.WithMuted(ctx, cfg.quiet)
	ctx = logger.With(ctx, "element_type", cfg.elementType)

	return dispatch(ctx, cfg, env)
}

//nolint:cyclop
func dispatch(ctx context.Context, cfg *config, env *environment) error {
	switch cfg.elementType {
	case "int":
		return execute[int](ctx, cfg, env, widened[int, int64](packer[int64], vector.ToInt64[int]), nil)
	case "int8":
		return execute[int8](ctx, cfg, env, packer[int8], pack.Decode[int8])
	case "int16":
		return execute[int16](ctx, cfg, env, packer[int16], pack.Decode[int16])
	case "int32":
		return execute[int32](ctx, cfg, env, packer[int32], pack.Decode[int32])
	case "int64":
		return execute[int64](ctx, cfg, env, packer[int64], pack.Decode[int64])
	case "uint":
		return execute[uint](ctx, cfg, env, widened[uint, uint64](packer[uint64], vector.ToUint64[uint]), nil)
	case "uint8":
		return execute[uint8](ctx, cfg, env, packer[uint8], pack.Decode[uint8])
	case "uint16":
		return execute[uint16](ctx, cfg, env, packer[uint16], pack.Decode[uint16])
	case "uint32":
		return execute[uint32](ctx, cfg, env, packer[uint32], pack.Decode[uint32])
	case "uint64":
		return execute[uint64](ctx, cfg, env, packer[uint64], pack.Decode[uint64])
	case "float32":
		return execute[float32](ctx, cfg, env, packer[float32], pack.Decode[float32])
	case "float64":
		return execute[float64](ctx, cfg, env, packer[float64], pack.Decode[float64])
	default:
		return fmt.Errorf("%w: unknown element type %q", errUsage, cfg.elementType)
	}
}

type encodeFunc[T any] func(w io.Writer, v vector.Vector4[T], c pack.Compression) error

type decodeFunc[T any] func(r io.Reader) ([]vector.Vector4[T], error)

func packer[T xform.Fixed](w io.Writer, v vector.Vector4[T], c pack.Compression) error {
	return pack.Encode(w, []vector.Vector4[T]{v}, pack.WithCompression(c))
}

// widened packs platform-sized integers through a lossless 64-bit widening.
func widened[T, W any](encode encodeFunc[W], widen func(vector.Vector4[T]) vector.Vector4[W]) encodeFunc[T] {
	return func(w io.Writer, v vector.Vector4[T], c pack.Compression) error {
		return encode(w, widen(v), c)
	}
}

func execute[T xform.Numeric](ctx context.Context, cfg *config, env *environment, encode encodeFunc[T], decode decodeFunc[T]) error {
	if cfg.in != "" {
		return readPacked(ctx, cfg, env, decode)
	}

	v, err := buildVector[T](cfg, env)
	if err != nil {
		return err
	}

	logger.Get(ctx).Debug("built vector", "vector", v.String())

	if err := render(env.stdout, cfg.format, v); err != nil {
		return err
	}

	if cfg.hash != "" {
		digest, err := hashFuncs[cfg.hash](v)
		if err != nil {
			return err
		}

		if _, err := fmt.Fprintf(env.stdout, "%s %s\n", cfg.hash, digest); err != nil {
			return err
		}
	}

	if cfg.out != "" {
		return writePacked(ctx, cfg, env, v, encode)
	}

	return nil
}

func buildVector[T xform.Numeric](cfg *config, env *environment) (vector.Vector4[T], error) {
	if cfg.interactive {
		return cli.PromptVector4[T](env.prompter)
	}

	var v vector.Vector4[T]

	for i, raw := range cfg.components {
		value, err := xform.ParseNumeric[T](raw)
		if err != nil {
			return v, fmt.Errorf("%w: component %d (%q) is not a valid %s: %w", errUsage, i, raw, cfg.elementType, err)
		}

		if err := v.Set(i, value); err != nil {
			return v, err
		}
	}

	return v, nil
}

func render[T any](w io.Writer, format string, vectors ...vector.Vector4[T]) error {
	for _, v := range vectors {
		var (
			out []byte
			err error
		)

		switch format {
		case "yaml":
			out, err = yaml.Marshal(v)
		case "json":
			out, err = json.Marshal(v)
			out = append(out, '\n')
		default:
			out = []byte(v.String() + "\n")
		}

		if err != nil {
			return err
		}

		if _, err := w.Write(out); err != nil {
			return err
		}
	}

	return nil
}

func writePacked[T any](ctx context.Context, cfg *config, env *environment, v vector.Vector4[T], encode encodeFunc[T]) error {
	if _, err := os.Stat(cfg.out); err == nil && !cfg.force {
		if !cfg.interactive {
			return fmt.Errorf("%w: %s (use -force to overwrite)", errFileExists, cfg.out)
		}

		overwrite, err := env.prompter.Confirm("Overwrite " + cfg.out)
		if err != nil {
			return err
		}

		if !overwrite {
			return fmt.Errorf("%w: %s", errFileExists, cfg.out)
		}
	}

	file, err := os.Create(cfg.out)
	if err != nil {
		return err
	}

	if err := encode(file, v, cfg.compression); err != nil {
		_ = file.Close()

		return err
	}

	if err := file.Close(); err != nil {
		return err
	}

	logger.Get(ctx).Info("packed vector", "path", cfg.out, "compression", cfg.compression.String())

	return nil
}

func readPacked[T any](ctx context.Context, cfg *config, env *environment, decode decodeFunc[T]) error {
	if decode == nil {
		return fmt.Errorf("%w: %s; pack files hold fixed-size types such as %s64",
			errNotPackable, cfg.elementType, cfg.elementType)
	}

	file, err := os.Open(cfg.in)
	if err != nil {
		return err
	}

	defer func() {
		_ = file.Close()
	}()

	vectors, err := decode(file)
	if err != nil {
		return fmt.Errorf("reading %s: %w", cfg.in, err)
	}

	logger.Get(ctx).Info("unpacked vectors", "path", cfg.in, "count", len(vectors))

	return render(env.stdout, cfg.format, vectors...)
}
