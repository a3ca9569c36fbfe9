// Package logger configures log/slog for the vector4 tool and hands out
// loggers that carry the subsystem name and any per-context values.
package logger

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"

	"github.com/amp-labs/amp-vector/xform"
)

// Default subsystem name, set by ConfigureLoggingWithOptions.
// Using atomic.Value to ensure thread-safe reads and writes.
var subsystem atomic.Value //nolint:gochecknoglobals

// configMutex protects concurrent calls to ConfigureLoggingWithOptions.
// This is necessary because the function modifies global state (slog.SetDefault and log.Default).
var configMutex sync.Mutex //nolint:gochecknoglobals

// It's considered good practice to use unexported custom types for context keys.
type contextKey string

// Options is used to configure logging.
type Options struct {
	Subsystem   string
	JSON        bool
	MinLevel    slog.Level
	LegacyLevel slog.Level
	Output      io.Writer
}

// ConfigureLoggingWithOptions configures logging for the application.
// It returns the default logger.
// This function is thread-safe but modifies global state, so concurrent calls
// will be serialized.
func ConfigureLoggingWithOptions(opts Options) *slog.Logger {
	configMutex.Lock()
	defer configMutex.Unlock()

	if opts.Output == nil {
		opts.Output = os.Stderr
	}

	handlerOpts := &slog.HandlerOptions{
		Level: opts.MinLevel,
	}

	var handler slog.Handler

	if opts.JSON {
		handler = slog.NewJSONHandler(opts.Output, handlerOpts)
	} else {
		handler = slog.NewTextHandler(opts.Output, handlerOpts)
	}

	logger := slog.New(handler)

	slog.SetDefault(logger)

	// Packages that still use the old log package are redirected into slog.
	def := log.Default()
	*def = *slog.NewLogLogger(handler, opts.LegacyLevel)

	subsystem.Store(opts.Subsystem)

	return logger
}

// Option is a functional option for configuring logging via ConfigureLogging.
type Option func(*Options)

// WithOutput sends log output to w instead of stderr.
func WithOutput(w io.Writer) Option {
	return func(o *Options) {
		o.Output = w
	}
}

// WithLevel overrides the minimum level read from the environment.
func WithLevel(level slog.Level) Option {
	return func(o *Options) {
		o.MinLevel = level
	}
}

// WithJSON overrides the output format read from the environment.
func WithJSON(json bool) Option {
	return func(o *Options) {
		o.JSON = json
	}
}

// ConfigureLogging configures logging for the application from the
// environment:
//
//	LOG_JSON          true for JSON output (default false)
//	LOG_LEVEL         debug, info, warn or error (default info)
//	LEGACY_LOG_LEVEL  level for the standard log package (default info)
//
// Options are applied after the environment, so they win.
func ConfigureLogging(app string, opts ...Option) (*slog.Logger, error) {
	logJSON, err := fromEnv("LOG_JSON", xform.Bool, false)
	if err != nil {
		return nil, err
	}

	minLevel, err := fromEnv("LOG_LEVEL", xform.SlogLevel, slog.LevelInfo)
	if err != nil {
		return nil, err
	}

	legacyLevel, err := fromEnv("LEGACY_LOG_LEVEL", xform.SlogLevel, slog.LevelInfo)
	if err != nil {
		return nil, err
	}

	options := Options{
		Subsystem:   app,
		JSON:        logJSON,
		MinLevel:    minLevel,
		LegacyLevel: legacyLevel,
	}

	for _, o := range opts {
		o(&options)
	}

	return ConfigureLoggingWithOptions(options), nil
}

// fromEnv reads key from the environment and parses it with parse.
// An unset or empty variable yields defaultValue.
func fromEnv[T any](key string, parse func(string) (T, error), defaultValue T) (T, error) { //nolint:ireturn
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return defaultValue, nil
	}

	value, err := parse(raw)
	if err != nil {
		return defaultValue, fmt.Errorf("environment variable %s: %w", key, err)
	}

	return value, nil
}

// WithMuted adds a muted flag to the context. When muted is true, all logging
// operations on this context will be suppressed.
func WithMuted(ctx context.Context, muted bool) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, contextKey("mute"), muted)
}

func isMuted(ctx context.Context) bool {
	muted, ok := ctx.Value(contextKey("mute")).(bool)

	return ok && muted
}

// WithSubsystem adds a subsystem to the context. If the subsystem is not provided, the default subsystem
// will be used. The default subsystem is set by the ConfigureLogging function.
func WithSubsystem(ctx context.Context, subsystem string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, contextKey("subsystem"), subsystem)
}

// GetSubsystem returns the subsystem from the context. If the
// subsystem is not provided, the default subsystem will be used.
func GetSubsystem(ctx context.Context) string { //nolint:contextcheck
	if ctx == nil {
		ctx = context.Background()
	}

	if val, ok := ctx.Value(contextKey("subsystem")).(string); ok {
		return val
	}

	if val, ok := subsystem.Load().(string); ok {
		return val
	}

	return ""
}

// With returns a new context with the given values added.
// The values are added to the logger automatically.
func With(ctx context.Context, values ...any) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	if len(values) == 0 {
		return ctx
	}

	vals := append(getValues(ctx), values...) //nolint:gocritic

	return context.WithValue(ctx, contextKey("loggerValues"), vals)
}

func getValues(ctx context.Context) []any {
	vals, ok := ctx.Value(contextKey("loggerValues")).([]any)
	if !ok {
		return nil
	}

	// Copy so that sibling contexts never share a backing array.
	return append([]any(nil), vals...)
}

// WithLogger makes Get build on l instead of the default logger for this
// context and every context derived from it.
func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, contextKey("logger"), l)
}

func baseLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(contextKey("logger")).(*slog.Logger); ok && l != nil {
		return l
	}

	return slog.Default()
}

// nullHandler is a slog.Handler implementation that discards all log output.
type nullHandler struct{}

func (n *nullHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return false
}

func (n *nullHandler) Handle(_ context.Context, _ slog.Record) error {
	return nil
}

func (n *nullHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return n
}

func (n *nullHandler) WithGroup(_ string) slog.Handler {
	return n
}

var nullLogger = slog.New(&nullHandler{}) //nolint:gochecknoglobals

// Get returns a logger carrying the subsystem and any values added with
// With, built on the logger set by WithLogger or else the default logger.
// Only the first non-nil context is consulted.
//
//nolint:contextcheck
func Get(ctx ...context.Context) *slog.Logger {
	realCtx := context.Background()

	for _, c := range ctx {
		if c != nil {
			realCtx = c

			break
		}
	}

	if isMuted(realCtx) {
		return nullLogger
	}

	logger := baseLogger(realCtx).With("subsystem", GetSubsystem(realCtx))

	if vals := getValues(realCtx); vals != nil {
		logger = logger.With(vals...)
	}

	return logger
}
