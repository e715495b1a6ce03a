package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/argkit/pkg/args"
	"github.com/dmitrymomot/argkit/pkg/logger"
)

type appConfig struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL"`
	LogFormat   string `env:"LOG_FORMAT"`
	WarnPolicy  string `env:"ARGCHECK_WARN_POLICY" envDefault:"warn"`
	FoldChoices bool   `env:"ARGCHECK_FOLD_CHOICES"`
}

type signatureKey struct{}

func newRootCmd(cfg appConfig) *cobra.Command {
	var (
		warnPolicy string
		fold       bool
	)

	cmd := &cobra.Command{
		Use:          "argcheck <signature.yaml> [--] [values...]",
		Short:        "Bind positional values against a YAML signature",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, argv []string) error {
			log, err := newLogger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			warn, err := args.ParsePolicy(warnPolicy)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(argv[0])
			if err != nil {
				return fmt.Errorf("read signature: %w", err)
			}
			sig, err := args.ParseSignature(data)
			if err != nil {
				return err
			}
			values, err := decodeValues(argv[1:])
			if err != nil {
				return err
			}

			ctx := context.WithValue(cmd.Context(), signatureKey{}, argv[0])
			opts := []args.Option{
				args.WithLogger(log),
				args.WithContext(ctx),
				args.WithWarnPolicy(warn),
			}
			if fold {
				opts = append(opts, args.WithFoldedChoices())
			}

			out, err := sig.Bind(values, opts...)
			if err != nil {
				logFailure(ctx, log, err)
				return err
			}
			log.DebugContext(ctx, "signature bound", logger.Function(sig.Name), slog.Int("values", len(out)))
			return json.NewEncoder(cmd.OutOrStdout()).Encode(out)
		},
	}

	cmd.Flags().StringVar(&warnPolicy, "warn-policy", cfg.WarnPolicy, "policy of params declared with policy warn (silent, debug, info, warn, error)")
	cmd.Flags().BoolVar(&fold, "fold", cfg.FoldChoices, "compare string choices case-insensitively")
	return cmd
}

// logFailure records a failed required pull with its translation key and
// parameters, so log consumers can render the message in another language.
func logFailure(ctx context.Context, log *slog.Logger, err error) {
	var argErr *args.ArgumentError
	if !errors.As(err, &argErr) {
		return
	}
	log.LogAttrs(ctx, slog.LevelError, argErr.Error(),
		logger.Function(argErr.Function),
		logger.Position(argErr.Position),
		logger.Group("translation",
			slog.String("key", argErr.TranslationKey),
			slog.Any("values", argErr.TranslationValues),
		),
	)
}

func newLogger(cfg appConfig, w io.Writer) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, "argcheck"),
		logger.WithOutput(w),
		logger.WithContextValue("signature", signatureKey{}),
	}
	if cfg.LogFormat != "" {
		switch f := logger.Format(cfg.LogFormat); f {
		case logger.FormatJSON, logger.FormatText, logger.FormatPretty:
			opts = append(opts, logger.WithFormat(f))
		default:
			return nil, fmt.Errorf("invalid LOG_FORMAT %q", cfg.LogFormat)
		}
	}
	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	return logger.New(opts...), nil
}

// decodeValues reads every raw argument as a YAML value. An empty argument
// stays an empty string rather than becoming nil.
func decodeValues(raw []string) ([]any, error) {
	out := make([]any, len(raw))
	for i, s := range raw {
		if s == "" {
			out[i] = ""
			continue
		}
		var v any
		if err := yaml.Unmarshal([]byte(s), &v); err != nil {
			return nil, fmt.Errorf("value %d (%q): %w", i, s, err)
		}
		out[i] = v
	}
	return out, nil
}
