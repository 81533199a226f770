package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/qrkit/pkg/composer"
	"github.com/dmitrymomot/qrkit/pkg/config"
	"github.com/dmitrymomot/qrkit/pkg/logger"
	"github.com/dmitrymomot/qrkit/pkg/palette"
	"github.com/dmitrymomot/qrkit/pkg/payload"
	"github.com/dmitrymomot/qrkit/pkg/qrcode"
	"github.com/dmitrymomot/qrkit/pkg/storage"
	"github.com/dmitrymomot/qrkit/pkg/style"
	"github.com/dmitrymomot/qrkit/pkg/validator"
)

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	log := logger.New(
		logger.WithTextFormatter(),
		logger.WithLevel(level),
		logger.WithOutput(stderr),
	)

	var cfg style.Config
	if err := config.Load(&cfg); err != nil {
		return err
	}
	defaults := style.DefaultsFromConfig(cfg)

	p := payload.Normalize(opts.payload())
	if err := payload.Validate(p); err != nil {
		return formatValidation(err)
	}
	res := payload.Build(p)
	if opts.name != "" {
		res.Filename = payload.SanitizeFilename(opts.name, "", res.Filename)
	}

	if opts.printData {
		fmt.Fprintln(stdout, res.Data)
	}
	if opts.preview {
		art, err := qrcode.Terminal(res.Data, false)
		if err != nil {
			return err
		}
		fmt.Fprint(stdout, art)
	}

	overrides, err := buildOverrides(opts)
	if err != nil {
		return err
	}

	var png []byte
	if opts.plain {
		r := defaults.Resolve(&overrides)
		png, err = qrcode.Generate(res.Data, r.ImageSize)
	} else {
		var c *composer.Composer
		c, err = composer.New(composer.WithDefaults(defaults), composer.WithLogger(log))
		if err != nil {
			return err
		}
		png, err = c.Compose(ctx, res.Data, &overrides, res.CaptionLines)
	}
	if err != nil {
		return err
	}

	outDir := opts.out
	if outDir == "" {
		outDir = defaults.OutputDir
	}
	st, err := storage.NewLocalStorage(outDir, "")
	if err != nil {
		return err
	}

	name := res.Filename + ".png"
	if exists, err := st.Exists(ctx, name); err == nil && exists {
		log.WarnContext(ctx, "replacing existing file", logger.Filename(name))
	}
	path, err := st.Put(ctx, name, png, "image/png")
	if err != nil {
		return err
	}

	log.DebugContext(ctx, "image written",
		logger.Filename(path),
		logger.ContentType(string(p.Type())),
		logger.DataLength(len(res.Data)),
	)
	fmt.Fprintln(stdout, path)
	return nil
}

// buildOverrides layers the preset file, random colors and explicit flags,
// later layers winning.
func buildOverrides(opts *options) (style.Overrides, error) {
	var o style.Overrides
	if opts.preset != "" {
		preset, err := style.LoadOverrides(opts.preset)
		if err != nil {
			return style.Overrides{}, err
		}
		o = preset
	}
	if opts.randomColors {
		random := style.FromScheme(palette.Random(nil))
		o = o.Merge(&random)
	}
	flags := opts.flagOverrides()
	return o.Merge(&flags), nil
}

func formatValidation(err error) error {
	verrs := validator.ExtractValidationErrors(err)
	if verrs == nil {
		return err
	}
	lines := make([]string, 0, len(verrs))
	for _, field := range verrs.Fields() {
		for _, msg := range verrs.Get(field) {
			lines = append(lines, field+": "+msg)
		}
	}
	return errors.New("invalid input:\n  " + strings.Join(lines, "\n  "))
}
