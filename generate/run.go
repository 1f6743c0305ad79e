// Package generate implements table of contents generation command.
package generate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"mdtoc/common"
	"mdtoc/config"
	"mdtoc/state"
	"mdtoc/toc"
)

// stdinName is used for logging and debug report when source is not a file.
const stdinName = "STDIN"

var (
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF16LE = []byte{0xFF, 0xFE}
)

// Flags returns command line flags of the generate action. They override
// corresponding configuration values only when present.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolWithInverseFlag{Name: "skip-first-header", Value: true,
			Usage: "do not include the first header (document title) in the table of contents (default from configuration)"},
		&cli.StringFlag{Name: "numbering",
			Usage: "entry numbering `MODE` (supported modes: " + strings.Join(common.NumberingModeNames(), ", ") + ")"},
		&cli.IntFlag{Name: "indent",
			Usage: "indent every nesting level with `N` spaces"},
		&cli.IntFlag{Name: "max-level",
			Usage: "do not list headings deeper than `LEVEL` (1-6)"},
		&cli.StringFlag{Name: "slug-style",
			Usage: "anchor generation `STYLE` (supported styles: " + strings.Join(common.SlugStyleNames(), ", ") + ")"},
		&cli.StringFlag{Name: "to",
			Usage: "output `TYPE` (supported types: " + strings.Join(common.OutputFmtNames(), ", ") + ")"},
		&cli.StringFlag{Name: "output", Aliases: []string{"o"},
			Usage: "write table of contents to `FILE` instead of STDOUT"},
	}
}

// Run is the generate action: it reads markdown from the file named by the
// first argument (or STDIN) and writes its table of contents.
func Run(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("generate")

	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many sources", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	if err := applyOptions(env, cmd, log); err != nil {
		return err
	}

	root := cmd.Root()
	return process(ctx, cmd.Args().Get(0), root.Reader, root.Writer, log)
}

// applyOptions superimposes command line flags over configuration values.
func applyOptions(env *state.LocalEnv, cmd *cli.Command, log *zap.Logger) error {
	cfg := env.Cfg.TOC

	env.TOC = toc.Options{
		SkipFirst: cfg.SkipFirstHeader,
		Indent:    cfg.Indent,
		Numbering: cfg.Numbering,
		MaxLevel:  cfg.MaxLevel,
		Slugs:     cfg.SlugStyle,
	}
	env.Format = cfg.Output
	env.Output = cmd.String("output")

	if cmd.IsSet("skip-first-header") {
		env.TOC.SkipFirst = cmd.Bool("skip-first-header")
	}
	if cmd.IsSet("indent") {
		if n := cmd.Int("indent"); n >= 0 {
			env.TOC.Indent = n
		} else {
			return fmt.Errorf("indent must not be negative: %d", n)
		}
	}
	if cmd.IsSet("max-level") {
		if n := cmd.Int("max-level"); n >= 1 && n <= toc.MaxLevel {
			env.TOC.MaxLevel = n
		} else {
			return fmt.Errorf("max level must be between 1 and %d: %d", toc.MaxLevel, n)
		}
	}
	if cmd.IsSet("numbering") {
		if mode, err := common.ParseNumberingMode(cmd.String("numbering")); err == nil {
			env.TOC.Numbering = mode
		} else {
			log.Warn("Unknown numbering mode requested, ignoring", zap.Stringer("using", env.TOC.Numbering), zap.Error(err))
		}
	}
	if cmd.IsSet("slug-style") {
		if style, err := common.ParseSlugStyle(cmd.String("slug-style")); err == nil {
			env.TOC.Slugs = style
		} else {
			log.Warn("Unknown slug style requested, ignoring", zap.Stringer("using", env.TOC.Slugs), zap.Error(err))
		}
	}
	if cmd.IsSet("to") {
		if format, err := common.ParseOutputFmt(cmd.String("to")); err == nil {
			env.Format = format
		} else {
			log.Warn("Unknown output format requested, ignoring", zap.Stringer("using", env.Format), zap.Error(err))
		}
	}
	return nil
}

// process handles table of contents generation independently of CLI
// framework. Empty src or "-" means stdin.
func process(ctx context.Context, src string, stdin io.Reader, stdout io.Writer, log *zap.Logger) error {
	env := state.EnvFromContext(ctx)

	name := stdinName
	if len(src) > 0 && src != "-" {
		name = src
	}

	log.Debug("Processing starting", zap.String("source", name), zap.Stringer("format", env.Format),
		zap.Bool("skip_first", env.TOC.SkipFirst), zap.Stringer("numbering", env.TOC.Numbering))
	defer func(start time.Time) {
		log.Debug("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	md, err := readSource(src, stdin)
	if err != nil {
		return err
	}
	env.Rpt.StoreData("input/"+config.CleanFileName(filepath.Base(name)), md)

	if err := ctx.Err(); err != nil {
		return err
	}

	headings := toc.ExtractHeadings(string(md))
	log.Debug("Headings extracted", zap.Int("count", len(headings)))
	for _, h := range headings {
		log.Debug("Heading", zap.Int("line", h.Line), zap.Int("level", h.Level), zap.String("title", h.Title))
	}

	entries := toc.Entries(headings, env.TOC)
	if env.Rpt != nil {
		env.Rpt.StoreData("debug/outline.txt", []byte(toc.Outline(headings, entries)))
	}

	out, err := render(entries, env.TOC, env.Format)
	if err != nil {
		return err
	}
	env.Rpt.StoreData("output/toc"+env.Format.Ext(), []byte(out))

	if err := ctx.Err(); err != nil {
		return err
	}
	return writeResult(out, env.Output, stdout, log)
}

// render produces table of contents in requested format.
func render(entries []toc.Entry, opts toc.Options, format common.OutputFmt) (string, error) {
	switch format {
	case common.OutputFmtHtml:
		return toc.RenderHTML(entries)
	default:
		return toc.Render(entries, opts.Indent), nil
	}
}

// readSource reads whole markdown document. Byte order mark, if any, is
// honored and dropped.
func readSource(src string, stdin io.Reader) ([]byte, error) {
	var r io.Reader = stdin
	if len(src) > 0 && src != "-" {
		f, err := os.Open(src)
		if err != nil {
			return nil, fmt.Errorf("unable to open source file: %w", err)
		}
		defer f.Close()
		r = f
	} else if stdin == nil {
		return nil, errors.New("no input source available")
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read source: %w", err)
	}
	// UTF-16 decoding is left to BOMOverride, everything else must be proper UTF-8
	if !bytes.HasPrefix(raw, bomUTF16BE) && !bytes.HasPrefix(raw, bomUTF16LE) && !utf8.Valid(raw) {
		return nil, errors.New("unable to read source: not a valid UTF-8 text")
	}
	data, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), raw)
	if err != nil {
		return nil, fmt.Errorf("unable to decode source: %w", err)
	}
	return data, nil
}

// writeResult outputs table of contents followed by a line break.
func writeResult(out, dst string, stdout io.Writer, log *zap.Logger) (err error) {
	w := stdout
	if len(dst) > 0 {
		f, ferr := os.Create(dst)
		if ferr != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", dst, ferr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("unable to close destination file '%s': %w", dst, cerr)
			}
		}()
		w = f
		log.Debug("Writing table of contents", zap.String("file", dst))
	}

	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("unable to write table of contents: %w", err)
	}
	return nil
}
