package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"go.uber.org/automaxprocs/maxprocs"

	postkit "github.com/avasseur/go-postkit"
	"github.com/avasseur/go-postkit/internal/fileutil"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	flags, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if flags.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	if err := run(flags); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(flags *cliFlags) error {
	raw, err := os.ReadFile(flags.input)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	// Front matter already on the input seeds the record; a --meta file
	// overrides whichever fields it sets.
	meta, body, err := postkit.ParseDocument(string(raw))
	if err != nil {
		return fmt.Errorf("parsing input front matter: %w", err)
	}
	if meta.PublishDate == "" {
		meta.PublishDate = postkit.NewMetadata(time.Now()).PublishDate
	}
	if flags.meta != "" {
		metaRaw, err := os.ReadFile(flags.meta)
		if err != nil {
			return fmt.Errorf("reading metadata: %w", err)
		}
		if err := yaml.Unmarshal(metaRaw, &meta); err != nil {
			return fmt.Errorf("parsing metadata: %w", err)
		}
	}
	if meta.Title == "" {
		meta.Title = titleFromFilename(flags.input)
	}

	ed := postkit.New()

	out, err := ed.Export(meta, body)
	if err != nil {
		return err
	}

	if err := fileutil.EnsureDir(flags.outDir); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	exportPath := filepath.Join(flags.outDir, out.Filename)
	if err := os.WriteFile(exportPath, []byte(out.Content), 0o644); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	fmt.Printf("Created %s\n", exportPath)

	if flags.preview {
		preview, err := ed.Preview(context.Background(), body)
		if err != nil {
			return fmt.Errorf("rendering preview: %w", err)
		}
		previewPath := strings.TrimSuffix(exportPath, ".md") + ".html"
		if err := os.WriteFile(previewPath, []byte(preview), 0o644); err != nil {
			return fmt.Errorf("writing preview: %w", err)
		}
		fmt.Printf("Created %s\n", previewPath)
	}

	return nil
}

// titleFromFilename falls back to the input's stem when no title is set.
func titleFromFilename(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return strings.TrimSpace(strings.ReplaceAll(stem, "-", " "))
}
