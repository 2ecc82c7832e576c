package iconsync

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// ErrMissingSource is returned when a configured icon stem has no source
// file under the source directory.
var ErrMissingSource = errors.New("missing icon source")

// ErrTargetChanged is returned by a check run when the target file is out
// of date with respect to the icon sources.
var ErrTargetChanged = errors.New("target file is out of date")

const targetFilePerm = 0o644

// BuildEntries reads and normalizes every configured icon, in mapping
// order. Any missing or malformed source aborts the whole run.
func BuildEntries(cfg Config) ([]Entry, error) {
	entries := make([]Entry, 0, len(cfg.Icons))
	for _, icon := range cfg.Icons {
		path := filepath.Join(cfg.SourceDir, icon.Stem+".svg")

		raw, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", ErrMissingSource, path)
			}

			return nil, fmt.Errorf("reading icon %s: %w", path, err)
		}

		svg, err := Normalize(string(raw))
		if err != nil {
			return nil, fmt.Errorf("normalizing %s: %w", path, err)
		}

		entries = append(entries, Entry{Key: icon.Key, SVG: svg})
	}

	return entries, nil
}

// Run regenerates the marker region of the target file from the icon
// sources and rewrites the file if the content changed. It returns whether
// a write occurred. With checkOnly set, nothing is written and an out of
// date target fails with ErrTargetChanged.
func Run(cfg Config, checkOnly bool) (bool, error) {
	entries, err := BuildEntries(cfg)
	if err != nil {
		return false, err
	}

	current, err := os.ReadFile(cfg.TargetFile)
	if err != nil {
		return false, fmt.Errorf("reading target %s: %w", cfg.TargetFile, err)
	}

	updated, err := cfg.Target.Inject(string(current), FormatEntries(entries))
	if err != nil {
		return false, fmt.Errorf("updating %s: %w", cfg.TargetFile, err)
	}

	if bytes.Equal(current, []byte(updated)) {
		log.Info().Str("target", cfg.TargetFile).Msg("Target already up to date")

		return false, nil
	}

	if checkOnly {
		return false, fmt.Errorf("%w: %s", ErrTargetChanged, cfg.TargetFile)
	}

	if err := os.WriteFile(cfg.TargetFile, []byte(updated), targetFilePerm); err != nil {
		return false, fmt.Errorf("writing target %s: %w", cfg.TargetFile, err)
	}

	log.Info().
		Str("target", cfg.TargetFile).
		Str("source_dir", cfg.SourceDir).
		Int("icons", len(entries)).
		Msg("Target updated")

	return true, nil
}
