package lexicon

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

//go:embed data/*.txt
var defaultFS embed.FS

const (
	leftFile         = "left_bias.txt"
	rightFile        = "right_bias.txt"
	manipulativeFile = "manipulative_patterns.txt"
	positiveFile     = "positive_words.txt"
	negativeFile     = "negative_words.txt"
)

// Store bundles every lexicon the analyzers need. Loaded once at startup and
// treated as process-wide read-only state from then on.
type Store struct {
	Left         *Lexicon
	Right        *Lexicon
	Manipulative *Lexicon
	Positive     *Lexicon
	Negative     *Lexicon
}

// LoadDefaults builds a store from the lexicon files embedded in the binary.
func LoadDefaults(logger *slog.Logger) (*Store, error) {
	sub, err := fs.Sub(defaultFS, "data")
	if err != nil {
		return nil, fmt.Errorf("embedded lexicons: %w", err)
	}
	return loadFrom(func(name string) (io.ReadCloser, error) {
		return sub.Open(name)
	}, logger)
}

// LoadDir builds a store from plain-text lexicon files in dir. Every file
// must exist; bad entries inside a file only warn.
func LoadDir(dir string, logger *slog.Logger) (*Store, error) {
	return loadFrom(func(name string) (io.ReadCloser, error) {
		return os.Open(filepath.Join(dir, name))
	}, logger)
}

func loadFrom(open func(string) (io.ReadCloser, error), logger *slog.Logger) (*Store, error) {
	store := &Store{}
	targets := []struct {
		file string
		name string
		dst  **Lexicon
	}{
		{leftFile, "left", &store.Left},
		{rightFile, "right", &store.Right},
		{manipulativeFile, "manipulative", &store.Manipulative},
		{positiveFile, "positive", &store.Positive},
		{negativeFile, "negative", &store.Negative},
	}

	for _, target := range targets {
		r, err := open(target.file)
		if err != nil {
			return nil, fmt.Errorf("open lexicon %s: %w", target.file, err)
		}
		lex, err := Load(target.name, r, logger)
		closeErr := r.Close()
		if err != nil {
			return nil, err
		}
		if closeErr != nil {
			return nil, fmt.Errorf("close lexicon %s: %w", target.file, closeErr)
		}
		if lex.Len() == 0 {
			return nil, fmt.Errorf("lexicon %s loaded no entries", target.file)
		}
		*target.dst = lex
	}

	return store, nil
}
