package game

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Language is a word bank language code such as "en".
type Language string

// ManifestFile names the language manifest inside a words directory.
const ManifestFile = "languages.yaml"

// Manifest lists the configured languages and the files holding their words.
type Manifest struct {
	Languages []ManifestEntry `yaml:"languages"`
}

type ManifestEntry struct {
	Code Language `yaml:"code"`
	File string   `yaml:"file"`
}

// WordBank holds the ordered word list of every configured language. It is
// read-only after construction and safe for concurrent use.
type WordBank struct {
	languages []Language
	words     map[Language][]string
	sets      map[Language]map[string]struct{}
}

// NewWordBank builds a word bank from already normalised lists. languages
// fixes the reporting order; each must have a non-empty list.
func NewWordBank(languages []Language, lists map[Language][]string) (*WordBank, error) {
	b := &WordBank{
		languages: make([]Language, 0, len(languages)),
		words:     make(map[Language][]string, len(languages)),
		sets:      make(map[Language]map[string]struct{}, len(languages)),
	}
	for _, lang := range lo.Uniq(languages) {
		words := lists[lang]
		if len(words) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptyWordList, lang)
		}
		b.languages = append(b.languages, lang)
		b.words[lang] = append([]string(nil), words...)
		b.sets[lang] = lo.Associate(words, func(w string) (string, struct{}) {
			return w, struct{}{}
		})
	}
	if len(b.languages) == 0 {
		return nil, fmt.Errorf("%w: no languages configured", ErrEmptyWordList)
	}
	return b, nil
}

// Languages returns the configured languages in manifest order.
func (b *WordBank) Languages() []Language {
	return append([]Language(nil), b.languages...)
}

// Supports reports whether lang is configured.
func (b *WordBank) Supports(lang Language) bool {
	_, ok := b.words[lang]
	return ok
}

// Words returns the ordered word list for lang. The slice must not be modified.
func (b *WordBank) Words(lang Language) ([]string, error) {
	words, ok := b.words[lang]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}
	return words, nil
}

// Contains reports whether word is in the list for lang. Unknown languages
// contain nothing.
func (b *WordBank) Contains(lang Language, word string) bool {
	_, ok := b.sets[lang][word]
	return ok
}

// LoadWordBank reads ManifestFile from dir and then one word file per
// language. Words are normalised; entries that are not WordLength letters
// long are skipped with a warning.
func LoadWordBank(dir string, log *zap.Logger) (*WordBank, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}

	languages := make([]Language, 0, len(manifest.Languages))
	lists := make(map[Language][]string, len(manifest.Languages))
	for _, entry := range manifest.Languages {
		if entry.Code == "" {
			return nil, fmt.Errorf("manifest entry without code")
		}
		if _, dup := lists[entry.Code]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLanguage, entry.Code)
		}
		file := entry.File
		if file == "" {
			file = string(entry.Code) + ".txt"
		}
		words, err := readWordFile(filepath.Join(dir, file), log.With(zap.String("language", string(entry.Code))))
		if err != nil {
			return nil, fmt.Errorf("load %s words: %w", entry.Code, err)
		}
		languages = append(languages, entry.Code)
		lists[entry.Code] = words
		log.Info("loaded word list", zap.String("language", string(entry.Code)), zap.Int("words", len(words)))
	}
	return NewWordBank(languages, lists)
}

func readWordFile(path string, log *zap.Logger) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseWordList(f, log)
}

// ParseWordList reads one word per line, normalising each and dropping blank
// lines and words of the wrong length.
func ParseWordList(r io.Reader, log *zap.Logger) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		w := NormalizeWord(scanner.Text())
		if w == "" {
			continue
		}
		if utf8.RuneCountInString(w) != WordLength {
			log.Warn("skipping word: wrong length", zap.String("word", w))
			continue
		}
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}
