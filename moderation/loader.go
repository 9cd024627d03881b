package moderation

import (
	"alumni-chat/errors"
	"bufio"
	"bytes"
	"embed"
	"io/fs"
	"path"
	"slices"
	"strings"
)

//go:embed censored/*.txt
var embeddedCensored embed.FS

// DefaultDictionaries is the word list shipped with the binary.
func DefaultDictionaries() fs.FS {
	sub, err := fs.Sub(embeddedCensored, "censored")
	if err != nil {
		panic(err)
	}
	return sub
}

// Dictionary is the merged word list and the languages it came from.
type Dictionary struct {
	Words     []string
	Languages []string
}

// LoadDictionary reads every "<lang>.txt" file at the root of fsys, one word
// per line, and merges them without duplicates.
func LoadDictionary(fsys fs.FS, extra ...string) (Dictionary, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return Dictionary{}, err
	}

	var languages []string
	unique := make(map[string]struct{})
	for _, w := range extra {
		if w = strings.TrimSpace(w); w != "" {
			unique[strings.ToLower(w)] = struct{}{}
		}
	}

	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".txt" {
			continue
		}
		languages = append(languages, strings.TrimSuffix(entry.Name(), ".txt"))

		data, err := fs.ReadFile(fsys, entry.Name())
		if err != nil {
			return Dictionary{}, err
		}
		// bufio handles \r\n files too
		scanner := bufio.NewScanner(bytes.NewReader(data))
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" && !strings.HasPrefix(line, "#") {
				unique[strings.ToLower(line)] = struct{}{}
			}
		}
		if err := scanner.Err(); err != nil {
			return Dictionary{}, err
		}
	}

	if len(unique) == 0 {
		return Dictionary{}, errors.ErrEmptyWords
	}
	words := make([]string, 0, len(unique))
	for w := range unique {
		words = append(words, w)
	}
	slices.Sort(words)
	return Dictionary{Words: words, Languages: languages}, nil
}
