// Package config loads the YAML profile that tells the tools which glyph
// tables to use.
//
//	encoding: shift-jis
//	tables:
//	  kana: kana.tbl
//	  kanji: kanji.tbl
//	  latin: latin.tbl
//	  button: button.tbl
//
// Table paths are relative to the profile file. Tables left out fall back to
// the embedded defaults.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/acolita/msdialog/pkg/charset"
)

// Tables names the .tbl file of each lookup table.
type Tables struct {
	Kana   string `yaml:"kana,omitempty"`
	Kanji  string `yaml:"kanji,omitempty"`
	Latin  string `yaml:"latin,omitempty"`
	Button string `yaml:"button,omitempty"`
}

// Profile is a decoding profile.
type Profile struct {
	Encoding string `yaml:"encoding,omitempty"`
	Tables   Tables `yaml:"tables"`

	dir string // directory table paths are relative to
}

// Load reads a profile from path.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	p.dir = filepath.Dir(path)
	return p, nil
}

// Parse decodes a profile. Relative table paths are resolved against the
// working directory.
func Parse(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing profile: %w", err)
	}
	if _, err := charset.ParseEncoding(p.Encoding); err != nil {
		return nil, err
	}
	return &p, nil
}

// Charset builds the lookup tables named by the profile. Tables the profile
// does not name come from charset.Default().
func (p *Profile) Charset() (*charset.Set, error) {
	enc, err := charset.ParseEncoding(p.Encoding)
	if err != nil {
		return nil, err
	}
	cs := *charset.Default()
	glyphs := []struct {
		path string
		dst  **charset.Map
	}{
		{p.Tables.Kana, &cs.Kana},
		{p.Tables.Kanji, &cs.Kanji},
		{p.Tables.Latin, &cs.Latin},
	}
	for _, g := range glyphs {
		if g.path == "" {
			continue
		}
		m, err := readTable(p, g.path, enc, charset.ReadTable)
		if err != nil {
			return nil, err
		}
		*g.dst = m
	}
	if p.Tables.Button != "" {
		m, err := readTable(p, p.Tables.Button, enc, charset.ReadButtonTable)
		if err != nil {
			return nil, err
		}
		cs.Buttons = m
	}
	return &cs, nil
}

func (p *Profile) resolve(path string) string {
	if filepath.IsAbs(path) || p.dir == "" {
		return path
	}
	return filepath.Join(p.dir, path)
}

func readTable[T any](p *Profile, path string, enc charset.Encoding, read func(r io.Reader, enc charset.Encoding) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(p.resolve(path))
	if err != nil {
		return zero, err
	}
	defer f.Close()
	t, err := read(f, enc)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
