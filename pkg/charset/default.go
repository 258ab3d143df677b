package charset

import (
	"bytes"
	"embed"
	"fmt"
	"sync"
)

//go:embed tables/*.tbl
var tableFS embed.FS

var (
	defaultOnce sync.Once
	defaultSet  *Set
)

// Default returns the embedded table set. The returned Set is shared and
// must not be modified; copy it (s := *Default()) to override single tables.
func Default() *Set {
	defaultOnce.Do(func() {
		defaultSet = &Set{
			Kana:    mustGlyphTable("kana.tbl"),
			Kanji:   mustGlyphTable("kanji.tbl"),
			Latin:   mustGlyphTable("latin.tbl"),
			Buttons: mustButtonTable("button.tbl"),
		}
		tracer().Infof("default tables: kana=%d kanji=%d latin=%d buttons=%d",
			defaultSet.Kana.Len(), defaultSet.Kanji.Len(), defaultSet.Latin.Len(), defaultSet.Buttons.Len())
	})
	return defaultSet
}

func mustGlyphTable(name string) *Map {
	data, err := tableFS.ReadFile("tables/" + name)
	if err != nil {
		panic(fmt.Sprintf("charset: embedded table %s: %v", name, err))
	}
	m, err := ReadTable(bytes.NewReader(data), UTF8)
	if err != nil {
		panic(fmt.Sprintf("charset: embedded table %s: %v", name, err))
	}
	return m
}

func mustButtonTable(name string) *ButtonMap {
	data, err := tableFS.ReadFile("tables/" + name)
	if err != nil {
		panic(fmt.Sprintf("charset: embedded table %s: %v", name, err))
	}
	m, err := ReadButtonTable(bytes.NewReader(data), UTF8)
	if err != nil {
		panic(fmt.Sprintf("charset: embedded table %s: %v", name, err))
	}
	return m
}
