// Command msview shows the on-screen dialog buffer of a memory dump the way
// the game pages it.
//
// Keys: Up/Down scroll one line, PgUp/PgDn three lines, r reloads the dump,
// q or Esc quits.
package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/acolita/msdialog/internal/config"
	"github.com/acolita/msdialog/pkg/host"
	"github.com/acolita/msdialog/pkg/msdialog"
)

type Viewer struct {
	screen tcell.Screen
	path   string
	offset int
	scroll uint32
	opts   []msdialog.Option
	layout msdialog.PageLayout

	data    []byte
	current msdialog.ImmediateText
	status  string
}

func NewViewer(path string, offset int, opts []msdialog.Option) (*Viewer, error) {
	v := &Viewer{
		path:   path,
		offset: offset,
		opts:   opts,
		layout: msdialog.DefaultPageLayout,
	}
	if err := v.reload(); err != nil {
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	v.screen = screen
	return v, nil
}

// reload re-reads the dump and copies out the on-screen buffer.
func (v *Viewer) reload() error {
	src, err := host.OpenFile(v.path)
	if err != nil {
		return err
	}
	data, ok := src.Bytes(v.offset, v.offset+msdialog.BufferSize)
	if !ok {
		return fmt.Errorf("%w: buffer at 0x%X in %d bytes", host.ErrOutOfBounds, v.offset, len(src.Data))
	}
	v.data = data
	v.decode()
	return nil
}

func (v *Viewer) decode() {
	v.current = msdialog.DecodeImmediateBuffer(v.data, v.scroll, v.opts...)
	v.status = fmt.Sprintf("%s @0x%X  scroll %d  hoffset %d", v.path, v.offset, v.scroll, v.current.HOffset)
}

func (v *Viewer) scrollBy(delta int64) {
	s := int64(v.scroll) + delta
	if s < 0 {
		s = 0
	}
	v.scroll = uint32(s)
	v.decode()
}

// drawText writes s at (x, y) and returns the column after it.
// Wide glyphs take two cells.
func (v *Viewer) drawText(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		v.screen.SetContent(x, y, r, nil, style)
		x += w
	}
	return x
}

func (v *Viewer) draw() {
	v.screen.Clear()
	width, height := v.screen.Size()
	indent := int(v.current.HOffset) / 8

	y := 1
	line := ""
	flush := func() {
		v.drawText(2+indent, y, line, tcell.StyleDefault)
		y++
		line = ""
	}
	for _, r := range v.current.Text {
		if r == '\n' {
			flush()
			continue
		}
		line += string(r)
	}
	if line != "" {
		flush()
	}

	statusStyle := tcell.StyleDefault.Reverse(true)
	for x := 0; x < width; x++ {
		v.screen.SetContent(x, height-1, ' ', nil, statusStyle)
	}
	v.drawText(0, height-1, v.status, statusStyle)
	v.screen.Show()
}

func (v *Viewer) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			v.scrollBy(-int64(v.layout.LineHeight))
		case tcell.KeyDown:
			v.scrollBy(int64(v.layout.LineHeight))
		case tcell.KeyPgUp:
			v.scrollBy(-int64(v.layout.LineHeight) * int64(v.layout.VisibleLines))
		case tcell.KeyPgDn:
			v.scrollBy(int64(v.layout.LineHeight) * int64(v.layout.VisibleLines))
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'r':
				if err := v.reload(); err != nil {
					v.status = err.Error()
				}
			}
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *Viewer) run() {
	v.draw()
	for {
		if !v.handleInput(v.screen.PollEvent()) {
			return
		}
		v.draw()
	}
}

func main() {
	fPath := flag.String("f", "", "memory dump")
	offset := flag.String("offset", "", "offset of the on-screen buffer")
	profile := flag.String("profile", "", "YAML profile naming .tbl files")
	flag.Parse()

	if *fPath == "" || *offset == "" {
		log.Fatal("Usage: msview -f dump.bin -offset N [-profile p.yaml]")
	}
	off, err := strconv.ParseUint(*offset, 0, 31)
	if err != nil {
		log.Fatalf("-offset: %v", err)
	}

	var opts []msdialog.Option
	if *profile != "" {
		p, err := config.Load(*profile)
		if err != nil {
			log.Fatal(err)
		}
		cs, err := p.Charset()
		if err != nil {
			log.Fatal(err)
		}
		opts = append(opts, msdialog.WithCharset(cs))
	}

	v, err := NewViewer(*fPath, int(off), opts)
	if err != nil {
		log.Fatal(err)
	}
	defer v.screen.Fini()
	v.run()
}
