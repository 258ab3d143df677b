// Command msdump decodes dialog text from a memory or ROM dump.
//
//	msdump -f ram.bin -from 0x1234 -to 0x1300
//	msdump -f ram.bin -from 0x1234 -to 0x1300 -bubble 2
//	msdump -f ram.bin -from 0x1234 -to 0x1300 -yaml
//	msdump -f ram.bin -imm 0x8000 -scroll 32
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/acolita/msdialog/internal/config"
	"github.com/acolita/msdialog/pkg/host"
	"github.com/acolita/msdialog/pkg/msdialog"
)

type bubbleDoc struct {
	Index int    `yaml:"index"`
	Style string `yaml:"style"`
	Text  string `yaml:"text"`
}

type dumpDoc struct {
	File    string      `yaml:"file"`
	From    string      `yaml:"from"`
	To      string      `yaml:"to"`
	Bubbles []bubbleDoc `yaml:"bubbles"`
}

func parseOffset(name, s string) uint64 {
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		log.Fatalf("-%s: %v", name, err)
	}
	return v
}

func main() {
	fPath := flag.String("f", "", "memory or ROM dump")
	profile := flag.String("profile", "", "YAML profile naming .tbl files")
	from := flag.String("from", "", "start offset of dialog text")
	to := flag.String("to", "", "end offset of dialog text (exclusive)")
	bubble := flag.Int("bubble", -1, "only decode this bubble")
	imm := flag.String("imm", "", "offset of the on-screen buffer")
	scroll := flag.Uint("scroll", 0, "scroll value for -imm")
	asYAML := flag.Bool("yaml", false, "write bubbles as YAML")
	events := flag.Bool("events", false, "list translated events")
	flag.Parse()

	if *fPath == "" {
		log.Fatal("Usage: msdump -f dump.bin (-from N -to M [-bubble K] [-yaml] [-events] | -imm N [-scroll S]) [-profile p.yaml]")
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

	src, err := host.OpenFile(*fPath)
	if err != nil {
		log.Fatal(err)
	}
	plugin := host.NewPlugin(opts...)

	if *imm != "" {
		text, err := plugin.Call(src, host.MethodDecodeImmBuf, parseOffset("imm", *imm), uint64(*scroll))
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(text)
		return
	}

	if *from == "" || *to == "" {
		log.Fatal("-from and -to are required without -imm")
	}
	start, end := parseOffset("from", *from), parseOffset("to", *to)

	switch {
	case *asYAML || *events:
		data, ok := src.Bytes(int(start), int(end))
		if !ok {
			log.Fatalf("%v: 0x%X..0x%X", host.ErrOutOfBounds, start, end)
		}
		evs, err := msdialog.Translate(data, opts...)
		if err != nil {
			log.Fatal(err)
		}
		if *events {
			for _, ev := range evs {
				fmt.Println(ev)
			}
			return
		}
		writeYAML(*fPath, *from, *to, evs)

	case *bubble >= 0:
		text, err := plugin.Call(src, host.MethodDecodeRangeNthBubble, start, end, uint64(*bubble))
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(text)

	default:
		text, err := plugin.Call(src, host.MethodDecodeRange, start, end)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(text)
	}
}

func writeYAML(file, from, to string, events []msdialog.Event) {
	doc := dumpDoc{File: file, From: from, To: to}
	for i, b := range msdialog.Bubbles(events) {
		doc.Bubbles = append(doc.Bubbles, bubbleDoc{
			Index: i,
			Style: msdialog.BubbleStyle(b).String(),
			Text:  msdialog.Render(b),
		})
	}
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		log.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		log.Fatal(err)
	}
}
