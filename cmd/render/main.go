// Command render converts a document file to SVG without running the
// server. Useful for scripting and for inspecting render output.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vectorforge/vectorforge/internal/document"
	"github.com/vectorforge/vectorforge/internal/render"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	var (
		in     = flag.String("in", "", "input document file (JSON); - for stdin")
		out    = flag.String("out", "", "output SVG file; - or empty for stdout")
		sample = flag.Bool("sample", false, "render the built-in sample document instead of reading input")
	)
	flag.Parse()

	var doc *document.Document
	switch {
	case *sample:
		doc = document.NewSampleDocument()
	case *in != "":
		data, err := readInput(*in)
		if err != nil {
			slog.Error("read input", "error", err)
			os.Exit(1)
		}
		doc, err = document.Parse(data)
		if err != nil {
			slog.Error("parse document", "error", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr, "usage: render -in document.json [-out drawing.svg]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	markup, err := render.Document(doc)
	if err != nil {
		slog.Error("render document", "error", err)
		os.Exit(1)
	}

	if *out == "" || *out == "-" {
		fmt.Println(markup)
		return
	}

	if err := os.WriteFile(*out, []byte(markup), 0644); err != nil {
		slog.Error("write output", "error", err)
		os.Exit(1)
	}
	slog.Info("rendered", "out", *out, "bytes", len(markup))
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
