// Command jpeg2png decodes a JPEG file and writes it back out as PNG or BMP.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"

	"github.com/leijurv/jpeg_decoder_go/jpeg"
)

func main() {
	out := flag.String("o", "", "Output path (defaults to the input path with the format's extension)")
	format := flag.String("format", "png", "Output format: png or bmp")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: jpeg2png [-o output] [-format png|bmp] input.jpg\n")
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *out, *format); err != nil {
		fmt.Fprintf(os.Stderr, "jpeg2png: %v\n", err)
		os.Exit(1)
	}
}

func run(in, out, format string) error {
	data, err := os.ReadFile(in)
	if err != nil {
		return errors.Wrap(err, "reading input")
	}

	img, err := jpeg.DecodeBytes(data)
	if err != nil {
		return errors.Wrapf(err, "decoding %s", in)
	}

	if out == "" {
		out = strings.TrimSuffix(in, filepath.Ext(in)) + "." + format
	}
	f, err := os.Create(out)
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	defer f.Close()

	switch format {
	case "png":
		err = png.Encode(f, img)
	case "bmp":
		err = bmp.Encode(f, img)
	default:
		return errors.Errorf("unknown output format %q", format)
	}
	if err != nil {
		return errors.Wrapf(err, "encoding %s", out)
	}
	return f.Close()
}
