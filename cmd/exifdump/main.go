package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/fedragon/tiff-ifd/jpeg"
	"github.com/fedragon/tiff-ifd/tiff"
)

func main() {
	var (
		file      = flag.String("file", "", "Path to a TIFF, TIFF-based raw (CR2, ORF, ...) or JPEG file")
		thumbnail = flag.String("thumbnail", "", "Write the embedded thumbnail to this path")
		reencode  = flag.String("reencode", "", "Re-encode the metadata to this path")
		lenient   = flag.Bool("lenient", false, "Keep sub-IFD pointers that cannot be followed as plain entries")
		verbose   = flag.Bool("v", false, "Log decoding steps to stderr")
	)
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "Usage: exifdump -file <path> [-thumbnail <path>] [-reencode <path>] [-lenient] [-v]")
		os.Exit(1)
	}

	logger := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger = l
	}
	defer func() { _ = logger.Sync() }()
	tiff.SetLogger(logger)

	if err := run(*file, *thumbnail, *reencode, *lenient); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(path, thumbnailPath, reencodePath string, lenient bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	// JPEG files carry the TIFF structure in their APP1 segment
	if bytes.HasPrefix(data, []byte{0xFF, 0xD8}) {
		data, err = jpeg.ExtractExif(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("extract exif: %w", err)
		}
	}

	r := bytes.NewReader(data)
	policy := tiff.PointerStrict
	if lenient {
		policy = tiff.PointerAsEntry
	}
	doc, err := tiff.NewDecoder(r).WithPointerPolicy(policy).Decode()
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	width := 0
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil {
			width = w
		}
	}
	fmt.Print(newPrinter(width).document(doc))

	if thumbnailPath != "" {
		if _, err := r.Seek(0, io.SeekStart); err != nil {
			return err
		}
		thumbnail, err := tiff.ReadThumbnail(r, doc)
		if err != nil {
			return fmt.Errorf("thumbnail: %w", err)
		}
		if err := os.WriteFile(thumbnailPath, thumbnail, 0o644); err != nil {
			return fmt.Errorf("write thumbnail: %w", err)
		}
	}

	if reencodePath != "" {
		f, err := os.Create(reencodePath)
		if err != nil {
			return fmt.Errorf("create: %w", err)
		}
		if err := tiff.Encode(doc, f); err != nil {
			_ = f.Close()
			return fmt.Errorf("encode: %w", err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close: %w", err)
		}
	}

	return nil
}
