// Command casefold prints the case folded form of its input, optionally
// followed by the mapping from folded bytes to the grapheme clusters of the
// original input.
//
// Each line is folded independently. Line endings are not part of the
// folded text.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
	"golang.org/x/text/language"

	"github.com/charlievieth/casefold"
)

// maxLineSize is the longest line that can be folded.
const maxLineSize = 1024 * 1024

type config struct {
	tag      language.Tag
	variant  casefold.Variant
	simple   bool
	mapping  bool
	progress bool
	files    []string
}

func parseFlags(args []string, getenv func(string) string, output io.Writer) (*config, error) {
	fs := flag.NewFlagSet("casefold", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [OPTION]... [FILE]...\n",
			filepath.Base(os.Args[0]))
		fs.PrintDefaults()
	}

	defaultLocale := "und"
	if s := getenv("CASEFOLD_LOCALE"); s != "" {
		defaultLocale = s
	}
	locale := fs.String("locale", defaultLocale,
		"BCP 47 language `tag` used to select the folding variant\n"+
			"(default from $CASEFOLD_LOCALE)")
	simple := fs.Bool("simple", false, "fold without computing the grapheme mapping")
	mapping := fs.Bool("map", false,
		"print the byte to grapheme mapping after each folded line")
	progress := fs.Bool("progress", false,
		"show a progress bar on stderr (only if stderr is a terminal)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *simple && *mapping {
		return nil, errors.New("the -simple and -map flags are mutually exclusive")
	}
	tag, err := language.Parse(*locale)
	if err != nil {
		return nil, fmt.Errorf("invalid -locale %q: %w", *locale, err)
	}
	return &config{
		tag:      tag,
		variant:  casefold.ForLocale(tag),
		simple:   *simple,
		mapping:  *mapping,
		progress: *progress,
		files:    fs.Args(),
	}, nil
}

// newProgressBar returns a progress bar for an input of size bytes (-1 if
// unknown). The bar is silent unless enabled and stderr is a terminal.
func newProgressBar(conf *config, name string, size int64) *progressbar.ProgressBar {
	if !conf.progress || !term.IsTerminal(int(os.Stderr.Fd())) {
		return progressbar.DefaultBytesSilent(size, name)
	}
	return progressbar.NewOptions64(size,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(name),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetWidth(20),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}

// foldLines folds each line of r and writes the result to w.
func foldLines(w io.Writer, r io.Reader, conf *config) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	bw := bufio.NewWriter(w)

	for sc.Scan() {
		line := sc.Text()
		if conf.simple {
			bw.WriteString(casefold.SimpleFoldVariant(line, conf.variant))
			bw.WriteByte('\n')
		} else {
			f := casefold.FoldVariant(line, conf.variant)
			bw.WriteString(f.String())
			bw.WriteByte('\n')
			if conf.mapping {
				for i, g := range f.Mapping() {
					fmt.Fprintf(bw, "%d\t%d\n", i, g)
				}
			}
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	return bw.Flush()
}

func foldFile(w io.Writer, name string, conf *config) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	size := int64(-1)
	if fi, err := f.Stat(); err == nil && fi.Mode().IsRegular() {
		size = fi.Size()
	}
	bar := newProgressBar(conf, filepath.Base(name), size)
	if err := foldLines(w, io.TeeReader(f, bar), conf); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return bar.Finish()
}

func run(conf *config, stdin io.Reader, stdout io.Writer) error {
	if len(conf.files) == 0 {
		bar := newProgressBar(conf, "stdin", -1)
		if err := foldLines(stdout, io.TeeReader(stdin, bar), conf); err != nil {
			return fmt.Errorf("stdin: %w", err)
		}
		return bar.Finish()
	}
	for _, name := range conf.files {
		if err := foldFile(stdout, name, conf); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	log.SetPrefix("casefold: ")
	log.SetFlags(0)

	conf, err := parseFlags(os.Args[1:], os.Getenv, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatal(err)
	}
	if err := run(conf, os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}
