package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/mailgun/errors"
	"github.com/mailgun/latin1str"
	"github.com/mailgun/latin1str/setter"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

type Options struct {
	In     string        `short:"i" long:"in" env:"LATIN1_IN" description:"Input file, - for stdin" value-name:"path"`
	Out    string        `short:"o" long:"out" env:"LATIN1_OUT" description:"Output file, - for stdout" value-name:"path"`
	Quiet  bool          `short:"q" long:"quiet" description:"Only log warnings and errors"`
	Decode DecodeOptions `command:"decode" description:"Convert nul-terminated WINDOWS-1252 records to UTF-8"`
	Encode EncodeOptions `command:"encode" description:"Convert UTF-8 lines to nul-terminated WINDOWS-1252 records"`
}

type DecodeOptions struct {
	Format string `short:"f" long:"format" env:"LATIN1_FORMAT" description:"Output format" choice:"lines" choice:"json" choice:"yaml"`
}

type EncodeOptions struct{}

const (
	FormatLines = "lines"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

var (
	log     = logrus.WithField("category", "latin1")
	options Options
)

func main() {
	parser := flags.NewParser(&options, flags.Default)
	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		if options.Quiet {
			logrus.SetLevel(logrus.WarnLevel)
		}
		setter.SetDefault(&options.In, "-")
		setter.SetDefault(&options.Out, "-")
		return cmd.Execute(args)
	}

	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		// flags.Default already printed the error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
}

func (o *DecodeOptions) Execute([]string) error {
	setter.SetDefault(&o.Format, FormatLines)
	return run("decode", func(r io.Reader, w io.Writer) (int, error) {
		return decode(r, w, o.Format)
	})
}

func (o *EncodeOptions) Execute([]string) error {
	return run("encode", encode)
}

func run(mode string, convert func(io.Reader, io.Writer) (int, error)) error {
	in, closeIn, err := openInput(options.In)
	if err != nil {
		return err
	}
	defer closeIn()

	out, closeOut, err := openOutput(options.Out)
	if err != nil {
		return err
	}

	start := time.Now()
	count, err := convert(in, out)
	if cerr := closeOut(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"mode":    mode,
		"records": count,
		"elapsed": time.Since(start),
	}).Info("Conversion finished")
	return nil
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "while opening input '%s'", path)
	}
	return f, func() { _ = f.Close() }, nil
}

func openOutput(path string) (io.Writer, func() error, error) {
	if path == "-" {
		w := bufio.NewWriter(os.Stdout)
		return w, w.Flush, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "while creating output '%s'", path)
	}
	w := bufio.NewWriter(f)
	return w, func() error {
		if err := w.Flush(); err != nil {
			_ = f.Close()
			return errors.Wrap(err, "while flushing output")
		}
		return f.Close()
	}, nil
}

// decode reads nul-terminated records from r and writes them to w as UTF-8
// in the given format. It returns the number of records converted.
func decode(r io.Reader, w io.Writer, format string) (int, error) {
	records, err := latin1str.NewReader(r).ReadAll()
	if err != nil {
		return 0, errors.Wrap(err, "while reading records")
	}

	switch format {
	case FormatLines:
		for _, rec := range records {
			if _, err := fmt.Fprintln(w, rec.Decode()); err != nil {
				return 0, errors.Wrap(err, "while writing line")
			}
		}
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(nonNil(records)); err != nil {
			return 0, errors.Wrap(err, "while writing JSON")
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(nonNil(records)); err != nil {
			return 0, errors.Wrap(err, "while writing YAML")
		}
		if err := enc.Close(); err != nil {
			return 0, errors.Wrap(err, "while writing YAML")
		}
	default:
		return 0, errors.Errorf("unknown output format '%s'", format)
	}
	return len(records), nil
}

// encode reads UTF-8 lines from r and writes each one to w as a
// nul-terminated WINDOWS-1252 record.
func encode(r io.Reader, w io.Writer) (int, error) {
	out := latin1str.NewWriter(w)
	scanner := bufio.NewScanner(r)
	var count, substituted int
	for scanner.Scan() {
		c := latin1str.Encode(scanner.Text())
		if c.Owned() && c.Decode().String() != scanner.Text() {
			substituted++
			log.WithField("line", count+1).Debug("Line contains characters WINDOWS-1252 cannot represent")
		}
		if err := out.Write(c.Str); err != nil {
			return count, err
		}
		count++
	}
	if err := scanner.Err(); err != nil {
		return count, errors.Wrap(err, "while reading lines")
	}
	if substituted > 0 {
		log.WithField("lines", substituted).Warn("Some characters were replaced with HTML character references")
	}
	return count, nil
}

func nonNil(records []latin1str.String) []latin1str.String {
	if records == nil {
		return []latin1str.String{}
	}
	return records
}
