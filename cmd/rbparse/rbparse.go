package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/k0kubun/pp/v3"

	"github.com/k0kubun/rbparse/internal/rblog"
	"github.com/k0kubun/rbparse/packer"
	"github.com/k0kubun/rbparse/parser"
	"github.com/k0kubun/rbparse/printer"
	"github.com/k0kubun/rbparse/util"
)

var version string

type options struct {
	Pack    bool `long:"pack" description:"Use the packer visitor instead of the printer"`
	Debug   bool `long:"debug" description:"With parse, pretty-print the packed records (with --pack) or the source buffer via pp.Println"`
	Help    bool `long:"help" description:"Show this help"`
	Version bool `long:"version" description:"Show this version"`

	Positional struct {
		Command string `positional-arg-name:"command" description:"tokenize or parse"`
		Path    string `positional-arg-name:"path" description:"source file to read; stdin if omitted"`
	} `positional-args:"yes"`
}

func parseOptions(args []string) (*options, *flags.Parser) {
	var opts options
	parser := flags.NewParser(&opts, flags.None)
	parser.Usage = "[options] tokenize|parse [path]"
	if _, err := parser.ParseArgs(args); err != nil {
		log.Fatal(err)
	}
	return &opts, parser
}

func readSource(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func main() {
	rblog.InitSlog()
	opts, flagParser := parseOptions(os.Args[1:])

	if opts.Help {
		flagParser.WriteHelp(os.Stdout)
		os.Exit(0)
	}
	if opts.Version {
		fmt.Println(version)
		os.Exit(0)
	}

	source, err := readSource(opts.Positional.Path)
	if err != nil {
		log.Fatal(err)
	}

	switch opts.Positional.Command {
	case "tokenize":
		if err := parser.Tokenize(source, os.Stdout); err != nil {
			log.Fatal(err)
		}
	case "parse":
		runParse(source, opts)
	default:
		fmt.Printf("Unknown command: %q\n\n", opts.Positional.Command)
		flagParser.WriteHelp(os.Stdout)
		os.Exit(1)
	}
}

func runParse(source []byte, opts *options) {
	if opts.Pack {
		pk := packer.New()
		parser.Parse(source, pk)
		if opts.Debug {
			pp.Println(debugRecords(pk.Buf.Bytes()))
		}
		os.Stdout.Write(pk.Buf.Bytes())
		return
	}

	p := printer.New(os.Stdout, source)
	parser.Parse(source, p)
	if opts.Debug {
		pp.Println(source)
	}
}

// debugRecords splits a packer buffer into its fixed-size records for
// --debug's pp.Println, one hex-encoded chunk per record.
func debugRecords(buf []byte) []string {
	var chunks [][]byte
	for i := 0; i+12 <= len(buf); i += 12 {
		chunks = append(chunks, buf[i:i+12])
	}
	return util.TransformSlice(chunks, func(rec []byte) string {
		return fmt.Sprintf("%x", rec)
	})
}
