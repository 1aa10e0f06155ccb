// Command editorblocks converts HTML and Markdown files into editor blocks.
//
// Usage:
//
//	editorblocks [flags] [file ...]
//
// Without file arguments the input is read from stdin. Flags may also be set
// in a configuration file given with -config.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/andreimerlescu/configurable"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"

	"github.com/tsawler/editorblocks/format"
	"github.com/tsawler/editorblocks/model"
)

// tracer traces with key 'editorblocks.cli'
func tracer() tracing.Trace {
	return tracing.Select("editorblocks.cli")
}

// traceKeys are the trace keys of all packages, configured to one level.
var traceKeys = []string{
	"editorblocks",
	"editorblocks.cli",
	"editorblocks.embed",
	"editorblocks.html",
	"editorblocks.markdown",
}

var (
	config = configurable.New()

	flagFormat  = config.NewString("format", "auto", "Input format [auto|html|markdown]")
	flagOutput  = config.NewString("output", "json", "Output format [json|yaml|markdown|text]")
	flagVersion = config.NewString("version", model.SchemaVersion, "Schema version written into documents")
	flagTrace   = config.NewString("trace", "Error", "Trace level [Debug|Info|Error]")
	flagJobs    = config.NewInt("jobs", 4, "Number of files converted concurrently")
	flagPretty  = config.NewBool("pretty", false, "Indent JSON output")
	flagNFC     = config.NewBool("nfc", false, "Normalize block text to Unicode NFC")
	flagConfig  = config.NewString("config", "", "Configuration file")
)

func main() {
	initDisplay()

	if err := config.Parse(*flagConfig); err != nil {
		pterm.Error.Printfln("failed to parse configuration: %v", err)
		os.Exit(1)
	}
	if err := initTracing(*flagTrace); err != nil {
		pterm.Error.Println("error configuring tracing")
		os.Exit(1)
	}

	opts, err := newOptions()
	if err != nil {
		pterm.Error.Println(err.Error())
		flag.Usage()
		os.Exit(2)
	}
	tracer().Infof("converting with format=%s output=%s", opts.format, opts.output)

	files := flag.Args()
	if len(files) == 0 {
		out, err := convertStdin(opts)
		if err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(3)
		}
		os.Stdout.Write(out)
		return
	}

	failed := 0
	for _, res := range convertFiles(files, opts, *flagJobs) {
		if res.err != nil {
			pterm.Error.Printfln("%s: %v", res.file, res.err)
			failed++
			continue
		}
		if len(files) > 1 {
			pterm.Info.Println(res.file)
		}
		os.Stdout.Write(res.out)
	}
	if failed > 0 {
		os.Exit(3)
	}
}

// options is the validated command line configuration.
type options struct {
	format  format.Format
	output  string
	version string
	pretty  bool
	nfc     bool
}

func newOptions() (options, error) {
	f, ok := format.Parse(*flagFormat)
	if !ok {
		return options{}, fmt.Errorf("unknown input format %q", *flagFormat)
	}
	output := strings.ToLower(strings.TrimSpace(*flagOutput))
	switch output {
	case "json", "yaml", "markdown", "md", "text", "txt":
	default:
		return options{}, fmt.Errorf("unknown output format %q", *flagOutput)
	}
	return options{
		format:  f,
		output:  output,
		version: *flagVersion,
		pretty:  *flagPretty,
		nfc:     *flagNFC,
	}, nil
}

// initTracing routes all trace keys through the Go log adapter.
func initTracing(level string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
	}
	for _, key := range traceKeys {
		conf["trace."+key] = level
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

// We use pterm for moderately fancy output. Messages go to stderr so that
// stdout carries only converted documents.
func initDisplay() {
	pterm.SetDefaultOutput(os.Stderr)
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " >> ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
