package main

import (
	"bytes"
	"encoding/json"
	"os"
	"sync"

	sema "github.com/andreimerlescu/go-sema"
	"gopkg.in/yaml.v3"

	"github.com/tsawler/editorblocks"
	"github.com/tsawler/editorblocks/format"
)

// result is the outcome of converting one file.
type result struct {
	file string
	out  []byte
	err  error
}

// convertFiles converts files with at most jobs conversions in flight.
// Results are returned in the order of files.
func convertFiles(files []string, opts options, jobs int) []result {
	results := make([]result, len(files))
	sem := sema.New(jobs)
	var wg sync.WaitGroup
	for i, file := range files {
		sem.Acquire()
		wg.Add(1)
		go func(i int, file string) {
			defer wg.Done()
			defer sem.Release()
			out, err := convert(editorblocks.Open(file), opts)
			results[i] = result{file: file, out: out, err: err}
		}(i, file)
	}
	wg.Wait()
	return results
}

func convertStdin(opts options) ([]byte, error) {
	return convert(editorblocks.FromReader(os.Stdin), opts)
}

// convert configures c from opts and encodes the result.
func convert(c *editorblocks.Converter, opts options) ([]byte, error) {
	if opts.format != format.Unknown {
		c = c.Format(opts.format)
	}
	c = c.Version(opts.version)
	if opts.nfc {
		c = c.Normalize()
	}

	var out []byte
	var warnings []editorblocks.Warning
	var err error
	switch opts.output {
	case "markdown", "md":
		var s string
		s, warnings, err = c.Markdown()
		out = []byte(s + "\n")
	case "text", "txt":
		var s string
		s, warnings, err = c.Text()
		out = []byte(s + "\n")
	case "yaml":
		out, warnings, err = yamlDocument(c)
	default:
		if opts.pretty {
			c = c.Indent("  ")
		}
		out, warnings, err = c.JSON()
		out = append(out, '\n')
	}
	if err != nil {
		return nil, err
	}
	if len(warnings) > 0 {
		tracer().Infof("warnings: %s", editorblocks.FormatWarnings(warnings))
	}
	return out, nil
}

// yamlDocument encodes the document as YAML, keeping the JSON field names.
func yamlDocument(c *editorblocks.Converter) ([]byte, []editorblocks.Warning, error) {
	data, warnings, err := c.JSON()
	if err != nil {
		return nil, warnings, err
	}
	// Numbers stay json.Number so the timestamp is not written as a float
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return nil, warnings, &editorblocks.Error{Kind: editorblocks.Serialization, Msg: "re-reading document", Err: err}
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, warnings, &editorblocks.Error{Kind: editorblocks.Serialization, Msg: "encoding YAML", Err: err}
	}
	return out, warnings, nil
}
