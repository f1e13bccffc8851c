package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/shapestone/shape-reqline/internal/config"
	"github.com/shapestone/shape-reqline/internal/fastparser"
	"github.com/shapestone/shape-reqline/pkg/reqline"
	"gopkg.in/yaml.v3"
)

type requestView struct {
	Method   string  `json:"method" yaml:"method"`
	URL      string  `json:"url" yaml:"url"`
	Protocol string  `json:"protocol" yaml:"protocol"`
	Version  float64 `json:"version" yaml:"version"`
}

type errorView struct {
	Stage    string `json:"stage" yaml:"stage"`
	Kind     string `json:"kind" yaml:"kind"`
	Position int    `json:"position" yaml:"position"`
	Fragment string `json:"fragment" yaml:"fragment"`
	Message  string `json:"message" yaml:"message"`
}

type lineResult struct {
	Input   string       `json:"input" yaml:"input"`
	OK      bool         `json:"ok" yaml:"ok"`
	Request *requestView `json:"request,omitempty" yaml:"request,omitempty"`
	Error   *errorView   `json:"error,omitempty" yaml:"error,omitempty"`
	Trace   []string     `json:"trace,omitempty" yaml:"trace,omitempty"`
}

func parseLine(input string, trace bool) lineResult {
	res := lineResult{Input: input}

	req, err := reqline.ParseRequestLine(input)
	if err == nil {
		res.OK = true
		res.Request = &requestView{Method: req.Method, URL: req.URL, Protocol: req.Protocol, Version: req.Version}
	} else {
		ev := &errorView{Message: err.Error()}
		var pe *reqline.ParseError
		if errors.As(err, &pe) {
			ev.Stage = pe.Stage.String()
			ev.Kind = pe.Kind.String()
			ev.Position = pe.Position
			ev.Fragment = pe.Fragment
		}
		res.Error = ev
	}

	if trace {
		for _, s := range fastparser.Trace(input) {
			res.Trace = append(res.Trace, s.String())
		}
	}
	return res
}

func writeResults(w io.Writer, format string, results []lineResult) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return err
		}
		return enc.Close()
	default:
		for _, r := range results {
			writeText(w, r)
		}
		return nil
	}
}

func writeText(w io.Writer, r lineResult) {
	green := color.New(color.FgGreen, color.Bold)
	red := color.New(color.FgRed, color.Bold)
	dim := color.New(color.Faint)

	if r.OK {
		green.Fprint(w, "OK  ")
		fmt.Fprintf(w, "method=%s url=%s protocol=%s version=%v\n",
			r.Request.Method, r.Request.URL, r.Request.Protocol, r.Request.Version)
	} else {
		red.Fprint(w, "ERR ")
		fmt.Fprintln(w, r.Error.Message)
	}
	if len(r.Trace) > 0 {
		dim.Fprintf(w, "    trace: %s\n", strings.Join(r.Trace, " -> "))
	}
}
