package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	OUTPUT_TEXT = "text"
	OUTPUT_JSON = "json"
	OUTPUT_YAML = "yaml"
)

func checkOutputFormat(format string) error {
	switch format {
	case OUTPUT_TEXT, OUTPUT_JSON, OUTPUT_YAML:
		return nil
	default:
		return fmt.Errorf("unknown output format %q, expected text, json or yaml", format)
	}
}

// textWriter. anything that knows how to print itself for humans.
type textWriter interface {
	writeText(w io.Writer) error
}

func render(w io.Writer, format string, v textWriter) error {
	switch format {
	case OUTPUT_JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case OUTPUT_YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return v.writeText(w)
	}
}

type sortOutput struct {
	ID        string         `json:"id" yaml:"id"`
	Algorithm string         `json:"algorithm" yaml:"algorithm"`
	Input     []float64      `json:"input" yaml:"input"`
	Sorted    []float64      `json:"sorted" yaml:"sorted"`
	Counts    map[string]int `json:"counts" yaml:"counts"`
	Steps     []string       `json:"steps,omitempty" yaml:"steps,omitempty"`
	ElapsedMs float64        `json:"elapsed_ms" yaml:"elapsed_ms"`
}

func (o sortOutput) writeText(w io.Writer) error {
	fmt.Fprintf(w, "%s sort of %d values\n", o.Algorithm, len(o.Input))
	fmt.Fprintf(w, "input:  %s\n", formatValues(o.Input))
	fmt.Fprintf(w, "sorted: %s\n", formatValues(o.Sorted))
	fmt.Fprintf(w, "steps:  %s\n", formatCounts(o.Counts))
	for k, s := range o.Steps {
		fmt.Fprintf(w, "%6d  %s\n", k, s)
	}
	_, err := fmt.Fprintf(w, "elapsed %.3fms\n", o.ElapsedMs)
	return err
}

type sortComparison []sortOutput

func (c sortComparison) writeText(w io.Writer) error {
	fmt.Fprintf(w, "%-10s %8s %8s %8s %10s %8s %10s\n", "algorithm", "steps", "compare", "swap", "overwrite",
		"sorted", "elapsed")
	for _, o := range c {
		total := 0
		for _, n := range o.Counts {
			total += n
		}
		if _, err := fmt.Fprintf(w, "%-10s %8d %8d %8d %10d %8d %8.3fms\n", o.Algorithm, total, o.Counts["compare"],
			o.Counts["swap"], o.Counts["overwrite"], o.Counts["markSorted"], o.ElapsedMs); err != nil {
			return err
		}
	}
	return nil
}

type cellOutput struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

type pathOutput struct {
	ID           string       `json:"id" yaml:"id"`
	Algorithm    string       `json:"algorithm" yaml:"algorithm"`
	Rows         int          `json:"rows" yaml:"rows"`
	Cols         int          `json:"cols" yaml:"cols"`
	Found        bool         `json:"found" yaml:"found"`
	VisitedCount int          `json:"visited_count" yaml:"visited_count"`
	PathLength   int          `json:"path_length" yaml:"path_length"`
	Path         []cellOutput `json:"path" yaml:"path"`
	PathPolyline string       `json:"path_polyline" yaml:"path_polyline"`
	Rendered     []string     `json:"rendered" yaml:"rendered"`
	ElapsedMs    float64      `json:"elapsed_ms" yaml:"elapsed_ms"`
}

func (o pathOutput) writeText(w io.Writer) error {
	for _, line := range o.Rendered {
		fmt.Fprintln(w, line)
	}
	outcome := "no path"
	if o.Found {
		outcome = fmt.Sprintf("path of %d cells", o.PathLength)
	}
	_, err := fmt.Fprintf(w, "%s on %dx%d: visited %d cells, %s, elapsed %.3fms\n", o.Algorithm, o.Rows, o.Cols,
		o.VisitedCount, outcome, o.ElapsedMs)
	return err
}

type pathComparison []pathOutput

func (c pathComparison) writeText(w io.Writer) error {
	fmt.Fprintf(w, "%-10s %8s %8s %6s %10s\n", "algorithm", "visited", "path", "found", "elapsed")
	for _, o := range c {
		if _, err := fmt.Fprintf(w, "%-10s %8d %8d %6t %8.3fms\n", o.Algorithm, o.VisitedCount, o.PathLength, o.Found,
			o.ElapsedMs); err != nil {
			return err
		}
	}
	return nil
}

type boardOutput struct {
	Kind   string       `json:"kind" yaml:"kind"`
	Rows   int          `json:"rows" yaml:"rows"`
	Cols   int          `json:"cols" yaml:"cols"`
	Seed   uint64       `json:"seed" yaml:"seed"`
	Start  cellOutput   `json:"start" yaml:"start"`
	End    cellOutput   `json:"end" yaml:"end"`
	Walls  []cellOutput `json:"walls" yaml:"walls"`
	Layout []string     `json:"layout" yaml:"layout"`
}

func (o boardOutput) writeText(w io.Writer) error {
	_, err := fmt.Fprintln(w, strings.Join(o.Layout, "\n"))
	return err
}

func formatValues(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%g", v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func formatCounts(counts map[string]int) string {
	return fmt.Sprintf("%d compare, %d swap, %d overwrite, %d markSorted", counts["compare"], counts["swap"],
		counts["overwrite"], counts["markSorted"])
}
