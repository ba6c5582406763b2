// Package output renders plan and absorb results for the escape CLI.
//
// Four encodings are supported: colored text for terminals, indented JSON,
// YAML and deterministic CBOR (RFC 8949 core deterministic encoding).
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/escaperoute/absorb"
	"github.com/katalvlaran/escaperoute/rescue"
	"github.com/katalvlaran/escaperoute/timegraph"
)

// Format is an output encoding.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
	CBOR Format = "cbor"
)

// ErrUnknownFormat indicates an unsupported output encoding.
var ErrUnknownFormat = errors.New("output: unknown format")

// ParseFormat validates s as a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case Text, JSON, YAML, CBOR:
		return f, nil
	}

	return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
}

var encMode cbor.EncMode

func init() {
	opts := cbor.CoreDetEncOptions()
	opts.TextMarshaler = cbor.TextMarshalerTextString
	var err error
	if encMode, err = opts.EncMode(); err != nil {
		panic("output: CBOR encoder initialization failed: " + err.Error())
	}
}

// PlanReport is the encoded form of a rescue result. Nodes are rendered
// with their labels ("start", "target 0", "exit").
type PlanReport struct {
	Scenario  string   `json:"scenario" yaml:"scenario" cbor:"scenario"`
	TimeLimit int      `json:"time_limit" yaml:"time_limit" cbor:"time_limit"`
	Targets   []int    `json:"targets" yaml:"targets" cbor:"targets"`
	Order     []int    `json:"order,omitempty" yaml:"order,omitempty" cbor:"order,omitempty"`
	Cost      int      `json:"cost" yaml:"cost" cbor:"cost"`
	Feasible  bool     `json:"feasible" yaml:"feasible" cbor:"feasible"`
	Reason    string   `json:"reason" yaml:"reason" cbor:"reason"`
	Route     []string `json:"route,omitempty" yaml:"route,omitempty" cbor:"route,omitempty"`
	Cycle     []string `json:"cycle,omitempty" yaml:"cycle,omitempty" cbor:"cycle,omitempty"`
	Evaluated int      `json:"evaluated" yaml:"evaluated" cbor:"evaluated"`
}

// NewPlanReport builds the report for res, computed on g under timeLimit.
func NewPlanReport(name string, g *timegraph.Graph, timeLimit int, res rescue.Result) PlanReport {
	return PlanReport{
		Scenario:  name,
		TimeLimit: timeLimit,
		Targets:   res.Targets,
		Order:     res.Order,
		Cost:      res.Cost,
		Feasible:  res.Feasible,
		Reason:    res.Reason.String(),
		Route:     labels(g, res.Route),
		Cycle:     labels(g, res.Cycle),
		Evaluated: res.Evaluated,
	}
}

func labels(g *timegraph.Graph, walk []timegraph.Node) []string {
	if len(walk) == 0 {
		return nil
	}
	out := make([]string, len(walk))
	for i, v := range walk {
		out[i] = g.Label(v)
	}

	return out
}

// AbsorbReport is the encoded form of an absorb result.
type AbsorbReport struct {
	Scenario    string   `json:"scenario" yaml:"scenario" cbor:"scenario"`
	States      []int    `json:"states" yaml:"states" cbor:"states"`
	Numerators  []int64  `json:"numerators" yaml:"numerators" cbor:"numerators"`
	Denominator int64    `json:"denominator" yaml:"denominator" cbor:"denominator"`
	Fractions   []string `json:"fractions" yaml:"fractions" cbor:"fractions"`
}

// NewAbsorbReport builds the report for res.
func NewAbsorbReport(name string, res absorb.Result) AbsorbReport {
	fr := make([]string, len(res.States))
	for i := range fr {
		fr[i] = res.Probability(i).RatString()
	}

	return AbsorbReport{
		Scenario:    name,
		States:      res.States,
		Numerators:  res.Numerators,
		Denominator: res.Denominator,
		Fractions:   fr,
	}
}

// Printer writes reports to w in one Format.
type Printer struct {
	w      io.Writer
	format Format

	key, good, bad, warn *color.Color
}

// New returns a Printer. colored only affects Text.
func New(w io.Writer, format Format, colored bool) *Printer {
	p := &Printer{
		w:      w,
		format: format,
		key:    color.New(color.FgCyan, color.Bold),
		good:   color.New(color.FgGreen),
		bad:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow),
	}
	for _, c := range []*color.Color{p.key, p.good, p.bad, p.warn} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

// Plan writes r.
func (p *Printer) Plan(r PlanReport) error {
	if p.format == Text {
		return p.planText(r)
	}

	return p.encode(r)
}

// Absorb writes r.
func (p *Printer) Absorb(r AbsorbReport) error {
	if p.format == Text {
		return p.absorbText(r)
	}

	return p.encode(r)
}

// Error writes err in red, whatever the format.
func (p *Printer) Error(err error) {
	p.bad.Fprintf(p.w, "error: %v\n", err)
}

func (p *Printer) encode(v any) error {
	switch p.format {
	case JSON:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case YAML:
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case CBOR:
		data, err := encMode.Marshal(v)
		if err != nil {
			return err
		}
		_, err = p.w.Write(data)
		return err
	}

	return fmt.Errorf("%q: %w", string(p.format), ErrUnknownFormat)
}

func (p *Printer) line(k, v string, c *color.Color) {
	p.key.Fprintf(p.w, "%-11s", k+":")
	if c == nil {
		fmt.Fprintln(p.w, v)
		return
	}
	c.Fprintln(p.w, v)
}

func (p *Printer) planText(r PlanReport) error {
	p.line("scenario", r.Scenario, nil)
	p.line("limit", fmt.Sprint(r.TimeLimit), nil)
	p.line("rescued", fmt.Sprint(r.Targets), p.good)
	switch r.Reason {
	case rescue.ReasonNegativeCycle.String():
		p.line("reason", r.Reason, p.warn)
		p.line("cycle", strings.Join(r.Cycle, " -> "), p.warn)
	case rescue.ReasonSearch.String():
		p.line("order", fmt.Sprint(r.Order), nil)
		cost := p.good
		if !r.Feasible {
			cost = p.bad
		}
		p.line("cost", fmt.Sprint(r.Cost), cost)
		p.line("evaluated", fmt.Sprint(r.Evaluated), nil)
		if len(r.Route) > 0 {
			p.line("route", strings.Join(r.Route, " -> "), nil)
		}
	default:
		p.line("reason", r.Reason, nil)
	}

	return nil
}

func (p *Printer) absorbText(r AbsorbReport) error {
	p.line("scenario", r.Scenario, nil)
	for i, s := range r.States {
		p.line(fmt.Sprintf("state %d", s), r.Fractions[i], p.good)
	}
	flat := absorb.Result{States: r.States, Numerators: r.Numerators, Denominator: r.Denominator}.Flat()
	p.line("solution", fmt.Sprint(flat), nil)

	return nil
}
