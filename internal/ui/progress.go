// Package ui draws per-phase progress bars for the command line tools.
package ui

import (
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"
)

// Phase names a stage of a scaffold or report run
type Phase string

const (
	PhaseResolving  Phase = "Resolving"
	PhaseRendering  Phase = "Rendering"
	PhaseWriting    Phase = "Writing"
	PhaseScanning   Phase = "Scanning"
	PhaseParsing    Phase = "Parsing"
	PhaseGenerating Phase = "Generating"
)

var (
	ScaffoldPhases = []Phase{PhaseResolving, PhaseRendering, PhaseWriting}
	ReportPhases   = []Phase{PhaseScanning, PhaseParsing, PhaseGenerating}
)

var theme = progressbar.Theme{
	Saucer:        "█",
	SaucerHead:    "█",
	SaucerPadding: "░",
	BarStart:      "[",
	BarEnd:        "]",
}

// Bar is the progress of one phase
type Bar struct {
	bar   *progressbar.ProgressBar
	phase Phase
}

// newBar draws to w, or nowhere when w is nil
func newBar(phase Phase, total int, w io.Writer) *Bar {
	if w == nil {
		return &Bar{bar: progressbar.DefaultSilent(int64(total)), phase: phase}
	}
	return &Bar{
		bar: progressbar.NewOptions(total,
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetDescription(fmt.Sprintf("[%s]", phase)),
			progressbar.OptionSetTheme(theme),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(40),
			progressbar.OptionClearOnFinish(),
		),
		phase: phase,
	}
}

// Increment advances the bar by one; drawing failures are returned
func (b *Bar) Increment() error {
	if err := b.bar.Add(1); err != nil {
		return fmt.Errorf("%s progress: %w", b.phase, err)
	}
	return nil
}

// SetTotal changes the expected count once it is known (e.g. after scanning)
func (b *Bar) SetTotal(total int) { b.bar.ChangeMax(total) }

// Describe shows the item being worked on next to the phase name
func (b *Bar) Describe(item string) {
	b.bar.Describe(fmt.Sprintf("[%s] %s", b.phase, item))
}

func (b *Bar) Phase() string { return string(b.phase) }

func (b *Bar) finish() { _ = b.bar.Finish() }

// Pipeline hands out one bar per phase, in order
type Pipeline struct {
	phases  []Phase
	next    int
	current *Bar
	out     io.Writer
}

// NewPipeline draws the given phases to out
func NewPipeline(out io.Writer, phases ...Phase) *Pipeline {
	return &Pipeline{phases: phases, out: out}
}

// Disable keeps the bookkeeping but draws nothing
func (p *Pipeline) Disable() {
	p.out = nil
}

// NextPhase finishes the running bar and starts the next phase.
// It returns nil once every phase has been started.
func (p *Pipeline) NextPhase(total int) *Bar {
	p.Finish()
	if p.next >= len(p.phases) {
		return nil
	}
	p.current = newBar(p.phases[p.next], total, p.out)
	p.next++
	return p.current
}

// Run executes step as the next phase and finishes its bar afterwards
func (p *Pipeline) Run(total int, step func(bar *Bar) error) error {
	bar := p.NextPhase(total)
	if bar == nil {
		return fmt.Errorf("all %d phases already ran", len(p.phases))
	}
	defer p.Finish()
	return step(bar)
}

// Finish completes the running bar, if any
func (p *Pipeline) Finish() {
	if p.current != nil {
		p.current.finish()
		p.current = nil
	}
}

// PrintSummary writes a closing line unless the pipeline is disabled
func (p *Pipeline) PrintSummary(message string) {
	if p.out != nil {
		fmt.Fprintln(p.out, message)
	}
}
