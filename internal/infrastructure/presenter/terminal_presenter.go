package presenter

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/mfinch/crossrate/internal/domain/entity"
)

const timestampFormat = "Mon 2 Jan 2006 15:04 MST"

// TerminalPresenter formats a rate summary for a terminal. Rates above their
// configured threshold are emphasized; with color disabled the same text is
// printed unadorned.
type TerminalPresenter struct {
	out              io.Writer
	highlightCross   float64
	highlightInverse float64
	highlight        *color.Color
}

// NewTerminalPresenter creates a presenter writing to out
func NewTerminalPresenter(out io.Writer, highlightCross, highlightInverse float64, noColor bool) *TerminalPresenter {
	if out == nil {
		out = os.Stdout
	}

	highlight := color.New(color.FgGreen, color.Bold, color.BlinkSlow)
	if noColor {
		highlight.DisableColor()
	}

	return &TerminalPresenter{
		out:              out,
		highlightCross:   highlightCross,
		highlightInverse: highlightInverse,
		highlight:        highlight,
	}
}

// Present prints the snapshot header and both derived rate lines
func (p *TerminalPresenter) Present(snapshot *entity.RateSnapshot, cross *entity.CrossRate) error {
	if _, err := fmt.Fprintf(p.out, "Exchange rates as of %s\n", snapshot.Time().Format(timestampFormat)); err != nil {
		return fmt.Errorf("failed to write rate summary: %w", err)
	}

	if err := p.printRate(cross.Base, cross.Quote, cross.Rate, p.highlightCross); err != nil {
		return err
	}

	return p.printRate(cross.Quote, cross.Base, cross.Inverse, p.highlightInverse)
}

func (p *TerminalPresenter) printRate(from, to string, rate, threshold float64) error {
	value := fmt.Sprintf("%.4f", rate)
	if shouldHighlight(rate, threshold) {
		value = p.highlight.Sprint(value)
	}

	if _, err := fmt.Fprintf(p.out, "1 %s = %s %s\n", from, value, to); err != nil {
		return fmt.Errorf("failed to write rate summary: %w", err)
	}

	return nil
}

func shouldHighlight(rate, threshold float64) bool {
	return rate > threshold
}
