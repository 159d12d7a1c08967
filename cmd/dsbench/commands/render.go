package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
)

const (
	verdictPass = "PASS"
	verdictFail = "FAIL"
	verdictNone = "-"
)

func verdict(r Result, pass, fail *color.Color) string {
	switch {
	case !r.Checked:
		return verdictNone
	case r.Passed:
		return pass.Sprint(verdictPass)
	default:
		return fail.Sprint(verdictFail)
	}
}

// renderResults writes one row per result, grouped by workload.
func renderResults(w io.Writer, results []Result, noColor bool) {
	pass, fail := color.New(color.FgGreen), color.New(color.FgRed)
	if noColor {
		pass.DisableColor()
		fail.DisableColor()
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Workload", "Implementation", "Ops", "Elapsed", "Throughput", "Verify"})

	var (
		total        time.Duration
		passed, ran  int
		lastWorkload string
	)

	for i, r := range results {
		if i > 0 && r.Workload != lastWorkload {
			tw.AppendSeparator()
		}

		lastWorkload = r.Workload
		total += r.Elapsed

		if r.Checked {
			ran++

			if r.Passed {
				passed++
			}
		}

		tw.AppendRow(table.Row{
			r.Workload,
			r.Impl,
			humanize.Comma(int64(r.Ops)),
			r.Elapsed.Round(time.Microsecond),
			humanize.SIWithDigits(r.OpsPerSec(), 2, "op/s"),
			verdict(r, pass, fail),
		})
	}

	tw.AppendFooter(table.Row{"", "", "Total", total.Round(time.Microsecond), "", fmt.Sprintf("%d/%d", passed, ran)})

	fmt.Fprintln(w, tw.Render())
}
