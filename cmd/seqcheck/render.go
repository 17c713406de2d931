package main

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/samthor/seqstore/check"
)

var (
	passLabel = color.New(color.FgGreen, color.Bold).SprintFunc()
	failLabel = color.New(color.FgRed, color.Bold).SprintFunc()
)

func newTable() table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	return tbl
}

func comma(n int) string {
	return humanize.Comma(int64(n))
}

func perOp(elapsed time.Duration, ops int) string {
	if ops == 0 {
		return "-"
	}
	return (elapsed / time.Duration(ops)).String()
}

func renderFuzz(w io.Writer, reports []check.Report) {
	tbl := newTable()
	tbl.AppendHeader(table.Row{"Worker", "Strategy", "Ops", "Invalid", "Queries", "Final len", "Per op"})

	var total int
	for _, r := range reports {
		tbl.AppendRow(table.Row{r.Worker, r.Strategy, comma(r.Ops), comma(r.Invalid), comma(r.Queries), comma(r.FinalLen), perOp(r.Elapsed, r.Ops)})
		total += r.Ops
	}
	tbl.AppendFooter(table.Row{"", "Total", comma(total)})

	fmt.Fprintln(w, tbl.Render())
	fmt.Fprintf(w, "%s %s ops matched the model\n", passLabel("PASS"), comma(total))
}

func renderBench(w io.Writer, results []check.BenchResult) {
	tbl := newTable()
	tbl.AppendHeader(table.Row{"Strategy", "Ops", "Final len", "Elapsed", "Per op", "Ops/sec"})

	for _, r := range results {
		rate := "-"
		if secs := r.Elapsed.Seconds(); secs > 0 {
			rate = humanize.SIWithDigits(float64(r.Ops)/secs, 2, "")
		}
		tbl.AppendRow(table.Row{r.Strategy, comma(r.Ops), comma(r.FinalLen), r.Elapsed.Round(time.Millisecond), r.PerOp(), rate})
	}

	fmt.Fprintln(w, tbl.Render())
}

func renderReplay(w io.Writer, name, strategy string, values []int64, err error) {
	if err != nil {
		fmt.Fprintf(w, "%s %s [%s]: %v\n", failLabel("FAIL"), name, strategy, err)
		return
	}
	fmt.Fprintf(w, "%s %s [%s]: %v\n", passLabel("PASS"), name, strategy, values)
}
