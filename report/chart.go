package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Chart renders the convergence history — kinetic energy and total
// mass per recorded step — as a self-contained HTML line chart.
func Chart(rows []Row, path string) error {
	if len(rows) == 0 {
		return fmt.Errorf("report: chart: no recorded rows")
	}

	steps := make([]string, len(rows))
	energy := make([]opts.LineData, len(rows))
	mass := make([]opts.LineData, len(rows))
	for i, row := range rows {
		steps[i] = strconv.Itoa(row.Step)
		energy[i] = opts.LineData{Value: row.Energy}
		mass[i] = opts.LineData{Value: row.Mass}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "convergence",
			Subtitle: "kinetic energy and total mass per export interval",
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "step"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	line.SetXAxis(steps).
		AddSeries("kinetic energy", energy).
		AddSeries("mass", mass)

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: chart: %w", err)
	}
	defer file.Close()

	if err := line.Render(file); err != nil {
		return fmt.Errorf("report: chart: %w", err)
	}

	return nil
}

// ChartFile renders the convergence chart into dir/convergence.html,
// creating the directory if needed.
func ChartFile(rows []Row, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("report: chart: %w", err)
	}

	return Chart(rows, filepath.Join(dir, "convergence.html"))
}
