package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/sirupsen/logrus"

	"github.com/san-kum/thermolab/internal/export"
	"github.com/san-kum/thermolab/internal/isotherm"
	"github.com/san-kum/thermolab/internal/viz"
)

const (
	tableRows = 20
	svgWidth  = 800
	svgHeight = 500
)

// writeSeries prints series in the configured format and writes the
// optional PNG and SVG files.
func writeSeries(outFormat, title string, series []*isotherm.Series) error {
	if len(series) == 0 {
		return fmt.Errorf("nothing to output")
	}

	var err error
	switch outFormat {
	case "table":
		err = printSeriesTable(series)
	case "csv":
		err = export.WriteCSV(os.Stdout, series...)
	case "json":
		err = export.WriteJSON(os.Stdout, series...)
	case "plot":
		fmt.Println(viz.ChartZ(series, viz.DefaultChartSize))
		fmt.Println()
		fmt.Println(viz.ChartPV(series, viz.DefaultChartSize))
	default:
		err = fmt.Errorf("unknown format: %s (available: table, csv, json, plot)", outFormat)
	}
	if err != nil {
		return err
	}

	return writeFiles(title, series)
}

func writeFiles(title string, series []*isotherm.Series) error {
	if pngPath != "" {
		axis := export.AxisZ
		switch strings.ToLower(pngAxis) {
		case "z":
		case "v", "volume":
			axis = export.AxisVolume
		default:
			return fmt.Errorf("unknown axis: %s (available: z, v)", pngAxis)
		}
		if err := export.WritePNG(pngPath, title, axis, series...); err != nil {
			return fmt.Errorf("png: %w", err)
		}
		log.WithFields(logrus.Fields{"path": pngPath, "series": len(series)}).Info("png written")
	}

	if svgPath != "" {
		svg := export.SeriesSVG(series, svgWidth, svgHeight)
		if err := os.WriteFile(svgPath, []byte(svg), 0644); err != nil {
			return fmt.Errorf("svg: %w", err)
		}
		log.WithFields(logrus.Fields{"path": svgPath, "series": len(series)}).Info("svg written")
	}
	return nil
}

// printSeriesTable prints Z of every series side by side, thinned to about
// tableRows rows. The last sample is always shown.
func printSeriesTable(series []*isotherm.Series) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	header := []string{"P (bar)"}
	for _, s := range series {
		header = append(header, "Z "+s.Label())
	}
	fmt.Fprintln(w, strings.Join(header, "\t"))

	n := series[0].Len()
	stride := max(1, (n+tableRows-1)/tableRows)
	bar := series[0].Bar()
	for i := 0; i < n; i++ {
		if i%stride != stride-1 && i != n-1 {
			continue
		}
		row := []string{fmt.Sprintf("%.2f", bar[i])}
		for _, s := range series {
			if i < s.Len() {
				row = append(row, fmt.Sprintf("%.5f", s.Points[i].Z))
			} else {
				row = append(row, "-")
			}
		}
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}

	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	for _, s := range series {
		if p, ok := s.MinZ(); ok {
			fmt.Printf("%s: min Z %.5f at %.2f bar\n", s.Label(), p.Z, p.Pressure/1e5)
		}
	}
	return nil
}
