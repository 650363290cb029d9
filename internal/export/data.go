// Package export writes isotherm series as CSV, JSON, SVG and PNG.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/thermolab/internal/isotherm"
)

var csvHeader = []string{"species", "model", "temperature_k", "pressure_pa", "pressure_bar", "z", "molar_volume_m3", "molar_volume_l"}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 10, 64)
}

// WriteCSV writes one row per point of every series, long format.
func WriteCSV(w io.Writer, series ...*isotherm.Series) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, s := range series {
		bar := s.Bar()
		litres := s.LitresPerMole()
		for i, p := range s.Points {
			row := []string{
				s.Config.Species.Symbol,
				s.Config.Model.String(),
				formatFloat(s.Config.Temperature),
				formatFloat(p.Pressure),
				formatFloat(bar[i]),
				formatFloat(p.Z),
				formatFloat(p.MolarVolume),
				formatFloat(litres[i]),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// Document is the JSON layout of an export.
type Document struct {
	Series []SeriesData `json:"series"`
}

type SeriesData struct {
	Label       string           `json:"label"`
	Species     string           `json:"species"`
	Model       string           `json:"model"`
	Temperature float64          `json:"temperature"`
	Samples     int              `json:"samples"`
	Points      []isotherm.Point `json:"points"`
}

// WriteJSON writes every series as an indented JSON document.
func WriteJSON(w io.Writer, series ...*isotherm.Series) error {
	doc := Document{Series: make([]SeriesData, len(series))}
	for i, s := range series {
		doc.Series[i] = SeriesData{
			Label:       s.Label(),
			Species:     s.Config.Species.Symbol,
			Model:       s.Config.Model.String(),
			Temperature: s.Config.Temperature,
			Samples:     s.Len(),
			Points:      s.Points,
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}

// WriteValue writes any value as indented JSON.
func WriteValue(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
