package grid

import (
	"encoding/csv"
	"os"
	"strconv"
)

// WriteCSV writes the grid as a matrix: the header row holds the CO2 prices,
// the first column holds the H2 prices.
func WriteCSV(path string, g *Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := make([]string, 0, g.Cols()+1)
	header = append(header, "h2_price\\co2_price ("+g.Unit.Label()+")")
	for _, co2 := range g.CO2Prices {
		header = append(header, fmtFloat(co2))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for r, h2 := range g.H2Prices {
		row := make([]string, 0, g.Cols()+1)
		row = append(row, fmtFloat(h2))
		for c := range g.CO2Prices {
			row = append(row, fmtFloat(g.At(r, c)))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
