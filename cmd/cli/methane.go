package main

import (
	"fmt"
	"os"
	"path/filepath"

	"energy-econ/internal/grid"
	"energy-econ/internal/model"
	"energy-econ/internal/render"

	"github.com/spf13/cobra"
)

func methaneCmd(load configLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "methane",
		Short: "Methane synthesis cost from CO2 and H2 prices",
	}
	cmd.AddCommand(methaneCostCmd(load))
	cmd.AddCommand(methaneGridCmd(load))
	return cmd
}

func methaneCostCmd(load configLoader) *cobra.Command {
	var co2, h2 float64
	var unitStr string

	cmd := &cobra.Command{
		Use:   "cost",
		Short: "Print the methane cost for one price pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			unit, err := model.ParseUnit(unitStr)
			if err != nil {
				return err
			}
			cfg, err := load()
			if err != nil {
				return err
			}
			coeffs := cfg.Methane.Coefficients
			perKg := coeffs.CostPerKg(co2, h2)
			fmt.Fprintf(cmd.OutOrStdout(), "CO2 $%.3f/kg, H2 $%.3f/kg -> methane %s %.4f\n",
				co2, h2, unit.Label(), unit.Convert(perKg, coeffs))
			return nil
		},
	}

	cmd.Flags().Float64Var(&co2, "co2", 0, "CO2 price (USD/kg)")
	cmd.Flags().Float64Var(&h2, "h2", 0, "H2 price (USD/kg)")
	cmd.Flags().StringVar(&unitStr, "unit", string(model.UnitKg), "Output unit (kg|kcf)")
	_ = cmd.MarkFlagRequired("co2")
	_ = cmd.MarkFlagRequired("h2")
	return cmd
}

func methaneGridCmd(load configLoader) *cobra.Command {
	var outDir string
	var units []string
	var writeCSV bool
	var palette string

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Render the cost heat-map for every configured unit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			if outDir == "" {
				outDir = cfg.Methane.OutDir
			}
			if len(units) == 0 {
				units = cfg.Methane.Units
			}

			// Reject every unit up front so a bad selector writes nothing.
			for _, u := range units {
				if _, err := model.ParseUnit(u); err != nil {
					return err
				}
			}

			co2, h2 := cfg.CO2Axis(), cfg.H2Axis()
			out := cmd.OutOrStdout()
			for _, u := range units {
				g, path, err := render.Render(outDir, co2, h2, u, cfg.Methane.Coefficients, render.Options{Palette: palette})
				if err != nil {
					return fmt.Errorf("render %s: %w", u, err)
				}
				fmt.Fprintf(out, "Wrote %s (%s %.4f..%.4f)\n", path, g.Unit.Label(), g.Min(), g.Max())

				if writeCSV {
					csvPath := filepath.Join(outDir, fmt.Sprintf("methane_cost_%s.csv", g.Unit))
					if err := os.MkdirAll(filepath.Dir(csvPath), 0o755); err != nil {
						return err
					}
					if err := grid.WriteCSV(csvPath, g); err != nil {
						return err
					}
					fmt.Fprintf(out, "Wrote %s\n", csvPath)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "", "Output directory (default from config)")
	cmd.Flags().StringSliceVar(&units, "unit", nil, "Units to render (default kg,kcf)")
	cmd.Flags().BoolVar(&writeCSV, "csv", false, "Also write the cost matrix as CSV")
	cmd.Flags().StringVar(&palette, "palette", "", "ColorBrewer sequential palette (default YlGnBu)")
	return cmd
}
