package main

import (
	"fmt"

	"energy-econ/internal/model"
	"energy-econ/internal/thermal"

	"github.com/spf13/cobra"
)

func greenhouseCmd(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "greenhouse",
		Short: "Print the energy and cost of one degree hour",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			res := model.DegreeHourCost(cfg.Greenhouse)
			for _, line := range res.Lines() {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
}

func thermalCmd(load configLoader) *cobra.Command {
	var showHours bool

	cmd := &cobra.Command{
		Use:   "thermal",
		Short: "Simulate one day of greenhouse heating and cooling",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			tc := cfg.Thermal
			sim, err := thermal.SimulateDay(tc.Params, tc.Temperatures, tc.TargetTemp, tc.DayOfYear)
			if err != nil {
				return err
			}
			costs := thermal.Costs(sim, tc.Prices)

			out := cmd.OutOrStdout()
			if showHours {
				fmt.Fprintf(out, "%-4s %-8s %-10s %-10s %-10s %-10s %-10s\n", "hour", "type", "conduct", "infilt", "solar", "mass", "total")
				for _, h := range sim.Hourly {
					fmt.Fprintf(out, "%-4d %-8s %-10.1f %-10.1f %-10.1f %-10.1f %-10.1f\n",
						h.Hour, h.Type, h.Conduction, h.Infiltration, h.Solar, h.ThermalMass, h.Total)
				}
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "Heating load: %.3f kWh/m² over %d hours\n", sim.HeatingLoadKWh, len(sim.HeatingHours))
			fmt.Fprintf(out, "Cooling load: %.3f kWh/m² over %d hours\n", sim.CoolingLoadKWh, len(sim.CoolingHours))
			fmt.Fprintf(out, "Daily cost:  heating $%.4f/m², cooling $%.4f/m², total $%.4f/m²\n",
				costs.DailyHeating, costs.DailyCooling, costs.DailyTotal)
			fmt.Fprintf(out, "Annual cost: heating $%.2f/m², cooling $%.2f/m², total $%.2f/m²\n",
				costs.AnnualHeating, costs.AnnualCooling, costs.AnnualTotal)
			return nil
		},
	}
	cmd.Flags().BoolVar(&showHours, "hours", false, "Print the hourly breakdown")
	return cmd
}

func solarCmd() *cobra.Command {
	var latitude float64
	var day int

	cmd := &cobra.Command{
		Use:   "solar",
		Short: "Print clear-sky solar flux for a latitude and day of year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if day < 1 || day > 366 {
				return fmt.Errorf("--day must be between 1 and 366, got %d", day)
			}
			if latitude < -90 || latitude > 90 {
				return fmt.Errorf("--latitude must be between -90 and 90, got %g", latitude)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-5s %s\n", "hour", "flux (W/m²)")
			for hour := 0; hour <= 24; hour++ {
				fmt.Fprintf(out, "%-5d %.1f\n", hour, thermal.SolarFlux(latitude, float64(hour), day))
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&latitude, "latitude", 40, "Latitude in degrees north")
	cmd.Flags().IntVar(&day, "day", 172, "Day of year (1-366)")
	return cmd
}
