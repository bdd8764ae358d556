package main

import (
	"fmt"
	"os"

	"energy-econ/internal/data"
	"energy-econ/internal/logging"

	"github.com/spf13/cobra"
)

func ghcnCmd(load configLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ghcn",
		Short: "NOAA GHCN hourly weather data",
	}
	cmd.AddCommand(ghcnDownloadCmd(load))
	return cmd
}

func ghcnDownloadCmd(load configLoader) *cobra.Command {
	var year, offset, limit int
	var stationFile, outDir string
	var succeededFile, failedFile string

	cmd := &cobra.Command{
		Use:   "download",
		Short: "Download one year of hourly parquet files for a list of stations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			if year == 0 {
				year = cfg.GHCN.Year
			}
			if stationFile == "" {
				stationFile = cfg.GHCN.StationFile
			}
			if outDir == "" {
				outDir = cfg.GHCN.OutDir
			}

			ids, err := data.LoadStationIDs(stationFile, offset, limit)
			if err != nil {
				return err
			}

			logger, err := logging.New(os.Getenv("LOG_LEVEL"), "stderr")
			if err != nil {
				return err
			}
			defer logger.Sync()

			client := data.NewGHCNClient(cfg.GHCN.BaseURL, logger)
			res, err := client.DownloadYear(cmd.Context(), year, ids, outDir)
			if res == nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d succeeded, %d failed\n", len(res.Succeeded), len(res.Failed))

			// Partial results are still recorded when the run was interrupted.
			if werr := writeIDLists(succeededFile, res.Succeeded, failedFile, res.Failed); werr != nil && err == nil {
				err = werr
			}
			return err
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Year to download (default from config)")
	cmd.Flags().StringVar(&stationFile, "stations", "", "File with one station id per line")
	cmd.Flags().StringVar(&outDir, "out", "", "Output directory")
	cmd.Flags().IntVar(&offset, "offset", 0, "Skip the first N station ids")
	cmd.Flags().IntVar(&limit, "limit", 0, "Download at most N stations (0=all)")
	cmd.Flags().StringVar(&succeededFile, "succeeded", "ghcn_succeed_ids.txt", "Where to list downloaded station ids (empty to skip)")
	cmd.Flags().StringVar(&failedFile, "failed", "ghcn_failed_ids.txt", "Where to list failed station ids (empty to skip)")
	return cmd
}

func writeIDLists(succeededFile string, succeeded []string, failedFile string, failed []string) error {
	if succeededFile != "" {
		if err := data.WriteIDs(succeededFile, succeeded); err != nil {
			return err
		}
	}
	if failedFile != "" {
		if err := data.WriteIDs(failedFile, failed); err != nil {
			return err
		}
	}
	return nil
}
