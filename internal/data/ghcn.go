package data

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

const DefaultGHCNBaseURL = "https://www.ncei.noaa.gov/oa/global-historical-climatology-network/hourly/access/by-year"

// GHCNClient downloads hourly station files from the NOAA Global Historical
// Climatology Network (GHCNh) by-year parquet archive.
type GHCNClient struct {
	BaseURL string
	Client  *http.Client
	Logger  *zap.Logger
}

// NewGHCNClient creates a client. If baseURL is empty, the NOAA archive is used.
func NewGHCNClient(baseURL string, logger *zap.Logger) *GHCNClient {
	if baseURL == "" {
		baseURL = DefaultGHCNBaseURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GHCNClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client: &http.Client{
			Timeout: 5 * time.Minute,
		},
		Logger: logger,
	}
}

// GHCNError is a non-200 answer from the archive.
type GHCNError struct {
	StationID  string
	StatusCode int
	Status     string
}

func (e *GHCNError) Error() string {
	return fmt.Sprintf("station %s: archive returned %s", e.StationID, e.Status)
}

// FileName is the archive name for one station-year, e.g. GHCNh_AGM00060371_2023.parquet.
func FileName(stationID string, year int) string {
	return fmt.Sprintf("GHCNh_%s_%d.parquet", stationID, year)
}

// URL is the download location for one station-year.
func (c *GHCNClient) URL(stationID string, year int) string {
	return fmt.Sprintf("%s/%d/parquet/%s", c.BaseURL, year, FileName(stationID, year))
}

// DownloadResult lists which stations were saved and which failed.
type DownloadResult struct {
	Succeeded []string
	Failed    []string
}

// DownloadYear fetches one year of hourly data for each station into outDir.
// A failing station is recorded and the loop continues; only context
// cancellation or an unwritable outDir aborts the run.
func (c *GHCNClient) DownloadYear(ctx context.Context, year int, stationIDs []string, outDir string) (*DownloadResult, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	c.Logger.Info("downloading ghcn hourly data",
		zap.Int("stations", len(stationIDs)),
		zap.Int("year", year))

	res := &DownloadResult{}
	for _, raw := range stationIDs {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		id := strings.TrimSpace(raw)
		if id == "" {
			continue
		}

		path := filepath.Join(outDir, FileName(id, year))
		if err := c.downloadStation(ctx, id, year, path); err != nil {
			if ctx.Err() != nil {
				return res, ctx.Err()
			}
			c.Logger.Warn("station download failed", zap.String("station", id), zap.Error(err))
			res.Failed = append(res.Failed, id)
			continue
		}
		res.Succeeded = append(res.Succeeded, id)
	}

	c.Logger.Info("ghcn download finished",
		zap.Int("succeeded", len(res.Succeeded)),
		zap.Int("failed", len(res.Failed)))
	return res, nil
}

func (c *GHCNClient) downloadStation(ctx context.Context, id string, year int, path string) error {
	u := c.URL(id, year)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	start := time.Now()
	resp, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	c.Logger.Debug("ghcn response",
		zap.String("url", u),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))

	if resp.StatusCode != http.StatusOK {
		return &GHCNError{StationID: id, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	// Stage in .part; renamed only after a complete copy.
	tmp := path + ".part"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}
