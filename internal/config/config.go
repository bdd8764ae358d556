package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"energy-econ/internal/data"
	"energy-econ/internal/grid"
	"energy-econ/internal/model"
	"energy-econ/internal/thermal"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Methane MethaneConfig `yaml:"methane"`

	// Optional: load greenhouse parameters from a separate YAML (e.g. examples/greenhouses/*.yaml).
	// If both GreenhouseFile and a greenhouse: block are provided, the block overrides the file.
	// Greenhouse holds the resolved parameters; the greenhouse: block is decoded as a
	// GreenhouseOverride so explicit zeros survive the merge.
	GreenhouseFile string                 `yaml:"greenhouse_file"`
	Greenhouse     model.GreenhouseParams `yaml:"-"`

	Thermal ThermalConfig `yaml:"thermal"`
	GHCN    GHCNConfig    `yaml:"ghcn"`
	API     APIConfig     `yaml:"api"`
}

type MethaneConfig struct {
	Coefficients model.MethaneCoefficients `yaml:"coefficients"`
	CO2Prices    []float64                 `yaml:"co2_prices"`
	H2Prices     []float64                 `yaml:"h2_prices"`
	// Axes may instead be given as ranges; explicit price lists win.
	CO2Range *AxisRange `yaml:"co2_range"`
	H2Range  *AxisRange `yaml:"h2_range"`
	Units    []string   `yaml:"units"`
	OutDir   string     `yaml:"out_dir"`
}

type AxisRange struct {
	Start float64 `yaml:"start"`
	Stop  float64 `yaml:"stop"`
	Step  float64 `yaml:"step"`
}

type ThermalConfig struct {
	Params       thermal.Params `yaml:"params"`
	Prices       thermal.Prices `yaml:"prices"`
	Temperatures []float64      `yaml:"temperatures"`
	TargetTemp   float64        `yaml:"target_temp"`
	DayOfYear    int            `yaml:"day_of_year"`
}

type GHCNConfig struct {
	BaseURL     string `yaml:"base_url"`
	Year        int    `yaml:"year"`
	StationFile string `yaml:"station_file"`
	OutDir      string `yaml:"out_dir"`
}

type APIConfig struct {
	Port         string        `yaml:"port"`
	Env          string        `yaml:"env"`
	RatePerSec   float64       `yaml:"rate_per_sec"`
	Burst        int           `yaml:"burst"`
	RedisAddr    string        `yaml:"redis_addr"`
	ArtifactTTL  time.Duration `yaml:"artifact_ttl"`
	AllowOrigins []string      `yaml:"allow_origins"`
}

// Default returns the configuration the notebooks ran with.
func Default() *Config {
	return &Config{
		Methane: MethaneConfig{
			Coefficients: model.DefaultMethaneCoefficients(),
			CO2Prices:    []float64{0.05, 0.078, 0.1, 0.15, 0.2},
			H2Prices:     []float64{0.89, 1.5, 2, 3, 4, 5},
			Units:        []string{string(model.UnitKg), string(model.UnitKcf)},
			OutDir:       "results",
		},
		Greenhouse: model.DefaultGreenhouseParams(),
		Thermal: ThermalConfig{
			Params:       thermal.DefaultParams(),
			Prices:       thermal.DefaultPrices(),
			Temperatures: append([]float64(nil), thermal.WinterDay[:]...),
			TargetTemp:   23,
			DayOfYear:    15,
		},
		GHCN: GHCNConfig{
			BaseURL:     data.DefaultGHCNBaseURL,
			Year:        2023,
			StationFile: "ghcn_station_ids.txt",
			OutDir:      "ghcn_hourly_data",
		},
		API: APIConfig{
			Port:        "8080",
			Env:         "development",
			RatePerSec:  20,
			Burst:       40,
			ArtifactTTL: time.Hour,
		},
	}
}

// Load reads path (if non-empty) over the defaults, applies environment
// overrides and validates the result.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.ApplyEnv()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Default price lists apply only to an axis the file sets neither a list
	// nor a range for.
	defaults := c.Methane
	c.Methane.CO2Prices, c.Methane.H2Prices = nil, nil
	if err := yaml.Unmarshal(raw, c); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if len(c.Methane.CO2Prices) == 0 && c.Methane.CO2Range == nil {
		c.Methane.CO2Prices = defaults.CO2Prices
	}
	if len(c.Methane.H2Prices) == 0 && c.Methane.H2Range == nil {
		c.Methane.H2Prices = defaults.H2Prices
	}

	var overrides greenhouseFileWrapper
	if err := yaml.Unmarshal(raw, &overrides); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	base := model.DefaultGreenhouseParams()
	if c.GreenhouseFile != "" {
		greenhousePath := c.GreenhouseFile
		if !filepath.IsAbs(greenhousePath) {
			// Prefer paths relative to the config file, falling back to cwd.
			cand := filepath.Join(filepath.Dir(path), greenhousePath)
			if _, err := os.Stat(cand); err == nil {
				greenhousePath = cand
			}
		}
		loaded, err := LoadGreenhouseFile(greenhousePath)
		if err != nil {
			return nil, err
		}
		base = MergeGreenhouse(base, loaded)
	}
	c.Greenhouse = MergeGreenhouse(base, overrides.Greenhouse)
	return c, nil
}

// GreenhouseOverride is a partial set of greenhouse parameters. Nil fields
// keep the base value; a non-nil zero is applied as zero.
type GreenhouseOverride struct {
	FloorAreaSqFt          *float64 `yaml:"floor_area_sqft"`
	CeilingHeightFt        *float64 `yaml:"ceiling_height_ft"`
	AirChangesPerHour      *float64 `yaml:"air_changes_per_hour"`
	AirHeatCapacity        *float64 `yaml:"air_heat_capacity"`
	InfiltrationFactor     *float64 `yaml:"infiltration_factor"`
	GreenhouseEffectFactor *float64 `yaml:"greenhouse_effect_factor"`
	HeatingEfficiency      *float64 `yaml:"heating_efficiency"`
	CoolingCOP             *float64 `yaml:"cooling_cop"`
	HeatingRatePerKWh      *float64 `yaml:"heating_rate_per_kwh"`
	CoolingRatePerKWh      *float64 `yaml:"cooling_rate_per_kwh"`
}

type greenhouseFileWrapper struct {
	Greenhouse GreenhouseOverride `yaml:"greenhouse"`
}

// LoadGreenhouseFile reads a YAML file holding a top-level greenhouse: block.
func LoadGreenhouseFile(path string) (GreenhouseOverride, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return GreenhouseOverride{}, err
	}
	var w greenhouseFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return GreenhouseOverride{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return w.Greenhouse, nil
}

// MergeGreenhouse overlays the set fields of override onto base.
func MergeGreenhouse(base model.GreenhouseParams, override GreenhouseOverride) model.GreenhouseParams {
	out := base
	set := func(dst *float64, v *float64) {
		if v != nil {
			*dst = *v
		}
	}
	set(&out.FloorAreaSqFt, override.FloorAreaSqFt)
	set(&out.CeilingHeightFt, override.CeilingHeightFt)
	set(&out.AirChangesPerHour, override.AirChangesPerHour)
	set(&out.AirHeatCapacity, override.AirHeatCapacity)
	set(&out.InfiltrationFactor, override.InfiltrationFactor)
	set(&out.GreenhouseEffectFactor, override.GreenhouseEffectFactor)
	set(&out.HeatingEfficiency, override.HeatingEfficiency)
	set(&out.CoolingCOP, override.CoolingCOP)
	set(&out.HeatingRatePerKWh, override.HeatingRatePerKWh)
	set(&out.CoolingRatePerKWh, override.CoolingRatePerKWh)
	return out
}

// ApplyEnv loads an optional .env file and overlays environment variables.
func (c *Config) ApplyEnv() {
	_ = godotenv.Load()

	if v := os.Getenv("API_PORT"); v != "" {
		c.API.Port = v
	}
	if v := os.Getenv("API_ENV"); v != "" {
		c.API.Env = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.API.RedisAddr = v
	}
	if v := os.Getenv("ARTIFACT_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.API.ArtifactTTL = d
		}
	}
	if v := os.Getenv("RATE_PER_SEC"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.API.RatePerSec = f
		}
	}
	if v := os.Getenv("ALLOW_ORIGINS"); v != "" {
		c.API.AllowOrigins = splitList(v)
	}
	if v := os.Getenv("OUTPUT_DIR"); v != "" {
		c.Methane.OutDir = v
	}
	if v := os.Getenv("GHCN_BASE_URL"); v != "" {
		c.GHCN.BaseURL = v
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	for _, u := range c.Methane.Units {
		if _, err := model.ParseUnit(u); err != nil {
			return fmt.Errorf("methane.units: %w", err)
		}
	}
	if len(c.CO2Axis()) == 0 || len(c.H2Axis()) == 0 {
		return errors.New("methane: co2 and h2 price axes must not be empty")
	}
	if c.Methane.Coefficients.KgPerKcf <= 0 {
		return errors.New("methane.coefficients.kg_per_kcf must be > 0")
	}
	if err := c.Greenhouse.Validate(); err != nil {
		return fmt.Errorf("greenhouse config invalid: %w", err)
	}
	if err := c.Thermal.Params.Validate(); err != nil {
		return fmt.Errorf("thermal config invalid: %w", err)
	}
	if err := c.Thermal.Prices.Validate(); err != nil {
		return fmt.Errorf("thermal prices invalid: %w", err)
	}
	if len(c.Thermal.Temperatures) != 24 {
		return fmt.Errorf("thermal.temperatures must have 24 values, got %d", len(c.Thermal.Temperatures))
	}
	if c.Thermal.DayOfYear < 1 || c.Thermal.DayOfYear > 366 {
		return errors.New("thermal.day_of_year must be in [1, 366]")
	}
	if c.API.Burst < 0 || c.API.RatePerSec < 0 {
		return errors.New("api rate limit must be >= 0")
	}
	return nil
}

// CO2Axis returns the configured CO2 price axis.
func (c *Config) CO2Axis() []float64 {
	return axis(c.Methane.CO2Prices, c.Methane.CO2Range)
}

// H2Axis returns the configured H2 price axis.
func (c *Config) H2Axis() []float64 {
	return axis(c.Methane.H2Prices, c.Methane.H2Range)
}

func axis(explicit []float64, r *AxisRange) []float64 {
	if len(explicit) > 0 {
		return explicit
	}
	if r == nil {
		return nil
	}
	return grid.Range(r.Start, r.Stop, r.Step)
}

// HTTPAddress returns :port style.
func (a APIConfig) HTTPAddress() string {
	port := strings.TrimSpace(a.Port)
	if port == "" {
		port = "8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
