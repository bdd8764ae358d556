package model

// Stoichiometric and process constants for synthetic methane (Sabatier route).
// Units:
// - CO2KgPerKgMethane: kg CO2 consumed per kg CH4
// - H2KgPerKgMethane: kg H2 consumed per kg CH4
// - MethaneProcessOverhead: multiplier covering conversion losses and plant overhead
// - KgMethanePerKcf: kg CH4 in one thousand cubic feet at standard conditions
const (
	CO2KgPerKgMethane      = 2.74
	H2KgPerKgMethane       = 0.251
	MethaneProcessOverhead = 1.195
	KgMethanePerKcf        = 19.17
)

// MethaneCoefficients holds the constants of the cost formula so they can be
// overridden from config. The zero value is not useful; start from
// DefaultMethaneCoefficients.
type MethaneCoefficients struct {
	CO2KgPerKg float64 `yaml:"co2_kg_per_kg" json:"co2_kg_per_kg"`
	H2KgPerKg  float64 `yaml:"h2_kg_per_kg" json:"h2_kg_per_kg"`
	Overhead   float64 `yaml:"overhead" json:"overhead"`
	KgPerKcf   float64 `yaml:"kg_per_kcf" json:"kg_per_kcf"`
}

func DefaultMethaneCoefficients() MethaneCoefficients {
	return MethaneCoefficients{
		CO2KgPerKg: CO2KgPerKgMethane,
		H2KgPerKg:  H2KgPerKgMethane,
		Overhead:   MethaneProcessOverhead,
		KgPerKcf:   KgMethanePerKcf,
	}
}

// CostPerKg returns USD per kg of methane for the given feedstock prices (USD/kg).
// Inputs are not validated; negative or NaN prices flow through the arithmetic.
func (c MethaneCoefficients) CostPerKg(co2Price, h2Price float64) float64 {
	return (co2Price*c.CO2KgPerKg + h2Price*c.H2KgPerKg) * c.Overhead
}

// MethaneCostPerKg evaluates the cost formula with the default coefficients.
func MethaneCostPerKg(co2Price, h2Price float64) float64 {
	return (co2Price*CO2KgPerKgMethane + h2Price*H2KgPerKgMethane) * MethaneProcessOverhead
}
