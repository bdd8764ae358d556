package thermal

import "math"

// SolarConstant is the mean top-of-atmosphere irradiance, W/m^2.
const SolarConstant = 1361

// SolarFlux is the clear-sky flux on a horizontal surface at ground level,
// W/m^2, for a latitude in degrees, an hour in [0, 24] and a day of year.
func SolarFlux(latitude, hour float64, dayOfYear int) float64 {
	lat := radians(latitude)

	// Cooper's declination.
	declination := radians(23.45 * math.Sin(radians(360.0/365*float64(dayOfYear-81))))
	hourAngle := radians((hour - 12) * 15)

	sinElevation := math.Sin(lat)*math.Sin(declination) +
		math.Cos(lat)*math.Cos(declination)*math.Cos(hourAngle)
	if sinElevation <= 0 {
		return 0
	}

	airMass := 1 / sinElevation
	// Meinel transmission.
	transmission := math.Pow(0.7, airMass)

	// Spencer's Earth-Sun radius vector.
	b := 2 * math.Pi * float64(dayOfYear-1) / 365
	radiusVector := 1.000110 + 0.034221*math.Cos(b) + 0.001280*math.Sin(b) +
		0.000719*math.Cos(2*b) + 0.000077*math.Sin(2*b)

	flux := SolarConstant / (radiusVector * radiusVector) * sinElevation * transmission
	return math.Max(0, flux)
}

// FluxSample is one point of a daily profile.
type FluxSample struct {
	Hour float64 `json:"hour"`
	Flux float64 `json:"flux"`
}

// ProfileSamples is the number of points in a daily profile (10 minute steps, both ends included).
const ProfileSamples = 145

// DailyProfile samples SolarFlux across a day at 10 minute resolution.
func DailyProfile(latitude float64, dayOfYear int) []FluxSample {
	out := make([]FluxSample, ProfileSamples)
	step := 24.0 / float64(ProfileSamples-1)
	for i := range out {
		h := float64(i) * step
		out[i] = FluxSample{Hour: h, Flux: SolarFlux(latitude, h, dayOfYear)}
	}
	return out
}
