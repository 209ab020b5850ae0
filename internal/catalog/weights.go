package catalog

import "math"

// Densities in lb/in3.
var densities = map[string]float64{
	"mild_steel":    0.2833,
	"stainless_304": 0.2890,
	"stainless_316": 0.2890,
	"aluminum_6061": 0.0975,
	"aluminum_5052": 0.0970,
	"dom_tubing":    0.2833,
	"square_tubing": 0.2833,
	"angle_iron":    0.2833,
	"flat_bar":      0.2833,
	"plate":         0.2833,
}

// Standard stock weights in lb/ft, per AISC tables.
var stockWeights = map[string]float64{
	// HR A500 square tubing
	"sq_tube_1x1_11ga":       0.857,
	"sq_tube_1x1_16ga":       0.581,
	"sq_tube_1.25x1.25_11ga": 1.147,
	"sq_tube_1.5x1.5_11ga":   1.403,
	"sq_tube_1.5x1.5_16ga":   0.960,
	"sq_tube_2x2_11ga":       1.951,
	"sq_tube_2x2_16ga":       1.316,
	"sq_tube_2.5x2.5_11ga":   2.495,
	"sq_tube_3x3_11ga":       3.090,
	"sq_tube_4x4_11ga":       4.180,
	// HR A500 rectangular tubing
	"rect_tube_4x2_11ga":   2.799,
	"rect_tube_3x2_11ga":   2.150,
	"rect_tube_3x1.5_11ga": 1.840,
	"rect_tube_2x1_11ga":   1.140,
	// A36 flat bar
	"flat_bar_0.1875x1.5": 0.956,
	"flat_bar_0.1875x2":   1.275,
	"flat_bar_0.1875x3":   1.913,
	"flat_bar_0.25x2":     1.701,
	"flat_bar_0.25x3":     2.550,
	"flat_bar_0.25x4":     3.400,
	"flat_bar_0.25x5":     4.253,
	"flat_bar_0.375x3":    3.826,
	"flat_bar_0.5x2":      3.400,
	"flat_bar_0.5x4":      6.800,
	"flat_bar_0.5x6":      10.200,
	// A36 angle iron
	"angle_1.5x1.5x0.125": 1.230,
	"angle_2x2x0.1875":    2.440,
	"angle_2x2x0.25":      3.190,
	"angle_3x3x0.25":      4.900,
	"angle_3x3x0.375":     7.200,
	"angle_4x4x0.25":      6.600,
	// A36 channel
	"channel_3x4.1": 4.100,
	"channel_4x5.4": 5.400,
	"channel_6x8.2": 8.200,
	// Sch 40 pipe
	"pipe_3_sch40":   7.580,
	"pipe_3.5_sch40": 9.110,
	"pipe_4_sch40":   10.790,
	"pipe_6_sch40":   18.970,
	"pipe_8_sch40":   28.550,
	// Wide flange
	"beam_w8x10":  10.000,
	"beam_w10x12": 12.000,
	// DOM round tube
	"dom_round_1od_0.125wall":   1.028,
	"dom_round_1.5od_11ga":      1.769,
	"dom_round_1.5od_0.125wall": 1.611,
	"dom_round_2od_0.125wall":   2.194,
}

// Gauge to thickness in inches.
var gaugeToInches = map[string]float64{
	"10ga": 0.1345,
	"11ga": 0.1196,
	"12ga": 0.1046,
	"14ga": 0.0747,
	"16ga": 0.0598,
	"18ga": 0.0478,
	"20ga": 0.0359,
}

// WeightFromDimensions calculates weight in lbs from solid rectangular
// dimensions in inches. Use for plate, flat bar and sheet; tubing and angle
// use WeightFromStock instead.
func WeightFromDimensions(lengthIn, widthIn, thicknessIn float64, materialType string) float64 {
	density, ok := densities[materialType]
	if !ok {
		density = densities["mild_steel"]
	}
	return round3(lengthIn * widthIn * thicknessIn * density)
}

// WeightFromStock calculates weight in lbs for a standard stock shape and
// length in feet, 0 when the shape is unknown.
func WeightFromStock(stockKey string, lengthFt float64) float64 {
	return round3(stockWeights[stockKey] * lengthFt)
}

// StockWeightPerFoot returns the lb/ft of a stock shape, 0 when unknown.
func StockWeightPerFoot(stockKey string) float64 {
	return stockWeights[stockKey]
}

// SqFtFromDimensions converts inch dimensions to square feet. Used for
// finish-area math.
func SqFtFromDimensions(lengthIn, widthIn float64) float64 {
	return round3(lengthIn * widthIn / 144.0)
}

// GaugeToThickness converts a gauge label such as "11ga" to inches, 0 when
// unknown.
func GaugeToThickness(gauge string) float64 {
	return gaugeToInches[gauge]
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
