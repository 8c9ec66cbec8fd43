package bmi

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidHeight = errors.New("invalid height")
	ErrInvalidWeight = errors.New("invalid weight")
)

// Category is a BMI band.
type Category string

const (
	Underweight Category = "underweight"
	Normal      Category = "normal"
	Overweight  Category = "overweight"
	Obese       Category = "obese"
)

// Plausible input bounds; values outside are treated as typos.
const (
	minHeightCM = 50
	maxHeightCM = 260
	minWeightKG = 2
	maxWeightKG = 500
)

// Calculate returns weight / height² (height in metres), rounded to one decimal.
func Calculate(heightCM, weightKG float64) (float64, error) {
	if math.IsNaN(heightCM) || heightCM <= minHeightCM || heightCM > maxHeightCM {
		return 0, fmt.Errorf("%w: %.1f cm", ErrInvalidHeight, heightCM)
	}
	if math.IsNaN(weightKG) || weightKG <= minWeightKG || weightKG > maxWeightKG {
		return 0, fmt.Errorf("%w: %.1f kg", ErrInvalidWeight, weightKG)
	}

	m := heightCM / 100
	return math.Round(weightKG/(m*m)*10) / 10, nil
}

// Classify maps a BMI value to the Asian-population cut-offs.
func Classify(bmi float64) Category {
	switch {
	case bmi < 18.5:
		return Underweight
	case bmi < 23:
		return Normal
	case bmi < 25:
		return Overweight
	default:
		return Obese
	}
}

// Label returns the Vietnamese display label shown next to the chart.
func (c Category) Label() string {
	switch c {
	case Underweight:
		return "Thiếu cân"
	case Normal:
		return "Bình thường"
	case Overweight:
		return "Thừa cân"
	case Obese:
		return "Béo phì"
	}
	return ""
}
