package vitals

import "viegrand-care/pkg/bmi"

// BMIInput is a height and weight measurement.
type BMIInput struct {
	HeightCM float64
	WeightKG float64
}

// BMIOutput is the computed index and its band.
type BMIOutput struct {
	BMI      float64
	Category bmi.Category
	Label    string
}
