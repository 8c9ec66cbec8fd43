package usecase

import (
	"context"

	"viegrand-care/internal/vitals"
	"viegrand-care/pkg/bmi"
	pkgLog "viegrand-care/pkg/log"
)

type implUseCase struct {
	l pkgLog.Logger
}

// New creates a new vitals UseCase.
func New(l pkgLog.Logger) vitals.UseCase {
	return &implUseCase{l: l}
}

func (uc *implUseCase) BMI(ctx context.Context, input vitals.BMIInput) (vitals.BMIOutput, error) {
	value, err := bmi.Calculate(input.HeightCM, input.WeightKG)
	if err != nil {
		return vitals.BMIOutput{}, err
	}

	category := bmi.Classify(value)
	uc.l.Debugf(ctx, "vitals.BMI: %.1f (%s)", value, category)

	return vitals.BMIOutput{
		BMI:      value,
		Category: category,
		Label:    category.Label(),
	}, nil
}
