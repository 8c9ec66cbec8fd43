package vitals

import "context"

// UseCase defines the business logic interface for health measurements.
type UseCase interface {
	BMI(ctx context.Context, input BMIInput) (BMIOutput, error)
}
