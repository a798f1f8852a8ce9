package validator

import "github.com/go-playground/validator/v10"

// Coordinate and radius checks used by the sighting request DTOs. Search
// radii outside (0.1, 100] km either return nothing useful or scan the
// whole table, so both ends are clamped at validation time.
func RegisterCustomValidations(validate *validator.Validate) {
	checks := map[string]validator.Func{
		"lat":       rangeCheck(-90, 90),
		"lng":       rangeCheck(-180, 180),
		"radius_km": rangeCheck(0.1, 100),
	}
	for tag, fn := range checks {
		validate.RegisterValidation(tag, fn)
	}
}

func rangeCheck(min, max float64) validator.Func {
	return func(fl validator.FieldLevel) bool {
		v := fl.Field().Float()
		return v >= min && v <= max
	}
}
