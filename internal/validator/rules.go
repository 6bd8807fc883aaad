package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"jobtracker_backend/internal/models"
)

// registerCustomRules adds the enum rules used by the request DTOs.
func registerCustomRules(v *validator.Validate) error {
	rules := map[string]validator.Func{
		"is-application-status": validateApplicationStatus,
		"is-follow-up-status":   validateFollowUpStatus,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register validation tag %q: %w", tag, err)
		}
	}
	return nil
}

// An empty string is not a member; omitempty skips nil pointers on partial updates.
func validateApplicationStatus(fl validator.FieldLevel) bool {
	return models.ApplicationStatus(fl.Field().String()).IsValid()
}

func validateFollowUpStatus(fl validator.FieldLevel) bool {
	return models.FollowUpStatus(fl.Field().String()).IsValid()
}
