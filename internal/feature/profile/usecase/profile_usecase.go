// Package usecase validates profile updates.
package usecase

import (
	"context"
	"fmt"

	"account_backend/internal/feature/profile/domain"
	"account_backend/internal/feature/profile/domain/entity"
	"account_backend/internal/platform/validation"
	"account_backend/internal/shared/apperror"
)

// StructValidator evaluates validate tags and reports at most one violation per field.
type StructValidator interface {
	Struct(s any) ([]validation.Violation, error)
}

// profileUsecase implements the profile update rules.
type profileUsecase struct {
	validator StructValidator
}

// NewProfileUsecase creates a new profileUsecase.
func NewProfileUsecase(v StructValidator) *profileUsecase {
	return &profileUsecase{validator: v}
}

// Validate returns every failing field of p, or nil.
func (u *profileUsecase) Validate(p entity.Profile) (apperror.FieldErrors, error) {
	violations, err := u.validator.Struct(p)
	if err != nil {
		return nil, fmt.Errorf("failed to validate profile: %w", err)
	}
	if len(violations) == 0 {
		return nil, nil
	}

	fieldErrs := apperror.FieldErrors{}
	for _, v := range violations {
		fieldErrs.Add(v.Field, domain.MessageFor(v.Field, v.Tag))
	}
	return fieldErrs, nil
}

// Update accepts p when every field passes. Nothing is persisted.
// A rejected profile is reported as apperror.FieldErrors.
func (u *profileUsecase) Update(_ context.Context, p entity.Profile) error {
	fieldErrs, err := u.Validate(p)
	if err != nil {
		return err
	}
	if !fieldErrs.Empty() {
		return fieldErrs
	}
	return nil
}
