package dto

import (
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Review actions accepted by POST /ambassador/admin/tasks
const (
	ReviewActionApprove = "approve"
	ReviewActionReject  = "reject"
)

// RegisterValidators installs the custom binding rules on gin's validator engine.
//
//	notblank       string must contain a non-space character
//	review_action  approve | reject
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return registerOn(v)
}

func registerOn(v *validator.Validate) error {
	if err := v.RegisterValidation("notblank", notBlank); err != nil {
		return err
	}
	return v.RegisterValidation("review_action", reviewAction)
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func reviewAction(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case ReviewActionApprove, ReviewActionReject:
		return true
	}
	return false
}
