package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	vo "luma/internal/domain/plan/valueobjects"
)

// Request structs reference these rules in their binding tags, so they are
// registered with Gin's validator as soon as the package loads.
func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("billingcycle", func(fl validator.FieldLevel) bool {
		_, err := vo.NewBillingCycle(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("videoquality", func(fl validator.FieldLevel) bool {
		_, err := vo.NewVideoQuality(fl.Field().String())
		return err == nil
	})
}
