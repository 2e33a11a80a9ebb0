package api

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/scbae18/sololife/val"
)

// registerCustomValidators wires the val package checks into gin's binding
// engine.
func registerCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("validUsername", validUsername)
		v.RegisterValidation("validCategory", validCategory)
		v.RegisterValidation("validMood", validMood)
	}
}

var validUsername validator.Func = func(fl validator.FieldLevel) bool {
	username, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return val.ValidateUsername(username) == nil
}

var validCategory validator.Func = func(fl validator.FieldLevel) bool {
	category, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return val.ValidateCategory(category) == nil
}

var validMood validator.Func = func(fl validator.FieldLevel) bool {
	mood, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return val.ValidateMood(mood) == nil
}
