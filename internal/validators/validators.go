package validators

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// Register installs the custom tags on gin's validator engine. Safe to call
// more than once.
func Register() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			RegisterOn(v)
		}
	})
}

func RegisterOn(v *validator.Validate) {
	_ = v.RegisterValidation("notblank", notBlank)
	_ = v.RegisterValidation("items_notblank", notBlankItems)
}

// notblank: a string with at least one non-space character. Pointers are only
// checked when set.
func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// items_notblank: every element of a []string is non-blank.
func notBlankItems(fl validator.FieldLevel) bool {
	items, ok := fl.Field().Interface().([]string)
	if !ok {
		return false
	}
	for _, s := range items {
		if strings.TrimSpace(s) == "" {
			return false
		}
	}
	return true
}
