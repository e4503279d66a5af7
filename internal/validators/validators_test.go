package validators

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type sample struct {
	Title    string   `validate:"notblank"`
	Nickname *string  `validate:"omitempty,notblank"`
	Tags     []string `validate:"items_notblank"`
}

func TestNotBlank(t *testing.T) {
	v := validator.New()
	RegisterOn(v)

	assert.NoError(t, v.Struct(sample{Title: "CCTV", Tags: []string{"a"}}))
	assert.Error(t, v.Struct(sample{Title: "   ", Tags: []string{}}))

	blank := "  "
	assert.Error(t, v.Struct(sample{Title: "ok", Nickname: &blank, Tags: []string{}}))

	assert.Error(t, v.Struct(sample{Title: "ok", Tags: []string{"a", " "}}))
}
