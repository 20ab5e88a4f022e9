package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "matrix", "matrix"},
		{"percent", "100% true", `100\% true`},
		{"underscore", "blade_runner", `blade\_runner`},
		{"backslash", `back\slash`, `back\\slash`},
		{"mixed", `a%b_c\d`, `a\%b\_c\\d`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeLike(tt.input))
		})
	}
}
