package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string  `validate:"required,notblank"`
	Start string  `validate:"required,isodate"`
	End   *string `validate:"omitempty,isodate"`
}

func TestRegisterRules(t *testing.T) {
	v := validator.New()
	require.NoError(t, RegisterRules(v))

	bad := "31/05/2025"
	good := "2025-05-31"

	tests := []struct {
		name  string
		input sample
		tag   string
	}{
		{"valid", sample{Name: "ana", Start: "2025-05-01", End: &good}, ""},
		{"nil optional date", sample{Name: "ana", Start: "2025-05-01"}, ""},
		{"blank name", sample{Name: "   ", Start: "2025-05-01"}, TagNotBlank},
		{"wrong date layout", sample{Name: "ana", Start: "2025/05/01"}, TagISODate},
		{"impossible date", sample{Name: "ana", Start: "2025-02-30"}, TagISODate},
		{"bad optional date", sample{Name: "ana", Start: "2025-05-01", End: &bad}, TagISODate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)
			if tt.tag == "" {
				assert.NoError(t, err)
				return
			}
			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Equal(t, tt.tag, verrs[0].Tag())
		})
	}
}
