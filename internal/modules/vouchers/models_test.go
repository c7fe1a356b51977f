package vouchers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseType(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"WASSCE", TypeWASSCE, true},
		{"wassce", TypeWASSCE, true},
		{" Bece ", TypeBECE, true},
		{"SCHOOLPLACEMENT", TypeSchoolPlacement, true},
		{"school-placement", TypeSchoolPlacement, true},
		{"SCHOOL_PLACEMENT", TypeSchoolPlacement, true},
		{"placement", TypeSchoolPlacement, true},
		{"NOVDEC", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := ParseType(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "WASSCE", DisplayName(TypeWASSCE))
	assert.Equal(t, "BECE", DisplayName(TypeBECE))
	assert.Equal(t, "Placement", DisplayName(TypeSchoolPlacement))
}

func TestTypesOrder(t *testing.T) {
	assert.Equal(t, []string{"WASSCE", "BECE", "SCHOOLPLACEMENT"}, Types())
}
