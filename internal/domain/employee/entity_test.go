package employee

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func TestDependentAge(t *testing.T) {
	ref := date(2025, 6, 15)

	tests := []struct {
		name      string
		birthDate time.Time
		want      int
	}{
		{"birthday already passed this year", date(2010, 3, 1), 15},
		{"birthday later this year", date(2010, 9, 1), 14},
		{"birthday today", date(2010, 6, 15), 15},
		{"birthday tomorrow", date(2010, 6, 16), 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Dependent{BirthDate: tt.birthDate}
			assert.Equal(t, tt.want, d.Age(ref))
		})
	}
}

func TestDependentIsMinor(t *testing.T) {
	ref := date(2025, 6, 15)

	seventeen := Dependent{BirthDate: date(2007, 6, 16)}
	assert.True(t, seventeen.IsMinor(ref))

	// Turns 18 exactly on the reference date.
	justEighteen := Dependent{BirthDate: date(2007, 6, 15)}
	assert.False(t, justEighteen.IsMinor(ref))
}

func TestDependentHasValidResidency(t *testing.T) {
	ref := date(2025, 6, 15)

	t.Run("non-resident never qualifies", func(t *testing.T) {
		d := Dependent{Resident: false}
		assert.False(t, d.HasValidResidency(ref))
	})

	t.Run("resident without expiry qualifies", func(t *testing.T) {
		d := Dependent{Resident: true}
		assert.True(t, d.HasValidResidency(ref))
	})

	t.Run("expiry on the reference date still valid", func(t *testing.T) {
		expiry := date(2025, 6, 15)
		d := Dependent{Resident: true, ResidencyExpiry: &expiry}
		assert.True(t, d.HasValidResidency(ref))
	})

	t.Run("expired permit does not qualify", func(t *testing.T) {
		expiry := date(2025, 6, 14)
		d := Dependent{Resident: true, ResidencyExpiry: &expiry}
		assert.False(t, d.HasValidResidency(ref))
	})
}

func TestEmployeeFullName(t *testing.T) {
	e := Employee{FirstName: "Maria", LastName: "Gonzalez"}
	assert.Equal(t, "Maria Gonzalez", e.FullName())
}
