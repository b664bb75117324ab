package docclass

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plantel/pkg/kernel"
	"plantel/workforce/employee"
)

func roster(names ...string) []employee.Employee {
	out := make([]employee.Employee, len(names))
	for i, n := range names {
		out[i] = employee.Employee{
			ID:       kernel.NewEmployeeID(fmt.Sprintf("emp-%d", i)),
			FullName: kernel.FullName(n),
		}
	}
	return out
}

func TestQualifyingTokens(t *testing.T) {
	tests := []struct {
		name     string
		fullName string
		want     []string
	}{
		{"drops short particles and initials", "Juan J. de la Cruz", []string{"juan", "cruz"}},
		{"accents normalized", "José María Ramírez", []string{"jose", "maria", "ramirez"}},
		{"repeated token counted once", "Juan Juan García", []string{"juan", "garcia"}},
		{"empty name", "", nil},
		{"only short tokens", "J. A. B.", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, QualifyingTokens(tt.fullName))
		})
	}
}

func TestMatchEmployee(t *testing.T) {
	t.Run("two matching tokens produce a match", func(t *testing.T) {
		r := roster("Juan José García López")
		matched, strength := MatchEmployee(Normalize("nomina_juan_garcia_enero.pdf"), r)
		require.NotNil(t, matched)
		assert.Equal(t, r[0].ID, matched.ID)
		assert.InDelta(t, 0.5, strength, 1e-9) // 2 of 4 qualifying tokens
	})

	t.Run("a single matching token never matches", func(t *testing.T) {
		// "juan" alone is a common first name; the two-token threshold keeps
		// the document from being filed against this employee.
		matched, strength := MatchEmployee(Normalize("documento_juan.pdf"), roster("Juan José García López"))
		assert.Nil(t, matched)
		assert.Zero(t, strength)
	})

	t.Run("duplicated name token does not reach the threshold alone", func(t *testing.T) {
		// "Juan Juan García" carries two distinct tokens; a filename with
		// only "juan" in it must still fall short of two matched tokens.
		matched, strength := MatchEmployee(Normalize("documento_juan.pdf"), roster("Juan Juan García"))
		assert.Nil(t, matched)
		assert.Zero(t, strength)
	})

	t.Run("duplicated name token still matches with a second distinct token", func(t *testing.T) {
		r := roster("Juan Juan García")
		matched, strength := MatchEmployee(Normalize("nomina_juan_garcia.pdf"), r)
		require.NotNil(t, matched)
		assert.Equal(t, r[0].ID, matched.ID)
		assert.InDelta(t, 1.0, strength, 1e-9) // 2 of 2 distinct tokens
	})

	t.Run("employee with fewer than two qualifying tokens never matches", func(t *testing.T) {
		matched, _ := MatchEmployee(Normalize("ana_ana_ana.pdf"), roster("Ana B."))
		assert.Nil(t, matched)
	})

	t.Run("empty roster", func(t *testing.T) {
		matched, _ := MatchEmployee(Normalize("nomina_juan_garcia.pdf"), nil)
		assert.Nil(t, matched)
	})

	t.Run("highest ratio wins", func(t *testing.T) {
		r := roster(
			"Juan José García López",  // 2 of 4 tokens -> 0.5
			"Juan García",             // 2 of 2 tokens -> 1.0
		)
		matched, strength := MatchEmployee(Normalize("nomina_juan_garcia.pdf"), r)
		require.NotNil(t, matched)
		assert.Equal(t, r[1].ID, matched.ID)
		assert.InDelta(t, 1.0, strength, 1e-9)
	})

	t.Run("ties keep the earliest roster entry", func(t *testing.T) {
		r := roster("Juan García", "Juan García")
		matched, _ := MatchEmployee(Normalize("nomina_juan_garcia.pdf"), r)
		require.NotNil(t, matched)
		assert.Equal(t, r[0].ID, matched.ID)
	})

	t.Run("accented roster name matches plain filename", func(t *testing.T) {
		matched, _ := MatchEmployee(Normalize("contrato_ramirez_peña.pdf"), roster("María Ramírez Peña"))
		require.NotNil(t, matched)
	})
}
