package docclass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	t.Run("payslip with matching employee is high confidence", func(t *testing.T) {
		r := roster("Juan José García López")
		result := Classify("nomina_juan_jose_garcia_enero.pdf", r)

		assert.Equal(t, "nomina", result.DocumentCategory)
		require.NotNil(t, result.Employee)
		assert.Equal(t, r[0].ID, result.Employee.ID)
		assert.Equal(t, ConfidenceHigh, result.Confidence)
		assert.Greater(t, result.MatchStrength, 0.0)
	})

	t.Run("unknown file is low confidence fallback", func(t *testing.T) {
		result := Classify("archivo_random.pdf", roster("Juan José García López"))

		assert.Equal(t, FallbackCategoryID, result.DocumentCategory)
		assert.Nil(t, result.Employee)
		assert.Equal(t, ConfidenceLow, result.Confidence)
	})

	t.Run("single name token is not a match", func(t *testing.T) {
		result := Classify("documento_juan.pdf", roster("Juan José García López"))

		assert.Nil(t, result.Employee)
		assert.Equal(t, FallbackCategoryID, result.DocumentCategory)
		assert.Equal(t, ConfidenceLow, result.Confidence)
	})

	t.Run("matched employee with fallback category is medium confidence", func(t *testing.T) {
		result := Classify("escaneo_juan_garcia.pdf", roster("Juan García"))

		require.NotNil(t, result.Employee)
		assert.Equal(t, FallbackCategoryID, result.DocumentCategory)
		assert.Equal(t, ConfidenceMedium, result.Confidence)
	})

	t.Run("otros keyword with matched employee is still medium", func(t *testing.T) {
		// irpf selects the otros category by keyword; otros is also the
		// fallback, so the confidence rule treats it the same either way.
		result := Classify("irpf_juan_garcia_2023.pdf", roster("Juan García"))

		require.NotNil(t, result.Employee)
		assert.Equal(t, "otros", result.DocumentCategory)
		assert.Equal(t, ConfidenceMedium, result.Confidence)
	})

	t.Run("empty filename and empty roster", func(t *testing.T) {
		result := Classify("", nil)

		assert.Equal(t, FallbackCategoryID, result.DocumentCategory)
		assert.Nil(t, result.Employee)
		assert.Equal(t, ConfidenceLow, result.Confidence)
		assert.Zero(t, result.MatchStrength)
	})

	t.Run("accented filename matches unaccented roster and vice versa", func(t *testing.T) {
		r := roster("Jose Ramirez")
		result := Classify("Nómina_José_Ramírez_Marzo.pdf", r)

		require.NotNil(t, result.Employee)
		assert.Equal(t, "nomina", result.DocumentCategory)
		assert.Equal(t, ConfidenceHigh, result.Confidence)
	})
}

// Confidence is high only with both an employee and a non-fallback category;
// medium only with an employee and the fallback; low whenever no employee.
func TestConfidenceMonotonicity(t *testing.T) {
	r := roster("Juan García")

	cases := []struct {
		fileName string
		want     Confidence
	}{
		{"nomina_juan_garcia.pdf", ConfidenceHigh},
		{"foto_juan_garcia.pdf", ConfidenceMedium},
		{"nomina_enero.pdf", ConfidenceLow},
		{"cosas_varias.pdf", ConfidenceLow},
	}

	for _, tc := range cases {
		result := Classify(tc.fileName, r)
		assert.Equal(t, tc.want, result.Confidence, "file %q", tc.fileName)

		// The tier must be consistent with its inputs, not just expected.
		switch tc.want {
		case ConfidenceHigh:
			assert.NotNil(t, result.Employee)
			assert.NotEqual(t, FallbackCategoryID, result.DocumentCategory)
		case ConfidenceMedium:
			assert.NotNil(t, result.Employee)
			assert.Equal(t, FallbackCategoryID, result.DocumentCategory)
		case ConfidenceLow:
			assert.Nil(t, result.Employee)
		}
	}
}
