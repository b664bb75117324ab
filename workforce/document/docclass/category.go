package docclass

import "strings"

// Category is one document category with the keywords that select it.
type Category struct {
	ID          string
	DisplayName string
	Keywords    []string
}

// FallbackCategoryID is assigned when no keyword set matches the filename.
const FallbackCategoryID = "otros"

// Categories is the process-wide category table. Order is part of the
// contract: the first category whose keywords match wins, so earlier entries
// take priority for ambiguous filenames (a payslip mentioning "documento"
// still files under nomina). Do not reorder.
var Categories = []Category{
	{
		ID:          "nomina",
		DisplayName: "Nómina",
		Keywords:    []string{"nomina", "nómina", "payroll", "salary", "salario", "sueldo"},
	},
	{
		ID:          "contrato",
		DisplayName: "Contrato",
		Keywords:    []string{"contrato", "contract", "agreement", "acuerdo", "convenio"},
	},
	{
		ID:          "dni",
		DisplayName: "Documento de identidad",
		Keywords:    []string{"dni", "documento identidad", "cedula", "id"},
	},
	{
		ID:          "justificante",
		DisplayName: "Justificante",
		Keywords:    []string{"justificante", "certificado", "comprobante", "vacaciones", "permiso", "baja", "medico"},
	},
	{
		ID:          "otros",
		DisplayName: "Otros",
		Keywords:    []string{"irpf", "hacienda", "impuesto", "declaracion", "renta", "fiscal", "modelo", "aeat"},
	},
}

func init() {
	// Keywords are configured in display form ("nómina"); normalize once so
	// matching compares within the same token space as the filename.
	for i := range Categories {
		for j, kw := range Categories[i].Keywords {
			Categories[i].Keywords[j] = Normalize(kw)
		}
	}
}

// CategoryByID looks up a category in the configured table.
func CategoryByID(id string) (Category, bool) {
	for _, c := range Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// ClassifyCategory returns the id of the first category (in configured order)
// with any keyword appearing as a substring of the normalized text, or
// FallbackCategoryID when none match. Substring matching is deliberate: it
// trades precision for recall, and changing it to token-exact matching would
// silently reclassify existing uploads.
func ClassifyCategory(normalizedText string, categories []Category) string {
	for _, c := range categories {
		for _, kw := range c.Keywords {
			if kw != "" && strings.Contains(normalizedText, kw) {
				return c.ID
			}
		}
	}
	return FallbackCategoryID
}
