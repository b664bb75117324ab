package kernel

type BucketURL string

// NIFType tipos de documentos de identidad en España
type NIFType string

const (
	// NIFTypeDNI - Documento Nacional de Identidad (españoles)
	NIFTypeDNI NIFType = "DNI"

	// NIFTypeNIE - Número de Identidad de Extranjero (residentes extranjeros)
	NIFTypeNIE NIFType = "NIE"

	// NIFTypePasaporte - Pasaporte (extranjeros sin NIE)
	NIFTypePasaporte NIFType = "PASAPORTE"
)

// NIF representa un documento de identidad
type NIF struct {
	Type   NIFType `json:"type"`
	Number string  `json:"number"`
}

// IsValid valida el formato del documento según su tipo
func (n NIF) IsValid() bool {
	switch n.Type {
	case NIFTypeDNI:
		// DNI español: 8 dígitos + letra de control
		return len(n.Number) == 9 && isNumeric(n.Number[:8]) && isControlLetter(n.Number[8])

	case NIFTypeNIE:
		// NIE: X/Y/Z + 7 dígitos + letra de control
		if len(n.Number) != 9 {
			return false
		}
		first := n.Number[0]
		if first != 'X' && first != 'Y' && first != 'Z' {
			return false
		}
		return isNumeric(n.Number[1:8]) && isControlLetter(n.Number[8])

	case NIFTypePasaporte:
		// Pasaporte: formato variable según país, 6-12 caracteres alfanuméricos
		return len(n.Number) >= 6 && len(n.Number) <= 12

	default:
		return false
	}
}

// GetDisplayName retorna el nombre legible del tipo de documento
func (t NIFType) GetDisplayName() string {
	switch t {
	case NIFTypeDNI:
		return "DNI"
	case NIFTypeNIE:
		return "NIE"
	case NIFTypePasaporte:
		return "Pasaporte"
	default:
		return "Desconocido"
	}
}

// RequiresWorkPermit verifica si el documento requiere permiso de trabajo
func (t NIFType) RequiresWorkPermit() bool {
	return t == NIFTypePasaporte
}

// Helper functions
func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isControlLetter(b byte) bool {
	return b >= 'A' && b <= 'Z'
}
