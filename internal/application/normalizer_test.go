package application

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrCatsup554/EjemploCrud/internal/domain"
)

func intPtr(v int) *int {
	return &v
}

func TestNormalizarPersonaPrefiereIDPersona(t *testing.T) {
	persona := NormalizarPersona(domain.PersonaCruda{
		IDPersona: intPtr(3),
		ID:        intPtr(9),
		Nombre:    "Ana",
	})

	assert.Equal(t, 3, persona.ID)
	assert.Equal(t, "Ana", persona.Nombre)
}

func TestNormalizarPersonaUsaIDComoAlternativa(t *testing.T) {
	persona := NormalizarPersona(domain.PersonaCruda{ID: intPtr(9)})
	assert.Equal(t, 9, persona.ID)
}

func TestNormalizarPersonaSinIdentificador(t *testing.T) {
	persona := NormalizarPersona(domain.PersonaCruda{Nombre: "Luis"})
	assert.Equal(t, 0, persona.ID)
}

func TestNormalizarPersonaPrefiereIDRol(t *testing.T) {
	persona := NormalizarPersona(domain.PersonaCruda{IDRol: intPtr(2), Rol: intPtr(4)})
	assert.Equal(t, 2, persona.Rol)

	persona = NormalizarPersona(domain.PersonaCruda{Rol: intPtr(4)})
	assert.Equal(t, 4, persona.Rol)
}

func TestNormalizarPersonaTruncaFecha(t *testing.T) {
	persona := NormalizarPersona(domain.PersonaCruda{FhNac: "1990-05-01T00:00:00Z"})
	assert.Equal(t, "1990-05-01", persona.FhNac)
}

func TestNormalizarSexoEdicion(t *testing.T) {
	casos := map[string]string{
		"H":        "H",
		"M":        "M",
		"O":        "O",
		"Hombre":   "H",
		"Femenino": "M",
		"Mujer":    "",
		"X":        "",
		"":         "",
	}

	for entrada, esperado := range casos {
		assert.Equal(t, esperado, NormalizarSexoEdicion(entrada), "entrada %q", entrada)
	}
}

func TestFormatearFecha(t *testing.T) {
	assert.Equal(t, "1990-05-01", FormatearFecha("1990-05-01T00:00:00Z"))
	assert.Equal(t, "1990-05-01", FormatearFecha("1990-05-01"))
	assert.Equal(t, "", FormatearFecha(""))
}
