package http

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrCatsup554/EjemploCrud/internal/domain"
)

func TestFormularioAltaVaVacio(t *testing.T) {
	formulario := formularioAlta()

	assert.Equal(t, "Nuevo Registro", formulario.Titulo)
	assert.Empty(t, formulario.ID)
	assert.Empty(t, formulario.Nombre)
	assert.Empty(t, formulario.Apellido)
	assert.Empty(t, formulario.Sexo)
	assert.Empty(t, formulario.FhNac)
	assert.Empty(t, formulario.Rol)
}

func TestFormularioEdicionRellenaLosCampos(t *testing.T) {
	formulario := formularioEdicion(domain.Persona{
		ID:       12,
		Nombre:   "Ana",
		Apellido: "García",
		Sexo:     "Femenino",
		FhNac:    "1990-05-01",
		Rol:      2,
	})

	assert.Equal(t, "Editando ID: 12", formulario.Titulo)
	assert.Equal(t, "12", formulario.ID)
	assert.Equal(t, "M", formulario.Sexo, "el valor heredado Femenino se normaliza a M")
	assert.Equal(t, "1990-05-01", formulario.FhNac)
	assert.Equal(t, "2", formulario.Rol)
}

func TestFormularioEdicionSexoDesconocidoQuedaSinSeleccion(t *testing.T) {
	formulario := formularioEdicion(domain.Persona{ID: 1, Sexo: "X"})
	assert.Empty(t, formulario.Sexo)
}

func TestExtraerPayloadSinValoresEsUnAlta(t *testing.T) {
	payload := extraerPayload(url.Values{})

	assert.True(t, payload.EsAlta())
	assert.Empty(t, payload.Nombre)
	assert.Empty(t, payload.Apellido)
	assert.Zero(t, payload.IDRol)
}

func TestExtraerPayloadRecortaYParsea(t *testing.T) {
	payload := extraerPayload(url.Values{
		"nombre":   {"  Ana "},
		"apellido": {" García  "},
		"sexo":     {"M"},
		"fh_nac":   {"1990-05-01"},
		"id_rol":   {"2"},
	})

	assert.True(t, payload.EsAlta())
	assert.Equal(t, "Ana", payload.Nombre)
	assert.Equal(t, "García", payload.Apellido)
	assert.Equal(t, "M", payload.Sexo)
	assert.Equal(t, "1990-05-01", payload.FhNac)
	assert.Equal(t, 2, payload.IDRol)
}

func TestExtraerPayloadConIdentificadorEsActualizacion(t *testing.T) {
	payload := extraerPayload(url.Values{
		"id_persona": {"7"},
		"nombre":     {"Ana"},
	})

	require.NotNil(t, payload.IDPersona)
	assert.Equal(t, 7, *payload.IDPersona)
	assert.False(t, payload.EsAlta())
}

func TestFormularioDesdePayloadConservaLosValores(t *testing.T) {
	id := 7
	formulario := formularioDesdePayload(domain.PersonaPayload{
		IDPersona: &id,
		Nombre:    "Ana",
		Sexo:      "M",
		FhNac:     "1990-05-01",
		IDRol:     3,
	})

	assert.Equal(t, "Editando ID: 7", formulario.Titulo)
	assert.Equal(t, "7", formulario.ID)
	assert.Equal(t, "Ana", formulario.Nombre)
	assert.Equal(t, "3", formulario.Rol)
}
