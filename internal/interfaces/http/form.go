package http

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MrCatsup554/EjemploCrud/internal/application"
	"github.com/MrCatsup554/EjemploCrud/internal/domain"
)

// FormularioPersona es el estado del modal de alta/edición que se
// entrega a la vista.
type FormularioPersona struct {
	Titulo   string
	ID       string // campo oculto; vacío en un alta
	Nombre   string
	Apellido string
	Sexo     string
	FhNac    string
	Rol      string
}

// formularioAlta devuelve el formulario vacío para un registro nuevo.
func formularioAlta() FormularioPersona {
	return FormularioPersona{Titulo: "Nuevo Registro"}
}

// formularioEdicion rellena el formulario con los datos normalizados de
// la persona: el sexo pasa por la normalización de edición y la fecha ya
// viene truncada a su parte de fecha.
func formularioEdicion(p domain.Persona) FormularioPersona {
	formulario := FormularioPersona{
		Titulo:   fmt.Sprintf("Editando ID: %d", p.ID),
		ID:       strconv.Itoa(p.ID),
		Nombre:   p.Nombre,
		Apellido: p.Apellido,
		Sexo:     application.NormalizarSexoEdicion(p.Sexo),
		FhNac:    p.FhNac,
	}
	if p.Rol != 0 {
		formulario.Rol = strconv.Itoa(p.Rol)
	}
	return formulario
}

// formularioDesdePayload reconstruye el formulario con los valores que
// el usuario envió, para conservarlos cuando el guardado falla.
func formularioDesdePayload(p domain.PersonaPayload) FormularioPersona {
	formulario := FormularioPersona{
		Titulo:   "Nuevo Registro",
		Nombre:   p.Nombre,
		Apellido: p.Apellido,
		Sexo:     p.Sexo,
		FhNac:    p.FhNac,
	}
	if p.IDRol != 0 {
		formulario.Rol = strconv.Itoa(p.IDRol)
	}
	if p.IDPersona != nil {
		formulario.ID = strconv.Itoa(*p.IDPersona)
		formulario.Titulo = fmt.Sprintf("Editando ID: %d", *p.IDPersona)
	}
	return formulario
}

// camposFormulario son los campos que envía el modal al guardar.
var camposFormulario = []string{"id_persona", "nombre", "apellido", "sexo", "fh_nac", "id_rol"}

// extraerPayload lee los valores del formulario y construye el payload
// para el almacén remoto. Un id_persona no vacío indica actualización;
// vacío indica alta.
func extraerPayload(valores url.Values) domain.PersonaPayload {
	payload := domain.PersonaPayload{
		Nombre:   strings.TrimSpace(valores.Get("nombre")),
		Apellido: strings.TrimSpace(valores.Get("apellido")),
		Sexo:     valores.Get("sexo"),
		FhNac:    valores.Get("fh_nac"),
	}

	if rol, err := strconv.Atoi(valores.Get("id_rol")); err == nil {
		payload.IDRol = rol
	}

	if idTexto := valores.Get("id_persona"); idTexto != "" {
		if id, err := strconv.Atoi(idTexto); err == nil {
			payload.IDPersona = &id
		}
	}

	return payload
}
