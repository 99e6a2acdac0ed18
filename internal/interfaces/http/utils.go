package http

import (
	"strconv"

	"github.com/MrCatsup554/EjemploCrud/internal/domain"
)

// FilaPersona es una fila de la tabla ya lista para mostrar. ID es el
// identificador numérico para las acciones; IDTexto lo que se muestra.
type FilaPersona struct {
	ID       int
	IDTexto  string
	Nombre   string
	Apellido string
	Sexo     string
	FhNac    string
	Rol      string
}

// aFilaPersona convierte una persona canónica en su fila de tabla. Los
// valores ausentes se muestran como N/A.
func aFilaPersona(p domain.Persona) FilaPersona {
	fila := FilaPersona{
		ID:       p.ID,
		IDTexto:  "N/A",
		Nombre:   p.Nombre,
		Apellido: p.Apellido,
		Sexo:     p.Sexo,
		FhNac:    "N/A",
		Rol:      domain.EtiquetaRol(p.Rol),
	}
	if p.ID != 0 {
		fila.IDTexto = strconv.Itoa(p.ID)
	}
	if p.FhNac != "" {
		fila.FhNac = p.FhNac
	}
	return fila
}
