package application

import (
	"strings"

	"github.com/MrCatsup554/EjemploCrud/internal/domain"
)

// NormalizarPersona convierte un registro crudo del almacén remoto en su
// forma canónica. Prefiere id_persona sobre id e id_rol sobre rol; el
// resto del sistema trabaja únicamente con la forma canónica.
func NormalizarPersona(cruda domain.PersonaCruda) domain.Persona {
	persona := domain.Persona{
		Nombre:   cruda.Nombre,
		Apellido: cruda.Apellido,
		Sexo:     cruda.Sexo,
		FhNac:    FormatearFecha(cruda.FhNac),
	}

	switch {
	case cruda.IDPersona != nil:
		persona.ID = *cruda.IDPersona
	case cruda.ID != nil:
		persona.ID = *cruda.ID
	}

	switch {
	case cruda.IDRol != nil:
		persona.Rol = *cruda.IDRol
	case cruda.Rol != nil:
		persona.Rol = *cruda.Rol
	}

	return persona
}

// NormalizarSexoEdicion convierte el valor de sexo al código que usa el
// selector del formulario. Los valores heredados Hombre/Femenino se
// traducen a H/M; cualquier otro valor fuera de H/M/O deja la selección
// vacía en lugar de fallar.
func NormalizarSexoEdicion(valor string) string {
	switch valor {
	case "Hombre":
		return "H"
	case "Femenino":
		return "M"
	case "H", "M", "O":
		return valor
	default:
		return ""
	}
}

// FormatearFecha trunca una fecha ISO con componente horario a su parte
// de fecha (lo anterior a la primera T). Una fecha ausente queda vacía.
func FormatearFecha(iso string) string {
	if iso == "" {
		return ""
	}
	if idx := strings.IndexByte(iso, 'T'); idx >= 0 {
		return iso[:idx]
	}
	return iso
}
