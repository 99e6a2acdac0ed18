package application

import (
	"fmt"
	"strings"

	"github.com/MrCatsup554/EjemploCrud/internal/domain"
)

// ValidarPersona comprueba que los campos obligatorios del formulario
// estén presentes antes de enviar el payload al almacén remoto.
func ValidarPersona(p domain.PersonaPayload) error {
	var faltan []string

	if strings.TrimSpace(p.Nombre) == "" {
		faltan = append(faltan, "nombre")
	}
	if strings.TrimSpace(p.Apellido) == "" {
		faltan = append(faltan, "apellido")
	}
	if strings.TrimSpace(p.Sexo) == "" {
		faltan = append(faltan, "sexo")
	}
	if strings.TrimSpace(p.FhNac) == "" {
		faltan = append(faltan, "fecha de nacimiento")
	}
	if p.IDRol <= 0 {
		faltan = append(faltan, "rol")
	}

	if len(faltan) > 0 {
		return fmt.Errorf("faltan campos obligatorios: %s", strings.Join(faltan, ", "))
	}

	return nil
}
