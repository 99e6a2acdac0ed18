package domain

import (
	"context"
	"fmt"
)

// Persona representa una persona del registro en su forma canónica.
// Un ID 0 indica que el almacén remoto no devolvió identificador.
type Persona struct {
	ID       int
	Nombre   string
	Apellido string
	Sexo     string // código tal como llega del almacén; puede traer valores heredados
	FhNac    string // fecha YYYY-MM-DD, vacía si se desconoce
	Rol      int
}

// PersonaCruda es el registro tal como llega del almacén remoto. Los
// nombres de campo varían según la ruta que lo escribió (id_persona o
// id, id_rol o rol), por eso los identificadores son punteros.
type PersonaCruda struct {
	IDPersona *int   `json:"id_persona"`
	ID        *int   `json:"id"`
	Nombre    string `json:"nombre"`
	Apellido  string `json:"apellido"`
	Sexo      string `json:"sexo"`
	FhNac     string `json:"fh_nac"`
	IDRol     *int   `json:"id_rol"`
	Rol       *int   `json:"rol"`
}

// PersonaPayload es el cuerpo que se envía al almacén remoto al guardar.
// IDPersona ausente indica alta; presente indica actualización.
type PersonaPayload struct {
	IDPersona *int   `json:"id_persona,omitempty"`
	Nombre    string `json:"nombre"`
	Apellido  string `json:"apellido"`
	Sexo      string `json:"sexo"`
	FhNac     string `json:"fh_nac"`
	IDRol     int    `json:"id_rol"`
}

// EsAlta indica si el payload corresponde a un registro nuevo.
func (p PersonaPayload) EsAlta() bool {
	return p.IDPersona == nil
}

// Roles del sistema
const (
	RolAlumno        = 1
	RolProfesor      = 2
	RolAdministrador = 3
	RolExterno       = 4
)

var rolEtiquetas = map[int]string{
	RolAlumno:        "Alumno",
	RolProfesor:      "Profesor",
	RolAdministrador: "Administrador",
	RolExterno:       "Externo",
}

// EtiquetaRol devuelve la etiqueta visible de un rol. Los códigos
// desconocidos se muestran como "Rol <código>" en lugar de fallar.
func EtiquetaRol(codigo int) string {
	if etiqueta, ok := rolEtiquetas[codigo]; ok {
		return etiqueta
	}
	return fmt.Sprintf("Rol %d", codigo)
}

// PersonaStore define las operaciones contra el almacén remoto de personas
type PersonaStore interface {
	// List obtiene la colección completa de personas
	List(ctx context.Context) ([]PersonaCruda, error)
	// Create da de alta una persona nueva
	Create(ctx context.Context, payload PersonaPayload) error
	// Update actualiza una persona existente
	Update(ctx context.Context, payload PersonaPayload) error
	// Delete elimina la persona con el identificador indicado
	Delete(ctx context.Context, id int) error
}
