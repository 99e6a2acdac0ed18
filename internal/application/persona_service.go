package application

import (
	"context"
	"fmt"

	"github.com/MrCatsup554/EjemploCrud/internal/domain"
)

type PersonaService struct {
	store domain.PersonaStore
}

// NewPersonaService crea una nueva instancia del servicio de personas
func NewPersonaService(store domain.PersonaStore) *PersonaService {
	return &PersonaService{
		store: store,
	}
}

// ListarPersonas obtiene la colección completa del almacén remoto y
// normaliza cada registro a la forma canónica.
func (s *PersonaService) ListarPersonas(ctx context.Context) ([]domain.Persona, error) {
	crudas, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error al obtener personas: %w", err)
	}

	personas := make([]domain.Persona, 0, len(crudas))
	for _, cruda := range crudas {
		personas = append(personas, NormalizarPersona(cruda))
	}

	return personas, nil
}

// BuscarPorID localiza una persona por su identificador dentro de la
// colección actual del almacén remoto.
func (s *PersonaService) BuscarPorID(ctx context.Context, id int) (*domain.Persona, error) {
	if id <= 0 {
		return nil, fmt.Errorf("identificador inválido: %d", id)
	}

	personas, err := s.ListarPersonas(ctx)
	if err != nil {
		return nil, err
	}

	for i := range personas {
		if personas[i].ID == id {
			return &personas[i], nil
		}
	}

	return nil, fmt.Errorf("persona con ID %d no encontrada", id)
}

// Guardar valida el payload y lo da de alta o lo actualiza según traiga
// o no identificador. Devuelve true si la operación fue un alta.
func (s *PersonaService) Guardar(ctx context.Context, payload domain.PersonaPayload) (bool, error) {
	if err := ValidarPersona(payload); err != nil {
		return payload.EsAlta(), err
	}

	if payload.EsAlta() {
		if err := s.store.Create(ctx, payload); err != nil {
			return true, fmt.Errorf("error al crear persona: %w", err)
		}
		return true, nil
	}

	if err := s.store.Update(ctx, payload); err != nil {
		return false, fmt.Errorf("error al actualizar persona: %w", err)
	}
	return false, nil
}

// Eliminar borra la persona indicada del almacén remoto.
func (s *PersonaService) Eliminar(ctx context.Context, id int) error {
	if id <= 0 {
		return fmt.Errorf("identificador inválido: %d", id)
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("error al eliminar persona: %w", err)
	}

	return nil
}
