package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/MrCatsup554/EjemploCrud/internal/domain"
)

type personaStore struct {
	http   *resty.Client
	logger *zap.Logger
}

// NewPersonaStore crea el cliente del almacén remoto de personas. El
// recurso REST es único: todas las operaciones van contra la URL base.
func NewPersonaStore(baseURL string, timeout time.Duration, logger *zap.Logger) domain.PersonaStore {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &personaStore{
		http:   client,
		logger: logger,
	}
}

// List obtiene la colección completa de personas
func (s *personaStore) List(ctx context.Context) ([]domain.PersonaCruda, error) {
	resp, err := s.http.R().SetContext(ctx).Get("")
	if err != nil {
		s.logger.Error("Fallo de conexión al listar personas", zap.Error(err))
		return nil, fmt.Errorf("error de conexión: %w", err)
	}

	if !resp.IsSuccess() {
		s.logger.Error("El almacén remoto devolvió un estado no exitoso al listar",
			zap.Int("status", resp.StatusCode()),
		)
		return nil, fmt.Errorf("el almacén remoto devolvió %s", resp.Status())
	}

	var crudas []domain.PersonaCruda
	if err := json.Unmarshal(resp.Body(), &crudas); err != nil {
		s.logger.Error("Respuesta inesperada del almacén remoto al listar", zap.Error(err))
		return nil, fmt.Errorf("respuesta inesperada del almacén remoto: %w", err)
	}

	return crudas, nil
}

// Create da de alta una persona nueva
func (s *personaStore) Create(ctx context.Context, payload domain.PersonaPayload) error {
	resp, err := s.http.R().SetContext(ctx).SetBody(payload).Post("")
	if err != nil {
		s.logger.Error("Fallo de conexión al crear persona", zap.Error(err))
		return fmt.Errorf("error de conexión: %w", err)
	}

	if !resp.IsSuccess() {
		return errorDeRespuesta(resp)
	}

	s.logger.Info("Persona creada en el almacén remoto")
	return nil
}

// Update actualiza una persona existente
func (s *personaStore) Update(ctx context.Context, payload domain.PersonaPayload) error {
	resp, err := s.http.R().SetContext(ctx).SetBody(payload).Patch("")
	if err != nil {
		s.logger.Error("Fallo de conexión al actualizar persona", zap.Error(err))
		return fmt.Errorf("error de conexión: %w", err)
	}

	if !resp.IsSuccess() {
		return errorDeRespuesta(resp)
	}

	s.logger.Info("Persona actualizada en el almacén remoto")
	return nil
}

// Delete elimina la persona con el identificador indicado. El recurso
// espera el identificador en el cuerpo, no en la ruta.
func (s *personaStore) Delete(ctx context.Context, id int) error {
	resp, err := s.http.R().SetContext(ctx).
		SetBody(map[string]int{"id_persona": id}).
		Delete("")
	if err != nil {
		s.logger.Error("Fallo de conexión al eliminar persona",
			zap.Error(err),
			zap.Int("id_persona", id),
		)
		return fmt.Errorf("error de conexión: %w", err)
	}

	if !resp.IsSuccess() {
		return errorDeRespuesta(resp)
	}

	s.logger.Info("Persona eliminada del almacén remoto", zap.Int("id_persona", id))
	return nil
}

// errorDeRespuesta construye el error de una respuesta no exitosa,
// conservando el texto del cuerpo si el almacén devolvió alguno.
func errorDeRespuesta(resp *resty.Response) error {
	if cuerpo := strings.TrimSpace(string(resp.Body())); cuerpo != "" {
		return fmt.Errorf("%s", cuerpo)
	}
	return fmt.Errorf("el almacén remoto devolvió %s", resp.Status())
}
