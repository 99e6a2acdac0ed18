package http

import (
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/MrCatsup554/EjemploCrud/internal/application"
)

// Toast es el aviso transitorio que la vista muestra unos segundos.
type Toast struct {
	Mensaje string
	EsError bool
}

const (
	cookieToast     = "toast"
	cookieToastTipo = "toast_tipo"
)

type PersonaHandler struct {
	service *application.PersonaService
	logger  *zap.Logger
}

// NewPersonaHandler crea una nueva instancia del handler de personas
func NewPersonaHandler(service *application.PersonaService, logger *zap.Logger) *PersonaHandler {
	return &PersonaHandler{
		service: service,
		logger:  logger,
	}
}

// Tabla renderiza la pantalla principal con el estado actual del
// registro remoto: tabla normal, vacía o de error según el resultado.
func (h *PersonaHandler) Tabla(c *fiber.Ctx) error {
	datos := fiber.Map{}
	h.consumirToast(c, datos)

	personas, err := h.service.ListarPersonas(c.Context())
	if err != nil {
		h.logger.Error("Error al obtener personas", zap.Error(err))
		datos["ErrorCarga"] = true
		return c.Render("personas/index", datos)
	}

	filas := make([]FilaPersona, 0, len(personas))
	for _, p := range personas {
		filas = append(filas, aFilaPersona(p))
	}
	datos["Filas"] = filas

	return c.Render("personas/index", datos)
}

// Nueva muestra el modal vacío para dar de alta un registro.
func (h *PersonaHandler) Nueva(c *fiber.Ctx) error {
	return c.Render("personas/formulario", fiber.Map{
		"Formulario": formularioAlta(),
	})
}

// Editar muestra el modal con los datos de la persona indicada.
func (h *PersonaHandler) Editar(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("identificador inválido")
	}

	persona, err := h.service.BuscarPorID(c.Context(), id)
	if err != nil {
		h.logger.Error("Error al cargar persona para edición", zap.Error(err), zap.Int("id", id))
		h.dejarToast(c, "No se pudo cargar el registro", true)
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	return c.Render("personas/formulario", fiber.Map{
		"Formulario": formularioEdicion(*persona),
	})
}

// Guardar procesa el envío del modal: alta si no trae identificador,
// actualización si lo trae. Si el guardado falla, el modal se vuelve a
// mostrar con los valores del usuario intactos y sin refrescar la tabla.
func (h *PersonaHandler) Guardar(c *fiber.Ctx) error {
	valores := url.Values{}
	for _, campo := range camposFormulario {
		valores.Set(campo, c.FormValue(campo))
	}
	payload := extraerPayload(valores)

	alta, err := h.service.Guardar(c.Context(), payload)
	if err != nil {
		h.logger.Error("Error al guardar persona", zap.Error(err))
		return c.Render("personas/formulario", fiber.Map{
			"Formulario": formularioDesdePayload(payload),
			"Toast":      Toast{Mensaje: "Error: " + err.Error(), EsError: true},
		})
	}

	if alta {
		h.dejarToast(c, "Creado correctamente", false)
	} else {
		h.dejarToast(c, "Actualizado correctamente", false)
	}

	// La redirección cierra el modal y dispara el nuevo listado
	return c.Redirect("/", fiber.StatusSeeOther)
}

// ConfirmarEliminar muestra la confirmación previa al borrado. Cancelar
// vuelve a la tabla sin tocar el almacén remoto.
func (h *PersonaHandler) ConfirmarEliminar(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("identificador inválido")
	}

	return c.Render("personas/eliminar", fiber.Map{
		"ID": id,
	})
}

// Eliminar borra el registro tras la confirmación del usuario.
func (h *PersonaHandler) Eliminar(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("identificador inválido")
	}

	if err := h.service.Eliminar(c.Context(), id); err != nil {
		h.logger.Error("Error al eliminar persona", zap.Error(err), zap.Int("id", id))
		h.dejarToast(c, "No se pudo eliminar", true)
	} else {
		h.dejarToast(c, "Registro eliminado", false)
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}

// dejarToast guarda el aviso en cookies de un solo uso que consume la
// siguiente página.
func (h *PersonaHandler) dejarToast(c *fiber.Ctx, mensaje string, esError bool) {
	tipo := "ok"
	if esError {
		tipo = "error"
	}
	c.Cookie(&fiber.Cookie{Name: cookieToast, Value: url.QueryEscape(mensaje), Path: "/", MaxAge: 10, HTTPOnly: true})
	c.Cookie(&fiber.Cookie{Name: cookieToastTipo, Value: tipo, Path: "/", MaxAge: 10, HTTPOnly: true})
}

// consumirToast lee y borra el aviso pendiente, si existe.
func (h *PersonaHandler) consumirToast(c *fiber.Ctx, datos fiber.Map) {
	valor := c.Cookies(cookieToast)
	if valor == "" {
		return
	}

	mensaje, err := url.QueryUnescape(valor)
	if err != nil {
		mensaje = valor
	}
	datos["Toast"] = Toast{
		Mensaje: mensaje,
		EsError: c.Cookies(cookieToastTipo) == "error",
	}

	c.ClearCookie(cookieToast, cookieToastTipo)
}
