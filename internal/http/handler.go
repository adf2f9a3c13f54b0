package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"freight-service/internal/apierror"
	"freight-service/internal/dto"
	"freight-service/internal/http/middleware"
	"freight-service/internal/service"
	"freight-service/internal/validation"
)

// Services is everything the handlers call into.
type Services struct {
	Users               *service.UserService
	Transports          *service.TransportService
	Drivers             *service.DriverService
	Units               *service.UnitService
	Policies            *service.PolicyService
	Sctrs               *service.SctrService
	Clients             *service.ClientService
	Products            *service.ProductService
	Routes              *service.RouteService
	Services            *service.ServiceService
	Freights            *service.FreightService
	TransportedProducts *service.TransportedProductService
	ExpenseSettlements  *service.ExpenseSettlementService
	SaleSettlements     *service.SaleSettlementService
	Banks               *service.BankService
	OutputTypes         *service.OutputTypeService
	Outputs             *service.OutputService
}

type Handler struct {
	svc     Services
	uploads *middleware.Uploads
	log     zerolog.Logger
}

func NewHandler(svc Services, uploads *middleware.Uploads, log zerolog.Logger) *Handler {
	return &Handler{svc: svc, uploads: uploads, log: log}
}

// Register mounts every entity route on api. Everything except sign in
// needs a token; user administration also needs the manager role.
func (h *Handler) Register(api *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	api.POST("/auth", h.signin)

	protected := api.Group("")
	protected.Use(authMiddleware)

	manager := middleware.RequireManager(h.svc.Users, h.handleError)

	h.registerUsers(protected.Group("/users"), manager)
	h.registerTransports(protected)
	h.registerClients(protected)
	h.registerFreights(protected)
	h.registerSettlements(protected)
	h.registerOutputs(protected)
}

// pathID reads a uuid path parameter, answering 400 when it is malformed.
func (h *Handler) pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := dto.ID(name, c.Param(name))
	if err != nil {
		h.handleError(c, err)
		return uuid.Nil, false
	}
	return id, true
}

// queryID is pathID for a query string parameter.
func (h *Handler) queryID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := dto.ID(name, c.Query(name))
	if err != nil {
		h.handleError(c, err)
		return uuid.Nil, false
	}
	return id, true
}

func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		apierror.Abort(c, http.StatusBadRequest, "malformed request body")
		return false
	}
	return true
}

func bindQuery(c *gin.Context, q interface{}) bool {
	if err := c.ShouldBindQuery(q); err != nil {
		apierror.Abort(c, http.StatusBadRequest, "malformed query string")
		return false
	}
	return true
}

// bindForm reads a multipart form or a JSON body, whichever was sent.
func bindForm(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBind(req); err != nil {
		apierror.Abort(c, http.StatusBadRequest, "malformed request body")
		return false
	}
	return true
}

// formPatch returns the fields that were actually sent as a JSON merge
// patch: the text values of a multipart form, or the JSON body as is.
func formPatch(c *gin.Context) ([]byte, bool) {
	if form := c.Request.MultipartForm; form != nil {
		fields := make(map[string]string, len(form.Value))
		for name, values := range form.Value {
			if len(values) > 0 {
				fields[name] = values[0]
			}
		}
		patch, err := json.Marshal(fields)
		if err != nil {
			apierror.Abort(c, http.StatusBadRequest, "malformed request body")
			return nil, false
		}
		return patch, true
	}

	patch, err := c.GetRawData()
	if err != nil {
		apierror.Abort(c, http.StatusBadRequest, "malformed request body")
		return nil, false
	}
	if len(patch) == 0 {
		patch = []byte("{}")
	}
	return patch, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	status := statusOf(err)

	message := err.Error()
	var typed *service.Error
	if errors.As(err, &typed) {
		message = typed.Message
	}

	if status == http.StatusInternalServerError {
		event := h.log.Error().Err(err).Str("path", c.Request.URL.Path)
		var f *service.Failure
		if errors.As(err, &f) {
			event = event.Str("title", f.Title).Interface("payload", f.Payload)
		}
		event.Msg("request failed")
		message = "internal error"
	}

	apierror.Abort(c, status, message)
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, validation.ErrInvalid),
		errors.Is(err, validation.ErrNoFilter):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, service.ErrDateRange),
		errors.Is(err, validation.ErrDateRange),
		errors.Is(err, service.ErrMissingFile):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
