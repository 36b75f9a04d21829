package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"creingest/internal/ingest/service"
	apperrors "creingest/pkg/errors"
	httputil "creingest/pkg/http"
	"creingest/pkg/logger"
	"creingest/pkg/model"
)

// UploadField is the multipart form field that carries the export workbook.
const UploadField = "file"

type ParseResponse struct {
	Success     bool           `json:"success"`
	RecordCount int            `json:"record_count"`
	Records     []model.Record `json:"records"`
}

type ParseFailureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type IndexResponse struct {
	Message   string            `json:"message"`
	Status    string            `json:"status"`
	Endpoints map[string]string `json:"endpoints"`
}

type ParseHandler struct {
	service service.IngestService
	log     *logger.Logger
}

func NewParseHandler(service service.IngestService, log *logger.Logger) *ParseHandler {
	return &ParseHandler{
		service: service,
		log:     log,
	}
}

func (h *ParseHandler) Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteJSON(w, http.StatusOK, IndexResponse{
		Message: "CRE Excel Parser API",
		Status:  "running",
		Endpoints: map[string]string{
			"/health":       "Health check",
			"/parse-costar": "Parse CoStar Excel files (POST)",
			"/parse-crexi":  "Parse CREXi Excel files (POST)",
		},
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Index", "operation", "WriteJSON", "error", err)
	}
}

func (h *ParseHandler) ParseCoStar(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.parse(w, r, model.SourceCoStar)
}

func (h *ParseHandler) ParseCREXi(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.parse(w, r, model.SourceCREXi)
}

func (h *ParseHandler) parse(w http.ResponseWriter, r *http.Request, source string) {
	file, _, err := r.FormFile(UploadField)
	if err != nil {
		uploadErr := apperrors.InvalidInput("No file provided")
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			uploadErr = apperrors.PayloadTooLarge("Uploaded file exceeds the size limit")
		}
		if writeErr := httputil.WriteError(w, uploadErr); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Parse", "operation", "WriteError", "error", writeErr)
		}
		return
	}
	defer file.Close()

	records, err := h.service.Parse(r.Context(), source, file)
	if err != nil {
		appErr := apperrors.AsAppError(err)
		if writeErr := httputil.WriteJSON(w, appErr.StatusCode(), ParseFailureResponse{
			Success: false,
			Error:   failureMessage(appErr),
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Parse", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, ParseResponse{
		Success:     true,
		RecordCount: len(records),
		Records:     records,
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Parse", "operation", "WriteJSON", "error", err)
	}
}

// failureMessage returns the underlying cause when one exists, the
// wrapper message otherwise.
func failureMessage(appErr *apperrors.AppError) string {
	if appErr.Err != nil {
		return appErr.Err.Error()
	}
	return appErr.Message
}

func (h *ParseHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/", h.Index)
	router.POST("/parse-costar", h.ParseCoStar)
	router.POST("/parse-crexi", h.ParseCREXi)
}
