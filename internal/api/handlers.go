package api

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sitegen_server/internal/ai"
	"sitegen_server/internal/archive"
	"sitegen_server/internal/codegen"
	"sitegen_server/internal/deploy"
	"sitegen_server/internal/logger"
	"sitegen_server/internal/metrics"
	"sitegen_server/internal/schema"
	"sitegen_server/internal/store"
	"sitegen_server/internal/types"
	"sitegen_server/internal/utils"
)

// DefaultMaxBodyBytes caps request bodies when NewAPIHandler gets zero.
const DefaultMaxBodyBytes int64 = 2 << 20

// APIHandler holds dependencies for API endpoints.
type APIHandler struct {
	planner      ai.PlanRequester
	results      store.ResultStore // nil disables the hand-off endpoints
	deployer     deploy.Deployer
	log          *zap.Logger
	maxBodyBytes int64
}

// NewAPIHandler initializes a new API handler with its dependencies.
func NewAPIHandler(
	planner ai.PlanRequester,
	results store.ResultStore,
	deployer deploy.Deployer,
	log *zap.Logger,
	maxBodyBytes int64,
) *APIHandler {
	if deployer == nil {
		deployer = deploy.Disabled{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxBodyBytes
	}
	return &APIHandler{
		planner:      planner,
		results:      results,
		deployer:     deployer,
		log:          log,
		maxBodyBytes: maxBodyBytes,
	}
}

// GenerateResponse is the generate endpoint payload. ResultID is set when the
// result was stored for hand-off.
type GenerateResponse struct {
	Plan     types.SitePlan       `json:"plan"`
	Files    types.GeneratedFiles `json:"files"`
	ResultID string               `json:"resultId,omitempty"`
}

// GenerateSite handles POST /api/generate.
func (h *APIHandler) GenerateSite(c *gin.Context) {
	log := logger.FromContext(c, h.log)

	raw, ok := h.readBody(c)
	if !ok {
		metrics.IncGenerateRequest("invalid")
		return
	}

	req, err := schema.ValidateBuildRequest(raw)
	if err != nil {
		metrics.IncGenerateRequest("invalid")
		respondValidation(c, http.StatusBadRequest, err)
		return
	}
	flavor, _ := codegen.ParseFlavor(req.Framework)

	log.Info("generation requested",
		zap.String("framework", req.Framework),
		zap.Strings("sections", req.Sections),
		zap.String("language", req.Language),
	)

	plan, err := h.planner.RequestSitePlan(c.Request.Context(), *req)
	if err != nil {
		metrics.IncGenerateRequest("ai_error")
		log.Error("site plan request failed", zap.Error(err))

		msg := ai.MsgMalformed
		var gerr *ai.GenerationError
		if errors.As(err, &gerr) {
			msg = gerr.Message
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
		return
	}

	files := codegen.Generate(*plan, flavor)
	for _, f := range files.Files {
		metrics.IncGeneratedFile(string(flavor), utils.DetermineFileType(f.Path))
	}

	resp := GenerateResponse{Plan: *plan, Files: files}
	if h.results != nil {
		id, err := h.results.Save(c.Request.Context(), types.GenerateResult{Plan: *plan, Files: files})
		if err != nil {
			log.Warn("result not stored for hand-off", zap.Error(err))
		} else {
			resp.ResultID = id
		}
	}

	metrics.IncGenerateRequest("ok")
	log.Info("generation succeeded",
		zap.String("flavor", string(flavor)),
		zap.Int("files", len(files.Files)),
		zap.String("result_id", resp.ResultID),
	)
	c.JSON(http.StatusOK, resp)
}

// ExportSite handles POST /api/export and answers with a zip download.
func (h *APIHandler) ExportSite(c *gin.Context) {
	log := logger.FromContext(c, h.log)

	raw, ok := h.readBody(c)
	if !ok {
		return
	}

	files, err := schema.ValidateGeneratedFiles(raw)
	if err != nil {
		respondValidation(c, http.StatusInternalServerError, err)
		return
	}

	data, err := archive.Build(*files)
	if err != nil {
		log.Error("archive build failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build archive"})
		return
	}
	metrics.ObserveArchiveSize(len(data))

	name := archive.Filename(time.Now())
	log.Info("archive exported", zap.String("filename", name), zap.Int("files", len(files.Files)), zap.Int("bytes", len(data)))

	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, archive.ContentType, data)
}

// GetResult handles GET /api/results/:id.
func (h *APIHandler) GetResult(c *gin.Context) {
	if h.results == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": store.ErrNotFound.Error()})
		return
	}

	result, err := h.results.Load(c.Request.Context(), c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		logger.FromContext(c, h.log).Error("result load failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load result"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// DeleteResult handles DELETE /api/results/:id.
func (h *APIHandler) DeleteResult(c *gin.Context) {
	if h.results == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": store.ErrNotFound.Error()})
		return
	}

	err := h.results.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		logger.FromContext(c, h.log).Error("result delete failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete result"})
		return
	}
	c.Status(http.StatusNoContent)
}

// DeploySite handles POST /api/deploy.
func (h *APIHandler) DeploySite(c *gin.Context) {
	raw, ok := h.readBody(c)
	if !ok {
		return
	}

	files, err := schema.ValidateGeneratedFiles(raw)
	if err != nil {
		respondValidation(c, http.StatusBadRequest, err)
		return
	}

	location, err := h.deployer.Deploy(c.Request.Context(), *files)
	if errors.Is(err, deploy.ErrDisabled) {
		c.JSON(http.StatusNotImplemented, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		logger.FromContext(c, h.log).Error("deploy failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deploy site"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": location})
}

// readBody reads the request body up to the configured limit. It writes the
// error response itself and reports false when the body is unusable.
func (h *APIHandler) readBody(c *gin.Context) ([]byte, bool) {
	raw, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Request body too large"})
			return nil, false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return nil, false
	}
	return raw, true
}

func respondValidation(c *gin.Context, status int, err error) {
	var verr *schema.ValidationError
	if errors.As(err, &verr) {
		c.JSON(status, gin.H{"error": "Invalid request", "details": verr.Fields})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
