package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	dldto "luma/internal/application/download/dto"
	"luma/internal/application/download/usecases"
	"luma/internal/shared/logger"
	"luma/internal/shared/utils"
)

type saveDownloadUseCase interface {
	Execute(ctx context.Context, cmd usecases.SaveDownloadCommand) (*dldto.DownloadDTO, error)
}

type listDownloadsUseCase interface {
	Execute(ctx context.Context) ([]*dldto.DownloadDTO, error)
}

type getDownloadUseCase interface {
	Execute(ctx context.Context, downloadID string) (*dldto.DownloadWithDataDTO, error)
}

type deleteDownloadUseCase interface {
	Execute(ctx context.Context, downloadID string) error
}

type DownloadHandler struct {
	saveDownloadUC   saveDownloadUseCase
	listDownloadsUC  listDownloadsUseCase
	getDownloadUC    getDownloadUseCase
	deleteDownloadUC deleteDownloadUseCase
	logger           logger.Interface
}

func NewDownloadHandler(
	saveDownloadUC saveDownloadUseCase,
	listDownloadsUC listDownloadsUseCase,
	getDownloadUC getDownloadUseCase,
	deleteDownloadUC deleteDownloadUseCase,
	logger logger.Interface,
) *DownloadHandler {
	return &DownloadHandler{
		saveDownloadUC:   saveDownloadUC,
		listDownloadsUC:  listDownloadsUC,
		getDownloadUC:    getDownloadUC,
		deleteDownloadUC: deleteDownloadUC,
		logger:           logger,
	}
}

// SaveDownloadRequest carries the payload base64-encoded; Gin decodes
// []byte fields from base64 JSON strings.
type SaveDownloadRequest struct {
	ID           string    `json:"id" binding:"required"`
	Title        string    `json:"title" binding:"required"`
	Thumbnail    string    `json:"thumbnail"`
	Size         string    `json:"size"`
	DownloadDate time.Time `json:"download_date"`
	FileData     []byte    `json:"file_data" binding:"required"`
}

func (h *DownloadHandler) SaveDownload(c *gin.Context) {
	var req SaveDownloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for save download", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := usecases.SaveDownloadCommand{
		ID:           req.ID,
		Title:        req.Title,
		Thumbnail:    req.Thumbnail,
		Size:         req.Size,
		DownloadDate: req.DownloadDate,
		FileData:     req.FileData,
	}

	result, err := h.saveDownloadUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Download saved successfully")
}

func (h *DownloadHandler) ListDownloads(c *gin.Context) {
	result, err := h.listDownloadsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *DownloadHandler) GetDownload(c *gin.Context) {
	result, err := h.getDownloadUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *DownloadHandler) DeleteDownload(c *gin.Context) {
	if err := h.deleteDownloadUC.Execute(c.Request.Context(), c.Param("id")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Download deleted successfully", nil)
}
