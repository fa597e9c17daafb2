package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	plandto "luma/internal/application/plan/dto"
	"luma/internal/application/plan/usecases"
	"luma/internal/domain/plan"
	"luma/internal/shared/logger"
	"luma/internal/shared/utils"
)

type PlanHandler struct {
	createPlanUC       createPlanUseCase
	updatePlanUC       updatePlanUseCase
	togglePlanStatusUC togglePlanStatusUseCase
	deletePlanUC       deletePlanUseCase
	getPlanUC          getPlanUseCase
	listPlansUC        listPlansUseCase
	getPublicPlansUC   getPublicPlansUseCase
	watcher            plan.Watcher
	logger             logger.Interface
}

func NewPlanHandler(
	createPlanUC createPlanUseCase,
	updatePlanUC updatePlanUseCase,
	togglePlanStatusUC togglePlanStatusUseCase,
	deletePlanUC deletePlanUseCase,
	getPlanUC getPlanUseCase,
	listPlansUC listPlansUseCase,
	getPublicPlansUC getPublicPlansUseCase,
	watcher plan.Watcher,
	logger logger.Interface,
) *PlanHandler {
	return &PlanHandler{
		createPlanUC:       createPlanUC,
		updatePlanUC:       updatePlanUC,
		togglePlanStatusUC: togglePlanStatusUC,
		deletePlanUC:       deletePlanUC,
		getPlanUC:          getPlanUC,
		listPlansUC:        listPlansUC,
		getPublicPlansUC:   getPublicPlansUC,
		watcher:            watcher,
		logger:             logger,
	}
}

type CreatePlanRequest struct {
	Name                string               `json:"name" binding:"required,max=100"`
	Description         string               `json:"description"`
	MaxQuality          string               `json:"max_quality" binding:"required,videoquality"`
	SimultaneousScreens int                  `json:"simultaneous_screens" binding:"required,min=1"`
	DownloadLimit       int                  `json:"download_limit" binding:"required,min=1"`
	ProfileLimit        int                  `json:"profile_limit" binding:"required,min=1"`
	BillingCycle        string               `json:"billing_cycle" binding:"required,billingcycle"`
	Prices              []plandto.PriceInput `json:"prices"`
}

type UpdatePlanRequest struct {
	Name                *string               `json:"name"`
	Description         *string               `json:"description"`
	MaxQuality          *string               `json:"max_quality"`
	SimultaneousScreens *int                  `json:"simultaneous_screens"`
	DownloadLimit       *int                  `json:"download_limit"`
	ProfileLimit        *int                  `json:"profile_limit"`
	BillingCycle        *string               `json:"billing_cycle"`
	Prices              *[]plandto.PriceInput `json:"prices"`
}

type UpdatePlanStatusRequest struct {
	Active *bool `json:"active" binding:"required"`
}

func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create plan", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := usecases.CreatePlanCommand{
		Name:                req.Name,
		Description:         req.Description,
		MaxQuality:          req.MaxQuality,
		SimultaneousScreens: req.SimultaneousScreens,
		DownloadLimit:       req.DownloadLimit,
		ProfileLimit:        req.ProfileLimit,
		BillingCycle:        req.BillingCycle,
		Prices:              req.Prices,
	}

	result, err := h.createPlanUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Plan created successfully")
}

func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	var req UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update plan", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := usecases.UpdatePlanCommand{
		ID:                  c.Param("id"),
		Name:                req.Name,
		Description:         req.Description,
		MaxQuality:          req.MaxQuality,
		SimultaneousScreens: req.SimultaneousScreens,
		DownloadLimit:       req.DownloadLimit,
		ProfileLimit:        req.ProfileLimit,
		BillingCycle:        req.BillingCycle,
		Prices:              req.Prices,
	}

	result, err := h.updatePlanUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plan updated successfully", result)
}

func (h *PlanHandler) UpdatePlanStatus(c *gin.Context) {
	var req UpdatePlanStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update plan status", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.togglePlanStatusUC.Execute(c.Request.Context(), usecases.TogglePlanStatusCommand{
		ID:     c.Param("id"),
		Active: *req.Active,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plan status updated successfully", result)
}

func (h *PlanHandler) DeletePlan(c *gin.Context) {
	if err := h.deletePlanUC.Execute(c.Request.Context(), c.Param("id")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plan deleted successfully", nil)
}

func (h *PlanHandler) GetPlan(c *gin.Context) {
	result, err := h.getPlanUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *PlanHandler) ListPlans(c *gin.Context) {
	result, err := h.listPlansUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *PlanHandler) GetPublicPlans(c *gin.Context) {
	result, err := h.getPublicPlansUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// WatchPlans streams catalog snapshots over SSE. One event is sent on
// connect and another after every catalog change; bursts of changes may
// coalesce into a single event.
func (h *PlanHandler) WatchPlans(c *gin.Context) {
	events := make(chan struct{}, 1)
	unsubscribe := h.watcher.Subscribe(func() {
		select {
		case events <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case <-events:
			plans, err := h.getPublicPlansUC.Execute(c.Request.Context())
			if err != nil {
				h.logger.Errorw("failed to load plans for event stream", "error", err)
				return false
			}
			c.SSEvent("plans", plans)
			return true
		}
	})
}
