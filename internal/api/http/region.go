package apiHttp

import (
	"errors"
	"net/http"

	"github.com/digiedu/backend/internal/domain"
	"github.com/digiedu/backend/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) initRegionsRoutes(api *gin.RouterGroup) {
	regions := api.Group("/regions")
	{
		regions.POST("", h.createRegion)
		regions.GET("", h.getRegions)
		regions.GET("/:id", h.getRegionByID)
	}
}

type createRegionRequest struct {
	Name string `json:"name"`
}

type regionResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func toRegionResponse(region *domain.Region) regionResponse {
	return regionResponse{
		ID:   region.ID.String(),
		Name: region.Name,
	}
}

// @Summary Create Region
// @Tags Regions
// @Description Create a new region
// @ModuleID createRegion
// @Accept  json
// @Produce  json
// @Param input body createRegionRequest true "region fields"
// @Success 200
// @Failure 400 {object} errorStruct
// @Failure 500 {object} errorStruct
// @Router /regions [post]
func (h *Handler) createRegion(c *gin.Context) {
	var req createRegionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBodyResponse(c)
		return
	}

	if err := h.services.Regions.Create(c.Request.Context(), req.Name); err != nil {
		logger.Error("create region failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}

	c.Status(http.StatusOK)
}

// @Summary Get Regions
// @Tags Regions
// @Description Get all regions
// @ModuleID getRegions
// @Produce  json
// @Success 200 {array} regionResponse
// @Failure 500 {object} errorStruct
// @Router /regions [get]
func (h *Handler) getRegions(c *gin.Context) {
	regions, err := h.services.Regions.GetAll(c.Request.Context())
	if err != nil {
		logger.Error("get regions failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}

	response := make([]regionResponse, 0, len(regions))
	for i := range regions {
		response = append(response, toRegionResponse(&regions[i]))
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get Region
// @Tags Regions
// @Description Get one region by id
// @ModuleID getRegionByID
// @Produce  json
// @Param id path string true "region id"
// @Success 200 {object} regionResponse
// @Failure 404
// @Failure 500 {object} errorStruct
// @Router /regions/{id} [get]
func (h *Handler) getRegionByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	region, err := h.services.Regions.GetOneByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		logger.Error("get region by id failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, toRegionResponse(region))
}
