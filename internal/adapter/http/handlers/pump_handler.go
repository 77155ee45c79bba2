package handlers

import (
	"net/http"

	response "petromap/internal/adapter/http/dto/response"
	"petromap/internal/usecase"
	"petromap/pkg"

	"github.com/gin-gonic/gin"
)

// PumpHandler serves reads from the published registry.

type PumpHandler struct {
	usecase usecase.IPumpUseCase
}

func NewPumpHandler(uc usecase.IPumpUseCase) *PumpHandler {
	return &PumpHandler{usecase: uc}
}

// Districts returns the distinct district names for the autocomplete.
func (h *PumpHandler) Districts(c *gin.Context) {
	districts, err := h.usecase.Districts(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.DistrictsResponse{Districts: districts})
}
