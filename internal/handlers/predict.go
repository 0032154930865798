package handlers

import (
	"net/http"

	"engine_rul/internal/apperr"
	"engine_rul/internal/models"

	"github.com/gin-gonic/gin"
)

// @Summary      Predict remaining useful life
// @Description  Runs the loaded regression model over the feature row. When current_cycle is given, predicted_failure_cycle = current_cycle + predicted_rul.
// @Tags         inference
// @Accept       json
// @Produce      json
// @Param        body  body      models.PredictionRequest  true  "Feature snapshot"
// @Success      200   {object}  models.PredictionResponse
// @Failure      400   {object}  map[string]string
// @Failure      503   {object}  map[string]string
// @Router       /predict [post]
func (h *Handler) predict(c *gin.Context) {
	var req models.PredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logAndJSONError(c, http.StatusBadRequest, err.Error(), "predict_bad_body", err)
		return
	}

	resp, err := h.services.Inference.Predict(c.Request.Context(), req)
	if err != nil {
		h.logAndJSONError(c, apperr.HTTPStatus(err), err.Error(), "predict_failed", err,
			"features", len(req.Features))
		return
	}
	c.JSON(http.StatusOK, resp)
}
