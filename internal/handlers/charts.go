package handlers

import (
	"mime"
	"net/http"
	"path/filepath"

	"engine_rul/internal/apperr"
	"engine_rul/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	msgChartGenerated = "Chart generated successfully: "
	msgChartNoMatch   = "Could not generate chart from prompt"
	msgChartError     = "Error generating chart: "
)

// GenerateChartRequest is the POST /generate_chart payload.
type GenerateChartRequest struct {
	// Free-text request, e.g. "sensor 3 engine 5"
	Prompt string `json:"prompt" example:"show sensor 3 for engine 5"`
}

// @Summary      Generate chart from prompt
// @Description  Interprets the prompt (sensor N / engine M) and renders the matching chart. Failures are reported with success=false, never as an HTTP error.
// @Tags         charts
// @Accept       json
// @Produce      json
// @Param        body  body      GenerateChartRequest  true  "Prompt"
// @Success      200   {object}  models.ChartResult
// @Router       /generate_chart [post]
func (h *Handler) generateChart(c *gin.Context) {
	var req GenerateChartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, models.ChartResult{Success: false, Message: msgChartError + err.Error()})
		return
	}

	name, err := h.services.Charts.Generate(c.Request.Context(), req.Prompt)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, models.ChartResult{
			Success:   true,
			ChartPath: name,
			Message:   msgChartGenerated + name,
		})
	case apperr.KindOf(err) == apperr.KindUnrenderable:
		if h.log != nil {
			h.log.Infow("chart_unrenderable", "prompt", req.Prompt, "reason", err.Error())
		}
		c.JSON(http.StatusOK, models.ChartResult{Success: false, Message: msgChartNoMatch + ": " + err.Error()})
	default:
		if h.log != nil {
			h.log.Errorw("chart_render_failed", "err", err, "prompt", req.Prompt, "request_id", c.GetString(requestIDKey))
		}
		c.JSON(http.StatusOK, models.ChartResult{Success: false, Message: msgChartError + err.Error()})
	}
}

// @Summary      List charts
// @Tags         charts
// @Produce      json
// @Success      200  {array}   models.ChartInfo
// @Failure      500  {object}  map[string]string
// @Router       /charts [get]
func (h *Handler) listCharts(c *gin.Context) {
	list, err := h.services.Catalog.List(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to list charts", "charts_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary      Fetch chart
// @Tags         charts
// @Produce      html
// @Param        filename  path  string  true  "Chart filename"  example(sensor_3_engine_5.html)
// @Success      200
// @Failure      404  {object}  map[string]string
// @Router       /chart/{filename} [get]
func (h *Handler) serveChart(c *gin.Context) {
	name := c.Param("filename")
	b, err := h.services.Catalog.Fetch(c.Request.Context(), name)
	if err != nil {
		h.logAndJSONError(c, apperr.HTTPStatus(err), err.Error(), "chart_fetch_failed", err, "name", name)
		return
	}
	c.Data(http.StatusOK, contentTypeFor(name, b), b)
}

func contentTypeFor(name string, b []byte) string {
	if ct := mime.TypeByExtension(filepath.Ext(name)); ct != "" {
		return ct
	}
	return http.DetectContentType(b)
}
