package handlers

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

var dashboardTmpl = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Engine Telemetry Dashboard</title></head>
<body>
<h1>Engine Telemetry Dashboard</h1>
<form id="prompt-form">
  <input id="prompt" name="prompt" size="60" placeholder="e.g. sensor 3 engine 5">
  <button type="submit">Generate chart</button>
</form>
<p id="status"></p>
<h2>Charts</h2>
<ul id="charts">
{{- range .}}
  <li><a href="/chart/{{.Path}}" target="_blank">{{.Name}}</a> ({{.Type}})</li>
{{- else}}
  <li>No charts yet.</li>
{{- end}}
</ul>
<script>
document.getElementById('prompt-form').addEventListener('submit', async (e) => {
  e.preventDefault();
  const res = await fetch('/generate_chart', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify({prompt: document.getElementById('prompt').value})
  });
  const body = await res.json();
  document.getElementById('status').textContent = body.message;
  if (body.success) { window.location.reload(); }
});
</script>
</body>
</html>
`))

// @Summary      Dashboard
// @Tags         charts
// @Produce      html
// @Success      200
// @Router       / [get]
func (h *Handler) dashboard(c *gin.Context) {
	list, err := h.services.Catalog.List(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to list charts", "dashboard_list_failed", err)
		return
	}
	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := dashboardTmpl.Execute(c.Writer, list); err != nil && h.log != nil {
		h.log.Errorw("dashboard_render_failed", "err", err)
	}
}
