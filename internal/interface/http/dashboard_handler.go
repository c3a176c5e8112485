package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/digitalhub/internal/application"
	"github.com/oksasatya/digitalhub/internal/application/view"
	"github.com/oksasatya/digitalhub/pkg/response"
)

type DashboardHandler struct {
	Store *application.Store
}

func NewDashboardHandler(store *application.Store) *DashboardHandler {
	return &DashboardHandler{Store: store}
}

func (h *DashboardHandler) Get(c *gin.Context) {
	d := view.BuildDashboard(
		h.Store.Startups.State().Items,
		h.Store.Events.State().Items,
		h.Store.Discussions.State().Items,
		h.Store.Today(),
	)
	response.Success(c, http.StatusOK, d, "", nil)
}
