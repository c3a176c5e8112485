package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/digitalhub/internal/application"
	"github.com/oksasatya/digitalhub/internal/application/view"
	"github.com/oksasatya/digitalhub/internal/domain/entity"
	"github.com/oksasatya/digitalhub/pkg/response"
)

type StartupHandler struct {
	Startups *application.StartupSlice
	Logger   *logrus.Logger
}

func NewStartupHandler(s *application.StartupSlice, logger *logrus.Logger) *StartupHandler {
	return &StartupHandler{Startups: s, Logger: logger}
}

type sliceMeta struct {
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
	Total   int    `json:"total"`
}

func (h *StartupHandler) Refresh(c *gin.Context) {
	if err := h.Startups.FetchAll(c.Request.Context()); err != nil {
		fail(c, h.Logger, err)
		return
	}
	st := h.Startups.State()
	response.Success(c, http.StatusOK, st.Items, "startups refreshed", sliceMeta{Loading: st.Loading, Total: len(st.Items)})
}

// List returns the filtered directory. Query parameters q and sector
// override the stored filter for this request only.
func (h *StartupHandler) List(c *gin.Context) {
	f := h.Startups.Filter()
	if q, ok := c.GetQuery("q"); ok {
		f.SearchTerm = q
	}
	if s, ok := c.GetQuery("sector"); ok {
		f.Sector = entity.Sector(s)
	}
	st := h.Startups.State()
	items := view.FilteredStartups(st.Items, f.SearchTerm, f.Sector)
	response.Success(c, http.StatusOK, items, "", gin.H{
		"filter":  f,
		"loading": st.Loading,
		"error":   st.Error,
		"total":   len(st.Items),
	})
}

func (h *StartupHandler) Featured(c *gin.Context) {
	s, ok := view.FeaturedStartup(h.Startups.State().Items)
	if !ok {
		response.Error[any](c, http.StatusNotFound, "no featured startup", nil)
		return
	}
	response.Success(c, http.StatusOK, s, "", nil)
}

func (h *StartupHandler) Sectors(c *gin.Context) {
	response.Success(c, http.StatusOK, view.SectorCounts(h.Startups.State().Items), "", nil)
}

func (h *StartupHandler) SetFilter(c *gin.Context) {
	var f application.StartupFilter
	if !bind(c, &f) {
		return
	}
	if f.Sector == "" {
		f.Sector = entity.SectorAll
	}
	if f.Sector != entity.SectorAll && !entity.IsKnownSector(f.Sector) {
		response.Error[any](c, http.StatusBadRequest, "validation failed", gin.H{"sector": "must be a known sector"})
		return
	}
	h.Startups.SetSearchTerm(f.SearchTerm)
	h.Startups.SetSector(f.Sector)
	response.Success(c, http.StatusOK, h.Startups.Filter(), "filter updated", nil)
}

func (h *StartupHandler) Create(c *gin.Context) {
	var in application.StartupInput
	if !bind(c, &in) {
		return
	}
	s, err := h.Startups.Create(c.Request.Context(), in)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, s, "startup created", nil)
}

func (h *StartupHandler) Update(c *gin.Context) {
	var in application.StartupInput
	if !bind(c, &in) {
		return
	}
	s, err := h.Startups.Update(c.Request.Context(), entity.ID(c.Param("id")), in)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, s, "startup updated", nil)
}

func (h *StartupHandler) Delete(c *gin.Context) {
	if err := h.Startups.Delete(c.Request.Context(), entity.ID(c.Param("id"))); err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"id": c.Param("id")}, "startup deleted", nil)
}

func (h *StartupHandler) ClearError(c *gin.Context) {
	h.Startups.ClearError()
	c.Status(http.StatusNoContent)
}
