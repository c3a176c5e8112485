package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/digitalhub/internal/application"
	"github.com/oksasatya/digitalhub/internal/domain/entity"
	"github.com/oksasatya/digitalhub/pkg/response"
)

type DiscussionHandler struct {
	Discussions *application.DiscussionSlice
	Logger      *logrus.Logger
}

func NewDiscussionHandler(d *application.DiscussionSlice, logger *logrus.Logger) *DiscussionHandler {
	return &DiscussionHandler{Discussions: d, Logger: logger}
}

func (h *DiscussionHandler) Refresh(c *gin.Context) {
	if err := h.Discussions.FetchAll(c.Request.Context()); err != nil {
		fail(c, h.Logger, err)
		return
	}
	st := h.Discussions.State()
	response.Success(c, http.StatusOK, st.Items, "discussions refreshed", sliceMeta{Loading: st.Loading, Total: len(st.Items)})
}

func (h *DiscussionHandler) List(c *gin.Context) {
	st := h.Discussions.State()
	response.Success(c, http.StatusOK, st.Items, "", sliceMeta{Loading: st.Loading, Error: st.Error, Total: len(st.Items)})
}

func (h *DiscussionHandler) Create(c *gin.Context) {
	var in application.DiscussionInput
	if !bind(c, &in) {
		return
	}
	d, err := h.Discussions.Create(c.Request.Context(), in)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, d, "discussion created", nil)
}

func (h *DiscussionHandler) Delete(c *gin.Context) {
	if err := h.Discussions.Delete(c.Request.Context(), entity.ID(c.Param("id"))); err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"id": c.Param("id")}, "discussion deleted", nil)
}

func (h *DiscussionHandler) ClearError(c *gin.Context) {
	h.Discussions.ClearError()
	c.Status(http.StatusNoContent)
}
