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

type EventHandler struct {
	Store  *application.Store
	Logger *logrus.Logger
}

func NewEventHandler(store *application.Store, logger *logrus.Logger) *EventHandler {
	return &EventHandler{Store: store, Logger: logger}
}

func (h *EventHandler) Refresh(c *gin.Context) {
	if err := h.Store.Events.FetchAll(c.Request.Context()); err != nil {
		fail(c, h.Logger, err)
		return
	}
	st := h.Store.Events.State()
	response.Success(c, http.StatusOK, st.Items, "events refreshed", sliceMeta{Loading: st.Loading, Total: len(st.Items)})
}

func (h *EventHandler) List(c *gin.Context) {
	st := h.Store.Events.State()
	items := st.Items
	if c.Query("sort") == "date" {
		items = view.EventsByDate(items)
	}
	response.Success(c, http.StatusOK, items, "", sliceMeta{Loading: st.Loading, Error: st.Error, Total: len(st.Items)})
}

func (h *EventHandler) Upcoming(c *gin.Context) {
	items := view.UpcomingEvents(h.Store.Events.State().Items, h.Store.Today())
	response.Success(c, http.StatusOK, items, "", gin.H{"today": h.Store.Today()})
}

// Mine lists the events the session account takes part in; anonymous
// sessions get an empty list.
func (h *EventHandler) Mine(c *gin.Context) {
	email := ""
	if acc, ok := h.Store.Session.Current(); ok {
		email = acc.Email
	}
	response.Success(c, http.StatusOK, view.MyEvents(h.Store.Events.State().Items, email), "", nil)
}

func (h *EventHandler) Create(c *gin.Context) {
	var in application.EventInput
	if !bind(c, &in) {
		return
	}
	ev, err := h.Store.Events.Create(c.Request.Context(), in)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, ev, "event created", nil)
}

func (h *EventHandler) Delete(c *gin.Context) {
	if err := h.Store.Events.Delete(c.Request.Context(), entity.ID(c.Param("id"))); err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"id": c.Param("id")}, "event deleted", nil)
}

func (h *EventHandler) Join(c *gin.Context) {
	ev, err := h.Store.Events.Join(c.Request.Context(), entity.ID(c.Param("id")))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, ev, "joined event", nil)
}

func (h *EventHandler) Leave(c *gin.Context) {
	ev, err := h.Store.Events.Leave(c.Request.Context(), entity.ID(c.Param("id")))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, ev, "left event", nil)
}

func (h *EventHandler) ClearError(c *gin.Context) {
	h.Store.Events.ClearError()
	c.Status(http.StatusNoContent)
}
