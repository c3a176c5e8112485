package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/digitalhub/internal/application"
	"github.com/oksasatya/digitalhub/pkg/response"
)

type SessionHandler struct {
	Session *application.SessionSlice
	Logger  *logrus.Logger
}

func NewSessionHandler(s *application.SessionSlice, logger *logrus.Logger) *SessionHandler {
	return &SessionHandler{Session: s, Logger: logger}
}

func (h *SessionHandler) Get(c *gin.Context) {
	response.Success(c, http.StatusOK, h.Session.State(), "", nil)
}

func (h *SessionHandler) Login(c *gin.Context) {
	var in application.LoginInput
	if !bind(c, &in) {
		return
	}
	acc, err := h.Session.Login(c.Request.Context(), in)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, acc, "login successful", nil)
}

func (h *SessionHandler) Register(c *gin.Context) {
	var in application.RegisterInput
	if !bind(c, &in) {
		return
	}
	acc, err := h.Session.Register(c.Request.Context(), in)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, acc, "account created", nil)
}

func (h *SessionHandler) Logout(c *gin.Context) {
	if err := h.Session.Logout(c.Request.Context()); err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"logged_out": true}, "logged out", nil)
}

func (h *SessionHandler) ClearError(c *gin.Context) {
	h.Session.ClearError()
	response.Success(c, http.StatusOK, h.Session.State(), "", nil)
}
