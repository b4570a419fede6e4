package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/feedback-hub/internal/domain/auth"
	"github.com/BruksfildServices01/feedback-hub/internal/httperr"
	"github.com/BruksfildServices01/feedback-hub/internal/httpresp"
	"github.com/BruksfildServices01/feedback-hub/internal/middleware"
	authuc "github.com/BruksfildServices01/feedback-hub/internal/usecase/auth"
)

type AuthHandler struct {
	login *authuc.Login
	me    *authuc.GetCurrentUser
}

func NewAuthHandler(
	login *authuc.Login,
	me *authuc.GetCurrentUser,
) *AuthHandler {
	return &AuthHandler{login: login, me: me}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.login.Execute(c.Request.Context(), authuc.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.OK(c, out)
}

func (h *AuthHandler) Me(c *gin.Context) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		httperr.Abort(c, auth.ErrTokenRequired)
		return
	}

	user, err := h.me.Execute(c.Request.Context(), p)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.OK(c, gin.H{"user": user})
}
