package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"teadiary/internal/core/auth"
	"teadiary/internal/domain"
	"teadiary/internal/transport/http/middleware"
	"teadiary/internal/transport/http/response"
	"teadiary/pkg/utils"
)

// badCredentials is deliberately identical for an unknown email and a wrong
// password, so responses cannot be used to enumerate accounts.
const badCredentials = "Неверный Email или пароль"

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type AuthHandler struct {
	users domain.UserRepository
	jwter *auth.JWTer
	log   *zap.Logger
}

func NewAuthHandler(users domain.UserRepository, jwter *auth.JWTer, log *zap.Logger) *AuthHandler {
	return &AuthHandler{users: users, jwter: jwter, log: log}
}

// Register creates an account. Roles are never assigned here.
func (h *AuthHandler) Register(c *gin.Context) {
	var in userPayload
	if !bindJSON(c, &in) {
		return
	}
	createUser(c, h.users, h.log, &in)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var in loginRequest
	if !bindJSON(c, &in) {
		return
	}
	u, err := h.users.FindByEmail(in.Email)
	if err != nil {
		h.log.Error("lookup user", zap.Error(err))
		response.Internal(c)
		return
	}
	if u == nil {
		response.Unauthorized(c, badCredentials)
		return
	}

	switch utils.VerifyPassword(u.PasswordHash, in.Password) {
	case utils.PasswordMismatch:
		response.Unauthorized(c, badCredentials)
		return
	case utils.PasswordOKNeedsRehash:
		// best effort; login proceeds either way
		if hash, err := utils.HashPassword(in.Password); err == nil {
			u.PasswordHash = hash
			if _, err := h.users.Update(u); err != nil {
				h.log.Warn("password rehash failed", zap.Error(err))
			}
		}
	}

	token, err := h.jwter.Issue(u.ID, u.Email, u.Role)
	if err != nil {
		h.log.Error("issue token", zap.Error(err))
		response.Internal(c)
		return
	}
	c.JSON(http.StatusOK, tokenResponse{Token: token})
}

// Me returns the account behind the bearer subject. A well-formed token whose
// account is gone answers 404, not 401.
func (h *AuthHandler) Me(c *gin.Context) {
	uid := c.GetString(middleware.KeyUserID)
	if uid == "" {
		response.Unauthorized(c, "Требуется авторизация")
		return
	}
	u, err := h.users.FindByID(uid)
	if err != nil {
		h.log.Error("load current user", zap.Error(err))
		response.Internal(c)
		return
	}
	if u == nil {
		response.NotFound(c, "Пользователь не найден")
		return
	}
	c.JSON(http.StatusOK, toUserRead(u))
}

func (h *AuthHandler) UpdateMe(c *gin.Context) {
	var in userPayload
	if !bindJSON(c, &in) {
		return
	}
	uid := c.GetString(middleware.KeyUserID)
	if uid == "" {
		response.Unauthorized(c, "Требуется авторизация")
		return
	}
	u, err := h.users.FindByID(uid)
	if err != nil {
		h.log.Error("load current user", zap.Error(err))
		response.Internal(c)
		return
	}
	if u == nil {
		response.NotFound(c, "Пользователь не найден")
		return
	}

	applyUserUpdate(u, &in)
	// the DTO always carries a password, so every update re-hashes
	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		h.log.Error("hash password", zap.Error(err))
		response.Internal(c)
		return
	}
	u.PasswordHash = hash

	if !saveUser(c, h.users, h.log, u) {
		return
	}
	c.Status(http.StatusNoContent)
}
