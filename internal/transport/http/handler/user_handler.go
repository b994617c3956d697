package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"teadiary/internal/domain"
	"teadiary/internal/repo"
	"teadiary/internal/transport/http/response"
	"teadiary/pkg/utils"
)

// userPayload is the create/update DTO. The password travels in clear text
// and is hashed server-side; confirmPassword must match it.
type userPayload struct {
	FirstName       string  `json:"firstName" binding:"required,min=2,max=50"`
	LastName        *string `json:"lastName" binding:"omitempty,max=50"`
	MiddleName      *string `json:"middleName" binding:"omitempty,max=50"`
	Email           string  `json:"email" binding:"required,email"`
	Password        string  `json:"password" binding:"required,min=6,max=100"`
	ConfirmPassword string  `json:"confirmPassword" binding:"required,eqfield=Password"`
	AvatarID        *string `json:"avatarId"`
}

type userRead struct {
	ID         string    `json:"id"`
	FirstName  string    `json:"firstName"`
	LastName   *string   `json:"lastName"`
	MiddleName *string   `json:"middleName"`
	Email      string    `json:"email"`
	CreatedAt  time.Time `json:"createdAt"`
	AvatarID   *string   `json:"avatarId"`
}

func toUserRead(u *domain.User) userRead {
	return userRead{
		ID:         u.ID,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		MiddleName: u.MiddleName,
		Email:      u.Email,
		CreatedAt:  u.CreatedAt,
		AvatarID:   u.AvatarID,
	}
}

type UserHandler struct {
	users domain.UserRepository
	log   *zap.Logger
}

func NewUserHandler(users domain.UserRepository, log *zap.Logger) *UserHandler {
	return &UserHandler{users: users, log: log}
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List()
	if err != nil {
		h.log.Error("list users", zap.Error(err))
		response.Internal(c)
		return
	}
	out := make([]userRead, 0, len(users))
	for i := range users {
		out = append(out, toUserRead(&users[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *UserHandler) Get(c *gin.Context) {
	u, err := h.users.FindByID(c.Param("id"))
	if err != nil {
		h.log.Error("get user", zap.Error(err))
		response.Internal(c)
		return
	}
	if u == nil {
		response.NotFound(c, "Пользователь не найден")
		return
	}
	c.JSON(http.StatusOK, toUserRead(u))
}

func (h *UserHandler) Create(c *gin.Context) {
	var in userPayload
	if !bindJSON(c, &in) {
		return
	}
	createUser(c, h.users, h.log, &in)
}

// createUser is shared with the registration endpoint; the two differ only in
// route. Email uniqueness is guaranteed by the unique index, the lookup below
// is just a friendlier fast path.
func createUser(c *gin.Context, users domain.UserRepository, log *zap.Logger, in *userPayload) {
	existing, err := users.FindByEmail(in.Email)
	if err != nil {
		log.Error("lookup email", zap.Error(err))
		response.Internal(c)
		return
	}
	if existing != nil {
		response.Conflict(c, "Пользователь с таким Email уже существует")
		return
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		log.Error("hash password", zap.Error(err))
		response.Internal(c)
		return
	}

	u := domain.User{
		ID:           uuid.NewString(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		MiddleName:   in.MiddleName,
		Email:        in.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
		AvatarID:     in.AvatarID,
	}
	if err := users.Create(&u); err != nil {
		if repo.IsDuplicateKey(err) {
			response.Conflict(c, "Пользователь с таким Email уже существует")
			return
		}
		log.Error("create user", zap.Error(err))
		response.Internal(c)
		return
	}

	c.Header("Location", "/api/user/"+u.ID)
	c.JSON(http.StatusCreated, toUserRead(&u))
}

func (h *UserHandler) Update(c *gin.Context) {
	var in userPayload
	if !bindJSON(c, &in) {
		return
	}
	id := c.Param("id")
	u, err := h.users.FindByID(id)
	if err != nil {
		h.log.Error("load user", zap.Error(err))
		response.Internal(c)
		return
	}
	if u == nil {
		response.NotFound(c, "Пользователь не найден")
		return
	}

	applyUserUpdate(u, &in)
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

func (h *UserHandler) Delete(c *gin.Context) {
	// cascades to the user's teas and impressions at the storage layer
	rows, err := h.users.Delete(c.Param("id"))
	if err != nil {
		h.log.Error("delete user", zap.Error(err))
		response.Internal(c)
		return
	}
	if rows == 0 {
		response.NotFound(c, "Пользователь не найден")
		return
	}
	c.Status(http.StatusNoContent)
}

func applyUserUpdate(u *domain.User, in *userPayload) {
	u.FirstName = in.FirstName
	u.LastName = in.LastName
	u.MiddleName = in.MiddleName
	u.Email = in.Email
	u.AvatarID = in.AvatarID
}

// saveUser persists a full-field update. A zero-row result means the row
// vanished between load and save (404) or the update changed nothing.
func saveUser(c *gin.Context, users domain.UserRepository, log *zap.Logger, u *domain.User) bool {
	rows, err := users.Update(u)
	if err != nil {
		if repo.IsDuplicateKey(err) {
			response.Conflict(c, "Пользователь с таким Email уже существует")
			return false
		}
		log.Error("update user", zap.Error(err))
		response.Internal(c)
		return false
	}
	if rows == 0 {
		exists, err := users.Exists(u.ID)
		if err != nil {
			log.Error("recheck user", zap.Error(err))
			response.Internal(c)
			return false
		}
		if !exists {
			response.NotFound(c, "Пользователь не найден")
			return false
		}
	}
	return true
}
