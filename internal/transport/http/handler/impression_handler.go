package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"teadiary/internal/domain"
	"teadiary/internal/transport/http/response"
)

type impressionCreateRequest struct {
	Text   string `json:"text" binding:"required,min=10,max=500"`
	TeaID  string `json:"teaId" binding:"required,uuid"`
	UserID string `json:"userId" binding:"required,uuid"`
}

// impressionUpdateRequest replaces the text only; the tea and user references
// are fixed at creation.
type impressionUpdateRequest struct {
	Text string `json:"text" binding:"required,min=10,max=500"`
}

type impressionRead struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	TeaID     string    `json:"teaId"`
	UserID    string    `json:"userId"`
}

func toImpressionRead(i *domain.Impression) impressionRead {
	return impressionRead{
		ID:        i.ID,
		Text:      i.Text,
		CreatedAt: i.CreatedAt,
		TeaID:     i.TeaID,
		UserID:    i.UserID,
	}
}

type ImpressionHandler struct {
	impressions domain.ImpressionRepository
	teas        domain.TeaRepository
	users       domain.UserRepository
	log         *zap.Logger
}

func NewImpressionHandler(impressions domain.ImpressionRepository, teas domain.TeaRepository, users domain.UserRepository, log *zap.Logger) *ImpressionHandler {
	return &ImpressionHandler{impressions: impressions, teas: teas, users: users, log: log}
}

// List is mounted admin-only; the gate lives in the router.
func (h *ImpressionHandler) List(c *gin.Context) {
	impressions, err := h.impressions.List()
	if err != nil {
		h.log.Error("list impressions", zap.Error(err))
		response.Internal(c)
		return
	}
	out := make([]impressionRead, 0, len(impressions))
	for i := range impressions {
		out = append(out, toImpressionRead(&impressions[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *ImpressionHandler) Get(c *gin.Context) {
	i, err := h.impressions.FindByID(c.Param("id"))
	if err != nil {
		h.log.Error("get impression", zap.Error(err))
		response.Internal(c)
		return
	}
	if i == nil {
		response.NotFound(c, "Впечатление не найдено")
		return
	}
	c.JSON(http.StatusOK, toImpressionRead(i))
}

func (h *ImpressionHandler) Create(c *gin.Context) {
	var in impressionCreateRequest
	if !bindJSON(c, &in) {
		return
	}

	ok, err := h.teas.Exists(in.TeaID)
	if err != nil {
		h.log.Error("check tea", zap.Error(err))
		response.Internal(c)
		return
	}
	if !ok {
		response.BadRequest(c, "Tea with Id "+in.TeaID+" does not exist.")
		return
	}
	ok, err = h.users.Exists(in.UserID)
	if err != nil {
		h.log.Error("check user", zap.Error(err))
		response.Internal(c)
		return
	}
	if !ok {
		response.BadRequest(c, "User with Id "+in.UserID+" does not exist.")
		return
	}

	i := domain.Impression{
		ID:        uuid.NewString(),
		Text:      in.Text,
		CreatedAt: time.Now().UTC(),
		TeaID:     in.TeaID,
		UserID:    in.UserID,
	}
	if err := h.impressions.Create(&i); err != nil {
		h.log.Error("create impression", zap.Error(err))
		response.Internal(c)
		return
	}

	c.Header("Location", "/api/impression/"+i.ID)
	c.JSON(http.StatusCreated, toImpressionRead(&i))
}

func (h *ImpressionHandler) Update(c *gin.Context) {
	var in impressionUpdateRequest
	if !bindJSON(c, &in) {
		return
	}
	id := c.Param("id")
	i, err := h.impressions.FindByID(id)
	if err != nil {
		h.log.Error("load impression", zap.Error(err))
		response.Internal(c)
		return
	}
	if i == nil {
		response.NotFound(c, "Впечатление не найдено")
		return
	}

	i.Text = in.Text
	rows, err := h.impressions.Update(i)
	if err != nil {
		h.log.Error("update impression", zap.Error(err))
		response.Internal(c)
		return
	}
	if rows == 0 {
		exists, err := h.impressions.Exists(id)
		if err != nil {
			h.log.Error("recheck impression", zap.Error(err))
			response.Internal(c)
			return
		}
		if !exists {
			response.NotFound(c, "Впечатление не найдено")
			return
		}
	}
	c.Status(http.StatusNoContent)
}

func (h *ImpressionHandler) Delete(c *gin.Context) {
	rows, err := h.impressions.Delete(c.Param("id"))
	if err != nil {
		h.log.Error("delete impression", zap.Error(err))
		response.Internal(c)
		return
	}
	if rows == 0 {
		response.NotFound(c, "Впечатление не найдено")
		return
	}
	c.Status(http.StatusNoContent)
}
