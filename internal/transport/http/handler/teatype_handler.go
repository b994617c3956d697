package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"teadiary/internal/domain"
	"teadiary/internal/transport/http/response"
)

type teaTypePayload struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

type teaTypeRead struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func toTeaTypeRead(t *domain.TeaType) teaTypeRead {
	return teaTypeRead{ID: t.ID, Name: t.Name, Description: t.Description}
}

type TeaTypeHandler struct {
	types domain.TeaTypeRepository
	log   *zap.Logger
}

func NewTeaTypeHandler(types domain.TeaTypeRepository, log *zap.Logger) *TeaTypeHandler {
	return &TeaTypeHandler{types: types, log: log}
}

func (h *TeaTypeHandler) List(c *gin.Context) {
	types, err := h.types.List()
	if err != nil {
		h.log.Error("list tea types", zap.Error(err))
		response.Internal(c)
		return
	}
	out := make([]teaTypeRead, 0, len(types))
	for i := range types {
		out = append(out, toTeaTypeRead(&types[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *TeaTypeHandler) Get(c *gin.Context) {
	t, err := h.types.FindByID(c.Param("id"))
	if err != nil {
		h.log.Error("get tea type", zap.Error(err))
		response.Internal(c)
		return
	}
	if t == nil {
		response.NotFound(c, "Тип чая не найден")
		return
	}
	c.JSON(http.StatusOK, toTeaTypeRead(t))
}

func (h *TeaTypeHandler) Create(c *gin.Context) {
	var in teaTypePayload
	if !bindJSON(c, &in) {
		return
	}
	t := domain.TeaType{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
	}
	if err := h.types.Create(&t); err != nil {
		h.log.Error("create tea type", zap.Error(err))
		response.Internal(c)
		return
	}
	c.Header("Location", "/api/teatype/"+t.ID)
	c.JSON(http.StatusCreated, toTeaTypeRead(&t))
}

func (h *TeaTypeHandler) Update(c *gin.Context) {
	var in teaTypePayload
	if !bindJSON(c, &in) {
		return
	}
	id := c.Param("id")
	t, err := h.types.FindByID(id)
	if err != nil {
		h.log.Error("load tea type", zap.Error(err))
		response.Internal(c)
		return
	}
	if t == nil {
		response.NotFound(c, "Тип чая не найден")
		return
	}

	t.Name = in.Name
	t.Description = in.Description
	rows, err := h.types.Update(t)
	if err != nil {
		h.log.Error("update tea type", zap.Error(err))
		response.Internal(c)
		return
	}
	if rows == 0 {
		exists, err := h.types.Exists(id)
		if err != nil {
			h.log.Error("recheck tea type", zap.Error(err))
			response.Internal(c)
			return
		}
		if !exists {
			response.NotFound(c, "Тип чая не найден")
			return
		}
	}
	c.Status(http.StatusNoContent)
}

// Delete detaches referencing teas instead of blocking: tea.teaTypeId is
// nullable, so the rows survive with the reference cleared.
func (h *TeaTypeHandler) Delete(c *gin.Context) {
	rows, err := h.types.Delete(c.Param("id"))
	if err != nil {
		h.log.Error("delete tea type", zap.Error(err))
		response.Internal(c)
		return
	}
	if rows == 0 {
		response.NotFound(c, "Тип чая не найден")
		return
	}
	c.Status(http.StatusNoContent)
}
