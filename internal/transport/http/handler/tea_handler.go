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

type teaCreateRequest struct {
	Name           string   `json:"name" binding:"required"`
	TeaTypeID      *string  `json:"teaTypeId" binding:"omitempty,uuid"`
	YearCollection *string  `json:"yearCollection" binding:"omitempty,harvestdate"`
	Quantity       int      `json:"quantity" binding:"gte=0"`
	Price          *float64 `json:"price" binding:"omitempty,gte=0"`
	LinkPurchase   *string  `json:"linkPurchase"`
	WouldBuyAgain  *bool    `json:"wouldBuyAgain"`
	Description    *string  `json:"description"`
	UserID         string   `json:"userId" binding:"required,uuid"`
	LinkToPhoto    *string  `json:"linkToPhoto"`
}

// teaUpdateRequest carries the mutable fields only: the owner and the
// creation timestamp never come from the client.
type teaUpdateRequest struct {
	Name           string   `json:"name" binding:"required"`
	TeaTypeID      *string  `json:"teaTypeId" binding:"omitempty,uuid"`
	YearCollection *string  `json:"yearCollection" binding:"omitempty,harvestdate"`
	Quantity       int      `json:"quantity" binding:"gte=0"`
	Price          *float64 `json:"price" binding:"omitempty,gte=0"`
	LinkPurchase   *string  `json:"linkPurchase"`
	WouldBuyAgain  *bool    `json:"wouldBuyAgain"`
	Description    *string  `json:"description"`
	LinkToPhoto    *string  `json:"linkToPhoto"`
}

type teaRead struct {
	ID             string       `json:"id"`
	CreatedAt      time.Time    `json:"createdAt"`
	Name           string       `json:"name"`
	TeaTypeID      *string      `json:"teaTypeId"`
	TeaType        *teaTypeRead `json:"teaType,omitempty"`
	YearCollection *string      `json:"yearCollection"`
	Quantity       int          `json:"quantity"`
	Price          *float64     `json:"price"`
	LinkPurchase   *string      `json:"linkPurchase"`
	WouldBuyAgain  *bool        `json:"wouldBuyAgain"`
	Description    *string      `json:"description"`
	UserID         string       `json:"userId"`
	LinkToPhoto    *string      `json:"linkToPhoto"`
}

func toTeaRead(t *domain.Tea) teaRead {
	out := teaRead{
		ID:             t.ID,
		CreatedAt:      t.CreatedAt,
		Name:           t.Name,
		TeaTypeID:      t.TeaTypeID,
		YearCollection: t.YearCollection,
		Quantity:       t.Quantity,
		Price:          t.Price,
		LinkPurchase:   t.LinkPurchase,
		WouldBuyAgain:  t.WouldBuyAgain,
		Description:    t.Description,
		UserID:         t.UserID,
		LinkToPhoto:    t.LinkToPhoto,
	}
	if t.TeaType != nil {
		tt := toTeaTypeRead(t.TeaType)
		out.TeaType = &tt
	}
	return out
}

type TeaHandler struct {
	teas  domain.TeaRepository
	types domain.TeaTypeRepository
	users domain.UserRepository
	log   *zap.Logger
}

func NewTeaHandler(teas domain.TeaRepository, types domain.TeaTypeRepository, users domain.UserRepository, log *zap.Logger) *TeaHandler {
	return &TeaHandler{teas: teas, types: types, users: users, log: log}
}

func (h *TeaHandler) List(c *gin.Context) {
	teas, err := h.teas.List()
	if err != nil {
		h.log.Error("list teas", zap.Error(err))
		response.Internal(c)
		return
	}
	c.JSON(http.StatusOK, teasToRead(teas))
}

func (h *TeaHandler) ListByUser(c *gin.Context) {
	teas, err := h.teas.ListByUser(c.Param("userId"))
	if err != nil {
		h.log.Error("list teas by user", zap.Error(err))
		response.Internal(c)
		return
	}
	c.JSON(http.StatusOK, teasToRead(teas))
}

func (h *TeaHandler) Get(c *gin.Context) {
	t, err := h.teas.FindByID(c.Param("id"))
	if err != nil {
		h.log.Error("get tea", zap.Error(err))
		response.Internal(c)
		return
	}
	if t == nil {
		response.NotFound(c, "Чай не найден")
		return
	}
	c.JSON(http.StatusOK, toTeaRead(t))
}

func (h *TeaHandler) Create(c *gin.Context) {
	var in teaCreateRequest
	if !bindJSON(c, &in) {
		return
	}
	if !h.checkRefs(c, in.UserID, in.TeaTypeID) {
		return
	}

	t := domain.Tea{
		ID:             uuid.NewString(),
		CreatedAt:      time.Now().UTC(),
		Name:           in.Name,
		TeaTypeID:      in.TeaTypeID,
		YearCollection: in.YearCollection,
		Quantity:       in.Quantity,
		Price:          in.Price,
		LinkPurchase:   in.LinkPurchase,
		WouldBuyAgain:  in.WouldBuyAgain,
		Description:    in.Description,
		UserID:         in.UserID,
		LinkToPhoto:    in.LinkToPhoto,
	}
	if err := h.teas.Create(&t); err != nil {
		h.log.Error("create tea", zap.Error(err))
		response.Internal(c)
		return
	}

	c.Header("Location", "/api/tea/"+t.ID)
	c.JSON(http.StatusCreated, toTeaRead(&t))
}

func (h *TeaHandler) Update(c *gin.Context) {
	var in teaUpdateRequest
	if !bindJSON(c, &in) {
		return
	}
	id := c.Param("id")
	t, err := h.teas.FindByID(id)
	if err != nil {
		h.log.Error("load tea", zap.Error(err))
		response.Internal(c)
		return
	}
	if t == nil {
		response.NotFound(c, "Чай не найден")
		return
	}
	if in.TeaTypeID != nil && !h.checkTeaType(c, *in.TeaTypeID) {
		return
	}

	t.Name = in.Name
	t.TeaTypeID = in.TeaTypeID
	t.YearCollection = in.YearCollection
	t.Quantity = in.Quantity
	t.Price = in.Price
	t.LinkPurchase = in.LinkPurchase
	t.WouldBuyAgain = in.WouldBuyAgain
	t.Description = in.Description
	t.LinkToPhoto = in.LinkToPhoto

	rows, err := h.teas.Update(t)
	if err != nil {
		h.log.Error("update tea", zap.Error(err))
		response.Internal(c)
		return
	}
	if rows == 0 {
		exists, err := h.teas.Exists(id)
		if err != nil {
			h.log.Error("recheck tea", zap.Error(err))
			response.Internal(c)
			return
		}
		if !exists {
			response.NotFound(c, "Чай не найден")
			return
		}
	}
	c.Status(http.StatusNoContent)
}

func (h *TeaHandler) Delete(c *gin.Context) {
	rows, err := h.teas.Delete(c.Param("id"))
	if err != nil {
		h.log.Error("delete tea", zap.Error(err))
		response.Internal(c)
		return
	}
	if rows == 0 {
		response.NotFound(c, "Чай не найден")
		return
	}
	c.Status(http.StatusNoContent)
}

// checkRefs rejects a create whose owner or type does not exist; a dangling
// reference must never reach the storage layer as a 500.
func (h *TeaHandler) checkRefs(c *gin.Context, userID string, teaTypeID *string) bool {
	ok, err := h.users.Exists(userID)
	if err != nil {
		h.log.Error("check user", zap.Error(err))
		response.Internal(c)
		return false
	}
	if !ok {
		response.BadRequest(c, "User with Id "+userID+" does not exist.")
		return false
	}
	if teaTypeID != nil {
		return h.checkTeaType(c, *teaTypeID)
	}
	return true
}

func (h *TeaHandler) checkTeaType(c *gin.Context, id string) bool {
	ok, err := h.types.Exists(id)
	if err != nil {
		h.log.Error("check tea type", zap.Error(err))
		response.Internal(c)
		return false
	}
	if !ok {
		response.BadRequest(c, "TeaType with Id "+id+" does not exist.")
		return false
	}
	return true
}

func teasToRead(teas []domain.Tea) []teaRead {
	out := make([]teaRead, 0, len(teas))
	for i := range teas {
		out = append(out, toTeaRead(&teas[i]))
	}
	return out
}
