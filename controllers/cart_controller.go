package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/IlyaM70/RedMango-API/pkg/resp"
	"github.com/IlyaM70/RedMango-API/services"
)

type CartController struct {
	Svc *services.CartService
	Log *zap.SugaredLogger
}

func NewCartController(s *services.CartService, log *zap.SugaredLogger) *CartController {
	return &CartController{Svc: s, Log: log}
}

// GET /cart?userId=
func (h *CartController) Get(c *gin.Context) {
	userID := parseUintQuery(c, "userId")

	cart, err := h.Svc.Get(userID)
	if err != nil {
		h.Log.Errorw("get cart", "userId", userID, "err", err)
		resp.ServerError(c)
		return
	}
	resp.OK(c, cart)
}

// POST /cart?userId=&menuItemId=&updateQuantityBy=
func (h *CartController) ApplyDelta(c *gin.Context) {
	userID := parseUintQuery(c, "userId")
	menuItemID := parseUintQuery(c, "menuItemId")
	delta, err := strconv.Atoi(c.Query("updateQuantityBy"))
	if err != nil || userID == 0 || menuItemID == 0 {
		resp.BadRequest(c, "userId, menuItemId and updateQuantityBy are required")
		return
	}

	if err := h.Svc.ApplyDelta(userID, menuItemID, delta); err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			resp.BadRequest(c, err.Error())
			return
		}
		h.Log.Errorw("apply cart delta", "userId", userID, "menuItemId", menuItemID, "err", err)
		resp.ServerError(c)
		return
	}
	resp.OK(c, nil)
}

func parseUintQuery(c *gin.Context, key string) uint {
	v, err := strconv.ParseUint(c.Query(key), 10, 32)
	if err != nil {
		return 0
	}
	return uint(v)
}
