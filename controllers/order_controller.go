package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/IlyaM70/RedMango-API/pkg/resp"
	"github.com/IlyaM70/RedMango-API/services"
)

type OrderController struct {
	Svc *services.OrderService
	Log *zap.SugaredLogger
}

func NewOrderController(s *services.OrderService, log *zap.SugaredLogger) *OrderController {
	return &OrderController{Svc: s, Log: log}
}

// GET /orders?userId=&searchString=&status=
func (h *OrderController) List(c *gin.Context) {
	var userID *uint
	if id := parseUintQuery(c, "userId"); id != 0 {
		userID = &id
	}

	orders, err := h.Svc.List(userID, c.Query("searchString"), c.Query("status"))
	if err != nil {
		h.Log.Errorw("list orders", "err", err)
		resp.ServerError(c)
		return
	}
	resp.OK(c, orders)
}

// GET /orders/:id
func (h *OrderController) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		resp.BadRequest(c, "order id is required")
		return
	}

	order, err := h.Svc.Get(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "order was not found")
			return
		}
		h.Log.Errorw("get order", "id", id, "err", err)
		resp.ServerError(c)
		return
	}
	resp.OK(c, order)
}

// POST /orders
func (h *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.Create(&req)
	if err != nil {
		h.Log.Errorw("create order", "err", err)
		resp.ServerError(c)
		return
	}
	resp.Created(c, order)
}

// PUT /orders/:id
func (h *OrderController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		resp.BadRequest(c, "order id is required")
		return
	}

	var req services.UpdateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.Update(uint(id), &req); err != nil {
		switch {
		case errors.Is(err, services.ErrIDMismatch):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrNotFound):
			resp.NotFound(c, "order was not found")
		default:
			h.Log.Errorw("update order", "id", id, "err", err)
			resp.ServerError(c)
		}
		return
	}
	resp.OK(c, nil)
}
