package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/IlyaM70/RedMango-API/pkg/resp"
	"github.com/IlyaM70/RedMango-API/services"
)

type PaymentController struct {
	Svc *services.PaymentService
	Log *zap.SugaredLogger
}

func NewPaymentController(s *services.PaymentService, log *zap.SugaredLogger) *PaymentController {
	return &PaymentController{Svc: s, Log: log}
}

// POST /payment?userId=
func (h *PaymentController) Create(c *gin.Context) {
	userID := parseUintQuery(c, "userId")
	if userID == 0 {
		resp.BadRequest(c, "userId is required")
		return
	}

	cart, err := h.Svc.CreatePaymentIntent(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCartEmpty):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrExternalProvider):
			resp.BadRequest(c, err.Error())
		default:
			h.Log.Errorw("create payment intent", "userId", userID, "err", err)
			resp.ServerError(c)
		}
		return
	}
	resp.OK(c, cart)
}
