package controllers

import (
	"github.com/ImmrAD/the-digital-diner/pkg/resp"
	"github.com/ImmrAD/the-digital-diner/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// POST /api/orders
func (h *OrderController) Create(c *gin.Context) {
	var req services.PlaceOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.Place(c.Request.Context(), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, order)
}

// POST /api/orders/from-cart/:userId
func (h *OrderController) CreateFromCart(c *gin.Context) {
	var req services.CheckoutIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.PlaceFromCart(c.Request.Context(), c.Param("userId"), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /api/orders/phone/:phone
func (h *OrderController) ListByPhone(c *gin.Context) {
	orders, err := h.Svc.ListByPhone(c.Request.Context(), c.Param("phone"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, orders)
}
