package controllers

import (
	"github.com/ImmrAD/the-digital-diner/pkg/resp"
	"github.com/ImmrAD/the-digital-diner/services"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /api/cart/:userId
func (h *CartController) Get(c *gin.Context) {
	cart, err := h.Svc.Get(c.Param("userId"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cart)
}

// POST /api/cart/:userId/add
func (h *CartController) Add(c *gin.Context) {
	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cart, err := h.Svc.AddItem(c.Request.Context(), c.Param("userId"), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cart)
}

// POST /api/cart/:userId/update
func (h *CartController) Update(c *gin.Context) {
	var req services.UpdateCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cart, err := h.Svc.UpdateItem(c.Request.Context(), c.Param("userId"), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cart)
}

// POST /api/cart/:userId/remove
func (h *CartController) Remove(c *gin.Context) {
	var req services.RemoveFromCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cart, err := h.Svc.RemoveItem(c.Request.Context(), c.Param("userId"), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cart)
}

// POST /api/cart/:userId/clear
func (h *CartController) Clear(c *gin.Context) {
	cart, err := h.Svc.Clear(c.Request.Context(), c.Param("userId"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cart)
}
