package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/IlyaM70/RedMango-API/pkg/resp"
	"github.com/IlyaM70/RedMango-API/services"
)

type MenuController struct {
	Svc *services.MenuService
	Log *zap.SugaredLogger
}

func NewMenuController(s *services.MenuService, log *zap.SugaredLogger) *MenuController {
	return &MenuController{Svc: s, Log: log}
}

// GET /menu-items
func (h *MenuController) List(c *gin.Context) {
	items, err := h.Svc.List()
	if err != nil {
		h.Log.Errorw("list menu items", "err", err)
		resp.ServerError(c)
		return
	}
	resp.OK(c, items)
}

// GET /menu-items/:id
func (h *MenuController) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		resp.BadRequest(c, "id can't be 0")
		return
	}

	item, err := h.Svc.Get(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "item was not found")
			return
		}
		h.Log.Errorw("get menu item", "id", id, "err", err)
		resp.ServerError(c)
		return
	}
	resp.OK(c, item)
}

// POST /menu-items (admin)
func (h *MenuController) Create(c *gin.Context) {
	var in services.MenuItemIn
	if err := c.ShouldBind(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		resp.BadRequest(c, "image is required")
		return
	}

	item, err := h.Svc.Create(&in, file)
	if err != nil {
		h.Log.Errorw("create menu item", "err", err)
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, item)
}

// PUT /menu-items/:id (admin)
func (h *MenuController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		resp.BadRequest(c, "id can't be 0")
		return
	}

	var in services.MenuItemIn
	if err := c.ShouldBind(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	// Image is optional on update; the previous one is kept when absent.
	file, _ := c.FormFile("file")

	item, err := h.Svc.Update(uint(id), &in, file)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "item was not found")
			return
		}
		h.Log.Errorw("update menu item", "id", id, "err", err)
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, item)
}

// DELETE /menu-items/:id (admin)
func (h *MenuController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		resp.BadRequest(c, "id can't be 0")
		return
	}

	if err := h.Svc.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "item was not found")
			return
		}
		h.Log.Errorw("delete menu item", "id", id, "err", err)
		resp.ServerError(c)
		return
	}
	resp.OK(c, nil)
}
