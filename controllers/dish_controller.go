package controllers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"tiechef/pkg/resp"
	"tiechef/services"
)

type DishController struct {
	Service *services.DishService
}

func NewDishController(svc *services.DishService) *DishController {
	return &DishController{Service: svc}
}

// GET /api/dish
func (ctl *DishController) List(c *gin.Context) {
	dtos, err := ctl.Service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, dtos)
}

// GET /api/dish/:id
func (ctl *DishController) Get(c *gin.Context) {
	dto, err := ctl.Service.Get(pathID(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, dto)
}

// POST /api/dish
func (ctl *DishController) Create(c *gin.Context) {
	var req services.DishDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	dto, err := ctl.Service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Created(c, dto)
}

// PUT /api/dish/:id
func (ctl *DishController) Update(c *gin.Context) {
	var req services.DishDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	dto, err := ctl.Service.Update(c.Request.Context(), pathID(c, "id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, dto)
}

// DELETE /api/dish/:id
func (ctl *DishController) Delete(c *gin.Context) {
	id := pathID(c, "id")
	if err := ctl.Service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	resp.Message(c, fmt.Sprintf("dish with id %d deleted", id))
}
