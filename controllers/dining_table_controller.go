package controllers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"tiechef/pkg/resp"
	"tiechef/services"
)

type DiningTableController struct {
	Service *services.DiningTableService
}

func NewDiningTableController(svc *services.DiningTableService) *DiningTableController {
	return &DiningTableController{Service: svc}
}

// GET /api/diningtable
func (ctl *DiningTableController) List(c *gin.Context) {
	dtos, err := ctl.Service.List()
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, dtos)
}

// GET /api/diningtable/:id
func (ctl *DiningTableController) Get(c *gin.Context) {
	dto, err := ctl.Service.Get(pathID(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, dto)
}

// POST /api/diningtable
func (ctl *DiningTableController) Create(c *gin.Context) {
	var req services.DiningTableDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	dto, err := ctl.Service.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Created(c, dto)
}

// PUT /api/diningtable/:id
func (ctl *DiningTableController) Update(c *gin.Context) {
	var req services.DiningTableDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	dto, err := ctl.Service.Update(pathID(c, "id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, dto)
}

// DELETE /api/diningtable/:id
func (ctl *DiningTableController) Delete(c *gin.Context) {
	id := pathID(c, "id")
	if err := ctl.Service.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	resp.Message(c, fmt.Sprintf("dining table with id %d deleted", id))
}

// POST /api/diningtable/reset
func (ctl *DiningTableController) ResetLayout(c *gin.Context) {
	if err := ctl.Service.ResetLayout(); err != nil {
		respondError(c, err)
		return
	}
	resp.NoContent(c)
}
