package controllers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"tiechef/entity"
	"tiechef/pkg/resp"
	"tiechef/services"
)

type StaffController struct {
	Service *services.StaffService
}

func NewStaffController(svc *services.StaffService) *StaffController {
	return &StaffController{Service: svc}
}

// GET /api/staff
func (ctl *StaffController) List(c *gin.Context) {
	dtos, err := ctl.Service.List()
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, dtos)
}

// GET /api/staff/:id
func (ctl *StaffController) Get(c *gin.Context) {
	dto, err := ctl.Service.Get(pathID(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, dto)
}

// POST /api/staff
func (ctl *StaffController) Create(c *gin.Context) {
	var req services.StaffDTO
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

// PUT /api/staff/:id
func (ctl *StaffController) Update(c *gin.Context) {
	var req services.StaffDTO
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

// DELETE /api/staff/:id
func (ctl *StaffController) Delete(c *gin.Context) {
	id := pathID(c, "id")
	if err := ctl.Service.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	resp.Message(c, fmt.Sprintf("staff with id %d deleted", id))
}

// GET /api/staff/by-type/:type
func (ctl *StaffController) ListByType(c *gin.Context) {
	dtos, err := ctl.Service.ListByType(entity.StaffType(c.Param("type")))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, dtos)
}

// GET /api/staff/by-role/:role
func (ctl *StaffController) ListByRole(c *gin.Context) {
	dtos, err := ctl.Service.ListByRole(entity.StaffRole(c.Param("role")))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, dtos)
}

// POST /api/staff/init-test-data
func (ctl *StaffController) InitTestData(c *gin.Context) {
	n, err := ctl.Service.SeedTestData()
	if err != nil {
		respondError(c, err)
		return
	}
	if n == 0 {
		resp.Message(c, "test data already exists")
		return
	}
	resp.Message(c, fmt.Sprintf("created %d test staff", n))
}
