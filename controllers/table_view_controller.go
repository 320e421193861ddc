package controllers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"tiechef/entity"
	"tiechef/pkg/resp"
	"tiechef/services"
)

type TableViewController struct {
	Service *services.TableViewService
}

func NewTableViewController(svc *services.TableViewService) *TableViewController {
	return &TableViewController{Service: svc}
}

// GET /api/tableview
func (ctl *TableViewController) List(c *gin.Context) {
	resp.OK(c, ctl.Service.List())
}

// GET /api/tableview/:id
func (ctl *TableViewController) Get(c *gin.Context) {
	dto, err := ctl.Service.Get(pathID(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, dto)
}

// POST /api/tableview
func (ctl *TableViewController) Create(c *gin.Context) {
	var req services.TableViewDTO
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

// PUT /api/tableview/:id
func (ctl *TableViewController) Update(c *gin.Context) {
	var req services.TableViewDTO
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

// DELETE /api/tableview/:id
func (ctl *TableViewController) Delete(c *gin.Context) {
	id := pathID(c, "id")
	if err := ctl.Service.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	resp.Message(c, fmt.Sprintf("table view with id %d deleted", id))
}

// GET /api/tableview/by-status/:status
func (ctl *TableViewController) ListByStatus(c *gin.Context) {
	resp.OK(c, ctl.Service.ListByStatus(entity.TableStatus(c.Param("status"))))
}

// GET /api/tableview/by-staff/:staffName
func (ctl *TableViewController) ListByStaff(c *gin.Context) {
	resp.OK(c, ctl.Service.ListByStaff(c.Param("staffName")))
}

// GET /api/tableview/available
func (ctl *TableViewController) Available(c *gin.Context) {
	resp.OK(c, ctl.Service.ListByStatus(entity.TableStatusAvailable))
}

// GET /api/tableview/occupied
func (ctl *TableViewController) Occupied(c *gin.Context) {
	resp.OK(c, ctl.Service.ListByStatus(entity.TableStatusOccupied))
}

// GET /api/tableview/paid
func (ctl *TableViewController) Paid(c *gin.Context) {
	resp.OK(c, ctl.Service.ListByStatus(entity.TableStatusPaid))
}

// PATCH /api/tableview/:id/status
func (ctl *TableViewController) SetStatus(c *gin.Context) {
	var req struct {
		Status entity.TableStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	dto, err := ctl.Service.SetStatus(pathID(c, "id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, dto)
}

// POST /api/tableview/init-test-data
func (ctl *TableViewController) InitTestData(c *gin.Context) {
	n, err := ctl.Service.SeedTestData()
	if err != nil {
		respondError(c, err)
		return
	}
	if n == 0 {
		resp.Message(c, "test data already exists")
		return
	}
	resp.Message(c, fmt.Sprintf("created %d test table views", n))
}
