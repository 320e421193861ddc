package controllers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"tiechef/pkg/resp"
	"tiechef/services"
)

type ReceiptController struct {
	Service *services.ReceiptService
}

func NewReceiptController(svc *services.ReceiptService) *ReceiptController {
	return &ReceiptController{Service: svc}
}

// GET /api/receipt
func (ctl *ReceiptController) List(c *gin.Context) {
	dtos, err := ctl.Service.List()
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, dtos)
}

// GET /api/receipt/:id
func (ctl *ReceiptController) Get(c *gin.Context) {
	dto, err := ctl.Service.Get(pathID(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, dto)
}

// POST /api/receipt
func (ctl *ReceiptController) Create(c *gin.Context) {
	var req services.ReceiptDTO
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

// PUT /api/receipt/:id
func (ctl *ReceiptController) Update(c *gin.Context) {
	var req services.ReceiptDTO
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

// DELETE /api/receipt/:id
func (ctl *ReceiptController) Delete(c *gin.Context) {
	id := pathID(c, "id")
	if err := ctl.Service.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	resp.Message(c, fmt.Sprintf("receipt with id %d deleted", id))
}

// GET /api/receipt/by-payment/:wasPaid
func (ctl *ReceiptController) ListByPayment(c *gin.Context) {
	wasPaid, err := strconv.ParseBool(c.Param("wasPaid"))
	if err != nil {
		resp.BadRequest(c, "wasPaid must be true or false")
		return
	}
	dtos, err := ctl.Service.ListByPayment(wasPaid)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, dtos)
}

// GET /api/receipt/by-staff/:staffId
func (ctl *ReceiptController) ListByStaff(c *gin.Context) {
	dtos, err := ctl.Service.ListByStaff(pathID(c, "staffId"))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, dtos)
}

// PATCH /api/receipt/:id/payment
func (ctl *ReceiptController) SetPayment(c *gin.Context) {
	var req struct {
		WasPaid bool `json:"wasPaid"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	dto, err := ctl.Service.SetPayment(pathID(c, "id"), req.WasPaid)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, dto)
}

// POST /api/receipt/:id/dishes/:dishId
func (ctl *ReceiptController) AddDish(c *gin.Context) {
	dishID, _ := strconv.ParseInt(c.Param("dishId"), 10, 64)
	dto, err := ctl.Service.AddDish(pathID(c, "id"), dishID)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, dto)
}

// DELETE /api/receipt/:id/dishes/:dishId
func (ctl *ReceiptController) RemoveDish(c *gin.Context) {
	dishID, _ := strconv.ParseInt(c.Param("dishId"), 10, 64)
	dto, err := ctl.Service.RemoveDish(pathID(c, "id"), dishID)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, dto)
}

// POST /api/receipt/init-test-data
func (ctl *ReceiptController) InitTestData(c *gin.Context) {
	n, err := ctl.Service.SeedTestData()
	if err != nil {
		respondError(c, err)
		return
	}
	if n == 0 {
		resp.Message(c, "test data already exists")
		return
	}
	resp.Message(c, fmt.Sprintf("created %d test receipts", n))
}
