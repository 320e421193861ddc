package routes

import (
	"github.com/gin-gonic/gin"

	"tiechef/controllers"
)

type Controllers struct {
	Staff       *controllers.StaffController
	Dish        *controllers.DishController
	Receipt     *controllers.ReceiptController
	DiningTable *controllers.DiningTableController
	TableView   *controllers.TableViewController
}

func RegisterRoutes(r *gin.Engine, ctl Controllers) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	api := r.Group("/api")

	staff := api.Group("/staff")
	{
		staff.GET("", ctl.Staff.List)
		staff.GET("/:id", ctl.Staff.Get)
		staff.POST("", ctl.Staff.Create)
		staff.PUT("/:id", ctl.Staff.Update)
		staff.DELETE("/:id", ctl.Staff.Delete)
		staff.GET("/by-type/:type", ctl.Staff.ListByType)
		staff.GET("/by-role/:role", ctl.Staff.ListByRole)
		staff.POST("/init-test-data", ctl.Staff.InitTestData)
	}

	dish := api.Group("/dish")
	{
		dish.GET("", ctl.Dish.List)
		dish.GET("/:id", ctl.Dish.Get)
		dish.POST("", ctl.Dish.Create)
		dish.PUT("/:id", ctl.Dish.Update)
		dish.DELETE("/:id", ctl.Dish.Delete)
	}

	receipt := api.Group("/receipt")
	{
		receipt.GET("", ctl.Receipt.List)
		receipt.GET("/:id", ctl.Receipt.Get)
		receipt.POST("", ctl.Receipt.Create)
		receipt.PUT("/:id", ctl.Receipt.Update)
		receipt.DELETE("/:id", ctl.Receipt.Delete)
		receipt.GET("/by-payment/:wasPaid", ctl.Receipt.ListByPayment)
		receipt.GET("/by-staff/:staffId", ctl.Receipt.ListByStaff)
		receipt.PATCH("/:id/payment", ctl.Receipt.SetPayment)
		receipt.POST("/:id/dishes/:dishId", ctl.Receipt.AddDish)
		receipt.DELETE("/:id/dishes/:dishId", ctl.Receipt.RemoveDish)
		receipt.POST("/init-test-data", ctl.Receipt.InitTestData)
	}

	table := api.Group("/diningtable")
	{
		table.GET("", ctl.DiningTable.List)
		table.GET("/:id", ctl.DiningTable.Get)
		table.POST("", ctl.DiningTable.Create)
		table.PUT("/:id", ctl.DiningTable.Update)
		table.DELETE("/:id", ctl.DiningTable.Delete)
		table.POST("/reset", ctl.DiningTable.ResetLayout)
	}

	view := api.Group("/tableview")
	{
		view.GET("", ctl.TableView.List)
		view.GET("/:id", ctl.TableView.Get)
		view.POST("", ctl.TableView.Create)
		view.PUT("/:id", ctl.TableView.Update)
		view.DELETE("/:id", ctl.TableView.Delete)
		view.GET("/by-status/:status", ctl.TableView.ListByStatus)
		view.GET("/by-staff/:staffName", ctl.TableView.ListByStaff)
		view.GET("/available", ctl.TableView.Available)
		view.GET("/occupied", ctl.TableView.Occupied)
		view.GET("/paid", ctl.TableView.Paid)
		view.PATCH("/:id/status", ctl.TableView.SetStatus)
		view.POST("/init-test-data", ctl.TableView.InitTestData)
	}
}
