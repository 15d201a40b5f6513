package controller

import (
	"net/http"

	"github.com/re912/cafe-managenent/database"
	"github.com/re912/cafe-managenent/web/service"
	"github.com/re912/cafe-managenent/web/session"

	"github.com/gin-gonic/gin"
)

// StockController handles stock movements and the joined history view.
type StockController struct {
	stockService   service.StockService
	productService *service.ProductService
}

func NewStockController(g *gin.RouterGroup, productService *service.ProductService) *StockController {
	a := &StockController{productService: productService}
	a.initRouter(g)
	return a
}

func (a *StockController) initRouter(g *gin.RouterGroup) {
	g.GET("/stock_operation", a.stockOperationPage)
	g.POST("/stock_operation", a.stockOperation)
	g.GET("/edit_stock/:id", a.editStockPage)
	g.POST("/edit_stock/:id", a.editStock)
	g.POST("/delete_stock/:id", a.deleteStock)
	g.GET("/stock_history", a.stockHistory)
}

func (a *StockController) stockOperationPage(c *gin.Context) {
	products, err := a.productService.GetProducts()
	if err != nil {
		jsonMsg(c, "list products", err)
		return
	}
	html(c, "stock_operation.html", "Stock Operation", gin.H{"products": products})
}

// stockOperation records a movement. The responsible person comes from
// the session cookie when one is set, else from the form field. Neither
// the product id nor the quantity is validated.
func (a *StockController) stockOperation(c *gin.Context) {
	responsiblePerson := session.GetResponsiblePerson(c)
	if responsiblePerson == "" {
		responsiblePerson = c.PostForm("responsible_person")
	}

	err := a.stockService.RecordMovement(
		formInt(c, "product_id"),
		formInt(c, "quantity"),
		c.PostForm("operation_type"),
		responsiblePerson,
	)
	if err != nil {
		jsonMsg(c, "record movement", err)
		return
	}
	c.Redirect(http.StatusFound, "/stock_operation")
}

func (a *StockController) editStockPage(c *gin.Context) {
	id, ok := paramInt(c, "id")
	if !ok {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}
	log, err := a.stockService.GetMovement(id)
	if err != nil {
		if database.IsNotFound(err) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		jsonMsg(c, "get movement", err)
		return
	}
	html(c, "edit_stock.html", "Edit Stock Log", gin.H{"log": log})
}

func (a *StockController) editStock(c *gin.Context) {
	id, ok := paramInt(c, "id")
	if !ok {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}
	err := a.stockService.UpdateMovement(
		id,
		formInt(c, "quantity"),
		c.PostForm("operation_type"),
		c.PostForm("responsible_person"),
	)
	if err != nil {
		jsonMsg(c, "edit movement", err)
		return
	}
	c.Redirect(http.StatusFound, "/stock_history")
}

func (a *StockController) deleteStock(c *gin.Context) {
	id, ok := paramInt(c, "id")
	if !ok {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}
	if err := a.stockService.DeleteMovement(id); err != nil {
		jsonMsg(c, "delete movement", err)
		return
	}
	c.Redirect(http.StatusFound, "/stock_history")
}

func (a *StockController) stockHistory(c *gin.Context) {
	entries, err := a.stockService.GetHistory()
	if err != nil {
		jsonMsg(c, "stock history", err)
		return
	}
	html(c, "stock_history.html", "Stock History", gin.H{"entries": entries})
}
