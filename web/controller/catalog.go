package controller

import (
	"net/http"

	"github.com/re912/cafe-managenent/config"
	"github.com/re912/cafe-managenent/database"
	"github.com/re912/cafe-managenent/database/model"
	"github.com/re912/cafe-managenent/web/service"

	"github.com/gin-gonic/gin"
)

// CatalogController handles product registration, editing, deletion and
// listing.
type CatalogController struct {
	productService *service.ProductService
}

func NewCatalogController(g *gin.RouterGroup, upload config.UploadConfig) *CatalogController {
	a := &CatalogController{
		productService: service.NewProductService(upload),
	}
	a.initRouter(g)
	return a
}

// ProductService exposes the catalog service for controllers that need
// the product list (the stock operation form).
func (a *CatalogController) ProductService() *service.ProductService {
	return a.productService
}

func (a *CatalogController) initRouter(g *gin.RouterGroup) {
	g.GET("/add_product", a.addProductPage)
	g.POST("/add_product", a.addProduct)
	g.GET("/edit_product/:id", a.editProductPage)
	g.POST("/edit_product/:id", a.editProduct)
	g.POST("/delete_product/:id", a.deleteProduct)
	g.GET("/product_list", a.productList)
}

func (a *CatalogController) addProductPage(c *gin.Context) {
	html(c, "add_product.html", "Add Product", nil)
}

// addProduct stores a new product. The image is optional; a file with a
// disallowed extension is dropped silently and the image field stays
// empty.
func (a *CatalogController) addProduct(c *gin.Context) {
	product := &model.Product{
		Name:        c.PostForm("name"),
		Price:       formFloat(c, "price"),
		Category:    c.PostForm("category"),
		Description: c.PostForm("description"),
	}

	if file, err := c.FormFile("image"); err == nil {
		imageUrl, err := a.productService.SaveImage(file)
		if err != nil {
			jsonMsg(c, "save image", err)
			return
		}
		product.ImageUrl = imageUrl
	}

	if err := a.productService.AddProduct(product); err != nil {
		jsonMsg(c, "add product", err)
		return
	}
	c.Redirect(http.StatusFound, "/add_product")
}

func (a *CatalogController) editProductPage(c *gin.Context) {
	id, ok := paramInt(c, "id")
	if !ok {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}
	product, err := a.productService.GetProduct(id)
	if err != nil {
		if database.IsNotFound(err) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		jsonMsg(c, "get product", err)
		return
	}
	html(c, "edit_product.html", "Edit Product", gin.H{"product": product})
}

// editProduct overwrites everything except the image reference. Unknown
// ids fall through with zero rows affected.
func (a *CatalogController) editProduct(c *gin.Context) {
	id, ok := paramInt(c, "id")
	if !ok {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}
	err := a.productService.UpdateProduct(
		id,
		c.PostForm("name"),
		formFloat(c, "price"),
		c.PostForm("category"),
		c.PostForm("description"),
	)
	if err != nil {
		jsonMsg(c, "edit product", err)
		return
	}
	c.Redirect(http.StatusFound, "/product_list")
}

func (a *CatalogController) deleteProduct(c *gin.Context) {
	id, ok := paramInt(c, "id")
	if !ok {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}
	if err := a.productService.DeleteProduct(id); err != nil {
		jsonMsg(c, "delete product", err)
		return
	}
	c.Redirect(http.StatusFound, "/product_list")
}

func (a *CatalogController) productList(c *gin.Context) {
	products, err := a.productService.GetProducts()
	if err != nil {
		jsonMsg(c, "list products", err)
		return
	}
	html(c, "product_list.html", "Products", gin.H{"products": products})
}
