package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shopfront/internal/admin"
	"shopfront/internal/catalog"
	"shopfront/internal/checkout"
)

// @Summary List products (flat)
// @Tags catalog
// @Produce json
// @Param limit query int false "page size"
// @Param offset query int false "page offset"
// @Success 200 {object} catalog.ListResponse
// @Router /products [get]
func listProductsHandler(repo catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
		offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
		items, err := repo.List(c.Request.Context(), catalog.Query{Limit: limit, Offset: offset})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list products"})
			return
		}
		if items == nil {
			items = []catalog.Product{}
		}
		c.JSON(http.StatusOK, catalog.ListResponse{Limit: limit, Offset: offset, Items: items})
	}
}

// @Summary List products grouped by category
// @Tags catalog
// @Produce json
// @Success 200 {object} map[string][]catalog.Product
// @Router /products/grouped [get]
func groupedProductsHandler(repo catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		grouped, err := repo.ListGrouped(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list products"})
			return
		}
		c.JSON(http.StatusOK, grouped)
	}
}

// @Summary Get one product
// @Tags catalog
// @Produce json
// @Param id path string true "product id"
// @Success 200 {object} catalog.Product
// @Failure 404 {object} catalog.HTTPError
// @Router /products/{id} [get]
func getProductHandler(repo catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := repo.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load product"})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// @Summary Place an order
// @Description Accepts the checkout form: contact fields plus cart_data,
// @Description a JSON array of {id, name, price, quantity} cart lines.
// @Tags checkout
// @Accept x-www-form-urlencoded
// @Produce json
// @Param email formData string true "customer email"
// @Param phone formData string true "customer phone"
// @Param suburb formData string true "customer suburb"
// @Param cart_data formData string true "serialized cart lines"
// @Success 201 {object} map[string]string
// @Failure 400 {object} catalog.HTTPError
// @Router /checkout [post]
func checkoutHandler(svc *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkout.CheckoutRequest
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid checkout form"})
			return
		}

		o, err := svc.PlaceOrder(c.Request.Context(), req)
		var ve *checkout.ValidationError
		switch {
		case errors.As(err, &ve):
			c.JSON(http.StatusBadRequest, gin.H{"error": ve.Msg})
			return
		case errors.Is(err, checkout.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": "your cart is empty"})
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error processing order, please try again"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"order_id": o.ID, "total": o.TotalAmount})
	}
}

// @Summary Get an order with its items and subtotals
// @Tags checkout
// @Produce json
// @Param id path string true "order id"
// @Success 200 {object} checkout.OrderView
// @Failure 404 {object} catalog.HTTPError
// @Router /orders/{id} [get]
func getOrderHandler(svc *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, checkout.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load order"})
			return
		}
		c.JSON(http.StatusOK, v)
	}
}

// @Summary Admin summary: all orders plus revenue/cost/profit totals
// @Tags admin
// @Produce json
// @Success 200 {object} admin.Report
// @Router /admin/summary [get]
func adminSummaryHandler(svc *admin.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		rep, err := svc.Summary(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not build summary"})
			return
		}
		c.JSON(http.StatusOK, rep)
	}
}
