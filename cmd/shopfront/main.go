package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "shopfront/docs"
	"shopfront/internal/admin"
	"shopfront/internal/catalog"
	"shopfront/internal/checkout"
	"shopfront/internal/config"
	"shopfront/internal/httpx"
	"shopfront/internal/storage"
)

// @title Shopfront API
// @version 1.0
// @description Storefront backend: product catalog, checkout and admin profit reporting.
// @BasePath /
func main() {
	cfg := config.Load()
	ctx := context.Background()

	pool, err := storage.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	if err := storage.EnsureSchema(ctx, pool); err != nil {
		log.Fatalf("ensure schema: %v", err)
	}

	catalogRepo := catalog.NewPGRepo(pool)
	if _, err := catalog.SeedIfEmpty(ctx, catalogRepo, cfg.SeedFile); err != nil {
		log.Fatalf("seed catalog: %v", err)
	}

	orderRepo := checkout.NewPGRepo(pool)
	checkoutSvc := checkout.NewService(orderRepo)
	adminSvc := admin.NewService(orderRepo, catalogRepo)

	r := gin.New()
	r.Use(httpx.RequestID(), httpx.Logger(), gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/products", listProductsHandler(catalogRepo))
	r.GET("/products/grouped", groupedProductsHandler(catalogRepo))
	r.GET("/products/:id", getProductHandler(catalogRepo))
	r.POST("/checkout", checkoutHandler(checkoutSvc))
	r.GET("/orders/:id", getOrderHandler(checkoutSvc))
	r.GET("/admin/summary", adminSummaryHandler(adminSvc))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Printf("shopfront listening on %s", cfg.Addr)
	log.Fatal(r.Run(cfg.Addr))
}
