package httpserver

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront/internal/domain"
)

type productListResponse struct {
	Count   int              `json:"count"`
	Results []domain.Product `json:"results"`
}

type productQuery struct {
	Brand    string
	MaxPrice float64
	Sort     string
}

func (h *handlers) listProducts(c *gin.Context) {
	q := productQuery{
		Brand: strings.TrimSpace(c.Query("brand")),
		Sort:  strings.TrimSpace(c.Query("sort")),
	}
	if raw := c.Query("maxPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "maxPrice must be a positive number"})
			return
		}
		q.MaxPrice = v
	}
	products := filterProducts(h.deps.Catalog.Products(), q)
	sortProducts(products, q.Sort)
	c.JSON(http.StatusOK, productListResponse{Count: len(products), Results: products})
}

func (h *handlers) getProduct(c *gin.Context) {
	p, ok := h.deps.Catalog.Product(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func filterProducts(products []domain.Product, q productQuery) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if q.Brand != "" && !strings.EqualFold(p.Brand, q.Brand) {
			continue
		}
		if q.MaxPrice > 0 && p.BasePrice > q.MaxPrice {
			continue
		}
		out = append(out, p)
	}
	return out
}

// sortProducts orders by "price", "-price" or "name"; anything else keeps
// catalog order.
func sortProducts(products []domain.Product, by string) {
	switch by {
	case "price":
		sort.SliceStable(products, func(i, j int) bool { return products[i].BasePrice < products[j].BasePrice })
	case "-price":
		sort.SliceStable(products, func(i, j int) bool { return products[i].BasePrice > products[j].BasePrice })
	case "name":
		sort.SliceStable(products, func(i, j int) bool {
			return strings.ToLower(products[i].Name) < strings.ToLower(products[j].Name)
		})
	}
}
