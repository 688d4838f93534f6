package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/sales-manager/internal/pagination"
)

// Envelope padrão da API:
// {status, message, count, results | data}

func OK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

func Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

// List monta o envelope paginado. totalKey é o nome da chave de total
// da coleção ("totalClients", "totalSales", ...), count é o tamanho da
// página devolvida.
func List(c *gin.Context, message, totalKey string, data any, count int, total int64, page pagination.Page) {
	results := gin.H{
		"data":        data,
		totalKey:      total,
		"totalPages":  page.TotalPages,
		"currentPage": page.CurrentPage,
	}

	if page.Next != nil {
		results["next"] = page.Next
	}
	if page.Previous != nil {
		results["previous"] = page.Previous
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": message,
		"count":   count,
		"results": results,
	})
}
