package handler

import (
	"lottery-awards/internal/adapter/http/dto"
	"lottery-awards/internal/core/domain"
	"lottery-awards/pkg/response"

	"github.com/gin-gonic/gin"
)

// PrizeTable handles GET /api/v1/prize-table.
func PrizeTable(c *gin.Context) {
	response.OK(c, dto.NewPrizeTableResponse(domain.PrizeTable()))
}
