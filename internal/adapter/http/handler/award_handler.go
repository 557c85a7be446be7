package handler

import (
	"lottery-awards/internal/adapter/http/dto"
	"lottery-awards/internal/core/domain"
	"lottery-awards/internal/core/ports"
	"lottery-awards/pkg/apperror"
	"lottery-awards/pkg/response"

	"github.com/gin-gonic/gin"
)

// AwardHandler handles ticket checks and payout reports.
type AwardHandler struct {
	awardSvc ports.AwardService
}

func NewAwardHandler(awardSvc ports.AwardService) *AwardHandler {
	return &AwardHandler{awardSvc: awardSvc}
}

// Check handles POST /api/v1/draws/:id/check.
func (h *AwardHandler) Check(c *gin.Context) {
	drawID, ok := drawIDParam(c)
	if !ok {
		return
	}

	var req dto.CheckTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.awardSvc.CheckTicket(c.Request.Context(), ports.CheckTicketRequest{
		DrawID: drawID,
		Number: domain.LotteryNumber(*req.Number),
		Stake:  stakeFromCents(req.StakeCents),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewTicketCheckResponse(result))
}

// Payout handles GET /api/v1/draws/:id/payout.
func (h *AwardHandler) Payout(c *gin.Context) {
	drawID, ok := drawIDParam(c)
	if !ok {
		return
	}

	var q dto.PayoutQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	report, err := h.awardSvc.PayoutReport(c.Request.Context(), drawID, stakeFromCents(q.StakeCents))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewPayoutReportResponse(report))
}

func stakeFromCents(cents *int64) *domain.Amount {
	if cents == nil {
		return nil
	}
	stake := domain.Cents(*cents)
	return &stake
}
