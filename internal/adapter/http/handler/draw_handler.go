package handler

import (
	"strings"
	"time"

	"lottery-awards/internal/adapter/http/dto"
	"lottery-awards/internal/adapter/http/middleware"
	"lottery-awards/internal/core/domain"
	"lottery-awards/internal/core/ports"
	"lottery-awards/pkg/apperror"
	"lottery-awards/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DrawHandler handles draw publication and lookup.
type DrawHandler struct {
	drawSvc ports.DrawService
}

func NewDrawHandler(drawSvc ports.DrawService) *DrawHandler {
	return &DrawHandler{drawSvc: drawSvc}
}

// Publish handles POST /api/v1/draws. An optional Idempotency-Key header makes
// retries return the draw created by the first request.
func (h *DrawHandler) Publish(c *gin.Context) {
	operatorID, ok := middleware.OperatorID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	idempKey := strings.TrimSpace(c.GetHeader(middleware.HeaderIdempotencyKey))
	if len(idempKey) > middleware.MaxIdempotencyKeyLen {
		response.Error(c, apperror.Validation("Idempotency-Key header is too long"))
		return
	}

	var req dto.PublishDrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	heldOn, err := time.Parse(dto.DateLayout, req.HeldOn)
	if err != nil {
		response.Error(c, apperror.Validation("held_on must be a date like 2006-01-02"))
		return
	}

	numbers := make([]domain.WinningNumber, 0, len(req.Numbers))
	for _, n := range req.Numbers {
		tier, err := domain.ParseTier(n.Tier)
		if err != nil {
			response.Error(c, apperror.ErrInvalidDraw(err))
			return
		}
		w, err := domain.NewWinningNumber(tier, domain.LotteryNumber(*n.Number))
		if err != nil {
			response.Error(c, apperror.ErrInvalidDraw(err))
			return
		}
		numbers = append(numbers, w)
	}

	draw, err := h.drawSvc.PublishDraw(c.Request.Context(), ports.PublishDrawRequest{
		Name:           req.Name,
		HeldOn:         heldOn,
		Numbers:        numbers,
		OperatorID:     operatorID,
		ClientIP:       c.ClientIP(),
		IdempotencyKey: idempKey,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.NewDrawResponse(draw))
}

// Get handles GET /api/v1/draws/:id.
func (h *DrawHandler) Get(c *gin.Context) {
	id, ok := drawIDParam(c)
	if !ok {
		return
	}

	draw, err := h.drawSvc.GetDraw(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewDrawResponse(draw))
}

// List handles GET /api/v1/draws.
func (h *DrawHandler) List(c *gin.Context) {
	var q dto.ListDrawsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	params := ports.DrawListParams{Page: q.Page, PageSize: q.PageSize}
	if params.Page == 0 {
		params.Page = 1
	}
	if params.PageSize == 0 {
		params.PageSize = 20
	}

	draws, total, err := h.drawSvc.ListDraws(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewDrawListResponse(draws, total, params.Page, params.PageSize))
}

// drawIDParam parses the :id path parameter, writing a 400 when it is not a UUID.
func drawIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid draw id"))
		return uuid.Nil, false
	}
	return id, true
}
