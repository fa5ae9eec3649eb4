package crmhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "folk_crm/internal/api/base/handler"
	crmdto "folk_crm/internal/api/crm/dto"
	crmmodels "folk_crm/internal/api/crm/models"
	crmsvc "folk_crm/internal/api/crm/service"
	"folk_crm/internal/common"
)

// DailyFeedbackHandler xử lý các request về phiếu đánh giá hàng ngày.
type DailyFeedbackHandler struct {
	*basehdl.BaseHandler[crmmodels.DailyFeedback, crmdto.DailyFeedbackCreateInput, crmdto.DailyFeedbackUpdateInput]
	DailyFeedbackService *crmsvc.DailyFeedbackService
}

// NewDailyFeedbackHandler tạo mới DailyFeedbackHandler.
func NewDailyFeedbackHandler() (*DailyFeedbackHandler, error) {
	feedbackService, err := crmsvc.NewDailyFeedbackService()
	if err != nil {
		return nil, fmt.Errorf("failed to create daily feedback service: %v", err)
	}

	h := &DailyFeedbackHandler{DailyFeedbackService: feedbackService}
	h.BaseHandler = basehdl.NewBaseHandler[crmmodels.DailyFeedback, crmdto.DailyFeedbackCreateInput, crmdto.DailyFeedbackUpdateInput](feedbackService.BaseServiceMongoImpl)
	return h, nil
}

// InsertOne override để kiểm tra khách hàng tồn tại theo mã ngoài qua service.
func (h *DailyFeedbackHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input crmdto.DailyFeedbackCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON hoặc không khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.DailyFeedbackService.CreateFromInput(c.Context(), &input)
		h.HandleResponse(c, data, err)
		return nil
	})
}
