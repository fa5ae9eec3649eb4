package crmhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "folk_crm/internal/api/base/handler"
	crmdto "folk_crm/internal/api/crm/dto"
	crmmodels "folk_crm/internal/api/crm/models"
	crmsvc "folk_crm/internal/api/crm/service"
	"folk_crm/internal/common"
	"folk_crm/internal/utility"
)

// FeedbackTaskHandler xử lý các request về task chăm sóc khách.
type FeedbackTaskHandler struct {
	*basehdl.BaseHandler[crmmodels.FeedbackTask, crmdto.FeedbackTaskCreateInput, crmdto.FeedbackTaskUpdateInput]
	FeedbackTaskService *crmsvc.FeedbackTaskService
}

// NewFeedbackTaskHandler tạo mới FeedbackTaskHandler.
func NewFeedbackTaskHandler() (*FeedbackTaskHandler, error) {
	taskService, err := crmsvc.NewFeedbackTaskService()
	if err != nil {
		return nil, fmt.Errorf("failed to create feedback task service: %v", err)
	}

	h := &FeedbackTaskHandler{FeedbackTaskService: taskService}
	h.BaseHandler = basehdl.NewBaseHandler[crmmodels.FeedbackTask, crmdto.FeedbackTaskCreateInput, crmdto.FeedbackTaskUpdateInput](taskService.BaseServiceMongoImpl)
	return h, nil
}

// HandleUpsertByInvoice upsert task theo invoiceId — idempotent, mỗi hóa đơn
// chỉ có một task; status Pending chỉ set khi tạo mới.
func (h *FeedbackTaskHandler) HandleUpsertByInvoice(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input crmdto.FeedbackTaskCreateInput
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

		data, err := h.FeedbackTaskService.UpsertByInvoiceID(c.Context(), &input)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleMarkCompleted chuyển một task sang trạng thái Completed.
func (h *FeedbackTaskHandler) HandleMarkCompleted(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("id")
		if !primitive.IsValidObjectID(id) {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", id),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		data, err := h.FeedbackTaskService.MarkCompleted(c.Context(), utility.String2ObjectID(id))
		h.HandleResponse(c, data, err)
		return nil
	})
}
