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

// ComplaintHandler xử lý các request về khiếu nại.
type ComplaintHandler struct {
	*basehdl.BaseHandler[crmmodels.Complaint, crmdto.ComplaintCreateInput, crmdto.ComplaintUpdateInput]
	ComplaintService *crmsvc.ComplaintService
}

// NewComplaintHandler tạo mới ComplaintHandler.
func NewComplaintHandler() (*ComplaintHandler, error) {
	complaintService, err := crmsvc.NewComplaintService()
	if err != nil {
		return nil, fmt.Errorf("failed to create complaint service: %v", err)
	}

	h := &ComplaintHandler{ComplaintService: complaintService}
	h.BaseHandler = basehdl.NewBaseHandler[crmmodels.Complaint, crmdto.ComplaintCreateInput, crmdto.ComplaintUpdateInput](complaintService.BaseServiceMongoImpl)
	return h, nil
}

// InsertOne override để chuẩn hóa enum và khởi tạo version qua service.
func (h *ComplaintHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input crmdto.ComplaintCreateInput
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

		data, err := h.ComplaintService.CreateFromInput(c.Context(), &input)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleUpdateWithVersion cập nhật khiếu nại với compare-and-swap trên version.
// Client gửi expectedVersion đã đọc; version lệch trả về 409.
func (h *ComplaintHandler) HandleUpdateWithVersion(c fiber.Ctx) error {
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

		var input crmdto.ComplaintUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}

		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.ComplaintService.UpdateWithVersion(c.Context(), utility.String2ObjectID(id), &input)
		h.HandleResponse(c, data, err)
		return nil
	})
}
