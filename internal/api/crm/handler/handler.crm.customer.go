// Package crmhdl - Handler cho domain CRM.
package crmhdl

import (
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v3"

	basehdl "folk_crm/internal/api/base/handler"
	crmdto "folk_crm/internal/api/crm/dto"
	crmmodels "folk_crm/internal/api/crm/models"
	crmsvc "folk_crm/internal/api/crm/service"
	"folk_crm/internal/common"
	"folk_crm/internal/logger"
)

// CustomerHandler xử lý các request liên quan đến khách hàng:
// CRUD, import batch và export CSV.
type CustomerHandler struct {
	*basehdl.BaseHandler[crmmodels.Customer, crmdto.CustomerCreateInput, crmdto.CustomerUpdateInput]
	CustomerService *crmsvc.CustomerService
	ImportService   *crmsvc.ImportService
	ExportService   *crmsvc.ExportService
}

// NewCustomerHandler tạo mới CustomerHandler.
func NewCustomerHandler() (*CustomerHandler, error) {
	customerService, err := crmsvc.NewCustomerService()
	if err != nil {
		return nil, fmt.Errorf("failed to create customer service: %v", err)
	}
	importService, err := crmsvc.NewImportService()
	if err != nil {
		return nil, fmt.Errorf("failed to create import service: %v", err)
	}
	exportService, err := crmsvc.NewExportService()
	if err != nil {
		return nil, fmt.Errorf("failed to create export service: %v", err)
	}

	h := &CustomerHandler{
		CustomerService: customerService,
		ImportService:   importService,
		ExportService:   exportService,
	}
	h.BaseHandler = basehdl.NewBaseHandler[crmmodels.Customer, crmdto.CustomerCreateInput, crmdto.CustomerUpdateInput](customerService.BaseServiceMongoImpl)

	return h, nil
}

// InsertOne override để chuẩn hóa dữ liệu và sinh customerId qua service.
func (h *CustomerHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input crmdto.CustomerCreateInput
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

		data, err := h.CustomerService.CreateFromInput(c.Context(), &input)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleImport nhận một batch dòng semi-structured và reconcile vào DB.
// Response giữ đúng format {success, message, results} để tương thích client cũ.
// Lỗi từng dòng nằm trong results.errors; toàn bộ dòng lỗi vẫn là 200.
func (h *CustomerHandler) HandleImport(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var request crmdto.ImportRequest
		if err := h.ParseRequestBody(c, &request); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Payload import phải là JSON với mảng rows. Chi tiết: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}
		if request.Rows == nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Thiếu mảng rows trong payload import",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		summary := h.ImportService.Reconcile(c.Context(), request.Rows)

		return basehdl.JSONResponse(c, common.StatusOK, crmdto.ImportResponse{
			Success: true,
			Message: "تم استيراد العملاء بنجاح",
			Results: summary,
		})
	})
}

// HandleExport xuất toàn bộ khách hàng và lịch sử mua hàng ra file CSV đính kèm.
func (h *CustomerHandler) HandleExport(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		data, err := h.ExportService.ExportCustomersCSV(c.Context())
		if err != nil {
			logger.WithRequest(c).WithField("error", err.Error()).Error("Export khách hàng thất bại")
			h.HandleResponse(c, nil, err)
			return nil
		}

		c.Set("Content-Type", "text/csv; charset=utf-8")
		c.Set("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(crmsvc.ExportFileName)))
		return c.Send(data)
	})
}
