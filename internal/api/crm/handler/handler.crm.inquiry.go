package crmhdl

import (
	"fmt"

	basehdl "folk_crm/internal/api/base/handler"
	crmdto "folk_crm/internal/api/crm/dto"
	crmmodels "folk_crm/internal/api/crm/models"
	crmsvc "folk_crm/internal/api/crm/service"
)

// DailyInquiryHandler xử lý các request CRUD yêu cầu hỏi đáp trong ngày.
type DailyInquiryHandler struct {
	*basehdl.BaseHandler[crmmodels.DailyInquiry, crmdto.DailyInquiryCreateInput, crmdto.DailyInquiryUpdateInput]
	DailyInquiryService *crmsvc.DailyInquiryService
}

// NewDailyInquiryHandler tạo mới DailyInquiryHandler.
func NewDailyInquiryHandler() (*DailyInquiryHandler, error) {
	inquiryService, err := crmsvc.NewDailyInquiryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create daily inquiry service: %v", err)
	}

	h := &DailyInquiryHandler{DailyInquiryService: inquiryService}
	h.BaseHandler = basehdl.NewBaseHandler[crmmodels.DailyInquiry, crmdto.DailyInquiryCreateInput, crmdto.DailyInquiryUpdateInput](inquiryService.BaseServiceMongoImpl)
	return h, nil
}
