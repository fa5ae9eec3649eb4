package crmhdl

import (
	"fmt"

	basehdl "folk_crm/internal/api/base/handler"
	crmdto "folk_crm/internal/api/crm/dto"
	crmmodels "folk_crm/internal/api/crm/models"
	crmsvc "folk_crm/internal/api/crm/service"
)

// InvoiceHandler xử lý các request CRUD hóa đơn.
type InvoiceHandler struct {
	*basehdl.BaseHandler[crmmodels.Invoice, crmdto.InvoiceCreateInput, crmdto.InvoiceUpdateInput]
	InvoiceService *crmsvc.InvoiceService
}

// NewInvoiceHandler tạo mới InvoiceHandler.
func NewInvoiceHandler() (*InvoiceHandler, error) {
	invoiceService, err := crmsvc.NewInvoiceService()
	if err != nil {
		return nil, fmt.Errorf("failed to create invoice service: %v", err)
	}

	h := &InvoiceHandler{InvoiceService: invoiceService}
	h.BaseHandler = basehdl.NewBaseHandler[crmmodels.Invoice, crmdto.InvoiceCreateInput, crmdto.InvoiceUpdateInput](invoiceService.BaseServiceMongoImpl)
	return h, nil
}
