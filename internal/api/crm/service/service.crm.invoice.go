package crmsvc

// Service hóa đơn (invoices) — CRUD trên base service.

import (
	"fmt"

	basesvc "folk_crm/internal/api/base/service"
	crmmodels "folk_crm/internal/api/crm/models"
	"folk_crm/internal/common"
	"folk_crm/internal/global"
)

// InvoiceService xử lý logic hóa đơn.
type InvoiceService struct {
	*basesvc.BaseServiceMongoImpl[crmmodels.Invoice]
}

// NewInvoiceService tạo InvoiceService mới.
func NewInvoiceService() (*InvoiceService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Invoices)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Invoices, common.ErrNotFound)
	}
	return &InvoiceService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[crmmodels.Invoice](coll),
	}, nil
}
