package crmsvc

// Service khách hàng (customers) — CRUD trên base service.

import (
	"context"
	"fmt"

	basesvc "folk_crm/internal/api/base/service"
	crmdto "folk_crm/internal/api/crm/dto"
	crmmodels "folk_crm/internal/api/crm/models"
	"folk_crm/internal/common"
	"folk_crm/internal/global"
)

// CustomerService xử lý logic khách hàng.
type CustomerService struct {
	*basesvc.BaseServiceMongoImpl[crmmodels.Customer]
}

// NewCustomerService tạo CustomerService mới.
func NewCustomerService() (*CustomerService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Customers)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Customers, common.ErrNotFound)
	}
	return &CustomerService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[crmmodels.Customer](coll),
	}, nil
}

// CreateFromInput tạo khách hàng từ DTO, chuẩn hóa dữ liệu ở boundary:
// sinh customerId khi trống, chuẩn hóa phone và classification.
func (s *CustomerService) CreateFromInput(ctx context.Context, input *crmdto.CustomerCreateInput) (crmmodels.Customer, error) {
	customerID := input.CustomerID
	if customerID == "" {
		customerID = GenerateCustomerID()
	}

	customer := crmmodels.Customer{
		CustomerID:      customerID,
		Name:            input.Name,
		Phone:           crmmodels.NormalizePhone(input.Phone),
		Governorate:     input.Governorate,
		StreetAddress:   input.StreetAddress,
		Classification:  crmmodels.NormalizeClassification(input.Classification),
		PrimaryBranchID: input.PrimaryBranchID,
		Log:             []crmmodels.LedgerEntry{},
	}

	return s.InsertOne(ctx, customer)
}
