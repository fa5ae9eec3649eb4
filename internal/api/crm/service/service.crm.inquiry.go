package crmsvc

// Service yêu cầu hỏi đáp trong ngày (daily_inquiries) — CRUD trên base service.

import (
	"fmt"

	basesvc "folk_crm/internal/api/base/service"
	crmmodels "folk_crm/internal/api/crm/models"
	"folk_crm/internal/common"
	"folk_crm/internal/global"
)

// DailyInquiryService xử lý logic yêu cầu hỏi đáp.
type DailyInquiryService struct {
	*basesvc.BaseServiceMongoImpl[crmmodels.DailyInquiry]
}

// NewDailyInquiryService tạo DailyInquiryService mới.
func NewDailyInquiryService() (*DailyInquiryService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.DailyInquiries)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.DailyInquiries, common.ErrNotFound)
	}
	return &DailyInquiryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[crmmodels.DailyInquiry](coll),
	}, nil
}
