package crmsvc

// Service phiếu đánh giá hàng ngày (daily_feedbacks).
// Tạo mới kiểm tra khách hàng tồn tại theo mã ngoài CUST- trước khi ghi,
// phiếu không bao giờ tham chiếu khách hàng không có thật.

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	basesvc "folk_crm/internal/api/base/service"
	crmdto "folk_crm/internal/api/crm/dto"
	crmmodels "folk_crm/internal/api/crm/models"
	"folk_crm/internal/common"
	"folk_crm/internal/global"
)

// DailyFeedbackService xử lý logic phiếu đánh giá hàng ngày.
type DailyFeedbackService struct {
	*basesvc.BaseServiceMongoImpl[crmmodels.DailyFeedback]
	customers *mongo.Collection
}

// NewDailyFeedbackService tạo DailyFeedbackService mới.
func NewDailyFeedbackService() (*DailyFeedbackService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.DailyFeedbacks)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.DailyFeedbacks, common.ErrNotFound)
	}
	customers, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Customers)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Customers, common.ErrNotFound)
	}
	return &DailyFeedbackService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[crmmodels.DailyFeedback](coll),
		customers:            customers,
	}, nil
}

// CreateFromInput tạo phiếu đánh giá từ DTO.
// Khách hàng phải tồn tại theo mã ngoài customerId; kênh biết đến (nếu có)
// phải nằm trong danh sách hợp lệ.
func (s *DailyFeedbackService) CreateFromInput(ctx context.Context, input *crmdto.DailyFeedbackCreateInput) (crmmodels.DailyFeedback, error) {
	var zero crmmodels.DailyFeedback

	if input.DiscoveryChannel != "" && !crmmodels.IsValidDiscoveryChannel(input.DiscoveryChannel) {
		return zero, common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Kênh biết đến '%s' không hợp lệ", input.DiscoveryChannel),
			common.StatusBadRequest,
			nil,
		)
	}

	count, err := s.customers.CountDocuments(ctx, bson.M{"customerId": input.CustomerID})
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}
	if count == 0 {
		return zero, common.NewError(
			common.ErrCodeDatabaseQuery,
			fmt.Sprintf("Không tìm thấy khách hàng với mã: %s", input.CustomerID),
			common.StatusNotFound,
			nil,
		)
	}

	date := input.Date
	if date == 0 {
		date = time.Now().UnixMilli()
	}

	feedback := crmmodels.DailyFeedback{
		CustomerID:             input.CustomerID,
		ProductQualityRating:   input.ProductQualityRating,
		ProductQualityNotes:    input.ProductQualityNotes,
		BranchExperienceRating: input.BranchExperienceRating,
		BranchExperienceNotes:  input.BranchExperienceNotes,
		DiscoveryChannel:       input.DiscoveryChannel,
		IsFirstVisit:           input.IsFirstVisit,
		RelatedInvoiceIDs:      input.RelatedInvoiceIDs,
		BranchID:               input.BranchID,
		VisitTime:              input.VisitTime,
		Date:                   date,
	}
	return s.InsertOne(ctx, feedback)
}
