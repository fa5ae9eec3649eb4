package crmsvc

// Service task chăm sóc khách (feedback_tasks).
// Upsert theo invoiceId và chuyển trạng thái Pending → Completed.

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "folk_crm/internal/api/base/service"
	crmdto "folk_crm/internal/api/crm/dto"
	crmmodels "folk_crm/internal/api/crm/models"
	"folk_crm/internal/common"
	"folk_crm/internal/global"
)

// FeedbackTaskService xử lý logic task chăm sóc khách.
type FeedbackTaskService struct {
	*basesvc.BaseServiceMongoImpl[crmmodels.FeedbackTask]
}

// NewFeedbackTaskService tạo FeedbackTaskService mới.
func NewFeedbackTaskService() (*FeedbackTaskService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.FeedbackTasks)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.FeedbackTasks, common.ErrNotFound)
	}
	return &FeedbackTaskService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[crmmodels.FeedbackTask](coll),
	}, nil
}

// UpsertByInvoiceID upsert task theo invoiceId — mỗi hóa đơn tối đa một task.
// Status chỉ set Pending khi tạo mới; task đã Completed không bị reset.
func (s *FeedbackTaskService) UpsertByInvoiceID(ctx context.Context, input *crmdto.FeedbackTaskCreateInput) (crmmodels.FeedbackTask, error) {
	update := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"customerId":    input.CustomerID,
			"customerName":  input.CustomerName,
			"customerPhone": input.CustomerPhone,
			"invoiceDate":   input.InvoiceDate,
			"branchId":      input.BranchID,
			"notes":         input.Notes,
		},
		SetOnInsert: map[string]interface{}{
			"invoiceId": input.InvoiceID,
			"status":    crmmodels.FeedbackStatusPending,
		},
	}
	return s.Upsert(ctx, bson.M{"invoiceId": input.InvoiceID}, update)
}

// MarkCompleted chuyển một task sang Completed.
// Task đã Completed rồi trả về lỗi trạng thái không hợp lệ.
func (s *FeedbackTaskService) MarkCompleted(ctx context.Context, id primitive.ObjectID) (crmmodels.FeedbackTask, error) {
	task, err := s.FindOneById(ctx, id)
	if err != nil {
		return task, err
	}
	if task.Status == crmmodels.FeedbackStatusCompleted {
		return task, common.NewError(
			common.ErrCodeBusinessState,
			"Task đã được hoàn thành trước đó",
			common.StatusBadRequest,
			nil,
		)
	}

	return s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"status": crmmodels.FeedbackStatusCompleted,
		},
	})
}
