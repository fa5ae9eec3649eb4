package crmsvc

// Snapshot trạng thái tổng hợp của hệ thống CRM.
// Mỗi request đọc trực tiếp các aggregate từ DB — không có app-state
// process-wide nên không cần invalidation.

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	crmdto "folk_crm/internal/api/crm/dto"
	crmmodels "folk_crm/internal/api/crm/models"
	"folk_crm/internal/common"
	"folk_crm/internal/global"
)

// SnapshotService đọc trạng thái tổng hợp hiện tại từ các collection CRM.
type SnapshotService struct {
	customers  *mongo.Collection
	invoices   *mongo.Collection
	tasks      *mongo.Collection
	complaints *mongo.Collection
	inquiries  *mongo.Collection
}

// NewSnapshotService tạo SnapshotService trên các collection đã đăng ký.
func NewSnapshotService() (*SnapshotService, error) {
	s := &SnapshotService{}
	for _, binding := range []struct {
		name   string
		target **mongo.Collection
	}{
		{global.MongoDB_ColNames.Customers, &s.customers},
		{global.MongoDB_ColNames.Invoices, &s.invoices},
		{global.MongoDB_ColNames.FeedbackTasks, &s.tasks},
		{global.MongoDB_ColNames.Complaints, &s.complaints},
		{global.MongoDB_ColNames.DailyInquiries, &s.inquiries},
	} {
		coll, exist := global.RegistryCollections.Get(binding.name)
		if !exist {
			return nil, fmt.Errorf("không tìm thấy collection %s: %w", binding.name, common.ErrNotFound)
		}
		*binding.target = coll
	}
	return s, nil
}

// Snapshot đếm các aggregate hiện tại trong một lượt đọc.
func (s *SnapshotService) Snapshot(ctx context.Context) (*crmdto.StateSnapshot, error) {
	snapshot := &crmdto.StateSnapshot{GeneratedAt: time.Now().UnixMilli()}

	counts := []struct {
		coll   *mongo.Collection
		filter bson.M
		target *int64
	}{
		{s.customers, bson.M{}, &snapshot.TotalCustomers},
		{s.invoices, bson.M{}, &snapshot.TotalInvoices},
		{s.tasks, bson.M{"status": crmmodels.FeedbackStatusPending}, &snapshot.PendingTasks},
		{s.tasks, bson.M{"status": crmmodels.FeedbackStatusCompleted}, &snapshot.CompletedTasks},
		{s.complaints, bson.M{"status": bson.M{"$in": []string{crmmodels.ComplaintStatusOpen, crmmodels.ComplaintStatusInProgress}}}, &snapshot.OpenComplaints},
		{s.inquiries, bson.M{}, &snapshot.TotalInquiries},
	}

	for _, c := range counts {
		count, err := c.coll.CountDocuments(ctx, c.filter)
		if err != nil {
			return nil, common.ConvertMongoError(err)
		}
		*c.target = count
	}

	return snapshot, nil
}
