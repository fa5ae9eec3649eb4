package crmsvc

// Service khiếu nại (complaints).
// Cập nhật dùng compare-and-swap trên field version ngay tại tầng store:
// update có điều kiện trên version client đã đọc, version lệch trả về lỗi
// xung đột thay vì ghi đè lẫn nhau.

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "folk_crm/internal/api/base/service"
	crmdto "folk_crm/internal/api/crm/dto"
	crmmodels "folk_crm/internal/api/crm/models"
	"folk_crm/internal/common"
	"folk_crm/internal/global"
)

// ComplaintService xử lý logic khiếu nại.
type ComplaintService struct {
	*basesvc.BaseServiceMongoImpl[crmmodels.Complaint]
}

// NewComplaintService tạo ComplaintService mới.
func NewComplaintService() (*ComplaintService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Complaints)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Complaints, common.ErrNotFound)
	}
	return &ComplaintService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[crmmodels.Complaint](coll),
	}, nil
}

// CreateFromInput tạo khiếu nại mới, chuẩn hóa enum ở boundary, version khởi tạo 0.
func (s *ComplaintService) CreateFromInput(ctx context.Context, input *crmdto.ComplaintCreateInput) (crmmodels.Complaint, error) {
	complaint := crmmodels.Complaint{
		CustomerName: input.CustomerName,
		Phone:        crmmodels.NormalizePhone(input.Phone),
		Description:  input.Description,
		Channel:      input.Channel,
		Priority:     crmmodels.NormalizeComplaintPriority(input.Priority),
		Status:       crmmodels.ComplaintStatusOpen,
		BranchID:     input.BranchID,
		Version:      0,
	}
	return s.InsertOne(ctx, complaint)
}

// UpdateWithVersion cập nhật khiếu nại với compare-and-swap trên version.
// Filter khớp cả _id lẫn expectedVersion; mỗi update thành công tăng version 1.
// Version lệch (document tồn tại nhưng version khác) trả về ErrVersionConflict.
func (s *ComplaintService) UpdateWithVersion(ctx context.Context, id primitive.ObjectID, input *crmdto.ComplaintUpdateInput) (crmmodels.Complaint, error) {
	var zero crmmodels.Complaint

	set := map[string]interface{}{}
	if input.Description != "" {
		set["description"] = input.Description
	}
	if input.Priority != "" {
		set["priority"] = crmmodels.NormalizeComplaintPriority(input.Priority)
	}
	if input.Status != "" {
		set["status"] = crmmodels.NormalizeComplaintStatus(input.Status)
	}
	if input.Resolution != "" {
		set["resolution"] = input.Resolution
	}

	filter := bson.M{"_id": id, "version": input.ExpectedVersion}
	update := &basesvc.UpdateData{
		Set: set,
		Inc: map[string]interface{}{"version": int64(1)},
	}

	updated, err := s.FindOneAndUpdate(ctx, filter, update, nil)
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return zero, err
	}

	// Phân biệt "không tồn tại" với "version lệch"
	exists, checkErr := s.DocumentExists(ctx, bson.M{"_id": id})
	if checkErr != nil {
		return zero, checkErr
	}
	if exists {
		return zero, common.ErrVersionConflict
	}
	return zero, common.ErrNotFound
}
