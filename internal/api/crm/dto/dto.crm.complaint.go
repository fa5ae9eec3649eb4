// Package dto - DTO cho domain CRM (complaint).
package dto

import crmmodels "folk_crm/internal/api/crm/models"

// ComplaintCreateInput dữ liệu tạo khiếu nại mới.
type ComplaintCreateInput struct {
	CustomerName string `json:"customerName" bson:"customerName" validate:"required"`
	Phone        string `json:"phone,omitempty" bson:"phone,omitempty" validate:"omitempty,phone_digits"`
	Description  string `json:"description" bson:"description" validate:"required"`
	Channel      string `json:"channel,omitempty" bson:"channel,omitempty"`
	Priority     string `json:"priority,omitempty" bson:"priority,omitempty"`
	BranchID     string `json:"branchId,omitempty" bson:"branchId,omitempty"`
}

// Normalize chuẩn hóa phone trước khi validate.
func (input *ComplaintCreateInput) Normalize() {
	input.Phone = crmmodels.NormalizePhone(input.Phone)
}

// ComplaintUpdateInput dữ liệu cập nhật khiếu nại.
// expectedVersion là version client đã đọc; update chỉ áp dụng khi version
// trong DB còn khớp (compare-and-swap), ngược lại trả về lỗi xung đột.
type ComplaintUpdateInput struct {
	Description     string `json:"description,omitempty" bson:"description,omitempty"`
	Priority        string `json:"priority,omitempty" bson:"priority,omitempty"`
	Status          string `json:"status,omitempty" bson:"status,omitempty"`
	Resolution      string `json:"resolution,omitempty" bson:"resolution,omitempty"`
	ExpectedVersion int64  `json:"expectedVersion" bson:"-" validate:"gte=0"`
}
