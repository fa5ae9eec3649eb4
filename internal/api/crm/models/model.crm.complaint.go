// Package models - Complaint thuộc domain CRM (complaints).
// Cập nhật complaint dùng compare-and-swap trên field version để chống ghi đè
// giữa hai request đồng thời.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái và mức độ của complaint (giá trị chuẩn, normalizer quy đổi dữ liệu cũ).
const (
	ComplaintStatusOpen       = "Open"
	ComplaintStatusInProgress = "InProgress"
	ComplaintStatusResolved   = "Resolved"
	ComplaintStatusClosed     = "Closed"

	ComplaintPriorityLow    = "Low"
	ComplaintPriorityMedium = "Medium"
	ComplaintPriorityHigh   = "High"
)

// Complaint lưu khiếu nại của khách hàng (complaints).
type Complaint struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	CustomerName string `json:"customerName" bson:"customerName" validate:"required"`
	Phone        string `json:"phone,omitempty" bson:"phone,omitempty" index:"single:1" validate:"omitempty,phone_digits"`
	Description  string `json:"description" bson:"description"`
	Channel      string `json:"channel,omitempty" bson:"channel,omitempty"`   // Phone | WhatsApp | InStore | Social
	Priority     string `json:"priority,omitempty" bson:"priority,omitempty"` // Low | Medium | High
	Status       string `json:"status" bson:"status" index:"single:1"`        // Open | InProgress | Resolved | Closed
	Resolution   string `json:"resolution,omitempty" bson:"resolution,omitempty"`
	BranchID     string `json:"branchId,omitempty" bson:"branchId,omitempty"`

	// Version tăng 1 ở mỗi lần cập nhật; update có điều kiện trên version cũ
	Version int64 `json:"version" bson:"version"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
