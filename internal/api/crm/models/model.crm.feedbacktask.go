// Package models - FeedbackTask thuộc domain CRM (feedback_tasks).
// Mỗi hóa đơn có tối đa một task chăm sóc, upsert theo invoiceId.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái của feedback task.
const (
	FeedbackStatusPending   = "Pending"
	FeedbackStatusCompleted = "Completed"
)

// FeedbackTask lưu nhiệm vụ gọi chăm sóc khách sau mua hàng (feedback_tasks).
type FeedbackTask struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	CustomerID   string `json:"customerId" bson:"customerId" index:"single:1"` // customerId ngoài của Customer
	CustomerName string `json:"customerName" bson:"customerName"`
	CustomerPhone string `json:"customerPhone,omitempty" bson:"customerPhone,omitempty"`
	InvoiceID    string `json:"invoiceId" bson:"invoiceId" index:"single:1;unique"` // Khóa upsert idempotence
	InvoiceDate  int64  `json:"invoiceDate,omitempty" bson:"invoiceDate,omitempty"` // Unix ms
	Status       string `json:"status" bson:"status" index:"single:1"`              // Pending | Completed
	BranchID     string `json:"branchId,omitempty" bson:"branchId,omitempty"`
	Notes        string `json:"notes,omitempty" bson:"notes,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
