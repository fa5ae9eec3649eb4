// Package dto - DTO cho domain CRM (feedback task).
package dto

// FeedbackTaskCreateInput dữ liệu tạo task chăm sóc mới.
type FeedbackTaskCreateInput struct {
	CustomerID    string `json:"customerId" bson:"customerId" validate:"required"`
	CustomerName  string `json:"customerName" bson:"customerName"`
	CustomerPhone string `json:"customerPhone,omitempty" bson:"customerPhone,omitempty"`
	InvoiceID     string `json:"invoiceId" bson:"invoiceId" validate:"required"`
	InvoiceDate   int64  `json:"invoiceDate,omitempty" bson:"invoiceDate,omitempty"`
	BranchID      string `json:"branchId,omitempty" bson:"branchId,omitempty"`
	Notes         string `json:"notes,omitempty" bson:"notes,omitempty"`
}

// FeedbackTaskUpdateInput dữ liệu cập nhật task chăm sóc.
type FeedbackTaskUpdateInput struct {
	CustomerName  string `json:"customerName,omitempty" bson:"customerName,omitempty"`
	CustomerPhone string `json:"customerPhone,omitempty" bson:"customerPhone,omitempty"`
	Status        string `json:"status,omitempty" bson:"status,omitempty" validate:"omitempty,oneof=Pending Completed"`
	Notes         string `json:"notes,omitempty" bson:"notes,omitempty"`
}
