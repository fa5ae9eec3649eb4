// Package dto - DTO cho domain CRM (invoice).
package dto

// InvoiceProductInput một dòng sản phẩm trong hóa đơn.
type InvoiceProductInput struct {
	ProductName string  `json:"productName" bson:"productName" validate:"required"`
	Price       float64 `json:"price" bson:"price" validate:"gte=0"`
	Quantity    int64   `json:"quantity" bson:"quantity" validate:"gte=0"`
}

// InvoiceCreateInput dữ liệu tạo hóa đơn mới.
type InvoiceCreateInput struct {
	InvoiceCode string                `json:"invoiceCode" bson:"invoiceCode" validate:"required"`
	CustomerRef string                `json:"customerRef" bson:"customerRef" validate:"required"`
	Products    []InvoiceProductInput `json:"products,omitempty" bson:"products,omitempty" validate:"omitempty,dive"`
	TotalPrice  float64               `json:"totalPrice" bson:"totalPrice" validate:"gte=0"`
	InvoiceDate int64                 `json:"invoiceDate,omitempty" bson:"invoiceDate,omitempty"`
	BranchID    string                `json:"branchId,omitempty" bson:"branchId,omitempty"`
}

// InvoiceUpdateInput dữ liệu cập nhật hóa đơn.
// invoiceCode không nằm trong input — khóa duy nhất không được sửa.
type InvoiceUpdateInput struct {
	Products    []InvoiceProductInput `json:"products,omitempty" bson:"products,omitempty" validate:"omitempty,dive"`
	TotalPrice  *float64              `json:"totalPrice,omitempty" bson:"totalPrice,omitempty" validate:"omitempty,gte=0"`
	InvoiceDate int64                 `json:"invoiceDate,omitempty" bson:"invoiceDate,omitempty"`
	BranchID    string                `json:"branchId,omitempty" bson:"branchId,omitempty"`
}
