// Package models - Invoice thuộc domain CRM (invoices).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InvoiceProduct là một dòng sản phẩm trong hóa đơn.
type InvoiceProduct struct {
	ProductName string  `json:"productName" bson:"productName"`
	Price       float64 `json:"price" bson:"price"`
	Quantity    int64   `json:"quantity" bson:"quantity"`
}

// Invoice lưu hóa đơn (invoices).
// customerRef là customerId ngoài của Customer (chuỗi), không phải ObjectID reference.
type Invoice struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	InvoiceCode string           `json:"invoiceCode" bson:"invoiceCode" index:"single:1;unique"` // Khóa duy nhất toàn cục
	CustomerRef string           `json:"customerRef" bson:"customerRef" index:"single:1"`
	Products    []InvoiceProduct `json:"products" bson:"products"`
	TotalPrice  float64          `json:"totalPrice" bson:"totalPrice"` // Có thể bằng 0 (hóa đơn welcome)
	InvoiceDate int64            `json:"invoiceDate,omitempty" bson:"invoiceDate,omitempty"` // Unix ms
	BranchID    string           `json:"branchId,omitempty" bson:"branchId,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
