// Package dto - DTO cho domain CRM (customer).
package dto

import crmmodels "folk_crm/internal/api/crm/models"

// CustomerCreateInput dữ liệu tạo khách hàng mới.
// customerId bỏ trống sẽ được service tự sinh dạng CUST-<ms>-<random>.
type CustomerCreateInput struct {
	CustomerID    string `json:"customerId,omitempty" bson:"customerId,omitempty"`
	Name          string `json:"name" bson:"name" validate:"required"`
	Phone         string `json:"phone,omitempty" bson:"phone,omitempty" validate:"omitempty,phone_digits"`
	Governorate   string `json:"governorate,omitempty" bson:"governorate,omitempty"`
	StreetAddress string `json:"streetAddress,omitempty" bson:"streetAddress,omitempty"`
	Classification string `json:"classification,omitempty" bson:"classification,omitempty"`
	PrimaryBranchID string `json:"primaryBranchId,omitempty" bson:"primaryBranchId,omitempty"`
}

// Normalize chuẩn hóa phone trước khi validate: link wa.me hoặc chuỗi
// có ký tự ngăn cách được quy về chỉ còn chữ số, giống đường import.
func (input *CustomerCreateInput) Normalize() {
	input.Phone = crmmodels.NormalizePhone(input.Phone)
}

// CustomerUpdateInput dữ liệu cập nhật khách hàng.
// customerId không nằm trong input — mã ngoài bất biến sau khi gán.
type CustomerUpdateInput struct {
	Name          string `json:"name,omitempty" bson:"name,omitempty"`
	Phone         string `json:"phone,omitempty" bson:"phone,omitempty" validate:"omitempty,phone_digits"`
	Governorate   string `json:"governorate,omitempty" bson:"governorate,omitempty"`
	StreetAddress string `json:"streetAddress,omitempty" bson:"streetAddress,omitempty"`
	Classification string `json:"classification,omitempty" bson:"classification,omitempty"`
	PrimaryBranchID string `json:"primaryBranchId,omitempty" bson:"primaryBranchId,omitempty"`
}

// Normalize chuẩn hóa phone trước khi validate.
func (input *CustomerUpdateInput) Normalize() {
	input.Phone = crmmodels.NormalizePhone(input.Phone)
}
