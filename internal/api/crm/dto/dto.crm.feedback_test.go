// Package dto - Test rule validate cho DTO phiếu đánh giá hàng ngày.
package dto

import (
	"testing"

	"folk_crm/internal/global"
)

func validFeedbackInput() DailyFeedbackCreateInput {
	return DailyFeedbackCreateInput{
		CustomerID:             "CUST-1700000000000-1234",
		ProductQualityRating:   4,
		BranchExperienceRating: 5,
		BranchID:               "BR-01",
	}
}

func TestDailyFeedbackCreateInput_Validation(t *testing.T) {
	global.InitValidator()

	if err := global.Validate.Struct(validFeedbackInput()); err != nil {
		t.Fatalf("Input hợp lệ không được trả lỗi: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*DailyFeedbackCreateInput)
	}{
		{"thiếu customerId", func(in *DailyFeedbackCreateInput) { in.CustomerID = "" }},
		{"thiếu branchId", func(in *DailyFeedbackCreateInput) { in.BranchID = "" }},
		{"điểm chất lượng 0", func(in *DailyFeedbackCreateInput) { in.ProductQualityRating = 0 }},
		{"điểm chất lượng 6", func(in *DailyFeedbackCreateInput) { in.ProductQualityRating = 6 }},
		{"điểm chi nhánh 0", func(in *DailyFeedbackCreateInput) { in.BranchExperienceRating = 0 }},
		{"điểm chi nhánh 6", func(in *DailyFeedbackCreateInput) { in.BranchExperienceRating = 6 }},
	}
	for _, tc := range cases {
		input := validFeedbackInput()
		tc.mutate(&input)
		if err := global.Validate.Struct(input); err == nil {
			t.Errorf("%s: phải trả về lỗi validate", tc.name)
		}
	}
}

func TestDailyFeedbackUpdateInput_RatingBounds(t *testing.T) {
	global.InitValidator()

	// Update không bắt buộc rating, bỏ trống là hợp lệ
	if err := global.Validate.Struct(DailyFeedbackUpdateInput{}); err != nil {
		t.Fatalf("Update input rỗng không được trả lỗi: %v", err)
	}
	if err := global.Validate.Struct(DailyFeedbackUpdateInput{ProductQualityRating: 3}); err != nil {
		t.Fatalf("Rating trong khoảng 1-5 không được trả lỗi: %v", err)
	}
	if err := global.Validate.Struct(DailyFeedbackUpdateInput{BranchExperienceRating: 7}); err == nil {
		t.Error("Rating ngoài khoảng 1-5 phải trả về lỗi validate")
	}
}
