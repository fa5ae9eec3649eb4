// Package models - bảng quy đổi enum từ dữ liệu cũ (tiếng Ả Rập) sang giá trị chuẩn.
// Dữ liệu nhập từ hệ thống cũ và file import mang nhãn tiếng Ả Rập; mọi giá trị
// phải được quy về dạng chuẩn ở boundary trước khi vào business logic.
package models

import (
	"strings"
	"unicode"
)

// classificationAliases map nhãn cũ sang classification chuẩn.
var classificationAliases = map[string]string{
	"ذهبي":     ClassificationGold,
	"فضي":      ClassificationSilver,
	"برونزي":   ClassificationBronze,
	"بلاتيني":  ClassificationPlatinum,
	"غير محدد": ClassificationUnspecified,
}

// NormalizeClassification quy đổi giá trị classification bất kỳ về dạng chuẩn.
// Giá trị rỗng hoặc không nhận diện được trả về "unspecified".
func NormalizeClassification(value string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		return ClassificationUnspecified
	}
	switch v {
	case ClassificationGold, ClassificationSilver, ClassificationBronze,
		ClassificationPlatinum, ClassificationUnspecified:
		return v
	}
	if canonical, ok := classificationAliases[v]; ok {
		return canonical
	}
	return ClassificationUnspecified
}

// NormalizePhone chuẩn hóa số điện thoại về dạng chỉ còn chữ số.
// Các prefix deep-link của ứng dụng nhắn tin (wa.me, api.whatsapp.com...)
// và mọi ký tự không phải chữ số đều bị loại bỏ.
func NormalizePhone(raw string) string {
	phone := strings.TrimSpace(raw)
	if phone == "" {
		return ""
	}

	lower := strings.ToLower(phone)
	for _, prefix := range []string{
		"https://wa.me/",
		"http://wa.me/",
		"wa.me/",
		"https://api.whatsapp.com/send?phone=",
		"whatsapp://send?phone=",
	} {
		if strings.HasPrefix(lower, prefix) {
			phone = phone[len(prefix):]
			break
		}
	}

	var digits strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}
	return digits.String()
}

// complaintStatusAliases map nhãn trạng thái cũ sang giá trị chuẩn.
var complaintStatusAliases = map[string]string{
	"مفتوحة":       ComplaintStatusOpen,
	"قيد المعالجة": ComplaintStatusInProgress,
	"تم الحل":      ComplaintStatusResolved,
	"مغلقة":        ComplaintStatusClosed,
}

// NormalizeComplaintStatus quy đổi trạng thái complaint về dạng chuẩn.
// Giá trị không nhận diện được trả về Open.
func NormalizeComplaintStatus(value string) string {
	v := strings.TrimSpace(value)
	switch v {
	case ComplaintStatusOpen, ComplaintStatusInProgress,
		ComplaintStatusResolved, ComplaintStatusClosed:
		return v
	}
	if canonical, ok := complaintStatusAliases[v]; ok {
		return canonical
	}
	return ComplaintStatusOpen
}

// complaintPriorityAliases map mức độ cũ sang giá trị chuẩn.
var complaintPriorityAliases = map[string]string{
	"منخفضة": ComplaintPriorityLow,
	"متوسطة": ComplaintPriorityMedium,
	"عالية":  ComplaintPriorityHigh,
}

// NormalizeComplaintPriority quy đổi mức độ complaint về dạng chuẩn.
// Giá trị không nhận diện được trả về Medium.
func NormalizeComplaintPriority(value string) string {
	v := strings.TrimSpace(value)
	switch v {
	case ComplaintPriorityLow, ComplaintPriorityMedium, ComplaintPriorityHigh:
		return v
	}
	if canonical, ok := complaintPriorityAliases[v]; ok {
		return canonical
	}
	return ComplaintPriorityMedium
}
