package crmsvc

// Matcher xác định danh tính khách hàng cho một dòng import.
// Matching là exact trên field đã chuẩn hóa, không fuzzy.

import (
	"context"
	"errors"

	crmmodels "folk_crm/internal/api/crm/models"
	"folk_crm/internal/common"
)

// CustomerMatcher resolve một dòng import về khách hàng hiện có hoặc báo "mới".
type CustomerMatcher struct {
	store RecordStore
}

// NewCustomerMatcher tạo matcher trên record store cho trước.
func NewCustomerMatcher(store RecordStore) *CustomerMatcher {
	return &CustomerMatcher{store: store}
}

// Match tìm khách hàng hiện có theo thứ tự ưu tiên:
//  1. Exact match theo phone (khi phone đã chuẩn hóa non-empty).
//  2. Exact match theo cặp (name, phone) — bao phủ khách cũ có phone trống.
//
// Trả về (nil, nil) khi không khớp bước nào: caller tạo khách hàng mới.
func (m *CustomerMatcher) Match(ctx context.Context, name, phone string) (*crmmodels.Customer, error) {
	if phone != "" {
		customer, err := m.store.FindCustomerByPhone(ctx, phone)
		if err == nil {
			return customer, nil
		}
		if !errors.Is(err, common.ErrNotFound) {
			return nil, err
		}
	}

	customer, err := m.store.FindCustomerByNamePhone(ctx, name, phone)
	if err == nil {
		return customer, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	return nil, nil
}
