package basehdl

import (
	"testing"

	crmdto "folk_crm/internal/api/crm/dto"
	crmmodels "folk_crm/internal/api/crm/models"
	"folk_crm/internal/global"
)

// Phone dạng link wa.me hoặc có ký tự ngăn cách phải qua được validate
// trên đường API giống như trên đường import: ValidateInput chuẩn hóa
// DTO trước rồi mới áp rule phone_digits.
func TestValidateInput_NormalizesPhoneBeforeValidation(t *testing.T) {
	global.InitValidator()
	h := NewBaseHandler[crmmodels.Customer, crmdto.CustomerCreateInput, crmdto.CustomerUpdateInput](nil)

	cases := []struct {
		raw  string
		want string
	}{
		{"+20 101 234 5678", "201012345678"},
		{"https://wa.me/201012345678", "201012345678"},
		{"010-1234-5678", "01012345678"},
	}
	for _, tc := range cases {
		input := crmdto.CustomerCreateInput{Name: "Sara", Phone: tc.raw}
		if err := h.ValidateInput(&input); err != nil {
			t.Errorf("ValidateInput với phone %q trả về lỗi: %v", tc.raw, err)
			continue
		}
		if input.Phone != tc.want {
			t.Errorf("Phone sau chuẩn hóa = %q, mong đợi %q", input.Phone, tc.want)
		}
	}
}

func TestValidateInput_ComplaintPhoneNormalized(t *testing.T) {
	global.InitValidator()
	h := NewBaseHandler[crmmodels.Complaint, crmdto.ComplaintCreateInput, crmdto.ComplaintUpdateInput](nil)

	input := crmdto.ComplaintCreateInput{
		CustomerName: "أحمد",
		Description:  "الطلب وصل متأخر",
		Phone:        "wa.me/201098765432",
	}
	if err := h.ValidateInput(&input); err != nil {
		t.Fatalf("ValidateInput với phone dạng link trả về lỗi: %v", err)
	}
	if input.Phone != "201098765432" {
		t.Errorf("Phone sau chuẩn hóa = %q, mong đợi 201098765432", input.Phone)
	}
}

// Input thiếu field bắt buộc vẫn phải bị chặn sau khi chuẩn hóa.
func TestValidateInput_RequiredStillEnforced(t *testing.T) {
	global.InitValidator()
	h := NewBaseHandler[crmmodels.Customer, crmdto.CustomerCreateInput, crmdto.CustomerUpdateInput](nil)

	input := crmdto.CustomerCreateInput{Phone: "0101234567"}
	if err := h.ValidateInput(&input); err == nil {
		t.Error("ValidateInput phải trả về lỗi khi thiếu name")
	}
}
