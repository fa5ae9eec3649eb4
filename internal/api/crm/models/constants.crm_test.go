// Package models - Test chuẩn hóa giá trị enum legacy tiếng Ả Rập.
package models

import "testing"

func TestNormalizeClassification(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"ذهبي", ClassificationGold},
		{"فضي", ClassificationSilver},
		{"برونزي", ClassificationBronze},
		{"بلاتيني", ClassificationPlatinum},
		{"غير محدد", ClassificationUnspecified},
		{"Gold", ClassificationGold},
		{"", ClassificationUnspecified},
		{"giá trị lạ", ClassificationUnspecified},
	}
	for _, tc := range cases {
		got := NormalizeClassification(tc.raw)
		if got != tc.want {
			t.Errorf("NormalizeClassification(%q) = %q, mong đợi %q", tc.raw, got, tc.want)
		}
	}
}

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"", ""},
		{"01012345678", "01012345678"},
		{"010-1234-5678", "01012345678"},
		{"+20 101 234 5678", "201012345678"},
		{"https://wa.me/201012345678", "201012345678"},
		{"wa.me/201012345678", "201012345678"},
		{"https://api.whatsapp.com/send?phone=201012345678", "201012345678"},
		{"WA.ME/201012345678", "201012345678"},
		{"abc", ""},
	}
	for _, tc := range cases {
		got := NormalizePhone(tc.raw)
		if got != tc.want {
			t.Errorf("NormalizePhone(%q) = %q, mong đợi %q", tc.raw, got, tc.want)
		}
	}
}

func TestNormalizeComplaintStatus(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"مفتوحة", ComplaintStatusOpen},
		{"قيد المعالجة", ComplaintStatusInProgress},
		{"تم الحل", ComplaintStatusResolved},
		{"مغلقة", ComplaintStatusClosed},
		{"Open", ComplaintStatusOpen},
		{"", ComplaintStatusOpen},
	}
	for _, tc := range cases {
		got := NormalizeComplaintStatus(tc.raw)
		if got != tc.want {
			t.Errorf("NormalizeComplaintStatus(%q) = %q, mong đợi %q", tc.raw, got, tc.want)
		}
	}
}

func TestNormalizeComplaintPriority(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"منخفضة", ComplaintPriorityLow},
		{"متوسطة", ComplaintPriorityMedium},
		{"عالية", ComplaintPriorityHigh},
		{"High", ComplaintPriorityHigh},
		{"", ComplaintPriorityMedium},
	}
	for _, tc := range cases {
		got := NormalizeComplaintPriority(tc.raw)
		if got != tc.want {
			t.Errorf("NormalizeComplaintPriority(%q) = %q, mong đợi %q", tc.raw, got, tc.want)
		}
	}
}

func TestIsValidDiscoveryChannel(t *testing.T) {
	for _, channel := range DiscoveryChannels {
		if !IsValidDiscoveryChannel(channel) {
			t.Errorf("IsValidDiscoveryChannel(%q) = false, kênh trong danh sách phải hợp lệ", channel)
		}
	}
	if IsValidDiscoveryChannel("kênh lạ") {
		t.Error("IsValidDiscoveryChannel với kênh ngoài danh sách phải trả về false")
	}
	if IsValidDiscoveryChannel("") {
		t.Error("IsValidDiscoveryChannel với chuỗi rỗng phải trả về false")
	}
}

func TestCustomerHasLedgerEntry(t *testing.T) {
	c := &Customer{
		Log: []LedgerEntry{
			{InvoiceID: "INV-1"},
			{InvoiceID: "INV-2"},
		},
	}
	if !c.HasLedgerEntry("INV-1") {
		t.Error("HasLedgerEntry(INV-1) phải trả về true")
	}
	if c.HasLedgerEntry("INV-9") {
		t.Error("HasLedgerEntry(INV-9) phải trả về false")
	}
}
