package crmsvc

// Resolver cho các dòng import semi-structured.
// File nguồn có thể dùng tên cột tiếng Ả Rập hoặc tiếng Anh; mỗi field chuẩn
// có một danh sách alias theo thứ tự ưu tiên, giá trị non-empty đầu tiên thắng.

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	crmdto "folk_crm/internal/api/crm/dto"
	crmmodels "folk_crm/internal/api/crm/models"
)

// ResolvedRow là một dòng import đã quy về các field chuẩn.
type ResolvedRow struct {
	Name        string
	Phone       string // Đã chuẩn hóa, chỉ còn chữ số
	RawPhone    string
	Governorate string
	Address     string
	BranchID    string
	InvoiceCode string
	Amount      float64
	ProductName string
	Date        int64 // Unix ms, 0 nếu không parse được
}

// IsBlank trả về true khi dòng không có cả tên lẫn số điện thoại.
// Các dòng này bị bỏ qua trước khi matching (không tính là lỗi).
func (r *ResolvedRow) IsBlank() bool {
	return r.Name == "" && r.Phone == ""
}

// Danh sách alias theo thứ tự ưu tiên cho từng field chuẩn.
var (
	nameAliases        = []string{"اسم العميل", "الاسم", "name", "customerName"}
	phoneAliases       = []string{"رقم الهاتف", "تليفون", "موبايل", "phone", "phoneNumber"}
	governorateAliases = []string{"المحافظة", "governorate"}
	addressAliases     = []string{"العنوان", "address", "streetAddress"}
	branchAliases      = []string{"كود الفرع", "الفرع", "branch", "branchId"}
	invoiceAliases     = []string{"رقم الفاتورة", "invoiceNumber", "invoiceCode"}
	amountAliases      = []string{"المبلغ الإجمالي", "الإجمالي", "total", "price", "sum", "amount"}
	productAliases     = []string{"اسم المنتج", "المنتج", "productName", "product"}
	dateAliases        = []string{"تاريخ الفاتورة", "التاريخ", "date", "invoiceDate"}
)

// ResolveRow quy một dòng import về các field chuẩn.
// Việc resolve alias chỉ làm một lần tại đây; phần còn lại của reconciler
// chỉ làm việc với ResolvedRow.
func ResolveRow(row crmdto.ImportRow) *ResolvedRow {
	rawPhone := firstNonEmpty(row, phoneAliases)
	resolved := &ResolvedRow{
		Name:        firstNonEmpty(row, nameAliases),
		RawPhone:    rawPhone,
		Phone:       crmmodels.NormalizePhone(rawPhone),
		Governorate: firstNonEmpty(row, governorateAliases),
		Address:     firstNonEmpty(row, addressAliases),
		BranchID:    firstNonEmpty(row, branchAliases),
		InvoiceCode: firstNonEmpty(row, invoiceAliases),
		ProductName: firstNonEmpty(row, productAliases),
	}
	resolved.Amount = parseAmount(firstNonEmpty(row, amountAliases))
	resolved.Date = parseRowDate(firstNonEmpty(row, dateAliases))
	return resolved
}

// firstNonEmpty trả về giá trị non-empty đầu tiên theo danh sách alias.
func firstNonEmpty(row crmdto.ImportRow, aliases []string) string {
	for _, alias := range aliases {
		value, ok := row[alias]
		if !ok || value == nil {
			continue
		}
		str := valueToString(value)
		if str != "" {
			return str
		}
	}
	return ""
}

// valueToString đưa giá trị loosely-typed từ JSON về chuỗi đã trim.
func valueToString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		// JSON number — giữ nguyên phần nguyên khi không có phần thập phân
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
}

// parseAmount parse giá trị tiền từ chuỗi, chấp nhận dấu phẩy ngăn cách
// hàng nghìn và ký hiệu tiền tệ lẫn trong chuỗi. Không parse được trả về 0.
func parseAmount(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, ",", "")

	var cleaned strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) || r == '.' || r == '-' {
			cleaned.WriteRune(r)
		}
	}

	amount, err := strconv.ParseFloat(cleaned.String(), 64)
	if err != nil || amount < 0 {
		return 0
	}
	return amount
}

// rowDateLayouts là các định dạng ngày chấp nhận được trong file import.
var rowDateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"2/1/2006",
	"2006-01-02T15:04:05Z07:00",
}

// parseRowDate parse ngày từ chuỗi về Unix ms. Không parse được trả về 0.
func parseRowDate(raw string) int64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}

	// Giá trị số coi như epoch milliseconds
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil && ms > 0 {
		return ms
	}

	for _, layout := range rowDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UnixMilli()
		}
	}
	return 0
}
