package crmsvc

// Sinh mã ngoài cho customer và invoice.
// Format giữ tương thích với dữ liệu cũ: CUST-<ms>-<random>, INV-<ms>-<random>.

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateCustomerID sinh mã khách hàng mới dạng CUST-<unixMs>-<random>.
func GenerateCustomerID() string {
	return fmt.Sprintf("CUST-%d-%d", time.Now().UnixMilli(), rand.Intn(10000))
}

// GenerateInvoiceCode sinh mã hóa đơn mới dạng INV-<unixMs>-<random>.
func GenerateInvoiceCode() string {
	return fmt.Sprintf("INV-%d-%d", time.Now().UnixMilli(), rand.Intn(1000))
}

// GenerateWelcomeInvoiceCode sinh mã hóa đơn welcome dạng INV-WELCOME-<unixMs>-<random>.
func GenerateWelcomeInvoiceCode() string {
	return fmt.Sprintf("INV-WELCOME-%d-%d", time.Now().UnixMilli(), rand.Intn(1000))
}
