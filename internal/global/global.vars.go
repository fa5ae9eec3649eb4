package global

import (
	"folk_crm/config"
	"folk_crm/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// CRM_CollectionName chứa tên các collection trong MongoDB
type CRM_CollectionName struct {
	Customers      string // Tên collection cho khách hàng (kèm ledger nhúng)
	Invoices       string // Tên collection cho hóa đơn
	FeedbackTasks  string // Tên collection cho nhiệm vụ đánh giá hàng ngày
	DailyInquiries string // Tên collection cho yêu cầu tư vấn hàng ngày
	DailyFeedbacks string // Tên collection cho phiếu đánh giá hàng ngày
	Complaints     string // Tên collection cho khiếu nại
}

// Các biến toàn cục
var Validate *validator.Validate                                   // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                  // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration                     // Cấu hình của server
var MongoDB_ColNames CRM_CollectionName = *new(CRM_CollectionName) // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
