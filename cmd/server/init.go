package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"folk_crm/config"
	crmmodels "folk_crm/internal/api/crm/models"
	"folk_crm/internal/database"
	"folk_crm/internal/global"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Customers = "customers"
	global.MongoDB_ColNames.Invoices = "invoices"
	global.MongoDB_ColNames.FeedbackTasks = "feedback_tasks"
	global.MongoDB_ColNames.DailyInquiries = "daily_inquiries"
	global.MongoDB_ColNames.DailyFeedbacks = "daily_feedbacks"
	global.MongoDB_ColNames.Complaints = "complaints"

	logrus.Info("Initialized collection names")
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: no_xss, phone_digits)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	// Khởi tạo các db và collections nếu chưa có
	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections")

	// Khởi tạo các index cho các collection từ struct tag của model
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Customers), crmmodels.Customer{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Invoices), crmmodels.Invoice{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.FeedbackTasks), crmmodels.FeedbackTask{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.DailyInquiries), crmmodels.DailyInquiry{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.DailyFeedbacks), crmmodels.DailyFeedback{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Complaints), crmmodels.Complaint{})

	// Các index bổ sung cho luồng reconcile (compound, sparse)
	if err := database.CreateCrmAdditionalIndexes(context.TODO(), db); err != nil {
		logrus.Fatalf("Failed to create additional indexes: %v", err)
	}
	logrus.Info("Created indexes")
}

// InitRegistry đăng ký database và các collection vào registry toàn cục.
// Service đọc collection từ registry thay vì giữ tham chiếu trực tiếp.
func InitRegistry() {
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)

	if _, err := global.RegistryDatabase.Register(dbName, db); err != nil {
		logrus.Fatalf("Failed to register database: %v", err)
	}

	for _, name := range []string{
		global.MongoDB_ColNames.Customers,
		global.MongoDB_ColNames.Invoices,
		global.MongoDB_ColNames.FeedbackTasks,
		global.MongoDB_ColNames.DailyInquiries,
		global.MongoDB_ColNames.DailyFeedbacks,
		global.MongoDB_ColNames.Complaints,
	} {
		if _, err := global.RegistryCollections.Register(name, db.Collection(name)); err != nil {
			logrus.Fatalf("Failed to register collection %s: %v", name, err)
		}
	}

	logrus.Info("Initialized registry")
}
