// Package router đăng ký các route thuộc domain CRM: customers, invoices,
// feedback tasks, daily inquiries, daily feedbacks, complaints và state snapshot.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	crmhdl "folk_crm/internal/api/crm/handler"
)

// Register đăng ký tất cả route CRM lên v1.
func Register(v1 fiber.Router) error {
	customerHandler, err := crmhdl.NewCustomerHandler()
	if err != nil {
		return fmt.Errorf("tạo CustomerHandler: %w", err)
	}
	invoiceHandler, err := crmhdl.NewInvoiceHandler()
	if err != nil {
		return fmt.Errorf("tạo InvoiceHandler: %w", err)
	}
	taskHandler, err := crmhdl.NewFeedbackTaskHandler()
	if err != nil {
		return fmt.Errorf("tạo FeedbackTaskHandler: %w", err)
	}
	inquiryHandler, err := crmhdl.NewDailyInquiryHandler()
	if err != nil {
		return fmt.Errorf("tạo DailyInquiryHandler: %w", err)
	}
	feedbackHandler, err := crmhdl.NewDailyFeedbackHandler()
	if err != nil {
		return fmt.Errorf("tạo DailyFeedbackHandler: %w", err)
	}
	complaintHandler, err := crmhdl.NewComplaintHandler()
	if err != nil {
		return fmt.Errorf("tạo ComplaintHandler: %w", err)
	}
	stateHandler, err := crmhdl.NewStateHandler()
	if err != nil {
		return fmt.Errorf("tạo StateHandler: %w", err)
	}

	// Customers — CRUD + import batch + export CSV
	customers := v1.Group("/customers")
	customers.Post("/", customerHandler.InsertOne)
	customers.Get("/", customerHandler.FindWithPagination)
	customers.Get("/find", customerHandler.Find)
	customers.Get("/count", customerHandler.CountDocuments)
	customers.Get("/:id", customerHandler.FindOneById)
	customers.Put("/:id", customerHandler.UpdateById)
	customers.Delete("/:id", customerHandler.DeleteById)

	// POST /customers/import — reconcile batch dòng semi-structured
	customers.Post("/import", customerHandler.HandleImport)
	// GET /customers/export — file CSV đính kèm, UTF-8 + BOM
	customers.Get("/export", customerHandler.HandleExport)

	// Invoices — CRUD
	invoices := v1.Group("/invoices")
	invoices.Post("/", invoiceHandler.InsertOne)
	invoices.Get("/", invoiceHandler.FindWithPagination)
	invoices.Get("/:id", invoiceHandler.FindOneById)
	invoices.Put("/:id", invoiceHandler.UpdateById)
	invoices.Delete("/:id", invoiceHandler.DeleteById)

	// Feedback tasks — CRUD + upsert theo invoiceId + chuyển Completed
	tasks := v1.Group("/feedback-tasks")
	tasks.Post("/", taskHandler.InsertOne)
	tasks.Get("/", taskHandler.FindWithPagination)
	tasks.Get("/:id", taskHandler.FindOneById)
	tasks.Put("/:id", taskHandler.UpdateById)
	tasks.Delete("/:id", taskHandler.DeleteById)
	tasks.Post("/upsert", taskHandler.HandleUpsertByInvoice)
	tasks.Post("/:id/complete", taskHandler.HandleMarkCompleted)

	// Daily inquiries — CRUD
	inquiries := v1.Group("/daily-inquiries")
	inquiries.Post("/", inquiryHandler.InsertOne)
	inquiries.Get("/", inquiryHandler.FindWithPagination)
	inquiries.Get("/:id", inquiryHandler.FindOneById)
	inquiries.Put("/:id", inquiryHandler.UpdateById)
	inquiries.Delete("/:id", inquiryHandler.DeleteById)

	// Daily feedbacks — CRUD, tạo mới kiểm tra khách hàng tồn tại theo mã ngoài
	feedbacks := v1.Group("/daily-feedbacks")
	feedbacks.Post("/", feedbackHandler.InsertOne)
	feedbacks.Get("/", feedbackHandler.FindWithPagination)
	feedbacks.Get("/:id", feedbackHandler.FindOneById)
	feedbacks.Put("/:id", feedbackHandler.UpdateById)
	feedbacks.Delete("/:id", feedbackHandler.DeleteById)

	// Complaints — CRUD với compare-and-swap trên version khi update
	complaints := v1.Group("/complaints")
	complaints.Post("/", complaintHandler.InsertOne)
	complaints.Get("/", complaintHandler.FindWithPagination)
	complaints.Get("/:id", complaintHandler.FindOneById)
	complaints.Put("/:id", complaintHandler.HandleUpdateWithVersion)
	complaints.Delete("/:id", complaintHandler.DeleteById)

	// GET /state — snapshot aggregate, đọc trực tiếp DB mỗi request
	v1.Get("/state", stateHandler.HandleSnapshot)

	return nil
}
