package crmhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "folk_crm/internal/api/base/handler"
	crmsvc "folk_crm/internal/api/crm/service"
)

// StateHandler trả về snapshot trạng thái tổng hợp của hệ thống CRM.
// Số liệu được đọc trực tiếp từ DB ở mỗi request, không cache.
type StateHandler struct {
	SnapshotService *crmsvc.SnapshotService
}

// NewStateHandler tạo mới StateHandler.
func NewStateHandler() (*StateHandler, error) {
	snapshotService, err := crmsvc.NewSnapshotService()
	if err != nil {
		return nil, fmt.Errorf("failed to create snapshot service: %v", err)
	}
	return &StateHandler{SnapshotService: snapshotService}, nil
}

// HandleSnapshot đọc và trả về các aggregate hiện tại.
func (h *StateHandler) HandleSnapshot(c fiber.Ctx) error {
	data, err := h.SnapshotService.Snapshot(c.Context())
	basehdl.WriteResponse(c, data, err)
	return nil
}
