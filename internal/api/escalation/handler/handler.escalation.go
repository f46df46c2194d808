// Package escalationhdl chứa các handler HTTP cho domain escalation.
package escalationhdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "guest_desk/internal/api/base/handler"
	escalationdto "guest_desk/internal/api/escalation/dto"
	escalationsvc "guest_desk/internal/api/escalation/service"
	"guest_desk/internal/common"
	"guest_desk/internal/logger"
)

// EscalationHandler xử lý các route escalation.
type EscalationHandler struct {
	service *escalationsvc.EscalationService
}

// NewEscalationHandler tạo EscalationHandler mới.
func NewEscalationHandler() (*EscalationHandler, error) {
	service, err := escalationsvc.NewEscalationService()
	if err != nil {
		return nil, err
	}
	return &EscalationHandler{service: service}, nil
}

// HandleListEscalations trả về danh sách escalation kèm tên khách, mới nhất trước.
// GET /api/v1/escalations
func (h *EscalationHandler) HandleListEscalations(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		items, err := h.service.ListWithGuest(c.Context())
		if err != nil {
			logger.WithRequest(c).WithError(err).Error("List escalations failed")
			return basehdl.HandleError(c, err)
		}
		return basehdl.JSONResponse(c, fiber.StatusOK, items)
	})
}

// HandleResolveEscalation đánh dấu một escalation là đã xử lý.
// POST /api/v1/escalations/resolve — body {id}
func (h *EscalationHandler) HandleResolveEscalation(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input escalationdto.ResolveInput
		if err := c.Bind().Body(&input); err != nil {
			return basehdl.HandleError(c, common.NewError(
				common.ErrCodeValidationFormat,
				"Body không phải JSON hợp lệ",
				common.StatusBadRequest,
				err,
			))
		}

		message, escalation, err := h.service.Resolve(c.Context(), input.ID)
		if err != nil {
			logger.WithRequest(c).WithError(err).WithField("escalation_id", input.ID).Warn("Resolve escalation rejected")
			return basehdl.HandleError(c, err)
		}

		logger.WithRequest(c).WithField("escalation_id", input.ID).Info("Escalation resolve handled")
		return basehdl.JSONResponse(c, fiber.StatusOK, escalationdto.ResolveResult{
			Message:    message,
			Escalation: escalation,
		})
	})
}
