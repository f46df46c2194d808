// Package reporthdl chứa handler HTTP cho endpoint analytics.
package reporthdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "guest_desk/internal/api/base/handler"
	reportsvc "guest_desk/internal/api/report/service"
	"guest_desk/internal/logger"
)

// AnalyticsHandler xử lý route thống kê dashboard.
type AnalyticsHandler struct {
	service *reportsvc.AnalyticsService
}

// NewAnalyticsHandler tạo AnalyticsHandler mới.
func NewAnalyticsHandler() (*AnalyticsHandler, error) {
	service, err := reportsvc.NewAnalyticsService()
	if err != nil {
		return nil, err
	}
	return &AnalyticsHandler{service: service}, nil
}

// HandleGetAnalytics trả về các chỉ số vận hành.
// GET /api/v1/analytics
func (h *AnalyticsHandler) HandleGetAnalytics(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		result, err := h.service.GetAnalytics(c.Context())
		if err != nil {
			logger.WithRequest(c).WithError(err).Error("Get analytics failed")
			return basehdl.HandleError(c, err)
		}
		return basehdl.JSONResponse(c, fiber.StatusOK, result)
	})
}
