// Package basehdl chứa các helper response dùng chung cho mọi domain handler.
package basehdl

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"

	"guest_desk/internal/common"
	"guest_desk/internal/logger"
)

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8
// để hỗ trợ UTF-8 encoding đúng cách (tên khách có thể chứa ký tự ngoài ASCII).
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// HandleError chuẩn hóa error response cho client.
// *common.Error giữ nguyên status code và mã lỗi; lỗi khác trả về 500 với
// message chung — message gốc chỉ ghi vào error log, không trả ra ngoài.
func HandleError(c fiber.Ctx, err error) error {
	var customErr *common.Error
	if errors.As(err, &customErr) {
		return JSONResponse(c, customErr.StatusCode, fiber.Map{
			"code":    customErr.Code.Code,
			"message": customErr.Message,
			"status":  "error",
		})
	}

	logger.WithRequest(c).WithError(err).Error("Unhandled error in request handler")
	return JSONResponse(c, common.StatusInternalServerError, fiber.Map{
		"code":    common.ErrCodeInternalServer.Code,
		"message": common.MsgInternalError,
		"status":  "error",
	})
}

// SafeHandlerWrapper bọc handler với recover để server luôn trả về response
// cho client kể cả khi có panic xảy ra.
func SafeHandlerWrapper(c fiber.Ctx, fn func() error) error {
	var err error
	func() {
		defer func() {
			if r := recover(); r != nil {
				debug.PrintStack()
				err = HandleError(c, common.NewError(
					common.ErrCodeInternalServer,
					fmt.Sprintf("Lỗi hệ thống không mong muốn: %v", r),
					common.StatusInternalServerError,
					nil,
				))
			}
		}()
		err = fn()
	}()
	return err
}
