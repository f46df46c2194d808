// Package global - Test custom validator wa_id và no_xss.
package global

import "testing"

type waIDInput struct {
	To string `validate:"required,wa_id"`
}

type textInput struct {
	Text string `validate:"required,no_xss"`
}

func TestValidateWaID(t *testing.T) {
	InitValidator()

	valid := []string{"84901", "84901234567", "12345678901234567890"}
	for _, v := range valid {
		if err := Validate.Struct(waIDInput{To: v}); err != nil {
			t.Errorf("wa_id %q phải hợp lệ, lỗi: %v", v, err)
		}
	}

	invalid := []string{
		"8490",                  // quá ngắn
		"123456789012345678901", // quá dài
		"+84901234567",          // có dấu +
		"84901 234",             // có khoảng trắng
		"abc12345",              // có chữ
	}
	for _, v := range invalid {
		if err := Validate.Struct(waIDInput{To: v}); err == nil {
			t.Errorf("wa_id %q phải bị từ chối", v)
		}
	}
}

func TestValidateNoXSS(t *testing.T) {
	InitValidator()

	if err := Validate.Struct(textInput{Text: "Xin chào, phòng 204 cần khăn tắm"}); err != nil {
		t.Errorf("text thường phải hợp lệ, lỗi: %v", err)
	}

	dangerous := []string{
		"<script>alert(1)</script>",
		"click javascript:void(0)",
		"<img onerror=alert(1)>",
	}
	for _, v := range dangerous {
		if err := Validate.Struct(textInput{Text: v}); err == nil {
			t.Errorf("text %q phải bị chặn bởi no_xss", v)
		}
	}
}
