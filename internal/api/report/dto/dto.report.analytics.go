// Package dto định nghĩa output cho endpoint analytics.
package dto

// AnalyticsResult là các chỉ số vận hành của dashboard: tổng tin nhắn kèm
// phân tách gửi/nhận, escalation theo trạng thái, số khách đã nhắn tin.
// ResponseTime là thời gian xử lý escalation trung bình tính bằng phút,
// bằng 0 khi chưa có escalation nào được resolve.
type AnalyticsResult struct {
	TotalMessages            int64   `json:"totalMessages"`
	TotalEscalations         int64   `json:"totalEscalations"`
	TotalResolvedEscalations int64   `json:"totalResolvedEscalations"`
	TotalPendingEscalations  int64   `json:"totalPendingEscalations"`
	TotalUsers               int64   `json:"totalUsers"`
	TotalMessagesSent        int64   `json:"totalMessagesSent"`
	TotalMessagesReceived    int64   `json:"totalMessagesReceived"`
	ResponseTime             float64 `json:"responseTime"`
}
