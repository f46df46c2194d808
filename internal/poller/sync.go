package poller

import (
	"context"
	"sort"
	"sync"
	"time"

	chatdto "guest_desk/internal/api/chat/dto"
)

// Cadence mặc định của dashboard: danh sách khách làm mới mỗi 10s,
// hội thoại đang mở làm mới mỗi 2s.
const (
	DefaultGuestInterval   = 10 * time.Second
	DefaultMessageInterval = 2 * time.Second
)

// ConversationSync giữ snapshot danh sách khách và hội thoại của khách
// đang được chọn, cập nhật định kỳ qua Client. Khi một lần fetch lỗi,
// snapshot trước đó được giữ nguyên thay vì xóa trắng — màn hình không
// bị chớp về rỗng chỉ vì một tick mạng hỏng.
type ConversationSync struct {
	client *Client

	mu         sync.RWMutex
	activeWaID string
	guests     []chatdto.GuestBoardItem
	messages   []chatdto.MessageItem
}

// NewConversationSync tạo ConversationSync mới trên client cho trước.
func NewConversationSync(client *Client) *ConversationSync {
	return &ConversationSync{client: client}
}

// SetActiveGuest đổi khách đang theo dõi. Snapshot hội thoại cũ bị xóa
// ngay để không hiển thị nhầm tin nhắn của khách trước.
func (s *ConversationSync) SetActiveGuest(waID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.activeWaID != waID {
		s.activeWaID = waID
		s.messages = nil
	}
}

// Guests trả về snapshot danh sách khách hiện tại.
func (s *ConversationSync) Guests() []chatdto.GuestBoardItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.guests
}

// Messages trả về snapshot hội thoại của khách đang theo dõi.
func (s *ConversationSync) Messages() []chatdto.MessageItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.messages
}

// SortGuests sắp xếp danh sách khách theo tin nhắn cuối mới nhất trước.
// Khách chưa có tin nhắn nào (lastTimestamp null) xuống cuối, giữ nguyên
// thứ tự tương đối server trả về chứ không xếp theo tên.
func SortGuests(items []chatdto.GuestBoardItem) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].LastTimestamp, items[j].LastTimestamp
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return *a > *b
	})
}

// SyncGuests fetch danh sách khách một lần và cập nhật snapshot,
// đã sắp xếp mới nhất trước.
func (s *ConversationSync) SyncGuests(ctx context.Context) error {
	items, err := s.client.FetchGuests(ctx)
	if err != nil {
		return err
	}
	SortGuests(items)
	s.mu.Lock()
	s.guests = items
	s.mu.Unlock()
	return nil
}

// SyncMessages fetch hội thoại của khách đang theo dõi một lần. Không
// có khách nào được chọn thì tick này là no-op.
func (s *ConversationSync) SyncMessages(ctx context.Context) error {
	s.mu.RLock()
	waID := s.activeWaID
	s.mu.RUnlock()
	if waID == "" {
		return nil
	}

	items, err := s.client.FetchMessages(ctx, waID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	// Khách có thể đã đổi trong lúc fetch, bỏ kết quả cũ.
	if s.activeWaID == waID {
		s.messages = items
	}
	s.mu.Unlock()
	return nil
}

// Tasks trả về hai task định kỳ của dashboard để đưa vào Runner.
func (s *ConversationSync) Tasks() []Task {
	return []Task{
		{
			Name:     "guest_list_sync",
			Interval: DefaultGuestInterval,
			Run:      s.SyncGuests,
		},
		{
			Name:     "conversation_sync",
			Interval: DefaultMessageInterval,
			Run:      s.SyncMessages,
		},
	}
}
