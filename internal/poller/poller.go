package poller

import (
	"context"
	"sync"
	"time"

	"guest_desk/internal/logger"
)

// Task là một công việc chạy định kỳ theo interval riêng.
type Task struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

// Runner chạy nhiều Task song song, mỗi task một ticker riêng.
// Hủy context truyền vào Start để dừng toàn bộ.
type Runner struct {
	tasks []Task
}

// NewRunner tạo Runner mới với danh sách task.
func NewRunner(tasks ...Task) *Runner {
	return &Runner{tasks: tasks}
}

// Start chạy tất cả task cho đến khi ctx bị hủy. Block đến khi mọi
// task loop đã thoát hẳn. Mỗi lần chạy task được bọc recover để một
// tick panic không giết cả loop.
func (r *Runner) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	var wg sync.WaitGroup
	for _, task := range r.tasks {
		wg.Add(1)
		go func(t Task) {
			defer wg.Done()

			log.WithFields(map[string]interface{}{
				"task":     t.Name,
				"interval": t.Interval.String(),
			}).Info("Starting poller task")

			ticker := time.NewTicker(t.Interval)
			defer ticker.Stop()

			// Chạy ngay một lần đầu, không đợi hết tick thứ nhất.
			r.runOnce(ctx, t)

			for {
				select {
				case <-ctx.Done():
					log.WithFields(map[string]interface{}{
						"task": t.Name,
					}).Info("Poller task stopped")
					return
				case <-ticker.C:
					r.runOnce(ctx, t)
				}
			}
		}(task)
	}
	wg.Wait()
}

// runOnce chạy một tick của task, nuốt panic và log lỗi.
func (r *Runner) runOnce(ctx context.Context, t Task) {
	log := logger.GetAppLogger()
	defer func() {
		if rec := recover(); rec != nil {
			log.WithFields(map[string]interface{}{
				"task":  t.Name,
				"panic": rec,
			}).Error("Panic trong poller task, sẽ tiếp tục ở tick sau")
		}
	}()

	if err := t.Run(ctx); err != nil {
		log.WithFields(map[string]interface{}{
			"task": t.Name,
		}).WithError(err).Error("Poller task tick failed")
	}
}
