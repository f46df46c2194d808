package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"guest_desk/internal/logger"
	"guest_desk/internal/poller"
)

// Binary theo dõi một hội thoại qua API server và in tin nhắn mới ra stdout.
// Dùng để kiểm tra nhanh dashboard sync mà không cần UI.
func main() {
	var (
		baseURL  = flag.String("server", "http://localhost:3000", "Base URL của API server")
		password = flag.String("password", os.Getenv("AUTH_PASSWORD"), "Password xác thực API")
		waID     = flag.String("id", "", "wa_id của khách cần theo dõi (trống = chỉ in danh sách khách)")
	)
	flag.Parse()

	if err := logger.Init(nil); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	log := logger.GetAppLogger()

	if *password == "" {
		log.Fatal("Thiếu password: dùng -password hoặc biến môi trường AUTH_PASSWORD")
	}

	client := poller.NewClient(*baseURL, *password)
	sync := poller.NewConversationSync(client)
	if *waID != "" {
		sync.SetActiveGuest(*waID)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	runner := poller.NewRunner(sync.Tasks()...)
	go runner.Start(ctx)

	printLoop(ctx, sync, *waID)
	log.Info("Poller stopped")
}

// printLoop in snapshot mới ra stdout mỗi khi nó thay đổi.
func printLoop(ctx context.Context, sync *poller.ConversationSync, waID string) {
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	var lastGuestCount int
	var lastMessageCount int

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			guests := sync.Guests()
			if len(guests) != lastGuestCount {
				lastGuestCount = len(guests)
				fmt.Printf("--- %d guests ---\n", len(guests))
				for _, g := range guests {
					last := ""
					if g.LastMessage != nil {
						last = *g.LastMessage
					}
					fmt.Printf("  %s  %s  %q\n", g.WaID, g.Name, last)
				}
			}

			if waID == "" {
				continue
			}
			messages := sync.Messages()
			if len(messages) > lastMessageCount {
				for _, m := range messages[lastMessageCount:] {
					fmt.Printf("[%s] %s: %s\n",
						time.UnixMilli(m.Timestamp).Format("15:04:05"), m.Direction, m.Text)
				}
				lastMessageCount = len(messages)
			}
		}
	}
}
