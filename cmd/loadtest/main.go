// Command loadtest opens many sockets on one room, posts messages over REST
// and reports how many frames came back.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"chatcast/domain/chat"

	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	BaseURL   string        `envconfig:"LOADTEST_BASE_URL" default:"http://localhost:3001"`
	SocketURL string        `envconfig:"LOADTEST_SOCKET_URL" default:"ws://localhost:3001/ws"`
	RoomID    string        `envconfig:"LOADTEST_ROOM" default:"loadtest"`
	Clients   int           `envconfig:"LOADTEST_CLIENTS" default:"100"`
	Interval  time.Duration `envconfig:"LOADTEST_INTERVAL" default:"1s"`
	Duration  time.Duration `envconfig:"LOADTEST_DURATION" default:"30s"`
	Colours   bool          `envconfig:"LOADTEST_COLOURS" default:"true"`
}

type counters struct {
	connected atomic.Int64
	posted    atomic.Int64
	failed    atomic.Int64
	received  atomic.Int64
}

func main() {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, cfg.Duration)
	defer cancel()

	log.Printf("Starting loadgen: clients=%d room=%s interval=%s", cfg.Clients, cfg.RoomID, cfg.Interval)

	var stats counters
	var wg sync.WaitGroup
	wg.Add(cfg.Clients)
	for i := 0; i < cfg.Clients; i++ {
		userID := fmt.Sprintf("load-%d", i)
		go func() {
			defer wg.Done()
			runClient(ctx, cfg, userID, &stats)
		}()
	}

	post(ctx, cfg, &stats)
	wg.Wait()
	report(cfg, &stats)
}

func runClient(ctx context.Context, cfg Config, userID string, stats *counters) {
	query := url.Values{"roomId": {cfg.RoomID}, "userId": {userID}, "username": {userID}}
	dialer := websocket.Dialer{HandshakeTimeout: 5 * time.Second}

	conn, _, err := dialer.DialContext(ctx, cfg.SocketURL+"?"+query.Encode(), nil)
	if err != nil {
		log.Printf("[%s] dial error: %v", userID, err)
		return
	}
	defer conn.Close()
	stats.connected.Add(1)

	go func() {
		<-ctx.Done()
		_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye"))
		_ = conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
		stats.received.Add(1)
	}
}

// post sends one message per tick until ctx is done.
func post(ctx context.Context, cfg Config, stats *counters) {
	client := &http.Client{Timeout: 5 * time.Second}
	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()

	for seq := 1; ; seq++ {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		body, _ := json.Marshal(chat.SendMessageRequest{
			RoomID:   cfg.RoomID,
			UserID:   "load-poster",
			Username: "poster",
			Text:     fmt.Sprintf("message %d", seq),
		})
		resp, err := client.Post(cfg.BaseURL+"/chat/messages", "application/json", bytes.NewReader(body))
		if err != nil {
			stats.failed.Add(1)
			continue
		}
		_ = resp.Body.Close()
		if resp.StatusCode != http.StatusCreated {
			stats.failed.Add(1)
			continue
		}
		stats.posted.Add(1)
	}
}

func report(cfg Config, stats *counters) {
	expected := stats.posted.Load() * stats.connected.Load()
	line := fmt.Sprintf("connected=%d posted=%d failed=%d received=%d/%d",
		stats.connected.Load(), stats.posted.Load(), stats.failed.Load(), stats.received.Load(), expected)
	if !cfg.Colours {
		fmt.Println(line)
		return
	}
	if stats.received.Load() >= expected && stats.failed.Load() == 0 {
		color.Green.Println(line)
		return
	}
	color.Yellow.Println(line)
}
