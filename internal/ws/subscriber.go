package ws

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Subscriber keeps a websocket open to the push channel and hands every
// decoded event to OnEvent. It reconnects after Backoff until its context ends.
type Subscriber struct {
	URL     string
	Backoff time.Duration
	Dialer  *websocket.Dialer
	// OnConnect runs after every successful dial. Events sent while the
	// connection was down are lost, so callers usually refresh here.
	OnConnect func(ctx context.Context)
	OnEvent   func(ctx context.Context, ev Event)
	Logger    *zap.Logger
}

// Run blocks until ctx is cancelled.
func (s *Subscriber) Run(ctx context.Context) {
	logger := s.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	dialer := s.Dialer
	if dialer == nil {
		dialer = websocket.DefaultDialer
	}
	backoff := s.Backoff
	if backoff <= 0 {
		backoff = 3 * time.Second
	}

	for {
		err := s.session(ctx, dialer, logger)
		if ctx.Err() != nil {
			return
		}
		logger.Warn("push channel disconnected", zap.String("url", s.URL), zap.Error(err), zap.Duration("retry_in", backoff))
		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}
	}
}

func (s *Subscriber) session(ctx context.Context, dialer *websocket.Dialer, logger *zap.Logger) error {
	conn, _, err := dialer.DialContext(ctx, s.URL, nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-stop:
		}
	}()

	logger.Info("push channel connected", zap.String("url", s.URL))
	if s.OnConnect != nil {
		s.OnConnect(ctx)
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		var ev Event
		if err := json.Unmarshal(data, &ev); err != nil {
			logger.Warn("push channel: undecodable frame", zap.Error(err))
			continue
		}
		if s.OnEvent != nil {
			s.OnEvent(ctx, ev)
		}
	}
}
