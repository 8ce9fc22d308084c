package diag

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	neturl "net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	wsQueueSize    = 32
	wsWriteTimeout = 5 * time.Second
)

// WSReporter forwards traces to a developer console listening on a websocket.
// Report never blocks: traces are queued and a single goroutine dials on
// first use and writes them. When the queue is full the oldest trace is
// dropped. Close abandons an in-flight dial and only flushes the queue
// over a connection that is already open.
type WSReporter struct {
	URL string

	dialer    websocket.Dialer
	queue     chan Trace
	ctx       context.Context
	cancel    context.CancelFunc
	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

func NewWSReporter(wsURL string) *WSReporter {
	r := &WSReporter{
		URL: wsURL,
		dialer: websocket.Dialer{
			HandshakeTimeout: 5 * time.Second,
			Proxy: func(*http.Request) (*neturl.URL, error) {
				return nil, nil // disable proxies
			},
		},
		queue: make(chan Trace, wsQueueSize),
		done:  make(chan struct{}),
	}
	r.ctx, r.cancel = context.WithCancel(context.Background())
	r.wg.Add(1)
	go r.run()
	return r
}

func (r *WSReporter) Report(t Trace) {
	select {
	case <-r.done:
		return
	default:
	}
	select {
	case r.queue <- t:
	default:
		select {
		case <-r.queue:
		default:
		}
		select {
		case r.queue <- t:
		default:
		}
	}
}

// Close stops the sender. Queued traces go out only if the console is
// already connected; otherwise they are dropped.
func (r *WSReporter) Close() error {
	r.closeOnce.Do(func() {
		r.cancel()
		close(r.done)
	})
	r.wg.Wait()
	return nil
}

func (r *WSReporter) run() {
	defer r.wg.Done()

	var conn *websocket.Conn
	defer func() {
		if conn != nil {
			_ = conn.Close()
		}
	}()

	deliver := func(t Trace) {
		if conn == nil {
			c, resp, err := r.dialer.DialContext(r.ctx, r.URL, nil)
			if err != nil {
				if resp != nil {
					_ = resp.Body.Close()
					log.Printf("DIAG: console dial failed: %s", resp.Status)
				} else {
					log.Printf("DIAG: console dial failed: %v", err)
				}
				return
			}
			conn = c
		}
		if err := writeTrace(conn, t); err != nil {
			log.Printf("DIAG: console write failed: %v", err)
			_ = conn.Close()
			conn = nil
		}
	}

	for {
		select {
		case t := <-r.queue:
			deliver(t)
		case <-r.done:
			for conn != nil {
				select {
				case t := <-r.queue:
					deliver(t)
				default:
					return
				}
			}
			return
		}
	}
}

func writeTrace(c *websocket.Conn, t Trace) error {
	b, err := json.Marshal(struct {
		Type string `json:"type"`
		Data Trace  `json:"data"`
	}{Type: "Diag", Data: t})
	if err != nil {
		return err
	}
	if err := c.SetWriteDeadline(time.Now().Add(wsWriteTimeout)); err != nil {
		return err
	}
	return c.WriteMessage(websocket.TextMessage, b)
}
