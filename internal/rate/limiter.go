package rate

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type client struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// ClientLimiter hands out one token bucket per client IP and forgets
// clients that have been idle longer than idle.
type ClientLimiter struct {
	mu      sync.Mutex
	clients map[string]*client
	every   rate.Limit
	burst   int
	idle    time.Duration
	done    chan struct{}
	once    sync.Once
}

// NewClientLimiter allows rpm requests per minute per client with the given
// burst. A background sweeper runs every idle interval until Stop.
func NewClientLimiter(rpm, burst int, idle time.Duration) *ClientLimiter {
	if rpm <= 0 {
		rpm = 1
	}
	if burst <= 0 {
		burst = 1
	}
	cl := &ClientLimiter{
		clients: make(map[string]*client),
		every:   rate.Every(time.Minute / time.Duration(rpm)),
		burst:   burst,
		idle:    idle,
		done:    make(chan struct{}),
	}
	go cl.sweep()
	return cl
}

func (l *ClientLimiter) sweep() {
	t := time.NewTicker(l.idle)
	defer t.Stop()
	for {
		select {
		case <-l.done:
			return
		case now := <-t.C:
			l.mu.Lock()
			for ip, c := range l.clients {
				if now.Sub(c.lastSeen) > l.idle {
					delete(l.clients, ip)
				}
			}
			l.mu.Unlock()
		}
	}
}

// Stop ends the sweeper. Safe to call more than once.
func (l *ClientLimiter) Stop() { l.once.Do(func() { close(l.done) }) }

// Allow reports whether a request from ip may proceed now.
func (l *ClientLimiter) Allow(ip string) bool {
	l.mu.Lock()
	c, ok := l.clients[ip]
	if !ok {
		c = &client{lim: rate.NewLimiter(l.every, l.burst)}
		l.clients[ip] = c
	}
	c.lastSeen = time.Now()
	l.mu.Unlock()
	return c.lim.Allow()
}

// Tracked returns the number of clients currently held.
func (l *ClientLimiter) Tracked() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// ClientIP returns the remote address host. When trustProxy is set the
// first X-Forwarded-For hop wins; clients can forge that header, so only
// set it behind a proxy that overwrites it.
func ClientIP(r *http.Request, trustProxy bool) string {
	if xff := r.Header.Get("X-Forwarded-For"); trustProxy && xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
