package server

import (
	"bufio"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// heartbeatInterval keeps idle event streams open through proxies.
const heartbeatInterval = 30 * time.Second

// LiveReloadHub fans reload notifications out to connected browsers over
// server-sent events. The client script reloads on every data event, so a
// freshly connected client receives only a comment.
type LiveReloadHub struct {
	mu      sync.Mutex
	nextID  int
	clients map[int]*lrClient
	closed  bool
	version int64
}

type lrClient struct {
	ch   chan int64
	done chan struct{}
}

// NewLiveReloadHub returns an empty hub.
func NewLiveReloadHub() *LiveReloadHub {
	return &LiveReloadHub{clients: map[int]*lrClient{}}
}

// ServeHTTP implements the SSE endpoint.
func (h *LiveReloadHub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "stream unsupported", http.StatusInternalServerError)
		return
	}

	id, client, ok := h.register()
	if !ok {
		http.Error(w, "livereload shutting down", http.StatusServiceUnavailable)
		return
	}
	defer h.remove(id)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	bw := bufio.NewWriter(w)
	send := func(s string) bool {
		if _, err := bw.WriteString(s); err != nil {
			slog.Debug("livereload write", "error", err)
			return false
		}
		if err := bw.Flush(); err != nil {
			slog.Debug("livereload flush", "error", err)
			return false
		}
		flusher.Flush()
		return true
	}

	if !send(": connected\n\n") {
		return
	}

	hb := time.NewTicker(heartbeatInterval)
	defer hb.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-client.done:
			return
		case <-hb.C:
			if !send(": ping\n\n") {
				return
			}
		case v := <-client.ch:
			if !send("data: " + strconv.FormatInt(v, 10) + "\n\n") {
				return
			}
		}
	}
}

func (h *LiveReloadHub) register() (int, *lrClient, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return 0, nil, false
	}
	c := &lrClient{ch: make(chan int64, 4), done: make(chan struct{})}
	id := h.nextID
	h.nextID++
	h.clients[id] = c
	return id, c, true
}

func (h *LiveReloadHub) remove(id int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.clients[id]; ok {
		delete(h.clients, id)
		close(c.done)
	}
}

// Clients returns the number of connected browsers.
func (h *LiveReloadHub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast tells every client to reload. Clients whose buffers are full
// are disconnected; the browser reconnects on its own.
func (h *LiveReloadHub) Broadcast() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.version++
	v := h.version
	snapshot := make(map[int]*lrClient, len(h.clients))
	for id, c := range h.clients {
		snapshot[id] = c
	}
	h.mu.Unlock()

	dropped := 0
	for id, c := range snapshot {
		select {
		case c.ch <- v:
		default:
			dropped++
			h.remove(id)
		}
	}
	slog.Debug("livereload broadcast", slog.Int64("version", v), slog.Int("clients", len(snapshot)), slog.Int("dropped", dropped))
}

// Shutdown closes all clients and rejects new ones.
func (h *LiveReloadHub) Shutdown() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	clients := h.clients
	h.clients = map[int]*lrClient{}
	h.mu.Unlock()
	for _, c := range clients {
		close(c.done)
	}
}
