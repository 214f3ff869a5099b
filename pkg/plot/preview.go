package plot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"sync"

	"github.com/StudioSol/set"
	"github.com/hashicorp/golang-lru/simplelru"
	"github.com/raykavin/goplotly/pkg/layout"
	"github.com/raykavin/goplotly/pkg/logger"
)

const (
	DefaultPreviewPort      = 8080
	DefaultPreviewCacheSize = 64
)

// PreviewServer serves the plots of a Store as live pages. Pages keep a
// WebSocket open and apply the updates pushed through Publish, PushRestyle,
// PushRelayout and PushAnimate.
type PreviewServer struct {
	store     *Store
	port      int
	debug     bool
	cacheSize int
	log       logger.Logger
	server    HTTPServer

	assets *pageAssets

	cacheMu sync.Mutex
	cache   *simplelru.LRU

	liveMu sync.Mutex
	live   *set.LinkedHashSetString

	wsManager *WebSocketManager
}

// ServerOption configures a PreviewServer.
type ServerOption func(*PreviewServer)

// WithPort sets the HTTP server port
func WithPort(port int) ServerOption {
	return func(s *PreviewServer) {
		s.port = port
	}
}

// WithDebug disables script minification
func WithDebug() ServerOption {
	return func(s *PreviewServer) {
		s.debug = true
	}
}

func WithLogger(log logger.Logger) ServerOption {
	return func(s *PreviewServer) {
		s.log = log
	}
}

// WithCacheSize sets how many rendered pages are kept.
func WithCacheSize(size int) ServerOption {
	return func(s *PreviewServer) {
		s.cacheSize = size
	}
}

// WithHTTPServer replaces the server Start listens with.
func WithHTTPServer(server HTTPServer) ServerOption {
	return func(s *PreviewServer) {
		s.server = server
	}
}

// NewPreviewServer creates a preview server over store.
func NewPreviewServer(store *Store, options ...ServerOption) (*PreviewServer, error) {
	s := &PreviewServer{
		store:     store,
		port:      DefaultPreviewPort,
		cacheSize: DefaultPreviewCacheSize,
		log:       DefaultLog,
		live:      set.NewLinkedHashSetString(),
	}

	for _, option := range options {
		option(s)
	}

	if s.server == nil {
		s.server = NewStandardHTTPServer()
	}

	var err error
	if s.assets, err = loadAssets(s.debug); err != nil {
		return nil, err
	}

	if s.cache, err = simplelru.NewLRU(max(s.cacheSize, 1), nil); err != nil {
		return nil, fmt.Errorf("failed to create page cache: %w", err)
	}

	s.wsManager = NewWebSocketManager(s.log, s.document)
	return s, nil
}

// Port returns the port Start listens on.
func (s *PreviewServer) Port() int {
	return s.port
}

// Start registers the routes and serves until the server stops.
func (s *PreviewServer) Start() error {
	s.RegisterHandlers(s.server)
	s.log.Infof("Preview available at http://localhost:%d", s.port)
	return s.server.Start(s.port)
}

// Shutdown disconnects the live pages and stops the server.
func (s *PreviewServer) Shutdown(ctx context.Context) error {
	s.wsManager.Close()
	return s.server.Shutdown(ctx)
}

// Publish stores p under id and redraws the pages showing it.
func (s *PreviewServer) Publish(id string, p *Plot) error {
	if err := s.store.Replace(id, p); err != nil {
		return err
	}
	s.invalidate(id)
	s.markLive(id)

	doc, err := s.document(id)
	if err != nil {
		return err
	}
	s.wsManager.Broadcast(id, WebSocketMessage{Type: MessageReact, Payload: doc})
	return nil
}

// PushRestyle applies a restyle (a traces.Restyle or any JSON object) to
// the open pages of id. No trace index targets every trace. The stored
// document is left unchanged.
func (s *PreviewServer) PushRestyle(id string, restyle any, traceIndices ...int) error {
	update, err := jsonObject(restyle)
	if err != nil {
		return err
	}
	if _, err := s.store.Get(id); err != nil {
		return err
	}

	payload := map[string]any{"update": update}
	if len(traceIndices) > 0 {
		payload["traces"] = traceIndices
	}
	s.markLive(id)
	s.wsManager.Broadcast(id, WebSocketMessage{Type: MessageRestyle, Payload: payload})
	return nil
}

// PushRelayout applies a relayout (a layout.Relayout or any JSON object) to
// the open pages of id.
func (s *PreviewServer) PushRelayout(id string, relayout any) error {
	update, err := jsonObject(relayout)
	if err != nil {
		return err
	}
	if _, err := s.store.Get(id); err != nil {
		return err
	}

	s.markLive(id)
	s.wsManager.Broadcast(id, WebSocketMessage{Type: MessageRelayout, Payload: map[string]any{"update": update}})
	return nil
}

// PushAnimate runs an animation on the open pages of id.
func (s *PreviewServer) PushAnimate(id string, animation *layout.Animation) error {
	args, err := json.Marshal(animation)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSerialization, err)
	}
	if _, err := s.store.Get(id); err != nil {
		return err
	}

	s.markLive(id)
	s.wsManager.Broadcast(id, WebSocketMessage{Type: MessageAnimate, Payload: map[string]any{"args": json.RawMessage(args)}})
	return nil
}

// Live returns the ids updated through the server, oldest first.
func (s *PreviewServer) Live() []string {
	s.liveMu.Lock()
	defer s.liveMu.Unlock()

	ids := make([]string, 0)
	for id := range s.live.Iter() {
		ids = append(ids, id)
	}
	return ids
}

func (s *PreviewServer) isLive(id string) bool {
	for _, live := range s.Live() {
		if live == id {
			return true
		}
	}
	return false
}

func (s *PreviewServer) markLive(id string) {
	s.liveMu.Lock()
	s.live.Add(id)
	s.liveMu.Unlock()
}

func (s *PreviewServer) forget(id string) {
	s.liveMu.Lock()
	kept := set.NewLinkedHashSetString()
	for live := range s.live.Iter() {
		if live != id {
			kept.Add(live)
		}
	}
	s.live = kept
	s.liveMu.Unlock()
	s.invalidate(id)
}

func (s *PreviewServer) document(id string) (json.RawMessage, error) {
	entry, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	return entry.Document, nil
}

func (s *PreviewServer) invalidate(id string) {
	s.cacheMu.Lock()
	s.cache.Remove(id)
	s.cacheMu.Unlock()
}

// page returns the preview page of id, rendering it on a cache miss.
func (s *PreviewServer) page(id string) ([]byte, error) {
	s.cacheMu.Lock()
	cached, ok := s.cache.Get(id)
	s.cacheMu.Unlock()
	if ok {
		return cached.([]byte), nil
	}

	entry, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	p, err := entry.Plot()
	if err != nil {
		return nil, err
	}

	data := &pageData{
		Title:     p.title(),
		DivID:     defaultDivID,
		Document:  template.JS(entry.Document),
		Bootstrap: s.assets.previewJS,
		PlotlyURL: PlotlyCDN,
		PlotID:    id,
	}

	var buf bytes.Buffer
	if err := s.assets.pages.ExecuteTemplate(&buf, "preview.html", data); err != nil {
		return nil, fmt.Errorf("failed to render preview.html: %w", err)
	}

	s.cacheMu.Lock()
	s.cache.Add(id, buf.Bytes())
	s.cacheMu.Unlock()
	return buf.Bytes(), nil
}

// jsonObject encodes v and checks that it is a JSON object.
func jsonObject(v any) (json.RawMessage, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerialization, err)
	}
	if len(b) == 0 || b[0] != '{' {
		return nil, fmt.Errorf("%w: %s", ErrInvalidUpdate, b)
	}
	return b, nil
}
