package plot

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/dustin/go-humanize"
)

// maxDocumentSize bounds the body accepted by POST /api/plots.
const maxDocumentSize = 32 << 20

// RegisterHandlers registers the routes of the preview server on server.
func (s *PreviewServer) RegisterHandlers(server HTTPServer) {
	server.RegisterHandler("GET /{$}", s.handleIndex)
	server.RegisterHandler("GET /health", s.handleHealth)
	server.RegisterHandler("GET /plots/{id}", s.handlePlotPage)
	server.RegisterHandler("GET /api/plots/{id}", s.handlePlotDocument)
	server.RegisterHandler("DELETE /api/plots/{id}", s.handleDeletePlot)
	server.RegisterHandler("POST /api/plots", s.handleCreatePlot)
	server.RegisterHandler("GET /ws", s.wsManager.HandleWebSocket)
}

// Handler returns an http.Handler serving the preview routes.
func (s *PreviewServer) Handler() http.Handler {
	server := NewStandardHTTPServer()
	s.RegisterHandlers(server)
	return server
}

type indexRow struct {
	ID      string
	Traces  int
	Size    string
	Updated string
	Live    bool
}

// handleIndex lists the stored plots
func (s *PreviewServer) handleIndex(w http.ResponseWriter, _ *http.Request) {
	plots, err := s.store.List()
	if err != nil {
		s.log.WithError(err).Error("Failed to list plots")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	rows := make([]indexRow, 0, len(plots))
	for _, entry := range plots {
		rows = append(rows, indexRow{
			ID:      entry.ID,
			Traces:  entry.Traces,
			Size:    humanize.Bytes(uint64(len(entry.Document))),
			Updated: humanize.Time(entry.Updated()),
			Live:    s.isLive(entry.ID),
		})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.assets.pages.ExecuteTemplate(w, "index.html", map[string]any{"Plots": rows}); err != nil {
		s.log.WithError(err).Error("Template execution failed")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// handleHealth handles health check requests
func (s *PreviewServer) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// handlePlotPage serves the live page of one plot
func (s *PreviewServer) handlePlotPage(w http.ResponseWriter, r *http.Request) {
	page, err := s.page(r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(page); err != nil {
		s.log.WithError(err).Error("Failed to write page")
	}
}

// handlePlotDocument serves the JSON document of one plot
func (s *PreviewServer) handlePlotDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := s.document(r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(doc); err != nil {
		s.log.WithError(err).Error("Failed to write document")
	}
}

// handleCreatePlot stores the posted document and answers with its id
func (s *PreviewServer) handleCreatePlot(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxDocumentSize))
	if err != nil {
		http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
		return
	}

	id, err := s.store.PutDocument(body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.log.WithField("plot", id).Info("Plot stored")

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Location", "/plots/"+id)
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(map[string]string{"id": id}); err != nil {
		s.log.WithError(err).Error("Failed to write response")
	}
}

func (s *PreviewServer) handleDeletePlot(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.store.Delete(id); err != nil {
		s.writeError(w, err)
		return
	}
	s.forget(id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *PreviewServer) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrPlotNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	s.log.WithError(err).Error("Request failed")
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}
