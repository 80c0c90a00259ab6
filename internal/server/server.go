// Package server exposes the classification pipeline, the stored history
// and the action executor over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/digimosa/qrscan/internal/actions"
	"github.com/digimosa/qrscan/internal/config"
	"github.com/digimosa/qrscan/internal/extract"
	"github.com/digimosa/qrscan/internal/reporting"
	"github.com/digimosa/qrscan/internal/settings"
	"github.com/digimosa/qrscan/internal/storage"
)

type Server struct {
	cfg      *config.Config
	settings *settings.Store
	executor *actions.Executor
}

func NewServer(cfg *config.Config, st *settings.Store, ex *actions.Executor) *Server {
	return &Server{cfg: cfg, settings: st, executor: ex}
}

func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	if s.cfg.APIToken != "" {
		r.Use(s.authMiddleware)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	}).Methods("GET")

	r.HandleFunc("/scan", s.handleScan).Methods("POST")
	r.HandleFunc("/scans", s.handleListScans).Methods("GET")
	r.HandleFunc("/scans", s.handleClearScans).Methods("DELETE")
	r.HandleFunc("/scans/{id}", s.handleGetScan).Methods("GET")
	r.HandleFunc("/scans/{id}", s.handleDeleteScan).Methods("DELETE")
	r.HandleFunc("/scans/{id}/actions/{op}", s.handleInvokeAction).Methods("POST")
	r.HandleFunc("/export", s.handleExport).Methods("GET")
	r.HandleFunc("/report", s.handleReport).Methods("GET")
	r.HandleFunc("/settings", s.handleGetSettings).Methods("GET")
	r.HandleFunc("/settings", s.handlePutSettings).Methods("PUT")
	return r
}

func (s *Server) Start(addr string) error {
	log.Printf("Starting scan server at http://%s", addr)
	return http.ListenAndServe(addr, s.Router())
}

func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if token != s.cfg.APIToken {
			writeError(w, http.StatusUnauthorized, "invalid or missing token")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// handleScan classifies one payload, persists it when history is enabled
// and returns the result together with its resolved actions.
func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Payload string `json:"payload"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Payload == "" {
		writeError(w, http.StatusBadRequest, "payload required")
		return
	}

	res := extract.Parse(req.Payload)

	vals := s.settings.Get()
	if vals.SaveHistory {
		if err := storage.Save(res); err != nil {
			writeError(w, http.StatusInternalServerError, "failed to save result")
			return
		}
		if err := storage.Prune(vals.HistoryLimit); err != nil {
			log.Printf("[ERROR] history prune failed: %v", err)
		}
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"result":  res,
		"actions": actions.ActionsFor(res),
	})
}

func (s *Server) handleListScans(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	scans, err := storage.List(limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list scans")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"scans": scans})
}

func (s *Server) handleGetScan(w http.ResponseWriter, r *http.Request) {
	res, err := storage.Get(mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "scan not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load scan")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"result":  res,
		"actions": actions.ActionsFor(res),
	})
}

func (s *Server) handleDeleteScan(w http.ResponseWriter, r *http.Request) {
	if err := storage.Delete(mux.Vars(r)["id"]); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete scan")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleClearScans(w http.ResponseWriter, r *http.Request) {
	if err := storage.Clear(); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to clear scans")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleInvokeAction runs one resolved action descriptor through the
// executor. Effect failures surface as a generic notice; the stored
// result is never touched.
func (s *Server) handleInvokeAction(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	res, err := storage.Get(vars["id"])
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "scan not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load scan")
		return
	}

	action, ok := actions.Find(res, actions.Op(vars["op"]))
	if !ok {
		writeError(w, http.StatusNotFound, "action not available for this scan")
		return
	}

	notice, err := s.executor.Execute(action, res)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"notice":       notice,
		"dismissAfter": action.DismissAfter,
	})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	scans, err := storage.List(0)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list scans")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="scan-history.xlsx"`)
	if err := reporting.WriteXLSX(w, scans); err != nil {
		log.Printf("[ERROR] failed to write export: %v", err)
	}
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	scans, err := storage.List(0)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list scans")
		return
	}

	report := reporting.NewReport("history")
	for _, res := range scans {
		report.AddResult(res)
	}
	report.Finalize()

	w.Header().Set("Content-Type", "text/html")
	if err := report.RenderHTML(w); err != nil {
		log.Printf("[ERROR] failed to render report: %v", err)
	}
}

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.settings.Get())
}

func (s *Server) handlePutSettings(w http.ResponseWriter, r *http.Request) {
	var vals settings.Values
	if err := json.NewDecoder(r.Body).Decode(&vals); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.settings.Set(vals); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save settings")
		return
	}
	writeJSON(w, http.StatusOK, s.settings.Get())
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
