// Package server exposes calculator sessions over a JSON HTTP API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog/v2"
	"github.com/go-chi/httprate"
	"github.com/rubiojr/fuelcalc/internal/fuelcalc"
	"github.com/rubiojr/fuelcalc/internal/translations"
	"github.com/rubiojr/fuelcalc/pkg/api"
	"github.com/rubiojr/fuelcalc/pkg/fuel"
)

const DefaultRequestsPerMinute = 120

type Config struct {
	// RequestsPerMinute limits requests per client IP. Zero disables the limit.
	RequestsPerMinute int
	// Lang is used when a request has no lang parameter.
	Lang string
}

type Server struct {
	sessions *fuelcalc.Sessions
	storage  *fuelcalc.Storage
	logger   *httplog.Logger
	cfg      Config
}

func New(storage *fuelcalc.Storage, sessions *fuelcalc.Sessions, logger *httplog.Logger, cfg Config) *Server {
	return &Server{
		sessions: sessions,
		storage:  storage,
		logger:   logger,
		cfg:      cfg,
	}
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(httplog.RequestLogger(s.logger))
	r.Use(middleware.Recoverer)
	if s.cfg.RequestsPerMinute > 0 {
		r.Use(httprate.LimitByIP(s.cfg.RequestsPerMinute, time.Minute))
	}

	r.Get("/units", s.handleUnits)
	r.Get("/convert", s.handleConvert)
	r.Get("/stats", s.handleStats)
	r.Post("/sessions", s.handleCreateSession)
	r.Route("/sessions/{id}", func(r chi.Router) {
		r.Use(s.sessionCtx)
		r.Get("/", s.handleGetSession)
		r.Delete("/", s.handleEndSession)
		r.Put("/units/distance", s.handleSetDistanceUnit)
		r.Put("/units/fuel", s.handleSetFuelUnit)
		r.Put("/units/efficiency", s.handleSetEfficiencyUnit)
		r.Post("/calculate", s.handleCalculate)
		r.Post("/reset", s.handleReset)
		r.Get("/history", s.handleHistory)
		r.Delete("/history", s.handleClearHistory)
	})

	return r
}

type sessionKey struct{}

func (s *Server) sessionCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := s.sessions.Get(chi.URLParam(r, "id"))
		if !ok {
			s.writeJSON(w, http.StatusNotFound, api.ErrorResponse{Error: api.ErrSessionNotFound.Error()})
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey{}, sess)))
	})
}

func sessionFrom(r *http.Request) *fuelcalc.Session {
	return r.Context().Value(sessionKey{}).(*fuelcalc.Session)
}

func (s *Server) lang(r *http.Request) string {
	lang := r.URL.Query().Get("lang")
	if lang == "" {
		lang = s.cfg.Lang
	}
	return translations.GetLanguage(lang)
}

func (s *Server) handleUnits(w http.ResponseWriter, r *http.Request) {
	lang := s.lang(r)
	s.writeJSON(w, http.StatusOK, api.UnitsResponse{
		Lang:    lang,
		Options: translations.GetTranslations(lang).UnitOptions(),
	})
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	from := fuel.Unit(query.Get("from"))
	to := fuel.Unit(query.Get("to"))

	value, err := fuel.ParseValue("value", query.Get("value"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if from.Family() == "" || from.Family() != to.Family() {
		s.writeError(w, r, fmt.Errorf("%w: cannot convert %q to %q", fuel.ErrInvalidUnit, from, to))
		return
	}

	converted := fuel.Convert(value, from, to)
	if math.IsInf(converted, 0) {
		s.writeError(w, r, fmt.Errorf("%w: value is out of range", fuel.ErrInvalidInput))
		return
	}
	s.writeJSON(w, http.StatusOK, api.ConvertResponse{
		Value: converted,
		From:  from,
		To:    to,
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	st, err := s.storage.Stats(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, api.StatsResponse{
		LiveSessions: s.sessions.Len(),
		Sessions:     st.Sessions,
		Calculations: st.Calculations,
	})
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Create()
	resp, err := sessionResponse(sess)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	resp, err := sessionResponse(sessionFrom(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleEndSession(w http.ResponseWriter, r *http.Request) {
	s.sessions.End(sessionFrom(r).ID)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSetDistanceUnit(w http.ResponseWriter, r *http.Request) {
	s.setUnit(w, r, func(e *fuel.Engine, unit string) error {
		return e.SetDistanceUnit(fuel.Unit(unit))
	})
}

func (s *Server) handleSetFuelUnit(w http.ResponseWriter, r *http.Request) {
	s.setUnit(w, r, func(e *fuel.Engine, unit string) error {
		return e.SetFuelUnit(fuel.Unit(unit))
	})
}

func (s *Server) handleSetEfficiencyUnit(w http.ResponseWriter, r *http.Request) {
	s.setUnit(w, r, func(e *fuel.Engine, unit string) error {
		return e.SetEfficiencyUnit(fuel.EfficiencyUnit(unit))
	})
}

func (s *Server) setUnit(w http.ResponseWriter, r *http.Request, set func(e *fuel.Engine, unit string) error) {
	var req api.UnitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
		return
	}

	sess := sessionFrom(r)
	if err := sess.Do(func(e *fuel.Engine) error { return set(e, req.Unit) }); err != nil {
		s.writeError(w, r, err)
		return
	}

	resp, err := sessionResponse(sess)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var in fuel.Inputs
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		s.writeJSON(w, http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
		return
	}

	var res fuel.Result
	err := sessionFrom(r).Do(func(e *fuel.Engine) error {
		var err error
		res, err = e.Calculate(in)
		return err
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	_ = sessionFrom(r).Do(func(e *fuel.Engine) error {
		e.Reset()
		return nil
	})
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	resp := api.HistoryResponse{Records: []fuel.Record{}}
	err := sessionFrom(r).Do(func(e *fuel.Engine) error {
		seq, err := e.ListHistory()
		if err != nil {
			return err
		}
		for rec := range seq {
			resp.Records = append(resp.Records, rec)
		}
		return nil
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleClearHistory(w http.ResponseWriter, r *http.Request) {
	err := sessionFrom(r).Do(func(e *fuel.Engine) error {
		return e.ResetHistory()
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func sessionResponse(sess *fuelcalc.Session) (api.SessionResponse, error) {
	resp := api.SessionResponse{ID: sess.ID}
	err := sess.Do(func(e *fuel.Engine) error {
		resp.Units = e.Units()
		if last, ok := e.Last(); ok {
			resp.Last = &last
		}
		return nil
	})
	return resp, err
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, fuel.ErrInvalidInput) {
		s.writeJSON(w, http.StatusUnprocessableEntity, api.ErrorResponse{
			Error:   err.Error(),
			Message: translations.GetTranslations(s.lang(r)).InvalidNumbers,
		})
		return
	}

	s.logger.Error("Request failed", "path", r.URL.Path, "error", err)
	s.writeJSON(w, http.StatusInternalServerError, api.ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Error encoding response", "error", err)
	}
}
