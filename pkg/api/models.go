package api

import "github.com/rubiojr/fuelcalc/pkg/fuel"

// SessionResponse describes a calculator session.
type SessionResponse struct {
	ID    string         `json:"id"`
	Units fuel.Selection `json:"units"`
	Last  *fuel.Result   `json:"last,omitempty"`
}

// UnitRequest selects a unit for one of the session selectors.
type UnitRequest struct {
	Unit string `json:"unit"`
}

// HistoryResponse lists the records of a session in insertion order.
type HistoryResponse struct {
	Records []fuel.Record `json:"records"`
}

// ConvertResponse is the result of a unit conversion.
type ConvertResponse struct {
	Value float64   `json:"value"`
	From  fuel.Unit `json:"from"`
	To    fuel.Unit `json:"to"`
}

// UnitOption is a selectable unit with its display label.
type UnitOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// UnitsResponse lists the closed unit sets keyed by selector
// ("distance", "fuel", "efficiency").
type UnitsResponse struct {
	Lang    string                  `json:"lang"`
	Options map[string][]UnitOption `json:"options"`
}

// StatsResponse reports server usage.
type StatsResponse struct {
	LiveSessions int `json:"live_sessions"`
	Sessions     int `json:"sessions_with_history"`
	Calculations int `json:"calculations"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
