package http

import (
	"log/slog"
	"net/http"

	"crescita/internal/engine"
)

// handleAddRecord handles the add-record form. Missing or uncoercible fields
// make the corresponding event field nil; the engine then reports "No changes
// made." instead of failing. There is no validation beyond type coercion.
func (s *Server) handleAddRecord(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", "error", err, "path", r.URL.Path)
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	ev := engine.AddRequested{
		DateOfBirth: parseOptionalDate(r.Form.Get("dob")),
		Date:        parseOptionalDate(r.Form.Get("date")),
		WeightKg:    parseOptionalFloat(r.Form.Get("weight")),
	}

	out, err := s.engine.Apply(r.Context(), ev)
	if err != nil {
		// A failed blob write is fatal for this request; the in-memory
		// store may now be ahead of the persisted copy.
		slog.ErrorContext(r.Context(), "Add record failed", "error", err)
		http.Error(w, "error saving record", http.StatusInternalServerError)
		return
	}
	s.renderDashboard(w, r, out.Message)
}

// handleSaveTable applies the table's current rows wholesale: cell edits and
// row deletions both land here. The hidden trigger field distinguishes the
// explicit save button from an in-table edit; both replace the dataset.
func (s *Server) handleSaveTable(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", "error", err, "path", r.URL.Path)
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	rows, err := parseTableRows(r.Form)
	if err != nil {
		slog.ErrorContext(r.Context(), "Table rows rejected", "error", err)
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	var ev engine.Event
	if r.Form.Get("trigger") == "edited" {
		ev = engine.TableEdited{Rows: rows}
	} else {
		ev = engine.TableSaved{Rows: rows}
	}

	out, err := s.engine.Apply(r.Context(), ev)
	if err != nil {
		slog.ErrorContext(r.Context(), "Save table failed", "error", err)
		http.Error(w, "error saving changes", http.StatusInternalServerError)
		return
	}
	s.renderDashboard(w, r, out.Message)
}
