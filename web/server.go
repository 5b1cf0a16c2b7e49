// Package web serves a minimal single-page interface over the ledger store.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/nroussel/comptes"
	"github.com/nroussel/comptes/date"
	"github.com/rs/zerolog"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server renders the dashboard and forwards form posts to the store's
// mutation operations. It is a pure consumer of the core: every request
// reads a fresh snapshot copy.
type Server struct {
	store *comptes.Store
	tmpl  *template.Template
	mux   *http.ServeMux
	log   zerolog.Logger
}

// NewServer parses the embedded templates and wires the routes.
func NewServer(store *comptes.Store, log zerolog.Logger) (*Server, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	s := &Server{store: store, tmpl: tmpl, mux: http.NewServeMux(), log: log}
	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("POST /transactions", s.handleAddTransaction)
	s.mux.HandleFunc("POST /transactions/delete", s.handleDeleteTransaction)
	s.mux.HandleFunc("POST /transfer", s.handleTransfer)
	s.mux.HandleFunc("POST /accounts", s.handleAddAccount)
	s.mux.HandleFunc("POST /accounts/delete", s.handleDeleteAccount)
	s.mux.HandleFunc("POST /categories", s.handleCategories)
	s.mux.HandleFunc("GET /api/data", s.handleData)
	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

type indexData struct {
	Snapshot comptes.Snapshot
	Recent   []comptes.Transaction
	Dirty    bool
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	snapshot := s.store.Snapshot()
	recent := snapshot.Transactions
	if len(recent) > 20 {
		recent = recent[len(recent)-20:]
	}
	data := indexData{Snapshot: snapshot, Recent: recent, Dirty: s.store.Dirty()}
	if err := s.tmpl.ExecuteTemplate(w, "index.html", data); err != nil {
		s.log.Error().Err(err).Msg("template rendering failed")
	}
}

func (s *Server) handleData(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := comptes.EncodeSnapshot(w, s.store.Snapshot()); err != nil {
		s.log.Error().Err(err).Msg("snapshot encoding failed")
	}
}

func (s *Server) handleAddTransaction(w http.ResponseWriter, r *http.Request) {
	typ, err := comptes.ParseTxType(r.FormValue("type"))
	if err != nil {
		s.reject(w, err)
		return
	}
	amount, err := comptes.ParseAmount(r.FormValue("amount"))
	if err != nil {
		s.reject(w, err)
		return
	}
	day := date.Today()
	if v := r.FormValue("date"); v != "" {
		if day, err = date.Parse(v); err != nil {
			s.reject(w, err)
			return
		}
	}

	tx := comptes.NewTransaction(
		r.FormValue("account"), typ, amount,
		r.FormValue("category"), r.FormValue("description"), day)
	if err := s.store.AddTransaction(tx); err != nil {
		s.reject(w, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteTransaction(r.FormValue("id")); err != nil {
		s.reject(w, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleTransfer(w http.ResponseWriter, r *http.Request) {
	amount, err := comptes.ParseAmount(r.FormValue("amount"))
	if err != nil {
		s.reject(w, err)
		return
	}
	if err := s.store.Transfer(r.FormValue("from"), r.FormValue("to"), amount, date.Today()); err != nil {
		s.reject(w, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleAddAccount(w http.ResponseWriter, r *http.Request) {
	account, err := comptes.NewAccount(r.FormValue("id"), r.FormValue("name"), r.FormValue("balance"))
	if err != nil {
		s.reject(w, err)
		return
	}
	if err := s.store.AddAccount(account); err != nil {
		s.reject(w, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	disposition, err := comptes.ParseDisposition(r.FormValue("disposition"))
	if err != nil {
		s.reject(w, err)
		return
	}
	if err := s.store.DeleteAccount(r.FormValue("id"), disposition, r.FormValue("target")); err != nil {
		s.reject(w, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	var categories []string
	for _, line := range strings.Split(r.FormValue("categories"), "\n") {
		if label := strings.TrimSpace(line); label != "" {
			categories = append(categories, label)
		}
	}
	if err := s.store.UpdateCategories(categories); err != nil {
		s.reject(w, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// reject reports a validation or lookup failure back to the form.
func (s *Server) reject(w http.ResponseWriter, err error) {
	s.log.Debug().Err(err).Msg("request rejected")
	http.Error(w, err.Error(), http.StatusBadRequest)
}
