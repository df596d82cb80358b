package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/career-compass/internal/db"
	"github.com/jonathan/career-compass/internal/matching"
	"github.com/jonathan/career-compass/internal/types"
)

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

// ListResponse represents the response for GET /occupations
type ListResponse struct {
	Occupations []types.OccupationRecord `json:"occupations"`
	Page        int                      `json:"page"`
	PerPage     int                      `json:"per_page"`
	TotalCount  int                      `json:"total_count"`
}

// MatchRequest represents the request body for POST /match
type MatchRequest struct {
	Profile types.AssessmentProfile `json:"profile"`
	Cluster string                  `json:"cluster,omitempty"`
	Query   string                  `json:"query,omitempty"`
	Page    int                     `json:"page,omitempty"`
	PerPage int                     `json:"per_page,omitempty"`
}

// MatchResponse represents the response for POST /match
type MatchResponse struct {
	SessionID string          `json:"session_id"`
	Matches   types.MatchPage `json:"matches"`
}

// handleListOccupations returns a page of stored occupations
func (s *Server) handleListOccupations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := queryInt(q.Get("page"), 1)
	perPage := queryInt(q.Get("per_page"), defaultPerPage)
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > maxPerPage {
		perPage = defaultPerPage
	}

	records, total, err := s.store.ListOccupations(r.Context(), db.ListOptions{
		Cluster: q.Get("cluster"),
		Query:   q.Get("q"),
		Limit:   perPage,
		Offset:  (page - 1) * perPage,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list occupations: "+err.Error())
		return
	}

	if records == nil {
		records = []types.OccupationRecord{}
	}
	s.jsonResponse(w, http.StatusOK, ListResponse{
		Occupations: records,
		Page:        page,
		PerPage:     perPage,
		TotalCount:  total,
	})
}

// handleGetOccupation returns one occupation by SOC code
func (s *Server) handleGetOccupation(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")

	rec, err := s.store.GetOccupation(r.Context(), code)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get occupation: "+err.Error())
		return
	}
	if rec == nil {
		notFound := &ErrOccupationNotFound{SOCCode: code}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, rec)
}

// handleClusters returns occupation counts per career cluster
func (s *Server) handleClusters(w http.ResponseWriter, r *http.Request) {
	counts, err := s.store.CountByCluster(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to count clusters: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"clusters": counts})
}

// handleMatch scores the stored dataset against an assessment profile and
// returns a ranked page of matches
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := validateProfile(&req.Profile); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	// Cluster narrowing happens in SQL; query filtering happens after
	// scoring so partial title matches still rank by fit.
	records, _, err := s.store.ListOccupations(r.Context(), db.ListOptions{Cluster: req.Cluster})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load occupations: "+err.Error())
		return
	}

	results := matching.Rank(&req.Profile, records)
	if req.Query != "" {
		results = matching.FilterByQuery(results, req.Query)
	}

	s.jsonResponse(w, http.StatusOK, MatchResponse{
		SessionID: uuid.New().String(),
		Matches:   matching.Page(results, req.Page, req.PerPage),
	})
}

func validateProfile(profile *types.AssessmentProfile) error {
	levels := map[string]int{
		"analytical": profile.Skills.Analytical,
		"creative":   profile.Skills.Creative,
		"social":     profile.Skills.Social,
		"technical":  profile.Skills.Technical,
		"leadership": profile.Skills.Leadership,
		"physical":   profile.Skills.Physical,
		"detail":     profile.Skills.Detail,
	}
	for field, level := range levels {
		if level < 1 || level > 10 {
			return &ErrValidation{Field: "profile.skills." + field, Message: "must be between 1 and 10"}
		}
	}
	return nil
}

func queryInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
