package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/skillgap-coach/internal/analysis"
	"github.com/jonathan/skillgap-coach/internal/ingestion"
)

// Summary lengths for stored history rows.
const (
	resumeSummaryMaxLen = 50
	jobTitleMaxLen      = 80
	historyLimit        = 10
)

// AnalyzeRequest represents the request body for /analyze
type AnalyzeRequest struct {
	ResumeText     string `json:"resume_text" validate:"required"`
	JobDescription string `json:"job_description" validate:"required"`
}

// StoredResult is the document persisted for each run: the full analysis
// result plus the input texts.
type StoredResult struct {
	ResumeText         string                       `json:"resume_text"`
	JobDescription     string                       `json:"job_description"`
	MatchScore         int                          `json:"match_score"`
	OverlappingSkills  []analysis.SkillWithEvidence `json:"overlapping_skills"`
	MissingSkills      []string                     `json:"missing_skills"`
	SuggestedNextSteps []string                     `json:"suggested_next_steps"`
	Mode               analysis.Mode                `json:"mode"`
}

// HistoryItem represents one row of the /history response
type HistoryItem struct {
	ID             string          `json:"id"`
	Timestamp      string          `json:"timestamp"`
	ResumeSummary  string          `json:"resume_summary"`
	JobTitleGuess  string          `json:"job_title_guess"`
	ResumeText     string          `json:"resume_text"`
	JobDescription string          `json:"job_description"`
	MatchScore     int             `json:"match_score"`
	Result         json.RawMessage `json:"result"`
}

// IngestJobRequest represents the request body for /ingest-job
type IngestJobRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// IngestJobResponse represents the response for /ingest-job
type IngestJobResponse struct {
	URL   string `json:"url"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// handleAnalyze runs a resume vs job description analysis and persists the
// run unless it duplicates the most recent one.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	req.ResumeText = strings.TrimSpace(req.ResumeText)
	req.JobDescription = strings.TrimSpace(req.JobDescription)
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	result := s.analyzer.Analyze(r.Context(), req.ResumeText, req.JobDescription)

	stored := StoredResult{
		ResumeText:         req.ResumeText,
		JobDescription:     req.JobDescription,
		MatchScore:         result.MatchScore,
		OverlappingSkills:  result.OverlappingSkills,
		MissingSkills:      result.MissingSkills,
		SuggestedNextSteps: result.SuggestedNextSteps,
		Mode:               result.Mode,
	}

	// A run identical to the most recent one is not saved again.
	duplicate, err := s.isConsecutiveDuplicate(r, req.ResumeText, req.JobDescription)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if !duplicate {
		_, err := s.store.SaveRun(r.Context(),
			summarize(req.ResumeText, resumeSummaryMaxLen),
			titleGuess(req.JobDescription, jobTitleMaxLen),
			result.MatchScore, stored)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
			return
		}
	}

	s.jsonResponse(w, http.StatusOK, result)
}

func (s *Server) isConsecutiveDuplicate(r *http.Request, resumeText, jobDescription string) (bool, error) {
	last, err := s.store.LatestRun(r.Context())
	if err != nil {
		return false, err
	}
	if last == nil {
		return false, nil
	}
	var prev StoredResult
	if err := json.Unmarshal(last.Result, &prev); err != nil {
		return false, nil // unreadable legacy row, just save the new run
	}
	return strings.TrimSpace(prev.ResumeText) == resumeText &&
		strings.TrimSpace(prev.JobDescription) == jobDescription, nil
}

// handleHistory returns the last 10 analysis runs, newest first.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	runs, err := s.store.ListRuns(r.Context(), historyLimit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	items := make([]HistoryItem, 0, len(runs))
	for _, run := range runs {
		var stored StoredResult
		_ = json.Unmarshal(run.Result, &stored)
		items = append(items, HistoryItem{
			ID:             run.ID.String(),
			Timestamp:      run.CreatedAt.Format(time.RFC3339),
			ResumeSummary:  run.ResumeSummary,
			JobTitleGuess:  run.JobTitleGuess,
			ResumeText:     stored.ResumeText,
			JobDescription: stored.JobDescription,
			MatchScore:     run.MatchScore,
			Result:         run.Result,
		})
	}

	s.jsonResponse(w, http.StatusOK, items)
}

// handleClearHistory deletes all analysis runs.
func (s *Server) handleClearHistory(w http.ResponseWriter, r *http.Request) {
	if err := s.store.ClearRuns(r.Context()); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleDeleteHistoryItem deletes a single analysis run by id.
func (s *Server) handleDeleteHistoryItem(w http.ResponseWriter, r *http.Request) {
	runID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid run ID")
		return
	}

	deleted, err := s.store.DeleteRun(r.Context(), runID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if !deleted {
		notFound := &ErrRunNotFound{RunID: runID}
		s.errorResponse(w, HTTPStatus(notFound), "History item not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleIngestJob fetches a job posting URL and returns its extracted text.
func (s *Server) handleIngestJob(w http.ResponseWriter, r *http.Request) {
	var req IngestJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	posting, err := ingestion.FromURL(r.Context(), req.URL)
	if err != nil {
		upstream := &ErrUpstream{Message: "Failed to ingest job posting: " + err.Error()}
		s.errorResponse(w, HTTPStatus(upstream), upstream.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, IngestJobResponse{
		URL:   posting.URL,
		Title: posting.Title,
		Text:  posting.Text,
	})
}

// validationMessage renders validator errors as a single client-facing line.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field()+" is "+fe.Tag())
		}
		return "Validation failed: " + strings.Join(fields, ", ")
	}
	return "Validation failed: " + err.Error()
}

// summarize returns the first maxLen characters of text, trimmed at a word
// boundary.
func summarize(text string, maxLen int) string {
	t := strings.TrimSpace(text)
	if t == "" {
		return ""
	}
	if len(t) <= maxLen {
		return t
	}
	cut := t[:maxLen+1]
	if idx := strings.LastIndexAny(cut, " \t\n"); idx > 0 {
		return strings.TrimRight(cut[:idx], " \t\n")
	}
	return t[:maxLen]
}

// titleGuess returns the first line of text, word-boundary truncated.
func titleGuess(text string, maxLen int) string {
	t := strings.TrimSpace(text)
	if t == "" {
		return ""
	}
	firstLine := strings.TrimSpace(strings.SplitN(t, "\n", 2)[0])
	if len(firstLine) <= maxLen {
		return firstLine
	}
	cut := firstLine[:maxLen+1]
	if idx := strings.LastIndexAny(cut, " \t"); idx > 0 {
		return strings.TrimRight(cut[:idx], " \t")
	}
	return firstLine[:maxLen]
}
