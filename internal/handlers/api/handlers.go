package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/KirkDiggler/touchline/internal/models"
	"github.com/KirkDiggler/touchline/internal/services/match"
	"github.com/gorilla/mux"
)

type errorResponse struct {
	Error string `json:"error"`
}

type stateResponse struct {
	State   *models.MatchState    `json:"state"`
	Locked  bool                  `json:"locked"`
	Pending *pendingContextDetail `json:"pending,omitempty"`
}

type pendingContextDetail struct {
	PlayerID string          `json:"player_id"`
	Stat     models.StatKind `json:"stat"`
	Delta    int             `json:"delta"`
}

type squadSelection struct {
	ExternalID   string `json:"external_id"`
	Name         string `json:"name"`
	JerseyNumber string `json:"jersey_number"`
}

type beginMatchRequest struct {
	TeamName     string           `json:"team_name"`
	OpponentName string           `json:"opponent_name"`
	Selections   []squadSelection `json:"selections"`
}

type beginMatchResponse struct {
	State     *models.MatchState `json:"state"`
	Unmatched []squadSelection   `json:"unmatched,omitempty"`
}

type resumeResponse struct {
	Available    bool          `json:"available"`
	MatchID      string        `json:"match_id,omitempty"`
	TeamName     string        `json:"team_name,omitempty"`
	OpponentName string        `json:"opponent_name,omitempty"`
	MatchSeconds int           `json:"match_seconds"`
	Period       models.Period `json:"period,omitempty"`
	SavedAt      string        `json:"saved_at,omitempty"`
}

type leaderDetail struct {
	MaxValue int `json:"max_value"`
	Leaders  int `json:"leaders"`
}

type impactDetail struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Impact   int    `json:"impact"`
}

type metricsResponse struct {
	Totals    map[models.StatKind]int          `json:"totals"`
	Leaders   map[models.StatKind]leaderDetail `json:"leaders"`
	HomeScore int                              `json:"home_score"`
	AwayScore int                              `json:"away_score"`
	Ranking   []impactDetail                   `json:"ranking"`
}

type clockResponse struct {
	IsRunning bool `json:"is_running"`
}

type statRequest struct {
	Stat          models.StatKind `json:"stat"`
	Delta         int             `json:"delta"`
	Preauthorized bool            `json:"preauthorized"`
	SkipLog       bool            `json:"skip_log"`
}

type statResponse struct {
	Applied      bool                 `json:"applied"`
	Value        int                  `json:"value"`
	Locked       bool                 `json:"locked"`
	NeedsContext bool                 `json:"needs_context"`
	Entry        *models.GameLogEntry `json:"entry,omitempty"`
}

type contextRequest struct {
	Position *models.FieldPosition `json:"position"`
	Reason   string                `json:"reason"`
	Location string                `json:"location"`
}

type contextResponse struct {
	PlayerID string               `json:"player_id"`
	Stat     models.StatKind      `json:"stat"`
	Value    int                  `json:"value"`
	Entry    *models.GameLogEntry `json:"entry,omitempty"`
}

type bigPlayRequest struct {
	Stat     models.StatKind       `json:"stat"`
	Position *models.FieldPosition `json:"position"`
	Reason   string                `json:"reason"`
	Location string                `json:"location"`
}

type entryResponse struct {
	Value  int                  `json:"value,omitempty"`
	Player *models.Player       `json:"player,omitempty"`
	Entry  *models.GameLogEntry `json:"entry,omitempty"`
}

type cardRequest struct {
	Card   models.CardStatus `json:"card"`
	Reason string            `json:"reason"`
}

type playerRequest struct {
	Name         *string `json:"name"`
	JerseyNumber *string `json:"jersey_number"`
}

type setResponse struct {
	Applied       bool `json:"applied"`
	CompletedSets int  `json:"completed_sets"`
	TotalSets     int  `json:"total_sets"`
}

type scoreRequest struct {
	Delta int `json:"delta"`
}

type scoreResponse struct {
	Value     int `json:"value"`
	HomeScore int `json:"home_score"`
	AwayScore int `json:"away_score"`
}

type periodResponse struct {
	Period models.Period      `json:"period"`
	Status models.MatchStatus `json:"status"`
}

type finishRequest struct {
	Votes *models.Votes `json:"votes"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// statusFor maps service errors onto HTTP status codes
func statusFor(err error) int {
	var matchErr match.MatchError
	if !errors.As(err, &matchErr) {
		return http.StatusInternalServerError
	}

	switch matchErr {
	case match.ErrNoActiveMatch, match.ErrNoSnapshot, match.ErrPlayerNotFound:
		return http.StatusNotFound
	case match.ErrMatchInProgress, match.ErrInvalidMatchState, match.ErrPlayerRedCarded, match.ErrNoPendingContext:
		return http.StatusConflict
	case match.ErrNoPlayerSelected, match.ErrUnknownStat, match.ErrNotBigPlay,
		match.ErrInvalidPosition, match.ErrInvalidCard, match.ErrInvalidVotes:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.log.WithError(err).WithField("path", r.URL.Path).Error("request failed")
	}
	writeJSON(w, status, &errorResponse{Error: err.Error()})
}

// decode reads an optional JSON body; an empty body leaves dst untouched
func decode(r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (s *Server) decodeOrFail(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := decode(r, dst); err != nil {
		writeJSON(w, http.StatusBadRequest, &errorResponse{Error: "invalid request body: " + err.Error()})
		return false
	}
	return true
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGetState(w http.ResponseWriter, r *http.Request) {
	out, err := s.matchService.GetState(r.Context(), &match.GetStateInput{})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := &stateResponse{State: out.State, Locked: out.Locked}
	if out.Pending != nil {
		resp.Pending = &pendingContextDetail{
			PlayerID: out.Pending.PlayerID,
			Stat:     out.Pending.Stat,
			Delta:    out.Pending.Delta,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleBeginMatch(w http.ResponseWriter, r *http.Request) {
	var req beginMatchRequest
	if !s.decodeOrFail(w, r, &req) {
		return
	}

	input := &match.BeginMatchInput{TeamName: req.TeamName, OpponentName: req.OpponentName}
	for _, sel := range req.Selections {
		input.Selections = append(input.Selections, match.SquadSelection(sel))
	}

	out, err := s.matchService.BeginMatch(r.Context(), input)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := &beginMatchResponse{State: out.State}
	for _, sel := range out.Unmatched {
		resp.Unmatched = append(resp.Unmatched, squadSelection(sel))
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleDiscardMatch(w http.ResponseWriter, r *http.Request) {
	out, err := s.matchService.DiscardMatch(r.Context(), &match.DiscardMatchInput{})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"discarded": out.Discarded})
}

func (s *Server) handleCheckResume(w http.ResponseWriter, r *http.Request) {
	out, err := s.matchService.CheckResume(r.Context(), &match.CheckResumeInput{})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := &resumeResponse{
		Available:    out.Available,
		MatchID:      out.MatchID,
		TeamName:     out.TeamName,
		OpponentName: out.OpponentName,
		MatchSeconds: out.MatchSeconds,
		Period:       out.Period,
	}
	if !out.SavedAt.IsZero() {
		resp.SavedAt = out.SavedAt.UTC().Format(time.RFC3339)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleResumeMatch(w http.ResponseWriter, r *http.Request) {
	out, err := s.matchService.ResumeMatch(r.Context(), &match.ResumeMatchInput{})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, &stateResponse{State: out.State})
}

func (s *Server) handleGetMetrics(w http.ResponseWriter, r *http.Request) {
	out, err := s.matchService.GetMetrics(r.Context(), &match.GetMetricsInput{})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	sum := out.Summary
	resp := &metricsResponse{
		Totals:    sum.Totals.Totals,
		Leaders:   make(map[models.StatKind]leaderDetail, len(sum.Totals.MaxValues)),
		HomeScore: sum.Score.Home,
		AwayScore: sum.Score.Away,
		Ranking:   make([]impactDetail, 0, len(sum.Ranking)),
	}
	for kind, max := range sum.Totals.MaxValues {
		resp.Leaders[kind] = leaderDetail{MaxValue: max, Leaders: sum.Totals.LeaderCounts[kind]}
	}
	for _, p := range sum.Ranking {
		resp.Ranking = append(resp.Ranking, impactDetail{PlayerID: p.PlayerID, Name: p.Name, Impact: p.Impact})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetTimeline(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	input := &match.GetTimelineInput{PlayerID: query.Get("player")}
	for _, t := range query["type"] {
		input.Types = append(input.Types, models.LogEntryType(t))
	}

	out, err := s.matchService.GetTimeline(r.Context(), input)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	entries := out.Entries
	if entries == nil {
		entries = []*models.GameLogEntry{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"entries": entries})
}

func (s *Server) handleStartClock(w http.ResponseWriter, r *http.Request) {
	out, err := s.matchService.StartClock(r.Context(), &match.StartClockInput{})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, &clockResponse{IsRunning: out.IsRunning})
}

func (s *Server) handleStopClock(w http.ResponseWriter, r *http.Request) {
	out, err := s.matchService.StopClock(r.Context(), &match.StopClockInput{})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, &clockResponse{IsRunning: out.IsRunning})
}

func (s *Server) handleApplyStat(w http.ResponseWriter, r *http.Request) {
	var req statRequest
	if !s.decodeOrFail(w, r, &req) {
		return
	}

	out, err := s.matchService.ApplyStatDelta(r.Context(), &match.ApplyStatDeltaInput{
		PlayerID:      mux.Vars(r)["id"],
		Stat:          req.Stat,
		Delta:         req.Delta,
		Preauthorized: req.Preauthorized,
		SkipLog:       req.SkipLog,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	status := http.StatusOK
	if out.NeedsContext {
		status = http.StatusAccepted
	}
	writeJSON(w, status, &statResponse{
		Applied:      out.Applied,
		Value:        out.Value,
		Locked:       out.Locked,
		NeedsContext: out.NeedsContext,
		Entry:        out.Entry,
	})
}

func contextResult(out *match.ConfirmStatContextOutput) *contextResponse {
	return &contextResponse{PlayerID: out.PlayerID, Stat: out.Stat, Value: out.Value, Entry: out.Entry}
}

func (s *Server) handleConfirmContext(w http.ResponseWriter, r *http.Request) {
	var req contextRequest
	if !s.decodeOrFail(w, r, &req) {
		return
	}

	out, err := s.matchService.ConfirmStatContext(r.Context(), &match.ConfirmStatContextInput{
		Position: req.Position,
		Reason:   req.Reason,
		Location: req.Location,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contextResult(out))
}

func (s *Server) handleSkipContext(w http.ResponseWriter, r *http.Request) {
	out, err := s.matchService.SkipStatContext(r.Context(), &match.SkipStatContextInput{})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contextResult(out))
}

func (s *Server) handleCancelContext(w http.ResponseWriter, r *http.Request) {
	out, err := s.matchService.CancelStatContext(r.Context(), &match.CancelStatContextInput{})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"cancelled": out.Cancelled})
}

func (s *Server) handleBigPlay(w http.ResponseWriter, r *http.Request) {
	var req bigPlayRequest
	if !s.decodeOrFail(w, r, &req) {
		return
	}

	out, err := s.matchService.RecordBigPlay(r.Context(), &match.RecordBigPlayInput{
		PlayerID: mux.Vars(r)["id"],
		Stat:     req.Stat,
		Position: req.Position,
		Reason:   req.Reason,
		Location: req.Location,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, &entryResponse{Value: out.Value, Entry: out.Entry})
}

func (s *Server) handleIssueCard(w http.ResponseWriter, r *http.Request) {
	var req cardRequest
	if !s.decodeOrFail(w, r, &req) {
		return
	}

	out, err := s.matchService.IssueCard(r.Context(), &match.IssueCardInput{
		PlayerID: mux.Vars(r)["id"],
		Card:     req.Card,
		Reason:   req.Reason,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, &entryResponse{Player: out.Player, Entry: out.Entry})
}

func (s *Server) handleOverrideCard(w http.ResponseWriter, r *http.Request) {
	var req cardRequest
	if !s.decodeOrFail(w, r, &req) {
		return
	}

	out, err := s.matchService.OverrideCard(r.Context(), &match.OverrideCardInput{
		PlayerID: mux.Vars(r)["id"],
		Card:     req.Card,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, &entryResponse{Player: out.Player})
}

func (s *Server) handleClearCard(w http.ResponseWriter, r *http.Request) {
	out, err := s.matchService.ClearCard(r.Context(), &match.ClearCardInput{PlayerID: mux.Vars(r)["id"]})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"cleared": out.Cleared, "player": out.Player})
}

func (s *Server) handleEligibleForCard(w http.ResponseWriter, r *http.Request) {
	out, err := s.matchService.EligibleForCard(r.Context(), &match.EligibleForCardInput{})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	players := out.Players
	if players == nil {
		players = []*models.Player{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"players": players})
}

func (s *Server) handleToggleField(w http.ResponseWriter, r *http.Request) {
	out, err := s.matchService.ToggleFieldStatus(r.Context(), &match.ToggleFieldStatusInput{PlayerID: mux.Vars(r)["id"]})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, &entryResponse{Player: out.Player, Entry: out.Entry})
}

func (s *Server) handleUpdatePlayer(w http.ResponseWriter, r *http.Request) {
	var req playerRequest
	if !s.decodeOrFail(w, r, &req) {
		return
	}

	out, err := s.matchService.UpdatePlayerDetails(r.Context(), &match.UpdatePlayerDetailsInput{
		PlayerID:     mux.Vars(r)["id"],
		Name:         req.Name,
		JerseyNumber: req.JerseyNumber,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, &entryResponse{Player: out.Player})
}

func (s *Server) writeSet(w http.ResponseWriter, r *http.Request, out *match.SetOutput, err error) {
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, &setResponse{Applied: out.Applied, CompletedSets: out.CompletedSets, TotalSets: out.TotalSets})
}

func (s *Server) handleCompleteSet(w http.ResponseWriter, r *http.Request) {
	out, err := s.matchService.CompleteSet(r.Context(), &match.CompleteSetInput{})
	s.writeSet(w, r, out, err)
}

func (s *Server) handleFailSet(w http.ResponseWriter, r *http.Request) {
	out, err := s.matchService.FailSet(r.Context(), &match.FailSetInput{})
	s.writeSet(w, r, out, err)
}

func (s *Server) handleOpponentScore(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if !s.decodeOrFail(w, r, &req) {
		return
	}
	out, err := s.matchService.AdjustOpponentScore(r.Context(), &match.AdjustScoreInput{Delta: req.Delta})
	s.writeScore(w, r, out, err)
}

func (s *Server) handleHomeScore(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if !s.decodeOrFail(w, r, &req) {
		return
	}
	out, err := s.matchService.AdjustHomeScore(r.Context(), &match.AdjustScoreInput{Delta: req.Delta})
	s.writeScore(w, r, out, err)
}

func (s *Server) writeScore(w http.ResponseWriter, r *http.Request, out *match.AdjustScoreOutput, err error) {
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, &scoreResponse{Value: out.Value, HomeScore: out.Score.Home, AwayScore: out.Score.Away})
}

func (s *Server) writePeriod(w http.ResponseWriter, r *http.Request, out *match.EndPeriodOutput, err error) {
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, &periodResponse{Period: out.Period, Status: out.Status})
}

func (s *Server) handleRequestEndPeriod(w http.ResponseWriter, r *http.Request) {
	out, err := s.matchService.RequestEndPeriod(r.Context(), &match.RequestEndPeriodInput{})
	s.writePeriod(w, r, out, err)
}

func (s *Server) handleConfirmEndPeriod(w http.ResponseWriter, r *http.Request) {
	out, err := s.matchService.ConfirmEndPeriod(r.Context(), &match.ConfirmEndPeriodInput{})
	s.writePeriod(w, r, out, err)
}

func (s *Server) handleCancelEndPeriod(w http.ResponseWriter, r *http.Request) {
	out, err := s.matchService.CancelEndPeriod(r.Context(), &match.CancelEndPeriodInput{})
	s.writePeriod(w, r, out, err)
}

func (s *Server) handleFinishMatch(w http.ResponseWriter, r *http.Request) {
	var req finishRequest
	if !s.decodeOrFail(w, r, &req) {
		return
	}

	out, err := s.matchService.FinishMatch(r.Context(), &match.FinishMatchInput{Votes: req.Votes})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out.Record)
}

// handleWebSocket upgrades the connection and streams every state change,
// starting with the current state
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithError(err).Debug("websocket upgrade failed")
		return
	}

	c := &client{hub: s.hub, conn: conn, send: make(chan []byte, hubBufferSize)}

	out, err := s.matchService.GetState(r.Context(), &match.GetStateInput{})
	if err != nil {
		s.log.WithError(err).Warn("failed to read match state for websocket client")
		conn.Close()
		return
	}

	msgType := "state"
	if out.State == nil {
		msgType = "idle"
	}
	initial, err := encodeMessage(msgType, out.State)
	if err != nil {
		s.log.WithError(err).Error("failed to encode match state")
		conn.Close()
		return
	}
	c.send <- initial

	if !s.hub.add(c) {
		conn.Close()
		return
	}

	go c.writePump()
	go c.readPump()
}
