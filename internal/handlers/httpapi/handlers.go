package httpapi

import (
	"net/http"
	"strconv"

	"github.com/nawal123158-wq/kartlichallenge/internal/models"
	"github.com/nawal123158-wq/kartlichallenge/internal/services/game"
)

func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request, user *models.User) {
	var req struct {
		GroupID string `json:"group_id"`
	}
	if err := decodeJSON(r, &req); err != nil || req.GroupID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "group_id is required"})
		return
	}

	out, err := s.games.CreateGame(r.Context(), &game.CreateGameInput{
		GroupID: req.GroupID,
		UserID:  user.ID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, gameJSON(out.Game))
}

func (s *Server) handleJoinGame(w http.ResponseWriter, r *http.Request, user *models.User) {
	out, err := s.games.JoinGame(r.Context(), &game.JoinGameInput{
		GameID: r.PathValue("id"),
		UserID: user.ID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	resp := gameJSON(out.Game)
	resp["auto_started"] = out.AutoStarted
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleStartGame(w http.ResponseWriter, r *http.Request, user *models.User) {
	out, err := s.games.StartGame(r.Context(), &game.StartGameInput{
		GameID: r.PathValue("id"),
		UserID: user.ID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, gameJSON(out.Game))
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request, user *models.User) {
	out, err := s.games.GetGame(r.Context(), &game.GetGameInput{
		GameID: r.PathValue("id"),
		UserID: user.ID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	players := make([]map[string]any, 0, len(out.Players))
	for _, p := range out.Players {
		players = append(players, map[string]any{
			"user_id":   p.UserID,
			"name":      p.Name,
			"picture":   p.Picture,
			"score":     p.Score,
			"pass_used": p.PassUsed,
			"swap_used": p.SwapUsed,
		})
	}

	resp := gameJSON(out.Game)
	resp["players"] = players
	resp["current_player"] = out.CurrentPlayer
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleMyCards(w http.ResponseWriter, r *http.Request, user *models.User) {
	out, err := s.games.GetMyCards(r.Context(), &game.GetMyCardsInput{
		GameID: r.PathValue("id"),
		UserID: user.ID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	cards := make([]map[string]any, 0, len(out.Cards))
	for _, view := range out.Cards {
		cards = append(cards, handCardJSON(view))
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"cards":             cards,
		"hand_number":       out.HandNumber,
		"your_turn":         out.YourTurn,
		"pass_used":         out.PassUsed,
		"swap_used":         out.SwapUsed,
		"remaining_seconds": int(out.RemainingTime.Seconds()),
	})
}

func (s *Server) handleSelectCard(w http.ResponseWriter, r *http.Request, user *models.User) {
	var req struct {
		CardID string `json:"card_id"`
	}
	if err := decodeJSON(r, &req); err != nil || req.CardID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "card_id is required"})
		return
	}

	_, err := s.games.SelectCard(r.Context(), &game.SelectCardInput{
		GameID: r.PathValue("id"),
		UserID: user.ID,
		CardID: req.CardID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "selected"})
}

func (s *Server) handlePlayCard(w http.ResponseWriter, r *http.Request, user *models.User) {
	var req struct {
		CardID string `json:"card_id"`
		Action string `json:"action"`
		Photo  string `json:"photo"`
		Note   string `json:"note"`
	}
	if err := decodeJSON(r, &req); err != nil || req.CardID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "card_id is required"})
		return
	}

	out, err := s.games.PlayCard(r.Context(), &game.PlayCardInput{
		GameID:      r.PathValue("id"),
		UserID:      user.ID,
		CardID:      req.CardID,
		Action:      game.PlayAction(req.Action),
		PhotoBase64: req.Photo,
		Note:        req.Note,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	resp := map[string]any{"action": req.Action}
	if out.Submission != nil {
		resp["submission"] = submissionJSON(out.Submission)
	}
	if out.PenaltyCard != nil {
		resp["penalty_card"] = cardJSON(out.PenaltyCard)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSwapCard(w http.ResponseWriter, r *http.Request, user *models.User) {
	var req struct {
		CardID string `json:"card_id"`
	}
	if err := decodeJSON(r, &req); err != nil || req.CardID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "card_id is required"})
		return
	}

	out, err := s.games.SwapCard(r.Context(), &game.SwapCardInput{
		GameID: r.PathValue("id"),
		UserID: user.ID,
		CardID: req.CardID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"new_card": handCardJSON(out.NewCard)})
}

func (s *Server) handleGetSubmissions(w http.ResponseWriter, r *http.Request, user *models.User) {
	out, err := s.games.GetSubmissions(r.Context(), &game.GetSubmissionsInput{
		GameID: r.PathValue("id"),
		UserID: user.ID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	subs := make([]map[string]any, 0, len(out.Submissions))
	for _, view := range out.Submissions {
		sub := submissionJSON(view.Submission)
		if view.Card != nil {
			sub["card"] = cardJSON(view.Card)
		}
		sub["your_vote"] = string(view.YourVote)
		subs = append(subs, sub)
	}

	writeJSON(w, http.StatusOK, map[string]any{"submissions": subs})
}

func (s *Server) handleCastVote(w http.ResponseWriter, r *http.Request, user *models.User) {
	var req struct {
		Vote string `json:"vote"`
	}
	if err := decodeJSON(r, &req); err != nil || req.Vote == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "vote is required"})
		return
	}

	out, err := s.games.CastVote(r.Context(), &game.CastVoteInput{
		SubmissionID: r.PathValue("id"),
		UserID:       user.ID,
		Type:         models.VoteType(req.Vote),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": string(out.Status)})
}

func (s *Server) handleGetPenalties(w http.ResponseWriter, r *http.Request, user *models.User) {
	out, err := s.games.GetPenalties(r.Context(), &game.GetPenaltiesInput{
		GameID: r.PathValue("id"),
		UserID: user.ID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	penalties := make([]map[string]any, 0, len(out.Penalties))
	for _, view := range out.Penalties {
		p := map[string]any{
			"id":         view.Penalty.ID,
			"user_id":    view.Penalty.UserID,
			"card_id":    view.Penalty.CardID,
			"reason":     string(view.Penalty.Reason),
			"created_at": view.Penalty.CreatedAt,
		}
		if view.Card != nil {
			p["card"] = cardJSON(view.Card)
		}
		penalties = append(penalties, p)
	}

	writeJSON(w, http.StatusOK, map[string]any{"penalties": penalties})
}

func (s *Server) handleGetChat(w http.ResponseWriter, r *http.Request, user *models.User) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, _ = strconv.Atoi(raw)
	}

	out, err := s.games.GetChatMessages(r.Context(), &game.GetChatMessagesInput{
		GameID: r.PathValue("id"),
		UserID: user.ID,
		Limit:  limit,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	messages := make([]map[string]any, 0, len(out.Messages))
	for _, msg := range out.Messages {
		messages = append(messages, chatMessageJSON(msg))
	}

	writeJSON(w, http.StatusOK, map[string]any{"messages": messages})
}

func (s *Server) handlePostChat(w http.ResponseWriter, r *http.Request, user *models.User) {
	var req struct {
		Content string `json:"content"`
	}
	if err := decodeJSON(r, &req); err != nil || req.Content == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "content is required"})
		return
	}

	out, err := s.games.PostChatMessage(r.Context(), &game.PostChatMessageInput{
		GameID:  r.PathValue("id"),
		UserID:  user.ID,
		Content: req.Content,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, chatMessageJSON(out.Message))
}

func (s *Server) handleGetNotifications(w http.ResponseWriter, r *http.Request, user *models.User) {
	out, err := s.games.GetNotifications(r.Context(), &game.GetNotificationsInput{
		UserID:     user.ID,
		UnreadOnly: r.URL.Query().Get("unread") == "true",
	})
	if err != nil {
		writeError(w, err)
		return
	}

	notifications := make([]map[string]any, 0, len(out.Notifications))
	for _, n := range out.Notifications {
		notifications = append(notifications, map[string]any{
			"id":         n.ID,
			"type":       string(n.Type),
			"title":      n.Title,
			"message":    n.Message,
			"data":       n.Data,
			"read":       n.Read,
			"created_at": n.CreatedAt,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{"notifications": notifications})
}

func (s *Server) handleMarkNotificationRead(w http.ResponseWriter, r *http.Request, user *models.User) {
	err := s.games.MarkNotificationRead(r.Context(), &game.MarkNotificationReadInput{
		UserID:         user.ID,
		NotificationID: r.PathValue("id"),
	})
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "notification not found"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "read"})
}

func gameJSON(g *models.Game) map[string]any {
	resp := map[string]any{
		"id":           g.ID,
		"group_id":     g.GroupID,
		"status":       string(g.Status),
		"created_by":   g.CreatedBy,
		"current_hand": g.CurrentHand,
		"player_ids":   g.Players,
		"turn_order":   g.TurnOrder,
		"created_at":   g.CreatedAt,
	}
	if !g.FinishedAt.IsZero() {
		resp["finished_at"] = g.FinishedAt
	}
	return resp
}

func cardJSON(c *models.Card) map[string]any {
	return map[string]any{
		"id":          c.ID,
		"category":    string(c.Category),
		"title":       c.Title,
		"description": c.Description,
		"difficulty":  c.Difficulty,
		"points":      c.Points,
		"time_limit":  c.TimeLimitSeconds,
	}
}

func handCardJSON(view *game.HandCardView) map[string]any {
	resp := map[string]any{
		"id":       view.HandCard.ID,
		"card_id":  view.HandCard.CardID,
		"status":   string(view.HandCard.Status),
		"selected": view.HandCard.Selected,
	}
	if view.Card != nil {
		resp["card"] = cardJSON(view.Card)
	}
	return resp
}

func submissionJSON(sub *models.Submission) map[string]any {
	return map[string]any{
		"id":            sub.ID,
		"game_id":       sub.GameID,
		"hand_number":   sub.HandNumber,
		"user_id":       sub.UserID,
		"card_id":       sub.CardID,
		"photo":         sub.PhotoBase64,
		"note":          sub.Note,
		"status":        string(sub.Status),
		"votes_approve": sub.VotesApprove,
		"votes_reject":  sub.VotesReject,
		"created_at":    sub.CreatedAt,
	}
}

func chatMessageJSON(msg *models.ChatMessage) map[string]any {
	resp := map[string]any{
		"id":         msg.ID,
		"game_id":    msg.GameID,
		"user_id":    msg.UserID,
		"content":    msg.Content,
		"type":       string(msg.Type),
		"created_at": msg.CreatedAt,
	}
	if msg.SubmissionID != "" {
		resp["submission_id"] = msg.SubmissionID
	}
	return resp
}
