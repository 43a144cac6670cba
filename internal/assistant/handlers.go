// Package assistant exposes the chat endpoints. It is the only place that
// stitches together the engine, the session store, the mood fallback and the
// task snapshot; the engine stays free of HTTP and SQL.
package assistant

import (
	"database/sql"
	"encoding/json"
	"log"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"mente-assistant-backend/internal/analytics"
	"mente-assistant-backend/internal/config"
	"mente-assistant-backend/internal/engine"
	"mente-assistant-backend/internal/moods"
	"mente-assistant-backend/internal/session"
)

// POST /api/assistant/message
func MessageHandler(dbx *sql.DB, eng *engine.Engine, sessions *session.Store, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := analytics.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var body struct {
			Message string         `json:"message"`
			Context engine.Context `json:"context"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)

		sess := sessions.Get(uid)

		// Mood priority: explicit in the request body, else today's check-in.
		if body.Context.Mood != nil {
			label, ok := engine.ParseMoodLabel(string(body.Context.Mood.Label))
			if !ok {
				body.Context.Mood = nil
			} else if body.Context.Mood.SuggestedRitual == "" {
				body.Context.Mood = moods.StateFor(label)
			}
		}
		if body.Context.Mood == nil {
			state, energy := moods.Latest(dbx, uid, time.Now())
			body.Context.Mood = state
			if body.Context.EnergyLevel == 0 {
				body.Context.EnergyLevel = energy
			}
		}

		tasks, err := loadOpenTasks(dbx, uid)
		if err != nil {
			log.Printf("[WARN] loading tasks for user %d: %v", uid, err)
		}
		if body.Context.ActiveTaskCount == 0 {
			body.Context.ActiveTaskCount = len(tasks)
		}

		resp := eng.Respond(engine.Request{
			Utterance: body.Message,
			Context:   body.Context,
			Tasks:     tasks,
		}, sess.Profile, sess.Insights)

		env := analytics.FromRequest(r)
		env.UserID = uid
		env.SessionID = sess.ID
		_ = analytics.Log(r.Context(), dbx, env, "message_classified", map[string]any{
			"intent":     string(resp.Intent),
			"confidence": resp.Confidence,
			"length":     len(strings.TrimSpace(body.Message)),
		}, analytics.SourceEventKeyFromRequest(r))

		if len(resp.RecommendedTaskIDs) > 0 || len(resp.UrgentTaskIDs) > 0 {
			_ = analytics.Log(r.Context(), dbx, env, "suggestion_shown", map[string]any{
				"intent":       string(resp.Intent),
				"recommended":  len(resp.RecommendedTaskIDs),
				"urgent":       len(resp.UrgentTaskIDs),
				"action_given": resp.SuggestedAction != "",
			}, "")
		}

		thinkingPause(cfg)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"session_id":           sess.ID,
			"text":                 resp.Text,
			"suggested_action":     resp.SuggestedAction,
			"confidence":           resp.Confidence,
			"intent":               string(resp.Intent),
			"recommended_task_ids": resp.RecommendedTaskIDs,
			"urgent_task_ids":      resp.UrgentTaskIDs,
		})
	}
}

// GET /api/assistant/profile — what the session has learned so far
func ProfileHandler(sessions *session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := analytics.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		sess := sessions.Get(uid)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"session_id": sess.ID,
			"profile":    sess.Profile.Export(),
		})
	}
}

// POST /api/assistant/end — drop the session; the next message starts fresh
func EndSessionHandler(dbx *sql.DB, sessions *session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := analytics.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		sessions.End(uid)

		env := analytics.FromRequest(r)
		env.UserID = uid
		_ = analytics.Log(r.Context(), dbx, env, "session_ended", nil, analytics.SourceEventKeyFromRequest(r))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}
}

// loadOpenTasks snapshots the user's non-done tasks for ranking.
func loadOpenTasks(dbx *sql.DB, userID int) ([]engine.Task, error) {
	rows, err := dbx.Query(`
		SELECT id, title, type, energy_required, COALESCE(due_date, ''), xp_reward, status
		FROM tasks
		WHERE user_id = $1 AND status = 'active'
		ORDER BY created_at ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []engine.Task
	for rows.Next() {
		var (
			t           engine.Task
			typ, energy string
		)
		if err := rows.Scan(&t.ID, &t.Title, &typ, &energy, &t.DueDate, &t.XPReward, &t.Status); err != nil {
			return out, err
		}
		t.Type, _ = engine.ParseTaskType(typ)
		t.EnergyRequired, _ = engine.ParseEnergyTier(energy)
		out = append(out, t)
	}
	return out, rows.Err()
}

// thinkingPause sleeps for a random interval inside the configured window so
// replies don't land instantly. Purely cosmetic.
func thinkingPause(cfg *config.Config) {
	min, max := cfg.ThinkingDelayMinMs, cfg.ThinkingDelayMaxMs
	if min < 0 {
		min = 0
	}
	if max <= min {
		time.Sleep(time.Duration(min) * time.Millisecond)
		return
	}
	d := min + rand.Intn(max-min+1)
	time.Sleep(time.Duration(d) * time.Millisecond)
}
