package moods

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"mente-assistant-backend/internal/analytics"
	"mente-assistant-backend/internal/engine"
)

// POST /api/mood — record a check-in, answer with the mood's ritual
func CheckinHandler(dbx *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := analytics.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var body struct {
			Mood        string `json:"mood"`
			EnergyLevel int    `json:"energy_level"`
			Note        string `json:"note"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)

		label, ok := engine.ParseMoodLabel(body.Mood)
		if !ok {
			http.Error(w, "invalid mood", http.StatusBadRequest)
			return
		}

		if body.EnergyLevel < 1 {
			body.EnergyLevel = 1
		}
		if body.EnergyLevel > 10 {
			body.EnergyLevel = 10
		}

		var c Checkin
		err := dbx.QueryRow(`
			INSERT INTO mood_checkins (user_id, mood, energy_level, note)
			VALUES ($1, $2, $3, NULLIF($4, ''))
			RETURNING id, mood, energy_level, COALESCE(note, ''), created_at
		`, uid, string(label), body.EnergyLevel, strings.TrimSpace(body.Note)).
			Scan(&c.ID, &c.Mood, &c.EnergyLevel, &c.Note, &c.CreatedAt)
		if err != nil {
			http.Error(w, "insert failed", http.StatusInternalServerError)
			return
		}

		env := analytics.FromRequest(r)
		env.UserID = uid
		_ = analytics.Log(r.Context(), dbx, env, "mood_checked_in", map[string]any{
			"mood":         c.Mood,
			"energy_level": c.EnergyLevel,
		}, analytics.SourceEventKeyFromRequest(r))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"checkin":          c,
			"suggested_ritual": RitualFor(label),
		})
	}
}

// GET /api/mood — today's latest check-in, 404 if none yet
func LatestHandler(dbx *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := analytics.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		state, energy := Latest(dbx, uid, time.Now())
		if state == nil {
			http.Error(w, "no check-in today", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"mood":             string(state.Label),
			"energy_level":     energy,
			"suggested_ritual": state.SuggestedRitual,
		})
	}
}
