package tasks

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strings"

	"mente-assistant-backend/internal/analytics"
	"mente-assistant-backend/internal/engine"
	"mente-assistant-backend/internal/session"
)

// ----------------------
//        TASKS
// ----------------------

// GET /api/tasks?status=active
func GetTasksHandler(dbx *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := analytics.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		status := strings.TrimSpace(r.URL.Query().Get("status"))

		query := `
			SELECT id, title, type, energy_required, COALESCE(due_date, ''), xp_reward, status, created_at
			FROM tasks
			WHERE user_id = $1
			ORDER BY created_at DESC
		`
		args := []any{uid}
		if status != "" {
			query = `
				SELECT id, title, type, energy_required, COALESCE(due_date, ''), xp_reward, status, created_at
				FROM tasks
				WHERE user_id = $1 AND status = $2
				ORDER BY created_at DESC
			`
			args = append(args, status)
		}

		rows, err := dbx.Query(query, args...)
		if err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}
		defer rows.Close()

		out := []Task{}
		for rows.Next() {
			var t Task
			if err := rows.Scan(&t.ID, &t.Title, &t.Type, &t.EnergyRequired, &t.DueDate, &t.XPReward, &t.Status, &t.CreatedAt); err != nil {
				http.Error(w, "db scan error", http.StatusInternalServerError)
				return
			}
			out = append(out, t)
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(out)
	}
}

// POST /api/tasks
func CreateTaskHandler(dbx *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := analytics.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var body struct {
			Title          string `json:"title"`
			Type           string `json:"type"`
			EnergyRequired string `json:"energy_required"`
			DueDate        string `json:"due_date"`
			XPReward       int    `json:"xp_reward"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)

		body.Title = strings.TrimSpace(body.Title)
		if body.Title == "" {
			http.Error(w, "title required", http.StatusBadRequest)
			return
		}

		typ, ok := engine.ParseTaskType(body.Type)
		if !ok {
			http.Error(w, "invalid type", http.StatusBadRequest)
			return
		}

		tier, ok := engine.ParseEnergyTier(body.EnergyRequired)
		if !ok {
			tier = engine.EnergyMedium
		}

		if body.XPReward < 0 {
			body.XPReward = 0
		}

		var t Task
		err := dbx.QueryRow(`
			INSERT INTO tasks (user_id, title, type, energy_required, due_date, xp_reward, status)
			VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, 'active')
			RETURNING id, title, type, energy_required, COALESCE(due_date, ''), xp_reward, status, created_at
		`, uid, body.Title, string(typ), string(tier), strings.TrimSpace(body.DueDate), body.XPReward).
			Scan(&t.ID, &t.Title, &t.Type, &t.EnergyRequired, &t.DueDate, &t.XPReward, &t.Status, &t.CreatedAt)
		if err != nil {
			http.Error(w, "insert failed", http.StatusInternalServerError)
			return
		}

		env := analytics.FromRequest(r)
		env.UserID = uid
		_ = analytics.Log(r.Context(), dbx, env, "task_created", map[string]any{
			"task_id":         t.ID,
			"type":            t.Type,
			"energy_required": t.EnergyRequired,
			"has_due_date":    t.DueDate != "",
		}, analytics.SourceEventKeyFromRequest(r))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(t)
	}
}

// POST /api/tasks/status
// Marking a task done or abandoned is also the outcome feed for the
// behavioral profile of the user's live assistant session.
func SetTaskStatusHandler(dbx *sql.DB, sessions *session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := analytics.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var body struct {
			TaskID           int     `json:"task_id"`
			Status           string  `json:"status"`
			TimeSpentMinutes float64 `json:"time_spent_minutes"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)

		body.Status = strings.TrimSpace(strings.ToLower(body.Status))
		if body.Status != "done" && body.Status != "abandoned" && body.Status != "active" {
			http.Error(w, "invalid status", http.StatusBadRequest)
			return
		}

		var t Task
		err := dbx.QueryRow(`
			UPDATE tasks
			SET status = $1
			WHERE id = $2 AND user_id = $3
			RETURNING id, title, type, energy_required, COALESCE(due_date, ''), xp_reward, status, created_at
		`, body.Status, body.TaskID, uid).
			Scan(&t.ID, &t.Title, &t.Type, &t.EnergyRequired, &t.DueDate, &t.XPReward, &t.Status, &t.CreatedAt)
		if err == sql.ErrNoRows {
			http.Error(w, "task not found", http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, "update failed", http.StatusInternalServerError)
			return
		}

		eventName := ""
		switch body.Status {
		case "done":
			eventName = "task_completed"
			sess := sessions.Get(uid)
			sess.Profile.RecordOutcome(t.ToEngine(), body.TimeSpentMinutes, true, sess.LastSeen)
		case "abandoned":
			eventName = "task_abandoned"
			sess := sessions.Get(uid)
			sess.Profile.RecordOutcome(t.ToEngine(), body.TimeSpentMinutes, false, sess.LastSeen)
		}

		if eventName != "" {
			env := analytics.FromRequest(r)
			env.UserID = uid
			_ = analytics.Log(r.Context(), dbx, env, eventName, map[string]any{
				"task_id":            t.ID,
				"type":               t.Type,
				"time_spent_minutes": body.TimeSpentMinutes,
			}, analytics.SourceEventKeyFromRequest(r))
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(t)
	}
}

// DELETE /api/tasks?id=42
func DeleteTaskHandler(dbx *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := analytics.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var body struct {
			TaskID int `json:"task_id"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)

		res, err := dbx.Exec(`DELETE FROM tasks WHERE id = $1 AND user_id = $2`, body.TaskID, uid)
		if err != nil {
			http.Error(w, "delete failed", http.StatusInternalServerError)
			return
		}
		if n, _ := res.RowsAffected(); n == 0 {
			http.Error(w, "task not found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}
}
