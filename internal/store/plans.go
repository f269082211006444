package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/roach88/sprintdeck/internal/calendar"
	"github.com/roach88/sprintdeck/internal/plan"
)

// SavePlan replaces the stored snapshot with the given plan, atomically.
//
// Tasks imported without an ID are assigned one; spreadsheet exports
// often carry row content but no stable key, and the store needs a
// primary key to round-trip against.
func (s *Store) SavePlan(ctx context.Context, p *plan.Plan) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save plan: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"project", "members", "tasks", "holidays"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("save plan: clear %s: %w", table, err)
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO project (id, name, start_date, end_date)
		VALUES (1, ?, ?, ?)
	`, p.Project.Name, dateText(p.Project.StartDate), dateText(p.Project.EndDate))
	if err != nil {
		return fmt.Errorf("save plan: project: %w", err)
	}

	for i, m := range p.Members {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO members (id, name, bandwidth_hours, position)
			VALUES (?, ?, ?, ?)
		`, m.ID, m.Name, nullFloat(m.BandwidthHours), i)
		if err != nil {
			return fmt.Errorf("save plan: member %s: %w", m.ID, err)
		}
	}

	for i, t := range p.Tasks {
		id := t.ID
		if id == "" {
			id = uuid.NewString()
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO tasks (id, owner, status, start_date, end_date, estimated_hours, completed, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, id, t.Owner, t.Status, dateText(t.StartDate), dateText(t.EndDate), nullFloat(t.EstimatedHours), t.Completed, i)
		if err != nil {
			return fmt.Errorf("save plan: task %s: %w", id, err)
		}
	}

	for _, d := range p.Holidays {
		if _, err := tx.ExecContext(ctx, "INSERT INTO holidays (date) VALUES (?)", d.String()); err != nil {
			return fmt.Errorf("save plan: holiday %s: %w", d, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save plan: %w", err)
	}
	return nil
}

// LoadPlan reads the stored snapshot back. An empty database yields an
// empty, unconfigured plan rather than an error.
func (s *Store) LoadPlan(ctx context.Context) (*plan.Plan, error) {
	p := &plan.Plan{}

	var name string
	var start, end sql.NullString
	err := s.db.QueryRowContext(ctx,
		"SELECT name, start_date, end_date FROM project WHERE id = 1",
	).Scan(&name, &start, &end)
	switch {
	case err == sql.ErrNoRows:
		// No snapshot imported yet.
	case err != nil:
		return nil, fmt.Errorf("load plan: project: %w", err)
	default:
		p.Project.Name = name
		if p.Project.StartDate, err = parseDateText(start); err != nil {
			return nil, fmt.Errorf("load plan: project start: %w", err)
		}
		if p.Project.EndDate, err = parseDateText(end); err != nil {
			return nil, fmt.Errorf("load plan: project end: %w", err)
		}
	}

	if p.Members, err = s.loadMembers(ctx); err != nil {
		return nil, err
	}
	if p.Tasks, err = s.loadTasks(ctx); err != nil {
		return nil, err
	}
	if p.Holidays, err = s.loadHolidays(ctx); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Store) loadMembers(ctx context.Context) ([]plan.Member, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, bandwidth_hours FROM members ORDER BY position",
	)
	if err != nil {
		return nil, fmt.Errorf("load plan: members: %w", err)
	}
	defer rows.Close()

	var members []plan.Member
	for rows.Next() {
		var m plan.Member
		var bw sql.NullFloat64
		if err := rows.Scan(&m.ID, &m.Name, &bw); err != nil {
			return nil, fmt.Errorf("load plan: member row: %w", err)
		}
		if bw.Valid {
			m.BandwidthHours = &bw.Float64
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (s *Store) loadTasks(ctx context.Context) ([]plan.Task, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, owner, status, start_date, end_date, estimated_hours, completed
		FROM tasks ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("load plan: tasks: %w", err)
	}
	defer rows.Close()

	var tasks []plan.Task
	for rows.Next() {
		var t plan.Task
		var start, end sql.NullString
		var est sql.NullFloat64
		if err := rows.Scan(&t.ID, &t.Owner, &t.Status, &start, &end, &est, &t.Completed); err != nil {
			return nil, fmt.Errorf("load plan: task row: %w", err)
		}
		if t.StartDate, err = parseDateText(start); err != nil {
			return nil, fmt.Errorf("load plan: task %s start: %w", t.ID, err)
		}
		if t.EndDate, err = parseDateText(end); err != nil {
			return nil, fmt.Errorf("load plan: task %s end: %w", t.ID, err)
		}
		if est.Valid {
			t.EstimatedHours = &est.Float64
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (s *Store) loadHolidays(ctx context.Context) ([]calendar.Date, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT date FROM holidays ORDER BY date")
	if err != nil {
		return nil, fmt.Errorf("load plan: holidays: %w", err)
	}
	defer rows.Close()

	var holidays []calendar.Date
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, fmt.Errorf("load plan: holiday row: %w", err)
		}
		d, err := calendar.Parse(text)
		if err != nil {
			return nil, fmt.Errorf("load plan: holiday %q: %w", text, err)
		}
		holidays = append(holidays, d)
	}
	return holidays, rows.Err()
}

// dateText converts an optional date to its nullable text column form.
func dateText(d *calendar.Date) any {
	if d == nil {
		return nil
	}
	return d.String()
}

// nullFloat converts an optional float to its nullable column form.
func nullFloat(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}

// parseDateText converts a nullable text column back to an optional date.
func parseDateText(s sql.NullString) (*calendar.Date, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	d, err := calendar.Parse(s.String)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
