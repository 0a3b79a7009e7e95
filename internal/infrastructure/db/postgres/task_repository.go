package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/taskdeck/todo-system/internal/core/domain"
)

const taskColumns = "id, title, is_completed, owner_id, created_at, updated_at"

// TaskRepository persists tasks in the tasks table. Single-task operations
// filter by id AND owner_id in one statement, so the ownership check and the
// write observe the same row atomically.
type TaskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	query := `INSERT INTO tasks (id, title, is_completed, owner_id, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		task.ID, task.Title, task.IsCompleted, task.OwnerID, task.CreatedAt, task.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks
	          WHERE owner_id = $1
	          ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task := &domain.Task{}
		if err := rows.Scan(&task.ID, &task.Title, &task.IsCompleted, &task.OwnerID, &task.CreatedAt, &task.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (r *TaskRepository) FindOwned(ctx context.Context, taskID, ownerID uuid.UUID) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks
	          WHERE id = $1 AND owner_id = $2`

	return r.scanTask(r.db.QueryRowContext(ctx, query, taskID, ownerID))
}

func (r *TaskRepository) UpdateTitle(ctx context.Context, taskID, ownerID uuid.UUID, title string) (*domain.Task, error) {
	query := `UPDATE tasks SET title = $3, updated_at = now()
	          WHERE id = $1 AND owner_id = $2
	          RETURNING ` + taskColumns

	return r.scanTask(r.db.QueryRowContext(ctx, query, taskID, ownerID, title))
}

func (r *TaskRepository) ToggleCompleted(ctx context.Context, taskID, ownerID uuid.UUID) (*domain.Task, error) {
	query := `UPDATE tasks SET is_completed = NOT is_completed, updated_at = now()
	          WHERE id = $1 AND owner_id = $2
	          RETURNING ` + taskColumns

	return r.scanTask(r.db.QueryRowContext(ctx, query, taskID, ownerID))
}

func (r *TaskRepository) Delete(ctx context.Context, taskID, ownerID uuid.UUID) (bool, error) {
	query := `DELETE FROM tasks WHERE id = $1 AND owner_id = $2`

	res, err := r.db.ExecContext(ctx, query, taskID, ownerID)
	if err != nil {
		return false, fmt.Errorf("delete task: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete task: %w", err)
	}
	return affected > 0, nil
}

func (r *TaskRepository) scanTask(row *sql.Row) (*domain.Task, error) {
	task := &domain.Task{}
	err := row.Scan(&task.ID, &task.Title, &task.IsCompleted, &task.OwnerID, &task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	return task, nil
}
