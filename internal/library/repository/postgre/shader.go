package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"shadergen-srv/internal/library/repository"
	"shadergen-srv/internal/model"
)

// CreateShader - Insert a new saved shader program.
func (r *implRepository) CreateShader(ctx context.Context, opt repository.CreateShaderOptions) (model.ShaderProgram, error) {
	id := uuid.New().String()
	now := time.Now()

	query := `
		INSERT INTO shaders (id, prompt, program, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, prompt, program, created_at
	`

	var sp model.ShaderProgram

	err := r.db.QueryRowContext(ctx, query,
		id, opt.Prompt, []byte(opt.Program), now,
	).Scan(
		&sp.ID, &sp.Prompt, &sp.Program, &sp.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "library.repository.postgre.CreateShader: Failed to insert shader: %v", err)
		return model.ShaderProgram{}, repository.ErrFailedToInsert
	}

	return sp, nil
}

// GetShaderByID - Get a saved shader program by primary key.
func (r *implRepository) GetShaderByID(ctx context.Context, id string) (model.ShaderProgram, error) {
	query := `
		SELECT id, prompt, program, created_at
		FROM shaders
		WHERE id = $1
	`

	var sp model.ShaderProgram

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&sp.ID, &sp.Prompt, &sp.Program, &sp.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return model.ShaderProgram{}, repository.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "library.repository.postgre.GetShaderByID: Failed to get shader: %v", err)
		return model.ShaderProgram{}, fmt.Errorf("GetShaderByID: %w", err)
	}

	return sp, nil
}

// ListShaders - List saved shader programs, newest first.
func (r *implRepository) ListShaders(ctx context.Context, opt repository.ListShadersOptions) ([]model.ShaderProgram, error) {
	query := `
		SELECT id, prompt, program, created_at
		FROM shaders
		ORDER BY created_at DESC
	`

	if opt.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", opt.Limit)
	}
	if opt.Offset > 0 {
		query += fmt.Sprintf(" OFFSET %d", opt.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "library.repository.postgre.ListShaders: Failed to list shaders: %v", err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	var shaders []model.ShaderProgram
	for rows.Next() {
		var sp model.ShaderProgram
		if err := rows.Scan(&sp.ID, &sp.Prompt, &sp.Program, &sp.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListShaders scan: %w", err)
		}
		shaders = append(shaders, sp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListShaders rows: %w", err)
	}

	return shaders, nil
}
