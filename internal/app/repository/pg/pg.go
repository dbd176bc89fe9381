package pg

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	apperrors "vidglobe/internal/app/errors"
	"vidglobe/internal/app/model"
	"vidglobe/internal/app/repository"
)

// PostgresVideoDAO implements repository.VideoDAO on PostgreSQL.
type PostgresVideoDAO struct {
	db *sql.DB
}

// NewPostgresVideoDAO opens a connection with the given DSN.
func NewPostgresVideoDAO(connectionString string) (*PostgresVideoDAO, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, err
	}
	return &PostgresVideoDAO{db: db}, nil
}

func (dao *PostgresVideoDAO) Close() error {
	return dao.db.Close()
}

const videoColumns = `id, title, description, original_language, target_language,
	original_url, stored_url, translated_url, transcript, translated_transcript,
	summary, status, error_message, metadata, created_at, updated_at`

func (dao *PostgresVideoDAO) Insert(ctx context.Context, video *model.Video) error {
	metadata, err := marshalMetadata(video.Metadata)
	if err != nil {
		return err
	}

	insertSQL := `INSERT INTO videos (id, title, description, original_language, target_language,
		original_url, stored_url, status, metadata, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = dao.db.ExecContext(ctx, insertSQL,
		video.ID, video.Title, video.Description, video.OriginalLanguage, video.TargetLanguage,
		video.OriginalURL, video.StoredURL, string(video.Status), metadata,
		video.CreatedAt, video.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert video failed: %w", err)
	}
	return nil
}

func (dao *PostgresVideoDAO) FindByID(ctx context.Context, id string) (*model.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos WHERE id = $1`
	row := dao.db.QueryRowContext(ctx, query, id)

	video, err := scanVideo(row)
	if err == sql.ErrNoRows {
		return nil, apperrors.NotFound("video", id)
	}
	if err != nil {
		return nil, fmt.Errorf("query video failed: %w", err)
	}
	return video, nil
}

func (dao *PostgresVideoDAO) List(ctx context.Context, status model.Status, limit, offset int) ([]model.Video, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM videos WHERE ($1 = '' OR status = $1)`
	if err := dao.db.QueryRowContext(ctx, countQuery, string(status)).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count videos failed: %w", err)
	}

	query := `SELECT ` + videoColumns + ` FROM videos
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := dao.db.QueryContext(ctx, query, string(status), limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("query videos failed: %w", err)
	}
	defer rows.Close()

	var videos []model.Video
	for rows.Next() {
		video, err := scanVideo(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan video failed: %w", err)
		}
		videos = append(videos, *video)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration failed: %w", err)
	}
	return videos, total, nil
}

func (dao *PostgresVideoDAO) BeginProcessing(ctx context.Context, id string) error {
	updateSQL := `UPDATE videos SET status = $1, error_message = '', updated_at = $2
		WHERE id = $3 AND status IN ($4, $5)`
	result, err := dao.db.ExecContext(ctx, updateSQL,
		string(model.StatusProcessing), time.Now(), id,
		string(model.StatusPending), string(model.StatusFailed))
	if err != nil {
		return fmt.Errorf("begin processing failed: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("begin processing failed: %w", err)
	}
	if affected == 1 {
		return nil
	}

	// CAS lost: either the record is missing or another run holds it.
	if _, err := dao.FindByID(ctx, id); err != nil {
		return err
	}
	return apperrors.Conflict("video is already being processed")
}

func (dao *PostgresVideoDAO) CompleteProcessing(ctx context.Context, id string, results repository.ProcessingResults) error {
	updateSQL := `UPDATE videos SET status = $1, translated_url = $2, summary = $3,
		transcript = $4, translated_transcript = $5, target_language = $6,
		error_message = '', updated_at = $7
		WHERE id = $8 AND status = $9`
	result, err := dao.db.ExecContext(ctx, updateSQL,
		string(model.StatusCompleted), results.TranslatedURL, results.Summary,
		results.Transcript, results.TranslatedTranscript, results.TargetLanguage,
		time.Now(), id, string(model.StatusProcessing))
	if err != nil {
		return fmt.Errorf("complete processing failed: %w", err)
	}
	return requireAffected(result, id)
}

func (dao *PostgresVideoDAO) MarkFailed(ctx context.Context, id string, message string) error {
	updateSQL := `UPDATE videos SET status = $1, error_message = $2, updated_at = $3 WHERE id = $4`
	result, err := dao.db.ExecContext(ctx, updateSQL,
		string(model.StatusFailed), message, time.Now(), id)
	if err != nil {
		return fmt.Errorf("mark failed failed: %w", err)
	}
	return requireAffected(result, id)
}

func requireAffected(result sql.Result, id string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected failed: %w", err)
	}
	if affected == 0 {
		return apperrors.NotFound("video", id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanVideo(row rowScanner) (*model.Video, error) {
	var v model.Video
	var description, originalLanguage, targetLanguage sql.NullString
	var originalURL, translatedURL, transcript, translatedTranscript sql.NullString
	var summary, errorMessage, metadata sql.NullString
	var status string

	err := row.Scan(&v.ID, &v.Title, &description, &originalLanguage, &targetLanguage,
		&originalURL, &v.StoredURL, &translatedURL, &transcript, &translatedTranscript,
		&summary, &status, &errorMessage, &metadata, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}

	v.Description = description.String
	v.OriginalLanguage = originalLanguage.String
	v.TargetLanguage = targetLanguage.String
	v.OriginalURL = originalURL.String
	v.TranslatedURL = translatedURL.String
	v.Transcript = transcript.String
	v.TranslatedTranscript = translatedTranscript.String
	v.Summary = summary.String
	v.Status = model.Status(status)
	v.ErrorMessage = errorMessage.String

	if metadata.Valid && metadata.String != "" {
		if err := json.Unmarshal([]byte(metadata.String), &v.Metadata); err != nil {
			return nil, fmt.Errorf("unmarshal metadata failed: %w", err)
		}
	}
	return &v, nil
}

func marshalMetadata(metadata map[string]interface{}) (string, error) {
	if metadata == nil {
		return "{}", nil
	}
	data, err := json.Marshal(metadata)
	if err != nil {
		return "", fmt.Errorf("marshal metadata failed: %w", err)
	}
	return string(data), nil
}
