package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	apperrors "vidglobe/internal/app/errors"
	"vidglobe/internal/app/model"
	"vidglobe/internal/app/repository"
)

// SQLiteVideoDAO implements repository.VideoDAO on SQLite for local and
// single-node deployments.
type SQLiteVideoDAO struct {
	db *sql.DB
}

// NewSQLiteVideoDAO opens (and if needed creates) the database file and
// ensures the videos table exists.
func NewSQLiteVideoDAO(dbPath string) *SQLiteVideoDAO {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		log.Fatalf("Failed to create database directory: %v\n", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v\n", err)
	}

	dao := &SQLiteVideoDAO{db: db}
	if err := dao.ensureSchema(); err != nil {
		log.Fatalf("Failed to initialize schema: %v\n", err)
	}
	return dao
}

func (dao *SQLiteVideoDAO) ensureSchema() error {
	schema := `CREATE TABLE IF NOT EXISTS videos (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT,
		original_language TEXT,
		target_language TEXT,
		original_url TEXT,
		stored_url TEXT NOT NULL,
		translated_url TEXT,
		transcript TEXT,
		translated_transcript TEXT,
		summary TEXT,
		status TEXT NOT NULL DEFAULT 'pending',
		error_message TEXT,
		metadata TEXT,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_videos_status ON videos(status);
	CREATE INDEX IF NOT EXISTS idx_videos_created_at ON videos(created_at);`
	_, err := dao.db.Exec(schema)
	return err
}

func (dao *SQLiteVideoDAO) Close() error {
	return dao.db.Close()
}

const videoColumns = `id, title, description, original_language, target_language,
	original_url, stored_url, translated_url, transcript, translated_transcript,
	summary, status, error_message, metadata, created_at, updated_at`

func (dao *SQLiteVideoDAO) Insert(ctx context.Context, video *model.Video) error {
	metadata, err := marshalMetadata(video.Metadata)
	if err != nil {
		return err
	}

	insertSQL := `INSERT INTO videos (id, title, description, original_language, target_language,
		original_url, stored_url, status, metadata, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = dao.db.ExecContext(ctx, insertSQL,
		video.ID, video.Title, video.Description, video.OriginalLanguage, video.TargetLanguage,
		video.OriginalURL, video.StoredURL, string(video.Status), metadata,
		video.CreatedAt, video.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert video failed: %w", err)
	}
	return nil
}

func (dao *SQLiteVideoDAO) FindByID(ctx context.Context, id string) (*model.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos WHERE id = ?`
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

func (dao *SQLiteVideoDAO) List(ctx context.Context, status model.Status, limit, offset int) ([]model.Video, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM videos WHERE (? = '' OR status = ?)`
	if err := dao.db.QueryRowContext(ctx, countQuery, string(status), string(status)).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count videos failed: %w", err)
	}

	query := `SELECT ` + videoColumns + ` FROM videos
		WHERE (? = '' OR status = ?)
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?`
	rows, err := dao.db.QueryContext(ctx, query, string(status), string(status), limit, offset)
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

func (dao *SQLiteVideoDAO) BeginProcessing(ctx context.Context, id string) error {
	updateSQL := `UPDATE videos SET status = ?, error_message = '', updated_at = ?
		WHERE id = ? AND status IN (?, ?)`
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

	if _, err := dao.FindByID(ctx, id); err != nil {
		return err
	}
	return apperrors.Conflict("video is already being processed")
}

func (dao *SQLiteVideoDAO) CompleteProcessing(ctx context.Context, id string, results repository.ProcessingResults) error {
	updateSQL := `UPDATE videos SET status = ?, translated_url = ?, summary = ?,
		transcript = ?, translated_transcript = ?, target_language = ?,
		error_message = '', updated_at = ?
		WHERE id = ? AND status = ?`
	result, err := dao.db.ExecContext(ctx, updateSQL,
		string(model.StatusCompleted), results.TranslatedURL, results.Summary,
		results.Transcript, results.TranslatedTranscript, results.TargetLanguage,
		time.Now(), id, string(model.StatusProcessing))
	if err != nil {
		return fmt.Errorf("complete processing failed: %w", err)
	}
	return requireAffected(result, id)
}

func (dao *SQLiteVideoDAO) MarkFailed(ctx context.Context, id string, message string) error {
	updateSQL := `UPDATE videos SET status = ?, error_message = ?, updated_at = ? WHERE id = ?`
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
