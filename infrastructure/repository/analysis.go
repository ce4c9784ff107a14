package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/marketing-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-insights-api/internal/domain"
)

//go:generate mockgen -source=analysis.go -destination=mocks/mock_analysis.go -package=mocks

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	analysisLogTable   = "analysis_log"
	defaultListLimit   = 50
	maxAnalysisListing = 500
)

var analysisColumns = []string{"id", "conversation_id", "question", "intent", "model", "sections", "created_at"}

type AnalysisRepository interface {
	Save(ctx context.Context, entry *domain.AnalysisEntry) (*domain.AnalysisEntry, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.AnalysisEntry, error)
}

type analysisRepository struct {
	conn postgres.Queryer
}

func NewAnalysisRepository(conn postgres.Queryer) AnalysisRepository {
	return &analysisRepository{
		conn: conn,
	}
}

func (r *analysisRepository) Save(ctx context.Context, entry *domain.AnalysisEntry) (*domain.AnalysisEntry, error) {
	query, args, err := buildInsertAnalysisQuery(entry)
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&entry.ID)
	if err != nil {
		logrus.WithError(err).WithField("conversation_id", entry.ConversationID).Error("Erro ao salvar análise")
		return nil, errors.Wrap(err, "erro ao salvar análise")
	}

	return entry, nil
}

func (r *analysisRepository) ListRecent(ctx context.Context, limit int) ([]*domain.AnalysisEntry, error) {
	query, args, err := buildListAnalysesQuery(limit)
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar análises")
	}
	defer rows.Close()

	entries := make([]*domain.AnalysisEntry, 0)
	for rows.Next() {
		var (
			entry    domain.AnalysisEntry
			intent   string
			sections sql.NullString
		)

		if err := rows.Scan(&entry.ID, &entry.ConversationID, &entry.Question, &intent, &entry.Model, &sections, &entry.CreatedAt); err != nil {
			return nil, errors.Wrap(err, "erro ao ler análise")
		}

		entry.Intent = domain.Intent(intent)
		if sections.Valid && sections.String != "" {
			entry.Sections = &domain.AnalysisSections{}
			if err := json.UnmarshalFromString(sections.String, entry.Sections); err != nil {
				return nil, errors.Wrapf(err, "seções inválidas na análise %d", entry.ID)
			}
		}

		entries = append(entries, &entry)
	}

	return entries, rows.Err()
}

func buildInsertAnalysisQuery(entry *domain.AnalysisEntry) (string, []any, error) {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	var sections any
	if entry.Sections != nil {
		encoded, err := json.MarshalToString(entry.Sections)
		if err != nil {
			return "", nil, errors.Wrap(err, "erro ao serializar seções")
		}
		sections = encoded
	}

	return squirrel.
		Insert(analysisLogTable).
		Columns("conversation_id", "question", "intent", "model", "sections", "created_at").
		Values(entry.ConversationID, entry.Question, string(entry.Intent), entry.Model, sections, entry.CreatedAt).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func buildListAnalysesQuery(limit int) (string, []any, error) {
	return squirrel.
		Select(analysisColumns...).
		From(analysisLogTable).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(normalizeLimit(limit))).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func normalizeLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultListLimit
	case limit > maxAnalysisListing:
		return maxAnalysisListing
	default:
		return limit
	}
}
