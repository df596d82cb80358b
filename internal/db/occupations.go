package db

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/career-compass/internal/types"
)

// ListOptions filters and paginates occupation queries.
type ListOptions struct {
	Cluster string // filter by career cluster, empty for all
	Query   string // case-insensitive substring match against title
	Limit   int
	Offset  int
}

// ReplaceOccupations swaps the stored dataset for the given records in a
// single transaction. Readers never observe a half-loaded dataset.
func (db *DB) ReplaceOccupations(ctx context.Context, records []types.OccupationRecord) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM occupations`); err != nil {
		return fmt.Errorf("failed to clear occupations: %w", err)
	}

	batch := &pgx.Batch{}
	for _, rec := range records {
		var metadataJSON []byte
		if rec.Metadata != nil {
			metadataJSON, err = json.Marshal(rec.Metadata)
			if err != nil {
				return fmt.Errorf("failed to marshal metadata for %s: %w", rec.SOCCode, err)
			}
		}
		batch.Queue(
			`INSERT INTO occupations
			   (soc_code, title, education_level, median_wage, total_employment, region, metadata, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())`,
			rec.SOCCode, rec.Title, rec.EducationLevel, rec.MedianWage,
			rec.TotalEmployment, rec.Region, metadataJSON,
		)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to insert occupations: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// GetOccupation retrieves one occupation by SOC code. Returns nil when the
// code is not present.
func (db *DB) GetOccupation(ctx context.Context, socCode string) (*types.OccupationRecord, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT soc_code, title, education_level, median_wage, total_employment, region, metadata
		 FROM occupations WHERE soc_code = $1`,
		socCode,
	)

	rec, err := scanOccupation(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get occupation %s: %w", socCode, err)
	}
	return rec, nil
}

// ListOccupations returns a page of occupations matching opts plus the total
// count of matching rows.
func (db *DB) ListOccupations(ctx context.Context, opts ListOptions) ([]types.OccupationRecord, int, error) {
	where, args := buildOccupationFilter(opts)

	var total int
	countQuery := `SELECT COUNT(*) FROM occupations` + where
	if err := db.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count occupations: %w", err)
	}

	query := `SELECT soc_code, title, education_level, median_wage, total_employment, region, metadata
	 FROM occupations` + where + ` ORDER BY soc_code`
	if opts.Limit > 0 {
		args = append(args, opts.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if opts.Offset > 0 {
		args = append(args, opts.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list occupations: %w", err)
	}
	defer rows.Close()

	var records []types.OccupationRecord
	for rows.Next() {
		rec, err := scanOccupation(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan occupation: %w", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read occupations: %w", err)
	}

	return records, total, nil
}

// CountByCluster tallies stored occupations per career cluster. Rows without
// metadata are skipped.
func (db *DB) CountByCluster(ctx context.Context) (map[string]int, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT metadata->>'careerCluster', COUNT(*)
		 FROM occupations
		 WHERE metadata IS NOT NULL
		 GROUP BY 1`)
	if err != nil {
		return nil, fmt.Errorf("failed to count by cluster: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var cluster string
		var n int
		if err := rows.Scan(&cluster, &n); err != nil {
			return nil, fmt.Errorf("failed to scan cluster count: %w", err)
		}
		counts[cluster] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read cluster counts: %w", err)
	}
	return counts, nil
}

func buildOccupationFilter(opts ListOptions) (string, []any) {
	var clauses []string
	var args []any

	if opts.Cluster != "" {
		args = append(args, opts.Cluster)
		clauses = append(clauses, fmt.Sprintf("metadata->>'careerCluster' = $%d", len(args)))
	}
	if opts.Query != "" {
		args = append(args, "%"+opts.Query+"%")
		clauses = append(clauses, fmt.Sprintf("title ILIKE $%d", len(args)))
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func scanOccupation(row pgx.Row) (*types.OccupationRecord, error) {
	var rec types.OccupationRecord
	var metadataJSON []byte

	err := row.Scan(&rec.SOCCode, &rec.Title, &rec.EducationLevel, &rec.MedianWage,
		&rec.TotalEmployment, &rec.Region, &metadataJSON)
	if err != nil {
		return nil, err
	}

	if metadataJSON != nil {
		var md types.OccupationMetadata
		if err := json.Unmarshal(metadataJSON, &md); err != nil {
			return nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
		}
		rec.Metadata = &md
	}

	return &rec, nil
}
