package repository

import (
	"context"
	"fmt"

	"game-catalog/internal/data/entity"
	"game-catalog/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	FindAll(ctx context.Context) ([]*entity.Company, error)
	FindDevelopersByGameID(ctx context.Context, gameID uuid.UUID) ([]*entity.Company, error)
	FindPublishersByGameID(ctx context.Context, gameID uuid.UUID) ([]*entity.Company, error)
	FindByPlatformIDs(ctx context.Context, platformIDs []uuid.UUID) (map[uuid.UUID][]*entity.Company, error)
}

type companyRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCompanyRepository(db database.PgxIface, log *zap.Logger) CompanyRepository {
	return &companyRepository{
		db:  db,
		log: log.With(zap.String("repository", "company")),
	}
}

const companyColumns = `c.id, c.name, c.is_dev, c.is_pub, c.opened_at, c.closed_at, c.created_at`

func scanCompany(row pgx.Row) (*entity.Company, error) {
	var c entity.Company
	if err := row.Scan(&c.ID, &c.Name, &c.IsDev, &c.IsPub, &c.OpenedAt, &c.ClosedAt, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *companyRepository) Create(ctx context.Context, company *entity.Company) error {
	query := `
		INSERT INTO companies (id, name, is_dev, is_pub, opened_at, closed_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		company.ID,
		company.Name,
		company.IsDev,
		company.IsPub,
		company.OpenedAt,
		company.ClosedAt,
		company.CreatedAt,
	)
	if err != nil {
		if classified := classifyPgError(err); classified != nil {
			return fmt.Errorf("company %s: %w", company.Name, classified)
		}
		r.log.Error("Failed to create company",
			zap.Error(err),
			zap.String("name", company.Name),
		)
		return fmt.Errorf("create company %s: %w", company.Name, err)
	}

	return nil
}

func (r *companyRepository) FindAll(ctx context.Context) ([]*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies c ORDER BY c.name`
	return r.list(ctx, "all", query)
}

func (r *companyRepository) FindDevelopersByGameID(ctx context.Context, gameID uuid.UUID) ([]*entity.Company, error) {
	query := `SELECT ` + companyColumns + `
		FROM companies c
		INNER JOIN game_developers gd ON c.id = gd.company_id
		WHERE gd.game_id = $1
		ORDER BY c.name`
	return r.list(ctx, "developers", query, gameID)
}

func (r *companyRepository) FindPublishersByGameID(ctx context.Context, gameID uuid.UUID) ([]*entity.Company, error) {
	query := `SELECT ` + companyColumns + `
		FROM companies c
		INNER JOIN game_publishers gp ON c.id = gp.company_id
		WHERE gp.game_id = $1
		ORDER BY c.name`
	return r.list(ctx, "publishers", query, gameID)
}

// FindByPlatformIDs returns the manufacturers keyed by platform.
func (r *companyRepository) FindByPlatformIDs(ctx context.Context, platformIDs []uuid.UUID) (map[uuid.UUID][]*entity.Company, error) {
	result := make(map[uuid.UUID][]*entity.Company, len(platformIDs))
	if len(platformIDs) == 0 {
		return result, nil
	}

	query := `SELECT pc.platform_id, ` + companyColumns + `
		FROM companies c
		INNER JOIN platform_companies pc ON c.id = pc.company_id
		WHERE pc.platform_id = ANY($1::uuid[])
		ORDER BY c.name`

	rows, err := r.db.Query(ctx, query, uuidStrings(platformIDs))
	if err != nil {
		r.log.Error("Failed to find manufacturers", zap.Error(err))
		return nil, fmt.Errorf("find manufacturers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var platformID uuid.UUID
		var c entity.Company
		if err := rows.Scan(&platformID, &c.ID, &c.Name, &c.IsDev, &c.IsPub, &c.OpenedAt, &c.ClosedAt, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan manufacturer row: %w", err)
		}
		result[platformID] = append(result[platformID], &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate manufacturer rows: %w", err)
	}

	return result, nil
}

func (r *companyRepository) list(ctx context.Context, kind, query string, args ...any) ([]*entity.Company, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list companies",
			zap.Error(err),
			zap.String("kind", kind),
		)
		return nil, fmt.Errorf("find %s companies: %w", kind, err)
	}

	companies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*entity.Company, error) {
		return scanCompany(row)
	})
	if err != nil {
		return nil, fmt.Errorf("scan company row: %w", err)
	}
	return companies, nil
}
