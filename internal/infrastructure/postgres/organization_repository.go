package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gestion-stock/internal/domain"
	"github.com/jhoicas/gestion-stock/internal/domain/entity"
	"github.com/jhoicas/gestion-stock/internal/domain/repository"
)

var _ repository.OrganizationRepository = (*OrganizationRepo)(nil)

const organizationColumns = `id, owner_id, name, logo_url, color, whatsapp_phone, created_at, updated_at`

// OrganizationRepo una fila por dueño (owner_id UNIQUE).
type OrganizationRepo struct {
	q Querier
}

// NewOrganizationRepository construye el adaptador.
func NewOrganizationRepository(q Querier) *OrganizationRepo {
	return &OrganizationRepo{q: q}
}

func scanOrganization(row pgx.Row) (*entity.Organization, error) {
	var o entity.Organization
	if err := row.Scan(&o.ID, &o.OwnerID, &o.Name, &o.LogoURL, &o.Color, &o.WhatsAppPhone, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}
	return &o, nil
}

// Create ErrDuplicate si el dueño ya tiene organización.
func (r *OrganizationRepo) Create(ctx context.Context, o *entity.Organization) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO organizations (`+organizationColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		o.ID, o.OwnerID, o.Name, o.LogoURL, o.Color, o.WhatsAppPhone, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert organization: %w", err)
	}
	return nil
}

func (r *OrganizationRepo) GetByOwner(ctx context.Context, ownerID string) (*entity.Organization, error) {
	if !validID(ownerID) {
		return nil, nil
	}
	o, err := scanOrganization(r.q.QueryRow(ctx,
		`SELECT `+organizationColumns+` FROM organizations WHERE owner_id = $1`, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get organization: %w", err)
	}
	return o, nil
}

func (r *OrganizationRepo) Update(ctx context.Context, o *entity.Organization) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE organizations SET name = $3, logo_url = $4, color = $5, whatsapp_phone = $6, updated_at = $7
		WHERE id = $1 AND owner_id = $2`,
		o.ID, o.OwnerID, o.Name, o.LogoURL, o.Color, o.WhatsAppPhone, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update organization: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *OrganizationRepo) List(ctx context.Context, limit, offset int) ([]*entity.Organization, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+organizationColumns+` FROM organizations ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limitArg(limit), max(offset, 0))
	if err != nil {
		return nil, fmt.Errorf("list organizations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Organization
	for rows.Next() {
		o, err := scanOrganization(rows)
		if err != nil {
			return nil, fmt.Errorf("scan organization: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}
