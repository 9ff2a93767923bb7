package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/invorya/stock-alerts/internal/domain/entity"
	"github.com/invorya/stock-alerts/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación de SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un proveedor y asigna el ID generado.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (company_id, name, contact_email, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		supplier.CompanyID, supplier.Name, supplier.ContactEmail, supplier.Phone,
		supplier.CreatedAt, supplier.UpdatedAt,
	).Scan(&supplier.ID)
	if err != nil {
		return fmt.Errorf("create supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *SupplierRepo) GetByID(id int64) (*entity.Supplier, error) {
	query := `
		SELECT id, company_id, name, contact_email, phone, created_at, updated_at
		FROM suppliers WHERE id = $1`
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.CompanyID, &s.Name, &s.ContactEmail, &s.Phone, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// ListByCompany lista proveedores de una empresa con paginación.
func (r *SupplierRepo) ListByCompany(companyID int64, limit, offset int) ([]*entity.Supplier, error) {
	query := `
		SELECT id, company_id, name, contact_email, phone, created_at, updated_at
		FROM suppliers WHERE company_id = $1
		ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.CompanyID, &s.Name, &s.ContactEmail, &s.Phone, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Delete elimina un proveedor por ID.
func (r *SupplierRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	return nil
}

// LinkToProduct inserta o actualiza el vínculo producto-proveedor. Al marcar
// primario se desmarca cualquier otro vínculo primario del producto, para
// sostener el invariante de a lo sumo una fila primaria.
func (r *SupplierRepo) LinkToProduct(productID, supplierID int64, isPrimary bool) error {
	ctx := context.Background()
	if isPrimary {
		unset := `UPDATE product_suppliers SET is_primary = false WHERE product_id = $1 AND supplier_id <> $2`
		if _, err := r.q.Exec(ctx, unset, productID, supplierID); err != nil {
			return fmt.Errorf("unset primary supplier: %w", err)
		}
	}
	query := `
		INSERT INTO product_suppliers (product_id, supplier_id, is_primary, created_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (product_id, supplier_id)
		DO UPDATE SET is_primary = EXCLUDED.is_primary`
	if _, err := r.q.Exec(ctx, query, productID, supplierID, isPrimary); err != nil {
		return fmt.Errorf("link supplier to product: %w", err)
	}
	return nil
}
