package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/SscSPs/procurement_backoffice_app/internal/apperrors"
	"github.com/SscSPs/procurement_backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/procurement_backoffice_app/internal/core/ports/repositories"
	"github.com/SscSPs/procurement_backoffice_app/internal/models"
	"github.com/SscSPs/procurement_backoffice_app/internal/utils/mapping"
	"github.com/SscSPs/procurement_backoffice_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxOrderRepository struct {
	BaseRepository
}

// newPgxOrderRepository creates a new repository for purchase order data.
func newPgxOrderRepository(pool *pgxpool.Pool) portsrepo.OrderRepositoryFacade {
	return &PgxOrderRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxOrderRepository implements portsrepo.OrderRepositoryFacade
var _ portsrepo.OrderRepositoryFacade = (*PgxOrderRepository)(nil)

// SavePurchaseOrder persists the header and all of its lines within one DB
// transaction. Either every row lands or none does.
func (r *PgxOrderRepository) SavePurchaseOrder(ctx context.Context, order domain.PurchaseOrder, lines []domain.PurchaseOrderLine) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Defer rollback in case of error; ignored once the transaction commits.
	defer r.Rollback(ctx, tx)

	modelOrder := mapping.ToModelPurchaseOrder(order)
	headerQuery := `
		INSERT INTO purchase_orders (
			po_number, supplier_id, branch_id, order_date, total, status,
			created_at, last_updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = tx.Exec(ctx, headerQuery,
		modelOrder.PONumber,
		modelOrder.SupplierID,
		modelOrder.BranchID,
		modelOrder.OrderDate,
		modelOrder.Total,
		modelOrder.Status,
		modelOrder.CreatedAt,
		modelOrder.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewConflictError("purchase order " + modelOrder.PONumber + " already exists")
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewValidationFailedError("referenced supplier or branch does not exist")
			}
		}
		return apperrors.NewAppError(500, "failed to insert purchase order "+modelOrder.PONumber, err)
	}

	// Insert all lines in one batch; any failure aborts the whole submission.
	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO purchase_order_lines (
			line_id, po_number, product_id, quantity, amount, received_days,
			created_at, last_updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	for _, line := range lines {
		modelLine := mapping.ToModelPurchaseOrderLine(line)
		batch.Queue(lineQuery,
			modelLine.LineID,
			modelLine.PONumber,
			modelLine.ProductID,
			modelLine.Quantity,
			modelLine.Amount,
			modelLine.ReceivedDays,
			modelLine.CreatedAt,
			modelLine.LastUpdatedAt,
		)
	}

	br := tx.SendBatch(ctx, batch)
	err = br.Close() // Close checks every command in the batch for errors
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert lines for purchase order "+modelOrder.PONumber, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return err
	}

	return nil
}

const orderSelectColumns = `
	o.po_number, o.supplier_id, o.branch_id, o.order_date, o.total, o.status,
	o.created_at, o.last_updated_at, s.company_name
`

func scanOrderRow(row pgx.Row) (models.PurchaseOrder, error) {
	var m models.PurchaseOrder
	err := row.Scan(
		&m.PONumber,
		&m.SupplierID,
		&m.BranchID,
		&m.OrderDate,
		&m.Total,
		&m.Status,
		&m.CreatedAt,
		&m.LastUpdatedAt,
		&m.SupplierName,
	)
	return m, err
}

// FindOrderByPONumber retrieves a purchase order with its supplier name and
// lines eagerly attached.
func (r *PgxOrderRepository) FindOrderByPONumber(ctx context.Context, poNumber string) (*domain.PurchaseOrder, error) {
	query := `
		SELECT ` + orderSelectColumns + `
		FROM purchase_orders o
		JOIN suppliers s ON o.supplier_id = s.supplier_id
		WHERE o.po_number = $1;
	`
	modelOrder, err := scanOrderRow(r.Pool.QueryRow(ctx, query, poNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find purchase order "+poNumber, err)
	}

	lines, err := r.findLinesByPONumber(ctx, poNumber)
	if err != nil {
		return nil, err
	}

	domainOrder := mapping.ToDomainPurchaseOrder(modelOrder)
	domainOrder.Lines = lines
	return &domainOrder, nil
}

// findLinesByPONumber retrieves all lines owned by one purchase order.
func (r *PgxOrderRepository) findLinesByPONumber(ctx context.Context, poNumber string) ([]domain.PurchaseOrderLine, error) {
	query := `
		SELECT line_id, po_number, product_id, quantity, amount, received_days, created_at, last_updated_at
		FROM purchase_order_lines
		WHERE po_number = $1
		ORDER BY created_at, line_id;
	`
	rows, err := r.Pool.Query(ctx, query, poNumber)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for purchase order "+poNumber, err)
	}
	defer rows.Close()

	lines := []models.PurchaseOrderLine{}
	for rows.Next() {
		var l models.PurchaseOrderLine
		if err := rows.Scan(
			&l.LineID,
			&l.PONumber,
			&l.ProductID,
			&l.Quantity,
			&l.Amount,
			&l.ReceivedDays,
			&l.CreatedAt,
			&l.LastUpdatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan line row for purchase order "+poNumber, err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating line rows for purchase order "+poNumber, err)
	}

	return mapping.ToDomainPurchaseOrderLineSlice(lines), nil
}

// findLinesByPONumbers retrieves the lines for a list of purchase orders,
// grouped by PO number. Orders without lines get an empty slice.
func (r *PgxOrderRepository) findLinesByPONumbers(ctx context.Context, poNumbers []string) (map[string][]domain.PurchaseOrderLine, error) {
	linesMap := make(map[string][]domain.PurchaseOrderLine, len(poNumbers))
	for _, po := range poNumbers {
		linesMap[po] = []domain.PurchaseOrderLine{}
	}
	if len(poNumbers) == 0 {
		return linesMap, nil
	}

	query := `
		SELECT line_id, po_number, product_id, quantity, amount, received_days, created_at, last_updated_at
		FROM purchase_order_lines
		WHERE po_number = ANY($1)
		ORDER BY po_number, created_at, line_id;
	`
	rows, err := r.Pool.Query(ctx, query, poNumbers)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for purchase orders", err)
	}
	defer rows.Close()

	for rows.Next() {
		var l models.PurchaseOrderLine
		if err := rows.Scan(
			&l.LineID,
			&l.PONumber,
			&l.ProductID,
			&l.Quantity,
			&l.Amount,
			&l.ReceivedDays,
			&l.CreatedAt,
			&l.LastUpdatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan line row during batch fetch", err)
		}
		domainLine := mapping.ToDomainPurchaseOrderLine(l)
		linesMap[domainLine.PONumber] = append(linesMap[domainLine.PONumber], domainLine)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating line rows during batch fetch", err)
	}

	return linesMap, nil
}

// CountLines returns the number of lines owned by a purchase order; 0 when
// the order has no lines or does not exist.
func (r *PgxOrderRepository) CountLines(ctx context.Context, poNumber string) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM purchase_order_lines WHERE po_number = $1;`, poNumber).Scan(&count)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to count lines for purchase order "+poNumber, err)
	}
	return count, nil
}

// CountAll returns the total purchase order count.
func (r *PgxOrderRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM purchase_orders;`).Scan(&count)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to count purchase orders", err)
	}
	return count, nil
}

// CountByStatus groups purchase orders by status. Statuses with no orders do
// not appear in the result.
func (r *PgxOrderRepository) CountByStatus(ctx context.Context) ([]domain.StatusCount, error) {
	query := `
		SELECT status, COUNT(*)
		FROM purchase_orders
		GROUP BY status
		ORDER BY status;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to count purchase orders by status", err)
	}
	defer rows.Close()

	counts := []domain.StatusCount{}
	for rows.Next() {
		var sc domain.StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan status count row", err)
		}
		counts = append(counts, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating status count rows", err)
	}

	return counts, nil
}

// SearchOrders retrieves headers whose PO number, supplier company name or
// status matches the keyword. PO number and company name match partially and
// case-insensitively; status matches the exact stored value.
func (r *PgxOrderRepository) SearchOrders(ctx context.Context, keyword string, limit int, offset int) ([]domain.PurchaseOrder, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + orderSelectColumns + `
		FROM purchase_orders o
		JOIN suppliers s ON o.supplier_id = s.supplier_id
		WHERE o.po_number ILIKE '%' || $1 || '%'
		   OR s.company_name ILIKE '%' || $1 || '%'
		   OR o.status = $1
		ORDER BY o.order_date DESC, o.created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, keyword, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to search purchase orders", err)
	}
	defer rows.Close()

	return collectOrders(rows)
}

// ReportBySupplierAndDate retrieves one supplier's orders within the
// inclusive [start, end] date range, most recent first, ties broken by
// insertion order. Lines are batch-loaded and attached.
func (r *PgxOrderRepository) ReportBySupplierAndDate(ctx context.Context, supplierID string, start, end time.Time) ([]domain.PurchaseOrder, error) {
	query := `
		SELECT ` + orderSelectColumns + `
		FROM purchase_orders o
		JOIN suppliers s ON o.supplier_id = s.supplier_id
		WHERE o.supplier_id = $1
		  AND o.order_date >= $2
		  AND o.order_date <= $3
		ORDER BY o.order_date DESC, o.created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, supplierID, start, end)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query report for supplier "+supplierID, err)
	}
	defer rows.Close()

	orders, err := collectOrders(rows)
	if err != nil {
		return nil, err
	}

	poNumbers := make([]string, len(orders))
	for i, o := range orders {
		poNumbers[i] = o.PONumber
	}
	linesMap, err := r.findLinesByPONumbers(ctx, poNumbers)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Lines = linesMap[orders[i].PONumber]
	}

	return orders, nil
}

// ListOrders retrieves a cursor-paginated list of purchase orders using
// token-based pagination. It returns the orders, a token for the next page,
// and an error.
func (r *PgxOrderRepository) ListOrders(ctx context.Context, limit int, nextToken *string) ([]domain.PurchaseOrder, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	baseQuery := `
		SELECT ` + orderSelectColumns + `
		FROM purchase_orders o
		JOIN suppliers s ON o.supplier_id = s.supplier_id
	`
	// Ordering is crucial and must be stable.
	orderByClause := `ORDER BY o.order_date DESC, o.created_at DESC`

	var rows pgx.Rows
	var err error
	args := []interface{}{}

	if nextToken != nil && *nextToken != "" {
		lastOrderDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}

		// Tuple comparison is concise and efficient in Postgres
		cursorClause := `WHERE (o.order_date, o.created_at) < ($1, $2)`
		args = append(args, lastOrderDate, lastCreatedAt)

		query := baseQuery + " " + cursorClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	} else {
		query := baseQuery + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	}

	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query purchase orders", err)
	}
	defer rows.Close()

	orders, err := collectOrders(rows)
	if err != nil {
		return nil, nil, err
	}

	var nextTokenVal *string
	if len(orders) > limit {
		// The token points to the last item included in this response page;
		// the next query starts after it.
		lastOrder := orders[limit-1]
		token := pagination.EncodeToken(lastOrder.OrderDate, lastOrder.CreatedAt)
		nextTokenVal = &token
		orders = orders[:limit]
	}

	return orders, nextTokenVal, nil
}

// UpdateOrderStatus replaces the status of a purchase order.
func (r *PgxOrderRepository) UpdateOrderStatus(ctx context.Context, poNumber string, status domain.OrderStatus, updatedAt time.Time) error {
	query := `
		UPDATE purchase_orders
		SET status = $2,
		    last_updated_at = $3
		WHERE po_number = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, poNumber, status, updatedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status of purchase order "+poNumber, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("purchase order " + poNumber + " not found for status update")
	}
	return nil
}

// DeletePurchaseOrder removes a header; its lines cascade with it.
func (r *PgxOrderRepository) DeletePurchaseOrder(ctx context.Context, poNumber string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM purchase_orders WHERE po_number = $1;`, poNumber)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete purchase order "+poNumber, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("purchase order " + poNumber + " not found for delete")
	}
	return nil
}

// collectOrders scans header rows (with joined supplier name) into domain
// purchase orders.
func collectOrders(rows pgx.Rows) ([]domain.PurchaseOrder, error) {
	orders := []domain.PurchaseOrder{}
	for rows.Next() {
		m, err := scanOrderRow(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan purchase order row", err)
		}
		orders = append(orders, mapping.ToDomainPurchaseOrder(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating purchase order rows", err)
	}
	return orders, nil
}
