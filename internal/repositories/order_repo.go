package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/mahin-rahman/greenbasket/internal/database"
	"github.com/mahin-rahman/greenbasket/internal/models"
	"github.com/mahin-rahman/greenbasket/internal/query"
	"github.com/mahin-rahman/greenbasket/pkg/nanoid"
)

var orderTable = query.Table{
	Name: "order",
	Columns: []string{
		"id", "uuid", "user_uuid", "delivery_address", "payment_method",
		"status", "is_delivered", "created_by",
		"created_at", "updated_at", "remarks",
	},
	DefaultSort: "created_at",
}

const orderColumns = `
	"order".id, "order".uuid,
	"order".user_uuid, customer.name,
	"order".delivery_address, "order".payment_method,
	"order".status, "order".is_delivered,
	"order".created_by, creator.name,
	"order".created_at, "order".updated_at, "order".remarks`

const orderFrom = `
	FROM portfolio."order"
	LEFT JOIN hr.users AS customer ON customer.uuid = "order".user_uuid
	LEFT JOIN hr.users AS creator ON creator.uuid = "order".created_by`

type OrderRepository struct {
	db *database.DB
}

func NewOrderRepository(db *database.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func scanOrderRow(scanner rowScanner) (*models.Order, error) {
	var o models.Order

	err := scanner.Scan(
		&o.ID, &o.UUID,
		&o.UserUUID, &o.UserName,
		&o.DeliveryAddress, &o.PaymentMethod,
		&o.Status, &o.IsDelivered,
		&o.CreatedBy, &o.CreatedByName,
		&o.CreatedAt, &o.UpdatedAt, &o.Remarks,
	)
	if err != nil {
		return nil, database.MapPostgresError(err)
	}

	return &o, nil
}

func scanOrderProductRow(scanner rowScanner) (*models.OrderProduct, error) {
	var p models.OrderProduct

	err := scanner.Scan(
		&p.UUID, &p.OrderUUID,
		&p.ProductUUID, &p.ProductName,
		&p.Quantity, &p.IsVatable, &p.Price,
		&p.CreatedAt, &p.UpdatedAt, &p.Remarks,
	)
	if err != nil {
		return nil, database.MapPostgresError(err)
	}

	return &p, nil
}

func (r *OrderRepository) List(ctx context.Context, p query.ListParams) ([]*models.Order, error) {
	sql, args := query.NewBuilder(`SELECT `+orderColumns+orderFrom).
		Apply(orderTable, p,
			query.Column{Table: "customer", Name: "name"},
			query.Column{Table: "creator", Name: "name"},
		).
		SQL()

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}

	return collectRows(rows, scanOrderRow)
}

// GetByUUID returns the order with its line items attached.
func (r *OrderRepository) GetByUUID(ctx context.Context, uuid string) (*models.Order, error) {
	sql := `SELECT ` + orderColumns + orderFrom + ` WHERE "order".uuid = $1`

	order, err := scanOrderRow(r.db.Pool.QueryRow(ctx, sql, uuid))
	if err != nil {
		return nil, err
	}

	itemsSQL := `SELECT ` + orderProductColumns + orderProductFrom + `
		WHERE order_product.order_uuid = $1
		ORDER BY order_product.uuid`

	rows, err := r.db.Pool.Query(ctx, itemsSQL, uuid)
	if err != nil {
		return nil, fmt.Errorf("failed to query order products: %w", err)
	}

	order.Products, err = collectRows(rows, scanOrderProductRow)
	if err != nil {
		return nil, err
	}

	return order, nil
}

// Create inserts the order and all its line items in one transaction.
func (r *OrderRepository) Create(ctx context.Context, o *models.Order) error {
	id, err := nanoid.New()
	if err != nil {
		return fmt.Errorf("failed to generate uuid: %w", err)
	}
	o.UUID = id
	o.CreatedAt = models.NewDateTime(time.Now())

	if o.Status == "" {
		o.Status = models.OrderStatusPending
	}

	err = r.db.WithTransaction(ctx, func(tx pgx.Tx) error {
		orderSQL := `
			INSERT INTO portfolio."order" (uuid, user_uuid, delivery_address, payment_method, status, is_delivered, created_by, created_at, remarks)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`

		_, err := tx.Exec(ctx, orderSQL,
			o.UUID, o.UserUUID, o.DeliveryAddress, o.PaymentMethod,
			o.Status, o.IsDelivered, o.CreatedBy, o.CreatedAt, o.Remarks,
		)
		if err != nil {
			return err
		}

		itemSQL := `
			INSERT INTO portfolio.order_product (uuid, order_uuid, product_uuid, quantity, is_vatable, price, created_at, remarks)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`

		for _, item := range o.Products {
			itemID, err := nanoid.New()
			if err != nil {
				return fmt.Errorf("failed to generate uuid: %w", err)
			}
			item.UUID = itemID
			item.OrderUUID = &o.UUID
			item.CreatedAt = o.CreatedAt

			_, err = tx.Exec(ctx, itemSQL,
				item.UUID, item.OrderUUID, item.ProductUUID,
				item.Quantity, item.IsVatable, item.Price,
				item.CreatedAt, item.Remarks,
			)
			if err != nil {
				return err
			}
		}

		return nil
	})
	return database.MapPostgresError(err)
}

func (r *OrderRepository) Update(ctx context.Context, uuid string, fields map[string]interface{}) error {
	return updateFields(ctx, r.db, `portfolio."order"`, "uuid", uuid, fields)
}

// Delete removes the order; line items cascade in the schema.
func (r *OrderRepository) Delete(ctx context.Context, uuid string) error {
	return execExpectRow(ctx, r.db, `DELETE FROM portfolio."order" WHERE uuid = $1`, uuid)
}

var orderProductTable = query.Table{
	Name: "order_product",
	Columns: []string{
		"uuid", "order_uuid", "product_uuid",
		"quantity", "is_vatable", "price",
		"created_at", "updated_at", "remarks",
	},
	DefaultSort: "created_at",
}

const orderProductColumns = `
	order_product.uuid, order_product.order_uuid,
	order_product.product_uuid, product.name,
	order_product.quantity, order_product.is_vatable, order_product.price,
	order_product.created_at, order_product.updated_at, order_product.remarks`

const orderProductFrom = `
	FROM portfolio.order_product
	LEFT JOIN portfolio.product ON product.uuid = order_product.product_uuid`

// OrderProductRepository manages order line items on their own, so an
// existing order can be amended after creation.
type OrderProductRepository struct {
	db *database.DB
}

func NewOrderProductRepository(db *database.DB) *OrderProductRepository {
	return &OrderProductRepository{db: db}
}

func (r *OrderProductRepository) List(ctx context.Context, p query.ListParams) ([]*models.OrderProduct, error) {
	sql, args := query.NewBuilder(`SELECT `+orderProductColumns+orderProductFrom).
		Apply(orderProductTable, p, query.Column{Table: "product", Name: "name"}).
		SQL()

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query order products: %w", err)
	}

	return collectRows(rows, scanOrderProductRow)
}

func (r *OrderProductRepository) GetByUUID(ctx context.Context, uuid string) (*models.OrderProduct, error) {
	sql := `SELECT ` + orderProductColumns + orderProductFrom + ` WHERE order_product.uuid = $1`

	return scanOrderProductRow(r.db.Pool.QueryRow(ctx, sql, uuid))
}

func (r *OrderProductRepository) Create(ctx context.Context, p *models.OrderProduct) error {
	id, err := nanoid.New()
	if err != nil {
		return fmt.Errorf("failed to generate uuid: %w", err)
	}
	p.UUID = id
	p.CreatedAt = models.NewDateTime(time.Now())

	sql := `
		INSERT INTO portfolio.order_product (uuid, order_uuid, product_uuid, quantity, is_vatable, price, created_at, remarks)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err = r.db.Pool.Exec(ctx, sql,
		p.UUID, p.OrderUUID, p.ProductUUID,
		p.Quantity, p.IsVatable, p.Price,
		p.CreatedAt, p.Remarks,
	)
	return database.MapPostgresError(err)
}

func (r *OrderProductRepository) Update(ctx context.Context, uuid string, fields map[string]interface{}) error {
	return updateFields(ctx, r.db, "portfolio.order_product", "uuid", uuid, fields)
}

func (r *OrderProductRepository) Delete(ctx context.Context, uuid string) error {
	return execExpectRow(ctx, r.db, `DELETE FROM portfolio.order_product WHERE uuid = $1`, uuid)
}
