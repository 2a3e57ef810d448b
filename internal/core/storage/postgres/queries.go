package postgres

// SQL queries for the read-only reporting snapshot.
// Optional filters are passed as NULL and short-circuit their predicate, so
// one prepared statement serves every filter combination.

const (
	saleColumns = `
			s.id, s.invoice_number, s.sale_date,
			s.customer_id, COALESCE(c.name, ''),
			s.employee_id, e.name,
			s.store_id, st.name,
			s.payment_method, s.total_amount, s.discount_amount
		FROM sales s
		LEFT JOIN customers c ON c.id = s.customer_id
		JOIN employees e ON e.id = s.employee_id
		JOIN stores st ON st.id = s.store_id
	`

	// querySalesInRange loads sale headers. End is inclusive.
	// The category filter keeps sales with at least one line in the category.
	querySalesInRange = `
		SELECT` + saleColumns + `
		WHERE ($1::timestamptz IS NULL OR s.sale_date >= $1)
		  AND ($2::timestamptz IS NULL OR s.sale_date <= $2)
		  AND ($3::uuid IS NULL OR s.store_id = $3)
		  AND ($4::uuid IS NULL OR EXISTS (
				SELECT 1
				FROM sale_items si
				JOIN products p ON p.id = si.product_id
				WHERE si.sale_id = s.id AND p.category_id = $4
		  ))
		ORDER BY s.sale_date DESC, s.id
	`

	// queryLatestSales loads the newest sale headers for the activity feed.
	queryLatestSales = `
		SELECT` + saleColumns + `
		ORDER BY s.sale_date DESC, s.id
		LIMIT $1
	`

	// querySaleLines fans out line items for a batch of sale ids.
	// The category name comes from the product's current category.
	querySaleLines = `
		SELECT
			si.sale_id, si.product_id, p.name,
			p.category_id, COALESCE(cat.name, ''),
			si.quantity, si.unit_price, si.discount, si.total
		FROM sale_items si
		JOIN products p ON p.id = si.product_id
		LEFT JOIN categories cat ON cat.id = p.category_id
		WHERE si.sale_id = ANY($1::uuid[])
		ORDER BY si.sale_id, si.line_no
	`

	queryProductsFiltered = `
		SELECT
			p.id, p.name, COALESCE(p.barcode, ''),
			p.category_id, COALESCE(cat.name, ''),
			p.supplier_id, COALESCE(sup.name, ''),
			p.stock_quantity, p.critical_stock_level, p.price, p.is_active
		FROM products p
		LEFT JOIN categories cat ON cat.id = p.category_id
		LEFT JOIN suppliers sup ON sup.id = p.supplier_id
		WHERE ($1::uuid IS NULL OR p.category_id = $1)
		  AND (NOT $2::boolean OR p.is_active)
		ORDER BY p.name, p.id
	`

	// queryExpensesFiltered matches category case-insensitively.
	queryExpensesFiltered = `
		SELECT
			x.id, x.expense_date, x.category, COALESCE(x.description, ''),
			x.amount, x.currency, x.amount_in_base_currency,
			x.status, COALESCE(x.approver_name, ''),
			x.store_id, COALESCE(st.name, ''),
			x.employee_id, COALESCE(e.name, '')
		FROM expenses x
		LEFT JOIN stores st ON st.id = x.store_id
		LEFT JOIN employees e ON e.id = x.employee_id
		WHERE ($1::timestamptz IS NULL OR x.expense_date >= $1)
		  AND ($2::timestamptz IS NULL OR x.expense_date <= $2)
		  AND ($3::uuid IS NULL OR x.store_id = $3)
		  AND ($4::text IS NULL OR lower(x.category) = lower($4))
		  AND ($5::text IS NULL OR x.status = $5)
		ORDER BY x.expense_date DESC, x.id
	`

	queryCustomersActive = `
		SELECT id, name, created_at, is_active
		FROM customers
		WHERE is_active
		ORDER BY name, id
	`

	queryEmployeesActive = `
		SELECT id, name, store_id, is_active
		FROM employees
		WHERE is_active
		ORDER BY name, id
	`

	queryStoresActive = `
		SELECT id, name, is_active
		FROM stores
		WHERE is_active
		ORDER BY name, id
	`

	// queryMissingTables returns the expected tables absent from the schema.
	queryMissingTables = `
		SELECT t.name
		FROM unnest($1::text[]) AS t(name)
		WHERE NOT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_name = t.name
		)
		ORDER BY t.name
	`
)
