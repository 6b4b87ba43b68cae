package domain

// OrderLine is one requested product and quantity within an order.
type OrderLine struct {
	Title    string
	Quantity int
}

// Order is a single customer's delivery request. It is transient:
// it exists only for the duration of one request and is never persisted.
type Order struct {
	CustomerID int
	Lines      []OrderLine
}
