package http

// Request and response bodies for the REST API.

type AddressRequest struct {
	Street   string `json:"street"`
	City     string `json:"city"`
	PostCode string `json:"postCode"`
	Country  string `json:"country"`
}

type CreateOrderRequest struct {
	CustomerEmail   string         `json:"customerEmail"`
	ShippingAddress AddressRequest `json:"shippingAddress"`
}

type CreateOrderResponse struct {
	ID string `json:"id"`
}

type AddOrderLineRequest struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
	Currency    string `json:"currency"`
}

type MarkOrderPaidRequest struct {
	PaymentReference string `json:"paymentReference"`
}

type ShipOrderRequest struct {
	TrackingNumber string `json:"trackingNumber"`
}

type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

type OrderResponse struct {
	ID              string              `json:"id"`
	CustomerEmail   string              `json:"customerEmail"`
	ShippingAddress AddressRequest      `json:"shippingAddress"`
	Status          string              `json:"status"`
	Currency        string              `json:"currency"`
	TotalAmount     string              `json:"totalAmount"`
	Lines           []OrderLineResponse `json:"lines"`
}

type OrderLineResponse struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
	LineTotal   string `json:"lineTotal"`
}

type OrderSummaryResponse struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	Currency    string `json:"currency"`
	TotalAmount string `json:"totalAmount"`
	LineCount   int    `json:"lineCount"`
}

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
