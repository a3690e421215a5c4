package webhook

// Wire shapes of the provider's "data" object. Only the fields the service
// persists are declared; everything else is kept in the raw payload.

type customerRef struct {
	ID string `json:"id"`
}

type orderPayload struct {
	ID         string          `json:"id"`
	Code       string          `json:"code"`
	Amount     *int64          `json:"amount"`
	Currency   string          `json:"currency"`
	Status     string          `json:"status"`
	Closed     bool            `json:"closed"`
	CustomerID string          `json:"customer_id"`
	Customer   *customerRef    `json:"customer"`
	Charges    []chargePayload `json:"charges"`
	CreatedAt  string          `json:"created_at"`
	UpdatedAt  string          `json:"updated_at"`
}

// orderData is the data object of an order.* event. Some senders wrap the
// order in data.order instead of sending it at the top level.
type orderData struct {
	orderPayload
	Order *orderPayload `json:"order"`
}

type chargePayload struct {
	ID            string        `json:"id"`
	Code          string        `json:"code"`
	Amount        int64         `json:"amount"`
	PaidAmount    int64         `json:"paid_amount"`
	Status        string        `json:"status"`
	Currency      string        `json:"currency"`
	PaymentMethod string        `json:"payment_method"`
	PaidAt        string        `json:"paid_at"`
	CreatedAt     string        `json:"created_at"`
	UpdatedAt     string        `json:"updated_at"`
	Order         *orderPayload `json:"order"`
}

func (p *orderPayload) customerID() *string {
	switch {
	case p.Customer != nil && p.Customer.ID != "":
		id := p.Customer.ID
		return &id
	case p.CustomerID != "":
		id := p.CustomerID
		return &id
	default:
		return nil
	}
}

// describesOrder reports whether an embedded order carries more than a bare id,
// so that upserting it cannot blank the stored order. amount must be present:
// without it the upsert would reset valor to zero.
func (p *orderPayload) describesOrder() bool {
	return p.ID != "" && p.Code != "" && p.Status != "" && p.Amount != nil
}

func (p *orderPayload) amount() int64 {
	if p.Amount == nil {
		return 0
	}
	return *p.Amount
}
