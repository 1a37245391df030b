package shop

import "github.com/shopspring/decimal"

type Product struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price Money  `json:"price"`
	Image string `json:"img"`
}

type CartItem struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price Money  `json:"price"` // snapshot at add time
	Image string `json:"img,omitempty"`
	Qty   int    `json:"qty"`
}

func (i CartItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Qty)))
}

type User struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Password string `json:"password"`
}

// FirstName is what the chrome greets the user with.
func (u User) FirstName() string {
	for i, r := range u.Name {
		if r == ' ' {
			return u.Name[:i]
		}
	}
	return u.Name
}

type Payment string

const (
	PaymentPix  Payment = "Pix"
	PaymentCard Payment = "Card"
	PaymentCash Payment = "Cash"
)

var Payments = []Payment{PaymentPix, PaymentCard, PaymentCash}

func ParsePayment(s string) (Payment, bool) {
	for _, p := range Payments {
		if string(p) == s {
			return p, true
		}
	}
	return "", false
}

func (p Payment) Label() string {
	switch p {
	case PaymentCard:
		return "Cartão"
	case PaymentCash:
		return "Dinheiro"
	default:
		return string(p)
	}
}

type Order struct {
	ID      string     `json:"id"`
	Status  Status     `json:"status"`
	Payment Payment    `json:"payment"`
	Items   []CartItem `json:"items"`
	Total   Money      `json:"total"`
	Address string     `json:"address"`
}
