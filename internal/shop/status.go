package shop

type Status string

const (
	StatusReceived       Status = "received"
	StatusPreparing      Status = "preparing"
	StatusOutForDelivery Status = "out-for-delivery"
	StatusDelivered      Status = "delivered"
)

// Steps is the only path an order walks, in order.
var Steps = []Status{StatusReceived, StatusPreparing, StatusOutForDelivery, StatusDelivered}

var labels = map[Status]string{
	StatusReceived:       "recebido",
	StatusPreparing:      "preparando",
	StatusOutForDelivery: "saiu pra entrega",
	StatusDelivered:      "entregue",
}

func (s Status) Index() int {
	for i, st := range Steps {
		if st == s {
			return i
		}
	}
	return -1
}

func (s Status) IsTerminal() bool {
	return s == StatusDelivered
}

// Next returns the following step. ok is false at the terminal step or for
// statuses outside the sequence.
func (s Status) Next() (Status, bool) {
	i := s.Index()
	if i < 0 || i >= len(Steps)-1 {
		return s, false
	}
	return Steps[i+1], true
}

func (s Status) Label() string {
	if l, ok := labels[s]; ok {
		return l
	}
	return string(s)
}

func (s Status) String() string { return string(s) }

// CanTransition reports whether to is exactly one step after from.
func CanTransition(from, to Status) bool {
	i := from.Index()
	return i >= 0 && to.Index() == i+1
}
