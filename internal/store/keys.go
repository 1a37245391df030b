package store

const (
	KeyUser  = "pd_user"
	KeyCart  = "pd_cart"
	KeyOrder = "pd_order"

	// Namespace for one browser session: pd:session:{session_id}:{key}
	KeySession = "pd:session:%s:"
)
