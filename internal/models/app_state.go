package models

// PersistedState is the slice of store state that survives restarts.
type PersistedState struct {
	Cart        []CartItem `json:"cart"`
	IsAdminMode bool       `json:"is_admin_mode"`
}
