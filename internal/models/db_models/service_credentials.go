package db_models

// APIKey stores a provider credential server-side. Secret keys never leave
// the process; only rows flagged Publishable may be returned to clients.
type APIKey struct {
	BaseModel
	Service     string `gorm:"uniqueIndex" json:"service"`
	KeyValue    string `json:"-"`
	Publishable bool   `gorm:"default:false" json:"publishable"`
	IsLive      bool   `gorm:"default:false" json:"is_live"`
}

// ServiceEndpoint lets operators point a provider client at sandbox or
// production without a redeploy. The client uses the active row, falling
// back to env configuration when none exists.
type ServiceEndpoint struct {
	BaseModel
	Service string `gorm:"index" json:"service"`
	BaseURL string `json:"base_url"`
	Status  string `gorm:"type:varchar(16);default:'active'" json:"status"`
}
