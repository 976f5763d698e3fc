package response

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type TokenResponse struct {
	Token       string `json:"token"`
	UID         uint   `json:"user_id"`
	Username    string `json:"username"`
	IsSuperuser bool   `json:"is_superuser"`
}

// BulkResponse reports queued bulk jobs plus the list URL the client
// should return to.
type BulkResponse struct {
	Message     string `json:"message"`
	JobIDs      []uint `json:"job_ids"`
	RedirectURL string `json:"redirect_url"`
}

// ImportResponse summarises an Excel import run.
type ImportResponse struct {
	Message  string   `json:"message"`
	Created  int      `json:"created"`
	Warnings []string `json:"warnings,omitempty"`
}

// PageResponse wraps a paginated listing.
type PageResponse struct {
	Items    any   `json:"items"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
}
