package responses

type ImportSummary struct {
	Mode     string `json:"mode"`
	Received int    `json:"received"`
	Inserted int    `json:"inserted"`
	Total    int    `json:"total"`
}

type ExportUpload struct {
	ObjectName  string `json:"object_name"`
	Size        int64  `json:"size"`
	DownloadURL string `json:"download_url,omitempty"`
}

type SpreadsheetJob struct {
	JobID      string `json:"job_id"`
	ObjectName string `json:"object_name,omitempty"`
	Status     string `json:"status"`
}

type MigrationSummary struct {
	LocalCount  int `json:"local_count"`
	RemoteCount int `json:"remote_count"`
	Migrated    int `json:"migrated"`
}
