package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldDataDir    = "data_dir"
	FieldFile       = "file"
	FieldRows       = "rows"
	FieldSeason     = "season"
	FieldQuery      = "query"
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
)
