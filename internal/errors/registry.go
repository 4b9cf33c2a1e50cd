package errors

// template is a registered error definition.
type template struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]template{
	"E001": {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
		Detail:   "No hew.json was found in this directory or any parent directory.",
		DocURL:   "https://hewgo.dev/docs/errors/E001",
	},
	"E002": {
		Category: CategoryConfig,
		Message:  "Configuration file is invalid",
		Detail:   "hew.json exists but could not be parsed as JSON.",
		DocURL:   "https://hewgo.dev/docs/errors/E002",
	},
	"E003": {
		Category: CategoryConfig,
		Message:  "Site directory does not exist",
		Detail:   "The configured site directory was not found on disk.",
		DocURL:   "https://hewgo.dev/docs/errors/E003",
	},
	"E101": {
		Category: CategoryServe,
		Message:  "Preview server failed to start",
		DocURL:   "https://hewgo.dev/docs/errors/E101",
	},
	"E201": {
		Category: CategoryPublish,
		Message:  "Publish failed",
		Detail:   "One or more files could not be uploaded to the bucket.",
		DocURL:   "https://hewgo.dev/docs/errors/E201",
	},
	"E202": {
		Category: CategoryPublish,
		Message:  "No publish bucket configured",
		Detail:   "Publishing requires a bucket, from the --bucket flag or the publish section of hew.json.",
		DocURL:   "https://hewgo.dev/docs/errors/E202",
	},
}
