package handler

const (
	jsonKeyError   = "error"
	jsonKeyMessage = "message"

	paramID        = "id"
	paramProjectID = "project_id"
	queryProjectID = "project_id"

	formFieldFile = "file"
	formFieldName = "name"

	msgInvalidRequestBody      = "invalid request body"
	msgContentTypeJSONRequired = "Content-Type must be application/json"
	msgInvalidProjectID        = "invalid project ID"
	msgInvalidBlueprintID      = "invalid blueprint ID"
	msgMissingFile             = "file is required"
	msgEmptyUpdate             = "no fields to update"
	msgProjectDeleted          = "project deleted"
	msgBlueprintDeleted        = "blueprint deleted"
)
