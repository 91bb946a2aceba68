package service

const (
	msgProjectCreated    = "Project created successfully"
	msgProjectUpdated    = "Project updated successfully"
	msgProjectDeleted    = "Project deleted successfully"
	msgBlueprintUploaded = "Blueprint uploaded successfully"
	msgBlueprintDeleted  = "Blueprint deleted successfully"

	msgCreateProjectFailFmt   = "Failed to create project: %s"
	msgUpdateProjectFailFmt   = "Failed to update project: %s"
	msgDeleteProjectFailFmt   = "Failed to delete project: %s"
	msgUploadBlueprintFailFmt = "Failed to upload blueprint: %s"
	msgDeleteBlueprintFailFmt = "Failed to delete blueprint: %s"

	descCreatedProjectFmt    = "Created project: %s"
	descUpdatedProjectFmt    = "Updated project: %s"
	descDeletedProjectFmt    = "Deleted project: %s"
	descUploadedBlueprintFmt = "Uploaded blueprint: %s"
	descDeletedBlueprintFmt  = "Deleted blueprint: %s"
)
