package models

// Permission grants or denies a user type access to one application module.
// The permissions endpoint is read-only; rows are seeded out of band.
type Permission struct {
	UserType  string `bson:"user_type" json:"user_type"`
	ModuleID  string `bson:"module_id" json:"module_id"`
	HasAccess bool   `bson:"has_access" json:"has_access"`
}
