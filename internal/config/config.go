// Package config holds the process configuration.
//
// A Config is loaded once at startup and handed to constructors by value;
// nothing in the application reads environment variables after Load returns.
package config

import "time"

type Config struct {
	Server    ServerConfig
	Storage   StorageConfig
	Sheets    SheetNames
	Templates TemplateConfig
	Folders   FolderConfig
	Upload    UploadConfig
	IDs       IDConfig
	Verify    VerifyConfig
	Logging   LoggingConfig
	Identity  IdentityConfig
}

type ServerConfig struct {
	Port    int    `env:"SERVER_PORT" envAlt:"PORT" default:"8080"`
	GinMode string `env:"GIN_MODE" default:"release"`
}

// StorageConfig selects the tabular backend.
type StorageConfig struct {
	// Driver is one of dynamodb, memory, sqlite.
	Driver string `env:"STORAGE_DRIVER" default:"dynamodb"`

	// Bootstrap creates missing sheets with their canonical headers.
	Bootstrap bool `env:"STORAGE_BOOTSTRAP" default:"false"`

	DynamoTable    string `env:"DYNAMODB_SHEETS_TABLE" default:"sheet_rows"`
	DynamoRegion   string `env:"AWS_REGION" default:"us-east-1"`
	DynamoEndpoint string `env:"DYNAMODB_ENDPOINT"`
	AccessKeyID    string `env:"AWS_ACCESS_KEY_ID" default:"local"`
	SecretKey      string `env:"AWS_SECRET_ACCESS_KEY" default:"local"`

	SQLitePath string `env:"SQLITE_PATH" default:"akc.db"`
}

// SheetNames maps each logical table to its storage name.
type SheetNames struct {
	Projects          string `env:"SHEET_PROJECTS" default:"Projects"`
	TimeLogs          string `env:"SHEET_TIME_LOGS" default:"TimeLogs"`
	MaterialsReceipts string `env:"SHEET_MATERIALS_RECEIPTS" default:"MaterialsReceipts"`
	Subcontractors    string `env:"SHEET_SUBCONTRACTORS" default:"Subcontractors"`
	SubInvoices       string `env:"SHEET_SUBINVOICES" default:"Subinvoices"`
	Estimates         string `env:"SHEET_ESTIMATES" default:"Estimates"`
	Customers         string `env:"SHEET_CUSTOMERS" default:"Customers"`
	ActivityLog       string `env:"SHEET_ACTIVITY_LOG" default:"ActivityLog"`
	Vendors           string `env:"SHEET_VENDORS" default:"Vendors"`
	ProjectIntents    string `env:"SHEET_PROJECT_INTENTS" default:"ProjectIntents"`
}

type TemplateConfig struct {
	EstimateTemplateID string `env:"ESTIMATE_TEMPLATE_ID" default:"estimate"`
	FilePrefix         string `env:"ESTIMATE_FILE_PREFIX" default:"Estimate"`
	Dir                string `env:"TEMPLATES_DIR" default:"templates"`
}

type FolderConfig struct {
	ParentID      string `env:"PROJECTS_PARENT_FOLDER_ID" default:"projects"`
	WorkspaceRoot string `env:"WORKSPACE_ROOT" default:"workspace"`
	PublicBaseURL string `env:"WORKSPACE_PUBLIC_BASE_URL" default:"http://localhost:8080/files"`
	ShareDomain   string `env:"WORKSPACE_SHARE_DOMAIN"`
}

type UploadConfig struct {
	// MaxFileSize in bytes (default: 10MB).
	MaxFileSize      int64    `env:"UPLOAD_MAX_FILE_SIZE" default:"10485760"`
	AllowedMIMETypes []string `env:"UPLOAD_ALLOWED_MIME_TYPES" default:"image/jpeg,image/png,image/gif,application/pdf"`
}

type IDConfig struct {
	// ProjectLegacyLastRow derives the next project sequence from the last
	// matching row instead of the highest suffix.
	ProjectLegacyLastRow bool `env:"ID_PROJECT_LEGACY_LAST_ROW" default:"false"`
}

// VerifyConfig bounds the read-back loop run after an append.
type VerifyConfig struct {
	InitialInterval time.Duration `env:"VERIFY_INITIAL_INTERVAL" default:"200ms"`
	MaxInterval     time.Duration `env:"VERIFY_MAX_INTERVAL" default:"2s"`
	Timeout         time.Duration `env:"VERIFY_TIMEOUT" default:"10s"`
}

type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" default:"info"`
	Format string `env:"LOG_FORMAT" default:"json"`
}

type IdentityConfig struct {
	Header       string `env:"IDENTITY_HEADER" default:"X-User-Email"`
	DefaultActor string `env:"IDENTITY_DEFAULT_ACTOR" default:"system@akc.local"`
}
