package constants

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// MaxUserListSize caps the admin user listing.
	MaxUserListSize = 200

	HeaderAuthorization = "Authorization"
	QueryParamToken     = "token"

	// Context keys
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"

	ServiceName = "helpdesk-api"

	// Table names
	TableUsers    = "users"
	TableTickets  = "tickets"
	TableComments = "comments"

	ErrMsgInternalServerError = "Internal server error occurred"
)
