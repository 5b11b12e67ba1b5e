package apperr

// Domain errors returned by the stores. Messages are the ones clients
// see in the {"error": ...} envelope.
var (
	ErrCredentialsRequired = InvalidArg("Username and password required")
	ErrCredentialsTooShort = InvalidArg("Username must be at least 3 characters, password at least 6")
	ErrUsernameTaken       = AlreadyExists("Username already taken")
	ErrInvalidCredentials  = Unauthorized("Invalid credentials")
	ErrUserNotFound        = NotFound("User not found")

	ErrMissingFields   = InvalidArg("Missing fields")
	ErrInvalidUsers    = InvalidArg("Invalid users")
	ErrInvalidData     = InvalidArg("Invalid data")
	ErrMessageNotFound = NotFound("Message not found")

	ErrMissingCallParties = InvalidArg("Missing caller or callee")
	ErrCallNotFound       = NotFound("Call not found")

	ErrGroupExists        = AlreadyExists("Invalid group name or group already exists")
	ErrGroupOrUserMissing = NotFound("Group or user not found")
	ErrNotGroupMember     = NotFound("Group not found or user not in group")

	ErrInvalidUser    = InvalidArg("Invalid user")
	ErrNoFileSelected = InvalidArg("No file selected")
	ErrFileNotFound   = NotFound("File not found")
)
