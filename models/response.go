package models

// Response codes
const (
	// success
	CodeSuccess = 0

	// client errors (1000-1999)
	CodeInvalidParams   = 1000 // invalid parameter
	CodeMissingParams   = 1001 // missing required parameter
	CodeUnknownLogin    = 1002 // login id not in the selectable set
	CodeNotLoggedIn     = 1003 // no account selected
	CodeNoResultsFile   = 1004 // results file for the user does not exist
	CodeProjectNotFound = 1005 // project_id not in the catalog

	// server errors (2000-2999)
	CodeServerError = 2000 // internal server error
	CodeParseError  = 2001 // data file failed to parse
)

var CodeMessages = map[int]string{
	CodeSuccess:         "success",
	CodeInvalidParams:   "invalid parameter",
	CodeMissingParams:   "missing required parameter",
	CodeUnknownLogin:    "unknown login account",
	CodeNotLoggedIn:     "not logged in",
	CodeNoResultsFile:   "no results file for this user",
	CodeProjectNotFound: "project not found",
	CodeServerError:     "internal server error",
	CodeParseError:      "data file parse error",
}

// APIResponse is the common response envelope.
type APIResponse struct {
	Code    int         `json:"code" example:"0"`
	Message string      `json:"message" example:"success"`
	Data    interface{} `json:"data,omitempty"`
}

// NewSuccessResponse creates a success envelope.
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{
		Code:    CodeSuccess,
		Message: CodeMessages[CodeSuccess],
		Data:    data,
	}
}

// NewErrorResponse creates an error envelope with the canned message.
func NewErrorResponse(code int, data interface{}) APIResponse {
	message, exists := CodeMessages[code]
	if !exists {
		message = "unknown error"
	}
	return APIResponse{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// NewCustomErrorResponse creates an error envelope with a custom message.
func NewCustomErrorResponse(code int, message string, data interface{}) APIResponse {
	return APIResponse{
		Code:    code,
		Message: message,
		Data:    data,
	}
}
