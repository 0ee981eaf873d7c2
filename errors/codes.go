package errors

// ErrorCode identifies an application error category in responses and logs.
type ErrorCode int32

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	ErrorCode_INTERNAL          ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT  ErrorCode = 1001
	ErrorCode_NOT_FOUND         ErrorCode = 1002
	ErrorCode_PERMISSION_DENIED ErrorCode = 1003
	ErrorCode_UNAUTHENTICATED   ErrorCode = 1004
	ErrorCode_VALIDATION_FAILED ErrorCode = 1005

	ErrorCode_AUTH_INVALID_TOKEN  ErrorCode = 1100
	ErrorCode_CSRF_TOKEN_INVALID  ErrorCode = 1101
	ErrorCode_USER_NOT_FOUND      ErrorCode = 1102

	ErrorCode_MEETING_NOT_FOUND          ErrorCode = 1200
	ErrorCode_MEETING_INVALID_TRANSITION ErrorCode = 1201
	ErrorCode_MEETING_BOOTSTRAP_FAILED   ErrorCode = 1202

	ErrorCode_AGENDA_NOT_FOUND      ErrorCode = 1300
	ErrorCode_AGENDA_REORDER_FAILED ErrorCode = 1301

	ErrorCode_CONTENT_NOT_FOUND      ErrorCode = 1400
	ErrorCode_CONTENT_UNKNOWN_FIELD  ErrorCode = 1401

	ErrorCode_TASK_NOT_FOUND ErrorCode = 1500
	ErrorCode_INVALID_STATUS ErrorCode = 1501

	ErrorCode_DECISION_NOT_FOUND ErrorCode = 1600

	ErrorCode_DB_QUERY_FAILED       ErrorCode = 1700
	ErrorCode_DB_TRANSACTION_FAILED ErrorCode = 1701
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                    "HTTP_OK",
	ErrorCode_INTERNAL:                   "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:           "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                  "NOT_FOUND",
	ErrorCode_PERMISSION_DENIED:          "PERMISSION_DENIED",
	ErrorCode_UNAUTHENTICATED:            "UNAUTHENTICATED",
	ErrorCode_VALIDATION_FAILED:          "VALIDATION_FAILED",
	ErrorCode_AUTH_INVALID_TOKEN:         "AUTH_INVALID_TOKEN",
	ErrorCode_CSRF_TOKEN_INVALID:         "CSRF_TOKEN_INVALID",
	ErrorCode_USER_NOT_FOUND:             "USER_NOT_FOUND",
	ErrorCode_MEETING_NOT_FOUND:          "MEETING_NOT_FOUND",
	ErrorCode_MEETING_INVALID_TRANSITION: "MEETING_INVALID_TRANSITION",
	ErrorCode_MEETING_BOOTSTRAP_FAILED:   "MEETING_BOOTSTRAP_FAILED",
	ErrorCode_AGENDA_NOT_FOUND:           "AGENDA_NOT_FOUND",
	ErrorCode_AGENDA_REORDER_FAILED:      "AGENDA_REORDER_FAILED",
	ErrorCode_CONTENT_NOT_FOUND:          "CONTENT_NOT_FOUND",
	ErrorCode_CONTENT_UNKNOWN_FIELD:      "CONTENT_UNKNOWN_FIELD",
	ErrorCode_TASK_NOT_FOUND:             "TASK_NOT_FOUND",
	ErrorCode_INVALID_STATUS:             "INVALID_STATUS",
	ErrorCode_DECISION_NOT_FOUND:         "DECISION_NOT_FOUND",
	ErrorCode_DB_QUERY_FAILED:            "DB_QUERY_FAILED",
	ErrorCode_DB_TRANSACTION_FAILED:      "DB_TRANSACTION_FAILED",
}

// String returns the symbolic name of the error code.
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
