package response

const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Có lỗi xảy ra, vui lòng thử lại sau"
	InternalServerErrorCode = 500

	// DateFormat and DateTimeFormat match the backend wire formats.
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)
