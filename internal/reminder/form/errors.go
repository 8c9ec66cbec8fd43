package form

// User-facing messages shown in the blocking alert.
const (
	MsgInvalidDate  = "Ngày không hợp lệ"
	MsgInvalidTime  = "Giờ không hợp lệ"
	MsgEmptyContent = "Vui lòng nhập nội dung"
	MsgNoRecipient  = "Vui lòng chọn người nhận"
)

// ValidationError reports which field failed and the message to show.
type ValidationError struct {
	Field   Field
	Message string
	Err     error
}

func newValidationError(field Field, msg string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: msg, Err: err}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
