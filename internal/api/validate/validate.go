package validate

// ErrField is a request rejection. Msg is returned to the caller verbatim.
type ErrField struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

func (e *ErrField) Error() string { return e.Msg }

func Fail(field, msg string) *ErrField {
	return &ErrField{Field: field, Msg: msg}
}
