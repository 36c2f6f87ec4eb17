package apperr

type Kind string

type AppError struct {
	Kind      Kind
	PublicMsg string            // 可展示给用户的消息
	Fields    map[string]string // 表单字段错误（可选）
	Err       error             // 内部错误（仅用于日志）
}
