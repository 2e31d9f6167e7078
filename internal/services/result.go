package services

// Result is the uniform envelope every mutating operation resolves to. The
// presentation layer renders FieldErrors inline and Error as a banner; it never sees
// a raw storage failure.
type Result[T any] struct {
	Success     bool                `json:"success"`
	Data        T                   `json:"data,omitempty"`
	Error       string              `json:"error,omitempty"`
	FieldErrors map[string][]string `json:"field_errors,omitempty"`
}

func ok[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

func fail[T any](msg string) Result[T] {
	return Result[T]{Success: false, Error: msg}
}

func invalid[T any](fieldErrors map[string][]string) Result[T] {
	return Result[T]{
		Success:     false,
		Error:       "Validation failed",
		FieldErrors: fieldErrors,
	}
}
