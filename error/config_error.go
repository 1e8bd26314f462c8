package error

type ConfigError struct {
	message string
	cause   error
}

func (e *ConfigError) Message() string {
	return e.message
}

func (e *ConfigError) Error() string {
	if nil == e.cause {
		return e.message
	}

	return e.message + ": " + e.cause.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.cause
}

//--------------------

func NewConfigError(message string, cause error) *ConfigError {
	return &ConfigError{
		message: message,
		cause:   cause,
	}
}
