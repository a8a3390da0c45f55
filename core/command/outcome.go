package command

// Outcome is the normalized result of executing one command. Exactly one of
// Result and ErrorMessage is populated, selected by Success.
type Outcome struct {
	Success      bool
	Result       any
	ErrorMessage string
}

// Ok builds a successful outcome carrying the handler result.
func Ok(result any) Outcome {
	return Outcome{Success: true, Result: result}
}

// Fail builds a failed outcome from an application error.
func Fail(err error) Outcome {
	return Outcome{Success: false, ErrorMessage: err.Error()}
}
