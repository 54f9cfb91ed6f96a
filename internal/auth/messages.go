package auth

// MessageForCode maps provider error codes to the copy shown to users.
// Unrecognized codes fall back to a generic message.
func MessageForCode(code string) string {
	switch code {
	case CodeInvalidEmail:
		return "Invalid email address"
	case CodeUserNotFound:
		return "No account found for this email"
	case CodeTooManyRequests:
		return "Too many reset attempts. Try again later."
	case CodeNetworkFailure:
		return "Network error. Check your connection and try again."
	default:
		return "Could not send reset email. Please try again."
	}
}

// MessageFor maps a provider error to its user-facing message.
func MessageFor(err error) string {
	return MessageForCode(CodeOf(err))
}
