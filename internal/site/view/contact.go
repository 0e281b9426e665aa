package view

const (
	MsgFillRequired = "Please fill in all required fields."
	MsgSendFailed   = "Failed to send message. Please try again later."
)

// ContactForm mirrors the fields of the contact form.
type ContactForm struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Subject  string `json:"subject"`
	Message  string `json:"message"`
}

// ValidateContactForm applies the same presence rule as the server.
// It returns nil when the form may be submitted.
func ValidateContactForm(f ContactForm) *Notice {
	if f.FullName == "" || f.Email == "" || f.Message == "" {
		n := NewNotice(NoticeError, MsgFillRequired)
		return &n
	}
	return nil
}

// SubmitResult is what the contact endpoint answered.
type SubmitResult struct {
	Success bool
	Message string
}

// NoticeForSubmit maps a submission outcome to a notice. A non-nil
// transportErr means no envelope was received at all.
func NoticeForSubmit(res SubmitResult, transportErr error) Notice {
	if transportErr != nil {
		return NewNotice(NoticeError, MsgSendFailed)
	}
	if res.Success {
		return NewNotice(NoticeSuccess, res.Message)
	}
	return NewNotice(NoticeError, res.Message)
}
