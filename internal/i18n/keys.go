package i18n

// Message keys shared between handlers, guards, and templates. The flash
// slot in the session stores one of these keys, never a translated string,
// so the message renders in whatever locale is active at display time.
const (
	KeyInvalidCaptcha       = "error.invalid_captcha"
	KeyPasswordMismatch     = "error.password_mismatch"
	KeyAgreementRequired    = "error.agreement_required"
	KeyDuplicatePhone       = "error.duplicate_phone"
	KeyRegistrationFailed   = "error.registration_failed"
	KeyInvalidCredentials   = "error.invalid_credentials"
	KeyLoginFailed          = "error.login_failed"
	KeyNotAuthenticated     = "error.not_authenticated"
	KeyAccessDenied         = "error.access_denied"
	KeyPasswordChangeFailed = "error.password_change_failed"
	KeyRegistrationSuccess  = "flash.registration_success"
	KeyPasswordUpdated      = "flash.password_updated"
)
